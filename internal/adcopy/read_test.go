package adcopy

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadFile_JSONObject(t *testing.T) {
	path := writeFile(t, "ad.json",
		`{"id":"a1","name":"Ad One","type":"static","resolvedCopy":{"text":"Hello.","source":"primary_text"}}`)

	ads, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(ads) != 1 {
		t.Fatalf("got %d ads, want 1", len(ads))
	}
	if ads[0].ID != "a1" || ads[0].Text() != "Hello." {
		t.Errorf("ad = %+v", ads[0])
	}
}

func TestReadFile_JSONArray(t *testing.T) {
	path := writeFile(t, "ads.json",
		`[{"id":"a1","resolvedCopy":{"text":"One."}},{"id":"a2","resolvedCopy":{"text":"Two."}}]`)

	ads, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(ads) != 2 || ads[0].ID != "a1" || ads[1].ID != "a2" {
		t.Errorf("ads = %+v", ads)
	}
}

func TestReadFile_JSONL(t *testing.T) {
	path := writeFile(t, "ads.jsonl",
		`{"id":"a1","resolvedCopy":{"text":"One."}}

{"id":"a2","resolvedCopy":{"text":"Two."}}
`)

	ads, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(ads) != 2 {
		t.Fatalf("got %d ads, want 2 (blank line should be skipped)", len(ads))
	}
}

func TestReadFile_JSONLBadLine(t *testing.T) {
	path := writeFile(t, "ads.jsonl",
		`{"id":"a1","resolvedCopy":{"text":"One."}}
not json
`)

	_, err := ReadFile(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q should name the offending line", err)
	}
}

func TestReadFile_Zstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ads.jsonl.zst")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	enc, err := zstd.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	lines := `{"id":"a1","resolvedCopy":{"text":"One."}}
{"id":"a2","resolvedCopy":{"text":"Two."}}
`
	if _, err := enc.Write([]byte(lines)); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	ads, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(ads) != 2 || ads[1].Text() != "Two." {
		t.Errorf("ads = %+v", ads)
	}
}

func TestReadFile_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "ads.csv", "id,text\n")
	if _, err := ReadFile(path); err == nil {
		t.Fatal("expected unsupported extension error")
	}
}

func TestValidate(t *testing.T) {
	text := ""
	valid := Ad{ID: "a1", ResolvedCopy: ResolvedCopy{Text: &text}}
	if err := valid.Validate(); err != nil {
		t.Errorf("empty text should validate: %v", err)
	}

	missing := Ad{ID: "a2"}
	if err := missing.Validate(); err == nil {
		t.Error("nil text should fail validation")
	}
}
