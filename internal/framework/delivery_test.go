package framework

import (
	"strings"
	"testing"

	"github.com/mhailey/copyscope/internal/taxonomy"
)

func TestExtractDelivery_SignalsAcrossGroups(t *testing.T) {
	tax := taxonomy.Default()
	text := "300 mg of Magnesium Glycinate per capsule. Third-party tested, made in the USA. " +
		"Yes, real magnesium glycinate, not the cheap oxide form."

	got := ExtractDelivery(text, tax)

	if !got.Present {
		t.Fatal("expected delivery signals")
	}

	want := []string{"magnesium glycinate", "300 mg", "third-party tested", "made in the usa"}
	for _, w := range want {
		found := false
		for _, s := range got.Signals {
			if s == w {
				found = true
			}
		}
		if !found {
			t.Errorf("signal %q missing from %v", w, got.Signals)
		}
	}

	// "Magnesium Glycinate" and "magnesium glycinate" fold to one signal.
	count := 0
	for _, s := range got.Signals {
		if s == "magnesium glycinate" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("case-insensitive dedup failed: %v", got.Signals)
	}

	for _, s := range got.Signals {
		if s != strings.ToLower(s) {
			t.Errorf("signal not folded: %q", s)
		}
	}
}

func TestExtractDelivery_Empty(t *testing.T) {
	tax := taxonomy.Default()

	got := ExtractDelivery("nothing concrete in this copy", tax)
	if got.Present {
		t.Errorf("expected no signals, got %v", got.Signals)
	}
}
