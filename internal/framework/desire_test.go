package framework

import (
	"testing"

	"github.com/mhailey/copyscope/internal/taxonomy"
)

func TestDetectMassDesire_OccurrenceScoring(t *testing.T) {
	tax := taxonomy.Default()
	text := "Sleep is essential. Better sleep quality. Fall asleep faster. Also energy."

	got := DetectMassDesire(text, tax)

	if got.Primary == nil || *got.Primary != "Sleeping well and waking rested" {
		t.Fatalf("primary = %v, want sleep label", got.Primary)
	}
	if got.PrimaryKey == nil || *got.PrimaryKey != "sleep" {
		t.Errorf("primaryKey = %v, want sleep", got.PrimaryKey)
	}
	if len(got.All) < 2 {
		t.Fatalf("all = %v, want at least 2 desires", got.All)
	}
	if got.All[0].Hits <= got.All[1].Hits {
		t.Errorf("not ranked descending: %v", got.All)
	}
}

func TestDetectMassDesire_TieGoesToDeclarationOrder(t *testing.T) {
	tax := taxonomy.Default()
	// One energy hit, one sleep hit; energy is declared first.
	got := DetectMassDesire("more energy and deeper sleep", tax)

	if len(got.All) != 2 {
		t.Fatalf("all = %v, want 2", got.All)
	}
	if got.PrimaryKey == nil || *got.PrimaryKey != "energy" {
		t.Errorf("primaryKey = %v, want energy on tie", got.PrimaryKey)
	}
}

func TestDetectMassDesire_NoMatch(t *testing.T) {
	tax := taxonomy.Default()

	got := DetectMassDesire("nothing relevant here", tax)
	if got.Primary != nil || got.PrimaryKey != nil {
		t.Errorf("expected nil primary, got %v/%v", got.Primary, got.PrimaryKey)
	}
	if len(got.All) != 0 {
		t.Errorf("all = %v, want empty", got.All)
	}
}
