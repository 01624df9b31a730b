package framework

import (
	"strings"
	"testing"

	"github.com/mhailey/copyscope/internal/taxonomy"
)

func TestExtractPainPoints_CategoriesAndDedup(t *testing.T) {
	tax := taxonomy.Default()
	text := "Exhausted by 2pm? Low energy all week, exhausted again by Friday, brain fog in every meeting."

	got := ExtractPainPoints(text, tax)

	energy, ok := got.ByCategory["energy_fatigue"]
	if !ok {
		t.Fatalf("energy_fatigue missing: %v", got.ByCategory)
	}
	// "Exhausted" and "exhausted" fold to one match.
	if len(energy.Matches) != 2 {
		t.Errorf("energy matches = %v, want [exhausted, low energy]", energy.Matches)
	}
	for _, m := range energy.Matches {
		if m != strings.ToLower(m) {
			t.Errorf("match not case-folded: %q", m)
		}
	}

	if _, ok := got.ByCategory["cognitive"]; !ok {
		t.Errorf("cognitive missing: %v", got.ByCategory)
	}
}

func TestExtractPainPoints_AbsentCategoriesOmitted(t *testing.T) {
	tax := taxonomy.Default()

	got := ExtractPainPoints("brain fog ruined my morning", tax)
	if len(got.ByCategory) != 1 {
		t.Errorf("expected only cognitive, got %v", got.ByCategory)
	}
	for key, hits := range got.ByCategory {
		if len(hits.Matches) == 0 {
			t.Errorf("category %s present with empty matches", key)
		}
	}
}

func TestExtractPainPoints_AllFollowsCategoryOrder(t *testing.T) {
	tax := taxonomy.Default()
	// cognitive appears first in the text, energy_fatigue first in the
	// taxonomy; All flattens in taxonomy order.
	text := "brain fog every day and totally exhausted every night"

	got := ExtractPainPoints(text, tax)
	if len(got.All) != 2 {
		t.Fatalf("all = %v, want 2 matches", got.All)
	}
	if got.All[0] != "exhausted" || got.All[1] != "brain fog" {
		t.Errorf("all = %v, want [exhausted brain fog]", got.All)
	}
}

func TestExtractPainPoints_Empty(t *testing.T) {
	tax := taxonomy.Default()

	got := ExtractPainPoints("", tax)
	if len(got.ByCategory) != 0 {
		t.Errorf("byCategory = %v, want empty", got.ByCategory)
	}
	if len(got.All) != 0 {
		t.Errorf("all = %v, want empty", got.All)
	}
}
