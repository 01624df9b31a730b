package framework

import (
	"strings"
	"testing"

	"github.com/mhailey/copyscope/internal/taxonomy"
)

func strptr(s string) *string { return &s }

func TestSynthesizeBigIdea_ConceptBranches(t *testing.T) {
	tax := taxonomy.Default()

	pains := ExtractPainPoints("exhausted all the time", tax)
	noPains := ExtractPainPoints("", tax)
	villain := RootCause{VillainLabel: strptr("Industry shortcuts")}
	noVillain := RootCause{}
	mech := Mechanism{Present: true}
	noMech := Mechanism{}
	desire := MassDesire{Primary: strptr("Sleeping well and waking rested")}

	tests := []struct {
		name        string
		pains       PainPoints
		rc          RootCause
		mech        Mechanism
		contains    []string
		notContains []string
	}{
		{
			name:        "full arc",
			pains:       pains,
			rc:          villain,
			mech:        mech,
			contains:    []string{"fatigue and low energy", "industry shortcuts", "sleeping well and waking rested"},
			notContains: []string{"not articulated"},
		},
		{
			name:     "missing mechanism",
			pains:    pains,
			rc:       villain,
			mech:     noMech,
			contains: []string{"industry shortcuts", "mechanism is not articulated"},
		},
		{
			name:     "missing villain",
			pains:    pains,
			rc:       noVillain,
			mech:     mech,
			contains: []string{"fatigue and low energy", "root cause is not named"},
		},
		{
			name:     "pain only",
			pains:    pains,
			rc:       noVillain,
			mech:     noMech,
			contains: []string{"fatigue and low energy", "not articulated"},
		},
		{
			name:     "no pain",
			pains:    noPains,
			rc:       noVillain,
			mech:     noMech,
			contains: []string{"Big idea not articulated"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SynthesizeBigIdea("", tt.pains, tt.rc, tt.mech, desire, tax)
			for _, want := range tt.contains {
				if !strings.Contains(got.Concept, want) {
					t.Errorf("concept %q missing %q", got.Concept, want)
				}
			}
			for _, bad := range tt.notContains {
				if strings.Contains(got.Concept, bad) {
					t.Errorf("concept %q contains %q", got.Concept, bad)
				}
			}
		})
	}
}

func TestSynthesizeBigIdea_StylesFirstMatchOrder(t *testing.T) {
	tax := taxonomy.Default()
	// Both Science/Data and UGC/Authentic match; styles keep declaration
	// order and the first match is primary, regardless of frequency.
	text := "Okay so you guys, honest review: the study behind this is peer-reviewed."

	got := SynthesizeBigIdea(text, PainPoints{}, RootCause{}, Mechanism{}, MassDesire{}, tax)

	if got.PrimaryStyle != "Science/Data" {
		t.Errorf("primary style = %s, want Science/Data", got.PrimaryStyle)
	}
	if len(got.AllStyles) != 2 {
		t.Fatalf("all styles = %v, want 2", got.AllStyles)
	}
	if got.AllStyles[0] != "Science/Data" || got.AllStyles[1] != "UGC/Authentic" {
		t.Errorf("style order = %v", got.AllStyles)
	}
}

func TestSynthesizeBigIdea_NoStyle(t *testing.T) {
	tax := taxonomy.Default()

	got := SynthesizeBigIdea("plain descriptive text", PainPoints{}, RootCause{}, Mechanism{}, MassDesire{}, tax)
	if got.PrimaryStyle != StyleUnclear {
		t.Errorf("primary style = %s, want %s", got.PrimaryStyle, StyleUnclear)
	}
	if len(got.AllStyles) != 0 {
		t.Errorf("all styles = %v, want none", got.AllStyles)
	}
}
