package render

import (
	"strings"
	"testing"

	"github.com/mhailey/copyscope/internal/adcopy"
	"github.com/mhailey/copyscope/internal/framework"
	"github.com/mhailey/copyscope/internal/taxonomy"
)

func sampleFramework(t *testing.T) framework.Framework {
	t.Helper()
	text := "Tired of waking up exhausted? " +
		"Here's why: a hidden magnesium deficiency most people have. " +
		"Our formula combines magnesium glycinate and works by calming the nervous system. " +
		"You'll finally sleep through the night. " +
		"Shop now for 20% off."
	ad := adcopy.Ad{
		ID:           "ad-9",
		Name:         "Sleep Launch V2",
		Type:         adcopy.TypeStatic,
		ResolvedCopy: adcopy.ResolvedCopy{Text: &text},
	}
	return framework.Extract(ad, taxonomy.Default())
}

func TestText(t *testing.T) {
	out := Text(sampleFramework(t))

	for _, want := range []string{
		"Sleep Launch V2 (static,",
		"Target customer",
		"Narrative",
		"mass desire",
		"villain",
		"Big idea",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestText_EmptyAd(t *testing.T) {
	text := ""
	fw := framework.Extract(adcopy.Ad{
		ID:           "empty",
		Name:         "Empty",
		ResolvedCopy: adcopy.ResolvedCopy{Text: &text},
	}, taxonomy.Default())

	out := Text(fw)
	if strings.Contains(out, "Pain points") {
		t.Error("pain section rendered for an ad with no pain matches")
	}
	if strings.Contains(out, "Delivery signals") {
		t.Error("delivery section rendered for an ad with no signals")
	}
	if !strings.Contains(out, "none") {
		t.Errorf("empty narrative slots should render as none:\n%s", out)
	}
}

func TestMarkdown(t *testing.T) {
	out := Markdown(sampleFramework(t))

	if !strings.HasPrefix(out, "## Sleep Launch V2\n") {
		t.Errorf("markdown should open with the ad heading:\n%s", out)
	}
	for _, want := range []string{
		"- **Ad**: `ad-9`",
		"- **Mass desire**:",
		"### Mechanism chain",
		"> ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMechanismSummary(t *testing.T) {
	tests := []struct {
		name string
		mech framework.Mechanism
		want string
	}{
		{"absent", framework.Mechanism{}, "absent"},
		{"complete", framework.Mechanism{Present: true, Complete: true, StepsFound: 5}, "present, complete (5 steps)"},
		{"partial", framework.Mechanism{Present: true, MissingSteps: []string{"outcome"}}, "present, missing outcome"},
	}
	for _, tt := range tests {
		if got := mechanismSummary(tt.mech); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}
