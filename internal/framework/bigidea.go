package framework

import (
	"fmt"
	"strings"

	"github.com/mhailey/copyscope/internal/taxonomy"
)

// StyleUnclear is reported when no creative style pattern matched.
const StyleUnclear = "Unclear"

// fallbackOutcome stands in when no mass desire was detected to name.
const fallbackOutcome = "a better outcome"

// SynthesizeBigIdea names the ad's creative styles and distills its
// narrative into one concept sentence. Styles are tested in declaration
// order and included on first match; unlike the scored detectors, this
// is membership, not ranking. The concept is a fixed decision tree over
// three signals: pain named, villain named, mechanism present.
func SynthesizeBigIdea(text string, pains PainPoints, rc RootCause, mech Mechanism, desire MassDesire, tax *taxonomy.Taxonomy) BigIdea {
	result := BigIdea{PrimaryStyle: StyleUnclear}

	for _, style := range tax.Styles {
		if !style.Pattern.MatchString(text) {
			continue
		}
		result.AllStyles = append(result.AllStyles, style.Name)
		if result.PrimaryStyle == StyleUnclear {
			result.PrimaryStyle = style.Name
		}
	}

	result.Concept = synthesizeConcept(pains, rc, mech, desire, tax)
	return result
}

// synthesizeConcept renders exactly one of five template sentences.
// Downstream consumers match on literal substrings of these templates
// ("not articulated" in particular), so the wording is part of the
// interchange contract.
func synthesizeConcept(pains PainPoints, rc RootCause, mech Mechanism, desire MassDesire, tax *taxonomy.Taxonomy) string {
	pain := strings.ToLower(firstPainLabel(pains, tax))

	villain := ""
	if rc.VillainLabel != nil {
		villain = strings.ToLower(*rc.VillainLabel)
	}

	outcome := fallbackOutcome
	if desire.Primary != nil {
		outcome = strings.ToLower(*desire.Primary)
	}

	switch {
	case pain != "" && villain != "" && mech.Present:
		return fmt.Sprintf("Ad builds a full arc: %s is blamed on %s, and the mechanism promises %s.", pain, villain, outcome)
	case pain != "" && villain != "":
		return fmt.Sprintf("Ad names %s and blames %s, but the mechanism is not articulated.", pain, villain)
	case pain != "" && mech.Present:
		return fmt.Sprintf("Ad names %s and promises %s through its mechanism, but the root cause is not named.", pain, outcome)
	case pain != "":
		return fmt.Sprintf("Ad leads with %s but the narrative arc is weak: villain and mechanism are not articulated.", pain)
	default:
		return "Big idea not articulated: no clear pain, villain, or mechanism narrative."
	}
}
