package framework

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mhailey/copyscope/internal/taxonomy"
)

// AvatarUndefined is returned when no demographic, pain, or psychographic
// signal exists to build an avatar from.
const AvatarUndefined = "Avatar not clearly defined in this ad"

const (
	maxAvatarPains    = 3
	maxAvatarMindsets = 2
)

// SynthesizeCustomer scans for demographic and psychographic signals and
// builds a one-sentence avatar from WHO, SITUATION, and MINDSET clauses.
func SynthesizeCustomer(text string, pains PainPoints, tax *taxonomy.Taxonomy) TargetCustomer {
	result := TargetCustomer{
		Demographics:   scanDemographics(text, tax),
		Psychographics: scanPsychographics(text, tax),
	}
	result.Avatar = synthesizeAvatar(text, result, pains, tax)
	return result
}

func scanDemographics(text string, tax *taxonomy.Taxonomy) []string {
	var tags []string
	seen := make(map[string]bool)
	for _, d := range tax.Demographics {
		tag := demographicTag(text, d)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}

func demographicTag(text string, d taxonomy.Demographic) string {
	if d.Capture {
		m := d.Pattern.FindStringSubmatch(text)
		if m == nil {
			return ""
		}
		return fmt.Sprintf(d.Label, m[1])
	}
	if d.Pattern.MatchString(text) {
		return d.Label
	}
	return ""
}

func scanPsychographics(text string, tax *taxonomy.Taxonomy) []string {
	var tags []string
	seen := make(map[string]bool)
	for _, p := range tax.Psychographics {
		if !p.Pattern.MatchString(text) || seen[p.Label] {
			continue
		}
		seen[p.Label] = true
		tags = append(tags, p.Label)
	}
	return tags
}

// synthesizeAvatar builds the avatar sentence. Each clause is optional;
// with no clause content at all it returns AvatarUndefined.
func synthesizeAvatar(text string, tc TargetCustomer, pains PainPoints, tax *taxonomy.Taxonomy) string {
	who := whoClause(text, tc, tax)
	situation := situationClause(pains, tax)
	mindset := mindsetClause(tc)

	if who == "" && situation == "" && mindset == "" {
		return AvatarUndefined
	}
	if who == "" {
		who = "People"
	}

	parts := []string{who}
	if situation != "" {
		parts = append(parts, "experiencing "+situation)
	}
	if mindset != "" {
		parts = append(parts, "who "+mindset)
	}

	return capitalize(strings.Join(parts, " "))
}

// whoClause joins age and gender tags, attaches role tags with "and", and
// prefixes situational tags when there is anything to prefix.
func whoClause(text string, tc TargetCustomer, tax *taxonomy.Taxonomy) string {
	var ageGender, roles, situational []string
	for _, d := range tax.Demographics {
		tag := demographicTag(text, d)
		if tag == "" {
			continue
		}
		switch d.Class {
		case taxonomy.ClassAge, taxonomy.ClassGender:
			ageGender = appendUnique(ageGender, tag)
		case taxonomy.ClassRole:
			roles = appendUnique(roles, tag)
		case taxonomy.ClassSituational:
			situational = appendUnique(situational, tag)
		}
	}

	core := strings.Join(ageGender, " ")
	roleStr := strings.Join(roles, " and ")

	var who string
	switch {
	case core != "" && roleStr != "":
		who = core + " and " + roleStr
	case core != "":
		who = core
	case roleStr != "":
		who = roleStr
	}

	if who != "" && len(situational) > 0 {
		who = strings.Join(situational, " ") + " " + who
	}
	return who
}

func situationClause(pains PainPoints, tax *taxonomy.Taxonomy) string {
	var labels []string
	for _, cat := range tax.PainCategories {
		if _, ok := pains.ByCategory[cat.Key]; !ok {
			continue
		}
		labels = append(labels, strings.ToLower(cat.Label))
		if len(labels) == maxAvatarPains {
			break
		}
	}
	return strings.Join(labels, ", ")
}

func mindsetClause(tc TargetCustomer) string {
	mindsets := tc.Psychographics
	if len(mindsets) > maxAvatarMindsets {
		mindsets = mindsets[:maxAvatarMindsets]
	}
	return strings.Join(mindsets, " and ")
}

func appendUnique(list []string, s string) []string {
	for _, have := range list {
		if have == s {
			return list
		}
	}
	return append(list, s)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
