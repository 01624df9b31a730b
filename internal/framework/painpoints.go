package framework

import (
	"strings"

	"github.com/mhailey/copyscope/internal/taxonomy"
)

// ExtractPainPoints collects pain-language matches from the full text,
// case-folded and deduplicated within each category. Categories with no
// matches never appear in ByCategory.
func ExtractPainPoints(text string, tax *taxonomy.Taxonomy) PainPoints {
	result := PainPoints{ByCategory: map[string]CategoryHits{}}

	for _, cat := range tax.PainCategories {
		raw := cat.Pattern.FindAllString(text, -1)
		if len(raw) == 0 {
			continue
		}

		seen := make(map[string]bool, len(raw))
		var matches []string
		for _, m := range raw {
			folded := strings.ToLower(m)
			if seen[folded] {
				continue
			}
			seen[folded] = true
			matches = append(matches, folded)
		}

		result.ByCategory[cat.Key] = CategoryHits{Label: cat.Label, Matches: matches}
		result.All = append(result.All, matches...)
	}

	return result
}

// firstPainLabel returns the label of the first declared category with
// matches, or "" when the ad surfaced no pain.
func firstPainLabel(pp PainPoints, tax *taxonomy.Taxonomy) string {
	for _, cat := range tax.PainCategories {
		if _, ok := pp.ByCategory[cat.Key]; ok {
			return cat.Label
		}
	}
	return ""
}
