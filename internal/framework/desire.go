package framework

import (
	"sort"

	"github.com/mhailey/copyscope/internal/taxonomy"
)

// DetectMassDesire scores each desire category by occurrence count: how
// many times its pattern matches, not whether it matched. This is the one
// detector where repetition raises the score.
func DetectMassDesire(text string, tax *taxonomy.Taxonomy) MassDesire {
	var result MassDesire

	for _, d := range tax.Desires {
		hits := len(d.Pattern.FindAllString(text, -1))
		if hits == 0 {
			continue
		}
		result.All = append(result.All, DesireScore{Key: d.Key, Label: d.Label, Hits: hits})
	}

	// Stable sort keeps declaration order on ties.
	sort.SliceStable(result.All, func(i, j int) bool { return result.All[i].Hits > result.All[j].Hits })

	if len(result.All) > 0 {
		label, key := result.All[0].Label, result.All[0].Key
		result.Primary = &label
		result.PrimaryKey = &key
	}
	return result
}
