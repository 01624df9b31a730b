package framework

import (
	"sort"

	"github.com/mhailey/copyscope/internal/classify"
	"github.com/mhailey/copyscope/internal/taxonomy"
)

// A sentence with this many root_cause pattern hits counts as a root-cause
// sentence even when another role won the primary slot.
const rootCauseOverride = 2

// DetectRootCause finds the ad's villain narrative. Root-cause sentences
// come from role classification; the villain archetype is scored against
// the full text independently of sentence boundaries.
func DetectRootCause(text string, sentences []classify.Sentence, tax *taxonomy.Taxonomy) RootCause {
	var result RootCause

	for _, s := range sentences {
		switch {
		case s.PrimaryRole == taxonomy.RoleRootCause:
			result.Sentences = append(result.Sentences, s.Text)
		case s.Score(taxonomy.RoleRootCause) >= rootCauseOverride:
			result.Sentences = append(result.Sentences, s.Text)
		}
		if s.PrimaryRole == taxonomy.RoleFailedSolutions {
			result.FailedSolutionSentences = append(result.FailedSolutionSentences, s.Text)
		}
	}
	result.Present = len(result.Sentences) > 0

	type scored struct {
		VillainScore
		score int
	}
	var hits []scored
	for _, v := range tax.Villains {
		score := 0
		for _, re := range v.Patterns {
			if re.MatchString(text) {
				score++
			}
		}
		if score > 0 {
			hits = append(hits, scored{VillainScore{Type: v.Key, Label: v.Label}, score})
		}
	}
	// Stable sort keeps declaration order on ties.
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	for _, h := range hits {
		result.AllVillainTypes = append(result.AllVillainTypes, h.VillainScore)
	}
	if len(hits) > 0 {
		key, label := hits[0].Type, hits[0].Label
		result.PrimaryVillain = &key
		result.VillainLabel = &label
	}

	return result
}
