package framework

import (
	"github.com/mhailey/copyscope/internal/taxonomy"
)

// StrategyNone is reported when no sophistication strategy matched.
const StrategyNone = "none"

// ClassifySophistication scores the three response strategies and maps
// the winner to a likely market sophistication stage. The mapping only
// ever produces stages 3–5: a new-identity lead implies a stage-5 market,
// new information layered on a mechanism implies stage 4, and everything
// else reads as the stage-3 default. Stages 1 and 2 are not inferable
// from copy signals alone.
func ClassifySophistication(text string, tax *taxonomy.Taxonomy) Sophistication {
	result := Sophistication{
		LikelyStage:     3,
		PrimaryStrategy: StrategyNone,
		StrategyScores:  map[string]int{},
	}

	best := 0
	for _, s := range tax.Strategies {
		score := 0
		for _, re := range s.Patterns {
			if re.MatchString(text) {
				score++
			}
		}
		result.StrategyScores[s.Key] = score
		// Strict > keeps the first-declared strategy on ties.
		if score > best {
			best = score
			result.PrimaryStrategy = s.Key
		}
	}

	switch {
	case result.PrimaryStrategy == "new_identity":
		result.LikelyStage = 5
	case result.PrimaryStrategy == "new_information" && result.StrategyScores["new_mechanism"] > 0:
		result.LikelyStage = 4
	}

	return result
}
