package framework

import (
	"github.com/mhailey/copyscope/internal/classify"
	"github.com/mhailey/copyscope/internal/taxonomy"
)

// canonicalSteps is the fixed narrative order the chain is rebuilt into,
// regardless of sentence order in the source copy.
var canonicalSteps = []struct {
	role  string
	label string
	from  taxonomy.Role
	limit int
}{
	{"problem_state", "The problem", taxonomy.RolePainAgitation, 2},
	{"root_cause", "The real cause", taxonomy.RoleRootCause, 3},
	{"why_others_fail", "Why other fixes fail", taxonomy.RoleFailedSolutions, 2},
	{"how_this_works", "How this works", taxonomy.RoleMechanismHow, 3},
	{"outcome", "The payoff", taxonomy.RoleOutcomePromise, 2},
}

// BuildMechanism reconstructs the canonical 5-step mechanism narrative.
// Present is keyed to the how_this_works step alone: an ad can articulate
// its mechanism without ever naming the problem or the payoff, and that
// still counts as a present (if incomplete) chain.
func BuildMechanism(sentences []classify.Sentence) Mechanism {
	var result Mechanism

	step := 0
	for _, cs := range canonicalSteps {
		var picked []string
		for _, s := range sentences {
			if s.PrimaryRole != cs.from {
				continue
			}
			picked = append(picked, s.Text)
			if len(picked) == cs.limit {
				break
			}
		}

		if len(picked) == 0 {
			result.MissingSteps = append(result.MissingSteps, cs.role)
			continue
		}

		step++
		result.Chain = append(result.Chain, ChainStep{
			Step:      step,
			Role:      cs.role,
			Label:     cs.label,
			Sentences: picked,
		})
		if cs.role == "how_this_works" {
			result.Present = true
		}
	}

	result.StepsFound = step
	result.Complete = len(result.MissingSteps) == 0
	return result
}
