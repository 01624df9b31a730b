// Package classify assigns narrative roles to segmented ad-copy sentences.
package classify

import (
	"github.com/mhailey/copyscope/internal/taxonomy"
)

// Sentence is one classified sentence. Roles holds the score for every
// role that matched at least one pattern; PrimaryRole is the top scorer,
// ties resolved by taxonomy declaration order.
type Sentence struct {
	Text        string                `json:"text"`
	PrimaryRole taxonomy.Role         `json:"primaryRole"`
	Roles       map[taxonomy.Role]int `json:"roles,omitempty"`
}

// Sentences classifies each sentence against the taxonomy's role tables.
// A role's score is the count of its pattern lists that matched at least
// once, not the total occurrence count.
func Sentences(texts []string, tax *taxonomy.Taxonomy) []Sentence {
	out := make([]Sentence, 0, len(texts))
	for _, text := range texts {
		out = append(out, classifyOne(text, tax))
	}
	return out
}

func classifyOne(text string, tax *taxonomy.Taxonomy) Sentence {
	s := Sentence{Text: text, PrimaryRole: taxonomy.RoleOther}

	best := 0
	for _, rp := range tax.Roles {
		score := 0
		for _, re := range rp.Patterns {
			if re.MatchString(text) {
				score++
			}
		}
		if score == 0 {
			continue
		}
		if s.Roles == nil {
			s.Roles = make(map[taxonomy.Role]int)
		}
		s.Roles[rp.Role] = score
		// Strict > keeps the first-declared role on ties.
		if score > best {
			best = score
			s.PrimaryRole = rp.Role
		}
	}
	return s
}

// Score returns the sentence's score for a role, zero if it never matched.
func (s Sentence) Score(role taxonomy.Role) int {
	return s.Roles[role]
}
