// Package taxonomy holds the compiled pattern tables that drive every
// detector in the extraction engine. Tables are ordered slices, never maps:
// ranking ties are broken by declaration order, so order is load-bearing.
package taxonomy

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Role is a narrative role a sentence can play in ad copy.
type Role string

const (
	RolePainAgitation   Role = "pain_agitation"
	RoleRootCause       Role = "root_cause"
	RoleFailedSolutions Role = "failed_solutions"
	RoleMechanismHow    Role = "mechanism_how"
	RoleProductDetail   Role = "product_detail"
	RoleOutcomePromise  Role = "outcome_promise"
	RoleSocialProof     Role = "social_proof"
	RoleCTA             Role = "cta"
	RoleOther           Role = "other"
)

// RolePatterns is one role's ordered pattern list. A sentence's score for
// the role is the number of patterns that matched at least once.
type RolePatterns struct {
	Role     Role
	Patterns []*regexp.Regexp
}

// PainCategory matches one family of pain-point language in full text.
type PainCategory struct {
	Key     string
	Label   string
	Pattern *regexp.Regexp
}

// VillainType is one villain archetype, scored by how many of its
// patterns matched the full text.
type VillainType struct {
	Key      string
	Label    string
	Patterns []*regexp.Regexp
}

// DesireCategory is a mass desire, scored by occurrence count of a single
// pattern (unlike roles and villains, which count matching pattern lists).
type DesireCategory struct {
	Key     string
	Label   string
	Pattern *regexp.Regexp
}

// AwarenessStage holds the signal patterns for one customer awareness stage.
type AwarenessStage struct {
	Key      string
	Patterns []*regexp.Regexp
}

// Strategy is a market sophistication response strategy.
type Strategy struct {
	Key      string
	Patterns []*regexp.Regexp
}

// SignalGroup is one group of product delivery signals.
type SignalGroup struct {
	Key     string
	Pattern *regexp.Regexp
}

// CreativeStyle is a named narrative style, tested in declaration order.
type CreativeStyle struct {
	Name    string
	Pattern *regexp.Regexp
}

// Demographic classes steer how avatar tags are assembled into the WHO
// clause of the synthesized avatar sentence.
const (
	ClassAge         = "age"
	ClassGender      = "gender"
	ClassRole        = "role"
	ClassSituational = "situational"
)

// Demographic matches one demographic signal. When Capture is true the
// first capture group is substituted into Label via %s (age captures).
type Demographic struct {
	Class   string
	Label   string
	Capture bool
	Pattern *regexp.Regexp
}

// Psychographic matches one mindset signal.
type Psychographic struct {
	Label   string
	Pattern *regexp.Regexp
}

// Taxonomy is the full compiled rule set for the extraction engine.
// All fields are read-only after construction; a single Taxonomy is safe
// to share across goroutines because regexp matching is stateless.
type Taxonomy struct {
	Roles          []RolePatterns
	PainCategories []PainCategory
	Villains       []VillainType
	Desires        []DesireCategory
	Awareness      []AwarenessStage
	Strategies     []Strategy
	DeliveryGroups []SignalGroup
	Styles         []CreativeStyle
	Demographics   []Demographic
	Psychographics []Psychographic
	Abbreviations  []string
}

// File is the TOML representation of a taxonomy. A table that is present
// fully replaces the default for that table; absent tables keep defaults.
type File struct {
	Abbreviations []string `toml:"abbreviations"`

	Roles []struct {
		Role     string   `toml:"role"`
		Patterns []string `toml:"patterns"`
	} `toml:"roles"`

	PainCategories []struct {
		Key     string `toml:"key"`
		Label   string `toml:"label"`
		Pattern string `toml:"pattern"`
	} `toml:"pain_categories"`

	Villains []struct {
		Key      string   `toml:"key"`
		Label    string   `toml:"label"`
		Patterns []string `toml:"patterns"`
	} `toml:"villains"`

	Desires []struct {
		Key     string `toml:"key"`
		Label   string `toml:"label"`
		Pattern string `toml:"pattern"`
	} `toml:"desires"`

	Awareness []struct {
		Key      string   `toml:"key"`
		Patterns []string `toml:"patterns"`
	} `toml:"awareness"`

	Strategies []struct {
		Key      string   `toml:"key"`
		Patterns []string `toml:"patterns"`
	} `toml:"strategies"`

	DeliveryGroups []struct {
		Key     string `toml:"key"`
		Pattern string `toml:"pattern"`
	} `toml:"delivery_groups"`

	Styles []struct {
		Name    string `toml:"name"`
		Pattern string `toml:"pattern"`
	} `toml:"styles"`

	Demographics []struct {
		Class   string `toml:"class"`
		Label   string `toml:"label"`
		Capture bool   `toml:"capture"`
		Pattern string `toml:"pattern"`
	} `toml:"demographics"`

	Psychographics []struct {
		Label   string `toml:"label"`
		Pattern string `toml:"pattern"`
	} `toml:"psychographics"`
}

// Load reads a taxonomy TOML file and compiles it over the defaults.
func Load(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy: %w", err)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse taxonomy %s: %w", path, err)
	}

	tax, err := f.Compile()
	if err != nil {
		return nil, fmt.Errorf("taxonomy %s: %w", path, err)
	}
	return tax, nil
}

// Compile validates and compiles a taxonomy file, filling any table the
// file does not declare from the built-in defaults.
func (f File) Compile() (*Taxonomy, error) {
	def := Default()
	tax := &Taxonomy{Abbreviations: f.Abbreviations}

	if len(tax.Abbreviations) == 0 {
		tax.Abbreviations = def.Abbreviations
	}

	if len(f.Roles) == 0 {
		tax.Roles = def.Roles
	} else {
		for _, r := range f.Roles {
			pats, err := compileAll("role "+r.Role, r.Patterns)
			if err != nil {
				return nil, err
			}
			tax.Roles = append(tax.Roles, RolePatterns{Role: Role(r.Role), Patterns: pats})
		}
	}

	if len(f.PainCategories) == 0 {
		tax.PainCategories = def.PainCategories
	} else {
		for _, c := range f.PainCategories {
			re, err := compileOne("pain category "+c.Key, c.Pattern)
			if err != nil {
				return nil, err
			}
			tax.PainCategories = append(tax.PainCategories, PainCategory{Key: c.Key, Label: c.Label, Pattern: re})
		}
	}

	if len(f.Villains) == 0 {
		tax.Villains = def.Villains
	} else {
		for _, v := range f.Villains {
			pats, err := compileAll("villain "+v.Key, v.Patterns)
			if err != nil {
				return nil, err
			}
			tax.Villains = append(tax.Villains, VillainType{Key: v.Key, Label: v.Label, Patterns: pats})
		}
	}

	if len(f.Desires) == 0 {
		tax.Desires = def.Desires
	} else {
		for _, d := range f.Desires {
			re, err := compileOne("desire "+d.Key, d.Pattern)
			if err != nil {
				return nil, err
			}
			tax.Desires = append(tax.Desires, DesireCategory{Key: d.Key, Label: d.Label, Pattern: re})
		}
	}

	if len(f.Awareness) == 0 {
		tax.Awareness = def.Awareness
	} else {
		for _, a := range f.Awareness {
			pats, err := compileAll("awareness stage "+a.Key, a.Patterns)
			if err != nil {
				return nil, err
			}
			tax.Awareness = append(tax.Awareness, AwarenessStage{Key: a.Key, Patterns: pats})
		}
	}

	if len(f.Strategies) == 0 {
		tax.Strategies = def.Strategies
	} else {
		for _, s := range f.Strategies {
			pats, err := compileAll("strategy "+s.Key, s.Patterns)
			if err != nil {
				return nil, err
			}
			tax.Strategies = append(tax.Strategies, Strategy{Key: s.Key, Patterns: pats})
		}
	}

	if len(f.DeliveryGroups) == 0 {
		tax.DeliveryGroups = def.DeliveryGroups
	} else {
		for _, g := range f.DeliveryGroups {
			re, err := compileOne("delivery group "+g.Key, g.Pattern)
			if err != nil {
				return nil, err
			}
			tax.DeliveryGroups = append(tax.DeliveryGroups, SignalGroup{Key: g.Key, Pattern: re})
		}
	}

	if len(f.Styles) == 0 {
		tax.Styles = def.Styles
	} else {
		for _, s := range f.Styles {
			re, err := compileOne("style "+s.Name, s.Pattern)
			if err != nil {
				return nil, err
			}
			tax.Styles = append(tax.Styles, CreativeStyle{Name: s.Name, Pattern: re})
		}
	}

	if len(f.Demographics) == 0 {
		tax.Demographics = def.Demographics
	} else {
		for _, d := range f.Demographics {
			re, err := compileOne("demographic "+d.Label, d.Pattern)
			if err != nil {
				return nil, err
			}
			tax.Demographics = append(tax.Demographics, Demographic{Class: d.Class, Label: d.Label, Capture: d.Capture, Pattern: re})
		}
	}

	if len(f.Psychographics) == 0 {
		tax.Psychographics = def.Psychographics
	} else {
		for _, p := range f.Psychographics {
			re, err := compileOne("psychographic "+p.Label, p.Pattern)
			if err != nil {
				return nil, err
			}
			tax.Psychographics = append(tax.Psychographics, Psychographic{Label: p.Label, Pattern: re})
		}
	}

	return tax, nil
}

func compileOne(name, pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%s: bad pattern %q: %w", name, pattern, err)
	}
	return re, nil
}

func compileAll(name string, patterns []string) ([]*regexp.Regexp, error) {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := compileOne(name, p)
		if err != nil {
			return nil, err
		}
		res = append(res, re)
	}
	return res, nil
}
