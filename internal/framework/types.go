// Package framework extracts a direct-response marketing framework from a
// single ad's resolved copy: who it targets, what it promises, what pain
// it agitates, what villain it blames, and how its mechanism narrative
// hangs together. Every detector is a pure function of its input text and
// taxonomy, so extraction is safe to run in parallel across ads.
package framework

// CategoryHits holds the deduplicated matches for one pain category.
type CategoryHits struct {
	Label   string   `json:"label"`
	Matches []string `json:"matches"`
}

// PainPoints groups pain-language matches by category. Categories with no
// matches are omitted; All flattens matches in category declaration order.
type PainPoints struct {
	ByCategory map[string]CategoryHits `json:"byCategory"`
	All        []string                `json:"all"`
}

// VillainScore is one villain archetype that matched the ad.
type VillainScore struct {
	Type  string `json:"type"`
	Label string `json:"label"`
}

// RootCause captures the ad's villain narrative: which sentences explain
// the claimed cause, which dismiss rival solutions, and which archetype
// the blame fits.
type RootCause struct {
	Present                 bool           `json:"present"`
	Sentences               []string       `json:"sentences"`
	FailedSolutionSentences []string       `json:"failedSolutionSentences"`
	PrimaryVillain          *string        `json:"primaryVillain"`
	VillainLabel            *string        `json:"villainLabel"`
	AllVillainTypes         []VillainScore `json:"allVillainTypes"`
}

// ChainStep is one step of the canonical mechanism narrative.
type ChainStep struct {
	Step      int      `json:"step"`
	Role      string   `json:"role"`
	Label     string   `json:"label"`
	Sentences []string `json:"sentences"`
}

// Mechanism is the reconstructed 5-step narrative chain. Present reflects
// only the how_this_works step; Complete requires every step. A chain can
// be present yet incomplete, never the other way around.
type Mechanism struct {
	Present      bool        `json:"present"`
	Chain        []ChainStep `json:"chain"`
	Complete     bool        `json:"complete"`
	MissingSteps []string    `json:"missingSteps"`
	StepsFound   int         `json:"stepsFound"`
}

// TargetCustomer is the synthesized customer avatar.
type TargetCustomer struct {
	Demographics   []string `json:"demographics"`
	Psychographics []string `json:"psychographics"`
	Avatar         string   `json:"avatar"`
}

// DesireScore is one mass desire with its occurrence count.
type DesireScore struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Hits  int    `json:"hits"`
}

// MassDesire ranks the universal wants the ad appeals to.
type MassDesire struct {
	All        []DesireScore `json:"all"`
	Primary    *string       `json:"primary"`
	PrimaryKey *string       `json:"primaryKey"`
}

// AwarenessStage holds the classified customer awareness stage.
type AwarenessStage struct {
	Primary string `json:"primary"`
}

// Sophistication holds the market sophistication read.
type Sophistication struct {
	LikelyStage     int            `json:"likelyStage"`
	PrimaryStrategy string         `json:"primaryStrategy"`
	StrategyScores  map[string]int `json:"strategyScores"`
}

// ProductDelivery lists concrete product-credibility signals.
type ProductDelivery struct {
	Signals []string `json:"signals"`
	Present bool     `json:"present"`
}

// BigIdea ties the extracted pieces into one concept sentence plus the
// ad's creative styles in taxonomy declaration order.
type BigIdea struct {
	Concept      string   `json:"concept"`
	PrimaryStyle string   `json:"primaryStyle"`
	AllStyles    []string `json:"allStyles"`
}

// Framework is the full extraction result for one ad. Field names form
// the interchange contract consumed by downstream aggregation.
type Framework struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	WordCount       int             `json:"wordCount"`
	TargetCustomer  TargetCustomer  `json:"targetCustomer"`
	MassDesire      MassDesire      `json:"massDesire"`
	PainPoints      PainPoints      `json:"painPoints"`
	RootCause       RootCause       `json:"rootCause"`
	Mechanism       Mechanism       `json:"mechanism"`
	ProductDelivery ProductDelivery `json:"productDelivery"`
	Sophistication  Sophistication  `json:"sophistication"`
	AwarenessStage  AwarenessStage  `json:"awarenessStage"`
	BigIdea         BigIdea         `json:"bigIdea"`
}
