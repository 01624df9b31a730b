package framework

import (
	"strings"

	"github.com/mhailey/copyscope/internal/adcopy"
	"github.com/mhailey/copyscope/internal/classify"
	"github.com/mhailey/copyscope/internal/segment"
	"github.com/mhailey/copyscope/internal/taxonomy"
)

// Extract runs the full pipeline over one resolved ad and assembles its
// Framework record. It is total over any text, including empty: every
// detector degrades to its empty or sentinel value, never panics. Callers
// are responsible for adcopy.Ad.Validate before extraction.
func Extract(ad adcopy.Ad, tax *taxonomy.Taxonomy) Framework {
	text := ad.Text()

	sentences := classify.Sentences(segment.Sentences(text, tax.Abbreviations), tax)

	pains := ExtractPainPoints(text, tax)
	rootCause := DetectRootCause(text, sentences, tax)
	mechanism := BuildMechanism(sentences)
	desire := DetectMassDesire(text, tax)

	return Framework{
		ID:              ad.ID,
		Name:            ad.Name,
		Type:            ad.Type,
		WordCount:       len(strings.Fields(text)),
		TargetCustomer:  SynthesizeCustomer(text, pains, tax),
		MassDesire:      desire,
		PainPoints:      pains,
		RootCause:       rootCause,
		Mechanism:       mechanism,
		ProductDelivery: ExtractDelivery(text, tax),
		Sophistication:  ClassifySophistication(text, tax),
		AwarenessStage:  ClassifyAwareness(text, tax),
		BigIdea:         SynthesizeBigIdea(text, pains, rootCause, mechanism, desire, tax),
	}
}
