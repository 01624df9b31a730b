package framework

import (
	"github.com/mhailey/copyscope/internal/taxonomy"
)

// StageUnknown is reported when neither the lead nor the full text carries
// any awareness signal.
const StageUnknown = "unknown"

// ClassifyAwareness picks the customer awareness stage. The lead (the
// first quarter of the text by character length) is scored first, since
// opening framing is a stronger awareness signal than late-ad CTA
// language; the full text is only a fallback.
func ClassifyAwareness(text string, tax *taxonomy.Taxonomy) AwarenessStage {
	lead := leadSegment(text)

	if stage := topStage(lead, tax); stage != "" {
		return AwarenessStage{Primary: stage}
	}
	if stage := topStage(text, tax); stage != "" {
		return AwarenessStage{Primary: stage}
	}
	return AwarenessStage{Primary: StageUnknown}
}

// leadSegment returns the first 25% of text, measured in runes so a
// multi-byte character is never split.
func leadSegment(text string) string {
	runes := []rune(text)
	return string(runes[:(len(runes)+3)/4])
}

// topStage returns the highest-scoring stage over segment, "" if nothing
// scored. Each pattern contributes one point when it matches at least
// once; ties go to the first-declared stage.
func topStage(segment string, tax *taxonomy.Taxonomy) string {
	best, top := 0, ""
	for _, stage := range tax.Awareness {
		score := 0
		for _, re := range stage.Patterns {
			if re.MatchString(segment) {
				score++
			}
		}
		if score > best {
			best = score
			top = stage.Key
		}
	}
	return top
}
