// Package adcopy defines the resolved ad record the extraction engine
// consumes, plus loaders for the JSON and JSONL dump formats the upstream
// resolution stage produces.
package adcopy

import "fmt"

// Ad types as produced by the upstream resolution stage.
const (
	TypeStatic = "static"
	TypeVideo  = "video"
)

// ResolvedCopy is the ad's final analyzable text and where it came from
// (primary text, transcript, OCR).
type ResolvedCopy struct {
	Text   *string `json:"text"`
	Source string  `json:"source"`
}

// Ad is one resolved ad record. Only ID, Name, Type, and the resolved
// text participate in extraction; the rest is carried for reporting.
type Ad struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Type           string       `json:"type"`
	Page           string       `json:"page,omitempty"`
	StartedRunning string       `json:"startedRunning,omitempty"`
	ResolvedCopy   ResolvedCopy `json:"resolvedCopy"`
}

// Validate enforces the engine's one precondition: resolved copy text must
// be a present string. Empty is fine; absent or null is a caller bug the
// boundary rejects instead of coalescing away.
func (a Ad) Validate() error {
	if a.ResolvedCopy.Text == nil {
		return fmt.Errorf("ad %s: resolvedCopy.text missing", a.ID)
	}
	return nil
}

// Text returns the resolved copy text. Callers must Validate first;
// an unvalidated nil text reads as empty.
func (a Ad) Text() string {
	if a.ResolvedCopy.Text == nil {
		return ""
	}
	return *a.ResolvedCopy.Text
}
