// Package segment splits raw ad copy into candidate sentences.
package segment

import (
	"regexp"
	"strings"
)

// Fragments at or below this length carry no classifiable signal.
const minSentenceLen = 16

// sentinel stands in for protected periods so they survive the split.
const sentinel = '\x01'

var (
	decimalPeriod = regexp.MustCompile(`(\d)\.(\d)`)
	boundary      = regexp.MustCompile(`([.!?])\s+`)
)

// Sentences splits text into sentences, protecting abbreviation and
// decimal periods, and drops fragments of 15 characters or fewer.
// It is pure and deterministic; empty input yields an empty slice.
func Sentences(text string, abbreviations []string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	protected := text
	for _, abbr := range abbreviations {
		if !strings.HasSuffix(abbr, ".") {
			continue
		}
		guarded := abbr[:len(abbr)-1] + string(sentinel)
		protected = strings.ReplaceAll(protected, abbr, guarded)
	}
	protected = decimalPeriod.ReplaceAllString(protected, "$1"+string(sentinel)+"$2")

	// Keep the terminator attached, split on the whitespace after it.
	marked := boundary.ReplaceAllString(protected, "$1\x00")

	var out []string
	for _, piece := range strings.Split(marked, "\x00") {
		restored := strings.ReplaceAll(piece, string(sentinel), ".")
		trimmed := strings.TrimSpace(restored)
		if len(trimmed) < minSentenceLen {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
