// Package render formats extracted frameworks for terminal and markdown
// output. The cross-ad report formatter lives downstream; this is the
// single-ad view the CLI prints.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mhailey/copyscope/internal/framework"
)

// Text renders one framework as aligned terminal output.
func Text(fw framework.Framework) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (%s, %d words)\n", fw.Name, fw.Type, fw.WordCount)

	b.WriteString("\nTarget customer\n")
	fmt.Fprintf(&b, "  %-16s %s\n", "avatar", fw.TargetCustomer.Avatar)
	if len(fw.TargetCustomer.Demographics) > 0 {
		fmt.Fprintf(&b, "  %-16s %s\n", "demographics", strings.Join(fw.TargetCustomer.Demographics, ", "))
	}
	if len(fw.TargetCustomer.Psychographics) > 0 {
		fmt.Fprintf(&b, "  %-16s %s\n", "psychographics", strings.Join(fw.TargetCustomer.Psychographics, "; "))
	}

	b.WriteString("\nNarrative\n")
	fmt.Fprintf(&b, "  %-16s %s\n", "mass desire", orDash(deref(fw.MassDesire.Primary)))
	fmt.Fprintf(&b, "  %-16s %s\n", "villain", orDash(deref(fw.RootCause.VillainLabel)))
	fmt.Fprintf(&b, "  %-16s %s\n", "mechanism", mechanismSummary(fw.Mechanism))
	fmt.Fprintf(&b, "  %-16s %s\n", "awareness", fw.AwarenessStage.Primary)
	fmt.Fprintf(&b, "  %-16s stage %d (%s)\n", "sophistication", fw.Sophistication.LikelyStage, fw.Sophistication.PrimaryStrategy)

	if len(fw.PainPoints.All) > 0 {
		b.WriteString("\nPain points\n")
		for _, key := range sortedKeys(fw.PainPoints.ByCategory) {
			hits := fw.PainPoints.ByCategory[key]
			fmt.Fprintf(&b, "  %-28s %s\n", hits.Label, strings.Join(hits.Matches, ", "))
		}
	}

	if fw.ProductDelivery.Present {
		b.WriteString("\nDelivery signals\n")
		fmt.Fprintf(&b, "  %s\n", strings.Join(fw.ProductDelivery.Signals, ", "))
	}

	b.WriteString("\nBig idea\n")
	fmt.Fprintf(&b, "  %-16s %s\n", "style", fw.BigIdea.PrimaryStyle)
	fmt.Fprintf(&b, "  %-16s %s\n", "concept", fw.BigIdea.Concept)

	return b.String()
}

func mechanismSummary(m framework.Mechanism) string {
	switch {
	case m.Complete:
		return fmt.Sprintf("present, complete (%d steps)", m.StepsFound)
	case m.Present:
		return fmt.Sprintf("present, missing %s", strings.Join(m.MissingSteps, ", "))
	default:
		return "absent"
	}
}

func sortedKeys(m map[string]framework.CategoryHits) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orDash(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
