package framework

import (
	"strings"

	"github.com/mhailey/copyscope/internal/taxonomy"
)

// ExtractDelivery collects concrete product-delivery signals (named
// ingredients, dosages, forms, certifications, purity and sourcing
// claims), deduplicated case-insensitively across all groups.
func ExtractDelivery(text string, tax *taxonomy.Taxonomy) ProductDelivery {
	var result ProductDelivery
	seen := make(map[string]bool)

	for _, g := range tax.DeliveryGroups {
		for _, m := range g.Pattern.FindAllString(text, -1) {
			folded := strings.ToLower(m)
			if seen[folded] {
				continue
			}
			seen[folded] = true
			result.Signals = append(result.Signals, folded)
		}
	}

	result.Present = len(result.Signals) > 0
	return result
}
