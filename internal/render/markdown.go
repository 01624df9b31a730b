package render

import (
	"fmt"
	"strings"

	"github.com/mhailey/copyscope/internal/framework"
)

// Markdown renders one framework as a markdown note block.
func Markdown(fw framework.Framework) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s\n\n", fw.Name)
	fmt.Fprintf(&b, "- **Ad**: `%s` (%s, %d words)\n", fw.ID, fw.Type, fw.WordCount)
	fmt.Fprintf(&b, "- **Avatar**: %s\n", fw.TargetCustomer.Avatar)
	fmt.Fprintf(&b, "- **Mass desire**: %s\n", orDash(deref(fw.MassDesire.Primary)))
	fmt.Fprintf(&b, "- **Villain**: %s\n", orDash(deref(fw.RootCause.VillainLabel)))
	fmt.Fprintf(&b, "- **Awareness**: %s\n", fw.AwarenessStage.Primary)
	fmt.Fprintf(&b, "- **Sophistication**: stage %d, %s\n", fw.Sophistication.LikelyStage, fw.Sophistication.PrimaryStrategy)
	fmt.Fprintf(&b, "- **Creative style**: %s\n", fw.BigIdea.PrimaryStyle)

	if len(fw.Mechanism.Chain) > 0 {
		b.WriteString("\n### Mechanism chain\n\n")
		for _, step := range fw.Mechanism.Chain {
			fmt.Fprintf(&b, "%d. **%s**: %s\n", step.Step, step.Label, strings.Join(step.Sentences, " "))
		}
		if !fw.Mechanism.Complete {
			fmt.Fprintf(&b, "\nMissing steps: %s\n", strings.Join(fw.Mechanism.MissingSteps, ", "))
		}
	}

	if len(fw.PainPoints.All) > 0 {
		b.WriteString("\n### Pain points\n\n")
		for _, key := range sortedKeys(fw.PainPoints.ByCategory) {
			hits := fw.PainPoints.ByCategory[key]
			fmt.Fprintf(&b, "- %s: %s\n", hits.Label, strings.Join(hits.Matches, ", "))
		}
	}

	fmt.Fprintf(&b, "\n> %s\n", fw.BigIdea.Concept)

	return b.String()
}
