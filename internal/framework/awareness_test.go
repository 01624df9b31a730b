package framework

import (
	"strings"
	"testing"

	"github.com/mhailey/copyscope/internal/taxonomy"
)

func TestClassifyAwareness_LeadWins(t *testing.T) {
	tax := taxonomy.Default()
	// The opening hook is unaware-stage; the back half is pure CTA. The
	// lead segment decides.
	text := "Did you know most people have no idea this nutrient even exists? " +
		strings.Repeat("It plays a part in hundreds of processes in the body every single night. ", 3) +
		"Shop now, use code REST20, 20% off and free shipping while it lasts."

	got := ClassifyAwareness(text, tax)
	if got.Primary != "unaware" {
		t.Errorf("primary = %s, want unaware from lead", got.Primary)
	}
}

func TestClassifyAwareness_FullTextFallback(t *testing.T) {
	tax := taxonomy.Default()
	// No awareness signal in the first quarter; the closing CTA block is
	// all the signal there is.
	text := strings.Repeat("We make one thing and we make it carefully, in small batches, every week. ", 4) +
		"Use code SAVE20 for 20% off and free shipping today."

	got := ClassifyAwareness(text, tax)
	if got.Primary != "most_aware" {
		t.Errorf("primary = %s, want most_aware from full text", got.Primary)
	}
}

func TestClassifyAwareness_Unknown(t *testing.T) {
	tax := taxonomy.Default()

	if got := ClassifyAwareness("completely neutral text with no signals", tax); got.Primary != StageUnknown {
		t.Errorf("primary = %s, want unknown", got.Primary)
	}
	if got := ClassifyAwareness("", tax); got.Primary != StageUnknown {
		t.Errorf("empty text: primary = %s, want unknown", got.Primary)
	}
}
