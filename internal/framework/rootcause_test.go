package framework

import (
	"testing"

	"github.com/mhailey/copyscope/internal/classify"
	"github.com/mhailey/copyscope/internal/segment"
	"github.com/mhailey/copyscope/internal/taxonomy"
)

func classifyText(t *testing.T, text string, tax *taxonomy.Taxonomy) []classify.Sentence {
	t.Helper()
	return classify.Sentences(segment.Sentences(text, tax.Abbreviations), tax)
}

func TestDetectRootCause_SentencesAndVillain(t *testing.T) {
	tax := taxonomy.Default()
	text := "Here's why you're always dragging through the day: a hidden magnesium deficiency. " +
		"Most sleep aids are just a band-aid that masks the problem. " +
		"Our formula works by restoring what your body is missing."

	got := DetectRootCause(text, classifyText(t, text, tax), tax)

	if !got.Present {
		t.Fatal("expected root cause present")
	}
	if len(got.Sentences) != 1 {
		t.Errorf("root cause sentences = %v, want 1", got.Sentences)
	}
	if len(got.FailedSolutionSentences) != 1 {
		t.Errorf("failed solution sentences = %v, want 1", got.FailedSolutionSentences)
	}
	if got.PrimaryVillain == nil || *got.PrimaryVillain != "hidden_deficiency" {
		t.Errorf("primary villain = %v, want hidden_deficiency", got.PrimaryVillain)
	}
	if got.VillainLabel == nil || *got.VillainLabel != "A hidden deficiency" {
		t.Errorf("villain label = %v", got.VillainLabel)
	}
}

func TestDetectRootCause_ScoreOverride(t *testing.T) {
	tax := taxonomy.Default()
	// pain_agitation wins the primary slot (2-2 tie, declared first), but
	// a root_cause score of 2 still pulls the sentence in.
	text := "If you're tired of feeling exhausted, the real culprit is a deficiency your doctor never mentions."

	sentences := classifyText(t, text, tax)
	if len(sentences) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(sentences))
	}
	if sentences[0].PrimaryRole != taxonomy.RolePainAgitation {
		t.Fatalf("primary = %s, want pain_agitation", sentences[0].PrimaryRole)
	}

	got := DetectRootCause(text, sentences, tax)
	if !got.Present {
		t.Error("expected override to pull the sentence into root cause")
	}
}

func TestDetectRootCause_VillainRanking(t *testing.T) {
	tax := taxonomy.Default()
	// industry and product_failure both score 2 patterns; the tie goes
	// to industry, which is declared first.
	text := "Big pharma cuts corners, and other products are underdosed."

	got := DetectRootCause(text, nil, tax)

	if got.PrimaryVillain == nil || *got.PrimaryVillain != "industry" {
		t.Fatalf("primary villain = %v, want industry", got.PrimaryVillain)
	}
	if len(got.AllVillainTypes) != 2 {
		t.Fatalf("all villain types = %v, want 2", got.AllVillainTypes)
	}
	if got.AllVillainTypes[0].Type != "industry" || got.AllVillainTypes[1].Type != "product_failure" {
		t.Errorf("villain order = %v", got.AllVillainTypes)
	}
	if got.Present {
		t.Error("present must track root-cause sentences, not villains")
	}
}

func TestDetectRootCause_Empty(t *testing.T) {
	tax := taxonomy.Default()

	got := DetectRootCause("", nil, tax)
	if got.Present {
		t.Error("empty input cannot have a root cause")
	}
	if got.PrimaryVillain != nil || got.VillainLabel != nil {
		t.Error("empty input cannot have a villain")
	}
}
