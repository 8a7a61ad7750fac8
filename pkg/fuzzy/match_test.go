package fuzzy_test

import (
	"testing"

	"voice-task-management/pkg/fuzzy"
)

func TestBestOf(t *testing.T) {
	candidates := []fuzzy.Candidate[int]{
		{Key: 1, Text: "buy groceries"},
		{Key: 2, Text: "call mom"},
		{Key: 3, Text: "buy milk"},
	}

	t.Run("Misspelled query matches", func(t *testing.T) {
		got, ok := fuzzy.BestOf(candidates, "Grocries", 0.5)
		if !ok || got.Key != 1 {
			t.Fatalf("BestOf() = %+v, %v; want key 1", got, ok)
		}
	})

	t.Run("Below threshold", func(t *testing.T) {
		if got, ok := fuzzy.BestOf(candidates, "file taxes", 0.5); ok {
			t.Errorf("expected no match, got %+v", got)
		}
	})

	t.Run("No candidates", func(t *testing.T) {
		if _, ok := fuzzy.BestOf([]fuzzy.Candidate[int](nil), "anything", 0); ok {
			t.Errorf("expected no match on empty candidate list")
		}
	})

	t.Run("Tie keeps first candidate", func(t *testing.T) {
		dupes := []fuzzy.Candidate[string]{
			{Key: "first", Text: "walk dog"},
			{Key: "second", Text: "walk dog"},
		}
		got, ok := fuzzy.BestOf(dupes, "walk dog", 0.5)
		if !ok || got.Key != "first" {
			t.Errorf("BestOf() = %+v, want first", got)
		}
	})

	t.Run("Threshold is inclusive", func(t *testing.T) {
		got, ok := fuzzy.BestOf(candidates, "milk", 0.5)
		if !ok || got.Key != 3 || got.Score != 0.5 {
			t.Errorf("BestOf() = %+v, %v; want key 3 at 0.5", got, ok)
		}
	})
}
