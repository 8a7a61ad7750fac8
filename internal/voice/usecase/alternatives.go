package usecase

import (
	"context"
	"sort"

	"voice-task-management/internal/voice"
)

// InterpretAlternatives tries the alternatives from most to least confident
// (alternatives without a confidence keep their order after the scored ones)
// and returns the first outcome with a recognized command. When none is
// recognized, the outcome of the top alternative is returned.
func (uc *implUseCase) InterpretAlternatives(ctx context.Context, input voice.InterpretAlternativesInput) voice.Outcome {
	alts := rankAlternatives(input.Alternatives)
	if len(alts) == 0 {
		return uc.Interpret(ctx, voice.InterpretInput{Now: input.Now, Tasks: input.Tasks})
	}

	now := input.Now
	if now.IsZero() {
		now = uc.clock()
	}

	var first voice.Outcome
	for i, alt := range alts {
		out := uc.Interpret(ctx, voice.InterpretInput{Transcript: alt.Text, Now: now, Tasks: input.Tasks})
		if out.Recognized() {
			if i > 0 {
				uc.l.Debugf(ctx, "voice.usecase.InterpretAlternatives: alternative %d %q recognized", i, alt.Text)
			}
			return out
		}
		if i == 0 {
			first = out
		}
	}
	return first
}

func rankAlternatives(alts []voice.Alternative) []voice.Alternative {
	ranked := append([]voice.Alternative(nil), alts...)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i].Confidence, ranked[j].Confidence
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a > *b
		}
	})
	return ranked
}
