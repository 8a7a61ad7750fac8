package voice

import (
	"context"

	"voice-task-management/internal/model"
)

// UseCase interprets transcribed utterances into command outcomes. Every
// method is a pure function of its input: nothing is stored between calls and
// the task snapshot is never modified.
type UseCase interface {
	// Interpret turns one transcript into exactly one Outcome.
	Interpret(ctx context.Context, input InterpretInput) Outcome

	// InterpretAlternatives interprets the recognizer's ranked alternatives
	// and returns the first recognized command.
	InterpretAlternatives(ctx context.Context, input InterpretAlternativesInput) Outcome

	// Announce formats the spoken acknowledgement of an outcome. tasks is the
	// snapshot used for Show and Count answers.
	Announce(out Outcome, tasks []model.TaskRef) string
}
