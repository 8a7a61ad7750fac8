// Package assistant runs a spoken command end to end: it interprets the
// transcript against the task list, applies the result to the store and
// phrases the acknowledgement. The HTTP, websocket and CLI front ends share it.
package assistant

import (
	"context"
	"fmt"
	"time"

	"voice-task-management/internal/model"
	"voice-task-management/internal/task"
	"voice-task-management/internal/voice"
	"voice-task-management/pkg/log"
)

// Request is one utterance. Exactly one of Transcript or Alternatives is
// used. When Tasks is nil the live store is snapshotted and the outcome is
// applied to it; otherwise Tasks is interpreted read-only.
type Request struct {
	Transcript   string
	Alternatives []voice.Alternative
	Now          time.Time
	Tasks        []model.TaskRef
}

// Result is what the user is told about one utterance.
type Result struct {
	Outcome      voice.Outcome `json:"outcome"`
	Announcement string        `json:"announcement"`
	Applied      bool          `json:"applied"`
	Tasks        []model.Task  `json:"tasks,omitempty"`
	Count        int           `json:"count"`
}

type Assistant struct {
	voice voice.UseCase
	tasks task.UseCase
	l     log.Logger
	clock func() time.Time
}

// New creates an Assistant. tasks may be nil, in which case every request
// must carry its own snapshot.
func New(v voice.UseCase, t task.UseCase, l log.Logger) *Assistant {
	return &Assistant{voice: v, tasks: t, l: l, clock: time.Now}
}

// Handle interprets and, for live requests, applies one utterance.
func (a *Assistant) Handle(ctx context.Context, req Request) (Result, error) {
	now := req.Now
	if now.IsZero() {
		now = a.clock()
	}

	live := req.Tasks == nil
	snapshot := req.Tasks
	if live {
		if a.tasks == nil {
			return Result{}, ErrNoStore
		}
		var err error
		snapshot, err = a.tasks.Snapshot(ctx)
		if err != nil {
			a.l.Errorf(ctx, "assistant.Handle Snapshot: %v", err)
			return Result{}, fmt.Errorf("snapshot: %w", err)
		}
	}

	var out voice.Outcome
	if len(req.Alternatives) > 0 {
		out = a.voice.InterpretAlternatives(ctx, voice.InterpretAlternativesInput{
			Alternatives: req.Alternatives,
			Now:          now,
			Tasks:        snapshot,
		})
	} else {
		out = a.voice.Interpret(ctx, voice.InterpretInput{
			Transcript: req.Transcript,
			Now:        now,
			Tasks:      snapshot,
		})
	}

	result := Result{
		Outcome:      out,
		Announcement: a.voice.Announce(out, snapshot),
	}
	if !live {
		if out.Query != nil {
			result.Count = len(out.Query.Select(snapshot))
		}
		return result, nil
	}

	applied, err := a.tasks.Apply(ctx, out)
	if err != nil {
		a.l.Errorf(ctx, "assistant.Handle Apply: %v", err)
		return result, fmt.Errorf("apply %s: %w", out.Intent, err)
	}
	result.Applied = applied.Applied
	result.Tasks = applied.Tasks
	result.Count = applied.Count

	return result, nil
}
