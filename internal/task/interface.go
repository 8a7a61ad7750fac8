package task

import (
	"context"
	"time"

	"voice-task-management/internal/model"
	"voice-task-management/internal/voice"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Task CRUD
	Create(ctx context.Context, input CreateInput) (model.Task, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Toggle(ctx context.Context, id string) (model.Task, error)
	Delete(ctx context.Context, id string) error
	ClearAll(ctx context.Context) (int, error)

	// Snapshot returns the read-only view the interpreter matches against, in creation order.
	Snapshot(ctx context.Context) ([]model.TaskRef, error)

	// Apply performs the store change an interpreted command asks for.
	Apply(ctx context.Context, out voice.Outcome) (ApplyOutput, error)

	Stats(ctx context.Context, now time.Time) (Stats, error)

	// DueSoon lists pending tasks due within (now, now+window].
	DueSoon(ctx context.Context, now time.Time, window time.Duration) ([]model.Task, error)
}
