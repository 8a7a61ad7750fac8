package http

import (
	"context"

	"voice-task-management/internal/assistant"
	"voice-task-management/pkg/log"
)

// Assistant runs one utterance against the task list.
type Assistant interface {
	Handle(ctx context.Context, req assistant.Request) (assistant.Result, error)
}

type handler struct {
	l  log.Logger
	as Assistant
}

// New creates a new HTTP handler for spoken commands.
func New(l log.Logger, as Assistant) *handler {
	return &handler{
		l:  l,
		as: as,
	}
}
