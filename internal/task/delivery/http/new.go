package http

import (
	"time"

	"voice-task-management/internal/task"
	"voice-task-management/pkg/log"
)

type handler struct {
	l     log.Logger
	uc    task.UseCase
	clock func() time.Time
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		clock: time.Now,
	}
}
