package memory

import (
	"sync"

	"voice-task-management/internal/model"
	"voice-task-management/internal/task/repository"
	"voice-task-management/pkg/log"
)

type implRepository struct {
	mu    sync.RWMutex
	tasks []model.Task
	l     log.Logger
}

// New creates an in-process Repository. Tasks live as long as the process.
func New(l log.Logger) repository.Repository {
	return &implRepository{l: l}
}
