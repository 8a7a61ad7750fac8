package usecase

import (
	"time"

	"github.com/google/uuid"

	"voice-task-management/internal/task"
	"voice-task-management/internal/task/repository"
	"voice-task-management/pkg/log"
	"voice-task-management/pkg/metrics"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo    repository.Repository
	metrics *metrics.Metrics
	l       log.Logger
	clock   func() time.Time
	newID   func() string
}

var _ task.UseCase = (*implUseCase)(nil)

// New creates a new task UseCase implementation. metrics may be nil.
func New(repo repository.Repository, met *metrics.Metrics, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:    repo,
		metrics: met,
		l:       l,
		clock:   time.Now,
		newID:   uuid.NewString,
	}
}
