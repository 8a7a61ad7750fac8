package memory_test

import (
	"context"
	"testing"
	"time"

	"voice-task-management/internal/task/repository"
	"voice-task-management/internal/task/repository/memory"
	"voice-task-management/internal/task/repository/repotest"
	"voice-task-management/pkg/log"
)

func TestRepository(t *testing.T) {
	repotest.Run(t, func(t *testing.T) repository.Repository {
		return memory.New(log.NewNop())
	})
}

func TestReturnedTasksAreCopies(t *testing.T) {
	ctx := context.Background()
	r := memory.New(log.NewNop())
	due := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	created, _ := r.CreateTask(ctx, repository.CreateTaskOptions{ID: "a", Text: "x", DueDate: &due})
	*created.DueDate = created.DueDate.Add(time.Hour)
	due = due.Add(2 * time.Hour)

	got, _ := r.GetOneTask(ctx, repository.GetOneTaskOptions{ID: "a"})
	if !got.DueDate.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("stored due date changed through a returned pointer: %v", got.DueDate)
	}
}
