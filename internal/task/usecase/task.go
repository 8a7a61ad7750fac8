package usecase

import (
	"context"
	"errors"
	"strings"

	"voice-task-management/internal/model"
	"voice-task-management/internal/task"
	repo "voice-task-management/internal/task/repository"
	"voice-task-management/internal/voice"
)

// Create adds a task at the end of the list.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (model.Task, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return model.Task{}, task.ErrEmptyText
	}

	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		ID:        uc.newID(),
		Text:      text,
		CreatedAt: uc.clock().UTC(),
		DueDate:   input.DueDate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return model.Task{}, err
	}

	uc.metrics.ObserveTaskMutation("add", 1)
	return t, nil
}

// List returns the selected tasks, pending first.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	filter := input.Filter
	if filter == "" {
		filter = voice.FilterAll
	}
	if !validFilter(filter) {
		return task.ListOutput{}, task.ErrInvalidFilter
	}

	now := input.Now
	if now.IsZero() {
		now = uc.clock()
	}

	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	selected := selectTasks(tasks, voice.QueryPayload{Filter: filter, AsOf: now})
	SortForDisplay(selected)

	return task.ListOutput{Tasks: selected, Total: len(selected)}, nil
}

// Toggle flips the completion flag of a task.
func (uc *implUseCase) Toggle(ctx context.Context, id string) (model.Task, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Toggle GetOneTask: %v", err)
		return model.Task{}, err
	}
	if existing.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}

	return uc.setCompleted(ctx, id, !existing.Completed)
}

// Delete removes a task by ID.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}

	uc.metrics.ObserveTaskMutation("delete", 1)
	return nil
}

// ClearAll removes every task and returns how many were removed.
func (uc *implUseCase) ClearAll(ctx context.Context) (int, error) {
	n, err := uc.repo.DeleteAllTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ClearAll DeleteAllTasks: %v", err)
		return 0, err
	}

	uc.metrics.ObserveTaskMutation("clear", n)
	uc.l.Infof(ctx, "uc.ClearAll: removed %d tasks", n)
	return n, nil
}

// Snapshot returns every task in creation order.
func (uc *implUseCase) Snapshot(ctx context.Context) ([]model.TaskRef, error) {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Snapshot ListTasks: %v", err)
		return nil, err
	}
	return model.Refs(tasks), nil
}

func (uc *implUseCase) setCompleted(ctx context.Context, id string, completed bool) (model.Task, error) {
	t, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{ID: id, Completed: completed})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Task{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.setCompleted UpdateTask: %v", err)
		return model.Task{}, err
	}

	op := "reopen"
	if completed {
		op = "complete"
	}
	uc.metrics.ObserveTaskMutation(op, 1)
	return t, nil
}
