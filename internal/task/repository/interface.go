package repository

import (
	"context"

	"voice-task-management/internal/model"
)

// Repository is the composed interface for the task data store.
type Repository interface {
	TaskRepository
}

// TaskRepository defines all data access methods for the Task entity.
// Lists are always returned in creation order.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	CompleteTasks(ctx context.Context, ids []string) (int, error)
	DeleteTask(ctx context.Context, id string) error
	DeleteAllTasks(ctx context.Context) (int, error)
}
