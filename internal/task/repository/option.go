package repository

import "time"

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	ID        string
	Text      string
	CreatedAt time.Time
	DueDate   *time.Time
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
type GetOneTaskOptions struct {
	ID string
}

// ListTasksOptions holds filter parameters for listing Tasks.
// All non-nil fields are applied as AND conditions.
type ListTasksOptions struct {
	Completed *bool
	DueAfter  *time.Time // exclusive
	DueBefore *time.Time // inclusive
}

// UpdateTaskOptions holds parameters for updating an existing Task.
type UpdateTaskOptions struct {
	ID        string
	Completed bool
}
