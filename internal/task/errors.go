package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrEmptyText     = errors.New("task text is empty")
	ErrInvalidFilter = errors.New("invalid task filter")
)
