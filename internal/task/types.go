package task

import (
	"time"

	"voice-task-management/internal/model"
	"voice-task-management/internal/voice"
)

// --- UseCase Inputs ---

type CreateInput struct {
	Text    string
	DueDate *time.Time
}

type ListInput struct {
	Filter voice.Filter // empty means all
	Now    time.Time    // reference for FilterOverdue; zero means the current time
}

// --- UseCase Outputs ---

// ListOutput holds tasks in display order: pending first, then completed.
type ListOutput struct {
	Tasks []model.Task
	Total int
}

// ApplyOutput reports what applying an outcome did to the store.
type ApplyOutput struct {
	Outcome voice.Outcome
	Applied bool         // the store was changed
	Tasks   []model.Task // added, completed or deleted tasks; for queries, the selection
	Count   int
}

// Stats summarizes the list the way the progress bar shows it.
type Stats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Overdue   int `json:"overdue"`
	Progress  int `json:"progress"` // completed share in percent, rounded
}
