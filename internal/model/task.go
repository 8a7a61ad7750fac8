package model

import "time"

// Task is one entry of the task list.
type Task struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Completed bool       `json:"completed"`
	CreatedAt time.Time  `json:"created_at"`
	DueDate   *time.Time `json:"due_date,omitempty"`
}

// IsOverdue reports whether a pending task's due date has passed.
func (t Task) IsOverdue(now time.Time) bool {
	return !t.Completed && t.DueDate != nil && t.DueDate.Before(now)
}

// Ref returns the read-only view handed to the interpreter.
func (t Task) Ref() TaskRef {
	return TaskRef{
		ID:        t.ID,
		Label:     t.Text,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt,
		DueDate:   t.DueDate,
	}
}

// TaskRef is a snapshot of a task as seen by the interpreter: an opaque
// identity plus the label spoken references are matched against.
type TaskRef struct {
	ID        string     `json:"id" yaml:"id"`
	Label     string     `json:"label" yaml:"label"`
	Completed bool       `json:"completed" yaml:"completed"`
	CreatedAt time.Time  `json:"created_at" yaml:"created_at"`
	DueDate   *time.Time `json:"due_date,omitempty" yaml:"due_date,omitempty"`
}

// IsOverdue reports whether the referenced task is pending and past due.
func (r TaskRef) IsOverdue(now time.Time) bool {
	return !r.Completed && r.DueDate != nil && r.DueDate.Before(now)
}

// Refs converts tasks to interpreter snapshots, preserving order.
func Refs(tasks []Task) []TaskRef {
	refs := make([]TaskRef, 0, len(tasks))
	for _, t := range tasks {
		refs = append(refs, t.Ref())
	}
	return refs
}
