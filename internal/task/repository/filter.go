package repository

import "voice-task-management/internal/model"

// Matches applies the options to a task held in memory.
func (o ListTasksOptions) Matches(t model.Task) bool {
	if o.Completed != nil && t.Completed != *o.Completed {
		return false
	}
	if o.DueAfter != nil || o.DueBefore != nil {
		if t.DueDate == nil {
			return false
		}
		if o.DueAfter != nil && !t.DueDate.After(*o.DueAfter) {
			return false
		}
		if o.DueBefore != nil && t.DueDate.After(*o.DueBefore) {
			return false
		}
	}
	return true
}
