package matcher

import "voice-task-management/internal/model"

// ResolveThreshold is the minimum similarity for a spoken reference to name a task.
const ResolveThreshold = 0.5

// TaskMatch represents a resolved task reference
type TaskMatch struct {
	Task       model.TaskRef
	Query      string  // normalized query the task was matched with
	MatchScore float64 // similarity of Query and the normalized label (0-1)
}
