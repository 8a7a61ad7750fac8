package usecase

import (
	"sort"

	"voice-task-management/internal/model"
	"voice-task-management/internal/voice"
)

func validFilter(f voice.Filter) bool {
	switch f {
	case voice.FilterAll, voice.FilterPending, voice.FilterCompleted, voice.FilterOverdue:
		return true
	}
	return false
}

func selectTasks(tasks []model.Task, q voice.QueryPayload) []model.Task {
	selected := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if q.Matches(t.Ref()) {
			selected = append(selected, t)
		}
	}
	return selected
}

// SortForDisplay orders pending tasks before completed ones, keeping
// creation order within each group.
func SortForDisplay(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return !tasks[i].Completed && tasks[j].Completed
	})
}

func sortByDue(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].DueDate.Before(*tasks[j].DueDate)
	})
}
