package usecase

import (
	"context"
	"math"
	"time"

	"voice-task-management/internal/model"
	"voice-task-management/internal/task"
	repo "voice-task-management/internal/task/repository"
)

// Stats counts the list as of now.
func (uc *implUseCase) Stats(ctx context.Context, now time.Time) (task.Stats, error) {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats ListTasks: %v", err)
		return task.Stats{}, err
	}
	return computeStats(tasks, now), nil
}

func computeStats(tasks []model.Task, now time.Time) task.Stats {
	stats := task.Stats{Total: len(tasks)}
	if stats.Total == 0 {
		return stats
	}

	for _, t := range tasks {
		if t.Completed {
			stats.Completed++
		}
		if t.IsOverdue(now) {
			stats.Overdue++
		}
	}
	stats.Pending = stats.Total - stats.Completed
	stats.Progress = int(math.Round(float64(stats.Completed) / float64(stats.Total) * 100))

	return stats
}

// DueSoon lists pending tasks due in (now, now+window], earliest first.
func (uc *implUseCase) DueSoon(ctx context.Context, now time.Time, window time.Duration) ([]model.Task, error) {
	pending := false
	until := now.Add(window)

	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		Completed: &pending,
		DueAfter:  &now,
		DueBefore: &until,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DueSoon ListTasks: %v", err)
		return nil, err
	}

	sortByDue(tasks)
	return tasks, nil
}
