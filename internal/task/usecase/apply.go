package usecase

import (
	"context"

	"voice-task-management/internal/model"
	"voice-task-management/internal/router"
	"voice-task-management/internal/task"
	repo "voice-task-management/internal/task/repository"
	"voice-task-management/internal/voice"
)

// Apply performs the store change an outcome asks for. Unknown and
// unresolved outcomes leave the store untouched; queries are answered from
// the current list.
func (uc *implUseCase) Apply(ctx context.Context, out voice.Outcome) (task.ApplyOutput, error) {
	result := task.ApplyOutput{Outcome: out}

	switch {
	case out.Add != nil:
		input := task.CreateInput{Text: out.Add.Label}
		if out.Add.Due != nil {
			due := out.Add.Due.At
			input.DueDate = &due
		}
		t, err := uc.Create(ctx, input)
		if err != nil {
			return result, err
		}
		result.Applied, result.Tasks, result.Count = true, []model.Task{t}, 1

	case out.Target != nil && out.Target.Found():
		t, err := uc.applyTarget(ctx, out.Intent, *out.Target.Task)
		if err != nil {
			return result, err
		}
		result.Applied, result.Tasks, result.Count = true, []model.Task{t}, 1

	case out.Bulk != nil:
		n, err := uc.repo.CompleteTasks(ctx, out.Bulk.TaskIDs)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Apply CompleteTasks: %v", err)
			return result, err
		}
		uc.metrics.ObserveTaskMutation("complete", n)
		result.Applied, result.Count = n > 0, n

	case out.Query != nil:
		tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Apply ListTasks: %v", err)
			return result, err
		}
		result.Tasks = selectTasks(tasks, *out.Query)
		result.Count = len(result.Tasks)
	}

	uc.l.Debugf(ctx, "uc.Apply: %s/%s applied=%v count=%d", out.Intent, out.Status, result.Applied, result.Count)
	return result, nil
}

func (uc *implUseCase) applyTarget(ctx context.Context, intent router.Intent, ref model.TaskRef) (model.Task, error) {
	if intent == router.IntentDeleteTask {
		t := model.Task{ID: ref.ID, Text: ref.Label, Completed: ref.Completed, CreatedAt: ref.CreatedAt, DueDate: ref.DueDate}
		if err := uc.Delete(ctx, ref.ID); err != nil {
			return model.Task{}, err
		}
		return t, nil
	}
	return uc.setCompleted(ctx, ref.ID, true)
}
