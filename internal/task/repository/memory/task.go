package memory

import (
	"context"
	"slices"

	"voice-task-management/internal/model"
	repo "voice-task-management/internal/task/repository"
)

func (r *implRepository) CreateTask(_ context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(opt.ID) >= 0 {
		return model.Task{}, repo.ErrFailedToInsert
	}

	t := model.Task{
		ID:        opt.ID,
		Text:      opt.Text,
		CreatedAt: opt.CreatedAt,
		DueDate:   cloneTime(opt.DueDate),
	}
	r.tasks = append(r.tasks, t)
	return clone(t), nil
}

// GetOneTask returns a zero Task when nothing matches.
func (r *implRepository) GetOneTask(_ context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(opt.ID); i >= 0 {
		return clone(r.tasks[i]), nil
	}
	return model.Task{}, nil
}

func (r *implRepository) ListTasks(_ context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]model.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if opt.Matches(t) {
			tasks = append(tasks, clone(t))
		}
	}
	return tasks, nil
}

func (r *implRepository) UpdateTask(_ context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(opt.ID)
	if i < 0 {
		return model.Task{}, repo.ErrNotFound
	}
	r.tasks[i].Completed = opt.Completed
	return clone(r.tasks[i]), nil
}

func (r *implRepository) CompleteTasks(_ context.Context, ids []string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for i := range r.tasks {
		if !r.tasks[i].Completed && slices.Contains(ids, r.tasks[i].ID) {
			r.tasks[i].Completed = true
			n++
		}
	}
	return n, nil
}

func (r *implRepository) DeleteTask(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return repo.ErrNotFound
	}
	r.tasks = slices.Delete(r.tasks, i, i+1)
	return nil
}

func (r *implRepository) DeleteAllTasks(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.tasks)
	r.tasks = nil
	r.l.Debugf(ctx, "task/repository/memory.DeleteAllTasks: removed %d tasks", n)
	return n, nil
}

func (r *implRepository) indexOf(id string) int {
	return slices.IndexFunc(r.tasks, func(t model.Task) bool { return t.ID == id })
}

// clone detaches the due date pointer so callers cannot mutate stored tasks.
func clone(t model.Task) model.Task {
	t.DueDate = cloneTime(t.DueDate)
	return t
}
