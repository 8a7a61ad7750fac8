package postgre

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"voice-task-management/internal/model"
	repo "voice-task-management/internal/task/repository"
)

const taskColumns = `id, text, completed, created_at, due_at`

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	const query = `
		INSERT INTO tasks (id, text, completed, created_at, due_at)
		VALUES ($1, $2, FALSE, $3, $4)
		RETURNING ` + taskColumns

	t, err := scanTask(r.pool.QueryRow(ctx, query, opt.ID, opt.Text, opt.CreatedAt, opt.DueDate))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask retrieves a single Task by ID.
// Returns zero-value Task (ID == "") when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 LIMIT 1`

	t, err := scanTask(r.pool.QueryRow(ctx, query, opt.ID))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns matching Tasks in creation order.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	where, args := buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE %s ORDER BY created_at, seq`, taskColumns, where)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateTask sets the completion flag of a Task.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	query := `UPDATE tasks SET completed = $1 WHERE id = $2 RETURNING ` + taskColumns

	t, err := scanTask(r.pool.QueryRow(ctx, query, opt.Completed, opt.ID))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Task{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// CompleteTasks marks the given pending Tasks completed and returns how many changed.
func (r *implRepository) CompleteTasks(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	tag, err := r.pool.Exec(ctx, `UPDATE tasks SET completed = TRUE WHERE NOT completed AND id = ANY($1)`, ids)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CompleteTasks"), err)
		return 0, repo.ErrFailedToUpdate
	}
	return int(tag.RowsAffected()), nil
}

// DeleteTask removes a Task by ID.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// DeleteAllTasks empties the table and returns the number of removed rows.
func (r *implRepository) DeleteAllTasks(ctx context.Context) (int, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tasks`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteAllTasks"), err)
		return 0, repo.ErrFailedToDelete
	}
	return int(tag.RowsAffected()), nil
}

func scanTask(row pgx.Row) (model.Task, error) {
	var t model.Task
	if err := row.Scan(&t.ID, &t.Text, &t.Completed, &t.CreatedAt, &t.DueDate); err != nil {
		return model.Task{}, err
	}
	t.CreatedAt = t.CreatedAt.UTC()
	if t.DueDate != nil {
		due := t.DueDate.UTC()
		t.DueDate = &due
	}
	return t, nil
}
