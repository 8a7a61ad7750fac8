package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"voice-task-management/internal/model"
	repo "voice-task-management/internal/task/repository"
)

const taskColumns = `id, text, completed, created_at, due_at`

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	const query = `
		INSERT INTO tasks (id, text, completed, created_at, due_at)
		VALUES (?, ?, 0, ?, ?)
		RETURNING ` + taskColumns

	t, err := scanTask(r.db.QueryRowContext(ctx, query, opt.ID, opt.Text, toUnix(opt.CreatedAt), toNullUnix(opt.DueDate)))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask retrieves a single Task by ID.
// Returns zero-value Task (ID == "") when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ? LIMIT 1`

	t, err := scanTask(r.db.QueryRowContext(ctx, query, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
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

	rows, err := r.db.QueryContext(ctx, query, args...)
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
	query := `UPDATE tasks SET completed = ? WHERE id = ? RETURNING ` + taskColumns

	t, err := scanTask(r.db.QueryRowContext(ctx, query, opt.Completed, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
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

	in, args := buildInClause(ids)
	query := fmt.Sprintf(`UPDATE tasks SET completed = 1 WHERE completed = 0 AND id IN (%s)`, in)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CompleteTasks"), err)
		return 0, repo.ErrFailedToUpdate
	}
	return r.affected(ctx, "CompleteTasks", res, repo.ErrFailedToUpdate)
}

// DeleteTask removes a Task by ID.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	n, err := r.affected(ctx, "DeleteTask", res, repo.ErrFailedToDelete)
	if err != nil {
		return err
	}
	if n == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// DeleteAllTasks empties the table and returns the number of removed rows.
func (r *implRepository) DeleteAllTasks(ctx context.Context) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteAllTasks"), err)
		return 0, repo.ErrFailedToDelete
	}
	return r.affected(ctx, "DeleteAllTasks", res, repo.ErrFailedToDelete)
}

// affected reads the row count of res, logging and mapping a driver failure
// to failErr.
func (r *implRepository) affected(ctx context.Context, method string, res sql.Result, failErr error) (int, error) {
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn(method), err)
		return 0, failErr
	}
	return int(n), nil
}
