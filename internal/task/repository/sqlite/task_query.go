package sqlite

import (
	"strings"
	"time"

	"voice-task-management/internal/model"
	repo "voice-task-management/internal/task/repository"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		t         model.Task
		createdAt int64
		dueAt     *int64
	)
	if err := row.Scan(&t.ID, &t.Text, &t.Completed, &createdAt, &dueAt); err != nil {
		return model.Task{}, err
	}
	t.CreatedAt = fromUnix(createdAt)
	if dueAt != nil {
		due := fromUnix(*dueAt)
		t.DueDate = &due
	}
	return t, nil
}

// buildListQuery builds WHERE clause + args for ListTasks.
func buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.Completed != nil {
		conditions = append(conditions, "completed = ?")
		args = append(args, *opt.Completed)
	}
	if opt.DueAfter != nil {
		conditions = append(conditions, "due_at > ?")
		args = append(args, toUnix(*opt.DueAfter))
	}
	if opt.DueBefore != nil {
		conditions = append(conditions, "due_at <= ?")
		args = append(args, toUnix(*opt.DueBefore))
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

func buildInClause(ids []string) (string, []any) {
	args := make([]any, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}
	return strings.TrimSuffix(strings.Repeat("?,", len(ids)), ","), args
}

// Times are stored as Unix microseconds in UTC.
func toUnix(t time.Time) int64 {
	return t.UnixMicro()
}

func toNullUnix(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UnixMicro()
}

func fromUnix(n int64) time.Time {
	return time.UnixMicro(n).UTC()
}
