package postgre

import (
	"fmt"
	"strings"

	repo "voice-task-management/internal/task/repository"
)

// buildListQuery builds WHERE clause + args for ListTasks.
// All non-nil fields are applied as AND conditions.
func buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.Completed != nil {
		conditions = append(conditions, fmt.Sprintf("completed = $%d", idx))
		args = append(args, *opt.Completed)
		idx++
	}
	if opt.DueAfter != nil {
		conditions = append(conditions, fmt.Sprintf("due_at > $%d", idx))
		args = append(args, *opt.DueAfter)
		idx++
	}
	if opt.DueBefore != nil {
		conditions = append(conditions, fmt.Sprintf("due_at <= $%d", idx))
		args = append(args, *opt.DueBefore)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}
