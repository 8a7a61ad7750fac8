package postgre

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	repo "voice-task-management/internal/task/repository"
)

func TestBuildListQuery(t *testing.T) {
	pending := false
	after := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	before := after.Add(time.Minute)

	tests := []struct {
		name      string
		opt       repo.ListTasksOptions
		wantWhere string
		wantArgs  []any
	}{
		{name: "No filter", opt: repo.ListTasksOptions{}, wantWhere: "1=1"},
		{name: "Completed", opt: repo.ListTasksOptions{Completed: &pending}, wantWhere: "completed = $1", wantArgs: []any{false}},
		{
			name:      "Due window",
			opt:       repo.ListTasksOptions{Completed: &pending, DueAfter: &after, DueBefore: &before},
			wantWhere: "completed = $1 AND due_at > $2 AND due_at <= $3",
			wantArgs:  []any{false, after, before},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildListQuery(tt.opt)
			if where != tt.wantWhere {
				t.Errorf("where = %q, want %q", where, tt.wantWhere)
			}
			if diff := cmp.Diff(tt.wantArgs, args); diff != "" {
				t.Errorf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
