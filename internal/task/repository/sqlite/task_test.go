package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"voice-task-management/internal/task/repository"
	"voice-task-management/internal/task/repository/repotest"
	"voice-task-management/internal/task/repository/sqlite"
	"voice-task-management/pkg/log"
)

func newRepo(t *testing.T, path string) repository.Repository {
	t.Helper()
	db, err := sqlite.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	r, err := sqlite.New(context.Background(), db, log.NewNop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r
}

func TestRepository(t *testing.T) {
	repotest.Run(t, func(t *testing.T) repository.Repository {
		return newRepo(t, ":memory:")
	})
}

func TestPersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasks.db")

	first := newRepo(t, path)
	if _, err := first.CreateTask(ctx, repository.CreateTaskOptions{ID: "a", Text: "buy milk"}); err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	second := newRepo(t, path)
	got, err := second.GetOneTask(ctx, repository.GetOneTaskOptions{ID: "a"})
	if err != nil || got.Text != "buy milk" {
		t.Errorf("GetOneTask() after reopen = %+v, %v", got, err)
	}
}
