// Package repotest holds the behaviour every task repository must share.
package repotest

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"voice-task-management/internal/model"
	"voice-task-management/internal/task/repository"
)

var base = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

// Run exercises a repository created fresh by newRepo for every subtest.
func Run(t *testing.T, newRepo func(t *testing.T) repository.Repository) {
	ctx := context.Background()

	create := func(t *testing.T, r repository.Repository, id, text string, offset time.Duration, due *time.Time) {
		t.Helper()
		if _, err := r.CreateTask(ctx, repository.CreateTaskOptions{ID: id, Text: text, CreatedAt: base.Add(offset), DueDate: due}); err != nil {
			t.Fatalf("CreateTask(%s) error = %v", id, err)
		}
	}

	t.Run("Create and get", func(t *testing.T) {
		r := newRepo(t)
		due := base.Add(48 * time.Hour)

		got, err := r.CreateTask(ctx, repository.CreateTaskOptions{ID: "a", Text: "buy milk", CreatedAt: base, DueDate: &due})
		if err != nil {
			t.Fatalf("CreateTask() error = %v", err)
		}
		if got.ID != "a" || got.Text != "buy milk" || got.Completed || !got.CreatedAt.Equal(base) || got.DueDate == nil || !got.DueDate.Equal(due) {
			t.Errorf("CreateTask() = %+v", got)
		}

		one, err := r.GetOneTask(ctx, repository.GetOneTaskOptions{ID: "a"})
		if err != nil || one.ID != "a" {
			t.Errorf("GetOneTask() = %+v, %v", one, err)
		}

		missing, err := r.GetOneTask(ctx, repository.GetOneTaskOptions{ID: "nope"})
		if err != nil || missing.ID != "" {
			t.Errorf("GetOneTask(missing) = %+v, %v; want zero value", missing, err)
		}
	})

	t.Run("Duplicate ID", func(t *testing.T) {
		r := newRepo(t)
		create(t, r, "a", "one", 0, nil)
		if _, err := r.CreateTask(ctx, repository.CreateTaskOptions{ID: "a", Text: "two", CreatedAt: base}); !errors.Is(err, repository.ErrFailedToInsert) {
			t.Errorf("duplicate CreateTask() error = %v", err)
		}
	})

	t.Run("List in creation order with filters", func(t *testing.T) {
		r := newRepo(t)
		soon := base.Add(30 * time.Second)
		later := base.Add(time.Hour)
		create(t, r, "a", "first", 0, &later)
		create(t, r, "b", "second", time.Second, &soon)
		create(t, r, "c", "third", 2*time.Second, nil)
		if _, err := r.UpdateTask(ctx, repository.UpdateTaskOptions{ID: "c", Completed: true}); err != nil {
			t.Fatalf("UpdateTask() error = %v", err)
		}

		all, err := r.ListTasks(ctx, repository.ListTasksOptions{})
		if err != nil {
			t.Fatalf("ListTasks() error = %v", err)
		}
		if ids(all) != "a,b,c" {
			t.Errorf("ListTasks() order = %s, want a,b,c", ids(all))
		}

		pending := false
		open, _ := r.ListTasks(ctx, repository.ListTasksOptions{Completed: &pending})
		if ids(open) != "a,b" {
			t.Errorf("pending = %s, want a,b", ids(open))
		}

		until := base.Add(time.Minute)
		window, _ := r.ListTasks(ctx, repository.ListTasksOptions{Completed: &pending, DueAfter: &base, DueBefore: &until})
		if ids(window) != "b" {
			t.Errorf("due window = %s, want b", ids(window))
		}
	})

	t.Run("Update missing", func(t *testing.T) {
		r := newRepo(t)
		if _, err := r.UpdateTask(ctx, repository.UpdateTaskOptions{ID: "x", Completed: true}); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("UpdateTask(missing) error = %v", err)
		}
	})

	t.Run("Complete many", func(t *testing.T) {
		r := newRepo(t)
		create(t, r, "a", "one", 0, nil)
		create(t, r, "b", "two", time.Second, nil)
		create(t, r, "c", "three", 2*time.Second, nil)

		n, err := r.CompleteTasks(ctx, []string{"a", "c", "zzz"})
		if err != nil || n != 2 {
			t.Fatalf("CompleteTasks() = %d, %v; want 2", n, err)
		}
		n, _ = r.CompleteTasks(ctx, []string{"a"})
		if n != 0 {
			t.Errorf("completing a completed task changed %d rows", n)
		}
		n, _ = r.CompleteTasks(ctx, nil)
		if n != 0 {
			t.Errorf("CompleteTasks(nil) = %d", n)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		r := newRepo(t)
		create(t, r, "a", "one", 0, nil)
		create(t, r, "b", "two", time.Second, nil)

		if err := r.DeleteTask(ctx, "a"); err != nil {
			t.Fatalf("DeleteTask() error = %v", err)
		}
		if err := r.DeleteTask(ctx, "a"); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("second DeleteTask() error = %v", err)
		}

		n, err := r.DeleteAllTasks(ctx)
		if err != nil || n != 1 {
			t.Errorf("DeleteAllTasks() = %d, %v; want 1", n, err)
		}
		left, _ := r.ListTasks(ctx, repository.ListTasksOptions{})
		if len(left) != 0 {
			t.Errorf("tasks left after DeleteAllTasks: %d", len(left))
		}
	})
}

func ids(tasks []model.Task) string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return strings.Join(out, ",")
}
