package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"voice-task-management/internal/model"
	"voice-task-management/internal/router"
	"voice-task-management/internal/task"
	"voice-task-management/internal/task/repository"
	"voice-task-management/internal/task/repository/memory"
	"voice-task-management/internal/task/usecase"
	"voice-task-management/internal/voice"
	"voice-task-management/pkg/datemath"
	"voice-task-management/pkg/log"
	"voice-task-management/pkg/metrics"
)

var base = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	uc      task.UseCase
	metrics *metrics.Metrics
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	met := metrics.New("test")
	uc := usecase.New(memory.New(log.NewNop()), met, log.NewNop())

	n := 0
	uc.SetClock(
		func() time.Time { return base.Add(time.Duration(n) * time.Second) },
		func() string { n++; return fmt.Sprintf("t%d", n) },
	)
	return fixture{uc: uc, metrics: met}
}

func (f fixture) add(t *testing.T, text string, due *time.Time) model.Task {
	t.Helper()
	created, err := f.uc.Create(context.Background(), task.CreateInput{Text: text, DueDate: due})
	if err != nil {
		t.Fatalf("Create(%q) error = %v", text, err)
	}
	return created
}

func ptr(t time.Time) *time.Time { return &t }

func TestCreate(t *testing.T) {
	f := newFixture(t)

	got := f.add(t, "  buy milk ", nil)
	if got.ID != "t1" || got.Text != "buy milk" || got.Completed {
		t.Errorf("Create() = %+v", got)
	}

	if _, err := f.uc.Create(context.Background(), task.CreateInput{Text: "   "}); !errors.Is(err, task.ErrEmptyText) {
		t.Errorf("Create(blank) error = %v, want ErrEmptyText", err)
	}
}

func TestToggleAndDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.add(t, "a", nil)

	toggled, err := f.uc.Toggle(ctx, a.ID)
	if err != nil || !toggled.Completed {
		t.Fatalf("Toggle() = %+v, %v", toggled, err)
	}
	toggled, _ = f.uc.Toggle(ctx, a.ID)
	if toggled.Completed {
		t.Errorf("second Toggle() left task completed")
	}

	if _, err := f.uc.Toggle(ctx, "missing"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("Toggle(missing) error = %v", err)
	}
	if err := f.uc.Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := f.uc.Delete(ctx, a.ID); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("Delete(missing) error = %v", err)
	}
}

func TestListOrdersPendingFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.add(t, "a", nil)
	f.add(t, "b", ptr(base.Add(-time.Hour)))
	f.add(t, "c", nil)
	if _, err := f.uc.Toggle(ctx, a.ID); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		filter voice.Filter
		want   []string
	}{
		{"", []string{"b", "c", "a"}},
		{voice.FilterPending, []string{"b", "c"}},
		{voice.FilterCompleted, []string{"a"}},
		{voice.FilterOverdue, []string{"b"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			out, err := f.uc.List(ctx, task.ListInput{Filter: tt.filter, Now: base})
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, texts(out.Tasks)); diff != "" {
				t.Errorf("List() mismatch (-want +got):\n%s", diff)
			}
			if out.Total != len(tt.want) {
				t.Errorf("Total = %d", out.Total)
			}
		})
	}

	if _, err := f.uc.List(ctx, task.ListInput{Filter: "someday"}); !errors.Is(err, task.ErrInvalidFilter) {
		t.Errorf("List(invalid) error = %v", err)
	}
}

func TestSnapshotKeepsCreationOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.add(t, "a", nil)
	f.add(t, "b", nil)
	f.uc.Toggle(ctx, a.ID)

	refs, err := f.uc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if len(refs) != 2 || refs[0].Label != "a" || !refs[0].Completed || refs[1].Label != "b" {
		t.Errorf("Snapshot() = %+v", refs)
	}
}

func TestStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	empty, err := f.uc.Stats(ctx, base)
	if err != nil || empty != (task.Stats{}) {
		t.Fatalf("Stats(empty) = %+v, %v", empty, err)
	}

	a := f.add(t, "a", nil)
	f.add(t, "b", ptr(base.Add(-time.Minute)))
	f.add(t, "c", ptr(base.Add(time.Hour)))
	f.uc.Toggle(ctx, a.ID)

	got, _ := f.uc.Stats(ctx, base)
	want := task.Stats{Total: 3, Completed: 1, Pending: 2, Overdue: 1, Progress: 33}
	if got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}

func TestDueSoon(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.add(t, "past", ptr(base.Add(-time.Second)))
	f.add(t, "later", ptr(base.Add(50*time.Second)))
	f.add(t, "edge", ptr(base.Add(time.Minute)))
	f.add(t, "soon", ptr(base.Add(10*time.Second)))
	f.add(t, "far", ptr(base.Add(2*time.Minute)))
	done := f.add(t, "done", ptr(base.Add(5*time.Second)))
	f.add(t, "undated", nil)
	f.uc.Toggle(ctx, done.ID)

	got, err := f.uc.DueSoon(ctx, base, time.Minute)
	if err != nil {
		t.Fatalf("DueSoon() error = %v", err)
	}
	if diff := cmp.Diff([]string{"soon", "later", "edge"}, texts(got)); diff != "" {
		t.Errorf("DueSoon() mismatch (-want +got):\n%s", diff)
	}
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	due := &datemath.ParsedDate{At: base.Add(30 * time.Hour), Text: "tomorrow", HasDate: true}

	t.Run("Add", func(t *testing.T) {
		f := newFixture(t)
		out, err := f.uc.Apply(ctx, voice.Outcome{Intent: router.IntentAddTask, Status: voice.StatusOK, Add: &voice.AddPayload{Label: "buy milk", Due: due}})
		if err != nil || !out.Applied || out.Count != 1 {
			t.Fatalf("Apply(add) = %+v, %v", out, err)
		}
		if out.Tasks[0].DueDate == nil || !out.Tasks[0].DueDate.Equal(due.At) {
			t.Errorf("added task due = %v", out.Tasks[0].DueDate)
		}
	})

	t.Run("Complete and delete", func(t *testing.T) {
		f := newFixture(t)
		a := f.add(t, "a", nil)
		b := f.add(t, "b", nil)
		refA, refB := a.Ref(), b.Ref()

		if _, err := f.uc.Apply(ctx, voice.Outcome{Intent: router.IntentCompleteTask, Target: &voice.TargetPayload{Query: "a", Task: &refA}}); err != nil {
			t.Fatalf("Apply(complete) error = %v", err)
		}
		if _, err := f.uc.Apply(ctx, voice.Outcome{Intent: router.IntentDeleteTask, Target: &voice.TargetPayload{Query: "b", Task: &refB}}); err != nil {
			t.Fatalf("Apply(delete) error = %v", err)
		}

		refs, _ := f.uc.Snapshot(ctx)
		if len(refs) != 1 || refs[0].ID != a.ID || !refs[0].Completed {
			t.Errorf("after apply = %+v", refs)
		}

		_, err := f.uc.Apply(ctx, voice.Outcome{Intent: router.IntentDeleteTask, Target: &voice.TargetPayload{Query: "b", Task: &refB}})
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("Apply(delete stale) error = %v", err)
		}
	})

	t.Run("Mark all", func(t *testing.T) {
		f := newFixture(t)
		a := f.add(t, "a", nil)
		b := f.add(t, "b", nil)

		out, err := f.uc.Apply(ctx, voice.Outcome{Intent: router.IntentMarkAllComplete, Bulk: &voice.BulkPayload{TaskIDs: []string{a.ID, b.ID}, Count: 2}})
		if err != nil || out.Count != 2 || !out.Applied {
			t.Errorf("Apply(mark all) = %+v, %v", out, err)
		}

		out, _ = f.uc.Apply(ctx, voice.Outcome{Intent: router.IntentMarkAllComplete, Bulk: &voice.BulkPayload{TaskIDs: []string{}}})
		if out.Applied || out.Count != 0 {
			t.Errorf("Apply(mark all, none pending) = %+v", out)
		}
	})

	t.Run("Query and no-ops", func(t *testing.T) {
		f := newFixture(t)
		f.add(t, "a", nil)

		q, err := f.uc.Apply(ctx, voice.Outcome{Intent: router.IntentShowPending, Query: &voice.QueryPayload{Filter: voice.FilterPending, AsOf: base}})
		if err != nil || q.Applied || q.Count != 1 {
			t.Errorf("Apply(query) = %+v, %v", q, err)
		}

		for _, out := range []voice.Outcome{
			{Intent: router.IntentUnknown, Status: voice.StatusNoIntentMatched, Unknown: &voice.UnknownPayload{OriginalText: "banana"}},
			{Intent: router.IntentDeleteTask, Status: voice.StatusNoTaskMatched, Target: &voice.TargetPayload{Query: "foo"}},
		} {
			res, err := f.uc.Apply(ctx, out)
			if err != nil || res.Applied {
				t.Errorf("Apply(%s) = %+v, %v", out.Status, res, err)
			}
		}

		refs, _ := f.uc.Snapshot(ctx)
		if len(refs) != 1 {
			t.Errorf("no-op outcomes changed the store: %+v", refs)
		}
	})
}

func TestClearAll(t *testing.T) {
	f := newFixture(t)
	f.add(t, "a", nil)
	f.add(t, "b", nil)

	n, err := f.uc.ClearAll(context.Background())
	if err != nil || n != 2 {
		t.Errorf("ClearAll() = %d, %v", n, err)
	}
}

type failingRepo struct{ repository.Repository }

func (failingRepo) ListTasks(context.Context, repository.ListTasksOptions) ([]model.Task, error) {
	return nil, repository.ErrFailedToList
}

func TestRepositoryErrorsPropagate(t *testing.T) {
	uc := usecase.New(failingRepo{Repository: memory.New(log.NewNop())}, nil, log.NewNop())
	ctx := context.Background()

	if _, err := uc.Snapshot(ctx); !errors.Is(err, repository.ErrFailedToList) {
		t.Errorf("Snapshot() error = %v", err)
	}
	if _, err := uc.Stats(ctx, base); !errors.Is(err, repository.ErrFailedToList) {
		t.Errorf("Stats() error = %v", err)
	}
	if _, err := uc.DueSoon(ctx, base, time.Minute); !errors.Is(err, repository.ErrFailedToList) {
		t.Errorf("DueSoon() error = %v", err)
	}
}

func texts(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Text)
	}
	return out
}
