package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"voice-task-management/internal/router"
	"voice-task-management/internal/voice"
)

func run(t *testing.T, stdin string, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	if err := cmd.Execute(); err != nil {
		t.Fatalf("voicectl %v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestInterpretCommand(t *testing.T) {
	got := run(t, "", "interpret", "add task buy milk tomorrow at 3pm", "--now", "2024-01-01T09:00:00Z")

	dec := json.NewDecoder(strings.NewReader(got))
	var out voice.Outcome
	if err := dec.Decode(&out); err != nil {
		t.Fatalf("decode outcome: %v\n%s", err, got)
	}
	if out.Intent != router.IntentAddTask || out.Add == nil || out.Add.Label != "buy milk" {
		t.Fatalf("outcome = %+v", out)
	}
	if !out.Add.Due.At.Equal(time.Date(2024, 1, 2, 15, 0, 0, 0, time.UTC)) {
		t.Errorf("due = %v", out.Add.Due.At)
	}
	if !strings.Contains(got, "Task added: buy milk, due Tue Jan 2 at 3:00 PM") {
		t.Errorf("announcement missing from output:\n%s", got)
	}
}

func TestInterpretWithFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	fixture := `tasks:
  - id: a
    label: walk the dog
  - label: pay rent
    due_date: 2023-12-31T12:00:00Z
`
	if err := os.WriteFile(path, []byte(fixture), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got := run(t, "", "interpret", "show", "overdue", "tasks", "--tasks", path, "--now", "2024-01-01T09:00:00Z")
	if !strings.Contains(got, "You have 1 overdue task: pay rent.") {
		t.Errorf("output:\n%s", got)
	}

	got = run(t, "", "interpret", "finish task walk dog", "--tasks", path)
	if !strings.Contains(got, "Marked as completed: walk the dog") {
		t.Errorf("output:\n%s", got)
	}
}

func TestLoadFixtureAssignsIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	if err := os.WriteFile(path, []byte("tasks:\n  - label: one\n  - label: two\n"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	tasks, err := loadFixture(path)
	if err != nil {
		t.Fatalf("loadFixture() error = %v", err)
	}
	if len(tasks) != 2 || tasks[0].ID != "task-1" || tasks[1].ID != "task-2" {
		t.Errorf("tasks = %+v", tasks)
	}

	if _, err := loadFixture(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("loadFixture() on a missing file returned no error")
	}
}

func TestReplCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "tasks.db")
	script := strings.Join([]string{
		"add task water plants",
		"",
		"add task call bob",
		"complete task water plants",
		"how many tasks",
		"exit",
		"add task never reached",
	}, "\n")

	got := run(t, script, "repl", "--db", db)
	want := strings.Join([]string{
		"Task added: water plants",
		"Task added: call bob",
		"Marked as completed: water plants",
		"You have 2 tasks, 1 pending.",
	}, "\n") + "\n"
	if got != want {
		t.Errorf("repl output:\n%s\nwant:\n%s", got, want)
	}

	// The SQLite file keeps the list between runs.
	got = run(t, "show completed tasks\n", "repl", "--db", db)
	if got != "You have 1 completed task: water plants.\n" {
		t.Errorf("second run output: %q", got)
	}
}

func TestIntentsCommand(t *testing.T) {
	got := run(t, "", "intents")
	for _, intent := range router.Intents() {
		if !strings.Contains(got, string(intent)) {
			t.Errorf("intent %s missing from:\n%s", intent, got)
		}
	}
}
