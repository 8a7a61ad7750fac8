package usecase

import (
	"fmt"
	"strings"

	"voice-task-management/internal/model"
	"voice-task-management/internal/router"
	"voice-task-management/internal/voice"
	"voice-task-management/pkg/datemath"
)

const (
	msgNotUnderstood = "Sorry, I didn't understand."
	msgNothingToAdd  = "There is nothing to add."
)

// Announce formats the sentence spoken back for an outcome.
func (uc *implUseCase) Announce(out voice.Outcome, tasks []model.TaskRef) string {
	switch {
	case out.Add != nil:
		msg := "Task added: " + out.Add.Label
		if out.Add.Due != nil {
			msg += ", due " + formatDue(*out.Add.Due)
		}
		return msg

	case out.Target != nil:
		if !out.Target.Found() {
			if out.Target.Query == "" {
				return "Which task? Please say the task name after the command."
			}
			return fmt.Sprintf("I couldn't find a task matching %q.", out.Target.Query)
		}
		if out.Intent == router.IntentDeleteTask {
			return "Deleted task: " + out.Target.Task.Label
		}
		return "Marked as completed: " + out.Target.Task.Label

	case out.Bulk != nil:
		return fmt.Sprintf("Marked %s as completed.", plural(out.Bulk.Count, "task"))

	case out.Query != nil:
		return announceQuery(*out.Query, tasks)

	case out.Status == voice.StatusEmptyAddPayload:
		return msgNothingToAdd

	case out.Unknown != nil && out.Unknown.Suggestion != "":
		return fmt.Sprintf("%s Did you mean %q?", msgNotUnderstood, out.Unknown.Suggestion)
	}

	return msgNotUnderstood
}

func announceQuery(q voice.QueryPayload, tasks []model.TaskRef) string {
	selected := q.Select(tasks)

	kind := "task"
	if q.Filter != voice.FilterAll {
		kind = string(q.Filter) + " task"
	}

	if q.CountOnly {
		pending := 0
		for _, t := range selected {
			if !t.Completed {
				pending++
			}
		}
		return fmt.Sprintf("You have %s, %d pending.", plural(len(selected), kind), pending)
	}

	if len(selected) == 0 {
		return fmt.Sprintf("You have no %ss.", kind)
	}

	labels := make([]string, 0, len(selected))
	for _, t := range selected {
		labels = append(labels, t.Label)
	}
	return fmt.Sprintf("You have %s: %s.", plural(len(selected), kind), strings.Join(labels, ", "))
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func formatDue(d datemath.ParsedDate) string {
	if d.HasTime {
		return d.At.Format("Mon Jan 2 at 3:04 PM")
	}
	return d.At.Format("Mon Jan 2")
}
