package voice

import (
	"time"

	"voice-task-management/internal/model"
	"voice-task-management/internal/router"
	"voice-task-management/pkg/datemath"
)

// --- UseCase Inputs ---

type InterpretInput struct {
	Transcript string
	Now        time.Time       // zero means the current time
	Tasks      []model.TaskRef // read-only snapshot in creation order
}

// Alternative is one recognizer hypothesis for the same utterance.
type Alternative struct {
	Text       string   `json:"text"`
	Confidence *float64 `json:"confidence,omitempty"`
}

type InterpretAlternativesInput struct {
	Alternatives []Alternative
	Now          time.Time
	Tasks        []model.TaskRef
}

// --- Outcome ---

// Status tells a nominal outcome apart from the non-nominal ones; none of
// them is an error.
type Status string

const (
	StatusOK              Status = "ok"
	StatusNoIntentMatched Status = "no_intent_matched"
	StatusNoTaskMatched   Status = "no_task_matched"
	StatusEmptyAddPayload Status = "empty_add_payload"
)

// Outcome is the single result of interpreting one utterance. Exactly one
// payload is set, chosen by Intent:
//
//	ADD_TASK                       Add
//	COMPLETE_TASK, DELETE_TASK     Target
//	SHOW_*, COUNT_TASKS            Query
//	MARK_ALL_COMPLETE              Bulk
//	UNKNOWN                        Unknown
type Outcome struct {
	Intent     router.Intent `json:"intent"`
	Status     Status        `json:"status"`
	Transcript string        `json:"transcript"`
	Normalized string        `json:"normalized"`
	Score      float64       `json:"score"`

	Add     *AddPayload     `json:"add,omitempty"`
	Target  *TargetPayload  `json:"target,omitempty"`
	Query   *QueryPayload   `json:"query,omitempty"`
	Bulk    *BulkPayload    `json:"bulk,omitempty"`
	Unknown *UnknownPayload `json:"unknown,omitempty"`
}

// Recognized reports whether the outcome carries a command.
func (o Outcome) Recognized() bool {
	return o.Intent != router.IntentUnknown
}

// AddPayload is a new task to create.
type AddPayload struct {
	Label string               `json:"label"`
	Due   *datemath.ParsedDate `json:"due,omitempty"`
}

// TargetPayload is a spoken reference to an existing task. Task is nil when
// no task matched Query.
type TargetPayload struct {
	Query string         `json:"query"`
	Task  *model.TaskRef `json:"task,omitempty"`
	Score float64        `json:"score,omitempty"`
}

// Found reports whether the reference resolved to a task.
func (p TargetPayload) Found() bool {
	return p.Task != nil
}

// Filter selects tasks for Show and Count outcomes.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
	FilterOverdue   Filter = "overdue"
)

// QueryPayload describes a read-only question about the task list.
type QueryPayload struct {
	Filter    Filter    `json:"filter"`
	AsOf      time.Time `json:"as_of"`      // reference time for FilterOverdue
	CountOnly bool      `json:"count_only"` // answer with a number instead of a list
}

// Matches reports whether a task belongs to the query's selection.
func (q QueryPayload) Matches(t model.TaskRef) bool {
	switch q.Filter {
	case FilterPending:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	case FilterOverdue:
		return t.IsOverdue(q.AsOf)
	default:
		return true
	}
}

// Select returns the matching tasks in snapshot order.
func (q QueryPayload) Select(tasks []model.TaskRef) []model.TaskRef {
	selected := make([]model.TaskRef, 0, len(tasks))
	for _, t := range tasks {
		if q.Matches(t) {
			selected = append(selected, t)
		}
	}
	return selected
}

// BulkPayload lists the pending tasks a mark-all command completes.
type BulkPayload struct {
	TaskIDs []string `json:"task_ids"`
	Count   int      `json:"count"`
}

// UnknownPayload is an utterance that produced no command.
type UnknownPayload struct {
	OriginalText string `json:"original_text"`
	Suggestion   string `json:"suggestion,omitempty"`
}
