package router

// Intent is the command a transcript was recognized as.
type Intent string

const (
	IntentAddTask         Intent = "ADD_TASK"
	IntentCompleteTask    Intent = "COMPLETE_TASK"
	IntentDeleteTask      Intent = "DELETE_TASK"
	IntentShowPending     Intent = "SHOW_PENDING"
	IntentShowOverdue     Intent = "SHOW_OVERDUE"
	IntentMarkAllComplete Intent = "MARK_ALL_COMPLETE"
	IntentShowAll         Intent = "SHOW_ALL"
	IntentShowCompleted   Intent = "SHOW_COMPLETED"
	IntentCountTasks      Intent = "COUNT_TASKS"
	IntentUnknown         Intent = "UNKNOWN"
)

// Classification is the result of matching one normalized utterance against
// the trigger table.
type Classification struct {
	Intent Intent  `json:"intent"`
	Score  float64 `json:"score"` // best trigger score of the winning intent, 0..1

	// Trigger is the phrase that produced Score; for Unknown it is the best
	// trigger of the best intent even though it did not clear the threshold.
	Trigger string `json:"trigger"`

	// Remainder is what follows the words consumed by Trigger.
	Remainder string `json:"remainder"`

	// Suggestion is set only for Unknown, when the globally best trigger
	// scored at least SuggestThreshold.
	Suggestion      string  `json:"suggestion,omitempty"`
	SuggestionScore float64 `json:"suggestion_score,omitempty"`
}

type intentTriggers struct {
	intent   Intent
	payload  bool
	triggers []trigger
}

type trigger struct {
	text  string
	words []string
}
