package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Thresholds
const (
	ClassifyThreshold = 0.6
	SuggestThreshold  = 0.4

	// wordThreshold is the similarity a trailing window word needs against
	// some word of the trigger to count as part of the command.
	wordThreshold = 0.5
)

// triggerTable lists intents in tie-break priority order. Within an intent,
// longer phrases come first so that an exact longer trigger consumes the
// words a shorter prefix trigger would also match. Only payload intents may
// be followed by free text; the others are scored against the whole utterance.
var triggerTable = []struct {
	intent   Intent
	payload  bool
	triggers []string
}{
	{IntentAddTask, true, []string{
		"add a task", "add new task", "create a task", "remind me to",
		"add task", "new task", "create task",
	}},
	{IntentCompleteTask, true, []string{
		"mark task complete", "mark task done", "check off task",
		"complete task", "finish task", "mark done", "mark complete", "finished task",
	}},
	{IntentDeleteTask, true, []string{
		"delete the task", "remove the task",
		"delete task", "remove task", "cancel task", "erase task",
	}},
	{IntentShowPending, false, []string{
		"what do i have to do",
		"show pending tasks", "list pending tasks", "what is pending", "show open tasks",
		"show pending",
	}},
	{IntentShowOverdue, false, []string{
		"show overdue tasks", "list overdue tasks", "what is overdue", "show late tasks",
		"show overdue",
	}},
	{IntentMarkAllComplete, false, []string{
		"mark all tasks complete", "check off all tasks",
		"mark all complete", "mark all done", "complete all tasks", "finish all tasks",
		"complete all",
	}},
	{IntentShowAll, false, []string{
		"show all tasks", "list all tasks", "show my tasks", "read my tasks",
		"show tasks", "list tasks",
	}},
	{IntentShowCompleted, false, []string{
		"show completed tasks", "list completed tasks", "show finished tasks", "show done tasks",
		"show completed",
	}},
	{IntentCountTasks, false, []string{
		"how many tasks do i have",
		"count my tasks", "how many tasks",
		"count tasks", "task count",
	}},
}
