package http

import (
	"strings"
	"time"

	"voice-task-management/internal/model"
	"voice-task-management/internal/task"
	"voice-task-management/internal/voice"
)

const defaultReminderWindow = 60 * time.Second

// --- Request DTOs ---

type listReq struct {
	Filter string `form:"filter"`
	Now    string `form:"now"`
}

func (r listReq) toInput(now time.Time) task.ListInput {
	return task.ListInput{
		Filter: voice.Filter(strings.ToLower(strings.TrimSpace(r.Filter))),
		Now:    now,
	}
}

// ---

type createReq struct {
	Text    string     `json:"text" binding:"required"`
	DueDate *time.Time `json:"due_date"`
}

func (r createReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return task.ErrEmptyText
	}
	return nil
}

func (r createReq) toInput() task.CreateInput {
	var due *time.Time
	if r.DueDate != nil {
		d := r.DueDate.UTC()
		due = &d
	}
	return task.CreateInput{
		Text:    r.Text,
		DueDate: due,
	}
}

// ---

type statsReq struct {
	Now string `form:"now"`
}

type remindersReq struct {
	Now    string `form:"now"`
	Window string `form:"window"`
}

// --- Response DTOs ---

type taskResp struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Completed bool       `json:"completed"`
	Overdue   bool       `json:"overdue"`
	CreatedAt time.Time  `json:"created_at"`
	DueDate   *time.Time `json:"due_date,omitempty"`
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

type clearResp struct {
	Deleted int `json:"deleted"`
}

type remindersResp struct {
	Window string     `json:"window"`
	Tasks  []taskResp `json:"tasks"`
}

func newTaskResp(t model.Task, now time.Time) taskResp {
	return taskResp{
		ID:        t.ID,
		Text:      t.Text,
		Completed: t.Completed,
		Overdue:   t.IsOverdue(now),
		CreatedAt: t.CreatedAt,
		DueDate:   t.DueDate,
	}
}

func newTaskResps(tasks []model.Task, now time.Time) []taskResp {
	resps := make([]taskResp, 0, len(tasks))
	for _, t := range tasks {
		resps = append(resps, newTaskResp(t, now))
	}
	return resps
}

func (h *handler) newListResp(o task.ListOutput, now time.Time) listResp {
	return listResp{
		Tasks: newTaskResps(o.Tasks, now),
		Total: o.Total,
	}
}
