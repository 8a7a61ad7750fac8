package http

import (
	"strings"
	"time"

	"voice-task-management/internal/assistant"
	"voice-task-management/internal/model"
	"voice-task-management/internal/voice"
)

// --- Request DTOs ---

type interpretReq struct {
	Transcript   string              `json:"transcript"`
	Alternatives []voice.Alternative `json:"alternatives"`
	Now          string              `json:"now"`   // RFC3339; server time when empty
	Tasks        []model.TaskRef     `json:"tasks"` // interpret read-only against this list instead of the store
}

func (r interpretReq) validate() error {
	hasTranscript := strings.TrimSpace(r.Transcript) != ""
	if hasTranscript && len(r.Alternatives) > 0 {
		return voice.ErrBothInputs
	}
	if !hasTranscript && len(r.Alternatives) == 0 {
		return voice.ErrEmptyTranscript
	}
	return nil
}

func (r interpretReq) toRequest(now time.Time) assistant.Request {
	return assistant.Request{
		Transcript:   r.Transcript,
		Alternatives: r.Alternatives,
		Now:          now,
		Tasks:        r.Tasks,
	}
}

// --- Response DTOs ---

type interpretResp struct {
	Outcome      voice.Outcome `json:"outcome"`
	Announcement string        `json:"announcement"`
	Applied      bool          `json:"applied"`
	Tasks        []model.Task  `json:"tasks"`
	Count        int           `json:"count"`
}

func (h *handler) newInterpretResp(res assistant.Result) interpretResp {
	tasks := res.Tasks
	if tasks == nil {
		tasks = []model.Task{}
	}
	return interpretResp{
		Outcome:      res.Outcome,
		Announcement: res.Announcement,
		Applied:      res.Applied,
		Tasks:        tasks,
		Count:        res.Count,
	}
}
