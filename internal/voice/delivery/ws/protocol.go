package ws

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"voice-task-management/internal/assistant"
	"voice-task-management/internal/model"
	"voice-task-management/internal/voice"
)

// Frame types.
const (
	TypeTranscript = "transcript"
	TypeReady      = "ready"
	TypeOutcome    = "outcome"
	TypeError      = "error"
)

// Error codes sent in error frames.
const (
	CodeInvalidMessage = "invalid_message"
	CodeUnsupported    = "unsupported_type"
	CodeFailed         = "command_failed"
)

var (
	errEmptyType = errors.New("frame type is required")
	errBadNow    = errors.New("now must be an RFC3339 timestamp")
)

// clientFrame is a recognizer update. Interim frames (final=false) are
// acknowledged by silence; only final transcripts are interpreted.
type clientFrame struct {
	Type         string              `json:"type"`
	Text         string              `json:"text"`
	Final        bool                `json:"final"`
	Alternatives []voice.Alternative `json:"alternatives,omitempty"`
	Now          string              `json:"now,omitempty"`
}

type readyFrame struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
}

type outcomeFrame struct {
	Type         string        `json:"type"`
	Seq          int           `json:"seq"`
	Outcome      voice.Outcome `json:"outcome"`
	Announcement string        `json:"announcement"`
	Applied      bool          `json:"applied"`
	Tasks        []model.Task  `json:"tasks,omitempty"`
	Count        int           `json:"count"`
}

type errorFrame struct {
	Type   string `json:"type"`
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

func parseClientFrame(data []byte) (clientFrame, error) {
	var f clientFrame
	if err := json.Unmarshal(data, &f); err != nil {
		return f, err
	}
	f.Type = strings.TrimSpace(f.Type)
	if f.Type == "" {
		return f, errEmptyType
	}
	return f, nil
}

func (f clientFrame) toRequest() (assistant.Request, error) {
	req := assistant.Request{Transcript: f.Text, Alternatives: f.Alternatives}
	if f.Now != "" {
		now, err := time.Parse(time.RFC3339, f.Now)
		if err != nil {
			return req, errBadNow
		}
		req.Now = now
	}
	return req, nil
}

func newOutcomeFrame(seq int, res assistant.Result) outcomeFrame {
	return outcomeFrame{
		Type:         TypeOutcome,
		Seq:          seq,
		Outcome:      res.Outcome,
		Announcement: res.Announcement,
		Applied:      res.Applied,
		Tasks:        res.Tasks,
		Count:        res.Count,
	}
}

func frameType(msg any) string {
	switch m := msg.(type) {
	case readyFrame:
		return m.Type
	case outcomeFrame:
		return m.Type
	case errorFrame:
		return m.Type
	}
	return "unknown"
}
