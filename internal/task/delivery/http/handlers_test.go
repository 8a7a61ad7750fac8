package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"voice-task-management/internal/task/repository/memory"
	"voice-task-management/internal/task/usecase"
	"voice-task-management/pkg/log"
)

var testNow = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := log.NewNop()
	uc := usecase.New(memory.New(l), nil, l)
	h := New(l, uc)
	h.clock = func() time.Time { return testNow }

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), h)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) (int, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: unmarshal %q: %v", method, path, w.Body.String(), err)
	}
	return w.Code, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("decode data %s: %v", raw, err)
	}
	return v
}

func TestTaskLifecycle(t *testing.T) {
	r := newTestRouter(t)

	due := testNow.Add(-time.Hour)
	code, env := do(t, r, http.MethodPost, "/api/v1/tasks", map[string]any{"text": "  pay rent ", "due_date": due})
	if code != http.StatusOK {
		t.Fatalf("create: status %d, %+v", code, env)
	}
	rent := decode[taskResp](t, env.Data)
	if rent.Text != "pay rent" || !rent.Overdue || rent.ID == "" {
		t.Fatalf("create: unexpected task %+v", rent)
	}

	code, env = do(t, r, http.MethodPost, "/api/v1/tasks", map[string]any{"text": "buy milk"})
	if code != http.StatusOK {
		t.Fatalf("create: status %d", code)
	}
	milk := decode[taskResp](t, env.Data)

	code, env = do(t, r, http.MethodPatch, "/api/v1/tasks/"+rent.ID+"/toggle", nil)
	if code != http.StatusOK {
		t.Fatalf("toggle: status %d", code)
	}
	if toggled := decode[taskResp](t, env.Data); !toggled.Completed || toggled.Overdue {
		t.Fatalf("toggle: unexpected task %+v", toggled)
	}

	_, env = do(t, r, http.MethodGet, "/api/v1/tasks", nil)
	list := decode[listResp](t, env.Data)
	if list.Total != 2 || list.Tasks[0].ID != milk.ID || list.Tasks[1].ID != rent.ID {
		t.Fatalf("list: want pending first, got %+v", list)
	}

	_, env = do(t, r, http.MethodGet, "/api/v1/tasks?filter=completed", nil)
	if completed := decode[listResp](t, env.Data); completed.Total != 1 || completed.Tasks[0].ID != rent.ID {
		t.Fatalf("list completed: got %+v", completed)
	}

	_, env = do(t, r, http.MethodGet, "/api/v1/tasks/stats", nil)
	stats := decode[map[string]int](t, env.Data)
	if stats["total"] != 2 || stats["completed"] != 1 || stats["progress"] != 50 {
		t.Fatalf("stats: got %v", stats)
	}

	code, _ = do(t, r, http.MethodDelete, "/api/v1/tasks/"+milk.ID, nil)
	if code != http.StatusOK {
		t.Fatalf("delete: status %d", code)
	}

	code, env = do(t, r, http.MethodDelete, "/api/v1/tasks", nil)
	if code != http.StatusOK {
		t.Fatalf("clear: status %d", code)
	}
	if cleared := decode[clearResp](t, env.Data); cleared.Deleted != 1 {
		t.Fatalf("clear: got %+v", cleared)
	}
}

func TestTaskErrors(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
	}{
		{"blank text", http.MethodPost, "/api/v1/tasks", map[string]any{"text": "   "}, http.StatusBadRequest},
		{"missing text", http.MethodPost, "/api/v1/tasks", map[string]any{}, http.StatusBadRequest},
		{"toggle unknown", http.MethodPatch, "/api/v1/tasks/nope/toggle", nil, http.StatusNotFound},
		{"delete unknown", http.MethodDelete, "/api/v1/tasks/nope", nil, http.StatusNotFound},
		{"bad filter", http.MethodGet, "/api/v1/tasks?filter=someday", nil, http.StatusBadRequest},
		{"bad now", http.MethodGet, "/api/v1/tasks/stats?now=yesterday", nil, http.StatusBadRequest},
		{"bad window", http.MethodGet, "/api/v1/tasks/reminders?window=-5s", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := do(t, r, tt.method, tt.path, tt.body)
			if code != tt.status {
				t.Errorf("status = %d, want %d (%+v)", code, tt.status, env)
			}
			if env.ErrorCode == 0 {
				t.Errorf("error_code = 0 on failure")
			}
		})
	}
}

func TestReminders(t *testing.T) {
	r := newTestRouter(t)

	for _, in := range []struct {
		text string
		due  time.Time
	}{
		{"later", testNow.Add(2 * time.Hour)},
		{"soon", testNow.Add(30 * time.Second)},
		{"past", testNow.Add(-time.Minute)},
	} {
		if code, _ := do(t, r, http.MethodPost, "/api/v1/tasks", map[string]any{"text": in.text, "due_date": in.due}); code != http.StatusOK {
			t.Fatalf("create %q: status %d", in.text, code)
		}
	}

	_, env := do(t, r, http.MethodGet, "/api/v1/tasks/reminders", nil)
	got := decode[remindersResp](t, env.Data)
	if got.Window != "1m0s" || len(got.Tasks) != 1 || got.Tasks[0].Text != "soon" {
		t.Fatalf("default window: got %+v", got)
	}

	_, env = do(t, r, http.MethodGet, "/api/v1/tasks/reminders?window=3h", nil)
	got = decode[remindersResp](t, env.Data)
	if len(got.Tasks) != 2 || got.Tasks[0].Text != "soon" || got.Tasks[1].Text != "later" {
		t.Fatalf("3h window: got %+v", got)
	}
}
