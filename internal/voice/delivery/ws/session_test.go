package ws

import (
	"context"
	"errors"
	"math"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/goleak"

	"voice-task-management/internal/assistant"
	"voice-task-management/internal/router"
	"voice-task-management/internal/voice"
	"voice-task-management/pkg/log"
	"voice-task-management/pkg/metrics"
)

type mockAssistant struct {
	mu   sync.Mutex
	reqs []assistant.Request
}

func (m *mockAssistant) Handle(_ context.Context, req assistant.Request) (assistant.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reqs = append(m.reqs, req)
	return assistant.Result{
		Outcome:      voice.Outcome{Intent: router.IntentAddTask, Status: voice.StatusOK, Transcript: req.Transcript},
		Announcement: "Task added: " + req.Transcript,
		Applied:      true,
		Count:        1,
	}, nil
}

func (m *mockAssistant) requests() []assistant.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]assistant.Request(nil), m.reqs...)
}

type assistantFunc func(ctx context.Context, req assistant.Request) (assistant.Result, error)

func (f assistantFunc) Handle(ctx context.Context, req assistant.Request) (assistant.Result, error) {
	return f(ctx, req)
}

func newTestServer(t *testing.T, as Assistant, met *metrics.Metrics, cfg Config) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), as, met, cfg))
	return httptest.NewServer(r)
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/voice/ws"
}

func readFrame(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var frame map[string]any
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	return frame
}

func TestSession(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	as := &mockAssistant{}
	met := metrics.New("test")
	srv := newTestServer(t, as, met, Config{})
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv), nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}

	ready := readFrame(t, conn)
	if ready["type"] != TypeReady || ready["session_id"] == "" {
		t.Fatalf("first frame = %v", ready)
	}

	send := func(v any) {
		t.Helper()
		if err := conn.WriteJSON(v); err != nil {
			t.Fatalf("WriteJSON() error = %v", err)
		}
	}

	send(map[string]any{"type": "transcript", "text": "add task buy", "final": false})
	send(map[string]any{"type": "transcript", "text": "add task buy milk", "final": true, "now": "2024-01-01T09:00:00Z"})

	out := readFrame(t, conn)
	if out["type"] != TypeOutcome || out["seq"] != float64(1) || out["announcement"] != "Task added: add task buy milk" {
		t.Fatalf("outcome frame = %v", out)
	}

	if err := conn.WriteMessage(websocket.TextMessage, []byte("{not json")); err != nil {
		t.Fatalf("WriteMessage() error = %v", err)
	}
	if f := readFrame(t, conn); f["type"] != TypeError || f["code"] != CodeInvalidMessage {
		t.Fatalf("invalid frame reply = %v", f)
	}

	send(map[string]any{"type": "audio"})
	if f := readFrame(t, conn); f["type"] != TypeError || f["code"] != CodeUnsupported {
		t.Fatalf("unsupported frame reply = %v", f)
	}

	send(map[string]any{"type": "transcript", "text": "x", "final": true, "now": "soon"})
	if f := readFrame(t, conn); f["type"] != TypeError || f["code"] != CodeInvalidMessage {
		t.Fatalf("bad now reply = %v", f)
	}

	reqs := as.requests()
	if len(reqs) != 1 || reqs[0].Transcript != "add task buy milk" || reqs[0].Now.Hour() != 9 {
		t.Fatalf("assistant requests = %+v", reqs)
	}

	if got := testutil.ToFloat64(met.ActiveSessions); got != 1 {
		t.Errorf("active sessions = %v, want 1", got)
	}

	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	conn.Close()

	deadline := time.Now().Add(5 * time.Second)
	for testutil.ToFloat64(met.ActiveSessions) != 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if got := testutil.ToFloat64(met.ActiveSessions); got != 0 {
		t.Errorf("active sessions after close = %v, want 0", got)
	}
	if got := testutil.ToFloat64(met.WSMessages.WithLabelValues("outbound", TypeOutcome)); got != 1 {
		t.Errorf("outbound outcome frames = %v, want 1", got)
	}
}

func TestSessionEndsWhenWriteFails(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	// A NaN score cannot be encoded, so the outcome frame write fails.
	as := assistantFunc(func(_ context.Context, req assistant.Request) (assistant.Result, error) {
		return assistant.Result{Outcome: voice.Outcome{Intent: router.IntentAddTask, Score: math.NaN()}}, nil
	})
	met := metrics.New("test")
	srv := newTestServer(t, as, met, Config{})
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv), nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer conn.Close()

	readFrame(t, conn)
	if err := conn.WriteJSON(map[string]any{"type": "transcript", "text": "add task buy milk", "final": true}); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	// The failed encode may still flush an empty frame before the close.
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	for err == nil {
		_, _, err = conn.ReadMessage()
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		t.Fatalf("ReadMessage() timed out, the server kept the session open")
	}

	deadline := time.Now().Add(5 * time.Second)
	for testutil.ToFloat64(met.ActiveSessions) != 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if got := testutil.ToFloat64(met.ActiveSessions); got != 0 {
		t.Errorf("active sessions = %v, want 0", got)
	}
}

func TestOriginCheck(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		origin  string
		allowed bool
	}{
		{name: "no origin", origin: "", allowed: true},
		{name: "foreign origin", origin: "http://evil.example", allowed: false},
		{name: "foreign origin allowed", cfg: Config{AllowAnyOrigin: true}, origin: "http://evil.example", allowed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, &mockAssistant{}, nil, tt.cfg)
			defer srv.Close()

			header := http.Header{}
			if tt.origin != "" {
				header.Set("Origin", tt.origin)
			}
			conn, resp, err := websocket.DefaultDialer.Dial(wsURL(srv), header)
			if tt.allowed {
				if err != nil {
					t.Fatalf("Dial() error = %v", err)
				}
				conn.Close()
				return
			}
			if err == nil {
				conn.Close()
				t.Fatal("Dial() succeeded, want origin rejection")
			}
			if resp == nil || resp.StatusCode != http.StatusForbidden {
				t.Errorf("response = %v, want 403", resp)
			}
		})
	}
}

func TestSameOriginHost(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "http://voice.local/api/v1/voice/ws", nil)
	r.Header.Set("Origin", "https://VOICE.local")
	if !sameOrigin(r) {
		t.Error("same host with different case rejected")
	}
	r.Header.Set("Origin", "file://voice.local")
	if sameOrigin(r) {
		t.Error("non-http origin accepted")
	}
}
