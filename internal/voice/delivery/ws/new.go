package ws

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"voice-task-management/internal/assistant"
	"voice-task-management/pkg/log"
	"voice-task-management/pkg/metrics"
)

const (
	readLimit     = 64 << 10
	idleTimeout   = 120 * time.Second
	writeTimeout  = 10 * time.Second
	outboundQueue = 64
)

// Assistant runs one utterance against the task list.
type Assistant interface {
	Handle(ctx context.Context, req assistant.Request) (assistant.Result, error)
}

// Config controls which browser origins may open a session.
type Config struct {
	AllowAnyOrigin bool
}

type handler struct {
	l        log.Logger
	as       Assistant
	metrics  *metrics.Metrics
	upgrader websocket.Upgrader
}

// New creates the websocket handler. metrics may be nil.
func New(l log.Logger, as Assistant, met *metrics.Metrics, cfg Config) *handler {
	return &handler{
		l:       l,
		as:      as,
		metrics: met,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				if cfg.AllowAnyOrigin {
					return true
				}
				return sameOrigin(r)
			},
		},
	}
}

// sameOrigin accepts requests without an Origin header (non-browser clients)
// and browser requests from the serving host.
func sameOrigin(r *http.Request) bool {
	origin := strings.TrimSpace(r.Header.Get("Origin"))
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return strings.EqualFold(u.Host, r.Host)
}
