package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"voice-task-management/internal/assistant"
	"voice-task-management/internal/middleware"
	"voice-task-management/internal/task"
	"voice-task-management/pkg/log"
	"voice-task-management/pkg/metrics"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Domains
	taskUC    task.UseCase
	assistant *assistant.Assistant
	metrics   *metrics.Metrics

	// Middleware and websocket settings
	rateLimitPerMin int
	allowAnyOrigin  bool

	// ready reports whether dependencies (the task store) are reachable.
	ready func() error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	TaskUseCase task.UseCase
	Assistant   *assistant.Assistant
	Metrics     *metrics.Metrics

	RateLimitPerMin int
	AllowAnyOrigin  bool

	ReadyCheck func() error
}

// New creates a new HTTPServer instance and registers its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		taskUC:          cfg.TaskUseCase,
		assistant:       cfg.Assistant,
		metrics:         cfg.Metrics,
		rateLimitPerMin: cfg.RateLimitPerMin,
		allowAnyOrigin:  cfg.AllowAnyOrigin,
		ready:           cfg.ReadyCheck,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 10 * time.Second
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers(middleware.New(logger, middleware.Config{RequestsPerMin: srv.rateLimitPerMin}))
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskUC == nil {
		return errors.New("task usecase is required")
	}
	if srv.assistant == nil {
		return errors.New("assistant is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
