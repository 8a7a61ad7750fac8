package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"voice-task-management/config"
	_ "voice-task-management/docs" // Swagger docs
	"voice-task-management/internal/assistant"
	"voice-task-management/internal/bootstrap"
	"voice-task-management/internal/httpserver"
	"voice-task-management/internal/reminder"
	taskUC "voice-task-management/internal/task/usecase"
	"voice-task-management/pkg/log"
	"voice-task-management/pkg/metrics"
)

// @title       Voice Task Management API
// @description Spoken commands for a personal task list: interpretation, task store and reminders.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Voice Task Management...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	config.Watch(func(next *config.Config) {
		if next.Logger.Level != logger.Level() {
			logger.SetLevel(next.Logger.Level)
			logger.Infof(ctx, "Log level changed to %s", next.Logger.Level)
		}
	}, func(err error) {
		logger.Warnf(ctx, "Config reload skipped: %v", err)
	})

	// 3. Metrics
	met := metrics.New(cfg.Metrics.Namespace)

	// 4. Task store
	store, err := bootstrap.OpenStore(ctx, cfg.Store, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open %s task store: %v", cfg.Store.Driver, err)
		return
	}
	defer store.Close()
	logger.Infof(ctx, "Task store: %s", cfg.Store.Driver)

	tasks := taskUC.New(store.Repo, met, logger)

	// 5. Interpreter
	interpreter, err := bootstrap.NewInterpreter(cfg.Interpreter, met, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to build interpreter: %v", err)
		return
	}
	logger.Infof(ctx, "Interpreter timezone: %s", cfg.Interpreter.Timezone)

	// 6. Reminders
	if cfg.Reminder.Enabled {
		notifier := reminder.New(tasks, met, logger, reminder.Config{
			Window:   cfg.Reminder.Window,
			Interval: cfg.Reminder.Interval,
		})
		go notifier.Run(ctx)
		logger.Infof(ctx, "Reminders every %s for tasks due within %s", cfg.Reminder.Interval, cfg.Reminder.Window)
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		TaskUseCase:     tasks,
		Assistant:       assistant.New(interpreter, tasks, logger),
		Metrics:         met,
		RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
		AllowAnyOrigin:  cfg.WebSocket.AllowAnyOrigin,
		ReadyCheck:      func() error { return store.Ping(ctx) },
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
