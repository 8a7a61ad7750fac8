// Package bootstrap assembles the interpreter and the task store from
// configuration for the API server and the CLI.
package bootstrap

import (
	"context"
	"fmt"

	"voice-task-management/config"
	"voice-task-management/internal/matcher"
	"voice-task-management/internal/router"
	"voice-task-management/internal/task/repository"
	"voice-task-management/internal/task/repository/memory"
	"voice-task-management/internal/task/repository/postgre"
	"voice-task-management/internal/task/repository/sqlite"
	"voice-task-management/internal/voice"
	voiceUC "voice-task-management/internal/voice/usecase"
	"voice-task-management/pkg/datemath"
	"voice-task-management/pkg/log"
	"voice-task-management/pkg/metrics"
)

// Store is an opened task repository with its health probe and cleanup.
type Store struct {
	Repo  repository.Repository
	Ping  func(ctx context.Context) error
	Close func()
}

// OpenStore opens the repository selected by cfg.Driver.
func OpenStore(ctx context.Context, cfg config.StoreConfig, l log.Logger) (Store, error) {
	switch cfg.Driver {
	case config.StoreMemory, "":
		return Store{
			Repo:  memory.New(l),
			Ping:  func(context.Context) error { return nil },
			Close: func() {},
		}, nil

	case config.StoreSQLite:
		db, err := sqlite.Open(cfg.DSN)
		if err != nil {
			return Store{}, err
		}
		repo, err := sqlite.New(ctx, db, l)
		if err != nil {
			db.Close()
			return Store{}, err
		}
		return Store{
			Repo:  repo,
			Ping:  db.PingContext,
			Close: func() { db.Close() },
		}, nil

	case config.StorePostgres:
		pool, err := postgre.Connect(ctx, cfg.DSN)
		if err != nil {
			return Store{}, err
		}
		repo, err := postgre.New(ctx, pool, l)
		if err != nil {
			pool.Close()
			return Store{}, err
		}
		return Store{
			Repo:  repo,
			Ping:  pool.Ping,
			Close: pool.Close,
		}, nil
	}

	return Store{}, fmt.Errorf("unknown store driver %q", cfg.Driver)
}

// NewInterpreter builds the voice usecase for the configured timezone.
// metrics may be nil.
func NewInterpreter(cfg config.InterpreterConfig, met *metrics.Metrics, l log.Logger) (voice.UseCase, error) {
	timezone := cfg.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	parser, err := datemath.NewParser(timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", timezone, err)
	}

	r, err := router.New(l, cfg.ClassifyCacheSize)
	if err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	return voiceUC.New(r, matcher.NewTaskMatcher(l), parser, met, l), nil
}
