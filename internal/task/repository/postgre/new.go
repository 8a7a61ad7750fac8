package postgre

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"voice-task-management/internal/task/repository"
	"voice-task-management/pkg/log"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		seq        BIGSERIAL PRIMARY KEY,
		id         TEXT        NOT NULL UNIQUE,
		text       TEXT        NOT NULL,
		completed  BOOLEAN     NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL,
		due_at     TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS tasks_pending_due_idx ON tasks (due_at) WHERE NOT completed`,
}

type implRepository struct {
	pool *pgxpool.Pool
	l    log.Logger
}

// Connect opens a connection pool for databaseURL.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, strings.TrimSpace(databaseURL))
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}

// New creates a PostgreSQL-backed Repository, creating the schema if missing.
func New(ctx context.Context, pool *pgxpool.Pool, l log.Logger) (repository.Repository, error) {
	if pool == nil {
		panic("task/repository/postgre: pool is required")
	}
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return nil, fmt.Errorf("init postgres schema: %w", err)
		}
	}
	return &implRepository{pool: pool, l: l}, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/postgre.%s", method)
}
