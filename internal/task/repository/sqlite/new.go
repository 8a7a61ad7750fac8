package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"voice-task-management/internal/task/repository"
	"voice-task-management/pkg/log"
)

const schema = `
	CREATE TABLE IF NOT EXISTS tasks (
		seq        INTEGER PRIMARY KEY AUTOINCREMENT,
		id         TEXT    NOT NULL UNIQUE,
		text       TEXT    NOT NULL,
		completed  INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL,
		due_at     INTEGER
	);
	CREATE INDEX IF NOT EXISTS tasks_due_at_idx ON tasks (due_at) WHERE completed = 0;`

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// Open opens (creating if needed) the SQLite database at path. ":memory:"
// gives a private in-memory database.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}
	// One connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)
	return db, nil
}

// New creates a SQLite-backed Repository, creating the schema if missing.
func New(ctx context.Context, db *sql.DB, l log.Logger) (repository.Repository, error) {
	if db == nil {
		panic("task/repository/sqlite: db is required")
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("init sqlite schema: %w", err)
	}
	return &implRepository{db: db, l: l}, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqlite.%s", method)
}
