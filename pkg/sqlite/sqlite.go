package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const (
	driverName = "sqlite"

	// MemoryPath opens a private in-memory database.
	MemoryPath = ":memory:"
)

// Connect opens the database at path, creates its parent directory when
// needed and applies the schema.
func Connect(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite: database path is required")
	}

	if path != MemoryPath && !strings.HasPrefix(path, "file:") {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("sqlite: failed to create %s: %w", dir, err)
			}
		}
	}

	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to open %s: %w", path, err)
	}

	// SQLite allows a single writer, and every connection to :memory: would
	// otherwise see its own empty database.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: failed to connect: %w", err)
	}

	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate creates the tables used by the service if they do not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	for name, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("sqlite: failed to create %s: %w", name, err)
		}
	}
	return nil
}

var schema = map[string]string{
	"tasks": `
	CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'todo',
		priority TEXT NOT NULL DEFAULT 'medium',
		due_date TEXT,
		category TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		is_ai_generated INTEGER NOT NULL DEFAULT 0,
		source TEXT NOT NULL DEFAULT ''
	)`,
	"ai_messages": `
	CREATE TABLE IF NOT EXISTS ai_messages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		role TEXT NOT NULL,
		content TEXT NOT NULL,
		timestamp TEXT NOT NULL
	)`,
}
