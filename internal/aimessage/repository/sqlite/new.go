package sqlite

import (
	"database/sql"
	"fmt"

	"taskboard/internal/aimessage/repository"
	"taskboard/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the aimessage domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("aimessage/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("aimessage/repository/sqlite.%s", method)
}
