package sqlite

import (
	"database/sql"
	"strings"
	"time"

	"taskboard/internal/task"
	repo "taskboard/internal/task/repository"
)

const (
	taskColumns = `id, title, description, status, priority, due_date, category, created_at, is_ai_generated, source`
	timeLayout  = time.RFC3339Nano
)

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (task.Task, error) {
	var (
		t         task.Task
		status    string
		priority  string
		dueDate   sql.NullString
		createdAt string
		aiFlag    int
	)
	if err := s.Scan(&t.ID, &t.Title, &t.Description, &status, &priority, &dueDate, &t.Category, &createdAt, &aiFlag, &t.Source); err != nil {
		return task.Task{}, err
	}
	t.Status = task.Status(status)
	t.Priority = task.Priority(priority)
	t.DueDate = dueDate.String
	t.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	t.IsAIGenerated = aiFlag == 1
	return t, nil
}

// nullableDate maps an empty due date to NULL.
func nullableDate(d string) sql.NullString {
	return sql.NullString{String: d, Valid: d != ""}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// buildListQuery builds the WHERE + ORDER clause for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var parts []string
	var args []any

	if opt.Status != "" {
		parts = append(parts, "WHERE status = ?")
		args = append(args, string(opt.Status))
	}
	parts = append(parts, "ORDER BY created_at DESC, id DESC")

	return strings.Join(parts, " "), args
}
