package usecase

import (
	"strings"
	"time"

	"taskboard/internal/task"
)

const dateLayout = "2006-01-02"

// normalizeDueDate accepts YYYY-MM-DD or an RFC3339 timestamp and returns the date part.
func normalizeDueDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t.Format(dateLayout), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format(dateLayout), nil
	}
	return "", task.ErrInvalidDueDate
}

// validateNew fills defaults and checks a task before insertion.
func validateNew(in task.CreateInput) (task.CreateInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return in, task.ErrEmptyTitle
	}
	if in.Status == "" {
		in.Status = task.StatusTodo
	}
	if !in.Status.Valid() {
		return in, task.ErrInvalidStatus
	}
	if in.Priority == "" {
		in.Priority = task.PriorityMedium
	}
	if !in.Priority.Valid() {
		return in, task.ErrInvalidPriority
	}
	due, err := normalizeDueDate(in.DueDate)
	if err != nil {
		return in, err
	}
	in.DueDate = due
	return in, nil
}

func completionRate(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(float64(completed)*100/float64(total) + 0.5)
}
