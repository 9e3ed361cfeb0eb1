package task

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrEmptyTitle      = errors.New("title is required")
	ErrInvalidStatus   = errors.New("status must be one of todo, in_progress, completed")
	ErrInvalidPriority = errors.New("priority must be one of low, medium, high")
	ErrInvalidDueDate  = errors.New("dueDate must be YYYY-MM-DD or RFC3339")
	ErrEmptyBulk       = errors.New("no tasks to import")
)
