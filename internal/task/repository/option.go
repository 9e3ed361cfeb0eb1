package repository

import (
	"time"

	"taskboard/internal/task"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	Title         string
	Description   string
	Status        task.Status
	Priority      task.Priority
	DueDate       string
	Category      string
	CreatedAt     time.Time
	IsAIGenerated bool
	Source        string
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
type GetOneTaskOptions struct {
	ID int64
}

// ListTasksOptions holds filter parameters for listing Tasks.
type ListTasksOptions struct {
	Status task.Status
}

// UpdateTaskOptions replaces every mutable column of a Task.
type UpdateTaskOptions struct {
	ID          int64
	Title       string
	Description string
	Status      task.Status
	Priority    task.Priority
	DueDate     string
	Category    string
}
