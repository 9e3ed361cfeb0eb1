package repository

import (
	"context"

	"taskboard/internal/task"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
	StatsRepository
}

// TaskRepository defines all data access methods for the Task entity.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (task.Task, error)
	// CreateTasks inserts every task or none.
	CreateTasks(ctx context.Context, opts []CreateTaskOptions) ([]task.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (task.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]task.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (task.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

type StatsRepository interface {
	CountByStatus(ctx context.Context) (map[task.Status]int, error)
}
