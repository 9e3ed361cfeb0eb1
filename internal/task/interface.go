package task

import (
	"context"

	"taskboard/pkg/gcalendar"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Task CRUD
	Create(ctx context.Context, input CreateInput) (Task, error)
	List(ctx context.Context, input ListInput) ([]Task, error)
	Detail(ctx context.Context, id int64) (Task, error)
	Update(ctx context.Context, input UpdateInput) (Task, error)
	Delete(ctx context.Context, id int64) error

	// Stats counts tasks per status.
	Stats(ctx context.Context) (Stats, error)

	// CreateBulk persists extracted tasks and schedules their due dates.
	CreateBulk(ctx context.Context, input CreateBulkInput) (CreateBulkOutput, error)
}

// Calendar places all-day events on due dates. *gcalendar.Client satisfies it.
type Calendar interface {
	CreateDueDateEvent(ctx context.Context, req gcalendar.DueDateEventRequest) (*gcalendar.Event, error)
}
