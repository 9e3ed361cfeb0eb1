package usecase

import (
	"time"

	"taskboard/internal/task"
	"taskboard/internal/task/repository"
	pkgLog "taskboard/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	calendar   task.Calendar
	calendarID string
	now        func() time.Time
}

// New creates a new task UseCase instance. calendar may be nil, in which
// case bulk imports skip event creation.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	calendar task.Calendar,
	calendarID string,
) task.UseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		calendar:   calendar,
		calendarID: calendarID,
		now:        time.Now,
	}
}
