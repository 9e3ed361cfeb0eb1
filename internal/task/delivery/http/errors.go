package http

import (
	"errors"
	"net/http"

	"taskboard/internal/task"
	pkgErrors "taskboard/pkg/errors"
)

var (
	errInvalidID   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid task ID")
	errInvalidTask = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid task data")
	errNotFound    = pkgErrors.NewHTTPError(http.StatusNotFound, "Task not found")

	errFetchAll   = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to fetch tasks")
	errFetchOne   = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to fetch task")
	errCreate     = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to create task")
	errCreateBulk = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to create tasks")
	errUpdate     = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to update task")
	errDelete     = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to delete task")
	errStats      = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to fetch task statistics")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors become fallback with the cause attached.
func (h *handler) mapError(err error, fallback *pkgErrors.HTTPError) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return errNotFound
	case errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrInvalidStatus),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrInvalidDueDate),
		errors.Is(err, task.ErrEmptyBulk):
		return errInvalidTask.Wrap(err)
	default:
		return fallback.Wrap(err)
	}
}
