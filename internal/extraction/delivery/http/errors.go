package http

import (
	"errors"
	"net/http"

	"taskboard/internal/extraction"
	pkgErrors "taskboard/pkg/errors"
)

var (
	errTextRequired         = pkgErrors.NewHTTPError(http.StatusBadRequest, "Text content is required")
	errInvalidReferenceDate = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid reference date")
	errExtractFailed        = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to extract tasks")
)

// mapError translates pipeline errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	if errors.Is(err, extraction.ErrInvalidInput) {
		return errTextRequired
	}
	return errExtractFailed.Wrap(err)
}
