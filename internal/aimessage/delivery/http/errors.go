package http

import (
	"errors"
	"net/http"

	"taskboard/internal/aimessage"
	pkgErrors "taskboard/pkg/errors"
)

var (
	errInvalidMessage = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid message data")
	errFetchFailed    = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to fetch AI messages")
	errCreateFailed   = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to create message")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error, fallback *pkgErrors.HTTPError) error {
	switch {
	case errors.Is(err, aimessage.ErrInvalidRole), errors.Is(err, aimessage.ErrEmptyContent):
		return errInvalidMessage.Wrap(err)
	default:
		return fallback.Wrap(err)
	}
}
