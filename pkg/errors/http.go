package errors

import "fmt"

// HTTPError is an error that carries the HTTP status and the user-facing message.
type HTTPError struct {
	Code    int
	Message string
	Cause   error
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// Wrap returns a copy of e carrying cause as its detail.
func (e *HTTPError) Wrap(cause error) *HTTPError {
	return &HTTPError{Code: e.Code, Message: e.Message, Cause: cause}
}

func (e *HTTPError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Cause
}

var (
	ErrNotFound            = NewHTTPError(404, "Not found")
	ErrTooManyRequests     = NewHTTPError(429, "Too many requests")
	ErrInternalServerError = NewHTTPError(500, "Internal server error")
)
