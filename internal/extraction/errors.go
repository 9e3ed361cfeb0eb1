package extraction

import (
	"errors"
	"fmt"
)

// Failure kinds of the pipeline. Use errors.Is against these.
var (
	ErrInvalidInput       = errors.New("text content is required")
	ErrServiceUnavailable = errors.New("completion service unavailable")
	ErrEmptyResponse      = errors.New("empty response from completion service")
	ErrMalformedEnvelope  = errors.New("response is not a JSON object with a tasks array")

	// ErrInvalidElement marks a single rejected candidate. It never escapes Extract.
	ErrInvalidElement = errors.New("invalid task element")
)

// ExtractionError is returned by Extract for every fatal failure.
type ExtractionError struct {
	Kind  error
	Cause error
}

func (e *ExtractionError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("failed to extract tasks from text: %v", e.Kind)
	}
	return fmt.Sprintf("failed to extract tasks from text: %v: %v", e.Kind, e.Cause)
}

func (e *ExtractionError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// NewError builds an ExtractionError of the given kind.
func NewError(kind, cause error) *ExtractionError {
	return &ExtractionError{Kind: kind, Cause: cause}
}
