package usecase

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"taskboard/internal/extraction"
)

// candidate mirrors ExtractedTask with nullable fields so absent, null and
// wrongly typed values can be told apart.
type candidate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
	Priority    *string `json:"priority"`
	Category    *string `json:"category"`
}

// validateElement checks one raw element against the ExtractedTask schema.
// Every failure wraps extraction.ErrInvalidElement.
func (uc *implUseCase) validateElement(raw json.RawMessage, ref time.Time) (extraction.ExtractedTask, error) {
	var c candidate
	if err := json.Unmarshal(raw, &c); err != nil {
		return extraction.ExtractedTask{}, fmt.Errorf("%w: %v", extraction.ErrInvalidElement, err)
	}

	title := trimmed(c.Title)
	if title == "" {
		return extraction.ExtractedTask{}, fmt.Errorf("%w: title is required", extraction.ErrInvalidElement)
	}

	if c.Priority == nil {
		return extraction.ExtractedTask{}, fmt.Errorf("%w: priority is required", extraction.ErrInvalidElement)
	}
	priority := extraction.Priority(strings.TrimSpace(*c.Priority))
	if !priority.Valid() {
		return extraction.ExtractedTask{}, fmt.Errorf("%w: invalid priority %q", extraction.ErrInvalidElement, *c.Priority)
	}

	task := extraction.ExtractedTask{
		Title:       title,
		Description: trimmed(c.Description),
		Priority:    priority,
		Category:    trimmed(c.Category),
	}

	if due := trimmed(c.DueDate); due != "" {
		date, err := uc.dateMath.ParseDate(due, ref)
		if err != nil {
			return extraction.ExtractedTask{}, fmt.Errorf("%w: dueDate: %v", extraction.ErrInvalidElement, err)
		}
		task.DueDate = date
	}

	return task, nil
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
