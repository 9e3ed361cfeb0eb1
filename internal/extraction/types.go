package extraction

import "time"

// Priority is the urgency class assigned by the model.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the three accepted values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ExtractedTask is a validated task candidate. It is not persisted by the pipeline.
type ExtractedTask struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	DueDate     string   `json:"dueDate,omitempty"` // YYYY-MM-DD
	Priority    Priority `json:"priority"`
	Category    string   `json:"category,omitempty"`
}

// --- UseCase Inputs ---

type ExtractInput struct {
	Text string
	// ReferenceDate anchors relative dates. Zero means today in the configured timezone.
	ReferenceDate time.Time
}

// --- UseCase Outputs ---

type ExtractOutput struct {
	Tasks []ExtractedTask
	// DroppedCount is the number of model candidates rejected by validation.
	DroppedCount int
}

// Prompt is what the completion service receives.
type Prompt struct {
	System string
	User   string
}
