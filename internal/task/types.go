package task

import "time"

// Status is the column a task sits in on the board.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// DefaultBulkSource labels tasks imported from an extraction result.
const DefaultBulkSource = "ai-assistant"

// --- Task Domain Model ---

type Task struct {
	ID          int64
	Title       string
	Description string
	Status      Status
	Priority    Priority
	// DueDate is YYYY-MM-DD, empty when the task has no deadline.
	DueDate       string
	Category      string
	CreatedAt     time.Time
	IsAIGenerated bool
	Source        string
}

// Stats summarises the board.
type Stats struct {
	Total      int
	Todo       int
	InProgress int
	Completed  int
	// CompletionRate is completed/total as a rounded percentage.
	CompletionRate int
}

// --- UseCase Inputs ---

type CreateInput struct {
	Title         string
	Description   string
	Status        Status   // defaults to todo
	Priority      Priority // defaults to medium
	DueDate       string   // YYYY-MM-DD or RFC3339
	Category      string
	IsAIGenerated bool
	Source        string
}

type ListInput struct {
	Status Status // empty lists every task
}

// UpdateInput is a partial update: nil fields are left untouched and an
// empty DueDate clears the deadline.
type UpdateInput struct {
	ID          int64
	Title       *string
	Description *string
	Status      *Status
	Priority    *Priority
	DueDate     *string
	Category    *string
}

// BulkTask is one extracted task to import.
type BulkTask struct {
	Title       string
	Description string
	DueDate     string
	Priority    Priority
	Category    string
}

type CreateBulkInput struct {
	Tasks  []BulkTask
	Source string
}

// --- UseCase Outputs ---

type CreateBulkOutput struct {
	Tasks []Task
	// CalendarLinks maps task ids to the calendar event created for their due date.
	CalendarLinks map[int64]string
}
