package gcalendar

// DueDateEventRequest describes an all-day event placed on a task's due date.
type DueDateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Date        string // YYYY-MM-DD
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
	Date     string
}

const (
	defaultCalendarID = "primary"
	dateLayout        = "2006-01-02"
	tokenFileName     = "token.json"
)
