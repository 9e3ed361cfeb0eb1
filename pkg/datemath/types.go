package datemath

import (
	"errors"
	"time"
)

// DateFormat is the calendar-date layout used for due dates.
const DateFormat = "2006-01-02"

// ErrUnrecognized is returned when an expression is neither an absolute
// date nor one of the supported relative phrases.
var ErrUnrecognized = errors.New("unrecognized date expression")

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}
