package extraction

import "time"

const dateLayout = "2006-01-02"

// DateContext holds the precomputed dates embedded in the instruction so the
// model never does date arithmetic itself.
type DateContext struct {
	Today    string
	Tomorrow string
	NextWeek string
	Weekday  string
}

// NewDateContext derives the date context from the reference date, in the
// reference date's own location.
func NewDateContext(ref time.Time) DateContext {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	return DateContext{
		Today:    day.Format(dateLayout),
		Tomorrow: day.AddDate(0, 0, 1).Format(dateLayout),
		NextWeek: day.AddDate(0, 0, 7).Format(dateLayout),
		Weekday:  day.Weekday().String(),
	}
}
