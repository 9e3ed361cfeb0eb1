package response

import (
	"encoding/json"
	"time"
)

const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = time.RFC3339
)

// Resp is the failure/message body understood by the web client.
type Resp struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// DateTime is a datetime that marshals as DateTimeFormat in UTC.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(DateTimeFormat))
}
