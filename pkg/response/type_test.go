package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"taskboard/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	dt := response.DateTime(time.Date(2024, 5, 1, 15, 30, 0, 0, loc))

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}
	if string(b) != `"2024-05-01T08:30:00Z"` {
		t.Errorf("got %s", b)
	}
}
