package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"taskboard/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestCalendarClient_Credentials(t *testing.T) {
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("broken config", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`), "")
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("installed app config", func(t *testing.T) {
		dir := t.TempDir()
		credsPath := filepath.Join(dir, "credentials.json")
		os.WriteFile(credsPath, []byte(mockCreds), 0o600)
		os.WriteFile(filepath.Join(dir, "token.json"),
			[]byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0o600)

		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), credsPath); err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("installed app config bad token", func(t *testing.T) {
		tokenPath := filepath.Join(t.TempDir(), "token.json")
		os.WriteFile(tokenPath, []byte(`{"broken": true`), 0o600)

		if _, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath); err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("installed app config missing token", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "token.json")
		if _, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), missing); err == nil {
			t.Fatalf("expected error without token file")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), "non-existent-file-path-12345.json"); err == nil {
			t.Errorf("expected reading file error")
		}
	})
}

func TestCreateDueDateEvent(t *testing.T) {
	var got struct {
		Summary string `json:"summary"`
		Start   struct {
			Date string `json:"date"`
		} `json:"start"`
		End struct {
			Date string `json:"date"`
		} `json:"end"`
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
			json.NewDecoder(r.Body).Decode(&got)
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"id": "event-123", "summary": "Submit report", "htmlLink": "https://calendar.google.com/event-uri"}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	})

	event, err := client.CreateDueDateEvent(context.Background(), gcalendar.DueDateEventRequest{
		Summary: "Submit report",
		Date:    "2024-01-31",
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	if event.HtmlLink != "https://calendar.google.com/event-uri" || event.ID != "event-123" {
		t.Errorf("unexpected event: %+v", event)
	}
	if got.Start.Date != "2024-01-31" || got.End.Date != "2024-02-01" {
		t.Errorf("all-day range = %s..%s", got.Start.Date, got.End.Date)
	}

	if _, err := client.CreateDueDateEvent(context.Background(), gcalendar.DueDateEventRequest{
		CalendarID: "other",
		Summary:    "x",
		Date:       "2024-01-31",
	}); err == nil {
		t.Error("expected API error for failing calendar")
	}

	if _, err := client.CreateDueDateEvent(context.Background(), gcalendar.DueDateEventRequest{Date: "soon"}); err == nil {
		t.Error("expected error for invalid date")
	}
}
