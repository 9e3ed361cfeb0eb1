package httpserver

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"taskboard/internal/extraction"
	"taskboard/pkg/log"
	"taskboard/pkg/sqlite"
)

type stubExtractor struct{}

func (stubExtractor) Extract(ctx context.Context, in extraction.ExtractInput) (extraction.ExtractOutput, error) {
	return extraction.ExtractOutput{Tasks: []extraction.ExtractedTask{{Title: "Call mom", Priority: extraction.PriorityMedium}}}, nil
}

func newTestServer(t *testing.T, port int) *HTTPServer {
	t.Helper()
	db, err := sqlite.Connect(context.Background(), sqlite.MemoryPath)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	reg := prometheus.NewRegistry()
	srv, err := New(log.NewNop(), Config{
		Logger:          log.NewNop(),
		Port:            port,
		Mode:            "test",
		Environment:     "development",
		DB:              db,
		Extraction:      stubExtractor{},
		RateLimitPerMin: 600,
		MetricsPath:     "/metrics",
		Registerer:      reg,
		Gatherer:        reg,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "missing mode", cfg: Config{Port: 1}},
		{name: "missing port", cfg: Config{Mode: "test"}},
		{name: "missing db", cfg: Config{Mode: "test", Port: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(log.NewNop(), tt.cfg); err == nil {
				t.Error("expected validation error")
			}
		})
	}
	if _, err := New(nil, Config{Mode: "test", Port: 1}); err == nil {
		t.Error("expected error for nil logger")
	}
}

func TestSystemRoutes(t *testing.T) {
	h := newTestServer(t, 5000).Handler()

	for _, path := range []string{"/health", "/ready", "/live"} {
		if w := get(h, path); w.Code != http.StatusOK {
			t.Errorf("%s = %d", path, w.Code)
		}
	}

	// Generate one request so the HTTP series exist.
	get(h, "/api/tasks")
	w := get(h, "/metrics")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "taskboard_http_requests_total") {
		t.Errorf("metrics = %d, body lacks http counter", w.Code)
	}
}

func TestUnknownRoute(t *testing.T) {
	w := get(newTestServer(t, 5000).Handler(), "/api/nope")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"message":"Not found"`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestReadyCheck_DatabaseDown(t *testing.T) {
	srv := newTestServer(t, 5000)
	srv.db.Close()

	if w := get(srv.Handler(), "/ready"); w.Code != http.StatusServiceUnavailable {
		t.Errorf("ready = %d, want 503", w.Code)
	}
}

func TestExtractionRecordsMessages(t *testing.T) {
	h := newTestServer(t, 5000).Handler()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/extract-tasks", strings.NewReader(`{"text":"call mom tomorrow"}`))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("extract = %d: %s", w.Code, w.Body.String())
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("missing request id header")
	}

	w = get(h, "/api/ai-messages")
	body := w.Body.String()
	if w.Code != http.StatusOK || !strings.Contains(body, "Extracted 1 task(s)") || !strings.Contains(body, "call mom tomorrow") {
		t.Errorf("ai-messages = %d %s", w.Code, body)
	}
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	srv := newTestServer(t, port)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
