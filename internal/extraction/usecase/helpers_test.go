package usecase

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"taskboard/internal/extraction"
	"taskboard/pkg/datemath"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// stubProvider returns a fixed completion and records what it was sent.
type stubProvider struct {
	content string
	err     error
	calls   int
	last    extraction.Prompt
}

func (s *stubProvider) Complete(ctx context.Context, prompt extraction.Prompt) (string, error) {
	s.calls++
	s.last = prompt
	return s.content, s.err
}

// refDate is Wednesday 2024-01-10.
var refDate = time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

// fataler is satisfied by *testing.T and *rapid.T.
type fataler interface {
	Helper()
	Fatalf(format string, args ...any)
}

func newTestUseCase(t fataler, provider extraction.CompletionProvider, cacheSize int) (*implUseCase, *prometheus.Registry) {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	reg := prometheus.NewRegistry()
	uc, err := New(&mockLogger{}, provider, parser, Config{
		CacheSize:  cacheSize,
		CacheTTL:   time.Minute,
		Registerer: reg,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return uc.(*implUseCase), reg
}
