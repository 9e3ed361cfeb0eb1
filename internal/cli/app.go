package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"taskboard/config"
	"taskboard/internal/bootstrap"
	"taskboard/internal/extraction"
	"taskboard/internal/task"
	taskRepo "taskboard/internal/task/repository/sqlite"
	taskUC "taskboard/internal/task/usecase"
	"taskboard/pkg/log"
	"taskboard/pkg/sqlite"
)

// App holds what the commands need. Close releases the database.
type App struct {
	Logger     log.Logger
	Extraction extraction.UseCase
	Tasks      task.UseCase
	Close      func() error
}

// loadApp is swapped out in tests.
var loadApp = newApp

// newApp builds the same collaborators as the API server. The logger writes
// to stderr so stdout carries only command output (or the MCP stream).
func newApp(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		Output:       os.Stderr,
	})

	extractionUC, err := bootstrap.Extraction(ctx, cfg, logger, prometheus.NewRegistry())
	if err != nil {
		return nil, fmt.Errorf("initializing extraction: %w", err)
	}

	db, err := sqlite.Connect(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	calendar := bootstrap.Calendar(ctx, cfg, logger)
	tasks := taskUC.New(logger, taskRepo.New(db, logger), calendar, cfg.GoogleCalendar.CalendarID)

	return &App{
		Logger:     logger,
		Extraction: extractionUC,
		Tasks:      tasks,
		Close:      db.Close,
	}, nil
}
