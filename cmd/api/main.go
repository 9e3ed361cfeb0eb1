package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"taskboard/config"
	_ "taskboard/docs" // Swagger docs
	"taskboard/internal/bootstrap"
	"taskboard/internal/httpserver"
	"taskboard/pkg/log"
	"taskboard/pkg/sqlite"
)

// @title       Taskboard API
// @description Task board with AI task extraction from free-form text.
// @version     1
// @host        localhost:5000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Taskboard...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, err)
		stop()
		os.Exit(1)
	}

	logger.Info(context.Background(), "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	// 3. Storage
	db, err := sqlite.Connect(ctx, cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()
	logger.Infof(ctx, "Database: %s", cfg.Database.Path)

	// 4. Extraction pipeline
	extractionUC, err := bootstrap.Extraction(ctx, cfg, logger, prometheus.DefaultRegisterer)
	if err != nil {
		return fmt.Errorf("failed to initialize extraction: %w", err)
	}

	// 5. Google Calendar (optional)
	calendar := bootstrap.Calendar(ctx, cfg, logger)

	// 6. HTTP Server
	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		DB:              db,
		Extraction:      extractionUC,
		RateLimitPerMin: cfg.RateLimit.ExtractPerMin,
		Calendar:        calendar,
		CalendarID:      cfg.GoogleCalendar.CalendarID,
		MetricsPath:     metricsPath,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		return fmt.Errorf("failed to run server: %w", err)
	}
	return nil
}
