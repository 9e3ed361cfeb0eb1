// Package bootstrap builds the collaborators shared by the API server and the CLI.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"taskboard/config"
	"taskboard/internal/extraction"
	"taskboard/internal/extraction/completion"
	extractionUC "taskboard/internal/extraction/usecase"
	"taskboard/internal/task"
	"taskboard/pkg/datemath"
	"taskboard/pkg/gcalendar"
	"taskboard/pkg/llmprovider"
	"taskboard/pkg/log"
)

// Extraction wires providers -> manager -> completion adapter -> usecase.
func Extraction(ctx context.Context, cfg *config.Config, l log.Logger, reg prometheus.Registerer) (extraction.UseCase, error) {
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, l)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	managerCfg, err := llmprovider.NewManagerConfig(&cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	manager := llmprovider.NewManager(providers, managerCfg, l)
	l.Infof(ctx, "LLM providers (priority order): %v", manager.Providers())

	parser, err := datemath.NewParser(cfg.Extraction.Timezone)
	if err != nil {
		l.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Extraction.Timezone, err)
		parser, _ = datemath.NewParser("UTC")
	}

	provider := completion.New(manager, completion.Options{
		Temperature: cfg.Extraction.Temperature,
		MaxTokens:   cfg.Extraction.MaxTokens,
	})

	return extractionUC.New(l, provider, parser, extractionUC.Config{
		CacheSize:  cfg.Extraction.CacheSize,
		CacheTTL:   cfg.Extraction.CacheTTL,
		Registerer: reg,
	})
}

// Calendar returns the Google Calendar client, or nil when it is not
// configured or cannot be initialised. Calendar sync is optional.
func Calendar(ctx context.Context, cfg *config.Config, l log.Logger) task.Calendar {
	if cfg.GoogleCalendar.CredentialsPath == "" {
		return nil
	}

	client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
	if err != nil {
		l.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		return nil
	}

	l.Info(ctx, "Google Calendar initialized")
	return client
}
