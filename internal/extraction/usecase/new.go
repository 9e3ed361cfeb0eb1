package usecase

import (
	"errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"

	"taskboard/internal/extraction"
	"taskboard/pkg/datemath"
	pkgLog "taskboard/pkg/log"
)

// Config tunes the extraction usecase.
type Config struct {
	// CacheSize <= 0 disables the result cache.
	CacheSize int
	CacheTTL  time.Duration
	// Registerer receives the pipeline metrics. Nil means prometheus.DefaultRegisterer.
	Registerer prometheus.Registerer
}

type implUseCase struct {
	l        pkgLog.Logger
	provider extraction.CompletionProvider
	dateMath *datemath.Parser
	cache    *expirable.LRU[string, extraction.ExtractOutput]
	metrics  *metrics
	now      func() time.Time
}

// New creates a new extraction UseCase. Relative dates are resolved in the
// timezone of dateMath.
func New(
	l pkgLog.Logger,
	provider extraction.CompletionProvider,
	dateMath *datemath.Parser,
	cfg Config,
) (extraction.UseCase, error) {
	if provider == nil {
		return nil, errors.New("extraction: completion provider is required")
	}
	if dateMath == nil {
		return nil, errors.New("extraction: date parser is required")
	}

	reg := cfg.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	uc := &implUseCase{
		l:        l,
		provider: provider,
		dateMath: dateMath,
		metrics:  newMetrics(reg),
		now:      time.Now,
	}
	if cfg.CacheSize > 0 {
		uc.cache = expirable.NewLRU[string, extraction.ExtractOutput](cfg.CacheSize, nil, cfg.CacheTTL)
	}

	return uc, nil
}
