package middleware

import (
	"github.com/prometheus/client_golang/prometheus"

	"taskboard/pkg/log"
)

const (
	// HeaderRequestID carries the request id in both directions.
	HeaderRequestID = "X-Request-ID"

	defaultRateLimitPerMin = 30
)

// Config configures the shared middlewares.
type Config struct {
	// RateLimitPerMin is the per-client budget of RateLimit. <= 0 uses 30.
	RateLimitPerMin int
	// Registerer receives the HTTP metrics. nil uses prometheus.DefaultRegisterer.
	Registerer prometheus.Registerer
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
	metrics *httpMetrics
}

func New(l log.Logger, cfg Config) Middleware {
	perMin := cfg.RateLimitPerMin
	if perMin <= 0 {
		perMin = defaultRateLimitPerMin
	}
	reg := cfg.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return Middleware{
		l:       l,
		limiter: newRateLimiter(perMin),
		metrics: newHTTPMetrics(reg),
	}
}
