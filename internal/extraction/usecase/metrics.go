package usecase

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"taskboard/internal/extraction"
)

const (
	outcomeSuccess            = "success"
	outcomeInvalidInput       = "invalid_input"
	outcomeServiceUnavailable = "service_unavailable"
	outcomeEmptyResponse      = "empty_response"
	outcomeMalformedEnvelope  = "malformed_envelope"
)

type metrics struct {
	requests  *prometheus.CounterVec
	tasks     prometheus.Counter
	dropped   prometheus.Counter
	cacheHits prometheus.Counter
	duration  prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		requests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "taskboard_extraction_requests_total",
				Help: "Task extraction calls by outcome",
			},
			[]string{"outcome"},
		),
		tasks: f.NewCounter(prometheus.CounterOpts{
			Name: "taskboard_extraction_tasks_total",
			Help: "Validated tasks returned by extraction",
		}),
		dropped: f.NewCounter(prometheus.CounterOpts{
			Name: "taskboard_extraction_dropped_elements_total",
			Help: "Model candidates rejected by validation",
		}),
		cacheHits: f.NewCounter(prometheus.CounterOpts{
			Name: "taskboard_extraction_cache_hits_total",
			Help: "Extraction calls served from the result cache",
		}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "taskboard_extraction_duration_seconds",
			Help:    "Completion round-trip plus parsing time",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeSuccess
	case errors.Is(err, extraction.ErrInvalidInput):
		return outcomeInvalidInput
	case errors.Is(err, extraction.ErrEmptyResponse):
		return outcomeEmptyResponse
	case errors.Is(err, extraction.ErrMalformedEnvelope):
		return outcomeMalformedEnvelope
	default:
		return outcomeServiceUnavailable
	}
}
