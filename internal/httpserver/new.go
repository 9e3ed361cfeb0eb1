package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"taskboard/internal/extraction"
	"taskboard/internal/task"
	"taskboard/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Storage
	db *sql.DB

	// Extraction domain
	extractionUC    extraction.UseCase
	rateLimitPerMin int

	// Task domain
	calendar   task.Calendar
	calendarID string

	// Metrics
	metricsPath string
	registerer  prometheus.Registerer
	gatherer    prometheus.Gatherer
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	// DB backs the task and ai-message domains and the readiness probe.
	DB *sql.DB

	Extraction      extraction.UseCase
	RateLimitPerMin int

	// Calendar is optional. When nil, bulk imports skip event creation.
	Calendar   task.Calendar
	CalendarID string

	// MetricsPath exposes Gatherer when non-empty.
	MetricsPath string
	Registerer  prometheus.Registerer
	Gatherer    prometheus.Gatherer
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		db:              cfg.DB,
		extractionUC:    cfg.Extraction,
		rateLimitPerMin: cfg.RateLimitPerMin,
		calendar:        cfg.Calendar,
		calendarID:      cfg.CalendarID,
		metricsPath:     cfg.MetricsPath,
		registerer:      cfg.Registerer,
		gatherer:        cfg.Gatherer,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 10 * time.Second
	}
	if srv.registerer == nil {
		srv.registerer = prometheus.DefaultRegisterer
	}
	if srv.gatherer == nil {
		srv.gatherer = prometheus.DefaultGatherer
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.extractionUC == nil {
		return errors.New("extraction use case is required")
	}
	return nil
}
