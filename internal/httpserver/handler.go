package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"taskboard/internal/middleware"
	"taskboard/internal/model"
	pkgErrors "taskboard/pkg/errors"
	"taskboard/pkg/response"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, middleware.Config{
		RateLimitPerMin: srv.rateLimitPerMin,
		Registerer:      srv.registerer,
	})

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery(), mw.RequestID(), mw.Logger(), mw.Metrics())

	ctx := context.Background()
	if model.IsProduction(srv.environment) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.metricsPath != "" {
		srv.gin.GET(srv.metricsPath, gin.WrapH(promhttp.HandlerFor(srv.gatherer, promhttp.HandlerOpts{})))
	}

	srv.gin.NoRoute(func(c *gin.Context) {
		response.Error(c, pkgErrors.ErrNotFound)
	})

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api.
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api")

	messages := srv.setupAIMessageDomain(ctx, api)
	srv.setupExtractionDomain(ctx, api, mw, messages)
	srv.setupTaskDomain(ctx, api)

	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}
