package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"taskboard/internal/aimessage"
	msgHTTP "taskboard/internal/aimessage/delivery/http"
	msgRepo "taskboard/internal/aimessage/repository/sqlite"
	msgUC "taskboard/internal/aimessage/usecase"
	extractionHTTP "taskboard/internal/extraction/delivery/http"
	"taskboard/internal/middleware"
	taskHTTP "taskboard/internal/task/delivery/http"
	taskRepo "taskboard/internal/task/repository/sqlite"
	taskUC "taskboard/internal/task/usecase"
)

// Each domain follows the same wiring:
//  1. Repository:   repo := domainRepo.New(srv.db, srv.l)
//  2. UseCase:      uc := domainUC.New(...)
//  3. HTTP Handler: h := domainHTTP.New(srv.l, uc)
//  4. Routes:       domainHTTP.RegisterRoutes(api, h)

// setupAIMessageDomain registers /api/ai-messages and returns the use case
// so the extraction handler can record conversations.
func (srv *HTTPServer) setupAIMessageDomain(ctx context.Context, api *gin.RouterGroup) aimessage.UseCase {
	repo := msgRepo.New(srv.db, srv.l)
	uc := msgUC.New(repo, srv.l)
	h := msgHTTP.New(srv.l, uc)
	msgHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "AI message domain registered")
	return uc
}

// setupExtractionDomain registers the rate-limited /api/extract-tasks.
func (srv *HTTPServer) setupExtractionDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, messages aimessage.UseCase) {
	h := extractionHTTP.New(srv.l, srv.extractionUC, messages)
	extractionHTTP.RegisterRoutes(api, h, mw.RateLimit())

	srv.l.Infof(ctx, "Extraction domain registered")
}

// setupTaskDomain registers /api/tasks and /api/task-stats.
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) {
	repo := taskRepo.New(srv.db, srv.l)
	uc := taskUC.New(srv.l, repo, srv.calendar, srv.calendarID)
	h := taskHTTP.New(srv.l, uc)
	taskHTTP.RegisterRoutes(api, h)

	if srv.calendar != nil {
		srv.l.Infof(ctx, "Task domain registered (calendar sync enabled)")
	} else {
		srv.l.Infof(ctx, "Task domain registered")
	}
}
