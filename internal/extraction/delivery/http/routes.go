package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the extraction endpoint. mws run before the handler,
// typically the rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mws ...gin.HandlerFunc) {
	rg.POST("/extract-tasks", append(mws, h.Extract)...)
}
