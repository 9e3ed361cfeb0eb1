package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	messages := rg.Group("/ai-messages")
	{
		messages.GET("", h.List)
		messages.POST("", h.Create)
	}
}
