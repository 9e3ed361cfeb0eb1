package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.List)
		tasks.POST("", h.Create)
		tasks.POST("/bulk", h.CreateBulk)
		tasks.GET("/:id", h.Detail)
		tasks.PATCH("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
	}
	rg.GET("/task-stats", h.Stats)
}
