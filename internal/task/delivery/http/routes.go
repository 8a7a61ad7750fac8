package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.List)
		tasks.POST("", h.Create)
		tasks.DELETE("", h.ClearAll)
		tasks.GET("/stats", h.Stats)
		tasks.GET("/reminders", h.Reminders)
		tasks.PATCH("/:id/toggle", h.Toggle)
		tasks.DELETE("/:id", h.Delete)
	}
}
