package ws

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the streaming endpoint.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("/voice/ws", h.Serve)
}
