package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupHealthRoutes configures health check and build info endpoints
func SetupHealthRoutes(router *gin.Engine, v1 *gin.RouterGroup, h *Handlers) {
	router.GET("/health", h.Health.Check)
	v1.GET("/version", h.Version.GetVersion)
}
