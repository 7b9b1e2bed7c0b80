package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/osa911/agencysite/internal/logging"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware) {
	logger := logging.GetGlobalLogger()

	// Create base API v1 group
	v1 := router.Group("/api/v1")

	// Health and version (public)
	SetupHealthRoutes(router, v1, h)

	// Contact routes (public)
	SetupContactRoutes(v1, h.Contact, m)

	logger.Info("All routes have been set up successfully")
}
