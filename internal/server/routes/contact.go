package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/osa911/agencysite/internal/api/handlers"
)

// SetupContactRoutes configures contact form routes
func SetupContactRoutes(router *gin.RouterGroup, contact *handlers.ContactHandler, m *Middleware) {
	// Public endpoint; abuse is left to the CAPTCHA provider
	router.POST("/contact", m.BodyLimit, contact.Submit)
}
