package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/osa911/agencysite/internal/api/handlers"
)

// Handlers contains all the route handlers
type Handlers struct {
	Health  *handlers.HealthHandler
	Version *handlers.VersionHandler
	Contact *handlers.ContactHandler
}

// Middleware contains route-scoped middleware
type Middleware struct {
	BodyLimit gin.HandlerFunc
}
