package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/osa911/agencysite/internal/api/dto/common"
	"github.com/osa911/agencysite/internal/logging"
	"github.com/osa911/agencysite/internal/utils"
)

// CORS middleware. In development any origin is echoed back. Otherwise only
// origins in allowedOrigins (or "*") are allowed, and an empty list allows
// same-origin requests only.
func CORS(allowedOrigins []string, development bool, logger *logging.Logger) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if !utils.IsValidOrigin(origin) {
			logger.Warn("Ignoring invalid CORS origin %q", origin)
			continue
		}
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// Same-origin and non-browser requests carry no Origin header
		if origin == "" {
			c.Next()
			return
		}

		if !development && !allowed["*"] && !allowed[origin] {
			c.AbortWithStatusJSON(http.StatusForbidden,
				common.NewErrorResponse(common.ErrCodeForbidden, "Origin not allowed", nil))
			return
		}

		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Add("Vary", "Origin")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, X-Requested-With, X-Request-ID")
		h.Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		h.Set("Access-Control-Expose-Headers", "Content-Length, Content-Type, X-Request-ID")
		h.Set("Access-Control-Max-Age", "86400") // 24 hours

		// Handle preflight requests
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
