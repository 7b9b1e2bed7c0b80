package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/osa911/agencysite/internal/api/constants"
	"github.com/osa911/agencysite/internal/logging"
)

// RequestLogger is a middleware that logs request information.
// Lines are only written when the logger has request logging enabled.
func RequestLogger(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}

		c.Next()

		logger.LogHTTPRequest(
			c.Request.Method,
			path,
			c.ClientIP(),
			c.GetString(constants.ContextKeyRequestID),
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).String(),
		)
	}
}
