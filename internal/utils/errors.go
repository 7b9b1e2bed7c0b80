package utils

import (
	"github.com/osa911/agencysite/internal/api/dto/common"
	"github.com/osa911/agencysite/internal/logging"

	"github.com/gin-gonic/gin"
)

// HandleAPIError is a utility function for consistent error handling across the API.
// err is logged but never rendered: the client only sees code and message.
func HandleAPIError(c *gin.Context, err error, status int, code common.ErrorCode, message string) {
	HandleAPIErrorWithDetails(c, err, status, code, message, nil)
}

// HandleAPIErrorWithDetails is HandleAPIError with client-safe details attached,
// such as the list of invalid fields.
func HandleAPIErrorWithDetails(c *gin.Context, err error, status int, code common.ErrorCode, message string, details interface{}) {
	logger := logging.GetGlobalLogger()
	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		c.ClientIP(),
		status,
		message,
		err,
	)

	c.AbortWithStatusJSON(status, common.NewErrorResponse(code, message, details))
}
