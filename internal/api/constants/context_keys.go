package constants

// Context keys shared between middleware and handlers
const (
	ContextKeyRequestID = "RequestID"
)

// Request headers
const (
	HeaderRequestID = "X-Request-ID"
)
