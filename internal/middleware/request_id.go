package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the correlation id between the console
	// frontend and this backend.
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the gin context key the correlation id is stored under.
	RequestIDKey = "request_id"
)

// RequestID tags every request with a correlation id. A caller-supplied
// X-Request-ID is honored; otherwise a fresh UUID is minted. The id is
// echoed in the response headers so clients can quote it when reporting
// problems.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the correlation id for the current request, or ""
// when the middleware did not run.
func GetRequestID(c *gin.Context) string {
	if v, ok := c.Get(RequestIDKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
