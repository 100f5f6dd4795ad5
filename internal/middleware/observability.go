package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/praiadomeio/app-ampm/internal/observability"
	"github.com/praiadomeio/app-ampm/internal/utils"
)

// RequestIDHeader carries the request id in and out
const RequestIDHeader = "X-Request-ID"

// RequestTracker tracks active connections
func RequestTracker() gin.HandlerFunc {
	return func(c *gin.Context) {
		observability.ActiveConnections.Inc()
		defer observability.ActiveConnections.Dec()
		c.Next()
	}
}

// RequestID reuses the caller's request id or generates one, and exposes it
// to handlers, to the response and to the request context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = utils.GenerateUUID()
		}
		c.Set("RequestID", requestID)
		c.Header(RequestIDHeader, requestID)
		c.Request = c.Request.WithContext(utils.ContextWithRequestID(c.Request.Context(), requestID))
		c.Next()
	}
}
