package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware attaches a request id to every request, reusing the
// caller's header when present, and stores a request-scoped logger in the
// context under "logger".
func RequestIDMiddleware(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Writer.Header().Set(RequestIDHeader, reqID)
		c.Set("requestID", reqID)
		c.Set("logger", base.With(zap.String("requestID", reqID)))
		c.Next()
	}
}
