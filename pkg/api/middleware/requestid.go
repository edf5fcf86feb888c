package middleware

import (
	"github.com/LambdaTest/statusbridge/pkg/constants"
	"github.com/LambdaTest/statusbridge/pkg/lumber"
	"github.com/LambdaTest/statusbridge/pkg/utils"
	"github.com/gin-gonic/gin"
)

const (
	requestIDKey = "requestID"
	loggerKey    = "logger"
)

// HandleRequestID tags every request with an id, reusing the caller's when present,
// and stores a logger carrying that id in the gin context.
func HandleRequestID(logger lumber.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.RequestIDHeader)
		if requestID == "" {
			requestID = utils.GenerateUUID()
		}
		c.Set(requestIDKey, requestID)
		c.Set(loggerKey, logger.WithFields(lumber.Fields{"request_id": requestID}))
		c.Header(constants.RequestIDHeader, requestID)
		c.Next()
	}
}

// RequestID returns the id assigned by HandleRequestID.
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// Logger returns the request scoped logger, falling back to fallback.
func Logger(c *gin.Context, fallback lumber.Logger) lumber.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if l, ok := v.(lumber.Logger); ok {
			return l
		}
	}
	return fallback
}
