package middleware

import (
	"time"

	"khadamat/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestLogger tags every request with an id, stores a scoped logger under
// "logger" and logs the response.
func RequestLogger(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		logger := base.With(zap.String("requestId", requestID))
		c.Set(utils.CtxRequestID, requestID)
		c.Set(utils.CtxLogger, logger)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		logger.Info("Request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", getClientIP(c)))
	}
}
