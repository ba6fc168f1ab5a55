package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"khadamat/services/locale"
	"khadamat/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SubmissionGuard lets one submission per key through at a time. The key is
// the Idempotency-Key header, or the client IP and category. A concurrent
// duplicate gets 409; the lock is released when the handler returns.
func SubmissionGuard(client *redis.Client, ttl time.Duration) gin.HandlerFunc {
	if ttl <= 0 {
		ttl = utils.DefaultSubmitLockTTL
	}
	return func(c *gin.Context) {
		key := utils.SubmitLockPrefix + c.Param("category") + ":" + submissionKey(c)
		ctx := c.Request.Context()

		acquired, err := client.SetNX(ctx, key, time.Now().Unix(), ttl).Result()
		if err != nil {
			// Redis trouble must not block bookings.
			zap.L().Warn("Submission lock unavailable", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}
		if !acquired {
			c.AbortWithStatusJSON(http.StatusConflict, utils.ErrorResponse{
				Message: locale.Messages().T(c.GetString(utils.CtxLang), locale.MsgSubmissionInFlight),
			})
			return
		}
		defer func() {
			releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := client.Del(releaseCtx, key).Err(); err != nil {
				zap.L().Warn("Failed to release submission lock", zap.String("key", key), zap.Error(err))
			}
		}()
		c.Next()
	}
}

func submissionKey(c *gin.Context) string {
	if k := strings.TrimSpace(c.GetHeader("Idempotency-Key")); k != "" {
		return k
	}
	return getClientIP(c)
}
