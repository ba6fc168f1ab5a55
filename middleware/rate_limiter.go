package middleware

import (
	"net/http"
	"sync"
	"time"

	"khadamat/services/locale"
	"khadamat/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// rateLimiterStore holds a map of IP addresses to their rate limiters.
type rateLimiterStore struct {
	limiters  map[string]*rate.Limiter
	perMinute int
	mu        sync.Mutex
}

func newRateLimiterStore(perMinute int) *rateLimiterStore {
	if perMinute <= 0 {
		perMinute = 100
	}
	return &rateLimiterStore{limiters: make(map[string]*rate.Limiter), perMinute: perMinute}
}

// getLimiter returns the rate limiter for a given IP, creating one if it doesn't exist.
func (s *rateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(s.perMinute)), s.perMinute)
		s.limiters[ip] = limiter
	}
	return limiter
}

// RateLimitMiddleware allows perMinute requests per client IP, with an equal burst.
func RateLimitMiddleware(perMinute int) gin.HandlerFunc {
	store := newRateLimiterStore(perMinute)
	return func(c *gin.Context) {
		ip := getClientIP(c)
		if !store.getLimiter(ip).Allow() {
			zap.L().Warn("Rate limit exceeded", zap.String("ip", ip), zap.String("path", c.FullPath()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": locale.Messages().T(c.GetString(utils.CtxLang), locale.MsgRateLimited),
			})
			return
		}
		c.Next()
	}
}
