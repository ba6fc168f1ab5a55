package middleware

import (
	"strings"

	"khadamat/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OptionalIdentityMiddleware resolves the customer id from a bearer token when
// one is present. Missing or invalid tokens leave the request anonymous.
func OptionalIdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		id, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			zap.L().Debug("Ignoring invalid bearer token", zap.Error(err))
			c.Next()
			return
		}
		c.Set(utils.CtxUserID, id)
		c.Next()
	}
}

// UserID returns the identity set by OptionalIdentityMiddleware, nil when anonymous.
func UserID(c *gin.Context) *string {
	id := c.GetString(utils.CtxUserID)
	if id == "" {
		return nil
	}
	return &id
}
