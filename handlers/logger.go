package handlers

import (
	"khadamat/services/locale"
	"khadamat/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves the request-scoped logger or falls back to the global one.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get(utils.CtxLogger); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

// getLang returns the negotiated language, negotiating here when the middleware did not run.
func getLang(c *gin.Context) string {
	if lang := c.GetString(utils.CtxLang); lang != "" {
		return lang
	}
	return locale.Negotiate(c.Query("lang"), c.GetHeader("Accept-Language"))
}

func msg(c *gin.Context, key string) string {
	return locale.Messages().T(getLang(c), key)
}
