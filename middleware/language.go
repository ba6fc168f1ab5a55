package middleware

import (
	"khadamat/services/locale"
	"khadamat/utils"

	"github.com/gin-gonic/gin"
)

// LanguageMiddleware stores the negotiated language ("fr", "ar" or "en") under "lang".
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := locale.Negotiate(c.Query("lang"), c.GetHeader("Accept-Language"))
		c.Set(utils.CtxLang, lang)
		c.Header("Content-Language", lang)
		c.Next()
	}
}
