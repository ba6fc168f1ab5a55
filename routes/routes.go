package routes

import (
	"net/http"
	"time"

	"khadamat/handlers"
	"khadamat/middleware"
	"khadamat/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the catalog page endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/pages", hb.ListPagesHandler)
		api.GET("/pages/:slug", hb.GetPageHandler)
		api.GET("/classify", hb.ClassifyHandler)
	}
}

// RegisterReservationRoutes registers the reservation form endpoints. Identity is optional.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reservations")
	{
		api.Use(middleware.OptionalIdentityMiddleware())
		api.POST("/:category/quote", hb.QuoteHandler)
		if hb.SubmitGuard != nil {
			api.POST("/:category", hb.SubmitGuard, hb.SubmitHandler)
		} else {
			api.POST("/:category", hb.SubmitHandler)
		}
	}
}

// RegisterPrefillRoutes registers the form draft endpoints.
func RegisterPrefillRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/prefill")
	{
		api.POST("", hb.CreatePrefillHandler)
		api.GET("/:token", hb.GetPrefillHandler)
	}
}

// RegisterGeocodeRoutes registers the reverse geocoding endpoint.
func RegisterGeocodeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/geocode")
	{
		api.GET("/reverse", hb.ReverseGeocodeHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.CheckedAt.IsZero() && !status.Healthy() {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": http.StatusText(code), "backends": status})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Accept-Language", "Idempotency-Key", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Language", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.LanguageMiddleware())

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterReservationRoutes(r, hb)
	RegisterPrefillRoutes(r, hb)
	RegisterGeocodeRoutes(r, hb)
}
