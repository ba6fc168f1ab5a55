package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Catalog endpoints
	ListPagesHandler gin.HandlerFunc
	GetPageHandler   gin.HandlerFunc
	ClassifyHandler  gin.HandlerFunc

	// Reservation endpoints
	QuoteHandler  gin.HandlerFunc
	SubmitHandler gin.HandlerFunc

	// Prefill endpoints
	CreatePrefillHandler gin.HandlerFunc
	GetPrefillHandler    gin.HandlerFunc

	// Geocoding endpoints
	ReverseGeocodeHandler gin.HandlerFunc

	// SubmitGuard is mounted in front of SubmitHandler; nil disables it.
	SubmitGuard gin.HandlerFunc
}
