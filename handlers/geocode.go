package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"khadamat/services/geocoding"
	"khadamat/services/locale"
	"khadamat/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GeocodeHandler fills the address field from browser coordinates.
type GeocodeHandler struct {
	Client *geocoding.Client
}

func NewGeocodeHandler(client *geocoding.Client) *GeocodeHandler {
	return &GeocodeHandler{Client: client}
}

// Reverse resolves lat/lon to a display address. Failures are a warning the
// customer can dismiss and type the address instead.
func (h *GeocodeHandler) Reverse(c *gin.Context) {
	logger := getLogger(c)

	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	if errLat != nil || errLon != nil || !geocoding.ValidCoordinates(lat, lon) {
		utils.JSONError(c, http.StatusBadRequest, msg(c, locale.MsgInvalidCoordinates), "")
		return
	}

	addr, err := h.Client.WithLanguage(getLang(c)).Reverse(c.Request.Context(), lat, lon)
	if err != nil {
		if !errors.Is(err, geocoding.ErrNoAddress) {
			logger.Warn("Reverse geocoding failed", zap.Float64("lat", lat), zap.Float64("lon", lon), zap.Error(err))
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"warning":     msg(c, locale.MsgGeocodingFailed),
			"dismissible": true,
		})
		return
	}
	c.JSON(http.StatusOK, addr)
}
