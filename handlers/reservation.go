package handlers

import (
	"errors"
	"net/http"

	"khadamat/middleware"
	"khadamat/models"
	"khadamat/services/locale"
	"khadamat/services/reservation"
	"khadamat/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReservationHandler serves the reservation forms.
type ReservationHandler struct {
	ReservationService reservation.ReservationService
}

func NewReservationHandler(svc reservation.ReservationService) *ReservationHandler {
	return &ReservationHandler{ReservationService: svc}
}

func (h *ReservationHandler) bind(c *gin.Context) (models.ReservationRequest, bool) {
	var req models.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		getLogger(c).Warn("Invalid reservation payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, msg(c, locale.MsgInvalidRequest), err.Error())
		return req, false
	}
	return req, true
}

// Quote prices the form as currently filled in.
func (h *ReservationHandler) Quote(c *gin.Context) {
	category := c.Param("category")
	req, ok := h.bind(c)
	if !ok {
		return
	}

	quote, err := h.ReservationService.Quote(c.Request.Context(), category, getLang(c), req)
	if err != nil {
		h.fail(c, category, err, nil)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// Submit records the reservation: 201 on success, 400 when the form is
// invalid, 502 when the insert failed.
func (h *ReservationHandler) Submit(c *gin.Context) {
	logger := getLogger(c)
	category := c.Param("category")
	req, ok := h.bind(c)
	if !ok {
		return
	}

	outcome, err := h.ReservationService.Submit(c.Request.Context(), category, getLang(c), middleware.UserID(c), req)
	if err != nil {
		h.fail(c, category, err, outcome)
		return
	}
	logger.Info("Reservation recorded",
		zap.String("category", category),
		zap.String("reservationId", outcome.Reservation.ID),
		zap.Float64("finalPrice", outcome.Reservation.FinalPrice))
	c.JSON(http.StatusCreated, outcome)
}

func (h *ReservationHandler) fail(c *gin.Context, category string, err error, outcome *reservation.Outcome) {
	var verr *reservation.ValidationError
	switch {
	case errors.Is(err, reservation.ErrCategoryNotFound):
		utils.JSONError(c, http.StatusNotFound, msg(c, locale.MsgUnknownCategory), category)
	case errors.As(err, &verr):
		if outcome == nil {
			outcome = &reservation.Outcome{State: reservation.StateEditing, Field: verr.Field, Message: verr.Message}
		}
		c.JSON(http.StatusBadRequest, outcome)
	case errors.Is(err, reservation.ErrSubmitFailed) && outcome != nil:
		c.JSON(http.StatusBadGateway, outcome)
	default:
		getLogger(c).Error("Reservation request failed", zap.String("category", category), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, msg(c, locale.MsgReservationFailed), "")
	}
}
