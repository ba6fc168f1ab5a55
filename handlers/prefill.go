package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"khadamat/models"
	"khadamat/services/locale"
	"khadamat/services/prefill"
	"khadamat/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DraftStore is the prefill store used by PrefillHandler.
type DraftStore interface {
	Create(ctx context.Context, draft models.PrefillDraft) (string, error)
	Get(ctx context.Context, token string) (*models.PrefillDraft, error)
}

// PrefillHandler hands out form drafts.
type PrefillHandler struct {
	Store DraftStore
}

func NewPrefillHandler(store DraftStore) *PrefillHandler {
	return &PrefillHandler{Store: store}
}

// Create saves a draft and returns its token.
func (h *PrefillHandler) Create(c *gin.Context) {
	logger := getLogger(c)
	var draft models.PrefillDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.JSONError(c, http.StatusBadRequest, msg(c, locale.MsgInvalidRequest), err.Error())
		return
	}
	if strings.TrimSpace(draft.Category) == "" {
		utils.JSONError(c, http.StatusBadRequest, msg(c, locale.MsgUnknownCategory), "category is required")
		return
	}

	token, err := h.Store.Create(c.Request.Context(), draft)
	if err != nil {
		logger.Error("Failed to save prefill draft", zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, msg(c, locale.MsgConnectionError), "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token})
}

// Get returns a draft without consuming it.
func (h *PrefillHandler) Get(c *gin.Context) {
	logger := getLogger(c)
	token := c.Param("token")

	draft, err := h.Store.Get(c.Request.Context(), token)
	if errors.Is(err, prefill.ErrDraftNotFound) {
		utils.JSONError(c, http.StatusNotFound, msg(c, locale.MsgPrefillNotFound), "")
		return
	}
	if err != nil {
		logger.Error("Failed to read prefill draft", zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, msg(c, locale.MsgConnectionError), "")
		return
	}
	c.JSON(http.StatusOK, draft)
}
