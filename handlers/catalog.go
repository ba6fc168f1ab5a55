package handlers

import (
	"errors"
	"net/http"

	"khadamat/models"
	"khadamat/services/catalog"
	"khadamat/services/classifier"
	"khadamat/services/locale"
	"khadamat/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves catalog pages.
type CatalogHandler struct {
	CatalogService catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{CatalogService: svc}
}

// ListPages returns the configured page slugs.
func (h *CatalogHandler) ListPages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"pages": h.CatalogService.Pages()})
}

// GetPage loads one page. A failed read answers 502 with the page in the failed state.
func (h *CatalogHandler) GetPage(c *gin.Context) {
	logger := getLogger(c)
	slug := c.Param("slug")

	page, err := h.CatalogService.Load(c.Request.Context(), slug, getLang(c))
	if err != nil {
		if errors.Is(err, catalog.ErrPageNotFound) {
			utils.JSONError(c, http.StatusNotFound, msg(c, locale.MsgUnknownPage), slug)
			return
		}
		logger.Error("Failed to load catalog page", zap.String("slug", slug), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, msg(c, locale.MsgConnectionError), "")
		return
	}
	if page.State == models.PageFailed {
		c.JSON(http.StatusBadGateway, page)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Classify reports the tag of a name triple, for support and diagnostics.
func (h *CatalogHandler) Classify(c *gin.Context) {
	names := models.Localized{
		FR: c.Query("name_fr"),
		AR: c.Query("name_ar"),
		EN: c.Query("name_en"),
	}
	tag, ok := classifier.Default.Classify(names)
	matches := make([]classifier.Tag, 0)
	for _, t := range classifier.Default.Priority() {
		if classifier.Default.Matches(t, names) {
			matches = append(matches, t)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"tag":        tag,
		"classified": ok,
		"matches":    matches,
		"name":       locale.Pick(names, getLang(c)),
	})
}
