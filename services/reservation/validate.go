package reservation

import (
	"strings"

	"khadamat/config"
	"khadamat/models"
	"khadamat/services/locale"
	"khadamat/services/pricing"
)

func invalid(field, key, lang string) *ValidationError {
	return &ValidationError{Field: field, Key: key, Message: locale.Messages().T(lang, key)}
}

// validate checks the form without touching any backend. The first failing
// field wins.
func validate(cfg config.ReservationConfig, req models.ReservationRequest, lang string) *ValidationError {
	switch {
	case strings.TrimSpace(req.Firstname) == "":
		return invalid("firstname", locale.MsgFirstnameRequired, lang)
	case strings.TrimSpace(req.Phone) == "":
		return invalid("phone", locale.MsgPhoneRequired, lang)
	case strings.TrimSpace(req.Location) == "":
		return invalid("location", locale.MsgLocationRequired, lang)
	}

	minSelected := cfg.MinSelected
	if minSelected < 1 {
		minSelected = 1
	}
	if len(req.TypeIDs()) < minSelected {
		return invalid("selected_type_ids", locale.MsgSelectionRequired, lang)
	}

	if cfg.RequiresDimensions && !hasArea(req.Dimensions) {
		return invalid("dimensions", locale.MsgDimensionsRequired, lang)
	}
	return nil
}

func hasArea(dims []models.DimensionInput) bool {
	for _, d := range dims {
		if pricing.AreaM2(pricing.CleanNumber(string(d.Length)), pricing.CleanNumber(string(d.Width))) > 0 {
			return true
		}
	}
	return false
}
