// Package locale picks the text to show for the active language.
package locale

import (
	"fmt"
	"strings"

	"khadamat/models"
)

const (
	FR = "fr"
	AR = "ar"
	EN = "en"

	Default = FR
)

// Entity is anything with language-suffixed name and description variants.
type Entity interface {
	LocalizedName() models.Localized
	LocalizedDescription() models.Localized
}

// Text is the resolved name and description of an entity.
type Text struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Normalize maps lang onto a supported language, defaulting to French.
func Normalize(lang string) string {
	switch l := strings.ToLower(strings.TrimSpace(lang)); l {
	case FR, AR, EN:
		return l
	}
	return Default
}

// Order returns the fallback order for lang.
func Order(lang string) []string {
	switch Normalize(lang) {
	case AR:
		return []string{AR, FR, EN}
	case EN:
		return []string{EN, FR, AR}
	default:
		return []string{FR, EN, AR}
	}
}

// Pick returns the first non-blank variant in lang's fallback order.
func Pick(v models.Localized, lang string) string {
	for _, l := range Order(lang) {
		if s := strings.TrimSpace(v.Get(l)); s != "" {
			return s
		}
	}
	return ""
}

// Resolve returns the name and description of e for lang. Name and
// description fall back independently.
func Resolve(e Entity, lang string) Text {
	return Text{
		Name:        Pick(e.LocalizedName(), lang),
		Description: Pick(e.LocalizedDescription(), lang),
	}
}

// Placeholder is shown when an entity has no name in any language.
func Placeholder(label string, id int64) string {
	return fmt.Sprintf("%s #%d", label, id)
}
