package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// supportedCodes is ordered like the matcher tags so the match index maps onto it.
var (
	supportedCodes = []string{FR, AR, EN}
	matcher        = language.NewMatcher([]language.Tag{language.French, language.Arabic, language.English})
)

// Negotiate picks the active language: an explicit query value wins, then
// the Accept-Language header, then French.
func Negotiate(query, acceptLanguage string) string {
	switch q := strings.ToLower(strings.TrimSpace(query)); q {
	case FR, AR, EN:
		return q
	}
	if strings.TrimSpace(acceptLanguage) == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(supportedCodes) {
		return Default
	}
	return supportedCodes[idx]
}
