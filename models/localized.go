package models

// Localized holds the three language variants of one text field.
type Localized struct {
	FR string `json:"fr"`
	AR string `json:"ar"`
	EN string `json:"en"`
}

// Get returns the variant for lang ("fr", "ar" or "en"); anything else reads French.
func (l Localized) Get(lang string) string {
	switch lang {
	case "ar":
		return l.AR
	case "en":
		return l.EN
	default:
		return l.FR
	}
}
