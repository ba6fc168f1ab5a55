package locale

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed messages.yaml
var embeddedMessages []byte

// Message keys.
const (
	MsgConnectionError    = "connection_error"
	MsgEmptyCatalog       = "empty_catalog"
	MsgFirstnameRequired  = "firstname_required"
	MsgPhoneRequired      = "phone_required"
	MsgLocationRequired   = "location_required"
	MsgSelectionRequired  = "selection_required"
	MsgSelectionInvalid   = "selection_invalid"
	MsgDimensionsRequired = "dimensions_required"
	MsgReservationSuccess = "reservation_success"
	MsgReservationFailed  = "reservation_failed"
	MsgSubmissionInFlight = "submission_in_flight"
	MsgGeocodingFailed    = "geocoding_failed"
	MsgInvalidCoordinates = "invalid_coordinates"
	MsgPrefillNotFound    = "prefill_not_found"
	MsgUnknownCategory    = "unknown_category"
	MsgUnknownPage        = "unknown_page"
	MsgInvalidRequest     = "invalid_request"
	MsgRateLimited        = "rate_limited"
)

// Bundle holds UI messages per language.
type Bundle struct {
	dict map[string]map[string]string
}

// ParseBundle decodes a `lang: {key: text}` YAML document.
func ParseBundle(raw []byte) (*Bundle, error) {
	dict := map[string]map[string]string{}
	if err := yaml.Unmarshal(raw, &dict); err != nil {
		return nil, fmt.Errorf("unmarshal messages: %w", err)
	}
	if _, ok := dict[Default]; !ok {
		return nil, fmt.Errorf("messages: default language %s missing", Default)
	}
	return &Bundle{dict: dict}, nil
}

var (
	defaultBundle     *Bundle
	defaultBundleErr  error
	defaultBundleOnce sync.Once
)

// Messages returns the bundle built from the embedded messages.yaml.
func Messages() *Bundle {
	defaultBundleOnce.Do(func() {
		defaultBundle, defaultBundleErr = ParseBundle(embeddedMessages)
	})
	if defaultBundleErr != nil {
		panic(defaultBundleErr)
	}
	return defaultBundle
}

// T returns the message for key in lang, following the language fallback
// order and finally returning the key itself.
func (b *Bundle) T(lang, key string) string {
	for _, l := range Order(lang) {
		if m, ok := b.dict[l]; ok {
			if v, ok := m[key]; ok && v != "" {
				return v
			}
		}
	}
	return key
}
