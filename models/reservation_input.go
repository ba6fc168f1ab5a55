package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// NumberInput accepts a JSON number or a JSON string; form fields arrive both ways.
// Strings are kept as typed and cleaned at pricing time. Numbers are stored in
// plain decimal form, negatives as "0".
type NumberInput string

func (n *NumberInput) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*n = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumberInput(s)
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid number %s: %w", raw, err)
	}
	if v < 0 {
		v = 0
	}
	*n = NumberInput(strconv.FormatFloat(v, 'f', -1, 64))
	return nil
}

// DimensionInput is one dimensioned room or item, in centimeters.
type DimensionInput struct {
	Label  string      `json:"label"`
	Length NumberInput `json:"length"`
	Width  NumberInput `json:"width"`
}

// ReservationRequest is the body of a reservation form submission or quote.
type ReservationRequest struct {
	Firstname       string                 `json:"firstname"`
	Phone           string                 `json:"phone"`
	Email           string                 `json:"email"`
	Location        string                 `json:"location"`
	CategoryHouseID *int64                 `json:"category_house_id"`
	ServiceID       *int64                 `json:"service_id"`
	SelectedTypeIDs []int64                `json:"selected_type_ids"`
	Dimensions      []DimensionInput       `json:"dimensions"`
	Options         map[string]bool        `json:"options"`
	FormData        map[string]interface{} `json:"form_data"`
	PreferredDate   string                 `json:"preferred_date"`
	PreferredTime   string                 `json:"preferred_time"`
	Message         string                 `json:"message"`
	PrefillToken    string                 `json:"prefill_token"`
}

// TypeIDs returns ServiceID followed by SelectedTypeIDs, without duplicates.
func (r ReservationRequest) TypeIDs() []int64 {
	seen := make(map[int64]struct{})
	var ids []int64
	add := func(id int64) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if r.ServiceID != nil {
		add(*r.ServiceID)
	}
	for _, id := range r.SelectedTypeIDs {
		add(id)
	}
	return ids
}
