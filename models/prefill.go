package models

import "time"

// PrefillDraft is a short-lived set of contact values reused to pre-populate a form.
type PrefillDraft struct {
	Category  string    `json:"category"`
	Firstname string    `json:"firstname"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
}
