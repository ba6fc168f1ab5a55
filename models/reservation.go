package models

import "time"

// ReservationStatusPending is the only status written by this service; the
// lifecycle after that belongs to the back office.
const ReservationStatusPending = "pending"

// SelectedType is the snapshot of a chosen ServiceType stored with a reservation.
type SelectedType struct {
	ID    int64    `bson:"id" json:"id"`
	Name  string   `bson:"name" json:"name"`
	Price *float64 `bson:"price,omitempty" json:"price,omitempty"`
}

// Reservation is one row of a per-category reservation table.
type Reservation struct {
	ID              string                 `bson:"id" json:"id"`
	Firstname       string                 `bson:"firstname" json:"firstname"`
	Phone           string                 `bson:"phone" json:"phone"`
	Email           string                 `bson:"email,omitempty" json:"email,omitempty"`
	Location        string                 `bson:"location" json:"location"`
	CategoryHouseID *int64                 `bson:"category_house_id,omitempty" json:"category_house_id,omitempty"`
	ServiceID       *int64                 `bson:"service_id,omitempty" json:"service_id,omitempty"`
	SelectedTypes   []SelectedType         `bson:"selected_types" json:"selected_types"`
	FormData        map[string]interface{} `bson:"form_data" json:"form_data"`
	FinalPrice      float64                `bson:"final_price" json:"final_price"`
	PreferredDate   string                 `bson:"preferred_date,omitempty" json:"preferred_date,omitempty"`
	PreferredTime   string                 `bson:"preferred_time,omitempty" json:"preferred_time,omitempty"`
	Message         string                 `bson:"message,omitempty" json:"message,omitempty"`
	UserID          *string                `bson:"user_id" json:"user_id"`
	Status          string                 `bson:"status" json:"status"`
	CreatedAt       time.Time              `bson:"created_at" json:"created_at"`
}

// ReservationCreatedPayload is queued after a successful insert.
type ReservationCreatedPayload struct {
	Table         string  `json:"table"`
	ReservationID string  `json:"reservationId"`
	Firstname     string  `json:"firstname"`
	Phone         string  `json:"phone"`
	FinalPrice    float64 `json:"finalPrice"`
}
