package reservationRepo

import (
	"context"
	"fmt"

	"khadamat/models"
)

// ReservationRepository writes reservations into their per-category table.
type ReservationRepository interface {
	Insert(ctx context.Context, table string, reservation *models.Reservation) error
}

// InsertError carries what the backend reported about a failed insert.
type InsertError struct {
	Table   string
	Code    string
	Hint    string
	Details string
	Err     error
}

func (e *InsertError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("insert into %s failed (code %s): %v", e.Table, e.Code, e.Err)
	}
	return fmt.Sprintf("insert into %s failed: %v", e.Table, e.Err)
}

func (e *InsertError) Unwrap() error {
	return e.Err
}
