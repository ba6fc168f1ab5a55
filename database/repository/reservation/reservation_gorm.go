package reservationRepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"khadamat/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type gormReservationRepo struct {
	db *gorm.DB
}

// NewGormReservationRepo returns a ReservationRepository over the Postgres reservation tables.
func NewGormReservationRepo(db *gorm.DB) ReservationRepository {
	return &gormReservationRepo{db: db}
}

func (r *gormReservationRepo) Insert(ctx context.Context, table string, reservation *models.Reservation) error {
	row, err := reservationRow(reservation)
	if err != nil {
		return &InsertError{Table: table, Err: err}
	}
	if err := r.db.WithContext(ctx).Table(table).Create(row).Error; err != nil {
		return pqInsertError(table, err)
	}
	return nil
}

// reservationRow maps a reservation onto the column layout of the hosted tables.
// JSON columns are sent as text and cast by Postgres. The tables generate
// their own primary key, so the reservation id is not written.
func reservationRow(res *models.Reservation) (map[string]interface{}, error) {
	selected, err := json.Marshal(res.SelectedTypes)
	if err != nil {
		return nil, fmt.Errorf("encode selected_types: %w", err)
	}
	formData := res.FormData
	if formData == nil {
		formData = map[string]interface{}{}
	}
	form, err := json.Marshal(formData)
	if err != nil {
		return nil, fmt.Errorf("encode form_data: %w", err)
	}

	row := map[string]interface{}{
		"firstname":      res.Firstname,
		"phone":          res.Phone,
		"location":       res.Location,
		"selected_types": string(selected),
		"form_data":      string(form),
		"final_price":    res.FinalPrice,
		"user_id":        res.UserID,
		"status":         res.Status,
		"created_at":     res.CreatedAt,
	}
	optional := map[string]string{
		"email":          res.Email,
		"preferred_date": res.PreferredDate,
		"preferred_time": res.PreferredTime,
		"message":        res.Message,
	}
	for col, v := range optional {
		if v != "" {
			row[col] = v
		}
	}
	if res.CategoryHouseID != nil {
		row["category_house_id"] = *res.CategoryHouseID
	}
	if res.ServiceID != nil {
		row["service_id"] = *res.ServiceID
	}
	return row, nil
}

func pqInsertError(table string, err error) *InsertError {
	ie := &InsertError{Table: table, Err: err}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		ie.Code = string(pqErr.Code)
		ie.Hint = pqErr.Hint
		ie.Details = pqErr.Detail
	}
	return ie
}
