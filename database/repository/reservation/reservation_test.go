package reservationRepo

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"khadamat/models"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestReservationRow(t *testing.T) {
	t.Parallel()

	price := 12.5
	service := int64(3)
	res := &models.Reservation{
		ID:            "r-1",
		Firstname:     "Amina",
		Phone:         "0600000000",
		Location:      "Casablanca",
		ServiceID:     &service,
		SelectedTypes: []models.SelectedType{{ID: 3, Name: "Chambre", Price: &price}},
		FinalPrice:    32,
		Status:        models.ReservationStatusPending,
		CreatedAt:     time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	row, err := reservationRow(res)
	require.NoError(t, err)
	require.Equal(t, `[{"id":3,"name":"Chambre","price":12.5}]`, row["selected_types"])
	require.Equal(t, `{}`, row["form_data"])
	require.Equal(t, int64(3), row["service_id"])
	require.NotContains(t, row, "category_house_id")
	require.NotContains(t, row, "email")
	require.Nil(t, row["user_id"])
	require.Equal(t, "pending", row["status"])
	require.NotContains(t, row, "id")
}

func TestPQInsertError(t *testing.T) {
	t.Parallel()

	cause := &pq.Error{Code: "42P01", Message: "relation does not exist", Hint: "check table"}
	ie := pqInsertError("menage_reservations", fmt.Errorf("exec: %w", cause))
	require.Equal(t, "42P01", ie.Code)
	require.Equal(t, "check table", ie.Hint)
	require.ErrorIs(t, ie, cause)
	require.Contains(t, ie.Error(), "menage_reservations")

	plain := pqInsertError("t", errors.New("boom"))
	require.Empty(t, plain.Code)
	require.Equal(t, "insert into t failed: boom", plain.Error())
}

func TestMongoInsertError(t *testing.T) {
	t.Parallel()

	we := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "duplicate key"}}}
	ie := mongoInsertError("piscine_reservations", we)
	require.Equal(t, "11000", ie.Code)
	require.Equal(t, "duplicate key", ie.Details)
}
