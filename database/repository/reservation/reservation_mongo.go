package reservationRepo

import (
	"context"
	"errors"
	"strconv"

	"khadamat/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type mongoReservationRepo struct {
	db *mongo.Database
}

// NewMongoReservationRepo returns a ReservationRepository writing one collection per table.
func NewMongoReservationRepo(db *mongo.Database) ReservationRepository {
	return &mongoReservationRepo{db: db}
}

// Insert adds the reservation to the collection named table.
func (r *mongoReservationRepo) Insert(ctx context.Context, table string, reservation *models.Reservation) error {
	if _, err := r.db.Collection(table).InsertOne(ctx, reservation); err != nil {
		return mongoInsertError(table, err)
	}
	return nil
}

func mongoInsertError(table string, err error) *InsertError {
	ie := &InsertError{Table: table, Err: err}
	var we mongo.WriteException
	if errors.As(err, &we) {
		if len(we.WriteErrors) > 0 {
			ie.Code = strconv.Itoa(we.WriteErrors[0].Code)
			ie.Details = we.WriteErrors[0].Message
		} else if we.WriteConcernError != nil {
			ie.Code = strconv.Itoa(we.WriteConcernError.Code)
			ie.Details = we.WriteConcernError.Message
		}
	}
	return ie
}
