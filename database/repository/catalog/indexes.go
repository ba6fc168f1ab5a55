package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// catalogIndexes lists the indexes backing the catalog reads.
func catalogIndexes() (categories, types []mongo.IndexModel) {
	categories = []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	types = []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "menage_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	return categories, types
}

// EnsureIndexes creates the catalog indexes when the Mongo backend is used.
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	categories, types := catalogIndexes()
	if _, err := db.Collection("menage").Indexes().CreateMany(ctx, categories); err != nil {
		return fmt.Errorf("failed to create menage indexes: %w", err)
	}
	if _, err := db.Collection("types_menage").Indexes().CreateMany(ctx, types); err != nil {
		return fmt.Errorf("failed to create types_menage indexes: %w", err)
	}
	return nil
}
