package catalogRepo

import (
	"context"
	"fmt"
	"regexp"

	"khadamat/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoCatalogRepo struct {
	categories *mongo.Collection
	types      *mongo.Collection
}

// NewMongoCatalogRepo returns a CatalogRepository over the "menage" and "types_menage" collections.
func NewMongoCatalogRepo(db *mongo.Database) CatalogRepository {
	return &mongoCatalogRepo{
		categories: db.Collection(models.ServiceCategory{}.TableName()),
		types:      db.Collection(models.ServiceType{}.TableName()),
	}
}

// buildFilter turns a Query into a Mongo filter. withMenage is false for the
// categories collection, which has no menage_id.
func buildFilter(q Query, withMenage bool) bson.M {
	filter := bson.M{}
	if withMenage && q.MenageID != nil {
		filter["menage_id"] = *q.MenageID
	}
	keywords := cleanKeywords(q.Keywords)
	if len(keywords) == 0 {
		return filter
	}
	or := make(bson.A, 0, len(keywords)*len(nameColumns))
	for _, k := range keywords {
		pattern := regexp.QuoteMeta(k)
		for _, col := range nameColumns {
			or = append(or, bson.M{col: bson.M{"$regex": pattern, "$options": "i"}})
		}
	}
	filter["$or"] = or
	return filter
}

func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
}

// ListCategories returns the categories matching q, newest first.
func (r *mongoCatalogRepo) ListCategories(ctx context.Context, q Query) ([]models.ServiceCategory, error) {
	cursor, err := r.categories.Find(ctx, buildFilter(q, false), newestFirst())
	if err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []models.ServiceCategory
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return categories, nil
}

// ListServiceTypes returns the service types matching q with their category attached.
func (r *mongoCatalogRepo) ListServiceTypes(ctx context.Context, q Query) ([]models.ServiceType, error) {
	return r.findTypes(ctx, buildFilter(q, true))
}

// GetServiceTypesByIDs returns the service types with the given ids.
func (r *mongoCatalogRepo) GetServiceTypesByIDs(ctx context.Context, ids []int64) ([]models.ServiceType, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.findTypes(ctx, bson.M{"id": bson.M{"$in": ids}})
}

func (r *mongoCatalogRepo) findTypes(ctx context.Context, filter bson.M) ([]models.ServiceType, error) {
	cursor, err := r.types.Find(ctx, filter, newestFirst())
	if err != nil {
		return nil, fmt.Errorf("find service types: %w", err)
	}
	defer cursor.Close(ctx)

	var types []models.ServiceType
	if err := cursor.All(ctx, &types); err != nil {
		return nil, fmt.Errorf("decode service types: %w", err)
	}
	if err := r.attachCategories(ctx, types); err != nil {
		return nil, err
	}
	return types, nil
}

// attachCategories fills the nested Menage relation with one extra query.
func (r *mongoCatalogRepo) attachCategories(ctx context.Context, types []models.ServiceType) error {
	ids := menageIDs(types)
	if len(ids) == 0 {
		return nil
	}
	cursor, err := r.categories.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return fmt.Errorf("find categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []models.ServiceCategory
	if err := cursor.All(ctx, &categories); err != nil {
		return fmt.Errorf("decode categories: %w", err)
	}
	attach(types, categories)
	return nil
}

func menageIDs(types []models.ServiceType) []int64 {
	seen := make(map[int64]struct{})
	var ids []int64
	for _, t := range types {
		if _, ok := seen[t.MenageID]; ok {
			continue
		}
		seen[t.MenageID] = struct{}{}
		ids = append(ids, t.MenageID)
	}
	return ids
}

func attach(types []models.ServiceType, categories []models.ServiceCategory) {
	byID := make(map[int64]*models.ServiceCategory, len(categories))
	for i := range categories {
		byID[categories[i].ID] = &categories[i]
	}
	for i := range types {
		if c, ok := byID[types[i].MenageID]; ok {
			types[i].Menage = c
		}
	}
}
