package catalogRepo

import (
	"context"
	"strings"

	"khadamat/models"
)

// Query narrows a catalog read. Zero value reads everything.
type Query struct {
	MenageID *int64
	// Keywords are OR-ed, case-insensitive, across the three name columns.
	Keywords []string
}

// CatalogRepository reads the service catalog. Results are ordered newest first.
type CatalogRepository interface {
	ListCategories(ctx context.Context, q Query) ([]models.ServiceCategory, error)
	ListServiceTypes(ctx context.Context, q Query) ([]models.ServiceType, error)
	GetServiceTypesByIDs(ctx context.Context, ids []int64) ([]models.ServiceType, error)
}

var nameColumns = []string{"name_fr", "name_ar", "name_en"}

func cleanKeywords(keywords []string) []string {
	var out []string
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
