package catalogRepo

import (
	"context"
	"fmt"
	"strings"

	"khadamat/models"

	"gorm.io/gorm"
)

type gormCatalogRepo struct {
	db *gorm.DB
}

// NewGormCatalogRepo returns a CatalogRepository over the Postgres "menage" and "types_menage" tables.
func NewGormCatalogRepo(db *gorm.DB) CatalogRepository {
	return &gormCatalogRepo{db: db}
}

// nameConditions builds one ILIKE OR clause over the name columns.
func nameConditions(keywords []string) (string, []interface{}) {
	keywords = cleanKeywords(keywords)
	if len(keywords) == 0 {
		return "", nil
	}
	var clauses []string
	var args []interface{}
	for _, k := range keywords {
		pattern := "%" + escapeLike(k) + "%"
		for _, col := range nameColumns {
			clauses = append(clauses, col+" ILIKE ?")
			args = append(args, pattern)
		}
	}
	return "(" + strings.Join(clauses, " OR ") + ")", args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *gormCatalogRepo) scoped(ctx context.Context, q Query, withMenage bool) *gorm.DB {
	tx := r.db.WithContext(ctx).Order("created_at DESC")
	if withMenage && q.MenageID != nil {
		tx = tx.Where("menage_id = ?", *q.MenageID)
	}
	if clause, args := nameConditions(q.Keywords); clause != "" {
		tx = tx.Where(clause, args...)
	}
	return tx
}

func (r *gormCatalogRepo) ListCategories(ctx context.Context, q Query) ([]models.ServiceCategory, error) {
	var categories []models.ServiceCategory
	if err := r.scoped(ctx, q, false).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("select menage: %w", err)
	}
	return categories, nil
}

func (r *gormCatalogRepo) ListServiceTypes(ctx context.Context, q Query) ([]models.ServiceType, error) {
	var types []models.ServiceType
	if err := r.scoped(ctx, q, true).Preload("Menage").Find(&types).Error; err != nil {
		return nil, fmt.Errorf("select types_menage: %w", err)
	}
	return types, nil
}

func (r *gormCatalogRepo) GetServiceTypesByIDs(ctx context.Context, ids []int64) ([]models.ServiceType, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var types []models.ServiceType
	if err := r.db.WithContext(ctx).Preload("Menage").Where("id IN ?", ids).Find(&types).Error; err != nil {
		return nil, fmt.Errorf("select types_menage by id: %w", err)
	}
	return types, nil
}
