// Package catalog loads a configured catalog page and renders its cards.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"khadamat/config"
	catalogRepo "khadamat/database/repository/catalog"
	"khadamat/models"
	"khadamat/services/classifier"
	"khadamat/services/locale"

	"go.uber.org/zap"
)

// ErrPageNotFound is returned for a slug that is not in the catalog.
var ErrPageNotFound = errors.New("catalog page not found")

const (
	SourceCategories = "categories"
	SourceTypes      = "types"
)

// CatalogService serves catalog pages.
type CatalogService interface {
	// Pages lists the configured page slugs.
	Pages() []string
	// Load reads, classifies and renders one page in lang.
	Load(ctx context.Context, slug, lang string) (models.PageResult, error)
}

// DefaultCatalogService reads through a CatalogRepository on every call.
type DefaultCatalogService struct {
	Repo       catalogRepo.CatalogRepository
	Catalog    *config.Catalog
	Classifier *classifier.Table
	Logger     *zap.Logger
}

// NewCatalogService wires a DefaultCatalogService with the default rule table.
func NewCatalogService(repo catalogRepo.CatalogRepository, cat *config.Catalog, logger *zap.Logger) *DefaultCatalogService {
	return &DefaultCatalogService{Repo: repo, Catalog: cat, Classifier: classifier.Default, Logger: logger}
}

func (s *DefaultCatalogService) Pages() []string {
	slugs := make([]string, 0, len(s.Catalog.Pages))
	for _, p := range s.Catalog.Pages {
		slugs = append(slugs, p.Slug)
	}
	return slugs
}

// Load never returns a repository error; a failed read yields a PageResult in
// the failed state carrying the localized connection error.
func (s *DefaultCatalogService) Load(ctx context.Context, slug, lang string) (models.PageResult, error) {
	lang = locale.Normalize(lang)
	page, ok := s.Catalog.Page(slug)
	if !ok {
		return models.PageResult{}, fmt.Errorf("%w: %s", ErrPageNotFound, slug)
	}

	result := models.PageResult{Slug: page.Slug, Lang: lang, State: models.PageLoading}

	rows, err := s.fetch(ctx, page)
	if err != nil {
		s.logger().Error("Catalog read failed",
			zap.String("page", page.Slug),
			zap.String("source", page.Source),
			zap.Error(err))
		result.State = models.PageFailed
		result.Cards = []models.CatalogCard{}
		result.Error = locale.Messages().T(lang, locale.MsgConnectionError)
		return result, nil
	}

	result.Cards = s.render(page, rows, lang)
	result.State = models.PageLoaded
	if len(result.Cards) == 0 {
		result.Empty = true
		result.Message = locale.Messages().T(lang, locale.MsgEmptyCatalog)
	}
	return result, nil
}

func (s *DefaultCatalogService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *DefaultCatalogService) table() *classifier.Table {
	if s.Classifier == nil {
		return classifier.Default
	}
	return s.Classifier
}

func (s *DefaultCatalogService) fetch(ctx context.Context, page config.PageConfig) ([]row, error) {
	q := catalogRepo.Query{MenageID: page.MenageID, Keywords: page.Keywords}
	if page.Source == SourceCategories {
		categories, err := s.Repo.ListCategories(ctx, q)
		if err != nil {
			return nil, err
		}
		rows := make([]row, len(categories))
		for i, c := range categories {
			rows[i] = categoryRow(c)
		}
		return rows, nil
	}
	types, err := s.Repo.ListServiceTypes(ctx, q)
	if err != nil {
		return nil, err
	}
	rows := make([]row, len(types))
	for i, t := range types {
		rows[i] = typeRow(t)
	}
	return rows, nil
}

func (s *DefaultCatalogService) render(page config.PageConfig, rows []row, lang string) []models.CatalogCard {
	routes := routesOf(page)
	scope := make(map[classifier.Tag]struct{}, len(page.Scope))
	for _, tag := range page.Scope {
		scope[classifier.Tag(tag)] = struct{}{}
	}

	seen := make(map[int64]struct{}, len(rows))
	cards := make([]models.CatalogCard, 0, len(rows))
	for _, r := range rows {
		if _, dup := seen[r.id]; dup {
			continue
		}
		tag, action := s.table().Dispatch(r.names, routes)
		if len(scope) > 0 {
			if _, ok := scope[tag]; !ok {
				continue
			}
		}
		seen[r.id] = struct{}{}
		cards = append(cards, r.card(page, tag, action, lang))
	}
	return cards
}

func routesOf(page config.PageConfig) classifier.Routes {
	routes := make(classifier.Routes, len(page.Routes))
	for tag, rc := range page.Routes {
		routes[classifier.Tag(tag)] = classifier.Action{
			Kind:        classifier.ActionKind(rc.Kind),
			Route:       rc.Route,
			Reservation: rc.Reservation,
		}
	}
	return routes
}
