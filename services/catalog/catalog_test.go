package catalog

import (
	"context"
	"errors"
	"testing"

	"khadamat/config"
	catalogRepo "khadamat/database/repository/catalog"
	"khadamat/models"

	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	categories []models.ServiceCategory
	types      []models.ServiceType
	err        error
	queries    []catalogRepo.Query
}

func (f *fakeRepo) ListCategories(_ context.Context, q catalogRepo.Query) ([]models.ServiceCategory, error) {
	f.queries = append(f.queries, q)
	return f.categories, f.err
}

func (f *fakeRepo) ListServiceTypes(_ context.Context, q catalogRepo.Query) ([]models.ServiceType, error) {
	f.queries = append(f.queries, q)
	return f.types, f.err
}

func (f *fakeRepo) GetServiceTypesByIDs(context.Context, []int64) ([]models.ServiceType, error) {
	return nil, errors.New("not used")
}

func newService(t *testing.T, repo *fakeRepo) *DefaultCatalogService {
	t.Helper()
	cat, err := config.LoadCatalog("")
	require.NoError(t, err)
	return NewCatalogService(repo, cat, nil)
}

func price(v float64) *float64 { return &v }

func TestLoadTypesPageScopesAndRoutes(t *testing.T) {
	t.Parallel()

	menage := &models.ServiceCategory{ID: 1, NameFR: "Ménage", NameEN: "Cleaning"}
	repo := &fakeRepo{types: []models.ServiceType{
		{ID: 10, MenageID: 1, NameFR: "Ménage appartement", NameEN: "Apartment cleaning", Price: price(2), Image: " https://cdn/x.png ", Menage: menage},
		{ID: 11, MenageID: 1, NameFR: "Nettoyage cuisine", DescriptionFR: "Hotte et placards", Menage: menage},
		{ID: 12, MenageID: 1, NameFR: "Lavage tapis"},
		{ID: 10, MenageID: 1, NameFR: "Ménage doublon"},
	}}
	svc := newService(t, repo)

	res, err := svc.Load(context.Background(), "menage", "fr")
	require.NoError(t, err)
	require.Equal(t, models.PageLoaded, res.State)
	require.False(t, res.Empty)
	require.Len(t, res.Cards, 2)

	first := res.Cards[0]
	require.Equal(t, int64(10), first.ID)
	require.Equal(t, "Ménage appartement", first.Name)
	require.Equal(t, "housekeeping", first.Tag)
	require.Equal(t, "form", first.Action)
	require.Equal(t, "menage", first.Reservation)
	require.True(t, first.Clickable)
	require.True(t, first.HasPrice)
	require.Equal(t, 2.0, *first.Price)
	require.Equal(t, "https://cdn/x.png", first.Image)
	require.Equal(t, "Ménage", first.CategoryName)

	second := res.Cards[1]
	require.Equal(t, "kitchen", second.Tag)
	require.Equal(t, "menage-cuisine", second.Reservation)
	require.Equal(t, "Hotte et placards", second.Description)
	require.False(t, second.HasPrice)
	require.Nil(t, second.Price)

	require.Len(t, repo.queries, 1)
	require.Empty(t, repo.queries[0].Keywords)
}

func TestLoadFallsBackAcrossLanguages(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{types: []models.ServiceType{
		{ID: 1, NameFR: "Ménage maison", NameAR: "  ", DescriptionEN: "Whole house"},
	}}
	res, err := newService(t, repo).Load(context.Background(), "menage", "ar")
	require.NoError(t, err)
	require.Equal(t, "ar", res.Lang)
	require.Len(t, res.Cards, 1)
	require.Equal(t, "Ménage maison", res.Cards[0].Name)
	require.Equal(t, "Whole house", res.Cards[0].Description)
}

func TestLoadCategoriesPageWithoutScope(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{categories: []models.ServiceCategory{
		{ID: 1, NameFR: "Lavage voiture"},
		{ID: 5},
	}}
	res, err := newService(t, repo).Load(context.Background(), "home", "en")
	require.NoError(t, err)
	require.Len(t, res.Cards, 2)

	require.Equal(t, "car_wash", res.Cards[0].Tag)
	require.Equal(t, "navigate", res.Cards[0].Action)
	require.Equal(t, "/lavage-voiture", res.Cards[0].Route)

	require.Equal(t, "Catégorie #5", res.Cards[1].Name)
	require.Equal(t, "none", res.Cards[1].Action)
	require.False(t, res.Cards[1].Clickable)
}

func TestLoadPassesPageKeywords(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	res, err := newService(t, repo).Load(context.Background(), "lavage-voiture", "fr")
	require.NoError(t, err)
	require.True(t, res.Empty)
	require.Equal(t, "Aucun service disponible pour le moment.", res.Message)
	require.Contains(t, repo.queries[0].Keywords, "voiture")
}

func TestLoadFailure(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{err: errors.New("connection refused")}
	res, err := newService(t, repo).Load(context.Background(), "piscine", "en")
	require.NoError(t, err)
	require.Equal(t, models.PageFailed, res.State)
	require.Equal(t, "Connection error. Please try again later.", res.Error)
	require.Empty(t, res.Cards)
}

func TestLoadUnknownPage(t *testing.T) {
	t.Parallel()

	_, err := newService(t, &fakeRepo{}).Load(context.Background(), "nope", "fr")
	require.ErrorIs(t, err, ErrPageNotFound)
}

func TestPages(t *testing.T) {
	t.Parallel()

	pages := newService(t, &fakeRepo{}).Pages()
	require.Equal(t, "home", pages[0])
	require.Contains(t, pages, "tapis-canape")
}
