package catalogRepo

import (
	"testing"

	"khadamat/models"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildFilter(t *testing.T) {
	t.Parallel()

	require.Empty(t, buildFilter(Query{}, true))

	id := int64(7)
	f := buildFilter(Query{MenageID: &id, Keywords: []string{" voiture ", "", "a.b"}}, true)
	require.Equal(t, int64(7), f["menage_id"])

	or, ok := f["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 6)
	require.Equal(t, bson.M{"name_fr": bson.M{"$regex": "voiture", "$options": "i"}}, or[0])
	require.Equal(t, bson.M{"name_en": bson.M{"$regex": `a\.b`, "$options": "i"}}, or[5])

	noMenage := buildFilter(Query{MenageID: &id}, false)
	require.NotContains(t, noMenage, "menage_id")
}

func TestNameConditions(t *testing.T) {
	t.Parallel()

	clause, args := nameConditions(nil)
	require.Empty(t, clause)
	require.Nil(t, args)

	clause, args = nameConditions([]string{"car wash", "50%"})
	require.Equal(t, "(name_fr ILIKE ? OR name_ar ILIKE ? OR name_en ILIKE ? OR name_fr ILIKE ? OR name_ar ILIKE ? OR name_en ILIKE ?)", clause)
	require.Len(t, args, 6)
	require.Equal(t, "%car wash%", args[0])
	require.Equal(t, `%50\%%`, args[3])
}

func TestAttachCategories(t *testing.T) {
	t.Parallel()

	types := []models.ServiceType{{ID: 1, MenageID: 10}, {ID: 2, MenageID: 11}, {ID: 3, MenageID: 10}}
	require.Equal(t, []int64{10, 11}, menageIDs(types))

	attach(types, []models.ServiceCategory{{ID: 10, NameFR: "Ménage"}})
	require.NotNil(t, types[0].Menage)
	require.Equal(t, "Ménage", types[0].Menage.NameFR)
	require.Nil(t, types[1].Menage)
	require.Same(t, types[0].Menage, types[2].Menage)
}

func TestCatalogIndexes(t *testing.T) {
	t.Parallel()

	categories, types := catalogIndexes()
	require.Len(t, categories, 2)
	require.Len(t, types, 3)
	require.Equal(t, bson.D{{Key: "menage_id", Value: 1}, {Key: "created_at", Value: -1}}, types[1].Keys)
	require.True(t, *types[0].Options.Unique)
}
