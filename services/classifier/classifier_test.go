package classifier

import (
	"testing"

	"github.com/stretchr/testify/require"

	"khadamat/models"
)

func fr(s string) models.Localized { return models.Localized{FR: s} }

func TestClassifyRoutesEachCategory(t *testing.T) {
	t.Parallel()

	cases := []struct {
		names models.Localized
		want  Tag
	}{
		{fr("Lavage voiture au centre"), CarWashCenter},
		{fr("Lavage de voiture à domicile"), CarWashHome},
		{fr("Lavage de Voiture"), CarWash},
		{models.Localized{EN: "Car wash at home"}, CarWashHome},
		{models.Localized{AR: "غسل السيارات في المركز"}, CarWashCenter},
		{fr("Lavage et repassage"), LaundryIroning},
		{models.Localized{AR: "تصبين و الكي"}, LaundryIroning},
		{fr("Nettoyage tapis et canapé"), CarpetSofa},
		{models.Localized{EN: "Sofa cleaning"}, CarpetSofa},
		{fr("Nettoyage de bureaux"), Office},
		{fr("Nettoyage d'usine"), Factory},
		{models.Localized{EN: "Warehouse cleaning"}, Factory},
		{fr("Ménage Hôtel"), HotelAirbnb},
		{models.Localized{EN: "Airbnb turnover"}, HotelAirbnb},
		{fr("Nettoyage piscine"), Pool},
		{models.Localized{AR: "تنظيف المسبح"}, Pool},
		{fr("Nettoyage chaussures"), Shoes},
		{fr("Ménage cuisine"), Kitchen},
		{fr("Ménage"), Housekeeping},
		{models.Localized{AR: "تنظيف المنزل"}, Housekeeping},
		{models.Localized{EN: "  HOUSEKEEPING "}, Housekeeping},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.names.FR+tc.names.AR+tc.names.EN, func(t *testing.T) {
			t.Parallel()
			got, ok := Default.Classify(tc.names)
			require.True(t, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestClassifyDecomposedAccents(t *testing.T) {
	t.Parallel()

	got, ok := Default.Classify(fr("Me\u0301nage"))
	require.True(t, ok)
	require.Equal(t, Housekeeping, got)

	require.True(t, IsHousekeeping(fr("ME\u0301NAGE")))
}

func TestClassifyUnknownName(t *testing.T) {
	_, ok := Default.Classify(fr("Jardinage"))
	require.False(t, ok)

	_, ok = Default.Classify(models.Localized{})
	require.False(t, ok)
}

func TestOverlappingPairsNeverBothMatch(t *testing.T) {
	t.Parallel()

	pairs := []struct {
		name     string
		first    func(models.Localized) bool
		second   func(models.Localized) bool
		snippets []string
	}{
		{"car wash vs laundry", IsCarWash, IsLaundryIroning, []string{"voiture", "repassage", "linge", "véhicule", "lavage", "pressing"}},
		{"office vs factory", IsOffice, IsFactory, []string{"bureau", "usine", "entrepôt", "nettoyage"}},
		{"center vs home", IsCarWashCenter, IsCarWashHome, []string{"voiture", "centre", "domicile", "station", "chez vous"}},
	}
	for _, p := range pairs {
		for _, a := range p.snippets {
			for _, b := range p.snippets {
				names := fr(a + " " + b)
				require.False(t, p.first(names) && p.second(names), "%s: %q matched both", p.name, names.FR)
			}
		}
	}
}

func TestAdversarialNamesFollowPriority(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		names   models.Localized
		winner  func(models.Localized) bool
		loser   func(models.Localized) bool
		wantTag Tag
	}{
		{"car wash beats laundry", fr("Lavage voiture et repassage"), IsCarWash, IsLaundryIroning, CarWash},
		{"car wash beats laundry in english", models.Localized{EN: "Car wash and laundry ironing"}, IsCarWash, IsLaundryIroning, CarWash},
		{"office beats factory", fr("Nettoyage bureaux et usines"), IsOffice, IsFactory, Office},
		{"office beats factory in arabic", models.Localized{AR: "تنظيف مكاتب و مصانع"}, IsOffice, IsFactory, Office},
		{"center beats home", fr("Lavage voiture au centre ou à domicile"), IsCarWashCenter, IsCarWashHome, CarWashCenter},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.True(t, tc.winner(tc.names))
			require.False(t, tc.loser(tc.names))
			got, ok := Default.Classify(tc.names)
			require.True(t, ok)
			require.Equal(t, tc.wantTag, got)
		})
	}
}

func TestHousekeepingExcludesSpecificCategories(t *testing.T) {
	t.Parallel()

	for _, name := range []string{
		"Ménage tapis",
		"Ménage voiture",
		"Ménage et repassage",
		"Ménage bureaux",
		"Ménage usine",
		"Ménage Airbnb",
		"Ménage piscine",
		"Ménage chaussures",
	} {
		require.False(t, IsHousekeeping(fr(name)), name)
	}
	require.True(t, IsHousekeeping(fr("Ménage à domicile")))
	require.True(t, IsHousekeeping(fr("Ménage cuisine")), "kitchen is not excluded, priority decides")
}

func TestClassifyIgnoresEverythingButNames(t *testing.T) {
	t.Parallel()

	a := models.ServiceType{ID: 1, NameFR: "Nettoyage piscine", Price: nil}
	price := 99.0
	b := models.ServiceType{ID: 42, NameFR: "Nettoyage piscine", Price: &price, Image: "x.png"}

	tagA, _ := Default.Classify(a.LocalizedName())
	tagB, _ := Default.Classify(b.LocalizedName())
	require.Equal(t, tagA, tagB)
}

func TestDispatch(t *testing.T) {
	t.Parallel()

	routes := Routes{
		CarWashCenter: {Kind: ActionNavigate, Route: "/lavage-voiture/centre"},
		Office:        {Kind: ActionForm, Reservation: "bureaux-usines"},
		Pool:          {Kind: ActionNone},
	}

	tag, action := Default.Dispatch(fr("Lavage voiture centre"), routes)
	require.Equal(t, CarWashCenter, tag)
	require.Equal(t, ActionNavigate, action.Kind)
	require.Equal(t, "/lavage-voiture/centre", action.Route)

	tag, action = Default.Dispatch(fr("Nettoyage bureau"), routes)
	require.Equal(t, Office, tag)
	require.Equal(t, ActionForm, action.Kind)
	require.True(t, action.Clickable())

	tag, action = Default.Dispatch(fr("Nettoyage piscine"), routes)
	require.Equal(t, Pool, tag)
	require.False(t, action.Clickable())

	tag, action = Default.Dispatch(fr("Ménage"), routes)
	require.Equal(t, Housekeeping, tag)
	require.Equal(t, ActionNone, action.Kind)

	tag, action = Default.Dispatch(fr("Jardinage"), routes)
	require.Empty(t, tag)
	require.Equal(t, ActionNone, action.Kind)
}

func TestNewTableRejectsUnknownReferences(t *testing.T) {
	_, err := NewTable([]Rule{{Tag: Office, Excludes: []Tag{Factory}}}, []Tag{Office})
	require.Error(t, err)

	_, err = NewTable([]Rule{{Tag: Office}}, []Tag{Office, Factory})
	require.Error(t, err)

	_, err = NewTable([]Rule{{Tag: Office}, {Tag: Office}}, nil)
	require.Error(t, err)
}

func TestDefaultPriorityCoversEveryRule(t *testing.T) {
	require.Len(t, Default.Priority(), len(DefaultRules))
}
