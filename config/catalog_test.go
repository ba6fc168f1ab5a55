package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmbeddedCatalogLoads(t *testing.T) {
	c, err := LoadCatalog("")
	require.NoError(t, err)
	require.NotEmpty(t, c.Pages)

	home, ok := c.Page("home")
	require.True(t, ok)
	require.Equal(t, "categories", home.Source)

	sofa, ok := c.Reservations["tapis-canape"]
	require.True(t, ok)
	require.Equal(t, "stepped_minimum", sofa.Pricing.Strategy)
	require.Equal(t, 8.0, sofa.Pricing.ThresholdM2)
	require.Equal(t, 800.0, sofa.Pricing.MinimumPrice)
	require.Equal(t, 100.0, sofa.Pricing.PricePerMeter)

	hotel := c.Reservations["airbnb-hotel"]
	require.Equal(t, 20.0, hotel.Pricing.AddOns["sheets"])
	require.Equal(t, 50.0, hotel.Pricing.AddOns["breakfast"])

	for name, r := range c.Reservations {
		require.Equal(t, DefaultRedirectAfterMs, r.RedirectAfterMs, name)
		require.NotEmpty(t, r.Redirect, name)
	}
}

func TestParseCatalogRejectsBrokenReferences(t *testing.T) {
	_, err := ParseCatalog([]byte(`
pages:
  - slug: menage
    source: types
    routes:
      housekeeping: { kind: form, reservation: missing }
`))
	require.ErrorContains(t, err, "unknown reservation")

	_, err = ParseCatalog([]byte(`
pages:
  - slug: a
    source: types
  - slug: a
    source: types
`))
	require.ErrorContains(t, err, "duplicate page")

	_, err = ParseCatalog([]byte(`
pages:
  - slug: a
    source: rows
`))
	require.ErrorContains(t, err, "unknown source")

	_, err = ParseCatalog([]byte(`
reservations:
  menage: { redirect: /menage }
`))
	require.ErrorContains(t, err, "no table")
}

func TestLoadCatalogFromMissingFile(t *testing.T) {
	_, err := LoadCatalog("/nonexistent/catalog.yaml")
	require.Error(t, err)
}
