package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// DefaultRedirectAfterMs is how long the confirmation stays on screen before redirecting.
const DefaultRedirectAfterMs = 3000

// Catalog describes every catalog page and reservation form served by the API.
type Catalog struct {
	Pages        []PageConfig                 `yaml:"pages"`
	Reservations map[string]ReservationConfig `yaml:"reservations"`
}

// PageConfig is one customer-facing listing page.
type PageConfig struct {
	Slug string `yaml:"slug"`

	// Source is "categories" (menage) or "types" (types_menage).
	Source string `yaml:"source"`

	Label    string                 `yaml:"label"`
	MenageID *int64                 `yaml:"menage_id"`
	Keywords []string               `yaml:"keywords"`
	Scope    []string               `yaml:"scope"`
	Routes   map[string]RouteConfig `yaml:"routes"`
}

// RouteConfig tells the client what a click on a classified card does.
type RouteConfig struct {
	Kind        string `yaml:"kind"`
	Route       string `yaml:"route"`
	Reservation string `yaml:"reservation"`
}

// ReservationConfig is one reservation form and the table it writes to.
type ReservationConfig struct {
	Table              string        `yaml:"table"`
	Pricing            PricingConfig `yaml:"pricing"`
	MinSelected        int           `yaml:"min_selected"`
	RequiresDimensions bool          `yaml:"requires_dimensions"`
	Redirect           string        `yaml:"redirect"`
	RedirectAfterMs    int           `yaml:"redirect_after_ms"`
}

// PricingConfig selects the pricing strategy of a reservation category.
type PricingConfig struct {
	Strategy         string             `yaml:"strategy"`
	ThresholdM2      float64            `yaml:"threshold_m2"`
	MinimumPrice     float64            `yaml:"minimum_price"`
	PricePerMeter    float64            `yaml:"price_per_meter"`
	IncludeBasePrice bool               `yaml:"include_base_price"`
	AddOns           map[string]float64 `yaml:"add_ons"`
}

// LoadCatalog reads the catalog from path, or the embedded default when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	raw := embeddedCatalog
	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		raw = b
	}
	return ParseCatalog(raw)
}

// ParseCatalog decodes and checks a catalog document.
func ParseCatalog(raw []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	for name, r := range c.Reservations {
		if r.RedirectAfterMs <= 0 {
			r.RedirectAfterMs = DefaultRedirectAfterMs
			c.Reservations[name] = r
		}
	}
	return &c, nil
}

// Page returns the page configured under slug.
func (c *Catalog) Page(slug string) (PageConfig, bool) {
	for _, p := range c.Pages {
		if p.Slug == slug {
			return p, true
		}
	}
	return PageConfig{}, false
}

func (c *Catalog) validate() error {
	seen := make(map[string]struct{}, len(c.Pages))
	for _, p := range c.Pages {
		if p.Slug == "" {
			return fmt.Errorf("catalog: page without slug")
		}
		if _, dup := seen[p.Slug]; dup {
			return fmt.Errorf("catalog: duplicate page %q", p.Slug)
		}
		seen[p.Slug] = struct{}{}
		if p.Source != "categories" && p.Source != "types" {
			return fmt.Errorf("catalog: page %q has unknown source %q", p.Slug, p.Source)
		}
		for tag, r := range p.Routes {
			switch r.Kind {
			case "navigate":
				if r.Route == "" {
					return fmt.Errorf("catalog: page %q route %q has no target", p.Slug, tag)
				}
			case "form":
				if _, ok := c.Reservations[r.Reservation]; !ok {
					return fmt.Errorf("catalog: page %q route %q references unknown reservation %q", p.Slug, tag, r.Reservation)
				}
			case "none":
			default:
				return fmt.Errorf("catalog: page %q route %q has unknown kind %q", p.Slug, tag, r.Kind)
			}
		}
	}
	for name, r := range c.Reservations {
		if r.Table == "" {
			return fmt.Errorf("catalog: reservation %q has no table", name)
		}
	}
	return nil
}
