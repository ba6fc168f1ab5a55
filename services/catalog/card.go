package catalog

import (
	"strings"

	"khadamat/config"
	"khadamat/models"
	"khadamat/services/classifier"
	"khadamat/services/locale"
)

// row is the part of a category or service type a card is built from.
type row struct {
	id           int64
	names        models.Localized
	descriptions models.Localized
	image        string
	price        *float64
	category     *models.ServiceCategory
}

func categoryRow(c models.ServiceCategory) row {
	return row{id: c.ID, names: c.LocalizedName(), descriptions: c.LocalizedDescription()}
}

func typeRow(t models.ServiceType) row {
	return row{
		id:           t.ID,
		names:        t.LocalizedName(),
		descriptions: t.LocalizedDescription(),
		image:        strings.TrimSpace(t.Image),
		price:        t.Price,
		category:     t.Menage,
	}
}

func (r row) card(page config.PageConfig, tag classifier.Tag, action classifier.Action, lang string) models.CatalogCard {
	name := locale.Pick(r.names, lang)
	if name == "" {
		name = locale.Placeholder(page.Label, r.id)
	}
	c := models.CatalogCard{
		ID:          r.id,
		Name:        name,
		Description: locale.Pick(r.descriptions, lang),
		Image:       r.image,
		Tag:         string(tag),
		Clickable:   action.Clickable(),
		Action:      string(action.Kind),
		Route:       action.Route,
		Reservation: action.Reservation,
	}
	if r.price != nil && *r.price >= 0 {
		p := *r.price
		c.Price = &p
		c.HasPrice = true
	}
	if r.category != nil {
		c.CategoryName = locale.Pick(r.category.LocalizedName(), lang)
	}
	return c
}
