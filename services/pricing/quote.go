// Package pricing converts form dimensions to areas and computes reservation prices.
package pricing

import "sort"

// Entry is one dimensioned room or item, in centimeters.
type Entry struct {
	Label    string
	LengthCm float64
	WidthCm  float64
}

// LineItem is an additionally selected ServiceType charged at its price.
type LineItem struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Input is everything a quote depends on.
type Input struct {
	// UnitPrice is the primary ServiceType price: the per-m² rate, and the
	// base charge when the category includes it.
	UnitPrice float64
	Entries   []Entry
	Options   map[string]bool
	Extras    []LineItem
}

type EntryQuote struct {
	Label  string  `json:"label,omitempty"`
	AreaM2 float64 `json:"areaM2"`
	Price  float64 `json:"price"`
}

type AddOnQuote struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Quote is the computed price of a reservation.
type Quote struct {
	Strategy        string       `json:"strategy"`
	Entries         []EntryQuote `json:"entries"`
	TotalArea       float64      `json:"totalArea"`
	Base            float64      `json:"base"`
	EntriesSubtotal float64      `json:"entriesSubtotal"`
	AddOns          []AddOnQuote `json:"addOns"`
	AddOnsSubtotal  float64      `json:"addOnsSubtotal"`
	Extras          []LineItem   `json:"extras"`
	ExtrasSubtotal  float64      `json:"extrasSubtotal"`
	Total           float64      `json:"total"`
	Priced          bool         `json:"priced"`
}

// Compute prices in against cfg. Each sub-total and the total are rounded to
// two decimals. When the strategy cannot price the entries, Total is 0 and
// Priced is false.
func Compute(cfg Config, in Input) Quote {
	strategy := cfg.Strategy
	if strategy == nil {
		strategy = Flat{}
	}

	areas := make([]float64, len(in.Entries))
	for i, e := range in.Entries {
		areas[i] = AreaM2(e.LengthCm, e.WidthCm)
	}
	prices, entriesSubtotal, priced := strategy.Price(areas, in.UnitPrice)

	q := Quote{
		Strategy:        strategy.Name(),
		Entries:         make([]EntryQuote, len(in.Entries)),
		TotalArea:       TotalArea(areas),
		EntriesSubtotal: entriesSubtotal,
		Priced:          priced,
	}
	for i, e := range in.Entries {
		q.Entries[i] = EntryQuote{Label: e.Label, AreaM2: areas[i], Price: prices[i]}
	}

	if cfg.IncludeBasePrice {
		q.Base = Round2(nonNegative(in.UnitPrice))
	}

	names := make([]string, 0, len(cfg.AddOns))
	for name := range cfg.AddOns {
		if in.Options[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	var addOns float64
	for _, name := range names {
		price := Round2(nonNegative(cfg.AddOns[name]))
		q.AddOns = append(q.AddOns, AddOnQuote{Name: name, Price: price})
		addOns += price
	}
	q.AddOnsSubtotal = Round2(addOns)

	var extras float64
	for _, li := range in.Extras {
		li.Price = Round2(nonNegative(li.Price))
		q.Extras = append(q.Extras, li)
		extras += li.Price
	}
	q.ExtrasSubtotal = Round2(extras)

	if priced {
		q.Total = Round2(q.Base + q.EntriesSubtotal + q.AddOnsSubtotal + q.ExtrasSubtotal)
	}
	return q
}
