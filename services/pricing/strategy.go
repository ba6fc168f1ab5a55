package pricing

import (
	"fmt"
	"strings"

	"khadamat/config"
)

// Strategy names as they appear in catalog.yaml.
const (
	StrategyPerM2          = "per_m2"
	StrategySteppedMinimum = "stepped_minimum"
	StrategyFlat           = "flat"
)

// Stepped-minimum defaults (sofa and carpet cleaning).
const (
	DefaultThresholdM2   = 8
	DefaultMinimumPrice  = 800
	DefaultPricePerMeter = 100
)

// Strategy prices the dimensioned entries of a reservation.
//
// Price receives one area per entry, in square meters, and the ServiceType
// rate. It returns one price per entry, the entries subtotal, and whether a
// price could be computed at all.
type Strategy interface {
	Name() string
	Price(areas []float64, rate float64) (prices []float64, subtotal float64, priced bool)
}

// PerSquareMeter prices every entry at area * rate.
type PerSquareMeter struct{}

func (PerSquareMeter) Name() string { return StrategyPerM2 }

func (PerSquareMeter) Price(areas []float64, rate float64) ([]float64, float64, bool) {
	rate = nonNegative(rate)
	prices := make([]float64, len(areas))
	var sum float64
	for i, a := range areas {
		prices[i] = Round2(nonNegative(a) * rate)
		sum += prices[i]
	}
	return prices, Round2(sum), true
}

// SteppedMinimum charges MinimumPrice up to ThresholdM2 of total area and
// PricePerMeter for the whole area above it. It is a cliff, not a floor plus
// marginal rate. With no dimensioned entry there is no price.
type SteppedMinimum struct {
	ThresholdM2   float64
	MinimumPrice  float64
	PricePerMeter float64
}

func (SteppedMinimum) Name() string { return StrategySteppedMinimum }

func (s SteppedMinimum) Price(areas []float64, _ float64) ([]float64, float64, bool) {
	prices := make([]float64, len(areas))
	total := TotalArea(areas)
	if total <= 0 {
		return prices, 0, false
	}
	if total <= s.ThresholdM2 {
		return prices, Round2(nonNegative(s.MinimumPrice)), true
	}
	return prices, Round2(total * nonNegative(s.PricePerMeter)), true
}

// Flat ignores dimensions; the category charges its base price and add-ons.
type Flat struct{}

func (Flat) Name() string { return StrategyFlat }

func (Flat) Price(areas []float64, _ float64) ([]float64, float64, bool) {
	return make([]float64, len(areas)), 0, true
}

// TotalArea sums areas, ignoring negatives.
func TotalArea(areas []float64) float64 {
	var sum float64
	for _, a := range areas {
		sum += nonNegative(a)
	}
	return Round2(sum)
}

// Config is the pricing setup of one reservation category.
type Config struct {
	Strategy         Strategy
	IncludeBasePrice bool
	AddOns           map[string]float64
}

// FromConfig builds a pricing Config from its catalog.yaml description.
func FromConfig(pc config.PricingConfig) (Config, error) {
	var s Strategy
	switch strings.TrimSpace(pc.Strategy) {
	case StrategyPerM2:
		s = PerSquareMeter{}
	case StrategySteppedMinimum:
		st := SteppedMinimum{
			ThresholdM2:   pc.ThresholdM2,
			MinimumPrice:  pc.MinimumPrice,
			PricePerMeter: pc.PricePerMeter,
		}
		if st.ThresholdM2 <= 0 {
			st.ThresholdM2 = DefaultThresholdM2
		}
		if st.MinimumPrice <= 0 {
			st.MinimumPrice = DefaultMinimumPrice
		}
		if st.PricePerMeter <= 0 {
			st.PricePerMeter = DefaultPricePerMeter
		}
		s = st
	case StrategyFlat, "":
		s = Flat{}
	default:
		return Config{}, fmt.Errorf("pricing: unknown strategy %q", pc.Strategy)
	}
	addOns := make(map[string]float64, len(pc.AddOns))
	for name, price := range pc.AddOns {
		if price < 0 {
			return Config{}, fmt.Errorf("pricing: add-on %q has a negative price", name)
		}
		addOns[name] = price
	}
	return Config{Strategy: s, IncludeBasePrice: pc.IncludeBasePrice, AddOns: addOns}, nil
}
