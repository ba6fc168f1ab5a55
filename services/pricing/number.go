package pricing

import (
	"math"
	"strconv"
	"strings"
)

// CleanNumber keeps only digits and dots from raw and parses the rest.
// Anything that does not parse reads as 0.
func CleanNumber(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Round2 rounds to two decimals.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// AreaM2 converts centimeter dimensions to square meters.
func AreaM2(lengthCm, widthCm float64) float64 {
	if lengthCm <= 0 || widthCm <= 0 {
		return 0
	}
	return Round2(lengthCm * widthCm / 10000)
}

func nonNegative(x float64) float64 {
	if x < 0 || math.IsNaN(x) {
		return 0
	}
	return x
}
