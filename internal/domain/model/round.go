package model

import "github.com/shopspring/decimal"

// Round rounds v to the given number of decimal places, half away from zero,
// using the shortest decimal representation of v (1.005 rounds to 1.01).
func Round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// FormatFixed renders v rounded to places with exactly places decimals.
func FormatFixed(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places)
}
