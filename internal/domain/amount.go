package domain

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const centPlaces = 2

// ParseAmount converts user text into a non-negative cost. A decimal comma is
// accepted. Empty, non-numeric or negative input yields zero; it never fails.
//
//	ParseAmount("12.50") -> 12.5
//	ParseAmount("12,50") -> 12.5
//	ParseAmount("abc")   -> 0
//	ParseAmount("-3")    -> 0
func ParseAmount(text string) decimal.Decimal {
	text = strings.TrimSpace(text)
	if text == "" {
		return decimal.Zero
	}
	text = strings.ReplaceAll(text, ",", ".")

	value, err := decimal.NewFromString(text)
	if err != nil || value.IsNegative() {
		return decimal.Zero
	}

	return value
}

// ParseQuantity converts user text into a non-negative whole quantity.
// Anything that is not a non-negative integer yields zero.
func ParseQuantity(text string) int64 {
	value, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil || value < 0 {
		return 0
	}

	return value
}

// QuantityFromFloat truncates a decoded JSON number to a non-negative quantity.
func QuantityFromFloat(value float64) int64 {
	if math.IsNaN(value) || value < 0 || value > maxQuantity {
		return 0
	}

	return int64(value)
}

const maxQuantity = 1 << 53

// RoundCents rounds to two decimal places, half away from zero.
func RoundCents(value decimal.Decimal) decimal.Decimal {
	return value.Round(centPlaces)
}
