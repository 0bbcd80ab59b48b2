package amount

import (
	"github.com/Rhymond/go-money"
	"github.com/bnema/splitcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Format renders value rounded to cents, prefixed with symbol and grouped with
// commas: Format("₹", 1234.5) is "₹1,234.50".
func Format(symbol string, value decimal.Decimal) string {
	cents := domain.RoundCents(value).Shift(2).IntPart()
	return money.NewFormatter(2, ".", ",", symbol, "$1").Format(cents)
}

// Plain renders value rounded to cents without symbol or grouping.
func Plain(value decimal.Decimal) string {
	return domain.RoundCents(value).StringFixed(2)
}

// Percent renders a fractional rate as a percentage: 0.18 is "18%".
func Percent(rate decimal.Decimal) string {
	return rate.Shift(2).String() + "%"
}
