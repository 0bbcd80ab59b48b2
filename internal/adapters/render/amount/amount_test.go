package amount

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		symbol string
		value  string
		want   string
	}{
		{symbol: "₹", value: "1234.5", want: "₹1,234.50"},
		{symbol: "$", value: "0", want: "$0.00"},
		{symbol: "€", value: "0.125", want: "€0.13"},
		{symbol: "Rp", value: "1000000", want: "Rp1,000,000.00"},
		{symbol: "£", value: "7.333333", want: "£7.33"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.symbol, decimal.RequireFromString(tt.value)))
		})
	}
}

func TestPlainAndPercent(t *testing.T) {
	assert.Equal(t, "14.67", Plain(decimal.RequireFromString("14.666666")))
	assert.Equal(t, "18%", Percent(decimal.RequireFromString("0.18")))
	assert.Equal(t, "9%", Percent(decimal.RequireFromString("0.09")))
	assert.Equal(t, "0%", Percent(decimal.Zero))
}
