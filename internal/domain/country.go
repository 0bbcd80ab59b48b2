package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	DefaultCountryCode = "india"
	DefaultCurrency    = "$"
	DefaultTaxLabel    = "Tax"
)

type Country struct {
	Code     string
	Name     string
	Flag     string
	Currency string
	TaxLabel string
	TaxRate  decimal.Decimal
}

// HasTax reports whether the country carries a non-zero tax rate.
func (c Country) HasTax() bool {
	return c.TaxRate.IsPositive()
}

var defaultCountry = Country{
	Currency: DefaultCurrency,
	TaxLabel: DefaultTaxLabel,
	TaxRate:  decimal.Zero,
}

var countries = []Country{
	newCountry("india", "India", "🇮🇳", "₹", "GST", "0.18"),
	newCountry("uk", "United Kingdom", "🇬🇧", "£", "VAT", "0.20"),
	newCountry("germany", "Germany", "🇩🇪", "€", "VAT", "0.19"),
	newCountry("france", "France", "🇫🇷", "€", "VAT", "0.20"),
	newCountry("italy", "Italy", "🇮🇹", "€", "VAT", "0.22"),
	newCountry("spain", "Spain", "🇪🇸", "€", "VAT", "0.21"),
	newCountry("netherlands", "Netherlands", "🇳🇱", "€", "VAT", "0.21"),
	newCountry("sweden", "Sweden", "🇸🇪", "kr", "VAT", "0.25"),
	newCountry("japan", "Japan", "🇯🇵", "¥", "Consumption Tax", "0.10"),
	newCountry("singapore", "Singapore", "🇸🇬", "$", "GST", "0.09"),
	newCountry("australia", "Australia", "🇦🇺", "$", "GST", "0.10"),
	newCountry("newzealand", "New Zealand", "🇳🇿", "$", "GST", "0.15"),
	newCountry("uae", "United Arab Emirates", "🇦🇪", "د.إ", "VAT", "0.05"),
	newCountry("southafrica", "South Africa", "🇿🇦", "R", "VAT", "0.15"),
	newCountry("indonesia", "Indonesia", "🇮🇩", "Rp", "VAT", "0.12"),
	newCountry("thailand", "Thailand", "🇹🇭", "฿", "VAT", "0.07"),
	newCountry("philippines", "Philippines", "🇵🇭", "₱", "VAT", "0.12"),
	newCountry("malaysia", "Malaysia", "🇲🇾", "RM", "SST", "0.06"),
	newCountry("southkorea", "South Korea", "🇰🇷", "₩", "VAT", "0.10"),
}

func newCountry(code, name, flag, currency, taxLabel, taxRate string) Country {
	return Country{
		Code:     code,
		Name:     name,
		Flag:     flag,
		Currency: currency,
		TaxLabel: taxLabel,
		TaxRate:  decimal.RequireFromString(taxRate),
	}
}

// LookupCountry resolves a country code. Unknown codes resolve to the default
// record ("$", "Tax", rate 0) rather than an error.
func LookupCountry(code string) Country {
	if country, ok := FindCountry(code); ok {
		return country
	}

	fallback := defaultCountry
	fallback.Code = strings.ToLower(strings.TrimSpace(code))
	return fallback
}

// FindCountry reports whether code names a row of the tax table.
func FindCountry(code string) (Country, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, country := range countries {
		if country.Code == code {
			return country, true
		}
	}

	return Country{}, false
}

// Countries returns a copy of the tax table in display order.
func Countries() []Country {
	out := make([]Country, len(countries))
	copy(out, countries)
	return out
}
