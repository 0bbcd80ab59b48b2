package domain

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "integer", in: "12", want: "12"},
		{name: "dot decimal", in: "12.50", want: "12.5"},
		{name: "comma decimal", in: "12,50", want: "12.5"},
		{name: "surrounding space", in: "  2.25 ", want: "2.25"},
		{name: "empty", in: "", want: "0"},
		{name: "non numeric", in: "abc", want: "0"},
		{name: "negative coerces to zero", in: "-3", want: "0"},
		{name: "two separators", in: "1.2.3", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAmount(tt.in).String())
		})
	}
}

func TestParseQuantity(t *testing.T) {
	assert.Equal(t, int64(3), ParseQuantity("3"))
	assert.Equal(t, int64(0), ParseQuantity(""))
	assert.Equal(t, int64(0), ParseQuantity("two"))
	assert.Equal(t, int64(0), ParseQuantity("-1"))
	assert.Equal(t, int64(0), ParseQuantity("1.5"))
}

func TestQuantityFromFloatRejectsNonFinite(t *testing.T) {
	nan, err := strconv.ParseFloat("NaN", 64)
	require.NoError(t, err)
	assert.Equal(t, int64(0), QuantityFromFloat(nan))

	inf, err := strconv.ParseFloat("+Inf", 64)
	require.NoError(t, err)
	assert.Equal(t, int64(0), QuantityFromFloat(inf))
	assert.Equal(t, int64(0), QuantityFromFloat(-2))
	assert.Equal(t, int64(2), QuantityFromFloat(2.9))
}

func TestLookupCountryKnownCode(t *testing.T) {
	country := LookupCountry("india")

	assert.Equal(t, "₹", country.Currency)
	assert.Equal(t, "GST", country.TaxLabel)
	assert.Equal(t, "0.18", country.TaxRate.String())
	assert.True(t, country.HasTax())

	assert.Equal(t, "Consumption Tax", LookupCountry(" Japan ").TaxLabel)
}

func TestLookupCountryUnknownCodeFallsBack(t *testing.T) {
	for _, code := range []string{"", "atlantis"} {
		country := LookupCountry(code)

		assert.Equal(t, DefaultCurrency, country.Currency)
		assert.Equal(t, DefaultTaxLabel, country.TaxLabel)
		assert.True(t, country.TaxRate.IsZero())
		assert.False(t, country.HasTax())
	}
}

func TestCountriesTaxRatesAreFractions(t *testing.T) {
	table := Countries()
	require.NotEmpty(t, table)

	for _, country := range table {
		assert.False(t, country.TaxRate.IsNegative(), country.Code)
		assert.True(t, country.TaxRate.LessThan(maxTaxRate), country.Code)
	}

	table[0].Currency = "changed"
	assert.NotEqual(t, "changed", Countries()[0].Currency)
}

func TestNewSessionHasOneEmptyItemAndParticipant(t *testing.T) {
	session := NewSession(func() ItemID { return "item-1" }, func() ParticipantID { return "p-1" })

	require.Len(t, session.Items, 1)
	require.Len(t, session.Participants, 1)
	assert.Equal(t, ItemID("item-1"), session.Items[0].ID)
	assert.Equal(t, ParticipantID("p-1"), session.Participants[0].ID)
	assert.False(t, session.TaxApplied)
	assert.Equal(t, DefaultCountryCode, session.CountryCode)
}

func TestItemToggleAddsAndRemovesEveryOccurrence(t *testing.T) {
	item := Item{Participants: []ParticipantID{"a", "b", "a"}}

	removed := item.Toggle("a")
	assert.Equal(t, []ParticipantID{"b"}, removed.Participants)
	assert.Equal(t, []ParticipantID{"a", "b", "a"}, item.Participants)

	added := removed.Toggle("c")
	assert.Equal(t, []ParticipantID{"b", "c"}, added.Participants)
}

func TestSessionDetachParticipantKeepsDivisor(t *testing.T) {
	session := Session{
		Items:        []Item{{ID: "i", Participants: []ParticipantID{"a", "b"}}},
		Participants: []Participant{{ID: "a", Name: "Ana"}, {ID: "b", Name: "Bo"}},
	}

	detached := session.DetachParticipant("a", "Ana")

	assert.Equal(t, []ParticipantID{DetachedParticipantID("a", "Ana"), "b"}, detached.Items[0].Participants)
	assert.Equal(t, []ParticipantID{"a", "b"}, session.Items[0].Participants)

	name, ok := detached.Items[0].Participants[0].Detached()
	assert.True(t, ok)
	assert.Equal(t, "Ana", name)

	_, ok = ParticipantID("b").Detached()
	assert.False(t, ok)
}

func TestSessionDetachSameNamedParticipantsKeepsDivisor(t *testing.T) {
	session := Session{
		Items:        []Item{{ID: "i", UnitCost: dec(t, "30"), Quantity: 1, Participants: []ParticipantID{"a1", "a2", "c"}}},
		Participants: []Participant{{ID: "a1", Name: "Ana"}, {ID: "a2", Name: "Ana"}, {ID: "c", Name: "Cy"}},
	}

	session = session.DetachParticipant("a1", "Ana")
	session = session.DetachParticipant("a2", "Ana")
	session.Participants = []Participant{{ID: "c", Name: "Cy"}}

	assert.Len(t, session.Items[0].SharedBy(), 3)
	assert.NotEqual(t, session.Items[0].Participants[0], session.Items[0].Participants[1])

	got := session.Allocate()
	assert.Equal(t, "10.00", cents(got.RoundedOwed("c")))
	assert.Equal(t, "20.00", cents(got.Unattributed))
}

func TestSessionDetachUnnamedParticipantLeavesOtherUnnamedShare(t *testing.T) {
	session := Session{
		Items:        []Item{{ID: "i", UnitCost: dec(t, "30"), Quantity: 1, Participants: []ParticipantID{"p1", "p2", "c"}}},
		Participants: []Participant{{ID: "p1"}, {ID: "p2"}, {ID: "c", Name: "Cy"}},
	}

	session = session.DetachParticipant("p1", "")
	session.Participants = session.Participants[1:]

	assert.Len(t, session.Items[0].SharedBy(), 3)
	name, ok := session.Items[0].Participants[0].Detached()
	require.True(t, ok)
	assert.Empty(t, name)

	got := session.Allocate()
	assert.Equal(t, "10.00", cents(got.RoundedOwed("p2")))
	assert.Equal(t, "10.00", cents(got.RoundedOwed("c")))
	assert.Equal(t, "10.00", cents(got.Unattributed))
}

func TestParticipantIDDetachedParsesName(t *testing.T) {
	name, ok := DetachedParticipantID("id-1", "Re: Ana").Detached()
	assert.True(t, ok)
	assert.Equal(t, "Re: Ana", name)

	name, ok = ParticipantID("detached:Old").Detached()
	assert.True(t, ok)
	assert.Equal(t, "Old", name)
}

func TestParticipantDisplayName(t *testing.T) {
	assert.Equal(t, "Ana", Participant{Name: "Ana"}.DisplayName(0))
	assert.Equal(t, "Person 3", Participant{Name: "  "}.DisplayName(2))
}

func TestParticipantByNameReturnsFirstMatch(t *testing.T) {
	people := []Participant{{ID: "1", Name: "Sam"}, {ID: "2", Name: "Sam"}}

	got, ok := ParticipantByName(people, "Sam")
	require.True(t, ok)
	assert.Equal(t, ParticipantID("1"), got.ID)

	_, ok = ParticipantByName(people, "Kim")
	assert.False(t, ok)
}

func TestFindCountryReportsMembership(t *testing.T) {
	_, ok := FindCountry("UK")
	assert.True(t, ok)

	_, ok = FindCountry("atlantis")
	assert.False(t, ok)
}
