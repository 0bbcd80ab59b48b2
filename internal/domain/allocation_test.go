package domain

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(t *testing.T, value string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(value)
	require.NoError(t, err)
	return d
}

func cents(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func TestComputePizzaSplitWithTax(t *testing.T) {
	people := []Participant{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}
	items := []Item{{Name: "Pizza", UnitCost: dec(t, "20"), Quantity: 1, Participants: []ParticipantID{"a", "b"}}}

	got := Compute(items, people, true, dec(t, "0.10"))

	assert.Equal(t, "20.00", cents(got.Subtotal))
	assert.Equal(t, "2.00", cents(got.TaxAmount))
	assert.Equal(t, "22.00", cents(got.Total))
	assert.Equal(t, "11.00", cents(got.RoundedOwed("a")))
	assert.Equal(t, "11.00", cents(got.RoundedOwed("b")))
	require.Len(t, got.Participants, 2)
	assert.Equal(t, "11.00", cents(got.Participants[0].Owed))
}

func TestComputeUnassignedItemCountsTowardTotalOnly(t *testing.T) {
	people := []Participant{{ID: "a", Name: "A"}}
	items := []Item{
		{Name: "Bread", UnitCost: dec(t, "5"), Quantity: 1},
		{Name: "Wine", UnitCost: dec(t, "15"), Quantity: 1, Participants: []ParticipantID{"a"}},
	}

	got := Compute(items, people, false, dec(t, "0.20"))

	assert.Equal(t, "20.00", cents(got.Subtotal))
	assert.Equal(t, "0.00", cents(got.TaxAmount))
	assert.Equal(t, "20.00", cents(got.Total))
	assert.Equal(t, "15.00", cents(got.RoundedOwed("a")))
	assert.Equal(t, "5.00", cents(got.Unattributed))
}

func TestComputeTaxOnlyWhenApplied(t *testing.T) {
	people := []Participant{{ID: "a"}}
	items := []Item{{UnitCost: dec(t, "12.34"), Quantity: 3, Participants: []ParticipantID{"a"}}}

	for _, rate := range []string{"0", "0.05", "0.18", "0.25"} {
		t.Run(rate, func(t *testing.T) {
			off := Compute(items, people, false, dec(t, rate))
			assert.True(t, off.TaxAmount.IsZero())
			assert.True(t, off.Total.Equal(off.Subtotal))

			on := Compute(items, people, true, dec(t, rate))
			assert.True(t, on.Total.Equal(on.Subtotal.Add(on.TaxAmount)))
		})
	}
}

func TestComputeDuplicateReferencesAreASet(t *testing.T) {
	people := []Participant{{ID: "a"}, {ID: "b"}}
	items := []Item{{UnitCost: dec(t, "30"), Quantity: 1, Participants: []ParticipantID{"a", "a", "b"}}}

	got := Compute(items, people, false, decimal.Zero)

	assert.Equal(t, "15.00", cents(got.RoundedOwed("a")))
	assert.Equal(t, "15.00", cents(got.RoundedOwed("b")))
	assert.True(t, got.Unattributed.IsZero())
}

func TestComputeDanglingReferenceIsUnattributed(t *testing.T) {
	people := []Participant{{ID: "a", Name: "A"}}
	items := []Item{{UnitCost: dec(t, "10"), Quantity: 2, Participants: []ParticipantID{"a", DetachedParticipantID("g", "Ghost"), "missing"}}}

	got := Compute(items, people, true, dec(t, "0.10"))

	assert.Equal(t, "20.00", cents(got.Subtotal))
	assert.Equal(t, "22.00", cents(got.Total))
	assert.Equal(t, "7.33", cents(got.RoundedOwed("a")))
	assert.Equal(t, "14.67", cents(got.Unattributed))
	assert.Equal(t, "0.00", cents(got.RoundedOwed(DetachedParticipantID("g", "Ghost"))))
}

func TestComputeEmptyInputs(t *testing.T) {
	got := Compute(nil, nil, true, dec(t, "0.18"))

	assert.True(t, got.Subtotal.IsZero())
	assert.True(t, got.TaxAmount.IsZero())
	assert.True(t, got.Total.IsZero())
	assert.Empty(t, got.Participants)
	assert.Empty(t, got.Owed)
}

func TestComputeNoParticipantsOwesNothing(t *testing.T) {
	items := []Item{{UnitCost: dec(t, "9.99"), Quantity: 1, Participants: []ParticipantID{"a"}}}

	got := Compute(items, nil, false, decimal.Zero)

	assert.Equal(t, "9.99", cents(got.Total))
	assert.Empty(t, got.Owed)
	assert.Equal(t, "9.99", cents(got.Unattributed))
}

func TestComputeNegativeInputsClampToZero(t *testing.T) {
	people := []Participant{{ID: "a"}}
	items := []Item{
		{UnitCost: dec(t, "-5"), Quantity: 2, Participants: []ParticipantID{"a"}},
		{UnitCost: dec(t, "5"), Quantity: -2, Participants: []ParticipantID{"a"}},
	}

	got := Compute(items, people, true, dec(t, "-0.5"))

	assert.True(t, got.Total.IsZero())
	assert.True(t, got.TaxRate.IsZero())
}

func TestComputeOwedSumMatchesTotalWithinRounding(t *testing.T) {
	people := []Participant{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	all := []ParticipantID{"a", "b", "c"}
	items := []Item{
		{UnitCost: dec(t, "10"), Quantity: 1, Participants: all},
		{UnitCost: dec(t, "0.07"), Quantity: 13, Participants: []ParticipantID{"a", "c"}},
		{UnitCost: dec(t, "3.33"), Quantity: 7, Participants: []ParticipantID{"b"}},
	}

	for _, applied := range []bool{false, true} {
		got := Compute(items, people, applied, dec(t, "0.19"))

		drift := got.Total.Sub(got.OwedSum()).Abs()
		limit := dec(t, "0.01").Mul(decimal.NewFromInt(int64(len(people))))
		assert.True(t, drift.LessThanOrEqual(limit), "drift %s exceeds %s", drift, limit)
		assert.True(t, got.Unattributed.IsZero())
	}
}

func TestComputeRoundsHalfAwayFromZero(t *testing.T) {
	people := []Participant{{ID: "a"}}
	items := []Item{{UnitCost: dec(t, "0.125"), Quantity: 1, Participants: []ParticipantID{"a"}}}

	got := Compute(items, people, false, decimal.Zero)

	assert.Equal(t, "0.13", cents(got.Subtotal))
	assert.Equal(t, "0.13", cents(got.RoundedOwed("a")))
	assert.Equal(t, "0.125", got.Owed["a"].String())
}

func TestComputeIsSafeForConcurrentUse(t *testing.T) {
	people := []Participant{{ID: "a"}, {ID: "b"}}
	items := []Item{{UnitCost: dec(t, "8"), Quantity: 3, Participants: []ParticipantID{"a", "b"}}}

	rate := dec(t, "0.10")

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = cents(Compute(items, people, true, rate).Total)
		}(i)
	}
	wg.Wait()

	for _, result := range results {
		assert.Equal(t, "26.40", result)
	}
}
