package summary

import (
	"testing"

	"github.com/bnema/splitcalc/internal/application"
	"github.com/bnema/splitcalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summaryFor(session domain.Session) application.Summary {
	return application.Summary{
		Session:    session,
		Country:    session.Country(),
		Allocation: session.Allocate(),
	}
}

func TestRenderPizzaSplitWithTax(t *testing.T) {
	session := domain.Session{
		Items: []domain.Item{{
			ID:           "i1",
			Name:         "Pizza",
			UnitCost:     decimal.RequireFromString("20"),
			Quantity:     1,
			Participants: []domain.ParticipantID{"a", "b"},
		}},
		Participants: []domain.Participant{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}},
		TaxApplied:   true,
		CountryCode:  "japan",
	}

	output, err := Render(summaryFor(session), RenderOptions{BarWidth: 10})
	require.NoError(t, err)

	assert.Contains(t, output, "Split Calculator")
	assert.Contains(t, output, "Japan")
	assert.Contains(t, output, "Consumption Tax 10% (applied)")
	assert.Contains(t, output, "items: 1  participants: 2")
	assert.Contains(t, output, "Pizza")
	assert.Contains(t, output, "split: A, B")
	assert.Contains(t, output, "owes ¥11.00")
	assert.Contains(t, output, "Subtotal: ¥20.00")
	assert.Contains(t, output, "Consumption Tax (10%): ¥2.00")
	assert.Contains(t, output, "Total: ¥22.00")
	assert.Contains(t, output, " 50%")
	assert.NotContains(t, output, "Not assigned")
}

func TestRenderUnassignedAndRemovedShares(t *testing.T) {
	session := domain.Session{
		Items: []domain.Item{
			{ID: "i1", UnitCost: decimal.RequireFromString("5"), Quantity: 1},
			{ID: "i2", Name: "Wine", UnitCost: decimal.RequireFromString("15"), Quantity: 1, Participants: []domain.ParticipantID{"a", domain.DetachedParticipantID("z", "Zed")}},
		},
		Participants: []domain.Participant{{ID: "a", Name: ""}},
		CountryCode:  "uk",
	}

	output, err := Render(summaryFor(session), RenderOptions{})
	require.NoError(t, err)

	assert.Contains(t, output, "Unnamed Item")
	assert.Contains(t, output, "split: unassigned")
	assert.Contains(t, output, "split: Person 1, Zed (removed)")
	assert.Contains(t, output, "VAT 20% (not applied)")
	assert.NotContains(t, output, "VAT (20%)")
	assert.Contains(t, output, "Person 1 owes £7.50")
	assert.Contains(t, output, "Total: £20.00")
	assert.Contains(t, output, "Not assigned to anyone: £12.50")
	assert.NotContains(t, output, "[")
}

func TestRenderEmptySession(t *testing.T) {
	output, err := Render(summaryFor(domain.Session{CountryCode: "atlantis"}), RenderOptions{BarWidth: 8})
	require.NoError(t, err)

	assert.Contains(t, output, "No country")
	assert.Contains(t, output, "No items.")
	assert.Contains(t, output, "No participants.")
	assert.Contains(t, output, "Total: $0.00")
}
