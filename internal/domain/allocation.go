package domain

import "github.com/shopspring/decimal"

// Allocation is the derived result of Compute. Subtotal, TaxAmount and Total
// are rounded to cents; owed amounts are kept exact until presentation.
type Allocation struct {
	Subtotal     decimal.Decimal
	TaxAmount    decimal.Decimal
	Total        decimal.Decimal
	TaxRate      decimal.Decimal
	TaxApplied   bool
	Participants []Participant
	Owed         map[ParticipantID]decimal.Decimal
	// Unattributed is the exact amount, tax included, not credited to any
	// listed participant: unassigned items plus detached shares.
	Unattributed decimal.Decimal
}

// RoundedOwed returns the participant's owed amount rounded to cents; unknown
// ids owe zero.
func (a Allocation) RoundedOwed(id ParticipantID) decimal.Decimal {
	return RoundCents(a.Owed[id])
}

// OwedSum is the rounded sum of every participant's rounded owed amount.
func (a Allocation) OwedSum() decimal.Decimal {
	sum := decimal.Zero
	for _, participant := range a.Participants {
		sum = sum.Add(RoundCents(participant.Owed))
	}

	return sum
}

var maxTaxRate = decimal.RequireFromString("0.9999")

// Compute derives subtotal, tax, total and each participant's owed share.
//
// Every item total counts toward the subtotal. An item shared by n distinct
// references credits total/n to each; references that match no participant
// are left unattributed. Tax is subtotal × rate when applied, and each share
// is scaled by 1 + rate so tax is distributed proportionally to the share of
// the subtotal. Compute never fails and has no side effects.
func Compute(items []Item, participants []Participant, taxApplied bool, taxRate decimal.Decimal) Allocation {
	taxRate = clampTaxRate(taxRate)

	multiplier := decimal.NewFromInt(1)
	if taxApplied {
		multiplier = multiplier.Add(taxRate)
	}

	known := make(map[ParticipantID]struct{}, len(participants))
	for _, participant := range participants {
		known[participant.ID] = struct{}{}
	}

	subtotal := decimal.Zero
	unattributed := decimal.Zero
	shares := make(map[ParticipantID]decimal.Decimal, len(participants))

	for _, item := range items {
		itemTotal := item.Normalize().Total()
		subtotal = subtotal.Add(itemTotal)

		refs := item.SharedBy()
		if len(refs) == 0 {
			unattributed = unattributed.Add(itemTotal)
			continue
		}

		share := itemTotal.Div(decimal.NewFromInt(int64(len(refs))))
		for _, ref := range refs {
			if _, ok := known[ref]; !ok {
				unattributed = unattributed.Add(share)
				continue
			}
			shares[ref] = shares[ref].Add(share)
		}
	}

	taxAmount := decimal.Zero
	if taxApplied {
		taxAmount = RoundCents(subtotal.Mul(taxRate))
	}
	roundedSubtotal := RoundCents(subtotal)

	owed := make(map[ParticipantID]decimal.Decimal, len(participants))
	withOwed := make([]Participant, len(participants))
	for i, participant := range participants {
		// Duplicate ids share a single bucket; each copy reports it.
		amount := shares[participant.ID].Mul(multiplier)
		owed[participant.ID] = amount
		participant.Owed = amount
		withOwed[i] = participant
	}

	return Allocation{
		Subtotal:     roundedSubtotal,
		TaxAmount:    taxAmount,
		Total:        roundedSubtotal.Add(taxAmount),
		TaxRate:      taxRate,
		TaxApplied:   taxApplied,
		Participants: withOwed,
		Owed:         owed,
		Unattributed: unattributed.Mul(multiplier),
	}
}

func clampTaxRate(rate decimal.Decimal) decimal.Decimal {
	if rate.IsNegative() {
		return decimal.Zero
	}
	if rate.GreaterThan(maxTaxRate) {
		return maxTaxRate
	}

	return rate
}
