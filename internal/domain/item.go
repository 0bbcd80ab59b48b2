package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

type ItemID string

type Item struct {
	ID           ItemID
	Name         string
	UnitCost     decimal.Decimal
	Quantity     int64
	Participants []ParticipantID
}

// Total returns UnitCost × Quantity.
func (i Item) Total() decimal.Decimal {
	return i.UnitCost.Mul(decimal.NewFromInt(i.Quantity))
}

// Normalize clamps negative cost and quantity to zero.
func (i Item) Normalize() Item {
	if i.UnitCost.IsNegative() {
		i.UnitCost = decimal.Zero
	}
	if i.Quantity < 0 {
		i.Quantity = 0
	}

	return i
}

// SharedBy returns the distinct participant references of the item, in first
// seen order.
func (i Item) SharedBy() []ParticipantID {
	distinct := make([]ParticipantID, 0, len(i.Participants))
	seen := make(map[ParticipantID]struct{}, len(i.Participants))

	for _, id := range i.Participants {
		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}

	return distinct
}

func (i Item) IsSharedBy(id ParticipantID) bool {
	return slices.Contains(i.Participants, id)
}

// Toggle adds id to the item's participants when absent and removes every
// occurrence of it otherwise.
func (i Item) Toggle(id ParticipantID) Item {
	if i.IsSharedBy(id) {
		i.Participants = slices.DeleteFunc(slices.Clone(i.Participants), func(ref ParticipantID) bool {
			return ref == id
		})
		return i
	}

	i.Participants = append(slices.Clone(i.Participants), id)
	return i
}

// FindItem returns the index of the item with the given id, or -1.
func FindItem(items []Item, id ItemID) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}

	return -1
}
