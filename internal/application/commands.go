package application

import "github.com/bnema/splitcalc/internal/domain"

// AddItemCommand carries raw user text; Cost and Quantity are coerced with
// domain.ParseAmount and domain.ParseQuantity.
type AddItemCommand struct {
	Name       string
	Cost       string
	Quantity   string
	SplitAmong []domain.ParticipantID
}

// UpdateItemCommand changes only the fields that are set.
type UpdateItemCommand struct {
	ID       domain.ItemID
	Name     *string
	Cost     *string
	Quantity *string
}
