package ports

import (
	"github.com/bnema/splitcalc/internal/domain"
	"github.com/google/uuid"
)

type IDGenerator interface {
	NewItemID() domain.ItemID
	NewParticipantID() domain.ParticipantID
}

// UUIDGenerator mints random version 4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewItemID() domain.ItemID {
	return domain.ItemID(uuid.NewString())
}

func (UUIDGenerator) NewParticipantID() domain.ParticipantID {
	return domain.ParticipantID(uuid.NewString())
}
