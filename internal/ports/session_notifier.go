package ports

import (
	"context"

	"github.com/bnema/splitcalc/internal/domain"
)

type SessionNotifier interface {
	SessionChanged(ctx context.Context, session domain.Session, allocation domain.Allocation) error
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) SessionChanged(context.Context, domain.Session, domain.Allocation) error {
	return nil
}
