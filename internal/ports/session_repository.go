package ports

import (
	"context"

	"github.com/bnema/splitcalc/internal/domain"
)

// SessionRepository persists the whole session as one record. Load reports
// found=false when nothing has been saved yet.
type SessionRepository interface {
	Load(ctx context.Context) (session domain.Session, found bool, err error)
	Save(ctx context.Context, session domain.Session) error
}
