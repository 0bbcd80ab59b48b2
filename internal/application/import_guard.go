package application

import (
	"errors"
	"sync"
)

var ErrStaleImport = errors.New("import superseded by a newer import")

type ImportToken uint64

// ImportGuard gives last-initiated-wins semantics to overlapping imports:
// only the completion carrying the most recent token is applied.
type ImportGuard struct {
	mu     sync.Mutex
	latest ImportToken
}

func (g *ImportGuard) Begin() ImportToken {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.latest++
	return g.latest
}

// Complete runs apply only if token is still the latest one issued. The check
// and apply happen under the same lock so a newer Begin cannot interleave.
func (g *ImportGuard) Complete(token ImportToken, apply func() error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if token != g.latest {
		return ErrStaleImport
	}

	return apply()
}
