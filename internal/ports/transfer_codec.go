package ports

import (
	"time"

	"github.com/bnema/splitcalc/internal/domain"
)

// TransferCodec converts between the exported document bytes and the
// name-based transfer document. Decode must fail without side effects on
// malformed input.
type TransferCodec interface {
	Encode(doc domain.TransferDocument, exportedAt time.Time) ([]byte, error)
	Decode(data []byte) (domain.TransferDocument, error)
}
