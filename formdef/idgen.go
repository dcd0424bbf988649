package formdef

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator supplies ids for new field definitions. Ids are assigned once
// at creation and survive edits.
type IDGenerator interface {
	NewID() string
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// Sequence is a deterministic generator for tests and embedders that need
// reproducible ids.
type Sequence struct {
	n atomic.Uint64
}

func (s *Sequence) NewID() string {
	return fmt.Sprintf("field-%d", s.n.Add(1))
}
