package jsonfile

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// ULIDGenerator generates transaction IDs that sort in creation order,
// including IDs created within the same millisecond.
type ULIDGenerator struct {
	now     func() time.Time
	entropy *ulid.MonotonicEntropy
}

// NewULIDGenerator creates a new ULIDGenerator.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{
		now:     time.Now,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Generate generates a new ULID.
func (g *ULIDGenerator) Generate() string {
	return ulid.MustNew(ulid.Timestamp(g.now()), g.entropy).String()
}
