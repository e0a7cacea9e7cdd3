package report

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator issues identifiers for manually inserted rows.
type IDGenerator interface {
	NextID() string
}

// SessionIDGenerator combines a random per-session salt with a monotonic
// counter, so identifiers stay unique however fast rows are inserted.
type SessionIDGenerator struct {
	salt    string
	counter atomic.Uint64
}

// NewSessionIDGenerator creates a generator with a fresh random salt.
func NewSessionIDGenerator() *SessionIDGenerator {
	return NewSaltedIDGenerator(strings.SplitN(uuid.NewString(), "-", 2)[0])
}

// NewSaltedIDGenerator creates a generator with a fixed salt.
func NewSaltedIDGenerator(salt string) *SessionIDGenerator {
	return &SessionIDGenerator{salt: salt}
}

// NextID returns manual-<salt>-<n> with n starting at 1.
func (g *SessionIDGenerator) NextID() string {
	return fmt.Sprintf("manual-%s-%d", g.salt, g.counter.Add(1))
}
