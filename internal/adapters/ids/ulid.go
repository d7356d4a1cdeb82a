package ids

import (
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"meetspace/internal/domain"
)

type ulidGenerator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewULIDGenerator returns an EventIDGenerator producing 26-character ULIDs.
// Ids generated within the same millisecond are strictly increasing, so ids
// issued later never sort before ids issued earlier by this process.
func NewULIDGenerator() domain.EventIDGenerator {
	return &ulidGenerator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

func (g *ulidGenerator) NewID(t time.Time) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	id, err := ulid.New(ulid.Timestamp(t), g.entropy)
	if err != nil {
		return "", fmt.Errorf("failed to generate event id: %w", err)
	}
	return id.String(), nil
}
