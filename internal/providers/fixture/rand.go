package fixture

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Rand is the source of randomness used for generation and featured-league shuffles.
// Implementations must be safe for concurrent use.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRand returns a deterministic Rand for the given seed.
func NewRand(seed uint64) Rand {
	return &lockedRand{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// SeedFromTime derives a seed from the wall clock.
func SeedFromTime(now time.Time) uint64 {
	return uint64(now.UnixNano())
}

func (r *lockedRand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}

func (r *lockedRand) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rng.Shuffle(n, swap)
}
