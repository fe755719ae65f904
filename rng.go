package lindenmayer

import (
	"sync"

	"github.com/pkg/errors"
)

// RNG is a single-writer monitor around one Xoshiro generator. Every read or
// mutation of the generator goes through the monitor, so concurrent callers
// observe a strictly serialized total order of draws. The reproducibility
// contract is about that order: callers wanting identical streams across
// runs must issue their draws in a fixed order (the evolution engine does
// this by producing in index order whenever an RNG is attached).
//
// An RNG attached to an L-system is shared by reference across every
// aggregate derived from it; it is never copied.
type RNG struct {
	mu          sync.Mutex
	gen         *Xoshiro
	invocations uint64
}

// NewRNG creates a monitor around a fresh generator for the given seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{gen: NewXoshiro(seed)}
}

// Float64 draws a uniform value in [0, 1).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invocations++
	return r.float64Locked()
}

func (r *RNG) float64Locked() float64 {
	return float64(r.gen.Next()>>11) / (1 << 53)
}

// FloatInRange draws a uniform value in the closed range [lo, hi].
func (r *RNG) FloatInRange(lo, hi float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invocations++
	return lo + r.float64Locked()*(hi-lo)
}

// IntInRange draws a uniform integer in the closed range [lo, hi].
func (r *RNG) IntInRange(lo, hi int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invocations++
	span := uint64(hi - lo + 1)
	return lo + int(r.gen.Next()%span)
}

// P performs a Bernoulli draw: it consumes one [0,1) uniform and succeeds
// when that draw is <= prob. prob must lie strictly inside (0, 1); anything
// else is a programmer error and panics.
func (r *RNG) P(prob float64) bool {
	if prob <= 0 || prob >= 1 {
		panic(errors.Errorf("probability %v outside the open interval (0, 1)", prob))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invocations++
	return r.float64Locked() <= prob
}

// Pick draws one element uniformly from a non-empty list. An empty list is a
// programmer error and panics.
func Pick[T any](r *RNG, items []T) T {
	if len(items) == 0 {
		panic(errors.New("pick from an empty list"))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invocations++
	return items[int(r.gen.Next()%uint64(len(items)))]
}

// Reset recreates the generator from its original seed at position 0 and
// clears the invocation counter. The seed value itself is unchanged.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen = NewXoshiro(r.gen.Seed())
	r.invocations = 0
}

// SetSeed replaces the generator with a fresh one for the given seed and
// clears the invocation counter.
func (r *RNG) SetSeed(seed uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen = NewXoshiro(seed)
	r.invocations = 0
}

// Seed returns the enclosed generator's seed.
func (r *RNG) Seed() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gen.Seed()
}

// Position returns the enclosed generator's position.
func (r *RNG) Position() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gen.Position()
}

// Invocations returns the number of derived draws performed since the last
// reset. Debug aid only; it is not part of the reproducibility contract.
func (r *RNG) Invocations() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.invocations
}
