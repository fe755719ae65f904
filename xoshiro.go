package lindenmayer

import "math/bits"

// Xoshiro is a xoshiro256** pseudo-random generator with position tracking.
// Construction replicates the seed into all four state words, so the whole
// output stream is a pure function of the seed: two generators built from
// the same seed and driven by the same number of Next calls hold identical
// state and produce identical output, bit for bit.
type Xoshiro struct {
	seed     uint64
	position uint64
	s        [4]uint64
}

// NewXoshiro creates a generator at position 0 for the given seed.
func NewXoshiro(seed uint64) *Xoshiro {
	return &Xoshiro{
		seed: seed,
		s:    [4]uint64{seed, seed, seed, seed},
	}
}

// RestoreXoshiro creates a generator and advances it to the given position,
// reproducing the exact state of a generator that already emitted that many
// values from the same seed.
func RestoreXoshiro(seed, position uint64) *Xoshiro {
	g := NewXoshiro(seed)
	for i := uint64(0); i < position; i++ {
		g.Next()
	}
	return g
}

// Next emits the next raw 64-bit value and increments the position.
func (g *Xoshiro) Next() uint64 {
	x := g.s[1] * 5
	result := bits.RotateLeft64(x, 7) * 9

	t := g.s[1] << 17
	g.s[2] ^= g.s[0]
	g.s[3] ^= g.s[1]
	g.s[1] ^= g.s[2]
	g.s[0] ^= g.s[3]
	g.s[2] ^= t
	g.s[3] = bits.RotateLeft64(g.s[3], 45)

	g.position++
	return result
}

// Seed returns the seed the generator was constructed with.
func (g *Xoshiro) Seed() uint64 {
	return g.seed
}

// Position returns the number of values emitted since the last (re)seed.
func (g *Xoshiro) Position() uint64 {
	return g.position
}
