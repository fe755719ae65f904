package lindenmayer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRNGFloat64Range(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 1000; i++ {
		v := r.Float64()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestRNGFloatInRange(t *testing.T) {
	r := NewRNG(2)
	for i := 0; i < 1000; i++ {
		v := r.FloatInRange(-2.5, 2.5)
		require.GreaterOrEqual(t, v, -2.5)
		require.LessOrEqual(t, v, 2.5)
	}
}

func TestRNGIntInRangeHitsBothBounds(t *testing.T) {
	r := NewRNG(3)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := r.IntInRange(1, 6)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 6)
		seen[v] = true
	}
	require.True(t, seen[1], "lower bound never drawn")
	require.True(t, seen[6], "upper bound never drawn")
}

func TestRNGPickUniform(t *testing.T) {
	r := NewRNG(4)
	items := []string{"a", "b", "c"}
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[Pick(r, items)] = true
	}
	require.Len(t, seen, 3)

	require.Panics(t, func() { Pick(r, []string{}) })
}

func TestRNGPMatchesRawDraw(t *testing.T) {
	// P consumes exactly one [0,1) uniform and succeeds when it is <= prob.
	reference := NewXoshiro(11)
	u := float64(reference.Next()>>11) / (1 << 53)

	r := NewRNG(11)
	require.Equal(t, u <= 0.5, r.P(0.5))
	require.Equal(t, uint64(1), r.Position())
}

func TestRNGPPrecondition(t *testing.T) {
	r := NewRNG(5)
	require.Panics(t, func() { r.P(0) })
	require.Panics(t, func() { r.P(1) })
	require.Panics(t, func() { r.P(-0.1) })
	require.Panics(t, func() { r.P(1.5) })
	require.NotPanics(t, func() { r.P(0.5) })
}

func TestRNGResetRewindsGenerator(t *testing.T) {
	r := NewRNG(6)
	first := r.Float64()
	r.Float64()
	require.Equal(t, uint64(2), r.Position())
	require.Equal(t, uint64(2), r.Invocations())

	r.Reset()
	require.Equal(t, uint64(0), r.Position())
	require.Equal(t, uint64(0), r.Invocations())
	require.Equal(t, uint64(6), r.Seed())
	require.Equal(t, first, r.Float64(), "reset did not rewind to the seed stream")
}

func TestRNGSetSeedStartsNewStream(t *testing.T) {
	r := NewRNG(7)
	r.Float64()
	r.SetSeed(8)
	require.Equal(t, uint64(8), r.Seed())
	require.Equal(t, uint64(0), r.Position())

	fresh := NewRNG(8)
	require.Equal(t, fresh.Float64(), r.Float64())
}

func TestRNGSerializesConcurrentDraws(t *testing.T) {
	const goroutines = 8
	const draws = 500

	r := NewRNG(9)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < draws; j++ {
				r.Float64()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, uint64(goroutines*draws), r.Position())
	require.Equal(t, uint64(goroutines*draws), r.Invocations())
}
