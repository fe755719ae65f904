package lindenmayer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestXoshiroDeterminism(t *testing.T) {
	a := NewXoshiro(42)
	b := NewXoshiro(42)

	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Next(), b.Next(), "draw %d diverged", i)
	}
	require.Equal(t, uint64(1000), a.Position())
	require.Equal(t, a.Position(), b.Position())
}

func TestXoshiroSeedsDiffer(t *testing.T) {
	a := NewXoshiro(1)
	b := NewXoshiro(2)

	same := 0
	for i := 0; i < 100; i++ {
		if a.Next() == b.Next() {
			same++
		}
	}
	require.Less(t, same, 100, "different seeds produced identical streams")
}

func TestXoshiroReplayFromPosition(t *testing.T) {
	original := NewXoshiro(7)
	for i := 0; i < 37; i++ {
		original.Next()
	}

	replayed := RestoreXoshiro(original.Seed(), original.Position())
	require.Equal(t, original.Position(), replayed.Position())

	for i := 0; i < 10; i++ {
		require.Equal(t, original.Next(), replayed.Next())
	}
}

func TestXoshiroPositionStartsAtZero(t *testing.T) {
	g := NewXoshiro(99)
	require.Equal(t, uint64(0), g.Position())
	g.Next()
	require.Equal(t, uint64(1), g.Position())
}
