package anneal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAccept_NonPositiveDeltaAlwaysAccepted(t *testing.T) {
	rng := rngFromSeed(1)
	for i := 0; i < 100; i++ {
		require.True(t, accept(0, 10, 1e-4, rng))
		require.True(t, accept(-1e9, 0.2, 1e-4, rng))
	}
}

func TestAccept_FloorKeepsColdMovesPossible(t *testing.T) {
	// exp(-1e6/0.1) underflows to 0; with floor=1 the move must still be
	// accepted, with floor=0 it must not.
	rng := rngFromSeed(1)
	require.True(t, accept(1e6, 0.1, 1, rng))

	for i := 0; i < 100; i++ {
		require.False(t, accept(1e6, 0.1, 0, rng))
	}
}

func TestPickMove_RespectsZeroWeights(t *testing.T) {
	rng := rngFromSeed(7)
	for i := 0; i < 200; i++ {
		require.Equal(t, moveReverse, pickMove(rng, MoveWeights{Reverse: 1}))
		require.Equal(t, moveSwap, pickMove(rng, MoveWeights{Swap: 0.4}))
		require.Equal(t, moveTransfer, pickMove(rng, MoveWeights{Transfer: 2}))
		require.Equal(t, moveRelocate, pickMove(rng, MoveWeights{Relocate: 0.1}))
	}
}

func TestPickMove_CoversAllKindsUnderDefaultWeights(t *testing.T) {
	rng := rngFromSeed(3)
	seen := map[moveKind]bool{}
	w := DefaultOptions().Weights
	for i := 0; i < 1000; i++ {
		seen[pickMove(rng, w)] = true
	}
	require.Len(t, seen, 4)
}
