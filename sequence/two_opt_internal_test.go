package sequence

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// lineWeights builds the dense m×m time buffer for points on a line;
// index 0 is the base. Symmetric and metric by construction.
func lineWeights(pos []float64) ([]float64, int) {
	m := len(pos)
	w := make([]float64, m*m)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			d := pos[i] - pos[j]
			if d < 0 {
				d = -d
			}
			w[i*m+j] = d
		}
	}

	return w, m
}

func pathCost(order []int, w []float64, m int) float64 {
	total := 0.0
	prev := 0
	for _, s := range order {
		total += w[prev*m+s]
		prev = s
	}

	return total
}

func TestTwoOpt_RepairsCrossing(t *testing.T) {
	// Base at 0, stops 1..4 at positions 1..4. The crossed order 2,1,3,4
	// wastes a back-and-forth; the line order is the unique optimum.
	w, m := lineWeights([]float64{0, 1, 2, 3, 4})
	order := []int{2, 1, 3, 4}
	before := pathCost(order, w, m)

	require.NoError(t, twoOpt(order, w, m, DefaultOptions()))
	require.Equal(t, []int{1, 2, 3, 4}, order)
	require.Less(t, pathCost(order, w, m), before)
}

func TestTwoOpt_InteriorReversal(t *testing.T) {
	w, m := lineWeights([]float64{0, 1, 2, 3, 4})
	order := []int{1, 3, 2, 4}

	require.NoError(t, twoOpt(order, w, m, DefaultOptions()))
	require.Equal(t, []int{1, 2, 3, 4}, order)
}

func TestTwoOpt_EndSegmentReversal(t *testing.T) {
	// Only the tail 4,3 is out of order; the improving move reverses a
	// segment that runs to the end of the open path, where just the entry
	// edge changes.
	w, m := lineWeights([]float64{0, 1, 2, 3, 4})
	order := []int{1, 2, 4, 3}

	require.NoError(t, twoOpt(order, w, m, DefaultOptions()))
	require.Equal(t, []int{1, 2, 3, 4}, order)
}

func TestTwoOpt_IdempotentAtLocalOptimum(t *testing.T) {
	w, m := lineWeights([]float64{0, 1, 2, 3, 4})
	order := []int{2, 1, 3, 4}
	require.NoError(t, twoOpt(order, w, m, DefaultOptions()))

	again := append([]int(nil), order...)
	require.NoError(t, twoOpt(again, w, m, DefaultOptions()))
	require.Equal(t, order, again)
}

func TestTwoOpt_MaxPassesCapsAcceptedMoves(t *testing.T) {
	w, m := lineWeights([]float64{0, 1, 2, 3, 4, 5})
	order := []int{2, 1, 3, 5, 4}

	opts := DefaultOptions()
	opts.MaxPasses = 1
	require.NoError(t, twoOpt(order, w, m, opts))

	// Exactly one reversal applied: the first-improvement scan fixes the
	// leading crossing and stops.
	require.Equal(t, []int{1, 2, 3, 5, 4}, order)
}

func TestTwoOpt_TrivialOrders(t *testing.T) {
	w, m := lineWeights([]float64{0, 1, 2})

	var empty []int
	require.NoError(t, twoOpt(empty, w, m, DefaultOptions()))
	require.Empty(t, empty)

	one := []int{2}
	require.NoError(t, twoOpt(one, w, m, DefaultOptions()))
	require.Equal(t, []int{2}, one)

	require.ErrorIs(t, twoOpt([]int{1, 2}, w, m, Options{Eps: -1}), ErrBadOptions)
}
