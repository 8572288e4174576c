// Package fuzzy_test exercises the triangular fuzzy number arithmetic via
// the public API. Focus: the a ≤ b ≤ c construction invariant, interval
// arithmetic identities, centroid bounds and the total order.
package fuzzy_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fuzzroute/fuzzy"
)

func TestNew_ValidTriple(t *testing.T) {
	f, err := fuzzy.New(1, 2, 4)
	require.NoError(t, err)
	require.Equal(t, 1.0, f.A)
	require.Equal(t, 2.0, f.B)
	require.Equal(t, 4.0, f.C)
}

func TestNew_AllowsCrispAndDegenerate(t *testing.T) {
	// Equal components form a valid crisp number.
	_, err := fuzzy.New(3, 3, 3)
	require.NoError(t, err)

	// Partial degeneracy is valid too.
	_, err = fuzzy.New(3, 3, 5)
	require.NoError(t, err)
}

func TestNew_RejectsDisorderedTriple(t *testing.T) {
	_, err := fuzzy.New(2, 1, 3)
	require.ErrorIs(t, err, fuzzy.ErrInvalidTriangular)

	_, err = fuzzy.New(1, 3, 2)
	require.ErrorIs(t, err, fuzzy.ErrInvalidTriangular)
}

func TestNew_RejectsNaN(t *testing.T) {
	_, err := fuzzy.New(math.NaN(), 1, 2)
	require.ErrorIs(t, err, fuzzy.ErrInvalidTriangular)
}

func TestFromCrisp_SpreadBounds(t *testing.T) {
	f, err := fuzzy.FromCrisp(100, 0.05)
	require.NoError(t, err)
	require.InDelta(t, 95.0, f.A, 1e-12)
	require.Equal(t, 100.0, f.B)
	require.InDelta(t, 105.0, f.C, 1e-12)

	// Negative crisp values still produce an ordered triple.
	f, err = fuzzy.FromCrisp(-100, 0.05)
	require.NoError(t, err)
	require.True(t, f.A <= f.B && f.B <= f.C)

	_, err = fuzzy.FromCrisp(10, -0.1)
	require.ErrorIs(t, err, fuzzy.ErrBadSpread)
}

func TestAdd_Componentwise(t *testing.T) {
	x, _ := fuzzy.New(1, 2, 3)
	y, _ := fuzzy.New(10, 20, 30)
	sum := x.Add(y)
	require.Equal(t, fuzzy.Triangular{A: 11, B: 22, C: 33}, sum)
}

func TestSub_IntervalSemantics(t *testing.T) {
	x, _ := fuzzy.New(5, 7, 9)
	y, _ := fuzzy.New(1, 2, 3)
	d := x.Sub(y)
	// (5−3, 7−2, 9−1): pessimistic minus optimistic and vice versa.
	require.Equal(t, fuzzy.Triangular{A: 2, B: 5, C: 8}, d)
	require.True(t, d.A <= d.B && d.B <= d.C)

	// Subtraction result stays ordered even when the difference straddles 0.
	d = y.Sub(x)
	require.True(t, d.A <= d.B && d.B <= d.C)
}

func TestScale_NegativeFactorReorders(t *testing.T) {
	x, _ := fuzzy.New(1, 2, 4)

	pos := x.Scale(2)
	require.Equal(t, fuzzy.Triangular{A: 2, B: 4, C: 8}, pos)

	neg := x.Scale(-1)
	require.Equal(t, fuzzy.Triangular{A: -4, B: -2, C: -1}, neg)
	require.True(t, neg.A <= neg.B && neg.B <= neg.C)
}

// TestCentroid_WithinBounds checks a ≤ centroid ≤ c over a grid of valid
// triples, including degenerate ones.
func TestCentroid_WithinBounds(t *testing.T) {
	triples := [][3]float64{
		{0, 0, 0}, {1, 2, 3}, {-5, 0, 5}, {2, 2, 10}, {-9, -4, -1}, {0.1, 0.1, 0.1},
	}
	for _, tr := range triples {
		f, err := fuzzy.New(tr[0], tr[1], tr[2])
		require.NoError(t, err)
		c := f.Centroid()
		require.GreaterOrEqual(t, c, f.A)
		require.LessOrEqual(t, c, f.C)
	}
}

func TestLess_CentroidOrder(t *testing.T) {
	lo, _ := fuzzy.New(1, 2, 3)
	hi, _ := fuzzy.New(4, 5, 6)
	require.True(t, fuzzy.Less(lo, hi))
	require.False(t, fuzzy.Less(hi, lo))
}

// TestLess_SpreadTieBreak verifies that equal centroids fall back to the
// tighter-uncertainty preference.
func TestLess_SpreadTieBreak(t *testing.T) {
	tight, _ := fuzzy.New(9, 10, 11) // centroid 10, spread 2
	wide, _ := fuzzy.New(5, 10, 15)  // centroid 10, spread 10
	require.True(t, fuzzy.Less(tight, wide))
	require.False(t, fuzzy.Less(wide, tight))

	// Identical values order strictly before nothing.
	require.False(t, fuzzy.Less(tight, tight))
}

func TestInfinite_Propagation(t *testing.T) {
	inf := fuzzy.Infinite()
	require.True(t, inf.IsInfinite())
	require.True(t, inf.Add(fuzzy.Crisp(1)).IsInfinite())
	require.False(t, fuzzy.Zero().IsInfinite())
}

func TestZero_AdditiveIdentity(t *testing.T) {
	x, _ := fuzzy.New(1, 2, 3)
	require.Equal(t, x, fuzzy.Zero().Add(x))
	require.Equal(t, x, x.Add(fuzzy.Zero()))
}
