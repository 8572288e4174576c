// Package fuzzy - triangular fuzzy number value type and arithmetic.
//
// All operations are O(1), side-effect free and deterministic. Construction
// is the only place where the a ≤ b ≤ c invariant can be violated by user
// input; every derived operation preserves it by construction (Scale with a
// negative factor re-sorts explicitly).
package fuzzy

import "math"

// Triangular is a triangular fuzzy number (a, b, c) with A ≤ B ≤ C.
//
// A is the pessimistic bound, B the most likely value (mode), C the
// optimistic bound. The zero value is the crisp number 0.
type Triangular struct {
	A float64 // lower bound (minimum possible value)
	B float64 // peak (most likely value)
	C float64 // upper bound (maximum possible value)
}

// New constructs a Triangular and validates the ordering invariant.
// NaN components and triples with a > b or b > c yield ErrInvalidTriangular;
// the triple is never silently reordered.
func New(a, b, c float64) (Triangular, error) {
	if math.IsNaN(a) || math.IsNaN(b) || math.IsNaN(c) {
		return Triangular{}, ErrInvalidTriangular
	}
	if a > b || b > c {
		return Triangular{}, ErrInvalidTriangular
	}

	return Triangular{A: a, B: b, C: c}, nil
}

// Crisp returns the degenerate TFN (v, v, v) representing an exact value.
func Crisp(v float64) Triangular {
	return Triangular{A: v, B: v, C: v}
}

// FromCrisp fuzzifies a crisp value with a relative spread:
// (v−|v·spread|, v, v+|v·spread|). A spread of 0.05 yields ±5% bounds.
// Negative spread yields ErrBadSpread.
func FromCrisp(v, spread float64) (Triangular, error) {
	if spread < 0 {
		return Triangular{}, ErrBadSpread
	}
	delta := math.Abs(v * spread)

	return Triangular{A: v - delta, B: v, C: v + delta}, nil
}

// Zero returns the crisp zero TFN, the additive identity.
func Zero() Triangular {
	return Triangular{}
}

// Infinite returns the TFN (+Inf, +Inf, +Inf), used as the cost of an
// unreachable route.
func Infinite() Triangular {
	inf := math.Inf(1)

	return Triangular{A: inf, B: inf, C: inf}
}

// IsInfinite reports whether any component of t is ±Inf.
func (t Triangular) IsInfinite() bool {
	return math.IsInf(t.A, 0) || math.IsInf(t.B, 0) || math.IsInf(t.C, 0)
}

// Add returns the componentwise sum t + u.
func (t Triangular) Add(u Triangular) Triangular {
	return Triangular{A: t.A + u.A, B: t.B + u.B, C: t.C + u.C}
}

// Sub returns the interval difference t − u: (tA−uC, tB−uB, tC−uA).
// Subtracting the optimistic bound from the pessimistic one (and vice
// versa) keeps the result a valid TFN for any operands.
func (t Triangular) Sub(u Triangular) Triangular {
	return Triangular{A: t.A - u.C, B: t.B - u.B, C: t.C - u.A}
}

// Scale returns t scaled by k. For k < 0 the component order reverses,
// so the bounds are swapped to preserve A ≤ B ≤ C.
func (t Triangular) Scale(k float64) Triangular {
	if k >= 0 {
		return Triangular{A: t.A * k, B: t.B * k, C: t.C * k}
	}

	return Triangular{A: t.C * k, B: t.B * k, C: t.A * k}
}

// Centroid defuzzifies t to the scalar (a+b+c)/3, the center of gravity of
// the triangular membership function. For all valid TFNs, A ≤ Centroid ≤ C.
func (t Triangular) Centroid() float64 {
	return (t.A + t.B + t.C) / 3
}

// Spread returns the uncertainty width c−a. Zero for crisp numbers.
func (t Triangular) Spread() float64 {
	return t.C - t.A
}

// Less reports whether x orders strictly before y under the package's total
// order: smaller centroid first; on an exact centroid tie, the TFN with the
// smaller spread (tighter uncertainty) is preferred.
func Less(x, y Triangular) bool {
	cx, cy := x.Centroid(), y.Centroid()
	if cx != cy {
		return cx < cy
	}

	return x.Spread() < y.Spread()
}
