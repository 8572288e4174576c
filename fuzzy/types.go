package fuzzy

import "errors"

// Sentinel errors returned by the fuzzy package.
var (
	// ErrInvalidTriangular indicates a triple violating a ≤ b ≤ c, or a
	// NaN component. Malformed triples are rejected, never reordered.
	ErrInvalidTriangular = errors.New("fuzzy: invalid triangular number (want a ≤ b ≤ c)")

	// ErrBadSpread indicates a negative relative spread passed to FromCrisp.
	ErrBadSpread = errors.New("fuzzy: spread must be non-negative")
)
