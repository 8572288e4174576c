// Package anneal - RNG utilities.
//
// All randomness in this package flows through one deterministic
// math/rand stream created here. No time-based sources, so a fixed seed
// reproduces a run bit for bit.
//
// Concurrency: math/rand.Rand is not goroutine-safe; the annealer is
// single-threaded and never shares the stream.
package anneal

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed
// verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}
