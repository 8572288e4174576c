// Package sequence - 2-opt local search over an open delivery path.
//
// twoOpt performs deterministic first-improvement 2-opt on the visiting
// order produced by nearest-neighbor. For an open path P = base → s₀ → …
// → sₙ₋₁, reversing the segment [i..k] replaces the boundary edges
// (prev(i)→sᵢ) and (sₖ→next(k)) with (prev(i)→sₖ) and (sᵢ→next(k)); the
// interior edge sum is unchanged because the network is undirected, so
// the move's cost delta is O(1):
//
//	Δ = w(prev, s[k]) + w(s[i], next) − w(prev, s[i]) − w(s[k], next)
//
// with the next-terms dropped when k is the last stop (the path simply
// ends there).
//
// Contracts:
//   - w is the (m×m, m = stops+1) dense defuzzified time buffer built by
//     Order; index 0 is the base.
//   - order holds stop indices 1..m-1, each exactly once.
//   - Accepting a move never changes the stop set, only its order.
//
// Policy (matching the repository-wide local-search discipline):
//   - strict improvement only: Δ < −Eps;
//   - first-improvement with restart after every accepted move;
//   - optional cap on accepted moves (Options.MaxPasses, 0 = unlimited).
//
// Complexity: O(passes·n²) candidate checks; O(n) per accepted reversal.
package sequence

// twoOpt refines order in place. It returns an error only for malformed
// options (callers inside the package have validated them already; the
// check is kept for direct use in tests).
func twoOpt(order []int, w []float64, m int, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}
	n := len(order)
	if n < 2 {
		return nil
	}

	accepted := 0
	for {
		improved := false

		var (
			i, k       int
			prev, next int
			delta      float64
		)
		for i = 0; i <= n-2 && !improved; i++ {
			for k = i + 1; k <= n-1; k++ {
				if i == 0 {
					prev = 0 // base
				} else {
					prev = order[i-1]
				}

				if k == n-1 {
					// Segment runs to the end of the open path: only the
					// entry edge changes.
					delta = w[prev*m+order[k]] - w[prev*m+order[i]]
				} else {
					next = order[k+1]
					delta = w[prev*m+order[k]] + w[order[i]*m+next] -
						w[prev*m+order[i]] - w[order[k]*m+next]
				}

				if delta >= -opts.Eps {
					continue
				}

				reverseSegment(order, i, k)
				accepted++
				improved = true

				if opts.MaxPasses > 0 && accepted >= opts.MaxPasses {
					return nil
				}

				// First-improvement policy: restart the scan.
				break
			}
		}

		if !improved {
			// Local optimum under the 2-opt neighborhood.
			return nil
		}
	}
}

// reverseSegment reverses order[i..k] in place.
func reverseSegment(order []int, i, k int) {
	for i < k {
		order[i], order[k] = order[k], order[i]
		i++
		k--
	}
}
