// Package sequence orders the stops of a single vehicle route.
//
// Sequencing runs in two stages:
//
//  1. Nearest-neighbor construction - starting at the vehicle's base node,
//     repeatedly append the unvisited stop with the smallest defuzzified
//     travel time from the current position (lexicographically smaller
//     node id on ties, for determinism).
//  2. 2-opt refinement - deterministic first-improvement local search over
//     the open delivery path: reverse any sub-segment whose reversal
//     strictly decreases the defuzzified path time beyond the configured
//     tolerance, restart the scan after every accepted move, stop at a
//     local optimum or at the pass cap.
//
// 2-opt only ever permutes the visiting order within one vehicle; the
// shipment-to-vehicle assignment is untouched. Re-running the refinement
// on a locally optimal order is a no-op (idempotence), which the annealer
// relies on when it re-sequences unchanged routes.
//
// Design (shared with the rest of the repository):
//
//   - Deterministic: no RNG anywhere in this package.
//   - Strict sentinels from types.go plus network errors passed through
//     unchanged; a missing route between required stops is fatal.
//   - Allocation-conscious: pairwise times are prefetched into a dense
//     buffer once per Order call, so the O(n²) scans never touch a map
//     or interface.
//
// Complexity: O(n²) construction, O(passes·n²) refinement for n stops.
package sequence
