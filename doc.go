// Package fuzzroute is a simulated-annealing optimizer for cross-border
// trucking: it assigns cargo shipments to vehicles and orders each vehicle's
// deliveries under weight/volume capacity constraints, pricing every
// candidate plan with triangular-fuzzy-number costs that capture uncertain
// travel times, customs delays and labor rates.
//
// 🚚 What is fuzzroute?
//
//	A deterministic, dependency-light optimization engine that brings together:
//		• Fuzzy arithmetic: triangular fuzzy numbers with a defined total order
//		• Cost model: fuel, customs, tax and fuzzy driver salary per route
//		• Route sequencing: nearest-neighbor construction + 2-opt refinement
//		• Initial plans: first-fit-decreasing packing with destination grouping
//		• Neighborhood search: swap / transfer / relocate / reverse moves
//		• Simulated annealing: fuzzy Metropolis acceptance, geometric cooling
//
// ✨ Design guarantees
//
//   - Deterministic – same instance + same seed ⇒ identical best plan and stats
//   - Immutable snapshots – every accepted move yields a fresh Solution value
//   - Strict sentinels – every package returns typed errors checked via errors.Is
//   - Pure Go – no cgo, no hidden global state
//
// Everything is organized under topical subpackages:
//
//	fuzzy/    — triangular fuzzy numbers: arithmetic, centroid, total order
//	fleet/    — shipments, vehicles, routes, solutions and their invariants
//	network/  — road network snapshot with all-pairs shortest-path queries
//	cost/     — fuzzy route and solution costing
//	sequence/ — per-vehicle stop ordering (nearest neighbor + 2-opt)
//	anneal/   — initial solution builder, neighborhood moves, SA control loop
//	dataset/  — JSON instance loading, structural validation, solution checks
//	config/   — YAML run configuration
//	cmd/      — the fuzzroute command-line runner
//
// Start with anneal.Optimize; see cmd/fuzzroute for an end-to-end run.
package fuzzroute
