// Package anneal optimizes shipment-to-vehicle assignments with simulated
// annealing over fuzzy route costs.
//
// What you get:
//
//   - 🏗️ BuildInitial - capacity-feasible starting solution via first-fit
//     decreasing over destination groups (nearer groups packed first, whole
//     groups kept on one vehicle when any vehicle can take them).
//   - 🔥 Optimize - Metropolis acceptance over the defuzzified cost delta
//     with geometric cooling, four weighted neighborhood moves, and full
//     determinism under a fixed seed.
//   - 📊 Result - best solution found, its fuzzy cost, and run statistics
//     (acceptance counts, improvement count, no-op iterations, final
//     temperature) tagged with a unique run id.
//
// Neighborhood moves:
//
//	swap     - exchange one shipment between two vehicles
//	transfer - move one shipment to another vehicle
//	relocate - reposition one shipment inside its vehicle's visiting order
//	reverse  - reverse a contiguous segment of one vehicle's visiting order
//
// Assignment moves (swap, transfer) re-sequence the touched routes so the
// visiting order stays locally optimal; ordering moves (relocate, reverse)
// perturb the order directly and let Metropolis judge the result. Every
// candidate is capacity-checked before evaluation, so the annealer only
// ever walks the feasible region.
//
// Determinism:
//
//   - One math/rand stream, created from Options.Seed (seed==0 maps to a
//     fixed default). Same seed, same inputs ⇒ identical Result.Best,
//     Result.Cost and Stats (RunID aside).
//   - No time-based sources, no goroutines.
//
// Errors are sentinels from types.go; an instance whose shipments cannot
// all be placed fails fast with ErrFleetExhausted.
package anneal
