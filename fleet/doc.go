// Package fleet defines the cargo data model shared by all optimization
// components: shipments, vehicles, per-vehicle routes and complete
// solutions.
//
// Central invariants:
//
//   - Route capacity: the summed volume and weight of a route's shipments
//     never exceed its vehicle's MaxVolume / MaxWeight.
//   - Solution cover: every shipment of the problem instance appears in
//     exactly one route, exactly once (no duplication, no omission).
//
// Both invariants are re-checkable at any time via Route.CheckCapacity and
// Solution.Validate; the search loop in the anneal package relies on them
// after every mutation.
//
// Lifecycle:
//
//   - Shipment and Vehicle are immutable once constructed.
//   - Solution values are treated as immutable snapshots: mutations go
//     through Clone, so an accepted search step produces a fresh value and
//     rejection simply drops the candidate reference. No undo logic exists
//     anywhere.
//
// All failure modes are sentinel errors (see types.go), matched with
// errors.Is.
package fleet
