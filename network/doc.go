// Package network provides the road-network collaborator consumed by the
// optimization core: an immutable snapshot of nodes (depots, border
// crossings, delivery points) and undirected weighted edges, answering
// distance and fuzzy travel-time queries for arbitrary node pairs.
//
// The optimization hot loop issues many thousands of pairwise queries, so
// the snapshot precomputes all-pairs shortest paths once at construction
// using Dijkstra's algorithm (min-heap with lazy decrease-key) from every
// source; queries afterwards are O(1) lookups into dense tables.
//
// Fuzzy travel times:
//
//   - Each edge derives a triangular travel time from its base time and the
//     daily congestion delay factors: (base·min, base·typical, base·max).
//     Edges without delay factors get a crisp base time.
//   - The travel time of a node pair is the fuzzy sum along the
//     shortest-distance path between them.
//
// Complexity:
//
//   - Construction: O(V·(V+E)·log V) for the all-pairs precompute.
//   - Distance / TravelTime / IsBorderCrossing: O(1).
//
// A pair with no connecting path answers ErrNoRoute; the core treats this
// as a fatal data-integrity failure and never synthesizes a substitute
// cost. All errors are sentinels from types.go, matched with errors.Is.
package network
