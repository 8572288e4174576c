// Package fuzzy implements triangular fuzzy numbers (TFNs) for uncertain
// cost quantities.
//
// A TFN is an ordered triple (a, b, c) with a ≤ b ≤ c, read as a
// pessimistic / most-likely / optimistic estimate. The membership function
// is triangular: 1 at b, falling linearly to 0 at a and c.
//
// Operations:
//
//   - Add / Sub       — componentwise interval arithmetic
//   - Scale           — scalar multiplication (negative scalars re-sort)
//   - Centroid        — defuzzification to (a+b+c)/3
//   - Spread          — uncertainty width c−a
//   - Less            — total order: centroid first, tighter spread on ties
//
// Design:
//
//   - Value semantics: Triangular is a small immutable value; every
//     operation returns a new value, never mutates a receiver.
//   - Strict sentinels: a triple violating a ≤ b ≤ c is rejected with
//     ErrInvalidTriangular, never silently reordered.
//   - Deterministic and allocation-free: all operations are O(1) with no
//     hidden state.
//
// Use this package wherever an acceptance decision needs a defined total
// order over uncertain costs (see the anneal package).
package fuzzy
