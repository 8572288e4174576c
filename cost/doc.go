// Package cost prices vehicle routes and complete solutions as triangular
// fuzzy numbers.
//
// The fuzzy cost of one route combines:
//
//   - travel time   — the fuzzy travel-time sum along the route, scaled by
//     the hourly operating rate
//   - customs delay — a fuzzy delay per border crossing, scaled by the same
//     hourly rate, plus the crisp per-pair customs fee
//   - driver cost   — a fuzzy daily salary band (chosen by route length)
//     multiplied by trip days and the driver-experience factor
//   - crisp components — fuel burn, tax on delivered goods, per-diem,
//     fixed overhead and emergency reserve — fuzzified with a relative
//     spread before being added
//
// A solution's cost is the fuzzy sum of its route costs; empty routes cost
// zero. Defuzzify with fuzzy.Triangular.Centroid for scalar comparisons.
//
// Model is pure: it never mutates a solution and depends on the network
// only through the Distance/TravelTime/IsBorderCrossing queries. A missing
// route between two required stops surfaces the network's ErrNoRoute
// unchanged — the model never synthesizes a substitute cost.
package cost
