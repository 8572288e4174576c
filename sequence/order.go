// Package sequence - nearest-neighbor construction and path utilities.
//
// The dispatcher Order runs both stages (construction + refinement) and is
// the only entry point the rest of the repository uses; the stages are
// kept as separate functions for targeted testing.
package sequence

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fuzzroute/fleet"
	"github.com/katalvlaran/fuzzroute/fuzzy"
	"github.com/katalvlaran/fuzzroute/network"
)

// roundScale stabilizes defuzzified path times to 1e-9 so cross-platform
// floating-point drift cannot flip acceptance decisions.
const roundScale = 1e9

// Order returns the visiting order for the given unique stops of one
// vehicle: nearest-neighbor construction from base followed by 2-opt
// refinement. The input slice is never mutated.
//
// Errors: ErrBadOptions, ErrDuplicateStop, and network sentinels
// (ErrUnknownNode, ErrNoRoute — fatal for the instance).
//
// Complexity: O(n²) prefetch + construction, O(passes·n²) refinement.
func Order(base string, stops []string, net *network.Network, opts Options) ([]string, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	n := len(stops)
	if n == 0 {
		return []string{}, nil
	}

	seen := make(map[string]bool, n)
	for _, s := range stops {
		if seen[s] {
			return nil, fmt.Errorf("stop %s: %w", s, ErrDuplicateStop)
		}
		seen[s] = true
	}

	// Prefetch defuzzified pairwise travel times into a dense buffer:
	// node 0 is the base, nodes 1..n are the stops. Removes map hashing
	// and interface indirection from the O(n²) scans below.
	m := n + 1
	nodes := make([]string, m)
	nodes[0] = base
	copy(nodes[1:], stops)

	w := make([]float64, m*m)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if i == j {
				continue
			}
			tt, err := net.TravelTime(nodes[i], nodes[j])
			if err != nil {
				return nil, err
			}
			w[i*m+j] = tt.Centroid()
		}
	}

	order := nearestNeighbor(nodes, w, m)
	if err := twoOpt(order, w, m, opts); err != nil {
		return nil, err
	}

	out := make([]string, n)
	for i, idx := range order {
		out[i] = nodes[idx]
	}

	return out, nil
}

// nearestNeighbor greedily builds the visiting order over dense indices
// 1..m-1: from the current position, pick the unvisited stop with the
// smallest defuzzified travel time, breaking exact ties by the
// lexicographically smaller node id.
//
// Complexity: O(m²) time, O(m) space.
func nearestNeighbor(nodes []string, w []float64, m int) []int {
	order := make([]int, 0, m-1)
	visited := make([]bool, m)
	cur := 0 // base

	var (
		step, j, best int
		bw            float64
	)
	for step = 1; step < m; step++ {
		best = -1
		bw = math.Inf(1)
		for j = 1; j < m; j++ {
			if visited[j] {
				continue
			}
			cw := w[cur*m+j]
			if cw < bw || (cw == bw && best >= 0 && nodes[j] < nodes[best]) {
				bw = cw
				best = j
			}
		}
		order = append(order, best)
		visited[best] = true
		cur = best
	}

	return order
}

// PathTime returns the fuzzy travel time along base → order[0] → … →
// order[last]. The delivery path is open: no return leg to base.
func PathTime(base string, order []string, net *network.Network) (fuzzy.Triangular, error) {
	total := fuzzy.Zero()
	prev := base
	for _, stop := range order {
		leg, err := net.TravelTime(prev, stop)
		if err != nil {
			return fuzzy.Triangular{}, err
		}
		total = total.Add(leg)
		prev = stop
	}

	return total, nil
}

// PathDistance returns the road distance along the open delivery path,
// stabilized to 1e-9.
func PathDistance(base string, order []string, net *network.Network) (float64, error) {
	var total float64
	prev := base
	for _, stop := range order {
		d, err := net.Distance(prev, stop)
		if err != nil {
			return 0, err
		}
		total += d
		prev = stop
	}

	return round1e9(total), nil
}

// Leg is one traversed segment of a sequenced route, with its network
// distance and fuzzy travel time.
type Leg struct {
	From     string
	To       string
	Distance float64
	Time     fuzzy.Triangular
}

// Legs derives the ordered leg list of the open path base → order.
func Legs(base string, order []string, net *network.Network) ([]Leg, error) {
	legs := make([]Leg, 0, len(order))
	prev := base
	for _, stop := range order {
		d, err := net.Distance(prev, stop)
		if err != nil {
			return nil, err
		}
		tt, err := net.TravelTime(prev, stop)
		if err != nil {
			return nil, err
		}
		legs = append(legs, Leg{From: prev, To: stop, Distance: d, Time: tt})
		prev = stop
	}

	return legs, nil
}

// SequenceRoute re-derives the visiting order of a route from its shipment
// set and returns a new route whose shipments follow that order (shipments
// sharing a destination stay grouped, preserving their relative order).
// The input route is never mutated; routes with fewer than two stops are
// returned as plain copies.
func SequenceRoute(r fleet.Route, net *network.Network, opts Options) (fleet.Route, error) {
	stops := r.Stops()
	if len(stops) < 2 {
		out := fleet.Route{Vehicle: r.Vehicle, Shipments: make([]fleet.Shipment, len(r.Shipments))}
		copy(out.Shipments, r.Shipments)

		return out, nil
	}

	order, err := Order(r.Vehicle.Base, stops, net, opts)
	if err != nil {
		return fleet.Route{}, err
	}

	out := fleet.Route{Vehicle: r.Vehicle, Shipments: make([]fleet.Shipment, 0, len(r.Shipments))}
	for _, stop := range order {
		for i := range r.Shipments {
			if r.Shipments[i].Destination == stop {
				out.Shipments = append(out.Shipments, r.Shipments[i])
			}
		}
	}

	return out, nil
}

// round1e9 rounds x to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
