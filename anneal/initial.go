// Package anneal - initial solution construction.
//
// BuildInitial packs shipments with first-fit decreasing over destination
// groups:
//
//  1. Group shipments by destination (relative order inside a group is
//     preserved).
//  2. Sort groups by road distance from their origin ascending, total
//     volume descending, destination id ascending. Nearer, bulkier groups
//     are placed while the fleet is still empty.
//  3. For each group, best-fit: assign the whole group to the vehicle
//     whose remaining volume after loading would be smallest (keeping
//     same-destination freight on one truck). If no vehicle can take the
//     whole group, fall back to per-shipment first-fit.
//  4. Fail with ErrFleetExhausted when a shipment fits nowhere.
//
// Every non-empty route is then sequenced, so the returned solution is
// feasible AND route-locally ordered; the annealer can start measuring
// costs immediately.
package anneal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/fuzzroute/fleet"
	"github.com/katalvlaran/fuzzroute/network"
	"github.com/katalvlaran/fuzzroute/sequence"
)

// shipmentGroup is one destination's freight plus its sort keys.
type shipmentGroup struct {
	destination string
	shipments   []fleet.Shipment
	distance    float64 // from origin to destination
	volume      float64 // total group volume
}

// BuildInitial constructs a capacity-feasible, sequenced starting
// solution, or fails with ErrFleetExhausted when the fleet cannot hold
// the instance.
//
// Errors: ErrNilNetwork, ErrNoShipments, fleet.ErrEmptyFleet,
// ErrFleetExhausted, plus network sentinels for unknown or unreachable
// destinations.
//
// Complexity: O(s·log s) grouping and sorting, O(g·v) placement,
// O(Σ n_r²) sequencing for s shipments, g groups, v vehicles.
func BuildInitial(vehicles []fleet.Vehicle, shipments []fleet.Shipment, net *network.Network, opts Options) (fleet.Solution, error) {
	if err := opts.validate(); err != nil {
		return fleet.Solution{}, err
	}
	if net == nil {
		return fleet.Solution{}, ErrNilNetwork
	}
	if len(shipments) == 0 {
		return fleet.Solution{}, ErrNoShipments
	}

	sol, err := fleet.NewSolution(vehicles)
	if err != nil {
		return fleet.Solution{}, err
	}

	groups, err := groupByDestination(shipments, net)
	if err != nil {
		return fleet.Solution{}, err
	}

	for _, g := range groups {
		if placeGroup(&sol, g) {
			continue
		}
		// Whole group does not fit anywhere: split it shipment by
		// shipment, first vehicle that can take each one.
		for _, s := range g.shipments {
			if !placeShipment(&sol, s) {
				return fleet.Solution{}, fmt.Errorf("shipment %s (%.1f m³ / %.0f kg): %w",
					s.ID, s.Volume, s.Weight, ErrFleetExhausted)
			}
		}
	}

	for i := range sol.Routes {
		if len(sol.Routes[i].Shipments) == 0 {
			continue
		}
		seq, err := sequence.SequenceRoute(sol.Routes[i], net, opts.Sequencer)
		if err != nil {
			return fleet.Solution{}, err
		}
		sol.Routes[i] = seq
	}

	return sol, nil
}

// groupByDestination buckets shipments per destination and attaches the
// sort keys. Group order: distance asc, volume desc, destination asc.
func groupByDestination(shipments []fleet.Shipment, net *network.Network) ([]shipmentGroup, error) {
	index := make(map[string]int, len(shipments))
	groups := make([]shipmentGroup, 0, len(shipments))

	for _, s := range shipments {
		i, ok := index[s.Destination]
		if !ok {
			d, err := net.Distance(s.Origin, s.Destination)
			if err != nil {
				return nil, fmt.Errorf("shipment %s: %w", s.ID, err)
			}
			i = len(groups)
			index[s.Destination] = i
			groups = append(groups, shipmentGroup{destination: s.Destination, distance: d})
		}
		groups[i].shipments = append(groups[i].shipments, s)
		groups[i].volume += s.Volume
	}

	sort.SliceStable(groups, func(a, b int) bool {
		ga, gb := groups[a], groups[b]
		if ga.distance != gb.distance {
			return ga.distance < gb.distance
		}
		if ga.volume != gb.volume {
			return ga.volume > gb.volume
		}

		return ga.destination < gb.destination
	})

	return groups, nil
}

// placeGroup assigns the whole group to the vehicle that would be left
// with the least spare volume (best fit, lowest route index on ties).
// Returns false when no single vehicle can take the group.
func placeGroup(sol *fleet.Solution, g shipmentGroup) bool {
	best := -1
	bestSlack := 0.0
	for i := range sol.Routes {
		r := &sol.Routes[i]
		if !r.FitsAll(g.shipments) {
			continue
		}
		slack := r.Vehicle.MaxVolume - r.Volume() - g.volume
		if best == -1 || slack < bestSlack {
			best = i
			bestSlack = slack
		}
	}
	if best == -1 {
		return false
	}
	sol.Routes[best].Shipments = append(sol.Routes[best].Shipments, g.shipments...)

	return true
}

// placeShipment puts s on the first vehicle with room for it.
func placeShipment(sol *fleet.Solution, s fleet.Shipment) bool {
	for i := range sol.Routes {
		if sol.Routes[i].Fits(s) {
			sol.Routes[i].Shipments = append(sol.Routes[i].Shipments, s)

			return true
		}
	}

	return false
}
