// Package fleet - routes, solutions and their invariant checks.
//
// Design:
//   - Deterministic, side-effect free methods; no logging, no panics on
//     user input - only sentinel errors from types.go.
//   - Clone produces a deep copy so callers can treat Solution values as
//     immutable snapshots.
//   - Validation is staged: capacity per route first, then exact cover
//     against the problem instance.
package fleet

import "fmt"

// Route is one vehicle plus the ordered sequence of shipments it delivers.
// The order of Shipments is the visiting order; consecutive shipments that
// share a destination form a single physical stop.
type Route struct {
	Vehicle   Vehicle
	Shipments []Shipment
}

// Volume returns the summed shipment volume currently on the route.
func (r Route) Volume() float64 {
	var sum float64
	for i := range r.Shipments {
		sum += r.Shipments[i].Volume
	}

	return sum
}

// Weight returns the summed shipment weight currently on the route.
func (r Route) Weight() float64 {
	var sum float64
	for i := range r.Shipments {
		sum += r.Shipments[i].Weight
	}

	return sum
}

// Fits reports whether adding s would keep the route within both the
// volume and the weight capacity of its vehicle.
func (r Route) Fits(s Shipment) bool {
	return r.Volume()+s.Volume <= r.Vehicle.MaxVolume &&
		r.Weight()+s.Weight <= r.Vehicle.MaxWeight
}

// FitsAll reports whether adding every shipment in batch would keep the
// route within capacity. Used when a whole destination group is placed.
func (r Route) FitsAll(batch []Shipment) bool {
	var v, w float64
	for i := range batch {
		v += batch[i].Volume
		w += batch[i].Weight
	}

	return r.Volume()+v <= r.Vehicle.MaxVolume &&
		r.Weight()+w <= r.Vehicle.MaxWeight
}

// CheckCapacity returns ErrOverCapacity (with vehicle context) if the route
// violates either capacity dimension.
func (r Route) CheckCapacity() error {
	if r.Volume() > r.Vehicle.MaxVolume || r.Weight() > r.Vehicle.MaxWeight {
		return fmt.Errorf("vehicle %s: %w", r.Vehicle.ID, ErrOverCapacity)
	}

	return nil
}

// Stops returns the unique destination node ids of the route in visiting
// order. Consecutive shipments to the same destination collapse into one
// stop; a destination never appears twice.
func (r Route) Stops() []string {
	stops := make([]string, 0, len(r.Shipments))
	seen := make(map[string]bool, len(r.Shipments))
	for i := range r.Shipments {
		d := r.Shipments[i].Destination
		if !seen[d] {
			seen[d] = true
			stops = append(stops, d)
		}
	}

	return stops
}

// clone returns a deep copy of the route (fresh shipment slice).
func (r Route) clone() Route {
	out := Route{Vehicle: r.Vehicle}
	if r.Shipments != nil {
		out.Shipments = make([]Shipment, len(r.Shipments))
		copy(out.Shipments, r.Shipments)
	}

	return out
}

// Solution is a complete assignment: one route per fleet vehicle (possibly
// empty). Treat values as immutable snapshots; derive new ones via Clone.
type Solution struct {
	Routes []Route
}

// NewSolution builds an all-empty solution over the given fleet, one route
// per vehicle in fleet order.
func NewSolution(vehicles []Vehicle) (Solution, error) {
	if len(vehicles) == 0 {
		return Solution{}, ErrEmptyFleet
	}
	routes := make([]Route, len(vehicles))
	for i, v := range vehicles {
		routes[i] = Route{Vehicle: v}
	}

	return Solution{Routes: routes}, nil
}

// Clone returns a deep copy of the solution. O(total shipments).
func (s Solution) Clone() Solution {
	out := Solution{Routes: make([]Route, len(s.Routes))}
	for i := range s.Routes {
		out.Routes[i] = s.Routes[i].clone()
	}

	return out
}

// ShipmentCount returns the total number of routed shipments.
func (s Solution) ShipmentCount() int {
	var n int
	for i := range s.Routes {
		n += len(s.Routes[i].Shipments)
	}

	return n
}

// VehiclesUsed returns the number of routes carrying at least one shipment.
func (s Solution) VehiclesUsed() int {
	var n int
	for i := range s.Routes {
		if len(s.Routes[i].Shipments) > 0 {
			n++
		}
	}

	return n
}

// RouteFor returns the index of the route whose vehicle id matches, or -1.
func (s Solution) RouteFor(vehicleID string) int {
	for i := range s.Routes {
		if s.Routes[i].Vehicle.ID == vehicleID {
			return i
		}
	}

	return -1
}

// Validate checks the two central invariants against the full problem
// instance:
//
//  1. every route respects both capacity dimensions,
//  2. every instance shipment appears in exactly one route exactly once,
//     and no route carries a shipment outside the instance.
//
// Errors carry the offending shipment/vehicle id wrapped around the
// matching sentinel. Complexity: O(total shipments).
func (s Solution) Validate(instance []Shipment) error {
	// Stage 1: per-route capacity.
	for i := range s.Routes {
		if err := s.Routes[i].CheckCapacity(); err != nil {
			return err
		}
	}

	// Stage 2: exact cover.
	want := make(map[string]bool, len(instance))
	for i := range instance {
		want[instance[i].ID] = true
	}
	seen := make(map[string]bool, len(instance))
	for i := range s.Routes {
		for j := range s.Routes[i].Shipments {
			id := s.Routes[i].Shipments[j].ID
			if !want[id] {
				return fmt.Errorf("shipment %s: %w", id, ErrUnknownShipment)
			}
			if seen[id] {
				return fmt.Errorf("shipment %s: %w", id, ErrShipmentDuplicated)
			}
			seen[id] = true
		}
	}
	for i := range instance {
		if !seen[instance[i].ID] {
			return fmt.Errorf("shipment %s: %w", instance[i].ID, ErrShipmentMissing)
		}
	}

	return nil
}
