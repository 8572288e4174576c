// Package dataset - independent solution validation.
package dataset

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/fuzzroute/fleet"
)

// capacityTolerance absorbs floating-point accumulation when re-deriving
// loads; a vehicle is flagged only beyond 0.1% over its limit.
const capacityTolerance = 1.001

// Verdict is the outcome of an independent feasibility check.
type Verdict struct {
	Feasible   bool     `json:"feasible"`
	Violations []string `json:"violations,omitempty"`
	Warnings   []string `json:"warnings,omitempty"`
}

// Check re-derives capacity usage and shipment coverage of a finished
// solution from scratch and reports every violated constraint. It is a
// second opinion next to fleet.Solution.Validate: collecting instead of
// fail-fast, and tolerant of sub-0.1% float drift on capacities.
//
// Warnings flag oddities that do not make the solution infeasible
// (idle vehicles while others run near their limits).
func Check(sol fleet.Solution, shipments []fleet.Shipment) Verdict {
	v := Verdict{Feasible: true}

	for _, r := range sol.Routes {
		vol, wt := r.Volume(), r.Weight()
		if vol > r.Vehicle.MaxVolume*capacityTolerance {
			v.violate("vehicle %s exceeds volume capacity: %.2f/%.2f CBM",
				r.Vehicle.ID, vol, r.Vehicle.MaxVolume)
		}
		if wt > r.Vehicle.MaxWeight*capacityTolerance {
			v.violate("vehicle %s exceeds weight capacity: %.2f/%.2f kg",
				r.Vehicle.ID, wt, r.Vehicle.MaxWeight)
		}
	}

	// Exact cover: every instance shipment on exactly one vehicle,
	// nothing extra.
	want := make(map[string]int, len(shipments))
	for _, s := range shipments {
		want[s.ID]++
	}
	got := make(map[string]int)
	for _, r := range sol.Routes {
		for _, s := range r.Shipments {
			got[s.ID]++
		}
	}

	ids := make([]string, 0, len(want))
	for id := range want {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		switch n := got[id]; {
		case n == 0:
			v.violate("shipment %s is not assigned to any vehicle", id)
		case n > 1:
			v.violate("shipment %s is assigned %d times", id, n)
		}
	}

	extra := make([]string, 0)
	for id := range got {
		if want[id] == 0 {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	for _, id := range extra {
		v.violate("shipment %s does not belong to the instance", id)
	}

	v.warnIdleVehicles(sol)

	return v
}

func (v *Verdict) violate(format string, args ...any) {
	v.Feasible = false
	v.Violations = append(v.Violations, fmt.Sprintf(format, args...))
}

// warnIdleVehicles notes empty trucks standing next to near-full ones;
// a hint that the fleet is oversized for the instance.
func (v *Verdict) warnIdleVehicles(sol fleet.Solution) {
	idle := 0
	strained := false
	for _, r := range sol.Routes {
		if len(r.Shipments) == 0 {
			idle++
			continue
		}
		if r.Volume() > 0.9*r.Vehicle.MaxVolume || r.Weight() > 0.9*r.Vehicle.MaxWeight {
			strained = true
		}
	}
	if idle > 0 && strained {
		v.Warnings = append(v.Warnings,
			fmt.Sprintf("%d vehicle(s) idle while others run above 90%% utilization", idle))
	}
}
