// Package fleet_test exercises route capacity accounting and the solution
// cover invariant via the public API.
package fleet_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fuzzroute/fleet"
)

func ship(id, dest string, vol, wt float64) fleet.Shipment {
	return fleet.Shipment{ID: id, Volume: vol, Weight: wt, Origin: "NNG", Destination: dest, Price: 1000}
}

func truck(id string, vol, wt float64) fleet.Vehicle {
	return fleet.Vehicle{ID: id, MaxVolume: vol, MaxWeight: wt, Base: "NNG", FuelEfficiency: 0.3}
}

func TestRoute_LoadAccounting(t *testing.T) {
	r := fleet.Route{
		Vehicle:   truck("V1", 76, 24000),
		Shipments: []fleet.Shipment{ship("S1", "HAN", 10, 4000), ship("S2", "VTE", 20, 6000)},
	}
	require.Equal(t, 30.0, r.Volume())
	require.Equal(t, 10000.0, r.Weight())
	require.NoError(t, r.CheckCapacity())

	require.True(t, r.Fits(ship("S3", "BKK", 46, 14000)))
	require.False(t, r.Fits(ship("S4", "BKK", 47, 1)), "volume overflow must fail")
	require.False(t, r.Fits(ship("S5", "BKK", 1, 14001)), "weight overflow must fail")
}

func TestRoute_CheckCapacityViolation(t *testing.T) {
	r := fleet.Route{
		Vehicle:   truck("V1", 10, 1000),
		Shipments: []fleet.Shipment{ship("S1", "HAN", 11, 10)},
	}
	require.ErrorIs(t, r.CheckCapacity(), fleet.ErrOverCapacity)
}

func TestRoute_StopsCollapseSharedDestinations(t *testing.T) {
	r := fleet.Route{
		Vehicle: truck("V1", 100, 10000),
		Shipments: []fleet.Shipment{
			ship("S1", "HAN", 1, 1), ship("S2", "VTE", 1, 1),
			ship("S3", "HAN", 1, 1), ship("S4", "BKK", 1, 1),
		},
	}
	require.Equal(t, []string{"HAN", "VTE", "BKK"}, r.Stops())
}

func TestNewSolution_EmptyFleet(t *testing.T) {
	_, err := fleet.NewSolution(nil)
	require.ErrorIs(t, err, fleet.ErrEmptyFleet)
}

func TestSolution_CloneIsDeep(t *testing.T) {
	sol, err := fleet.NewSolution([]fleet.Vehicle{truck("V1", 76, 24000)})
	require.NoError(t, err)
	sol.Routes[0].Shipments = []fleet.Shipment{ship("S1", "HAN", 1, 1)}

	cp := sol.Clone()
	cp.Routes[0].Shipments[0].ID = "MUTATED"
	cp.Routes[0].Shipments = append(cp.Routes[0].Shipments, ship("S2", "VTE", 1, 1))

	require.Equal(t, "S1", sol.Routes[0].Shipments[0].ID)
	require.Len(t, sol.Routes[0].Shipments, 1)
}

func TestSolution_ValidateExactCover(t *testing.T) {
	instance := []fleet.Shipment{ship("S1", "HAN", 1, 1), ship("S2", "VTE", 2, 2)}
	sol, err := fleet.NewSolution([]fleet.Vehicle{truck("V1", 76, 24000), truck("V2", 76, 24000)})
	require.NoError(t, err)

	// Missing S2.
	sol.Routes[0].Shipments = []fleet.Shipment{instance[0]}
	require.ErrorIs(t, sol.Validate(instance), fleet.ErrShipmentMissing)

	// Complete cover passes.
	sol.Routes[1].Shipments = []fleet.Shipment{instance[1]}
	require.NoError(t, sol.Validate(instance))

	// Duplication across vehicles fails.
	dup := sol.Clone()
	dup.Routes[1].Shipments = append(dup.Routes[1].Shipments, instance[0])
	require.ErrorIs(t, dup.Validate(instance), fleet.ErrShipmentDuplicated)

	// Foreign shipment fails.
	alien := sol.Clone()
	alien.Routes[0].Shipments = append(alien.Routes[0].Shipments, ship("SX", "BKK", 1, 1))
	require.ErrorIs(t, alien.Validate(instance), fleet.ErrUnknownShipment)
}

func TestSolution_ValidateCapacityFirst(t *testing.T) {
	instance := []fleet.Shipment{ship("S1", "HAN", 100, 100)}
	sol, err := fleet.NewSolution([]fleet.Vehicle{truck("V1", 10, 10)})
	require.NoError(t, err)
	sol.Routes[0].Shipments = []fleet.Shipment{instance[0]}
	require.ErrorIs(t, sol.Validate(instance), fleet.ErrOverCapacity)
}

func TestSolution_Counters(t *testing.T) {
	sol, err := fleet.NewSolution([]fleet.Vehicle{truck("V1", 76, 24000), truck("V2", 76, 24000)})
	require.NoError(t, err)
	sol.Routes[0].Shipments = []fleet.Shipment{ship("S1", "HAN", 1, 1), ship("S2", "VTE", 1, 1)}

	require.Equal(t, 2, sol.ShipmentCount())
	require.Equal(t, 1, sol.VehiclesUsed())
	require.Equal(t, 1, sol.RouteFor("V2"))
	require.Equal(t, -1, sol.RouteFor("V9"))
}
