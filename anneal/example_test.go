package anneal_test

import (
	"fmt"

	"github.com/katalvlaran/fuzzroute/anneal"
	"github.com/katalvlaran/fuzzroute/cost"
	"github.com/katalvlaran/fuzzroute/fleet"
	"github.com/katalvlaran/fuzzroute/network"
)

// ExampleOptimize builds an initial assignment for a two-truck corridor
// instance and anneals it under a fixed seed. The run is deterministic,
// so the example output is stable.
func ExampleOptimize() {
	nodes := []network.Node{
		{ID: "NNG", Country: "China", Type: network.NodeDepot},
		{ID: "HAN", Country: "Vietnam", Type: network.NodeDelivery},
		{ID: "BKK", Country: "Thailand", Type: network.NodeDelivery},
	}
	edges := []network.Edge{
		{From: "NNG", To: "HAN", Distance: 400, BaseTime: 100},
		{From: "NNG", To: "BKK", Distance: 1700, BaseTime: 460},
		{From: "HAN", To: "BKK", Distance: 1500, BaseTime: 400},
	}
	net, err := network.New(nodes, edges)
	if err != nil {
		fmt.Println("network:", err)
		return
	}

	model, err := cost.NewModel(cost.DefaultRates())
	if err != nil {
		fmt.Println("model:", err)
		return
	}

	vehicles := []fleet.Vehicle{
		{ID: "V1", Type: "standard", MaxVolume: 76, MaxWeight: 24000, Base: "NNG", FuelEfficiency: 0.3},
		{ID: "V2", Type: "standard", MaxVolume: 76, MaxWeight: 24000, Base: "NNG", FuelEfficiency: 0.3},
	}
	shipments := []fleet.Shipment{
		{ID: "S1", OrderID: "O-1", Volume: 20, Weight: 8000, Origin: "NNG", Destination: "HAN", Price: 5000},
		{ID: "S2", OrderID: "O-2", Volume: 30, Weight: 9000, Origin: "NNG", Destination: "BKK", Price: 8000},
	}

	opts := anneal.DefaultOptions()
	opts.Seed = 42
	opts.MaxIterations = 200

	initial, err := anneal.BuildInitial(vehicles, shipments, net, opts)
	if err != nil {
		fmt.Println("initial:", err)
		return
	}

	res, err := anneal.Optimize(initial, net, model, opts)
	if err != nil {
		fmt.Println("optimize:", err)
		return
	}

	fmt.Println("feasible:", res.Best.Validate(shipments) == nil)
	fmt.Println("shipments placed:", res.Best.ShipmentCount())
	fmt.Println("iterations:", res.Stats.Iterations)

	// Output:
	// feasible: true
	// shipments placed: 2
	// iterations: 200
}
