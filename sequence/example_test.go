package sequence_test

import (
	"fmt"

	"github.com/katalvlaran/fuzzroute/network"
	"github.com/katalvlaran/fuzzroute/sequence"
)

// ExampleOrder sequences three drop-offs from a Chinese depot: the
// nearest stop by defuzzified travel time is visited first, and 2-opt
// keeps the corridor from zig-zagging.
func ExampleOrder() {
	nodes := []network.Node{
		{ID: "NNG", Country: "China", Type: network.NodeDepot},
		{ID: "HAN", Country: "Vietnam", Type: network.NodeDelivery},
		{ID: "VTE", Country: "Laos", Type: network.NodeDelivery},
		{ID: "BKK", Country: "Thailand", Type: network.NodeDelivery},
	}
	edges := []network.Edge{
		{From: "NNG", To: "HAN", Distance: 400, BaseTime: 100},
		{From: "NNG", To: "VTE", Distance: 1050, BaseTime: 260},
		{From: "NNG", To: "BKK", Distance: 1700, BaseTime: 460},
		{From: "HAN", To: "VTE", Distance: 650, BaseTime: 170},
		{From: "HAN", To: "BKK", Distance: 1500, BaseTime: 400},
		{From: "VTE", To: "BKK", Distance: 630, BaseTime: 160},
	}
	net, err := network.New(nodes, edges)
	if err != nil {
		fmt.Println("network:", err)
		return
	}

	order, err := sequence.Order("NNG", []string{"BKK", "VTE", "HAN"}, net, sequence.DefaultOptions())
	if err != nil {
		fmt.Println("order:", err)
		return
	}
	fmt.Println(order)

	d, _ := sequence.PathDistance("NNG", order, net)
	fmt.Printf("distance: %.0f km\n", d)

	// Output:
	// [HAN VTE BKK]
	// distance: 1680 km
}
