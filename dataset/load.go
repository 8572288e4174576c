// Package dataset - instance loading and structural validation.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/katalvlaran/fuzzroute/fleet"
	"github.com/katalvlaran/fuzzroute/network"
)

// Instance is a fully validated problem instance, ready for the engine.
type Instance struct {
	Nodes     []network.Node
	Edges     []network.Edge
	Vehicles  []fleet.Vehicle
	Shipments []fleet.Shipment
}

// Load reads and parses an instance file.
func Load(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes and validates raw instance JSON.
//
// Errors: ErrBadInstance, ErrDuplicateID, ErrUnknownLocation; JSON syntax
// errors are wrapped with ErrBadInstance.
func Parse(data []byte) (*Instance, error) {
	var raw rawInstance
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("dataset: decode: %v: %w", err, ErrBadInstance)
	}

	inst := &Instance{}
	known := make(map[string]bool)

	addNode := func(loc rawLocation, typ string) error {
		if loc.ID == "" {
			return fmt.Errorf("dataset: %s with empty id: %w", typ, ErrBadInstance)
		}
		if known[loc.ID] {
			return fmt.Errorf("dataset: location %s: %w", loc.ID, ErrDuplicateID)
		}
		known[loc.ID] = true

		country := loc.Country
		if country == "" && len(loc.Countries) > 0 {
			country = loc.Countries[0]
		}
		inst.Nodes = append(inst.Nodes, network.Node{ID: loc.ID, Name: loc.Name, Country: country, Type: typ})

		return nil
	}

	for _, d := range raw.Locations.Depots {
		if err := addNode(d, network.NodeDepot); err != nil {
			return nil, err
		}
	}
	for _, b := range raw.Locations.BorderCrossings {
		if err := addNode(b, network.NodeBorder); err != nil {
			return nil, err
		}
	}
	for _, d := range raw.Locations.Deliveries {
		if err := addNode(d, network.NodeDelivery); err != nil {
			return nil, err
		}
	}
	if len(inst.Nodes) == 0 {
		return nil, fmt.Errorf("dataset: no locations: %w", ErrBadInstance)
	}

	if err := parseEdges(raw.Countries, known, inst); err != nil {
		return nil, err
	}
	if err := parseFleet(raw.Fleet, known, inst); err != nil {
		return nil, err
	}
	if err := parseShipments(raw.Shipments, known, inst); err != nil {
		return nil, err
	}

	return inst, nil
}

// BuildNetwork assembles the road network from the instance.
func (inst *Instance) BuildNetwork() (*network.Network, error) {
	return network.New(inst.Nodes, inst.Edges)
}

// parseEdges flattens per-country route maps into edges; the country's
// time windows become every route's delay factors.
func parseEdges(countries map[string]rawCountry, known map[string]bool, inst *Instance) error {
	for country, c := range countries {
		factors := make([]float64, 0, len(c.TimeWindows))
		for _, tw := range c.TimeWindows {
			if tw.DelayFactor <= 0 {
				return fmt.Errorf("dataset: country %s: delay factor %.2f: %w",
					country, tw.DelayFactor, ErrBadInstance)
			}
			factors = append(factors, tw.DelayFactor)
		}

		for name, r := range c.Routes {
			ends := strings.Split(name, "-")
			if len(ends) != 2 || ends[0] == "" || ends[1] == "" {
				return fmt.Errorf("dataset: route name %q: %w", name, ErrBadInstance)
			}
			for _, end := range ends {
				if !known[end] {
					return fmt.Errorf("dataset: route %s: %s: %w", name, end, ErrUnknownLocation)
				}
			}
			if r.Distance <= 0 || r.BaseTime <= 0 {
				return fmt.Errorf("dataset: route %s: non-positive distance or time: %w",
					name, ErrBadInstance)
			}

			inst.Edges = append(inst.Edges, network.Edge{
				From:         ends[0],
				To:           ends[1],
				Distance:     r.Distance,
				BaseTime:     r.BaseTime,
				RoadType:     r.RoadType,
				DelayFactors: factors,
			})
		}
	}
	if len(inst.Edges) == 0 {
		return fmt.Errorf("dataset: no routes: %w", ErrBadInstance)
	}

	// Map iteration order is random; keep the instance representation
	// stable across loads.
	sort.Slice(inst.Edges, func(a, b int) bool {
		ea, eb := inst.Edges[a], inst.Edges[b]
		if ea.From != eb.From {
			return ea.From < eb.From
		}

		return ea.To < eb.To
	})

	return nil
}

func parseFleet(raw []rawVehicle, known map[string]bool, inst *Instance) error {
	seen := make(map[string]bool, len(raw))
	for _, v := range raw {
		if v.ID == "" {
			return fmt.Errorf("dataset: vehicle with empty id: %w", ErrBadInstance)
		}
		if seen[v.ID] {
			return fmt.Errorf("dataset: vehicle %s: %w", v.ID, ErrDuplicateID)
		}
		seen[v.ID] = true

		volume := v.MaxCBM
		if volume == 0 && v.Dimensions != nil {
			volume = v.Dimensions.Length * v.Dimensions.Width * v.Dimensions.Height
		}
		if volume <= 0 || v.MaxWeight <= 0 {
			return fmt.Errorf("dataset: vehicle %s: non-positive capacity: %w", v.ID, ErrBadInstance)
		}
		if !known[v.Base] {
			return fmt.Errorf("dataset: vehicle %s: base %s: %w", v.ID, v.Base, ErrUnknownLocation)
		}

		inst.Vehicles = append(inst.Vehicles, fleet.Vehicle{
			ID:             v.ID,
			Type:           v.Type,
			MaxVolume:      volume,
			MaxWeight:      v.MaxWeight,
			Base:           v.Base,
			FuelEfficiency: v.FuelEfficiency,
		})
	}
	if len(inst.Vehicles) == 0 {
		return fmt.Errorf("dataset: empty fleet: %w", ErrBadInstance)
	}

	return nil
}

func parseShipments(raw []rawShipment, known map[string]bool, inst *Instance) error {
	seen := make(map[string]bool, len(raw))
	for _, s := range raw {
		if s.ID == "" {
			return fmt.Errorf("dataset: shipment with empty id: %w", ErrBadInstance)
		}
		if seen[s.ID] {
			return fmt.Errorf("dataset: shipment %s: %w", s.ID, ErrDuplicateID)
		}
		seen[s.ID] = true

		if s.TotalCBM <= 0 || s.Weight <= 0 {
			return fmt.Errorf("dataset: shipment %s: non-positive volume or weight: %w",
				s.ID, ErrBadInstance)
		}
		if !known[s.Origin] {
			return fmt.Errorf("dataset: shipment %s: origin %s: %w", s.ID, s.Origin, ErrUnknownLocation)
		}
		if !known[s.Delivery.LocationID] {
			return fmt.Errorf("dataset: shipment %s: delivery %s: %w",
				s.ID, s.Delivery.LocationID, ErrUnknownLocation)
		}

		inst.Shipments = append(inst.Shipments, fleet.Shipment{
			ID:          s.ID,
			OrderID:     s.OrderID,
			Volume:      s.TotalCBM,
			Weight:      s.Weight,
			Origin:      s.Origin,
			Destination: s.Delivery.LocationID,
			Price:       s.Price,
		})
	}
	if len(inst.Shipments) == 0 {
		return fmt.Errorf("dataset: no shipments: %w", ErrBadInstance)
	}

	return nil
}
