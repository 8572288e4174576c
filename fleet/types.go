package fleet

import "errors"

// Sentinel errors returned by the fleet package.
var (
	// ErrOverCapacity indicates a route whose summed shipment volume or
	// weight exceeds its vehicle's capacity.
	ErrOverCapacity = errors.New("fleet: route exceeds vehicle capacity")

	// ErrShipmentMissing indicates a problem-instance shipment absent from
	// every route of a solution.
	ErrShipmentMissing = errors.New("fleet: shipment missing from solution")

	// ErrShipmentDuplicated indicates a shipment appearing more than once
	// across a solution's routes.
	ErrShipmentDuplicated = errors.New("fleet: shipment assigned more than once")

	// ErrUnknownShipment indicates a routed shipment that does not belong
	// to the problem instance.
	ErrUnknownShipment = errors.New("fleet: unknown shipment in solution")

	// ErrEmptyFleet indicates that no vehicles were supplied.
	ErrEmptyFleet = errors.New("fleet: no vehicles available")
)

// Shipment is a single cargo consignment. Immutable once loaded.
type Shipment struct {
	ID          string  // unique shipment identifier
	OrderID     string  // customer order this shipment belongs to
	Volume      float64 // m³ (the 1D packing dimension)
	Weight      float64 // kg
	Origin      string  // origin node id
	Destination string  // delivery node id
	Price       float64 // declared goods value
}

// Vehicle is a truck of the fleet. Immutable.
type Vehicle struct {
	ID             string  // unique vehicle identifier
	Type           string  // fleet class label (informational)
	MaxVolume      float64 // m³
	MaxWeight      float64 // kg
	Base           string  // home depot node id
	FuelEfficiency float64 // liters per km
}
