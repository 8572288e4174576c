package dataset

import "errors"

// Sentinel errors returned by the dataset package.
var (
	// ErrBadInstance indicates a structurally invalid instance file
	// (missing sections, malformed route names, non-positive numbers).
	ErrBadInstance = errors.New("dataset: invalid instance")

	// ErrDuplicateID indicates a repeated location, vehicle, or shipment id.
	ErrDuplicateID = errors.New("dataset: duplicate id")

	// ErrUnknownLocation indicates a reference to a location id that no
	// section of the file defines.
	ErrUnknownLocation = errors.New("dataset: unknown location")
)

// File-level JSON shapes. Field names follow the instance format, not Go
// conventions.

type rawInstance struct {
	Locations rawLocations          `json:"locations"`
	Countries map[string]rawCountry `json:"countries"`
	Fleet     []rawVehicle          `json:"fleet"`
	Shipments []rawShipment         `json:"shipments"`
}

type rawLocations struct {
	Depots          []rawLocation `json:"depots"`
	BorderCrossings []rawLocation `json:"border_crossings"`
	Deliveries      []rawLocation `json:"deliveries"`
}

type rawLocation struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Country   string   `json:"country"`
	Countries []string `json:"countries"` // border crossings span two
}

type rawCountry struct {
	TimeWindows []rawTimeWindow     `json:"time_windows"`
	Routes      map[string]rawRoute `json:"routes"`
}

type rawTimeWindow struct {
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	DelayFactor float64 `json:"delay_factor"`
}

type rawRoute struct {
	Distance float64 `json:"distance"`
	BaseTime float64 `json:"base_time"`
	RoadType string  `json:"road_type"`
}

type rawVehicle struct {
	ID             string         `json:"id"`
	Type           string         `json:"type"`
	MaxCBM         float64        `json:"max_cbm"`
	Dimensions     *rawDimensions `json:"dimensions"`
	MaxWeight      float64        `json:"max_weight"`
	Base           string         `json:"base"`
	FuelEfficiency float64        `json:"fuel_efficiency"`
}

type rawDimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type rawShipment struct {
	ID       string      `json:"id"`
	OrderID  string      `json:"order_id"`
	TotalCBM float64     `json:"total_cbm"`
	Weight   float64     `json:"weight"`
	Origin   string      `json:"origin"`
	Delivery rawDelivery `json:"delivery"`
	Price    float64     `json:"price"`
}

type rawDelivery struct {
	LocationID string `json:"location_id"`
}
