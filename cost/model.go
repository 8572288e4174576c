// Package cost - the pricing engine.
//
// Model methods are pure functions of (route/solution, network, rates):
// no mutation, no hidden state, no RNG. All uncertainty enters through
// fuzzy travel times, the customs-delay TFN, the driver salary bands and
// the relative fuzzification of crisp components.
package cost

import (
	"github.com/katalvlaran/fuzzroute/fleet"
	"github.com/katalvlaran/fuzzroute/fuzzy"
	"github.com/katalvlaran/fuzzroute/network"
)

// defaultFuelEfficiency (liters per km) applies when a vehicle record
// carries no consumption figure.
const defaultFuelEfficiency = 0.3

// Model prices routes and solutions under a fixed Rates set.
type Model struct {
	rates Rates
}

// NewModel validates the rates and returns a pricing model.
func NewModel(rates Rates) (Model, error) {
	if err := rates.Validate(); err != nil {
		return Model{}, err
	}

	return Model{rates: rates}, nil
}

// Rates returns the model's parameter set.
func (m Model) Rates() Rates { return m.rates }

// Breakdown itemizes the fuzzy cost of one route. TravelTime is in hours.
type Breakdown struct {
	Distance        float64
	BorderCrossings int
	TripDays        int

	TravelTime fuzzy.Triangular // hours on the road, fuzzy
	Fuel       float64
	CustomsFee float64
	Tax        float64
	PerDiem    float64
	Fixed      float64 // overhead + emergency reserve

	CustomsDelay fuzzy.Triangular // priced delay across all crossings
	Driver       fuzzy.Triangular // salary band × days × experience

	Total fuzzy.Triangular
}

// RouteCost returns the fuzzy cost of one vehicle route. Empty routes cost
// zero. Errors from the network (unknown node, no route) are fatal and
// propagate unchanged.
func (m Model) RouteCost(r fleet.Route, net *network.Network) (fuzzy.Triangular, error) {
	bd, err := m.RouteBreakdown(r, net)
	if err != nil {
		return fuzzy.Triangular{}, err
	}

	return bd.Total, nil
}

// RouteBreakdown itemizes the cost of one route: travel along
// base → stops in visiting order, customs at each border crossing, tax on
// the goods delivered at each stop, fuzzy driver salary over the trip
// days, and the crisp per-trip components fuzzified with the configured
// spread.
//
// Complexity: O(stops) network lookups.
func (m Model) RouteBreakdown(r fleet.Route, net *network.Network) (Breakdown, error) {
	stops := r.Stops()
	if len(stops) == 0 {
		return Breakdown{Total: fuzzy.Zero()}, nil
	}

	// Goods value delivered per stop, for ad-valorem tax.
	valueAt := make(map[string]float64, len(stops))
	for i := range r.Shipments {
		valueAt[r.Shipments[i].Destination] += r.Shipments[i].Price
	}

	var (
		bd   Breakdown
		prev = r.Vehicle.Base
		tt   = fuzzy.Zero() // minutes, converted to hours below
	)
	for _, stop := range stops {
		d, err := net.Distance(prev, stop)
		if err != nil {
			return Breakdown{}, err
		}
		legTime, err := net.TravelTime(prev, stop)
		if err != nil {
			return Breakdown{}, err
		}
		cross, err := net.IsBorderCrossing(prev, stop)
		if err != nil {
			return Breakdown{}, err
		}

		bd.Distance += d
		tt = tt.Add(legTime)

		if cross {
			bd.BorderCrossings++
			fromC, _ := net.Country(prev)
			toC, _ := net.Country(stop)
			bd.CustomsFee += m.rates.customsFee(fromC, toC)
		}

		toC, err := net.Country(stop)
		if err != nil {
			return Breakdown{}, err
		}
		bd.Tax += valueAt[stop] * m.rates.taxRate(toC)

		prev = stop
	}

	bd.TravelTime = tt.Scale(1.0 / 60.0)

	// Trip duration from planning speed plus the most-likely customs hold
	// per crossing; used for per-diem and salary, not for pricing delay.
	drivingHours := bd.Distance/m.rates.AverageSpeedKmh +
		float64(bd.BorderCrossings)*m.rates.CustomsDelay.B
	bd.TripDays = m.tripDays(drivingHours)

	eff := r.Vehicle.FuelEfficiency
	if eff <= 0 {
		eff = defaultFuelEfficiency
	}
	bd.Fuel = bd.Distance * eff * m.rates.FuelPricePerLiter
	bd.PerDiem = m.rates.PerDiem * float64(bd.TripDays)
	bd.Fixed = m.rates.Overhead + m.rates.Emergency

	bd.CustomsDelay = m.rates.CustomsDelay.Scale(float64(bd.BorderCrossings) * m.rates.HourlyRate)
	bd.Driver = m.driverDailyRate(bd.Distance).
		Scale(float64(bd.TripDays) * m.rates.DriverExperience)

	crisp, err := fuzzy.FromCrisp(
		bd.Fuel+bd.CustomsFee+bd.Tax+bd.PerDiem+bd.Fixed, m.rates.Spread)
	if err != nil {
		return Breakdown{}, err
	}

	bd.Total = crisp.
		Add(bd.TravelTime.Scale(m.rates.HourlyRate)).
		Add(bd.CustomsDelay).
		Add(bd.Driver)

	return bd, nil
}

// SolutionCost returns the fuzzy sum of all route costs.
func (m Model) SolutionCost(s fleet.Solution, net *network.Network) (fuzzy.Triangular, error) {
	total := fuzzy.Zero()
	for i := range s.Routes {
		rc, err := m.RouteCost(s.Routes[i], net)
		if err != nil {
			return fuzzy.Triangular{}, err
		}
		total = total.Add(rc)
	}

	return total, nil
}

// driverDailyRate returns the fuzzy daily salary band for a route length.
// Bands are calibrated against historical driver payrolls: short hauls pay
// a lower daily rate than multi-country long hauls.
func (m Model) driverDailyRate(distance float64) fuzzy.Triangular {
	switch {
	case distance <= 500:
		return fuzzy.Triangular{A: 24.0, B: 26.5, C: 29.0}
	case distance <= 1500:
		return fuzzy.Triangular{A: 27.0, B: 29.5, C: 32.0}
	case distance <= 3000:
		return fuzzy.Triangular{A: 29.0, B: 31.0, C: 33.0}
	default:
		return fuzzy.Triangular{A: 31.0, B: 32.5, C: 34.0}
	}
}

// tripDays converts driving hours into calendar trip days under the daily
// driving limit and mandated rest.
func (m Model) tripDays(drivingHours float64) int {
	cycle := m.rates.DrivingHoursPerDay + m.rates.RestHoursPerDay
	days := int((drivingHours+m.rates.RestHoursPerDay-1)/cycle) + 1
	if days < 1 {
		days = 1
	}

	return days
}
