package cost

import (
	"errors"
	"sort"

	"github.com/katalvlaran/fuzzroute/fuzzy"
)

// Sentinel errors returned by the cost package.
var (
	// ErrBadRates indicates rates failing validation (non-positive speed,
	// negative prices, or a malformed customs-delay TFN).
	ErrBadRates = errors.New("cost: invalid rate parameters")
)

// Rates holds every pricing parameter of the cost model. The defaults are
// calibrated against historical cross-border trips (see DefaultRates).
type Rates struct {
	FuelPricePerLiter  float64 // USD per liter
	HourlyRate         float64 // USD per vehicle-hour of travel or delay
	PerDiem            float64 // USD per driver-day
	DrivingHoursPerDay float64 // legal daily driving limit
	RestHoursPerDay    float64 // mandated daily rest
	AverageSpeedKmh    float64 // free-flow planning speed
	Overhead           float64 // fixed USD per trip
	Emergency          float64 // fixed USD reserve per trip
	DriverExperience   float64 // salary multiplier, 1.0 = nominal

	// CustomsDelay is the uncertain hold-up at one border crossing, in
	// hours. Priced at HourlyRate on top of the crisp CustomsFees.
	CustomsDelay fuzzy.Triangular

	// TaxRates maps destination country to the ad-valorem tax charged on
	// goods delivered there; DefaultTaxRate applies to unlisted countries.
	TaxRates       map[string]float64
	DefaultTaxRate float64

	// CustomsFees maps an unordered country pair (see PairKey) to the
	// crisp crossing fee; DefaultCustomsFee applies to unlisted pairs.
	CustomsFees       map[string]float64
	DefaultCustomsFee float64

	// Spread is the relative fuzzification applied to the crisp cost
	// components (0.05 ⇒ ±5%).
	Spread float64
}

// PairKey returns the canonical lookup key for an unordered country pair.
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}

	return a + "|" + b
}

// DefaultRates returns the calibrated parameter set for the South-East
// Asian corridor instances.
func DefaultRates() Rates {
	return Rates{
		FuelPricePerLiter:  0.8,
		HourlyRate:         4.5,
		PerDiem:            18.0,
		DrivingHoursPerDay: 10.0,
		RestHoursPerDay:    10.0,
		AverageSpeedKmh:    60.0,
		Overhead:           100.0,
		Emergency:          200.0,
		DriverExperience:   1.0,
		CustomsDelay:       fuzzy.Triangular{A: 2, B: 4, C: 6},
		TaxRates: map[string]float64{
			"China": 0.10, "Vietnam": 0.10, "Laos": 0.10, "Cambodia": 0.10,
			"Thailand": 0.07, "Myanmar": 0.12, "Malaysia": 0.10, "Singapore": 0.08,
		},
		DefaultTaxRate: 0.10,
		CustomsFees: map[string]float64{
			PairKey("China", "Vietnam"):      160,
			PairKey("China", "Laos"):         162,
			PairKey("Vietnam", "Laos"):       162,
			PairKey("Vietnam", "Cambodia"):   160,
			PairKey("Laos", "Cambodia"):      160,
			PairKey("Laos", "Thailand"):      161,
			PairKey("Laos", "Myanmar"):       160,
			PairKey("Cambodia", "Thailand"):  160,
			PairKey("Myanmar", "Thailand"):   160,
			PairKey("Thailand", "Malaysia"):  158,
			PairKey("Malaysia", "Singapore"): 158,
		},
		DefaultCustomsFee: 160.0,
		Spread:            0.05,
	}
}

// Validate checks internal consistency of the rates.
func (r Rates) Validate() error {
	if r.AverageSpeedKmh <= 0 || r.DrivingHoursPerDay <= 0 {
		return ErrBadRates
	}
	if r.FuelPricePerLiter < 0 || r.HourlyRate < 0 || r.PerDiem < 0 ||
		r.Overhead < 0 || r.Emergency < 0 || r.DriverExperience < 0 ||
		r.Spread < 0 || r.DefaultTaxRate < 0 || r.DefaultCustomsFee < 0 {
		return ErrBadRates
	}
	if r.CustomsDelay.A > r.CustomsDelay.B || r.CustomsDelay.B > r.CustomsDelay.C || r.CustomsDelay.A < 0 {
		return ErrBadRates
	}

	return nil
}

// taxRate resolves the ad-valorem rate for a destination country.
func (r Rates) taxRate(country string) float64 {
	if v, ok := r.TaxRates[country]; ok {
		return v
	}

	return r.DefaultTaxRate
}

// customsFee resolves the crisp crossing fee for a country pair.
func (r Rates) customsFee(a, b string) float64 {
	if v, ok := r.CustomsFees[PairKey(a, b)]; ok {
		return v
	}

	return r.DefaultCustomsFee
}

// Countries returns the tax-listed countries in sorted order (reporting).
func (r Rates) Countries() []string {
	out := make([]string, 0, len(r.TaxRates))
	for c := range r.TaxRates {
		out = append(out, c)
	}
	sort.Strings(out)

	return out
}
