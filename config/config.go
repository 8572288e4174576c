package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fuzzroute/anneal"
	"github.com/katalvlaran/fuzzroute/cost"
	"github.com/katalvlaran/fuzzroute/fuzzy"
	"github.com/katalvlaran/fuzzroute/sequence"
)

// ErrBadConfig indicates a config file that parsed but fails validation.
var ErrBadConfig = errors.New("config: invalid configuration")

// Config is the full engine configuration.
type Config struct {
	Data      string    `yaml:"data"`
	Output    string    `yaml:"output"`
	Annealing Annealing `yaml:"annealing"`
	Sequencer Sequencer `yaml:"sequencer"`
	Rates     Rates     `yaml:"rates"`
}

// Annealing mirrors anneal.Options for YAML.
type Annealing struct {
	InitialTemperature float64     `yaml:"initial_temperature"`
	CoolingRate        float64     `yaml:"cooling_rate"`
	MinTemperature     float64     `yaml:"min_temperature"`
	MaxIterations      int         `yaml:"max_iterations"`
	Seed               int64       `yaml:"seed"`
	MoveRetries        int         `yaml:"move_retries"`
	MinAcceptance      float64     `yaml:"min_acceptance"`
	MoveWeights        MoveWeights `yaml:"move_weights"`
}

// MoveWeights mirrors anneal.MoveWeights for YAML.
type MoveWeights struct {
	Swap     float64 `yaml:"swap"`
	Transfer float64 `yaml:"transfer"`
	Relocate float64 `yaml:"relocate"`
	Reverse  float64 `yaml:"reverse"`
}

// Sequencer mirrors sequence.Options for YAML.
type Sequencer struct {
	Eps       float64 `yaml:"eps"`
	MaxPasses int     `yaml:"max_passes"`
}

// Rates overrides the cost model's calibrated defaults. Scalars are
// pointers so an explicit zero in the file is distinguishable from an
// absent key; maps are merged over the defaults entry by entry.
type Rates struct {
	FuelPricePerLiter  *float64 `yaml:"fuel_price_per_liter"`
	HourlyRate         *float64 `yaml:"hourly_rate"`
	PerDiem            *float64 `yaml:"per_diem"`
	DrivingHoursPerDay *float64 `yaml:"driving_hours_per_day"`
	RestHoursPerDay    *float64 `yaml:"rest_hours_per_day"`
	AverageSpeedKmh    *float64 `yaml:"average_speed_kmh"`
	Overhead           *float64 `yaml:"overhead"`
	Emergency          *float64 `yaml:"emergency"`
	DriverExperience   *float64 `yaml:"driver_experience"`
	DefaultTaxRate     *float64 `yaml:"default_tax_rate"`
	DefaultCustomsFee  *float64 `yaml:"default_customs_fee"`
	Spread             *float64 `yaml:"spread"`

	CustomsDelay *[3]float64 `yaml:"customs_delay"` // [min, typical, max] hours

	TaxRates map[string]float64 `yaml:"tax_rates"`
}

// Default returns the configuration matching the engine's built-in
// defaults, with no data or output paths set.
func Default() Config {
	a := anneal.DefaultOptions()
	s := sequence.DefaultOptions()

	return Config{
		Annealing: Annealing{
			InitialTemperature: a.InitialTemperature,
			CoolingRate:        a.CoolingRate,
			MinTemperature:     a.MinTemperature,
			MaxIterations:      a.MaxIterations,
			Seed:               a.Seed,
			MoveRetries:        a.MoveRetries,
			MinAcceptance:      a.MinAcceptance,
			MoveWeights: MoveWeights{
				Swap:     a.Weights.Swap,
				Transfer: a.Weights.Transfer,
				Relocate: a.Weights.Relocate,
				Reverse:  a.Weights.Reverse,
			},
		},
		Sequencer: Sequencer{Eps: s.Eps, MaxPasses: s.MaxPasses},
	}
}

// Load reads a YAML config file over the defaults. Unknown keys are
// rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %v: %w", path, err, ErrBadConfig)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges the YAML schema cannot express.
func (c Config) Validate() error {
	a := c.Annealing
	switch {
	case a.InitialTemperature <= 0,
		a.CoolingRate <= 0 || a.CoolingRate >= 1,
		a.MinTemperature <= 0 || a.MinTemperature >= a.InitialTemperature,
		a.MaxIterations <= 0,
		a.MoveRetries <= 0,
		a.MinAcceptance < 0 || a.MinAcceptance >= 1:
		return fmt.Errorf("config: annealing: %w", ErrBadConfig)
	}
	w := a.MoveWeights
	if w.Swap < 0 || w.Transfer < 0 || w.Relocate < 0 || w.Reverse < 0 ||
		w.Swap+w.Transfer+w.Relocate+w.Reverse <= 0 {
		return fmt.Errorf("config: move weights: %w", ErrBadConfig)
	}
	if c.Sequencer.Eps < 0 || c.Sequencer.MaxPasses < 0 {
		return fmt.Errorf("config: sequencer: %w", ErrBadConfig)
	}
	if err := c.CostRates().Validate(); err != nil {
		return fmt.Errorf("config: rates: %v: %w", err, ErrBadConfig)
	}

	return nil
}

// AnnealOptions converts the configuration into engine options,
// sequencer included.
func (c Config) AnnealOptions() anneal.Options {
	return anneal.Options{
		InitialTemperature: c.Annealing.InitialTemperature,
		CoolingRate:        c.Annealing.CoolingRate,
		MinTemperature:     c.Annealing.MinTemperature,
		MaxIterations:      c.Annealing.MaxIterations,
		Seed:               c.Annealing.Seed,
		MoveRetries:        c.Annealing.MoveRetries,
		MinAcceptance:      c.Annealing.MinAcceptance,
		Weights: anneal.MoveWeights{
			Swap:     c.Annealing.MoveWeights.Swap,
			Transfer: c.Annealing.MoveWeights.Transfer,
			Relocate: c.Annealing.MoveWeights.Relocate,
			Reverse:  c.Annealing.MoveWeights.Reverse,
		},
		Sequencer: c.SequenceOptions(),
	}
}

// SequenceOptions converts the sequencer section.
func (c Config) SequenceOptions() sequence.Options {
	return sequence.Options{Eps: c.Sequencer.Eps, MaxPasses: c.Sequencer.MaxPasses}
}

// CostRates applies the file's overrides to the calibrated defaults.
func (c Config) CostRates() cost.Rates {
	r := cost.DefaultRates()
	o := c.Rates

	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&r.FuelPricePerLiter, o.FuelPricePerLiter)
	set(&r.HourlyRate, o.HourlyRate)
	set(&r.PerDiem, o.PerDiem)
	set(&r.DrivingHoursPerDay, o.DrivingHoursPerDay)
	set(&r.RestHoursPerDay, o.RestHoursPerDay)
	set(&r.AverageSpeedKmh, o.AverageSpeedKmh)
	set(&r.Overhead, o.Overhead)
	set(&r.Emergency, o.Emergency)
	set(&r.DriverExperience, o.DriverExperience)
	set(&r.DefaultTaxRate, o.DefaultTaxRate)
	set(&r.DefaultCustomsFee, o.DefaultCustomsFee)
	set(&r.Spread, o.Spread)

	if o.CustomsDelay != nil {
		r.CustomsDelay = fuzzy.Triangular{A: o.CustomsDelay[0], B: o.CustomsDelay[1], C: o.CustomsDelay[2]}
	}
	for country, rate := range o.TaxRates {
		r.TaxRates[country] = rate
	}

	return r
}
