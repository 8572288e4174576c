package anneal

import (
	"errors"

	"github.com/katalvlaran/fuzzroute/sequence"
)

// Sentinel errors returned by the anneal package.
var (
	// ErrBadOptions indicates an invalid annealing configuration
	// (non-positive temperatures, cooling rate outside (0,1), negative
	// move weights, ...).
	ErrBadOptions = errors.New("anneal: invalid options")

	// ErrFleetExhausted indicates that no vehicle can take a remaining
	// shipment during initial construction; the instance is infeasible
	// for the given fleet.
	ErrFleetExhausted = errors.New("anneal: fleet capacity exhausted")

	// ErrNilNetwork indicates a nil road network.
	ErrNilNetwork = errors.New("anneal: nil network")

	// ErrNoShipments indicates an instance with nothing to assign.
	ErrNoShipments = errors.New("anneal: no shipments")
)

// MoveWeights holds the relative selection weights of the four
// neighborhood moves. Weights need not sum to 1; only ratios matter.
// A zero weight disables the move.
type MoveWeights struct {
	Swap     float64
	Transfer float64
	Relocate float64
	Reverse  float64
}

// Options configures the annealer.
//
//	InitialTemperature – starting temperature T₀ of the Metropolis schedule.
//	CoolingRate        – geometric decay factor α ∈ (0,1); T ← T·α each iteration.
//	MinTemperature     – the run stops once T drops to or below this value.
//	MaxIterations      – hard cap on iterations (including no-ops).
//	Seed               – RNG seed; 0 selects a fixed default so the zero value
//	                     still yields reproducible runs.
//	MoveRetries        – attempts per iteration to find a capacity-feasible move
//	                     before the iteration is counted as a no-op.
//	MinAcceptance      – floor on the Metropolis probability for worsening moves;
//	                     keeps late, cold iterations from freezing completely.
//	Weights            – relative move-selection weights.
//	Sequencer          – options forwarded to route re-sequencing.
type Options struct {
	InitialTemperature float64
	CoolingRate        float64
	MinTemperature     float64
	MaxIterations      int
	Seed               int64
	MoveRetries        int
	MinAcceptance      float64
	Weights            MoveWeights
	Sequencer          sequence.Options
}

// DefaultOptions returns the standard annealing schedule: T₀=2000,
// α=0.995, T_min=0.1, 1000 iterations, assignment-heavy move mix.
func DefaultOptions() Options {
	return Options{
		InitialTemperature: 2000,
		CoolingRate:        0.995,
		MinTemperature:     0.1,
		MaxIterations:      1000,
		Seed:               0,
		MoveRetries:        16,
		MinAcceptance:      1e-4,
		Weights:            MoveWeights{Swap: 0.4, Transfer: 0.3, Relocate: 0.2, Reverse: 0.1},
		Sequencer:          sequence.DefaultOptions(),
	}
}

// validate checks internal consistency of the options.
func (o Options) validate() error {
	switch {
	case o.InitialTemperature <= 0,
		o.CoolingRate <= 0 || o.CoolingRate >= 1,
		o.MinTemperature <= 0 || o.MinTemperature >= o.InitialTemperature,
		o.MaxIterations <= 0,
		o.MoveRetries <= 0,
		o.MinAcceptance < 0 || o.MinAcceptance >= 1:
		return ErrBadOptions
	}
	w := o.Weights
	if w.Swap < 0 || w.Transfer < 0 || w.Relocate < 0 || w.Reverse < 0 {
		return ErrBadOptions
	}
	if w.Swap+w.Transfer+w.Relocate+w.Reverse <= 0 {
		return ErrBadOptions
	}

	return nil
}
