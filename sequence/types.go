package sequence

import "errors"

// Sentinel errors returned by the sequence package.
var (
	// ErrBadOptions indicates a negative tolerance or pass cap.
	ErrBadOptions = errors.New("sequence: invalid options")

	// ErrDuplicateStop indicates the same stop id appearing twice in the
	// input; stop lists must be unique destinations.
	ErrDuplicateStop = errors.New("sequence: duplicate stop id")
)

// Options configures the sequencer.
//
// Eps       – improvement tolerance: a 2-opt move is accepted only when it
//             decreases the defuzzified path time by more than Eps.
// MaxPasses – cap on accepted 2-opt moves; 0 means unlimited (run to a
//             local optimum).
type Options struct {
	Eps       float64
	MaxPasses int
}

// DefaultOptions returns the standard sequencer configuration: a 1e-9
// tolerance (absorbing floating-point noise only) and no pass cap.
func DefaultOptions() Options {
	return Options{Eps: 1e-9, MaxPasses: 0}
}

// validate checks internal consistency of the options.
func (o Options) validate() error {
	if o.Eps < 0 || o.MaxPasses < 0 {
		return ErrBadOptions
	}

	return nil
}
