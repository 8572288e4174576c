// Package config loads engine configuration from YAML.
//
// A config file tunes the annealing schedule, the sequencer, and the
// cost rates without recompiling:
//
//	data: instances/sea_corridor.json
//	output: results.json
//	annealing:
//	  initial_temperature: 2000
//	  cooling_rate: 0.995
//	  min_temperature: 0.1
//	  max_iterations: 1000
//	  seed: 42
//	  move_weights: {swap: 0.4, transfer: 0.3, relocate: 0.2, reverse: 0.1}
//	sequencer:
//	  eps: 1e-9
//	rates:
//	  fuel_price_per_liter: 0.8
//	  hourly_rate: 4.5
//	  tax_rates:
//	    Thailand: 0.07
//
// Everything is optional: Load starts from Default() and the file only
// overrides what it names (rate scalars are pointers for exactly that
// reason, so an explicit zero is distinguishable from an absent key).
// Unknown keys fail the load; a typo never silently runs on defaults.
package config
