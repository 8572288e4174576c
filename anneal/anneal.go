// Package anneal - the simulated-annealing engine.
//
// Optimize walks the feasible assignment space with Metropolis
// acceptance:
//
//	Δ ≤ 0                  → accept (track improvements on strict decrease)
//	Δ > 0                  → accept with probability max(exp(−Δ/T), floor)
//
// where Δ is the difference of defuzzified (centroid) total costs and T
// cools geometrically, T ← T·α, every iteration. Iterations whose retry
// budget finds no feasible move still cool the schedule and are counted
// in Stats.NoOps.
//
// The best solution is tracked under the full fuzzy order (centroid
// first, smaller spread on ties), so of two candidates with equal
// expected cost the run keeps the more certain one.
//
// Contracts:
//   - The input solution is never mutated; Result.Best is an independent
//     deep copy.
//   - Same Options.Seed and inputs ⇒ identical Result.Best, Result.Cost
//     and Stats (RunID aside).
//   - Every intermediate candidate satisfies the capacity and
//     exact-cover invariants; Optimize never returns an infeasible Best.
//
// Complexity: O(MaxIterations · (move + cost evaluation)); cost
// evaluation is linear in the number of route legs.
package anneal

import (
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/katalvlaran/fuzzroute/cost"
	"github.com/katalvlaran/fuzzroute/fleet"
	"github.com/katalvlaran/fuzzroute/fuzzy"
	"github.com/katalvlaran/fuzzroute/network"
)

// Stats aggregates what happened during one annealing run.
type Stats struct {
	RunID            string  `json:"run_id"`
	Iterations       int     `json:"iterations"`
	Accepted         int     `json:"accepted"`
	Rejected         int     `json:"rejected"`
	Improvements     int     `json:"improvements"`
	NoOps            int     `json:"no_ops"`
	AcceptanceRate   float64 `json:"acceptance_rate"`
	FinalTemperature float64 `json:"final_temperature"`
}

// Result is the outcome of one annealing run.
type Result struct {
	Best  fleet.Solution
	Cost  fuzzy.Triangular
	Stats Stats
}

// Optimize improves the given feasible solution by simulated annealing
// and returns the best solution encountered, its fuzzy cost, and run
// statistics.
//
// Errors: ErrBadOptions, ErrNilNetwork, plus cost/network sentinels when
// the initial solution references unreachable nodes (fatal; the schedule
// never starts).
func Optimize(initial fleet.Solution, net *network.Network, model cost.Model, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	if net == nil {
		return Result{}, ErrNilNetwork
	}

	rng := rngFromSeed(opts.Seed)

	current := initial.Clone()
	currentCost, err := model.SolutionCost(current, net)
	if err != nil {
		return Result{}, err
	}

	best := current.Clone()
	bestCost := currentCost

	var stats Stats
	temp := opts.InitialTemperature

	for iter := 0; iter < opts.MaxIterations && temp > opts.MinTemperature; iter++ {
		stats.Iterations++

		cand, ok, err := neighbor(current, net, opts, rng)
		if err != nil {
			return Result{}, err
		}
		if !ok {
			// Retry budget exhausted; the schedule still cools.
			stats.NoOps++
			temp *= opts.CoolingRate
			continue
		}

		candCost, err := model.SolutionCost(cand, net)
		if err != nil {
			return Result{}, err
		}

		delta := candCost.Centroid() - currentCost.Centroid()
		if accept(delta, temp, opts.MinAcceptance, rng) {
			stats.Accepted++
			if delta < 0 {
				stats.Improvements++
			}
			current = cand
			currentCost = candCost

			if fuzzy.Less(currentCost, bestCost) {
				best = current.Clone()
				bestCost = currentCost
			}
		} else {
			stats.Rejected++
		}

		temp *= opts.CoolingRate
	}

	stats.FinalTemperature = temp
	if moves := stats.Accepted + stats.Rejected; moves > 0 {
		stats.AcceptanceRate = float64(stats.Accepted) / float64(moves)
	}
	stats.RunID = uuid.NewString()

	return Result{Best: best, Cost: bestCost, Stats: stats}, nil
}

// accept implements the Metropolis criterion with a probability floor
// for worsening moves.
func accept(delta, temp, floor float64, rng *rand.Rand) bool {
	if delta <= 0 {
		return true
	}
	p := math.Exp(-delta / temp)
	if p < floor {
		p = floor
	}

	return rng.Float64() < p
}
