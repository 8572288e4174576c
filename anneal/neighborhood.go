// Package anneal - neighborhood moves.
//
// One candidate per iteration: pick a move kind by weight, try to apply
// it to a clone of the current solution. Application can fail (not enough
// routes, capacity would break); the caller retries up to
// Options.MoveRetries times before declaring a no-op iteration.
//
// Feasibility is enforced here, not by penalty terms: a move that would
// overload a vehicle is simply not produced, so every evaluated candidate
// satisfies the capacity invariants.
//
// Assignment moves (swap, transfer) change which vehicle carries what, so
// the touched routes are re-sequenced afterwards. Ordering moves
// (relocate, reverse) ARE the perturbation of the visiting order and are
// deliberately not re-sequenced; Metropolis decides whether the new order
// survives.
package anneal

import (
	"math/rand"

	"github.com/katalvlaran/fuzzroute/fleet"
	"github.com/katalvlaran/fuzzroute/network"
	"github.com/katalvlaran/fuzzroute/sequence"
)

// moveKind enumerates the neighborhood moves.
type moveKind int

const (
	moveSwap moveKind = iota
	moveTransfer
	moveRelocate
	moveReverse
)

// pickMove samples a move kind proportionally to the configured weights.
func pickMove(rng *rand.Rand, w MoveWeights) moveKind {
	total := w.Swap + w.Transfer + w.Relocate + w.Reverse
	x := rng.Float64() * total
	if x < w.Swap {
		return moveSwap
	}
	x -= w.Swap
	if x < w.Transfer {
		return moveTransfer
	}
	x -= w.Transfer
	if x < w.Relocate {
		return moveRelocate
	}

	return moveReverse
}

// neighbor produces one feasible candidate next to cur, or ok=false when
// no move could be applied within the retry budget. cur is never mutated.
func neighbor(cur fleet.Solution, net *network.Network, opts Options, rng *rand.Rand) (fleet.Solution, bool, error) {
	for attempt := 0; attempt < opts.MoveRetries; attempt++ {
		cand := cur.Clone()

		var (
			applied bool
			touched []int
		)
		switch pickMove(rng, opts.Weights) {
		case moveSwap:
			applied, touched = applySwap(&cand, rng)
		case moveTransfer:
			applied, touched = applyTransfer(&cand, rng)
		case moveRelocate:
			applied = applyRelocate(&cand, rng)
		case moveReverse:
			applied = applyReverse(&cand, rng)
		}
		if !applied {
			continue
		}

		for _, i := range touched {
			seq, err := sequence.SequenceRoute(cand.Routes[i], net, opts.Sequencer)
			if err != nil {
				return fleet.Solution{}, false, err
			}
			cand.Routes[i] = seq
		}

		return cand, true, nil
	}

	return fleet.Solution{}, false, nil
}

// nonEmptyRoutes returns the indices of routes carrying at least min
// shipments.
func nonEmptyRoutes(sol *fleet.Solution, min int) []int {
	idx := make([]int, 0, len(sol.Routes))
	for i := range sol.Routes {
		if len(sol.Routes[i].Shipments) >= min {
			idx = append(idx, i)
		}
	}

	return idx
}

// applySwap exchanges one random shipment between two distinct loaded
// vehicles, provided both stay within capacity.
func applySwap(sol *fleet.Solution, rng *rand.Rand) (bool, []int) {
	loaded := nonEmptyRoutes(sol, 1)
	if len(loaded) < 2 {
		return false, nil
	}
	a := loaded[rng.Intn(len(loaded))]
	b := loaded[rng.Intn(len(loaded))]
	if a == b {
		return false, nil
	}

	ra, rb := &sol.Routes[a], &sol.Routes[b]
	i := rng.Intn(len(ra.Shipments))
	j := rng.Intn(len(rb.Shipments))
	sa, sb := ra.Shipments[i], rb.Shipments[j]

	if !fitsAfterExchange(*ra, sa, sb) || !fitsAfterExchange(*rb, sb, sa) {
		return false, nil
	}

	ra.Shipments[i], rb.Shipments[j] = sb, sa

	return true, []int{a, b}
}

// fitsAfterExchange reports whether r stays within capacity after
// replacing out with in.
func fitsAfterExchange(r fleet.Route, out, in fleet.Shipment) bool {
	return r.Volume()-out.Volume+in.Volume <= r.Vehicle.MaxVolume &&
		r.Weight()-out.Weight+in.Weight <= r.Vehicle.MaxWeight
}

// applyTransfer moves one random shipment from a loaded vehicle onto any
// other vehicle (possibly an idle one) that can take it.
func applyTransfer(sol *fleet.Solution, rng *rand.Rand) (bool, []int) {
	if len(sol.Routes) < 2 {
		return false, nil
	}
	loaded := nonEmptyRoutes(sol, 1)
	if len(loaded) == 0 {
		return false, nil
	}
	a := loaded[rng.Intn(len(loaded))]
	b := rng.Intn(len(sol.Routes))
	if a == b {
		return false, nil
	}

	ra, rb := &sol.Routes[a], &sol.Routes[b]
	i := rng.Intn(len(ra.Shipments))
	s := ra.Shipments[i]
	if !rb.Fits(s) {
		return false, nil
	}

	ra.Shipments = append(ra.Shipments[:i], ra.Shipments[i+1:]...)
	rb.Shipments = append(rb.Shipments, s)

	return true, []int{a, b}
}

// applyRelocate moves one shipment to a different position inside its
// own route. Capacity is unaffected; only the visiting order changes.
func applyRelocate(sol *fleet.Solution, rng *rand.Rand) bool {
	multi := nonEmptyRoutes(sol, 2)
	if len(multi) == 0 {
		return false
	}
	r := &sol.Routes[multi[rng.Intn(len(multi))]]
	n := len(r.Shipments)
	i := rng.Intn(n)
	j := rng.Intn(n)
	if i == j {
		return false
	}

	s := r.Shipments[i]
	r.Shipments = append(r.Shipments[:i], r.Shipments[i+1:]...)
	r.Shipments = append(r.Shipments[:j], append([]fleet.Shipment{s}, r.Shipments[j:]...)...)

	return true
}

// applyReverse reverses a random contiguous segment of one route's
// visiting order.
func applyReverse(sol *fleet.Solution, rng *rand.Rand) bool {
	multi := nonEmptyRoutes(sol, 2)
	if len(multi) == 0 {
		return false
	}
	r := &sol.Routes[multi[rng.Intn(len(multi))]]
	n := len(r.Shipments)
	i := rng.Intn(n)
	k := rng.Intn(n)
	if i == k {
		return false
	}
	if i > k {
		i, k = k, i
	}

	for i < k {
		r.Shipments[i], r.Shipments[k] = r.Shipments[k], r.Shipments[i]
		i++
		k--
	}

	return true
}
