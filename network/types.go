package network

import (
	"errors"

	"github.com/katalvlaran/fuzzroute/fuzzy"
)

// Sentinel errors returned by the network package.
var (
	// ErrNoNodes indicates that a network was constructed without nodes.
	ErrNoNodes = errors.New("network: no nodes supplied")

	// ErrDuplicateNode indicates two nodes sharing one id.
	ErrDuplicateNode = errors.New("network: duplicate node id")

	// ErrUnknownNode indicates a query or edge referencing a node id that
	// is not part of the snapshot.
	ErrUnknownNode = errors.New("network: unknown node id")

	// ErrNegativeDistance indicates an edge with a negative distance or
	// base time; shortest-path relaxation requires non-negative weights.
	ErrNegativeDistance = errors.New("network: negative edge distance or time")

	// ErrNoRoute indicates that no path connects a required node pair.
	// Fatal for the instance: the core cannot synthesize a substitute cost.
	ErrNoRoute = errors.New("network: no route between nodes")
)

// Node kinds as they appear in instance data.
const (
	NodeDepot    = "depot"
	NodeBorder   = "border_crossing"
	NodeDelivery = "delivery"
)

// Node is a location in the road network.
type Node struct {
	ID      string // short code, e.g. "NNG"
	Name    string // human-readable name, e.g. "Nanning"
	Country string
	Type    string // NodeDepot, NodeBorder or NodeDelivery
}

// Edge is an undirected road segment between two nodes.
//
// DelayFactors are congestion multipliers observed across the day's time
// windows; they widen the crisp BaseTime into a triangular travel time
// (see Edge.TravelTime).
type Edge struct {
	From         string
	To           string
	Distance     float64 // km
	BaseTime     float64 // minutes under free flow
	RoadType     string
	DelayFactors []float64
}

// TravelTime derives the edge's triangular travel time from BaseTime and
// the delay factors: lower bound at the lightest observed congestion, peak
// at the mean of typical factors (those within [1.1, 1.5]), upper bound at
// the heaviest. Without delay factors the time is crisp.
func (e Edge) TravelTime() fuzzy.Triangular {
	if len(e.DelayFactors) == 0 {
		return fuzzy.Crisp(e.BaseTime)
	}

	minF, maxF := e.DelayFactors[0], e.DelayFactors[0]
	var typSum float64
	var typN int
	for _, f := range e.DelayFactors {
		if f < minF {
			minF = f
		}
		if f > maxF {
			maxF = f
		}
		if f >= 1.1 && f <= 1.5 {
			typSum += f
			typN++
		}
	}
	peakF := 1.0
	if typN > 0 {
		peakF = typSum / float64(typN)
	}
	// Typical congestion may sit outside [min,max]·base ordering when the
	// observed factors are all below 1.1 or above 1.5; clamp to keep the
	// triple ordered.
	if peakF < minF {
		peakF = minF
	}
	if peakF > maxF {
		peakF = maxF
	}

	return fuzzy.Triangular{A: e.BaseTime * minF, B: e.BaseTime * peakF, C: e.BaseTime * maxF}
}
