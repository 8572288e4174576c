// Package network - immutable snapshot construction and pairwise queries.
//
// Construction validates the node/edge lists, builds a deterministic
// adjacency structure (neighbors sorted by index) and runs the Dijkstra
// precompute from every source (see dijkstra.go). The resulting dense
// tables are flat row-major buffers, one float64 and one fuzzy.Triangular
// per ordered node pair, which keeps the hot-loop lookups free of map
// hashing and interface indirection.
package network

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/fuzzroute/fuzzy"
)

// Network is an immutable road-network snapshot with O(1) pairwise
// shortest-path queries. Safe for concurrent readers; never mutated after
// New returns.
type Network struct {
	nodes []Node
	index map[string]int // node id -> dense index

	adj [][]arc // sorted adjacency per node

	// Row-major all-pairs tables: dist[u*n+v], tt[u*n+v].
	// Unreachable pairs hold +Inf distance.
	dist []float64
	tt   []fuzzy.Triangular
}

// arc is one directed half of an undirected edge, indexed densely.
type arc struct {
	to   int
	dist float64
	time fuzzy.Triangular
}

// New validates nodes and edges and builds the snapshot, including the
// all-pairs shortest-path precompute.
//
// Errors: ErrNoNodes, ErrDuplicateNode, ErrUnknownNode (edge endpoint not
// in nodes), ErrNegativeDistance.
func New(nodes []Node, edges []Edge) (*Network, error) {
	if len(nodes) == 0 {
		return nil, ErrNoNodes
	}

	n := len(nodes)
	net := &Network{
		nodes: make([]Node, n),
		index: make(map[string]int, n),
		adj:   make([][]arc, n),
	}
	copy(net.nodes, nodes)

	for i, nd := range net.nodes {
		if _, dup := net.index[nd.ID]; dup {
			return nil, fmt.Errorf("node %s: %w", nd.ID, ErrDuplicateNode)
		}
		net.index[nd.ID] = i
	}

	for _, e := range edges {
		u, ok := net.index[e.From]
		if !ok {
			return nil, fmt.Errorf("edge %s-%s: %w", e.From, e.To, ErrUnknownNode)
		}
		v, ok := net.index[e.To]
		if !ok {
			return nil, fmt.Errorf("edge %s-%s: %w", e.From, e.To, ErrUnknownNode)
		}
		if e.Distance < 0 || e.BaseTime < 0 {
			return nil, fmt.Errorf("edge %s-%s: %w", e.From, e.To, ErrNegativeDistance)
		}
		t := e.TravelTime()
		net.adj[u] = append(net.adj[u], arc{to: v, dist: e.Distance, time: t})
		net.adj[v] = append(net.adj[v], arc{to: u, dist: e.Distance, time: t})
	}

	// Deterministic relaxation order regardless of input edge order.
	for i := range net.adj {
		sort.Slice(net.adj[i], func(a, b int) bool { return net.adj[i][a].to < net.adj[i][b].to })
	}

	net.precompute()

	return net, nil
}

// precompute fills the all-pairs tables by running Dijkstra from every
// source. Fuzzy travel times accumulate along each shortest-distance path.
func (net *Network) precompute() {
	n := len(net.nodes)
	net.dist = make([]float64, n*n)
	net.tt = make([]fuzzy.Triangular, n*n)

	for src := 0; src < n; src++ {
		net.shortestFrom(src, net.dist[src*n:(src+1)*n], net.tt[src*n:(src+1)*n])
	}
}

// Nodes returns the snapshot's nodes in construction order.
func (net *Network) Nodes() []Node {
	out := make([]Node, len(net.nodes))
	copy(out, net.nodes)

	return out
}

// Has reports whether a node id is part of the snapshot.
func (net *Network) Has(id string) bool {
	_, ok := net.index[id]

	return ok
}

// Country returns the country of a node, or ErrUnknownNode.
func (net *Network) Country(id string) (string, error) {
	i, ok := net.index[id]
	if !ok {
		return "", fmt.Errorf("node %s: %w", id, ErrUnknownNode)
	}

	return net.nodes[i].Country, nil
}

// NodeName returns the human-readable name of a node id; the id itself is
// returned for unknown nodes (reporting convenience, never an error).
func (net *Network) NodeName(id string) string {
	if i, ok := net.index[id]; ok && net.nodes[i].Name != "" {
		return net.nodes[i].Name
	}

	return id
}

// Distance returns the shortest-path road distance between two nodes.
// Zero for u == v. Errors: ErrUnknownNode, ErrNoRoute.
func (net *Network) Distance(u, v string) (float64, error) {
	ui, vi, err := net.pair(u, v)
	if err != nil {
		return 0, err
	}
	if ui == vi {
		return 0, nil
	}
	d := net.dist[ui*len(net.nodes)+vi]
	if math.IsInf(d, 1) {
		return 0, fmt.Errorf("%s-%s: %w", u, v, ErrNoRoute)
	}

	return d, nil
}

// TravelTime returns the fuzzy travel time along the shortest-distance
// path between two nodes. Zero TFN for u == v. Errors: ErrUnknownNode,
// ErrNoRoute.
func (net *Network) TravelTime(u, v string) (fuzzy.Triangular, error) {
	ui, vi, err := net.pair(u, v)
	if err != nil {
		return fuzzy.Triangular{}, err
	}
	if ui == vi {
		return fuzzy.Zero(), nil
	}
	if math.IsInf(net.dist[ui*len(net.nodes)+vi], 1) {
		return fuzzy.Triangular{}, fmt.Errorf("%s-%s: %w", u, v, ErrNoRoute)
	}

	return net.tt[ui*len(net.nodes)+vi], nil
}

// IsBorderCrossing reports whether traveling from u to v crosses a country
// border (endpoint countries differ). Errors: ErrUnknownNode.
func (net *Network) IsBorderCrossing(u, v string) (bool, error) {
	ui, vi, err := net.pair(u, v)
	if err != nil {
		return false, err
	}

	return net.nodes[ui].Country != net.nodes[vi].Country, nil
}

// pair resolves two node ids to dense indices.
func (net *Network) pair(u, v string) (int, int, error) {
	ui, ok := net.index[u]
	if !ok {
		return 0, 0, fmt.Errorf("node %s: %w", u, ErrUnknownNode)
	}
	vi, ok := net.index[v]
	if !ok {
		return 0, 0, fmt.Errorf("node %s: %w", v, ErrUnknownNode)
	}

	return ui, vi, nil
}
