// Package network - single-source shortest paths over the snapshot.
//
// This is Dijkstra's algorithm with a binary min-heap and the lazy
// decrease-key strategy: improved distances push duplicate heap entries,
// and stale entries are skipped on pop via the done marks.
//
// Alongside the scalar distance, each relaxation carries the fuzzy travel
// time accumulated over the same path, so the travel-time table always
// describes the shortest-distance path (not an independently optimized
// time path).
//
// Complexity per source: O((V + E) log V) time, O(V + E) space.
package network

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/fuzzroute/fuzzy"
)

// shortestFrom fills dist and tt (both length V) for a single source.
// Unreachable nodes keep +Inf distance and a zero travel time.
func (net *Network) shortestFrom(src int, dist []float64, tt []fuzzy.Triangular) {
	n := len(net.nodes)
	inf := math.Inf(1)
	for i := 0; i < n; i++ {
		dist[i] = inf
		tt[i] = fuzzy.Zero()
	}
	dist[src] = 0

	done := make([]bool, n)
	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{node: src, dist: 0})

	var (
		item *nodeItem
		u    int
		nd   float64
	)
	for pq.Len() > 0 {
		item = heap.Pop(&pq).(*nodeItem)
		u = item.node

		// Stale heap entry under lazy decrease-key; skip.
		if done[u] {
			continue
		}
		done[u] = true

		for _, a := range net.adj[u] {
			if done[a.to] {
				continue
			}
			nd = dist[u] + a.dist
			// Strictly-better only: avoids duplicate pushes on ties and
			// keeps the accumulated fuzzy time deterministic.
			if nd >= dist[a.to] {
				continue
			}
			dist[a.to] = nd
			tt[a.to] = tt[u].Add(a.time)
			heap.Push(&pq, &nodeItem{node: a.to, dist: nd})
		}
	}
}

// nodeItem is a (node, tentative distance) heap entry.
type nodeItem struct {
	node int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by distance ascending, with
// the node index as a deterministic tie-break.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].node < pq[j].node
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
