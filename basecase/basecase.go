// Package basecase implements the bounded base case (spec component C5): a
// multi-source, priority-queue Dijkstra that stops early, either because the
// queue drains or because it has settled k+1 distinct vertices, and reports
// a tightened bound alongside the vertices it can vouch for.
//
// Modeled directly on lvlath/dijkstra's runner: a min-heap of (vertex,
// distance) pairs consulted with the lazy decrease-key discipline (push
// duplicates, skip stale entries via a visited set) rather than reshuffling
// the heap on every improvement.
package basecase

import (
	"container/heap"
	"errors"
	"math"

	"github.com/nrgraph/bmssp/core"
)

// ErrEmptySources is returned when Run is called with no source vertices.
var ErrEmptySources = errors.New("basecase: source set must be non-empty")

// Run explores outward from sources, relaxing edges into the shared distance
// and predecessor vectors d and pi, and stops after settling k+1 distinct
// vertices or exhausting everything reachable below bound.
//
// sources maps each source vertex to its current d-value (d[s] for s ∈ S,
// per §4.5); Run does not reset d or pi for vertices outside this call's
// reach, and only ever tightens them — relaxation applies only when a new
// tentative distance is strictly smaller than the current one and strictly
// below bound.
//
// Returns (newBound, settled) where, per §4.5: if fewer than k+1 vertices
// were settled, newBound == bound and settled holds every vertex with
// d[·] < bound reached during the run; otherwise newBound is the distance of
// the (k+1)-th settled vertex and settled holds those of the first k settled
// vertices whose d[·] < newBound (a vertex tied with the (k+1)-th distance is
// left out).
func Run(g core.View, d []float64, pi []int, sources map[int]float64, bound float64, k int) (float64, []int, error) {
	if len(sources) == 0 {
		return bound, nil, ErrEmptySources
	}

	pq := make(nodePQ, 0, len(sources))
	for s, ds := range sources {
		pq = append(pq, &nodeItem{vertex: s, dist: ds})
	}
	heap.Init(&pq)

	visited := make(map[int]bool, k+1)
	var settledOrder []int
	var settledDist []float64

	for pq.Len() > 0 && len(settledOrder) < k+1 {
		top := heap.Pop(&pq).(*nodeItem)
		if visited[top.vertex] {
			continue
		}
		if top.dist >= bound {
			break
		}
		visited[top.vertex] = true
		settledOrder = append(settledOrder, top.vertex)
		settledDist = append(settledDist, top.dist)

		for e := range g.Outgoing(top.vertex) {
			nd := top.dist + e.Weight
			if nd < bound && nd < d[e.To] {
				d[e.To] = nd
				pi[e.To] = top.vertex
				heap.Push(&pq, &nodeItem{vertex: e.To, dist: nd})
			}
		}
	}

	if len(settledOrder) < k+1 {
		out := make([]int, 0, len(settledOrder))
		for _, v := range settledOrder {
			if d[v] < bound {
				out = append(out, v)
			}
		}
		return bound, out, nil
	}

	newBound := settledDist[k]
	out := make([]int, 0, k)
	for i := 0; i < k; i++ {
		if d[settledOrder[i]] < newBound {
			out = append(out, settledOrder[i])
		}
	}
	return newBound, out, nil
}

type nodeItem struct {
	vertex int
	dist   float64
}

type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}

// Inf is the sentinel "not yet reached" distance used throughout the
// package's callers when initializing d.
var Inf = math.Inf(1)
