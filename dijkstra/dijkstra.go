// Package dijkstra implements the classical single-source shortest-path
// algorithm on a core.View with non-negative edge weights.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//   - O(E) worst-case for entries in the heap under "lazy-decrease-key".
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable "wall".
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/nrgraph/bmssp/core"
)

// Result holds the outcome of a Dijkstra run.
type Result struct {
	// Dist[v] is the shortest distance from the source to v, or +Inf if v
	// was never reached (unreachable, or beyond MaxDistance).
	Dist []float64
	// Pred[v] is v's predecessor on a shortest path, or -1 if v is the
	// source or unreached. Nil unless Options.ReturnPath was set.
	Pred []int
}

// Run computes shortest distances from source to every vertex reachable in
// g, honoring the functional options. It pre-scans all edges for negative
// weights and fails fast with ErrNegativeWeight before doing any work.
func Run(g core.View, source int, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, ErrVertexOutOfRange
	}

	for v := 0; v < n; v++ {
		for e := range g.Outgoing(v) {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %d→%d weight=%v", ErrNegativeWeight, v, e.To, e.Weight)
			}
		}
	}

	dist := make([]float64, n)
	for v := range dist {
		dist[v] = math.Inf(1)
	}
	dist[source] = 0

	var pred []int
	if cfg.ReturnPath {
		pred = make([]int, n)
		for v := range pred {
			pred[v] = -1
		}
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    dist,
		pred:    pred,
		visited: make([]bool, n),
	}
	r.init(source)
	r.process()

	return &Result{Dist: r.dist, Pred: r.pred}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       core.View
	options Options
	dist    []float64
	pred    []int
	visited []bool
	pq      nodePQ
}

func (r *runner) init(source int) {
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{vertex: source, dist: 0})
}

// process is the core loop: repeatedly extract the vertex with the minimum
// distance from the source and relax its outgoing edges.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.vertex, item.dist

		if r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax examines each edge outgoing from u and attempts to improve distances
// to its neighbors, respecting InfEdgeThreshold and MaxDistance.
func (r *runner) relax(u int) {
	for e := range r.g.Outgoing(u) {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		newDist := r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict improvement only, to avoid pushing duplicates when distances tie.
		if newDist >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = newDist
		if r.pred != nil {
			r.pred[e.To] = u
		}
		heap.Push(&r.pq, &nodeItem{vertex: e.To, dist: newDist})
	}
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem struct {
	vertex int
	dist   float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, consulted
// under the lazy-decrease-key discipline: stale entries are skipped on pop
// via runner.visited rather than removed eagerly.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
