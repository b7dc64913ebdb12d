// Package hubsplit implements the hub-split graph transformation (spec
// component C3): it rewrites a graph so every vertex has in- and out-degree
// bounded by a threshold Δ, which keeps a single BMSSP frame's pivot-finding
// and base-case work from being dominated by a handful of high-degree hub
// vertices.
//
// Grounded on lvlath/core's clone/view helpers (view.go's UnweightedView and
// InducedSubgraph) for the "build a fresh Graph from an existing one"
// pattern, generalized here to also mint brand-new replica vertices rather
// than just filtering existing ones.
package hubsplit

import (
	"errors"

	"github.com/nrgraph/bmssp/core"
)

// ErrBadDelta is returned when delta is below the minimum useful threshold.
var ErrBadDelta = errors.New("hubsplit: delta must be ≥ 2")

// Map is the bidirectional vertex mapping produced by Split: Forward[v] is
// the (non-empty) list of replica vertices standing in for original vertex
// v in the transformed graph, with Forward[v][0] always equal to v itself
// (the primary replica, used as the representative endpoint for distance
// queries). Back[v'] is the original vertex a replica v' stands in for.
type Map struct {
	Forward [][]int
	Back    []int
}

// Split rewrites g so that every vertex's in- and out-degree is at most
// delta, returning the rewritten graph and the forward/back mapping.
// Shortest-path distances between primary replicas equal the original
// graph's distances: dist(g')(Forward[u][0], Forward[v][0]) == dist(g)(u,v).
//
// Out-splitting runs first: any vertex whose out-degree exceeds delta has
// its outgoing edges partitioned into chunks of at most delta-1 edges, each
// chunk moved to a fresh replica, and the replicas chained together with
// zero-weight edges so the original vertex id remains reachable to, and
// reachable from, every chunk; the chunk size leaves room for the chain
// edge. In-splitting runs second, symmetrically, over whatever in-degree
// each vertex ends up with after out-splitting, using a reverse chain of
// zero-weight edges terminating at the vertex.
//
// Complexity: O(n + m). Failure semantics: none beyond ErrBadDelta — the
// transform is total on graphs with non-negative weights.
func Split(g core.View, delta int) (*core.Graph, *Map, error) {
	if delta < 2 {
		return nil, nil, ErrBadDelta
	}

	n := g.VertexCount()
	out := core.NewGraphWithVertices(n)
	m := &Map{
		Forward: make([][]int, n),
		Back:    make([]int, n),
	}
	for v := 0; v < n; v++ {
		m.Forward[v] = []int{v}
		m.Back[v] = v
	}

	splitOutgoing(g, out, m, delta)
	splitIncoming(out, m, delta)

	return out, m, nil
}

// splitOutgoing performs step 1 of §4.3: partition each original vertex's
// outgoing edges across fresh chained replicas when out-degree exceeds
// delta, otherwise copy them through unchanged.
func splitOutgoing(g core.View, out *core.Graph, m *Map, delta int) {
	n := g.VertexCount()
	for v := 0; v < n; v++ {
		var edges []core.Edge
		for e := range g.Outgoing(v) {
			edges = append(edges, e)
		}

		if len(edges) <= delta {
			for _, e := range edges {
				_ = out.AddEdge(v, e.To, e.Weight)
			}
			continue
		}

		chunks := chunk(edges, delta-1)
		reps := make([]int, len(chunks))
		reps[0] = v
		for i := 1; i < len(chunks); i++ {
			reps[i] = newReplica(out, m, v)
		}
		for i := 0; i < len(chunks)-1; i++ {
			_ = out.AddEdge(reps[i], reps[i+1], 0)
		}
		for i, chunkEdges := range chunks {
			for _, e := range chunkEdges {
				_ = out.AddEdge(reps[i], e.To, e.Weight)
			}
		}
		m.Forward[v] = append(m.Forward[v], reps[1:]...)
	}
}

// newReplica allocates a fresh vertex standing in for owner and records it
// in Back, keeping Back's length in lockstep with the graph's vertex count.
func newReplica(out *core.Graph, m *Map, owner int) int {
	id := out.AddVertex()
	m.Back = append(m.Back, owner)
	return id
}

// splitIncoming performs step 2 of §4.3 against the graph already produced
// by splitOutgoing: any vertex whose in-degree still exceeds delta has its
// incoming edges redirected through fresh replicas linked by a reverse
// zero-weight chain terminating at the vertex.
func splitIncoming(out *core.Graph, m *Map, delta int) {
	n := out.VertexCount() // fixed snapshot; replicas added below never themselves need in-splitting
	for v := 0; v < n; v++ {
		var incoming []core.Edge
		for e := range out.Incoming(v) {
			incoming = append(incoming, e) // e.To holds the source vertex here
		}
		if len(incoming) <= delta {
			continue
		}

		for _, e := range incoming {
			out.RemoveEdge(e.To, v)
		}

		origV := m.Back[v]
		chunks := chunk(incoming, delta-1)
		reps := make([]int, len(chunks))
		for i := range chunks {
			reps[i] = newReplica(out, m, origV)
		}
		for i := 0; i < len(reps)-1; i++ {
			_ = out.AddEdge(reps[i], reps[i+1], 0)
		}
		_ = out.AddEdge(reps[len(reps)-1], v, 0)

		for i, chunkEdges := range chunks {
			for _, e := range chunkEdges {
				_ = out.AddEdge(e.To, reps[i], e.Weight)
			}
		}

		m.Forward[origV] = append(m.Forward[origV], reps...)
	}
}

// Project collapses a predecessor recorded in the transformed graph (piPrime,
// indexed by transformed vertex id) back to the original graph's vertex
// space for primary replica v. It walks piPrime past any chain link owned
// by v itself — v's own in-split bookkeeping replicas contribute zero
// weight and are not real predecessors — and returns Back of the first
// link owned by a different vertex, or -1 if v has none (the source, or
// unreachable).
//
// Distances need no such projection: Forward[v][0] == v for every original
// vertex, so the transformed distance vector already is the original one
// at indices [0, n).
func (m *Map) Project(piPrime []int, v int) int {
	cur := piPrime[v]
	for cur >= 0 && m.Back[cur] == v {
		cur = piPrime[cur]
	}
	if cur < 0 {
		return -1
	}
	return m.Back[cur]
}

// chunk splits edges into groups of at most size, preserving order.
func chunk(edges []core.Edge, size int) [][]core.Edge {
	var chunks [][]core.Edge
	for i := 0; i < len(edges); i += size {
		end := i + size
		if end > len(edges) {
			end = len(edges)
		}
		chunks = append(chunks, edges[i:end])
	}
	return chunks
}
