// File: view.go
// Role: read-only, repeatable iteration over a vertex's edges (spec C1).
package core

// Outgoing yields (neighbor, weight) pairs for every edge leaving v, in
// insertion order. The returned iterator reads a length-snapshotted slice
// taken under a read lock, so it is safe to call Outgoing(v) more than once
// for the same v within one execution, and safe to range over it while
// other goroutines read the graph concurrently.
//
// Complexity: O(deg(v)) to materialize the snapshot, O(1) per yielded edge.
func (g *Graph) Outgoing(v int) func(yield func(Edge) bool) {
	g.mu.RLock()
	var edges []Edge
	if v >= 0 && v < len(g.out) {
		edges = g.out[v]
	}
	g.mu.RUnlock()

	return func(yield func(Edge) bool) {
		for _, e := range edges {
			if !yield(e) {
				return
			}
		}
	}
}

// Incoming yields (neighbor, weight) pairs for every edge entering v. The
// Edge.To field holds the *source* vertex of the incoming edge. Used by the
// hub-split transformer when rewiring in-degree and, in principle, by any
// algorithm that needs reverse adjacency.
//
// Complexity: O(indeg(v)) to materialize the snapshot, O(1) per yielded edge.
func (g *Graph) Incoming(v int) func(yield func(Edge) bool) {
	g.mu.RLock()
	var edges []Edge
	if v >= 0 && v < len(g.in) {
		edges = g.in[v]
	}
	g.mu.RUnlock()

	return func(yield func(Edge) bool) {
		for _, e := range edges {
			if !yield(e) {
				return
			}
		}
	}
}
