// Package bfsreach estimates, cheaply, how much of a graph is reachable
// from a given source — one of the probes the algorithm selector (spec
// component C8) uses to decide between the Dijkstra baseline and the
// recursive bounded engine.
//
// Modeled on lvlath/bfs's queue-walker: a plain FIFO slice of frontier
// vertices and a visited set, generalized to stop early once a sample cap
// is hit rather than running to completion.
package bfsreach

import "github.com/nrgraph/bmssp/core"

// Estimate runs a breadth-first search from source, capped at sampleCap
// vertices explored. If the search exhausts the reachable component before
// hitting the cap, it returns the exact count. Otherwise the search is
// "early saturated" — the frontier was still growing when the cap was
// reached — and the reachable set is extrapolated linearly to n: a BFS
// still expanding at the sample boundary gives no evidence of where it
// would stop short of the whole graph, so n is the estimate.
//
// Returns (estimatedReach, exact) where exact is true iff the search
// completed without hitting the cap or visited every vertex of the graph.
func Estimate(g core.View, source int, sampleCap int) (estimatedReach int, exact bool) {
	n := g.VertexCount()
	if sampleCap <= 0 || sampleCap >= n {
		sampleCap = n
	}

	visited := make([]bool, n)
	visited[source] = true
	queue := []int{source}
	count := 1

	for len(queue) > 0 && count < sampleCap {
		var next []int
	frontier:
		for _, u := range queue {
			for e := range g.Outgoing(u) {
				if !visited[e.To] {
					visited[e.To] = true
					count++
					next = append(next, e.To)
					if count >= sampleCap {
						break frontier
					}
				}
			}
		}
		queue = next
	}

	if count == n || (len(queue) == 0 && count < sampleCap) {
		return count, true
	}
	return n, false
}
