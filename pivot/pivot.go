// Package pivot implements the pivot-finding subroutine (spec component C6):
// a short, bounded Bellman-Ford-style relaxation that grows a shortest-path
// forest from a source set, then decides which sources are "productive"
// enough to seed the next-lower recursion level.
//
// The frontier-relaxation loop is grounded on lvlath/dfs's level-by-level
// traversal shape; the forest-restricted subtree sizing is delegated to
// dfsforest, itself modeled on the same package.
package pivot

import (
	"errors"

	"github.com/nrgraph/bmssp/core"
	"github.com/nrgraph/bmssp/dfsforest"
)

// ErrEmptySources is returned when Find is called with no source vertices.
var ErrEmptySources = errors.New("pivot: source set must be non-empty")

// Result is the outcome of a single pivot-finding call.
type Result struct {
	Pivots  []int // P ⊆ S
	WorkSet []int // W ⊇ S
}

// Find performs k rounds of frontier relaxation from sources, accepting a
// relaxation into d and pi only when it strictly improves d[v] and the
// result stays below bound. It returns every vertex touched (the work set
// W) together with the subset of sources declared pivots:
//
//   - if |W| ≤ k·|sources|, every source is a pivot;
//   - otherwise, a source is a pivot iff its subtree in the π-forest
//     restricted to W has size ≥ k; if that yields no pivots, the single
//     source with the largest subtree is returned instead.
func Find(g core.View, d []float64, pi []int, sources []int, bound float64, k int) (Result, error) {
	if len(sources) == 0 {
		return Result{}, ErrEmptySources
	}

	inWorkSet := make(map[int]bool, len(sources))
	var workSet []int
	for _, s := range sources {
		if !inWorkSet[s] {
			inWorkSet[s] = true
			workSet = append(workSet, s)
		}
	}

	frontier := append([]int(nil), sources...)
	for round := 0; round < k && len(frontier) > 0; round++ {
		var next []int
		for _, u := range frontier {
			for e := range g.Outgoing(u) {
				nd := d[u] + e.Weight
				if nd < bound && nd < d[e.To] {
					d[e.To] = nd
					pi[e.To] = u
					if !inWorkSet[e.To] {
						inWorkSet[e.To] = true
						workSet = append(workSet, e.To)
						next = append(next, e.To)
					}
				}
			}
		}
		frontier = next
	}

	if len(workSet) <= k*len(sources) {
		return Result{Pivots: append([]int(nil), sources...), WorkSet: workSet}, nil
	}

	sizes := dfsforest.SubtreeSizes(pi, inWorkSet, sources)
	var pivots []int
	best, bestSize := sources[0], -1
	for _, s := range sources {
		if sizes[s] >= k {
			pivots = append(pivots, s)
		}
		if sizes[s] > bestSize {
			best, bestSize = s, sizes[s]
		}
	}
	if len(pivots) == 0 {
		pivots = []int{best}
	}
	return Result{Pivots: pivots, WorkSet: workSet}, nil
}
