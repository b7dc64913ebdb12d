// Package randgen builds random directed dense-int graphs for large-scale
// correctness fixtures (spec.md §8 scenario 6: n≈10⁴, m≈5·10⁴, weights in
// [1,100]).
//
// Grounded on lvlath/builder's RandomSparse constructor: an Erdős–Rényi–style
// independent Bernoulli trial per ordered pair (i,j), drawn from a dedicated
// RNG built from a caller-supplied seed rather than a package-global one. Adapted from
// RandomSparse's string-keyed, p-parameterized API to this module's
// dense-int core.View and to the (n, m) parameterization the fixture
// scenario actually specifies: p is derived from the target edge count.
package randgen

import (
	"golang.org/x/exp/rand"

	"github.com/nrgraph/bmssp/core"
)

// Options configures random graph construction.
type Options struct {
	N         int     // vertex count
	M         int     // target edge count (approximate; Bernoulli sampling, not exact)
	MinWeight float64 // inclusive
	MaxWeight float64 // exclusive
	Seed      uint64
}

// Build samples a directed graph with approximately opts.M edges over
// opts.N vertices, weights drawn uniformly from [MinWeight, MaxWeight).
// Self-loops are never generated. The trial order is stable for a fixed
// seed (outer i ascending, inner j ascending), so two Build calls with the
// same Options produce the same graph.
func Build(opts Options) *core.Graph {
	n := opts.N
	g := core.NewGraphWithVertices(n)
	if n < 2 {
		return g
	}

	maxPairs := float64(n) * float64(n-1)
	p := float64(opts.M) / maxPairs
	if p > 1 {
		p = 1
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	lo, hi := opts.MinWeight, opts.MaxWeight

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if rng.Float64() > p {
				continue
			}
			w := lo + rng.Float64()*(hi-lo)
			_ = g.AddEdge(i, j, w)
		}
	}
	return g
}
