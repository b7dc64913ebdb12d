// Package selector implements the algorithm-selection layer (spec component
// C8): it probes a graph's size, reachability, and degree distribution and
// dispatches to either the Dijkstra baseline or the recursive BMSSP engine,
// optionally routing through the hub-split transform first.
//
// The seeded-sampling pattern is grounded on gonum's graph/path package,
// which seeds a dedicated golang.org/x/exp/rand source (rand.New(rand.
// NewSource(seed))) rather than touching the global generator — the same
// discipline used here for degree sampling.
package selector

import (
	"golang.org/x/exp/rand"

	"github.com/nrgraph/bmssp/core"
)

// Algorithm names which engine a Decide call picked.
type Algorithm int

const (
	// AlgoDijkstra means the classical baseline should run unmodified.
	AlgoDijkstra Algorithm = iota
	// AlgoBMSSP means the recursive engine should run directly on the
	// graph as given.
	AlgoBMSSP
	// AlgoBMSSPHubSplit means the graph should first go through the
	// hub-split transform before the recursive engine runs.
	AlgoBMSSPHubSplit
)

func (a Algorithm) String() string {
	switch a {
	case AlgoDijkstra:
		return "dijkstra"
	case AlgoBMSSP:
		return "bmssp"
	case AlgoBMSSPHubSplit:
		return "bmssp+hubsplit"
	default:
		return "unknown"
	}
}

// Thresholds bundles the tunable decision-rule constants of §4.8.
type Thresholds struct {
	VertexThreshold            int     // below this, always Dijkstra
	ReachableFractionThreshold float64 // below this reach/n ratio, Dijkstra
	DegreeThreshold            int     // above this max-degree estimate, hub-split first
	SampleCap                  int     // cap on the reachability probe's BFS
	DegreeSampleSize           int     // vertices sampled for the max-degree estimate
	Seed                       uint64  // seed for the degree sampler
}

// DefaultThresholds returns the defaults named in §4.8.
func DefaultThresholds() Thresholds {
	return Thresholds{
		VertexThreshold:            10000,
		ReachableFractionThreshold: 0.05,
		DegreeThreshold:            256,
		SampleCap:                  2000,
		DegreeSampleSize:           200,
		Seed:                       1,
	}
}

// Probes records what Decide measured about a graph before choosing.
type Probes struct {
	N, M            int
	EstimatedReach  int
	ReachExact      bool
	EstimatedMaxDeg int
}

// Decide runs the probes of §4.8 and returns the chosen algorithm alongside
// what was measured, using reach, a reachability estimator matching
// bfsreach.Estimate's signature (passed in rather than imported directly,
// to keep this package free of a hard dependency on any one probe
// implementation).
func Decide(g core.View, source int, reach func(core.View, int, int) (int, bool), th Thresholds) (Algorithm, Probes) {
	n := g.VertexCount()
	m := g.EdgeCount()

	estReach, exact := reach(g, source, th.SampleCap)
	maxDeg := sampleMaxDegree(g, th.DegreeSampleSize, th.Seed)

	p := Probes{N: n, M: m, EstimatedReach: estReach, ReachExact: exact, EstimatedMaxDeg: maxDeg}

	if n < th.VertexThreshold {
		return AlgoDijkstra, p
	}
	if n > 0 && float64(estReach)/float64(n) < th.ReachableFractionThreshold {
		return AlgoDijkstra, p
	}
	if maxDeg > th.DegreeThreshold {
		return AlgoBMSSPHubSplit, p
	}
	return AlgoBMSSP, p
}

// sampleMaxDegree estimates the graph's maximum out-degree by sampling up
// to sampleSize distinct vertices uniformly at random (or every vertex, for
// small graphs) and taking the largest out-degree observed among them.
func sampleMaxDegree(g core.View, sampleSize int, seed uint64) int {
	n := g.VertexCount()
	if n == 0 {
		return 0
	}
	if sampleSize <= 0 || sampleSize >= n {
		return maxDegreeOver(g, allVertices(n))
	}

	rng := rand.New(rand.NewSource(seed))
	seen := make(map[int]bool, sampleSize)
	sample := make([]int, 0, sampleSize)
	for len(sample) < sampleSize {
		v := rng.Intn(n)
		if !seen[v] {
			seen[v] = true
			sample = append(sample, v)
		}
	}
	return maxDegreeOver(g, sample)
}

func allVertices(n int) []int {
	vs := make([]int, n)
	for i := range vs {
		vs[i] = i
	}
	return vs
}

func maxDegreeOver(g core.View, vertices []int) int {
	max := 0
	for _, v := range vertices {
		deg := 0
		for range g.Outgoing(v) {
			deg++
		}
		if deg > max {
			max = deg
		}
	}
	return max
}
