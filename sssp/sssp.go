// Package sssp is the public façade over this module: a single entry
// point, Compute, that accepts a read-only graph view and a source vertex,
// lets the algorithm selector choose between the Dijkstra baseline and the
// recursive bounded engine (with or without the hub-split transform), and
// returns a fully populated distance/predecessor Result or a typed Error.
//
// Modeled on lvlath/core's api.go: a thin facade with no algorithmic
// complexity of its own, delegating everything to the packages it wires
// together.
package sssp

import (
	"fmt"
	"math"
	"time"

	"github.com/nrgraph/bmssp/bfsreach"
	"github.com/nrgraph/bmssp/bmssp"
	"github.com/nrgraph/bmssp/core"
	"github.com/nrgraph/bmssp/dijkstra"
	"github.com/nrgraph/bmssp/hubsplit"
	"github.com/nrgraph/bmssp/selector"
)

// Compute runs single-source shortest paths from source over g, dispatching
// to whichever algorithm the selector chooses (overridable via Option).
// The returned Result is always fully populated: Distances[v] is either a
// finite distance or +Inf for unreachable v, and Predecessors[v] is -1 for
// the source and for unreachable vertices.
func Compute(g core.View, source int, opts ...Option) (*Result, *Error) {
	if g == nil {
		return nil, &Error{Kind: KindInternal, Message: "graph is nil"}
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, &Error{
			Kind:    KindSourceOutOfRange,
			Message: fmt.Sprintf("source %d out of range [0, %d)", source, n),
		}
	}
	if from, to, w, bad := firstNegativeWeight(g); bad {
		return nil, &Error{
			Kind:    KindNegativeWeight,
			Message: fmt.Sprintf("edge %d->%d carries a negative weight", from, to),
			Weight:  w,
		}
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	algo, _ := selector.Resolve(g, source, bfsreach.Estimate, cfg.selector)

	d := make([]float64, n)
	pi := make([]int, n)
	for v := range d {
		d[v] = math.Inf(1)
		pi[v] = -1
	}
	d[source] = 0

	var stats *AdaptiveStats
	if cfg.selector.Mode == selector.Adaptive {
		stats = runAdaptive(g, source, cfg, d, pi, algo)
	} else if err := runAlgorithm(g, source, algo, cfg, d, pi); err != nil {
		return nil, err
	}

	if cfg.selector.ReachabilitySweep {
		sweepUnreachable(g, source, d, pi)
	}

	return &Result{Source: source, Distances: d, Predecessors: pi, Stats: stats}, nil
}

// runAlgorithm dispatches to the chosen algorithm and fills d/pi in place.
func runAlgorithm(g core.View, source int, algo selector.Algorithm, cfg config, d []float64, pi []int) *Error {
	switch algo {
	case selector.AlgoDijkstra:
		res, err := dijkstra.Run(g, source, dijkstra.WithReturnPath())
		if err != nil {
			return &Error{Kind: KindInternal, Message: err.Error()}
		}
		copy(d, res.Dist)
		copy(pi, res.Pred)
		return nil
	case selector.AlgoBMSSPHubSplit:
		return runHubSplitBMSSP(g, source, cfg.selector.HubSplitDelta, d, pi, cfg.observer)
	default:
		return runBMSSPToCompletion(g, source, d, pi, cfg.observer)
	}
}

// runBMSSPToCompletion drives the recursive engine to cover the whole
// reachable component. A single top-level BMSSP call already solves the
// entire instance when its settled-count cap reaches n, but the cap is
// derived from natural-log parameters per the GLOSSARY (k, t, L use ln,
// not log base 2), so for some n a single call's cap can fall short. Each
// further call restarts from the still-open frontier (touched, finite
// distance, not yet settled) with the same d/pi state; since that frontier
// always contains the globally next-smallest unsettled distance, every
// call settles at least one new vertex, so the loop terminates in at most
// n iterations.
func runBMSSPToCompletion(g core.View, source int, d []float64, pi []int, obs Observer) *Error {
	n := g.VertexCount()
	p := bmssp.DeriveParams(n)
	p.OnPivotFound = obs.OnPivotFound
	p.OnBPSPull = obs.OnBPSPull
	settled := make([]bool, n)
	frontier := []int{source}

	for len(frontier) > 0 {
		_, newlySettled, err := bmssp.RunFrom(g, frontier, d, pi, p)
		if err != nil {
			return &Error{Kind: KindInternal, Message: err.Error()}
		}
		obs.OnBaseCaseEntry(frontier, math.Inf(1))

		progressed := false
		for _, v := range newlySettled {
			if !settled[v] {
				settled[v] = true
				progressed = true
			}
		}
		if !progressed {
			break
		}

		var next []int
		for v := 0; v < n; v++ {
			if !settled[v] && !math.IsInf(d[v], 1) {
				next = append(next, v)
			}
		}
		frontier = next
	}
	return nil
}

// runHubSplitBMSSP runs the hub-split transform, drives the recursive
// engine to completion on the transformed graph, and projects the result
// back to the original vertex space. Distances need no projection (primary
// replicas keep their original index); predecessors do, via Map.Project.
func runHubSplitBMSSP(g core.View, source int, delta int, d []float64, pi []int, obs Observer) *Error {
	split, m, err := hubsplit.Split(g, delta)
	if err != nil {
		return &Error{Kind: KindInternal, Message: err.Error()}
	}

	n2 := split.VertexCount()
	dPrime := make([]float64, n2)
	piPrime := make([]int, n2)
	for v := range dPrime {
		dPrime[v] = math.Inf(1)
		piPrime[v] = -1
	}
	dPrime[source] = 0

	if err := runBMSSPToCompletion(split, source, dPrime, piPrime, obs); err != nil {
		return err
	}

	n := g.VertexCount()
	for v := 0; v < n; v++ {
		d[v] = dPrime[v]
		pi[v] = m.Project(piPrime, v)
	}
	return nil
}

// runAdaptive computes the authoritative result with the probe-chosen
// algorithm (identical to the AutoDetect path) while additionally timing
// a plain Dijkstra run and a BMSSP run for advisory comparison, per the
// selector's Adaptive mode.
func runAdaptive(g core.View, source int, cfg config, d []float64, pi []int, algo selector.Algorithm) *AdaptiveStats {
	acc := &selector.Adaptive{}

	start := time.Now()
	_, _ = dijkstra.Run(g, source)
	acc.Record(selector.AlgoDijkstra, time.Since(start))

	start = time.Now()
	scratchD := make([]float64, g.VertexCount())
	scratchPi := make([]int, g.VertexCount())
	for v := range scratchD {
		scratchD[v] = math.Inf(1)
		scratchPi[v] = -1
	}
	scratchD[source] = 0
	_ = runBMSSPToCompletion(g, source, scratchD, scratchPi, NopObserver{})
	acc.Record(selector.AlgoBMSSP, time.Since(start))

	if err := runAlgorithm(g, source, algo, cfg, d, pi); err != nil {
		// The authoritative run failed; fall back to the already-computed
		// BMSSP scratch result rather than returning a half-filled Result.
		copy(d, scratchD)
		copy(pi, scratchPi)
	}

	stats := acc.Stats()
	return &stats
}

// sweepUnreachable implements the diagnostic reachability-merge pass
// (spec.md §7): any vertex the chosen algorithm left unreachable is
// checked against a fresh plain-Dijkstra run, and merged in if Dijkstra
// finds it reachable. Never re-runs BMSSP; the merge is one-directional.
func sweepUnreachable(g core.View, source int, d []float64, pi []int) {
	hasUnreachable := false
	for _, dv := range d {
		if math.IsInf(dv, 1) {
			hasUnreachable = true
			break
		}
	}
	if !hasUnreachable {
		return
	}

	res, err := dijkstra.Run(g, source, dijkstra.WithReturnPath())
	if err != nil {
		return
	}
	for v := range d {
		if math.IsInf(d[v], 1) && !math.IsInf(res.Dist[v], 1) {
			d[v] = res.Dist[v]
			pi[v] = res.Pred[v]
		}
	}
}

// firstNegativeWeight scans every edge once, reporting the first negative
// weight encountered in vertex order. Run independently of which algorithm
// ends up dispatched, so the Error contract (first detection) doesn't
// depend on which path the selector chose.
func firstNegativeWeight(g core.View) (from, to int, weight float64, found bool) {
	for v := 0; v < g.VertexCount(); v++ {
		for e := range g.Outgoing(v) {
			if e.Weight < 0 {
				return v, e.To, e.Weight, true
			}
		}
	}
	return 0, 0, 0, false
}
