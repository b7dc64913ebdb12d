// Package bmssp implements the recursive bounded multi-source shortest-path
// driver (spec component C7): it orchestrates the bucketed priority
// structure, the pivot finder, and the bounded base case across recursion
// levels 0..L, relaxing edges and tightening a shared distance vector as it
// descends and returns.
//
// The level loop is grounded on lvlath/dijkstra's runner shape (a small
// struct wrapping the shared mutable state, driven by a single free
// function), generalized from "pop one vertex, relax, repeat" to "pull a
// batch from the bucket, recurse, relax, repeat."
package bmssp

import (
	"errors"
	"math"

	"github.com/nrgraph/bmssp/basecase"
	"github.com/nrgraph/bmssp/bucket"
	"github.com/nrgraph/bmssp/core"
	"github.com/nrgraph/bmssp/pivot"
)

// ErrEmptySources is returned when Run (or any recursive call) is given an
// empty source set.
var ErrEmptySources = errors.New("bmssp: source set must be non-empty")

// ErrSourceOutOfRange is the only runtime error surfaced at the top level
// per §4.7's failure semantics.
var ErrSourceOutOfRange = errors.New("bmssp: source vertex out of range")

// Params bundles the level-independent constants derived once per
// invocation: k and t control batch sizes and fan-out, L is the top level.
type Params struct {
	K int
	T int
	L int

	// OnPivotFound and OnBPSPull are optional instrumentation hooks:
	// OnPivotFound is called after pivot finding in every recursive call
	// above level 0, OnBPSPull after every non-empty pull from a level's
	// bucket. Both default to nil and are skipped with a plain nil check,
	// matching the pattern of a BFS walker's OnVisit/OnEnqueue options.
	OnPivotFound func(level int, pivots []int)
	OnBPSPull    func(level int, batchSize int, separator float64)
}

// DeriveParams computes k = ⌈(ln n)^{1/3}⌉, t = ⌈(ln n)^{2/3}⌉ (both floored
// at 2), and L = ⌈(ln n)/t⌉, per the GLOSSARY's parameter definitions.
func DeriveParams(n int) Params {
	if n < 3 {
		return Params{K: 2, T: 2, L: 1}
	}
	lnN := math.Log(float64(n))
	k := int(math.Ceil(math.Pow(lnN, 1.0/3.0)))
	if k < 2 {
		k = 2
	}
	t := int(math.Ceil(math.Pow(lnN, 2.0/3.0)))
	if t < 2 {
		t = 2
	}
	l := int(math.Ceil(lnN / float64(t)))
	if l < 1 {
		l = 1
	}
	return Params{K: k, T: t, L: l}
}

// driver owns the state every recursion level shares by mutation: the
// distance and predecessor vectors and the immutable graph view.
type driver struct {
	g  core.View
	d  []float64
	pi []int
	p  Params
}

// Run executes the top-level recursive call (level L, bound +∞, single
// source) and returns the final (bound, settled set); d and pi are
// populated in place for every vertex with d[v] < returned bound.
func Run(g core.View, source int, d []float64, pi []int, p Params) (float64, []int, error) {
	if source < 0 || source >= g.VertexCount() {
		return 0, nil, ErrSourceOutOfRange
	}
	return RunFrom(g, []int{source}, d, pi, p)
}

// RunFrom is Run generalized to a multi-vertex top-level source set: the
// recursion's own multi-source contract (§4.6/§4.7) already supports this,
// so Run is just RunFrom with a single source. Callers that need to
// restart the recursion from a partially-settled frontier (e.g. to reach
// full coverage when one top-level call's settled-count cap falls short
// of the whole graph) drive repeated RunFrom calls with d/pi carried
// across calls.
func RunFrom(g core.View, sources []int, d []float64, pi []int, p Params) (float64, []int, error) {
	n := g.VertexCount()
	for _, s := range sources {
		if s < 0 || s >= n {
			return 0, nil, ErrSourceOutOfRange
		}
	}
	dr := &driver{g: g, d: d, pi: pi, p: p}
	return dr.recurse(p.L, math.Inf(1), sources)
}

// recurse implements §4.7's BMSSP(level, bound, sources) contract.
func (dr *driver) recurse(level int, bound float64, sources []int) (float64, []int, error) {
	if len(sources) == 0 {
		return 0, nil, ErrEmptySources
	}

	if level == 0 {
		srcMap := make(map[int]float64, len(sources))
		for _, s := range sources {
			srcMap[s] = dr.d[s]
		}
		return basecase.Run(dr.g, dr.d, dr.pi, srcMap, bound, dr.p.K)
	}

	res, err := pivot.Find(dr.g, dr.d, dr.pi, sources, bound, dr.p.K)
	if err != nil {
		return 0, nil, err
	}
	if dr.p.OnPivotFound != nil {
		dr.p.OnPivotFound(level, res.Pivots)
	}

	blockSize := 1 << uint((level-1)*dr.p.T)
	bps, err := bucket.New(blockSize, bound)
	if err != nil {
		return 0, nil, err
	}
	for _, p := range res.Pivots {
		bps.Insert(p, dr.d[p])
	}

	bPrev := bound
	for _, p := range res.Pivots {
		if dr.d[p] < bPrev {
			bPrev = dr.d[p]
		}
	}

	limit := dr.p.K * (1 << uint(level*dr.p.T))
	var settled []int
	for len(settled) < limit && !bps.Empty() {
		si, bi := bps.Pull(blockSize)
		if len(si) == 0 {
			break
		}
		if dr.p.OnBPSPull != nil {
			dr.p.OnBPSPull(level, len(si), bi)
		}
		bNew, ui, err := dr.recurse(level-1, bi, si)
		if err != nil {
			return 0, nil, err
		}
		settled = append(settled, ui...)

		var staged []bucket.Pair
		for _, u := range ui {
			for e := range dr.g.Outgoing(u) {
				dp := dr.d[u] + e.Weight
				if dp < dr.d[e.To] {
					dr.d[e.To] = dp
					dr.pi[e.To] = u
					if dp >= bi && dp < bound {
						bps.Insert(e.To, dp)
					} else if dp >= bNew && dp < bi {
						staged = append(staged, bucket.Pair{Key: e.To, Value: dp})
					}
				}
			}
		}
		for _, x := range si {
			if dr.d[x] >= bNew && dr.d[x] < bi {
				staged = append(staged, bucket.Pair{Key: x, Value: dr.d[x]})
			}
		}
		bps.BatchPrepend(staged)

		bPrev = bNew
	}

	for _, w := range res.WorkSet {
		if dr.d[w] < bPrev {
			settled = append(settled, w)
		}
	}

	finalBound := bound
	if bPrev < finalBound {
		finalBound = bPrev
	}
	return finalBound, dedupe(settled), nil
}

func dedupe(vs []int) []int {
	seen := make(map[int]bool, len(vs))
	out := make([]int, 0, len(vs))
	for _, v := range vs {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
