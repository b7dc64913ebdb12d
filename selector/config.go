package selector

import (
	"time"

	"github.com/nrgraph/bmssp/core"
)

// Mode names which selection strategy Resolve should use. AutoDetect is
// the default; the Force* variants bypass probing entirely, and Adaptive
// asks the caller to additionally gather timing data (the caller, not this
// package, owns running and timing the candidate algorithms — see
// AdaptiveStats).
type Mode int

const (
	// AutoDetect runs the §4.8 probes and applies Thresholds.
	AutoDetect Mode = iota
	// ForceDijkstra always selects the classical baseline.
	ForceDijkstra
	// ForceBMSSPNoTransform always selects the recursive engine without
	// hub-split.
	ForceBMSSPNoTransform
	// ForceBMSSPHubSplit always selects the recursive engine behind
	// hub-split.
	ForceBMSSPHubSplit
	// Adaptive behaves like AutoDetect for the returned decision, but
	// signals the caller to also run and time the other candidates.
	Adaptive
)

func (m Mode) String() string {
	switch m {
	case AutoDetect:
		return "AutoDetect"
	case ForceDijkstra:
		return "ForceDijkstra"
	case ForceBMSSPNoTransform:
		return "ForceBMSSPNoTransform"
	case ForceBMSSPHubSplit:
		return "ForceBMSSPHubSplit"
	case Adaptive:
		return "Adaptive"
	default:
		return "Unknown"
	}
}

// Config bundles everything the selector needs: the probe thresholds, the
// mode tag, the hub-split Δ to hand off when hub-split is chosen, and the
// reachability-sweep flag (spec.md §7's diagnostic merge pass, off by
// default per the paper's own caution that it would mask bugs rather than
// fix them).
type Config struct {
	Thresholds        Thresholds
	Mode              Mode
	HubSplitDelta     int
	ReachabilitySweep bool
}

// Option mutates a Config, following the functional-options idiom used
// throughout this module (package dijkstra's Option/DefaultOptions shape).
type Option func(*Config)

// DefaultConfig returns AutoDetect mode with DefaultThresholds, hub-split
// Δ equal to the default degree threshold, and the reachability sweep
// disabled.
func DefaultConfig() Config {
	th := DefaultThresholds()
	return Config{
		Thresholds:        th,
		Mode:              AutoDetect,
		HubSplitDelta:     th.DegreeThreshold,
		ReachabilitySweep: false,
	}
}

// WithMode overrides the selection strategy.
func WithMode(m Mode) Option {
	return func(c *Config) { c.Mode = m }
}

// WithVertexThreshold overrides the vertex-count floor below which
// Dijkstra always runs.
func WithVertexThreshold(n int) Option {
	return func(c *Config) { c.Thresholds.VertexThreshold = n }
}

// WithReachableFractionThreshold overrides the reach/n ratio below which
// Dijkstra is preferred over the recursive engine.
func WithReachableFractionThreshold(f float64) Option {
	return func(c *Config) { c.Thresholds.ReachableFractionThreshold = f }
}

// WithDegreeThreshold overrides the max-degree estimate above which
// hub-split runs before the recursive engine.
func WithDegreeThreshold(n int) Option {
	return func(c *Config) { c.Thresholds.DegreeThreshold = n }
}

// WithHubSplitDelta overrides the Δ passed to the hub-split transform,
// independent of DegreeThreshold (which only gates whether hub-split
// runs at all).
func WithHubSplitDelta(n int) Option {
	return func(c *Config) { c.HubSplitDelta = n }
}

// WithReachabilitySweep enables the diagnostic post-pass that merges in a
// plain Dijkstra run over any vertex the recursive engine left unreachable
// that a reachability sweep finds reachable. Spec guidance: this masks
// correctness bugs rather than fixing them and must stay off unless a
// caller explicitly opts in.
func WithReachabilitySweep() Option {
	return func(c *Config) { c.ReachabilitySweep = true }
}

// Resolve applies cfg to choose an Algorithm. Force* modes bypass probing
// entirely; AutoDetect and Adaptive both run the §4.8 probes and apply
// cfg.Thresholds, since Adaptive's authoritative answer is still the
// probe-driven choice — only the advisory timing sweep around it differs,
// and that sweep is the caller's responsibility (see AdaptiveStats).
func Resolve(g core.View, source int, reach func(core.View, int, int) (int, bool), cfg Config) (Algorithm, Probes) {
	switch cfg.Mode {
	case ForceDijkstra:
		return AlgoDijkstra, Probes{N: g.VertexCount(), M: g.EdgeCount()}
	case ForceBMSSPNoTransform:
		return AlgoBMSSP, Probes{N: g.VertexCount(), M: g.EdgeCount()}
	case ForceBMSSPHubSplit:
		return AlgoBMSSPHubSplit, Probes{N: g.VertexCount(), M: g.EdgeCount()}
	default:
		return Decide(g, source, reach, cfg.Thresholds)
	}
}

// AdaptiveStats records per-algorithm wall-clock timing samples gathered
// by a caller running candidate algorithms under Adaptive mode. It is a
// plain value returned to the caller, never accumulated in package state.
type AdaptiveStats struct {
	DijkstraSamples []time.Duration
	BMSSPSamples    []time.Duration
}

// Count returns the total number of timing samples recorded.
func (s AdaptiveStats) Count() int {
	return len(s.DijkstraSamples) + len(s.BMSSPSamples)
}

// Adaptive accumulates AdaptiveStats across one or more candidate runs. A
// caller under Mode == Adaptive owns an Adaptive value, times its own
// calls into the candidate algorithms, and calls Record after each.
type Adaptive struct {
	stats AdaptiveStats
}

// Record appends a timing sample for algo.
func (a *Adaptive) Record(algo Algorithm, d time.Duration) {
	switch algo {
	case AlgoDijkstra:
		a.stats.DijkstraSamples = append(a.stats.DijkstraSamples, d)
	default:
		a.stats.BMSSPSamples = append(a.stats.BMSSPSamples, d)
	}
}

// Stats returns the timing samples recorded so far.
func (a *Adaptive) Stats() AdaptiveStats {
	return a.stats
}
