package sssp

import "github.com/nrgraph/bmssp/selector"

// config is the Compute-level configuration: everything the selector needs
// plus the instrumentation hook, which is this package's concern, not the
// selector's.
type config struct {
	selector selector.Config
	observer Observer
}

func defaultConfig() config {
	return config{
		selector: selector.DefaultConfig(),
		observer: NopObserver{},
	}
}

// Option mutates Compute's configuration. Following the functional-options
// idiom used by package dijkstra's Option/DefaultOptions.
type Option func(*config)

// WithMode selects between automatic detection, a forced algorithm, or
// adaptive timing. See selector.Mode.
func WithMode(m selector.Mode) Option {
	return func(c *config) { c.selector.Mode = m }
}

// WithVertexThreshold overrides the selector's vertex-count floor below
// which Dijkstra always runs.
func WithVertexThreshold(n int) Option {
	return func(c *config) { c.selector.Thresholds.VertexThreshold = n }
}

// WithReachableFractionThreshold overrides the selector's reach/n ratio
// floor.
func WithReachableFractionThreshold(f float64) Option {
	return func(c *config) { c.selector.Thresholds.ReachableFractionThreshold = f }
}

// WithDegreeThreshold overrides the selector's max-degree threshold above
// which hub-split runs before the recursive engine.
func WithDegreeThreshold(n int) Option {
	return func(c *config) { c.selector.Thresholds.DegreeThreshold = n }
}

// WithHubSplitDelta overrides the Δ passed to the hub-split transform when
// it runs, independent of the degree threshold that decides whether it
// runs at all.
func WithHubSplitDelta(n int) Option {
	return func(c *config) { c.selector.HubSplitDelta = n }
}

// WithReachabilitySweep enables the diagnostic reachability-merge pass
// (spec.md §7). Off by default: the paper's own guidance is that it masks
// correctness bugs in the recursive engine rather than fixing them.
func WithReachabilitySweep() Option {
	return func(c *config) { c.selector.ReachabilitySweep = true }
}

// WithObserver attaches an Observer to receive instrumentation events
// during the call. The default is NopObserver.
func WithObserver(o Observer) Option {
	return func(c *config) {
		if o != nil {
			c.observer = o
		}
	}
}
