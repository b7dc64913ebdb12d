package sssp

import "github.com/nrgraph/bmssp/selector"

// ErrorKind classifies a Compute failure into one of the abstract kinds
// named for the public entry point: input violations the caller can act
// on, versus an algorithm precondition that should never originate from
// this API and indicates an internal inconsistency.
type ErrorKind int

const (
	// KindSourceOutOfRange means the requested source vertex is not in
	// [0, n).
	KindSourceOutOfRange ErrorKind = iota
	// KindNegativeWeight means a negative edge weight was found. Compute
	// scans every edge for one before running any algorithm, so the check
	// happens up front rather than inside a relaxation pass.
	KindNegativeWeight
	// KindInternal means an algorithm precondition was violated in a way
	// that should be unreachable from this API (e.g. an internal
	// recursive call receiving an empty source set).
	KindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindSourceOutOfRange:
		return "SourceOutOfRange"
	case KindNegativeWeight:
		return "NegativeWeight"
	case KindInternal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// Error is the single error type Compute returns, carrying a Kind for
// errors.Is-free switch handling plus a human-readable Message and, for
// KindNegativeWeight, the offending Weight.
type Error struct {
	Kind    ErrorKind
	Message string
	Weight  float64
}

func (e *Error) Error() string {
	return "sssp: " + e.Kind.String() + ": " + e.Message
}

// Result is the output of a successful Compute call: Distances[v] is the
// shortest-path distance from Source to v, or +Inf if v is unreachable.
// Predecessors[v] is v's parent in the shortest-path tree, or -1 for the
// source and for unreachable vertices.
type Result struct {
	Source       int
	Distances    []float64
	Predecessors []int
	// Stats is non-nil only when Compute ran under selector.Adaptive mode;
	// it carries the advisory per-algorithm timing samples gathered during
	// the call.
	Stats *AdaptiveStats
}

// Observer receives instrumentation events during a Compute call. All
// methods default to no-ops via NopObserver so callers that don't need
// instrumentation pay nothing, matching the hook pattern of a BFS walker
// whose OnVisit/OnEnqueue default to no-op closures rather than needing
// nil checks at every call site.
type Observer interface {
	// OnPivotFound is called each time a BMSSP recursive call above level
	// 0 has chosen its pivot set, with that call's level and pivots.
	OnPivotFound(level int, pivots []int)
	// OnBaseCaseEntry is called once per top-level BMSSP pass, after the
	// pass returns, with the frontier that pass started from and a bound
	// of +Inf. It is not called for each level-0 base-case invocation
	// inside the recursion.
	OnBaseCaseEntry(sources []int, bound float64)
	// OnBPSPull is called each time a recursion level pulls a batch from
	// its bucketed priority structure.
	OnBPSPull(level int, batchSize int, separator float64)
}

// NopObserver implements Observer with no-op methods. It is the default
// when no observer is supplied to Compute.
type NopObserver struct{}

func (NopObserver) OnPivotFound(level int, pivots []int)             {}
func (NopObserver) OnBaseCaseEntry(sources []int, bound float64)     {}
func (NopObserver) OnBPSPull(level int, batchSize int, separator float64) {}

// AdaptiveStats is the timing record produced by selector.Adaptive mode,
// re-exported here so callers of Compute don't need to import package
// selector just to read Result.Stats.
type AdaptiveStats = selector.AdaptiveStats
