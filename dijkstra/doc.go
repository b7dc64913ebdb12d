// Package dijkstra provides the classical single-source shortest-path
// baseline: a min-heap priority queue over non-negative edge weights,
// expanding the next-closest vertex until the queue drains or a configured
// bound is exceeded.
//
// The algorithm selector (package selector) dispatches here for graphs
// where the asymptotic advantage of the recursive bounded engine (package
// bmssp) does not outweigh its constant-factor and memory overhead — small
// graphs, or graphs with limited reachability from the source.
//
// Complexity: O((V + E) log V) time, O(V + E) space under the lazy
// decrease-key discipline (duplicate heap entries, skipped on pop if the
// vertex is already settled).
package dijkstra
