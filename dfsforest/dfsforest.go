// Package dfsforest computes subtree sizes over a predecessor-induced forest
// restricted to a work set (used by the pivot finder, spec component C6, to
// decide which sources earned pivot status).
//
// Modeled on lvlath/dfs's explicit-stack traversal style, generalized
// from "walk a core.Graph's adjacency" to "walk the parent pointers recorded
// in a predecessor vector, filtered to a given vertex set."
package dfsforest

// SubtreeSizes builds the forest induced by pi restricted to inWorkSet — an
// edge pi[v] -> v exists in the forest iff v is in the set, v has a
// predecessor, and that predecessor is also in the set — rooted at the given
// sources, and returns each source's subtree size (the source itself plus
// every descendant reachable by following children edges).
//
// A vertex in the set whose predecessor is not in the set, and which is not
// itself a source, is simply absent from every source's tree; this matches
// §4.6, where only vertices reachable via relaxations that stayed within the
// work set contribute to a source's pivot-eligibility count.
func SubtreeSizes(pi []int, inWorkSet map[int]bool, sources []int) map[int]int {
	children := make(map[int][]int, len(inWorkSet))
	sourceSet := make(map[int]bool, len(sources))
	for _, s := range sources {
		sourceSet[s] = true
	}
	for v := range inWorkSet {
		if sourceSet[v] {
			continue
		}
		p := pi[v]
		if p >= 0 && inWorkSet[p] {
			children[p] = append(children[p], v)
		}
	}

	sizes := make(map[int]int, len(sources))
	for _, s := range sources {
		sizes[s] = countSubtree(s, children)
	}
	return sizes
}

// countSubtree walks the forest iteratively (explicit stack) to avoid
// recursion-depth limits on long chains, which the frontier relaxation in
// §4.6 readily produces.
func countSubtree(root int, children map[int][]int) int {
	stack := []int{root}
	count := 0
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		stack = append(stack, children[v]...)
	}
	return count
}
