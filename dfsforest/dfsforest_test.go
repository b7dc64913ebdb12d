package dfsforest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nrgraph/bmssp/dfsforest"
)

func TestSubtreeSizesSimpleChain(t *testing.T) {
	// forest: 0 -> 1 -> 2, 0 -> 3 ; all four in the work set, source is 0.
	pi := []int{-1, 0, 1, 0}
	w := map[int]bool{0: true, 1: true, 2: true, 3: true}

	sizes := dfsforest.SubtreeSizes(pi, w, []int{0})
	assert.Equal(t, 4, sizes[0])
}

func TestSubtreeSizesMultipleSources(t *testing.T) {
	// two disjoint trees rooted at 0 and 10.
	pi := []int{-1, 0, 0, -1, 10}
	w := map[int]bool{0: true, 1: true, 2: true, 10: true, 4: true}
	sizes := dfsforest.SubtreeSizes(pi, w, []int{0, 10})
	assert.Equal(t, 3, sizes[0])
	assert.Equal(t, 2, sizes[10])
}

func TestSubtreeSizesExcludesVerticesOutsideWorkSet(t *testing.T) {
	// vertex 2's predecessor 1 is not in the work set, so 2 is orphaned.
	pi := []int{-1, 0, 1}
	w := map[int]bool{0: true, 2: true}
	sizes := dfsforest.SubtreeSizes(pi, w, []int{0})
	assert.Equal(t, 1, sizes[0])
}

func TestSubtreeSizesSourceAlone(t *testing.T) {
	pi := []int{-1}
	w := map[int]bool{0: true}
	sizes := dfsforest.SubtreeSizes(pi, w, []int{0})
	assert.Equal(t, 1, sizes[0])
}
