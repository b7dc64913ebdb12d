package pivot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrgraph/bmssp/core"
	"github.com/nrgraph/bmssp/pivot"
)

func newDistPi(n int) ([]float64, []int) {
	d := make([]float64, n)
	pi := make([]int, n)
	for i := range d {
		d[i] = 1e18
		pi[i] = -1
	}
	return d, pi
}

func TestFindRejectsEmptySources(t *testing.T) {
	g := core.NewGraphWithVertices(1)
	d, pi := newDistPi(1)
	_, err := pivot.Find(g, d, pi, nil, 100, 2)
	assert.ErrorIs(t, err, pivot.ErrEmptySources)
}

func TestFindAllSourcesPivotWhenWorkSetSmall(t *testing.T) {
	g := core.NewGraphWithVertices(3)
	require.NoError(t, g.AddEdge(0, 1, 1))
	d, pi := newDistPi(3)
	d[0] = 0

	res, err := pivot.Find(g, d, pi, []int{0}, 100, 5)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0}, res.Pivots)
	assert.ElementsMatch(t, []int{0, 1}, res.WorkSet)
}

func TestFindSelectsSourcesWithLargeSubtrees(t *testing.T) {
	// source 0 fans out to five children (subtree big); source 10 is isolated.
	g := core.NewGraphWithVertices(12)
	for v := 1; v <= 5; v++ {
		require.NoError(t, g.AddEdge(0, v, 1))
	}
	d, pi := newDistPi(12)
	d[0] = 0
	d[10] = 0

	res, err := pivot.Find(g, d, pi, []int{0, 10}, 1000, 2)
	require.NoError(t, err)
	assert.Contains(t, res.Pivots, 0)
	assert.NotContains(t, res.Pivots, 10)
}

func TestFindPivotsExcludeSourcesWithSmallSubtrees(t *testing.T) {
	// source 0 fans out wide (subtree ≥ k); source 2 stays isolated (subtree < k).
	// Six out-edges make |W| = 7 > k·|S| = 6, so subtree sizes decide.
	g := core.NewGraphWithVertices(8)
	for v := 1; v <= 6; v++ {
		require.NoError(t, g.AddEdge(0, v, 1))
	}
	d, pi := newDistPi(8)
	d[0] = 0
	d[2] = 0

	res, err := pivot.Find(g, d, pi, []int{0, 2}, 1000, 3)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0}, res.Pivots)
}

func TestFindRespectsBound(t *testing.T) {
	g := core.NewGraphWithVertices(3)
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(1, 2, 5))
	d, pi := newDistPi(3)
	d[0] = 0

	res, err := pivot.Find(g, d, pi, []int{0}, 6, 5)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1}, res.WorkSet, "vertex 2 is beyond bound (d=10 ≥ 6)")
}
