package basecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrgraph/bmssp/basecase"
	"github.com/nrgraph/bmssp/core"
)

func newDistPi(n int) ([]float64, []int) {
	d := make([]float64, n)
	pi := make([]int, n)
	for i := range d {
		d[i] = basecase.Inf
		pi[i] = -1
	}
	return d, pi
}

// chain builds 0 -> 1 -> 2 -> ... -> n-1, each edge weight 1.
func chain(n int) *core.Graph {
	g := core.NewGraphWithVertices(n)
	for i := 0; i < n-1; i++ {
		_ = g.AddEdge(i, i+1, 1)
	}
	return g
}

func TestRunRejectsEmptySources(t *testing.T) {
	g := core.NewGraphWithVertices(1)
	d, pi := newDistPi(1)
	_, _, err := basecase.Run(g, d, pi, nil, basecase.Inf, 1)
	assert.ErrorIs(t, err, basecase.ErrEmptySources)
}

func TestRunSettlesFewerThanKPlusOneReturnsOriginalBound(t *testing.T) {
	g := chain(3) // 0->1->2, only 3 vertices total
	d, pi := newDistPi(3)
	d[0] = 0
	newBound, settled, err := basecase.Run(g, d, pi, map[int]float64{0: 0}, 100, 10)
	require.NoError(t, err)
	assert.Equal(t, 100.0, newBound)
	assert.ElementsMatch(t, []int{0, 1, 2}, settled)
	assert.Equal(t, 0.0, d[0])
	assert.Equal(t, 1.0, d[1])
	assert.Equal(t, 2.0, d[2])
	assert.Equal(t, 0, pi[1])
	assert.Equal(t, 1, pi[2])
}

func TestRunStopsAfterKPlusOneSettled(t *testing.T) {
	g := chain(10)
	d, pi := newDistPi(10)
	d[0] = 0
	newBound, settled, err := basecase.Run(g, d, pi, map[int]float64{0: 0}, 1000, 2)
	require.NoError(t, err)
	// k=2: settle 0,1,2 (3 = k+1), (k+1)-th distance is d[2]=2.
	assert.Equal(t, 2.0, newBound)
	assert.ElementsMatch(t, []int{0, 1}, settled)
}

func TestRunRespectsBound(t *testing.T) {
	g := chain(10)
	d, pi := newDistPi(10)
	d[0] = 0
	newBound, settled, err := basecase.Run(g, d, pi, map[int]float64{0: 0}, 2.5, 100)
	require.NoError(t, err)
	assert.Equal(t, 2.5, newBound)
	assert.ElementsMatch(t, []int{0, 1, 2}, settled)
	assert.True(t, d[3] == basecase.Inf)
}

func TestRunMultiSource(t *testing.T) {
	g := core.NewGraphWithVertices(5)
	require.NoError(t, g.AddEdge(0, 2, 5))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(2, 4, 1))

	d, pi := newDistPi(5)
	d[0], d[1] = 0, 0
	_, settled, err := basecase.Run(g, d, pi, map[int]float64{0: 0, 1: 0}, 1000, 10)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, settled)
	assert.Equal(t, 1.0, d[2]) // arrives via vertex 1, not 0
	assert.Equal(t, 1, pi[2])
}

func TestRunOnlyImprovesStrictly(t *testing.T) {
	g := core.NewGraphWithVertices(2)
	require.NoError(t, g.AddEdge(0, 1, 1))
	d, pi := newDistPi(2)
	d[0] = 0
	d[1] = 1 // already optimal
	pi[1] = -1
	_, _, err := basecase.Run(g, d, pi, map[int]float64{0: 0}, 1000, 10)
	require.NoError(t, err)
	assert.Equal(t, -1, pi[1], "equal-cost relaxation must not overwrite predecessor")
}
