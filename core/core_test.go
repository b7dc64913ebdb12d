package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrgraph/bmssp/core"
)

func TestAddVertexAssignsSuccessiveIDs(t *testing.T) {
	g := core.NewGraph()
	require.Equal(t, 0, g.AddVertex())
	require.Equal(t, 1, g.AddVertex())
	require.Equal(t, 2, g.AddVertex())
	assert.Equal(t, 3, g.VertexCount())
}

func TestAddEdgeRejectsNegativeWeight(t *testing.T) {
	g := core.NewGraphWithVertices(2)
	err := g.AddEdge(0, 1, -1)
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
	assert.False(t, g.HasEdge(0, 1))
}

func TestAddEdgeRejectsOutOfRangeVertex(t *testing.T) {
	g := core.NewGraphWithVertices(2)
	err := g.AddEdge(0, 5, 1)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

func TestParallelEdgesWeightPicksCheapest(t *testing.T) {
	g := core.NewGraphWithVertices(2)
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(0, 1, 2))

	w, ok := g.Weight(0, 1)
	require.True(t, ok)
	assert.Equal(t, 2.0, w)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestRemoveEdge(t *testing.T) {
	g := core.NewGraphWithVertices(2)
	require.NoError(t, g.AddEdge(0, 1, 1))
	assert.True(t, g.RemoveEdge(0, 1))
	assert.False(t, g.HasEdge(0, 1))
	assert.False(t, g.RemoveEdge(0, 1))
}

func TestOutgoingIncomingRepeatable(t *testing.T) {
	g := core.NewGraphWithVertices(3)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(0, 2, 2))

	collect := func() []int {
		var got []int
		for e := range g.Outgoing(0) {
			got = append(got, e.To)
		}
		return got
	}
	assert.Equal(t, []int{1, 2}, collect())
	assert.Equal(t, []int{1, 2}, collect(), "Outgoing must be safe to call repeatedly")

	var incomingFrom []int
	for e := range g.Incoming(1) {
		incomingFrom = append(incomingFrom, e.To)
	}
	assert.Equal(t, []int{0}, incomingFrom)
}

func TestStats(t *testing.T) {
	g := core.NewGraphWithVertices(3)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))

	st := g.Stats()
	assert.Equal(t, 3, st.VertexCount)
	assert.Equal(t, 3, st.EdgeCount)
	assert.Equal(t, 2, st.MaxOutDeg)
	assert.Equal(t, 2, st.MaxInDeg)
}

func TestSelfLoopIsAccepted(t *testing.T) {
	g := core.NewGraphWithVertices(1)
	require.NoError(t, g.AddEdge(0, 0, 3))
	assert.True(t, g.HasEdge(0, 0))
	// A self loop can never strictly improve d[0]; callers rely on this
	// without any special-casing in relaxation.
}
