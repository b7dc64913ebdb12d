package bfsreach_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrgraph/bmssp/bfsreach"
	"github.com/nrgraph/bmssp/core"
)

func TestEstimateExactOnSmallComponent(t *testing.T) {
	g := core.NewGraphWithVertices(5)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	// vertices 3,4 unreachable from 0.

	reach, exact := bfsreach.Estimate(g, 0, 100)
	assert.True(t, exact)
	assert.Equal(t, 3, reach)
}

func TestEstimateSaturatesToFullGraphWhenCapIsHit(t *testing.T) {
	n := 50
	g := core.NewGraphWithVertices(n)
	for i := 0; i < n-1; i++ {
		require.NoError(t, g.AddEdge(i, i+1, 1))
	}

	reach, exact := bfsreach.Estimate(g, 0, 10)
	assert.False(t, exact)
	assert.Equal(t, n, reach)
}

func TestEstimateZeroCapTreatsWholeGraphAsCap(t *testing.T) {
	g := core.NewGraphWithVertices(3)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))

	reach, exact := bfsreach.Estimate(g, 0, 0)
	assert.True(t, exact)
	assert.Equal(t, 3, reach)
}

func TestEstimateIsolatedSource(t *testing.T) {
	g := core.NewGraphWithVertices(4)
	reach, exact := bfsreach.Estimate(g, 0, 10)
	assert.True(t, exact)
	assert.Equal(t, 1, reach)
}
