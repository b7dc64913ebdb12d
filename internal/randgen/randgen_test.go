package randgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrgraph/bmssp/internal/randgen"
)

func TestBuildProducesApproximateEdgeCount(t *testing.T) {
	g := randgen.Build(randgen.Options{N: 1000, M: 5000, MinWeight: 1, MaxWeight: 100, Seed: 7})
	require.Equal(t, 1000, g.VertexCount())
	// Bernoulli sampling is approximate; allow generous slack.
	assert.InDelta(t, 5000, g.EdgeCount(), 1500)
}

func TestBuildWeightsWithinRange(t *testing.T) {
	g := randgen.Build(randgen.Options{N: 50, M: 200, MinWeight: 1, MaxWeight: 100, Seed: 1})
	for v := 0; v < g.VertexCount(); v++ {
		for e := range g.Outgoing(v) {
			assert.GreaterOrEqual(t, e.Weight, 1.0)
			assert.LessOrEqual(t, e.Weight, 100.0)
			assert.NotEqual(t, v, e.To, "no self-loops")
		}
	}
}

func TestBuildIsDeterministicForFixedSeed(t *testing.T) {
	a := randgen.Build(randgen.Options{N: 200, M: 800, MinWeight: 1, MaxWeight: 10, Seed: 42})
	b := randgen.Build(randgen.Options{N: 200, M: 800, MinWeight: 1, MaxWeight: 10, Seed: 42})
	assert.Equal(t, a.EdgeCount(), b.EdgeCount())

	for v := 0; v < a.VertexCount(); v++ {
		var aEdges, bEdges []float64
		for e := range a.Outgoing(v) {
			aEdges = append(aEdges, e.Weight)
		}
		for e := range b.Outgoing(v) {
			bEdges = append(bEdges, e.Weight)
		}
		assert.Equal(t, aEdges, bEdges)
	}
}

func TestBuildTinyGraphHasNoEdges(t *testing.T) {
	g := randgen.Build(randgen.Options{N: 1, M: 5})
	assert.Equal(t, 1, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
}
