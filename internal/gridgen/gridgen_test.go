package gridgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrgraph/bmssp/dijkstra"
	"github.com/nrgraph/bmssp/internal/gridgen"
)

func TestBuildConn8CornerToCornerDistance(t *testing.T) {
	g := gridgen.Build(10, 10, gridgen.Options{Conn: gridgen.Conn8})
	require.Equal(t, 100, g.VertexCount())

	res, err := dijkstra.Run(g, gridgen.Index(10, 0, 0))
	require.NoError(t, err)

	target := gridgen.Index(10, 9, 9)
	assert.InDelta(t, 9*1.4, res.Dist[target], 1e-9)
}

func TestBuildWithWallsKeepsTargetFiniteAndDetourRequired(t *testing.T) {
	walls := map[[2]int]bool{}
	for y := 0; y <= 7; y++ {
		walls[[2]int{5, y}] = true
	}
	g := gridgen.Build(10, 10, gridgen.Options{Conn: gridgen.Conn8, Walls: walls})

	res, err := dijkstra.Run(g, gridgen.Index(10, 0, 0), dijkstra.WithReturnPath())
	require.NoError(t, err)

	target := gridgen.Index(10, 9, 9)
	assert.Less(t, res.Dist[target], 1e18, "target must remain reachable around the wall")

	for v := 0; v <= 7; v++ {
		walledID := gridgen.Index(10, 5, v)
		assert.NotEqual(t, walledID, res.Pred[target])
	}
}

func TestConn4HasNoDiagonalWeight(t *testing.T) {
	g := gridgen.Build(3, 3, gridgen.Options{Conn: gridgen.Conn4})
	res, err := dijkstra.Run(g, gridgen.Index(3, 0, 0))
	require.NoError(t, err)
	// corner-to-corner under 4-connectivity must be a multiple of the
	// cardinal weight, never the diagonal one.
	assert.Equal(t, 4.0, res.Dist[gridgen.Index(3, 2, 2)])
}

func TestCoordinateInvertsIndex(t *testing.T) {
	x, y := gridgen.Coordinate(10, gridgen.Index(10, 3, 7))
	assert.Equal(t, 3, x)
	assert.Equal(t, 7, y)
}
