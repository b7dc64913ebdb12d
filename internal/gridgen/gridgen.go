// Package gridgen builds dense-int test fixtures shaped like a 2D grid with
// 4- or 8-connectivity, for exercising shortest-path correctness on
// structured (non-random) topologies.
//
// Grounded on lvlath/gridgraph's offset-table approach (neighborOffsets,
// InBounds, row-major index/Coordinate), adapted from its string-keyed
// core.Graph target to this module's dense-int core.View and from unit
// edge weights to the cardinal/diagonal weighting a grid distance fixture
// needs.
package gridgen

import "github.com/nrgraph/bmssp/core"

// Connectivity selects which neighbor offsets a cell connects to.
type Connectivity int

const (
	// Conn4 connects only the four cardinal neighbors.
	Conn4 Connectivity = iota
	// Conn8 additionally connects the four diagonal neighbors.
	Conn8
)

var offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
var offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// Options configures grid construction. CardinalWeight and DiagonalWeight
// default to 1.0 and 1.4 respectively when zero (this matches spec.md §8
// scenario 3's unit/diagonal weighting).
type Options struct {
	Conn           Connectivity
	CardinalWeight float64
	DiagonalWeight float64
	Walls          map[[2]int]bool // neighbor links into/out of these cells are skipped
}

// Build constructs a width×height grid graph. Index assigns vertex ids
// row-major: Index(x, y) = y*width + x. Walled cells still occupy their
// vertex slot (so indices stay dense and predictable) but carry no edges
// in or out.
func Build(width, height int, opts Options) *core.Graph {
	cardinal := opts.CardinalWeight
	if cardinal == 0 {
		cardinal = 1.0
	}
	diagonal := opts.DiagonalWeight
	if diagonal == 0 {
		diagonal = 1.4
	}
	neighborOffsets := offsets4
	if opts.Conn == Conn8 {
		neighborOffsets = offsets8
	}

	g := core.NewGraphWithVertices(width * height)
	inBounds := func(x, y int) bool { return x >= 0 && x < width && y >= 0 && y < height }
	walled := func(x, y int) bool { return opts.Walls != nil && opts.Walls[[2]int{x, y}] }
	index := func(x, y int) int { return y*width + x }

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if walled(x, y) {
				continue
			}
			u := index(x, y)
			for _, d := range neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !inBounds(nx, ny) || walled(nx, ny) {
					continue
				}
				w := cardinal
				if d[0] != 0 && d[1] != 0 {
					w = diagonal
				}
				_ = g.AddEdge(u, index(nx, ny), w)
			}
		}
	}
	return g
}

// Index maps (x, y) to its row-major vertex id, matching Build's scheme.
func Index(width, x, y int) int { return y*width + x }

// Coordinate inverts Index for a given width.
func Coordinate(width, idx int) (x, y int) { return idx % width, idx / width }
