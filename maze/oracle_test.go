package maze_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/mazepath/maze"
)

// oracleDistance computes the start→exit distance with gonum's Dijkstra on an
// undirected unit-weight graph of the passable cells.
func oracleDistance(g *maze.Grid) int {
	id := func(p maze.Point) int64 { return int64(p.Y*g.Width() + p.X) }

	ug := simple.NewUndirectedGraph()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if p := (maze.Point{X: x, Y: y}); g.Passable(p) {
				ug.AddNode(simple.Node(id(p)))
			}
		}
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := maze.Point{X: x, Y: y}
			if !g.Passable(p) {
				continue
			}
			for _, q := range []maze.Point{{X: x + 1, Y: y}, {X: x, Y: y + 1}} {
				if g.Passable(q) {
					ug.SetEdge(simple.Edge{F: simple.Node(id(p)), T: simple.Node(id(q))})
				}
			}
		}
	}

	shortest := path.DijkstraFrom(simple.Node(id(g.Start())), ug)
	_, w := shortest.To(id(g.Exit()))
	if math.IsInf(w, 1) {
		return maze.Unreachable
	}
	return int(w)
}

// TestAgainstOracle compares distances and path lengths with an independent
// shortest-path implementation on random mazes, reachable or not.
func TestAgainstOracle(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		text := randomMaze(12+int(seed%5)*4, seed)
		t.Run(fmt.Sprintf("seed%d", seed), func(t *testing.T) {
			g := mustParse(t, text)
			want := oracleDistance(g)

			d, err := maze.Distance(text)
			require.NoError(t, err)
			require.Equal(t, want, d)

			p, err := maze.ShortestPath(text)
			if want == maze.Unreachable {
				require.ErrorIs(t, err, maze.ErrNoPath)
				return
			}
			require.NoError(t, err)
			require.Len(t, p, want+1)
			requireAdjacent(t, p)
		})
	}
}
