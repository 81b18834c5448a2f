package maze_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/maze"
)

// TestDistance covers the reference scenarios and the unreachable outcome.
func TestDistance(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{"Line3", "D.S", 2},
		{"Line5", "D...S", 4},
		{"Square", "D.\n.S", 2},
		{"Reversed", "S...D", 4},
		{"Example", exampleMaze, 8},
		{"Winding", windingMaze, 14},
		{"Adjacent", "DS", 1},
		{"WalledOff", "D#S", maze.Unreachable},
		{"ExitBoxedIn", "D...\n..#.\n.#S#\n..#.", maze.Unreachable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := maze.Distance(tc.text)
			require.NoError(t, err)
			require.Equal(t, tc.want, d)
		})
	}
}

// TestDistance_ParseError checks that malformed input surfaces as an error, not Unreachable.
func TestDistance_ParseError(t *testing.T) {
	d, err := maze.Distance("...")
	require.ErrorIs(t, err, maze.ErrMissingStart)
	require.Equal(t, maze.Unreachable, d)

	_, err = maze.ShortestPath("")
	require.ErrorIs(t, err, maze.ErrEmptyMaze)
}

// TestDistanceMatchesPath checks distance == len(path)-1, the endpoints and
// adjacency on a set of mazes, and that a fresh solve gives the same answer.
func TestDistanceMatchesPath(t *testing.T) {
	mazes := []string{
		"D.S", "D...S", "D.\n.S", exampleMaze, windingMaze, openMaze,
		serpentine(7, 9),
	}
	for i, text := range mazes {
		t.Run(fmt.Sprintf("maze%d", i), func(t *testing.T) {
			g, err := maze.Parse(text)
			require.NoError(t, err)

			d, err := maze.Distance(text)
			require.NoError(t, err)
			path, err := maze.ShortestPath(text)
			require.NoError(t, err)

			require.Equal(t, d, len(path)-1)
			require.Equal(t, g.Start(), path[0])
			require.Equal(t, g.Exit(), path[len(path)-1])
			requireAdjacent(t, path)
			for _, p := range path {
				require.True(t, g.Passable(p), "%v is a wall", p)
			}

			again, err := maze.ShortestPath(text)
			require.NoError(t, err)
			require.Equal(t, path, again)
		})
	}
}

// serpentine builds a w×h maze whose odd rows are walls with a single gap
// alternating between the right and left edge.
func serpentine(w, h int) string {
	rows := make([]string, h)
	for y := range rows {
		switch {
		case y%2 == 0:
			rows[y] = strings.Repeat(".", w)
		case y%4 == 1:
			rows[y] = strings.Repeat("#", w-1) + "."
		default:
			rows[y] = "." + strings.Repeat("#", w-1)
		}
	}
	rows[0] = "D" + rows[0][1:]
	last := rows[h-1]
	rows[h-1] = last[:w-1] + "S"
	return strings.Join(rows, "\n")
}

// TestSerpentine checks the distance through a serpentine corridor.
func TestSerpentine(t *testing.T) {
	// five corridors of width 7 crossed end to end (5×6 moves) plus 8 moves down
	d, err := maze.Distance(serpentine(7, 9))
	require.NoError(t, err)
	require.Equal(t, 5*6+8, d)
}
