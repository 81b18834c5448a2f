package maze

import (
	"strings"
)

// Cell markers recognised by Parse.
const (
	startMarker = 'D'
	exitMarker  = 'S'
	openMarker  = '.'
	wallMarker  = '#'
)

// offsets lists the orthogonal moves in scan order: up, down, left, right.
// Expansion and path reconstruction both rely on this order for tie-breaking.
var offsets = [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Grid is the passability map of a maze together with its start and exit.
// It is immutable once built.
type Grid struct {
	width, height int
	open          []bool // row-major, true = passable
	start, exit   Point
}

// Parse builds a Grid from maze text.
//
// Lines are separated by "\n", "\r\n" or "\r"; empty lines are dropped.
// The width is the longest line; shorter lines are padded with walls.
// When a marker occurs more than once, the first one in row-major order
// is used and later ones are plain open cells.
//
// Returns a *ParseError wrapping ErrEmptyMaze, ErrMissingStart or ErrMissingExit.
// Complexity: O(W×H) time and memory.
func Parse(text string) (*Grid, error) {
	lines := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r'
	})
	if len(lines) == 0 {
		return nil, &ParseError{Err: ErrEmptyMaze}
	}

	rows := make([][]rune, len(lines))
	w := 0
	for y, line := range lines {
		rows[y] = []rune(line)
		if len(rows[y]) > w {
			w = len(rows[y])
		}
	}
	h := len(rows)

	g := &Grid{
		width:  w,
		height: h,
		open:   make([]bool, w*h),
	}
	var haveStart, haveExit bool
	for y, row := range rows {
		for x, c := range row {
			p := Point{x, y}
			switch c {
			case startMarker:
				if !haveStart {
					g.start, haveStart = p, true
				}
				g.open[g.index(p)] = true
			case exitMarker:
				if !haveExit {
					g.exit, haveExit = p, true
				}
				g.open[g.index(p)] = true
			case openMarker:
				g.open[g.index(p)] = true
			}
		}
	}

	switch {
	case !haveStart:
		return nil, &ParseError{Width: w, Height: h, Err: ErrMissingStart}
	case !haveExit:
		return nil, &ParseError{Width: w, Height: h, Err: ErrMissingExit}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Start returns the start cell ('D').
func (g *Grid) Start() Point { return g.start }

// Exit returns the exit cell ('S').
func (g *Grid) Exit() Point { return g.exit }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Passable reports whether p is in bounds and not a wall.
func (g *Grid) Passable(p Point) bool {
	return g.InBounds(p) && g.open[g.index(p)]
}

// Neighbors returns the cells a search may step into from p: in bounds,
// passable and not the start, in the order up, down, left, right.
func (g *Grid) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(offsets))
	for _, d := range offsets {
		n := Point{p.X + d.X, p.Y + d.Y}
		if n == g.start || !g.Passable(n) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Cells returns the number of cells, walls included.
func (g *Grid) Cells() int { return g.width * g.height }

// String renders the grid in normalised form: 'D', 'S', '.' and '#' only,
// one line per row, short lines padded with walls.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.width; x++ {
			p := Point{x, y}
			switch {
			case p == g.start:
				b.WriteByte(startMarker)
			case p == g.exit:
				b.WriteByte(exitMarker)
			case g.open[g.index(p)]:
				b.WriteByte(openMarker)
			default:
				b.WriteByte(wallMarker)
			}
		}
	}
	return b.String()
}

// index maps p to a row-major index: y*width + x.
func (g *Grid) index(p Point) int {
	return p.Y*g.width + p.X
}
