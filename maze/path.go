package maze

import (
	"fmt"
	"strings"
)

// Path reconstructs one shortest path from the start to the exit, both
// inclusive. It walks backward from the exit, each time moving to the first
// neighbor (up, down, left, right) whose committed distance is exactly one
// less, until it reaches the start.
//
// The search must have been built with Exhaustive mode and run to a terminal
// state, otherwise ErrSearchIncomplete is returned. An undiscovered exit
// yields ErrNoPath.
//
// The result holds distance+1 points and consecutive points are orthogonally
// adjacent. Complexity: O(distance).
func (s *Search) Path() ([]Point, error) {
	if s.opts.Mode != Exhaustive || !s.state.Terminal() {
		return nil, ErrSearchIncomplete
	}
	g := s.grid
	d := s.dist[g.index(g.exit)]
	if d == undiscovered {
		return nil, ErrNoPath
	}

	path := make([]Point, d+1)
	cur := g.exit
	path[d] = cur
	for k := d - 1; k >= 0; k-- {
		prev, ok := s.predecessor(cur, k)
		if !ok {
			return nil, fmt.Errorf("%w: no neighbor of %v at distance %d", ErrNoPath, cur, k)
		}
		path[k] = prev
		cur = prev
	}
	return path, nil
}

// predecessor returns the first neighbor of p, in scan order, whose committed
// distance equals want.
func (s *Search) predecessor(p Point, want int) (Point, bool) {
	for _, o := range offsets {
		n := Point{p.X + o.X, p.Y + o.Y}
		if !s.grid.InBounds(n) {
			continue
		}
		if s.dist[s.grid.index(n)] == want {
			return n, true
		}
	}
	return Point{}, false
}

// FormatPath renders a path as "(x,y) -> (x,y) -> ...".
func FormatPath(path []Point) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = p.String()
	}
	return strings.Join(parts, " -> ")
}
