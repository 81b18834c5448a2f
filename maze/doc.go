// Package maze provides a breadth-first shortest-path engine over a 2D grid
// read from a textual maze description.
//
// What
//
//   - Parse turns maze text into an immutable Grid:
//     'D' marks the start, 'S' the exit, '.' an open cell; anything else
//     (including '#' and positions past the end of a short line) is a wall.
//   - Search drives a FIFO frontier of (cell, distance) entries and commits
//     distances into a per-search distance map. It can be stepped one
//     dequeue at a time (Step) or run to a terminal state (Run).
//   - Path walks the completed distance map backward from the exit,
//     picking at each step the first neighbor whose distance is one less.
//   - Distance and ShortestPath wrap the three facets for one-shot queries.
//
// Movement
//
//	Four orthogonal moves only, scanned in the fixed order up, down, left,
//	right. The same order is used for expansion and for backward path
//	reconstruction, so the returned path is reproducible when several
//	shortest paths exist.
//
// Modes
//
//   - StopAtExit (default): the first dequeue of the exit reports Found.
//     Enough for distance queries.
//   - Exhaustive: the exit is committed but the frontier keeps draining
//     until empty, so every reachable cell carries a distance. Required by
//     Path.
//
// State machine
//
//	Ready → (Continuing)* → Found | Exhausted
//
//	Found and Exhausted are terminal: further Step calls return the same
//	result and do not touch the search state.
//
// Complexity (W = width, H = height)
//
//   - Parse:  O(W·H) time and memory.
//   - Run:    O(W·H) time; the frontier never holds more than 4·W·H entries.
//   - Path:   O(distance) time, O(distance) memory.
//
// Concurrency
//
//	A Grid is immutable and may be shared by any number of goroutines.
//	A Search mutates its own distance map and frontier and must not be
//	used concurrently; start one Search per solve.
//
// Usage
//
//	d, err := maze.Distance("D..\n.#.\n..S")
//	// d == 4
//
//	g, err := maze.Parse(text)
//	s, err := maze.NewSearch(g,
//	    maze.WithMode(maze.Exhaustive),
//	    maze.WithOnCommit(func(e maze.Entry) { /* ... */ }),
//	)
//	if s.Run() == maze.Found {
//	    path, _ := s.Path()
//	    fmt.Println(maze.FormatPath(path))
//	}
//
// Errors
//
//   - *ParseError wrapping ErrEmptyMaze, ErrMissingStart or ErrMissingExit.
//   - ErrGridNil          if NewSearch is given a nil grid.
//   - ErrOptionViolation  if an Option is invalid.
//   - ErrSearchIncomplete if Distance or Path is queried too early.
//   - ErrNoPath           if the exit cannot be reached.
package maze
