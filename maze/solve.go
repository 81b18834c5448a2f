package maze

// Distance parses text and returns the minimum number of moves from the
// start to the exit, or Unreachable. The search stops at the first dequeue
// of the exit. The only errors are parse errors.
func Distance(text string) (int, error) {
	g, err := Parse(text)
	if err != nil {
		return Unreachable, err
	}
	s, err := NewSearch(g)
	if err != nil {
		return Unreachable, err
	}
	s.Run()
	return s.Distance()
}

// ShortestPath parses text and returns one shortest path from the start to
// the exit, both inclusive. The search runs in Exhaustive mode so the whole
// distance map is available for reconstruction.
// Returns ErrNoPath when the exit is unreachable, *ParseError on bad input.
func ShortestPath(text string) ([]Point, error) {
	g, err := Parse(text)
	if err != nil {
		return nil, err
	}
	s, err := NewSearch(g, WithMode(Exhaustive))
	if err != nil {
		return nil, err
	}
	s.Run()
	return s.Path()
}
