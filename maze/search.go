package maze

// Search holds the mutable state of one breadth-first solve over a Grid:
// the distance map and the FIFO frontier. A Search is not safe for
// concurrent use; the Grid it reads may be shared.
type Search struct {
	grid     *Grid
	opts     Options
	dist     []int
	frontier []Entry
	state    StepResult
}

// NewSearch prepares a search over g. Every cell starts undiscovered except
// the start, which is committed at distance 0 and seeds the frontier.
// Returns ErrGridNil for a nil grid, ErrOptionViolation for bad options.
func NewSearch(g *Grid, opts ...Option) (*Search, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s := &Search{
		grid:     g,
		opts:     o,
		dist:     make([]int, g.Cells()),
		frontier: make([]Entry, 0, 4),
		state:    Ready,
	}
	for i := range s.dist {
		s.dist[i] = undiscovered
	}
	seed := Entry{Point: g.start, Distance: 0}
	s.commit(seed)
	s.enqueue(seed)

	return s, nil
}

// Step performs exactly one dequeue-and-expand operation and returns
// Continuing, Found or Exhausted. Once a terminal result is reached it is
// returned again on every call.
//
// Rules for the dequeued entry:
//   - the exit: its distance is committed if still undiscovered and it is
//     never expanded; StopAtExit reports Found, Exhaustive keeps draining;
//   - already committed and not the start: stale duplicate, dropped;
//   - otherwise: commit and enqueue each undiscovered neighbor at distance+1.
func (s *Search) Step() StepResult {
	if s.state.Terminal() {
		return s.state
	}
	if len(s.frontier) == 0 {
		return s.finish()
	}

	e := s.dequeue()
	g := s.grid
	s.state = Continuing

	if e.Point == g.exit {
		if s.dist[g.index(e.Point)] == undiscovered {
			s.commit(e)
		}
		if s.opts.Mode == StopAtExit {
			s.state = Found
		}
		return s.state
	}

	if e.Point != g.start {
		if s.dist[g.index(e.Point)] != undiscovered {
			return s.state // stale
		}
		s.commit(e)
	}

	for _, n := range g.Neighbors(e.Point) {
		if s.dist[g.index(n)] != undiscovered {
			continue
		}
		s.enqueue(Entry{Point: n, Distance: e.Distance + 1})
	}
	return s.state
}

// Run steps until a terminal result and returns it.
// Complexity: O(W×H).
func (s *Search) Run() StepResult {
	for {
		if r := s.Step(); r.Terminal() {
			return r
		}
	}
}

// Distance returns the committed exit distance, or Unreachable if the
// frontier was exhausted first. It returns ErrSearchIncomplete until the
// search has reached Found or Exhausted.
func (s *Search) Distance() (int, error) {
	if !s.state.Terminal() {
		return Unreachable, ErrSearchIncomplete
	}
	if d := s.dist[s.grid.index(s.grid.exit)]; d != undiscovered {
		return d, nil
	}
	return Unreachable, nil
}

// State returns the result of the last Step, or Ready before the first one.
func (s *Search) State() StepResult { return s.state }

// Mode returns the termination mode the search was built with.
func (s *Search) Mode() Mode { return s.opts.Mode }

// Grid returns the grid being searched.
func (s *Search) Grid() *Grid { return s.grid }

// DistanceAt returns the committed distance of p; ok is false if p is out
// of bounds or not yet discovered.
func (s *Search) DistanceAt(p Point) (d int, ok bool) {
	if !s.grid.InBounds(p) {
		return 0, false
	}
	d = s.dist[s.grid.index(p)]
	return d, d != undiscovered
}

// Frontier returns a copy of the pending entries, oldest first.
func (s *Search) Frontier() []Entry {
	out := make([]Entry, len(s.frontier))
	copy(out, s.frontier)
	return out
}

// enqueue appends e to the frontier and calls OnEnqueue.
func (s *Search) enqueue(e Entry) {
	s.opts.OnEnqueue(e)
	s.frontier = append(s.frontier, e)
}

// dequeue pops the oldest entry and calls OnDequeue.
func (s *Search) dequeue() Entry {
	e := s.frontier[0]
	s.frontier = s.frontier[1:]
	s.opts.OnDequeue(e)
	return e
}

// commit writes e.Distance as the final distance of e.Point.
func (s *Search) commit(e Entry) {
	s.dist[s.grid.index(e.Point)] = e.Distance
	s.opts.OnCommit(e)
}

// finish settles the terminal state once the frontier is empty.
func (s *Search) finish() StepResult {
	if s.dist[s.grid.index(s.grid.exit)] != undiscovered {
		s.state = Found
	} else {
		s.state = Exhausted
	}
	return s.state
}
