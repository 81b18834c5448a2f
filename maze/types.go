// Package maze defines core types, options, and sentinel errors
// for the maze shortest-path engine.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for parsing and searching.
var (
	// ErrEmptyMaze indicates the input text holds no non-empty line.
	ErrEmptyMaze = errors.New("maze: input has no lines")
	// ErrMissingStart indicates no 'D' marker was found.
	ErrMissingStart = errors.New("maze: no start marker 'D'")
	// ErrMissingExit indicates no 'S' marker was found.
	ErrMissingExit = errors.New("maze: no exit marker 'S'")

	// ErrGridNil is returned if a nil grid is passed to NewSearch.
	ErrGridNil = errors.New("maze: grid is nil")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("maze: invalid option supplied")
	// ErrSearchIncomplete is returned when a result is queried before the
	// search reached the termination point the query needs.
	ErrSearchIncomplete = errors.New("maze: search has not run to completion")
	// ErrNoPath indicates the exit is not reachable from the start.
	ErrNoPath = errors.New("maze: no path from start to exit")
)

// Unreachable is the distance reported when the exit cannot be reached.
const Unreachable = -1

// undiscovered marks a cell with no committed distance yet.
const undiscovered = -1

// ParseError reports malformed maze text. Err is one of ErrEmptyMaze,
// ErrMissingStart or ErrMissingExit.
type ParseError struct {
	Width, Height int // dimensions read before the failure
	Err           error
}

func (e *ParseError) Error() string {
	if e.Height == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v (in %dx%d grid)", e.Err, e.Width, e.Height)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Point is a cell coordinate: X is the column, Y the row.
type Point struct {
	X, Y int
}

// String renders p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Entry is a frontier element: a cell and the tentative distance it was
// discovered at.
type Entry struct {
	Point
	Distance int
}

// String renders e as "(x,y)@distance".
func (e Entry) String() string {
	return fmt.Sprintf("%v@%d", e.Point, e.Distance)
}

// StepResult is the outcome of a single Step, and the current state of a Search.
type StepResult int

const (
	// Ready is the state of a Search that has not stepped yet.
	Ready StepResult = iota
	// Continuing means the search made progress and is not finished.
	Continuing
	// Found means the exit has a committed distance. Terminal.
	Found
	// Exhausted means the frontier emptied without reaching the exit. Terminal.
	Exhausted
)

// Terminal reports whether r is Found or Exhausted.
func (r StepResult) Terminal() bool {
	return r == Found || r == Exhausted
}

func (r StepResult) String() string {
	switch r {
	case Ready:
		return "ready"
	case Continuing:
		return "continuing"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("StepResult(%d)", int(r))
}

// Mode selects when a Search stops.
type Mode int

const (
	// StopAtExit reports Found on the first dequeue of the exit.
	StopAtExit Mode = iota
	// Exhaustive drains the whole frontier so every reachable cell gets a
	// distance. Path requires this mode.
	Exhaustive
)

func (m Mode) String() string {
	switch m {
	case StopAtExit:
		return "stop-at-exit"
	case Exhaustive:
		return "exhaustive"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Option configures a Search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by NewSearch.
type Option func(*Options)

// Options holds parameters and callbacks to customize a Search.
type Options struct {
	// Mode selects StopAtExit or Exhaustive termination.
	Mode Mode

	// OnEnqueue is called for every entry appended to the frontier.
	OnEnqueue func(Entry)

	// OnDequeue is called for every entry removed from the frontier,
	// stale duplicates included.
	OnDequeue func(Entry)

	// OnCommit is called once per cell when its distance becomes final.
	OnCommit func(Entry)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with StopAtExit mode and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Mode:      StopAtExit,
		OnEnqueue: func(Entry) {},
		OnDequeue: func(Entry) {},
		OnCommit:  func(Entry) {},
	}
}

// WithMode selects the termination mode. Unknown modes are rejected.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != StopAtExit && m != Exhaustive {
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(m))
			return
		}
		o.Mode = m
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(Entry)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(Entry)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnCommit registers a callback to run when a cell's distance is committed.
func WithOnCommit(fn func(Entry)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCommit = fn
		}
	}
}
