package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/mazepath/internal/catalog"
	"github.com/katalvlaran/mazepath/maze"
)

// solver prints the report for each maze and logs progress.
type solver struct {
	out   io.Writer
	log   *zap.Logger
	trace bool
}

// solve parses one maze, runs an exhaustive search and prints its layout,
// distance and path. Only parse errors are returned; an unreachable exit
// is reported as "no path".
func (s *solver) solve(e catalog.Entry) error {
	g, err := maze.Parse(e.Layout)
	if err != nil {
		return err
	}
	log := s.log.With(zap.String("maze", e.Name))

	opts := []maze.Option{maze.WithMode(maze.Exhaustive)}
	if s.trace {
		opts = append(opts, maze.WithOnCommit(func(c maze.Entry) {
			log.Debug("commit", zap.Int("x", c.X), zap.Int("y", c.Y), zap.Int("distance", c.Distance))
		}))
	}
	search, err := maze.NewSearch(g, opts...)
	if err != nil {
		return err
	}
	result := search.Run()
	log.Debug("search finished",
		zap.Stringer("result", result),
		zap.Int("width", g.Width()),
		zap.Int("height", g.Height()),
	)

	fmt.Fprintf(s.out, "%s:\n%s\n\n", e.Name, g)

	d, err := search.Distance()
	if err != nil {
		return err
	}
	if d == maze.Unreachable {
		fmt.Fprintln(s.out, "Minimum distance: no path")
		fmt.Fprintln(s.out)
		log.Info("exit unreachable")
		return nil
	}
	fmt.Fprintf(s.out, "Minimum distance: %d\n", d)

	path, err := search.Path()
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Shortest path (%d cells):\n%s\n\n", len(path), maze.FormatPath(path))
	log.Info("solved", zap.Int("distance", d), zap.Int("cells", len(path)))
	return nil
}
