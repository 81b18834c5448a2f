// Command mazesolver prints the minimum distance and one shortest path for
// each maze it is given.
//
// Usage:
//
//	mazesolver                          # solve the builtin reference mazes
//	mazesolver -maze labyrinth.txt      # solve a single maze file
//	mazesolver -catalog mazes.yaml      # solve every maze of a YAML catalog
//	mazesolver -catalog mazes.yaml -name winding
//
// Exit status is 1 if any maze fails to parse, 2 on usage errors.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/mazepath/internal/catalog"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	mazeFile    string
	catalogFile string
	name        string
	logLevel    zapcore.Level
	trace       bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{logLevel: zapcore.InfoLevel}
	fs := flag.NewFlagSet("mazesolver", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.mazeFile, "maze", "", "path to a maze text file")
	fs.StringVar(&cfg.catalogFile, "catalog", "", "path to a YAML maze catalog")
	fs.StringVar(&cfg.name, "name", "", "solve only this catalog entry")
	fs.Var(&cfg.logLevel, "log-level", "log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.trace, "trace", false, "log every committed cell at debug level")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.mazeFile != "" && cfg.catalogFile != "" {
		return nil, errors.New("-maze and -catalog are mutually exclusive")
	}
	if cfg.name != "" && cfg.mazeFile != "" {
		return nil, errors.New("-name applies to catalogs only")
	}
	return cfg, nil
}

func newLogger(level zapcore.Level, w io.Writer) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core)
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, "mazesolver:", err)
		}
		return 2
	}
	log := newLogger(cfg.logLevel, stderr)
	defer log.Sync()

	entries, err := selectMazes(cfg)
	if err != nil {
		log.Error("cannot load mazes", zap.Error(err))
		return 1
	}

	s := &solver{out: stdout, log: log, trace: cfg.trace}
	status := 0
	for _, e := range entries {
		if err := s.solve(e); err != nil {
			log.Error("cannot solve maze", zap.String("maze", e.Name), zap.Error(err))
			status = 1
		}
	}
	return status
}

// selectMazes resolves the flags into the list of mazes to solve.
func selectMazes(cfg *config) ([]catalog.Entry, error) {
	if cfg.mazeFile != "" {
		b, err := os.ReadFile(cfg.mazeFile)
		if err != nil {
			return nil, err
		}
		return []catalog.Entry{{Name: cfg.mazeFile, Layout: string(b)}}, nil
	}

	c := catalog.Builtin()
	if cfg.catalogFile != "" {
		var err error
		if c, err = catalog.Load(cfg.catalogFile); err != nil {
			return nil, err
		}
	}
	if cfg.name == "" {
		return c.Mazes, nil
	}
	e, ok := c.Lookup(cfg.name)
	if !ok {
		return nil, fmt.Errorf("no maze named %q (have %v)", cfg.name, c.Names())
	}
	return []catalog.Entry{e}, nil
}
