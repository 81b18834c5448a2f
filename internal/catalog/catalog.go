// Package catalog loads named maze layouts from YAML documents.
//
// A catalog file looks like:
//
//	mazes:
//	  - name: example
//	    layout: |
//	      D..#.
//	      ##...
//	      .#.#.
//	      ...#.
//	      ####S
package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyCatalog indicates a document without any maze entry.
	ErrEmptyCatalog = errors.New("catalog: no mazes defined")
	// ErrInvalidEntry indicates an entry without a name or a layout, or a duplicate name.
	ErrInvalidEntry = errors.New("catalog: invalid entry")
)

// Entry is one named maze layout.
type Entry struct {
	Name   string `yaml:"name"`
	Layout string `yaml:"layout"`
}

// Catalog is an ordered list of maze layouts.
type Catalog struct {
	Mazes []Entry `yaml:"mazes"`
}

// Decode reads a YAML catalog from r and validates it.
func Decode(r io.Reader) (*Catalog, error) {
	c := &Catalog{}
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyCatalog
		}
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads and validates the catalog file at path.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Lookup returns the entry called name.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	for _, e := range c.Mazes {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Names lists entry names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Mazes))
	for i, e := range c.Mazes {
		names[i] = e.Name
	}
	return names
}

func (c *Catalog) validate() error {
	if len(c.Mazes) == 0 {
		return ErrEmptyCatalog
	}
	seen := make(map[string]bool, len(c.Mazes))
	for i, e := range c.Mazes {
		switch {
		case strings.TrimSpace(e.Name) == "":
			return fmt.Errorf("%w: entry %d has no name", ErrInvalidEntry, i)
		case strings.TrimSpace(e.Layout) == "":
			return fmt.Errorf("%w: entry %q has no layout", ErrInvalidEntry, e.Name)
		case seen[e.Name]:
			return fmt.Errorf("%w: duplicate name %q", ErrInvalidEntry, e.Name)
		}
		seen[e.Name] = true
	}
	return nil
}
