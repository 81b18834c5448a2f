package catalog

import (
	"strings"
)

const builtinYAML = `
mazes:
  - name: example
    layout: |
      D..#.
      ##...
      .#.#.
      ...#.
      ####S
  - name: winding
    layout: |
      .#.......
      D#.#####.
      .#.#...#.
      ......#.#
      ###.#..#.
      .##.#.##.
      ..#.#..#.
      #.#.##.#.
      ....#S.#.
`

// Builtin returns the two reference mazes solved when no input is given:
// a 5×5 maze and a 9×9 maze with a winding corridor.
func Builtin() *Catalog {
	c, err := Decode(strings.NewReader(builtinYAML))
	if err != nil {
		panic("catalog: builtin catalog is invalid: " + err.Error())
	}
	return c
}
