package maze_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/mazepath/maze"
)

// randomMaze builds an n×n maze with roughly 25% walls, start in the top-left
// corner and exit in the bottom-right one.
func randomMaze(n int, seed int64) string {
	r := rand.New(rand.NewSource(seed))
	var b strings.Builder
	for y := 0; y < n; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < n; x++ {
			switch {
			case x == 0 && y == 0:
				b.WriteByte('D')
			case x == n-1 && y == n-1:
				b.WriteByte('S')
			case r.Intn(4) == 0:
				b.WriteByte('#')
			default:
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// BenchmarkDistance measures a stop-at-exit solve on a 500×500 maze.
// Complexity: O(W×H)
func BenchmarkDistance(b *testing.B) {
	text := randomMaze(500, 42)
	g, err := maze.Parse(text)
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, _ := maze.NewSearch(g)
		s.Run()
		_, _ = s.Distance()
	}
}

// BenchmarkPath measures an exhaustive solve plus reconstruction on a 500×500 maze.
func BenchmarkPath(b *testing.B) {
	g, err := maze.Parse(randomMaze(500, 7))
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, _ := maze.NewSearch(g, maze.WithMode(maze.Exhaustive))
		s.Run()
		_, _ = s.Path()
	}
}

// BenchmarkParse measures parsing a 500×500 maze.
func BenchmarkParse(b *testing.B) {
	text := randomMaze(500, 1)
	b.SetBytes(int64(len(text)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = maze.Parse(text)
	}
}
