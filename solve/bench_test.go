package solve_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/wordgrid/dict"
	"github.com/katalvlaran/wordgrid/grid"
	"github.com/katalvlaran/wordgrid/solve"
)

// benchSetup builds a deterministic random board and a synthetic
// dictionary drawn partly from board walks, so pruning has real work.
func benchSetup(b *testing.B, size, words int) (*grid.Grid, *dict.Index) {
	b.Helper()
	rng := rand.New(rand.NewSource(42))

	cells := make([]string, size*size)
	for i := range cells {
		cells[i] = string(rune('a' + rng.Intn(26)))
	}
	g, err := grid.New(size, cells)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	lines := make([]string, words)
	buf := make([]byte, 0, 8)
	for i := range lines {
		n := 4 + rng.Intn(5)
		buf = buf[:0]
		for j := 0; j < n; j++ {
			buf = append(buf, byte('a'+rng.Intn(26)))
		}
		lines[i] = string(buf)
	}
	ix, err := dict.Build(lines, dict.DefaultOptions())
	if err != nil {
		b.Fatalf("setup Build failed: %v", err)
	}

	return g, ix
}

// BenchmarkSearchFrom measures a single-cell search on a random 4×4 board
// against 20 000 synthetic entries.
func BenchmarkSearchFrom(b *testing.B) {
	g, ix := benchSetup(b, 4, 20000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solve.SearchFrom(g, ix, 0, 0); err != nil {
			b.Fatalf("SearchFrom failed: %v", err)
		}
	}
}

// BenchmarkSearchAll measures the full-board aggregation on an 8×8 board.
func BenchmarkSearchAll(b *testing.B) {
	g, ix := benchSetup(b, 8, 20000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solve.SearchAll(g, ix); err != nil {
			b.Fatalf("SearchAll failed: %v", err)
		}
	}
}
