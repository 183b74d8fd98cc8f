// Package solve defines result types and sentinel errors for the
// prefix-pruned grid word search.
package solve

import (
	"errors"
	"sort"
)

// Sentinel errors for search execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("solve: grid is nil")

	// ErrIndexNil is returned if a nil dictionary index is passed.
	ErrIndexNil = errors.New("solve: dictionary index is nil")

	// ErrStartOutOfBounds is returned when the starting cell lies outside the grid.
	ErrStartOutOfBounds = errors.New("solve: start cell out of bounds")
)

// neighborOffsets lists the eight (row, col) deltas in fixed reading
// order: NW, N, NE, W, E, SW, S, SE. The order never changes the result
// set but keeps traversal traces reproducible.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Coord identifies one grid cell by 0-based (row, col).
type Coord struct {
	Row, Col int
}

// CellWords pairs a starting cell with the sorted, deduplicated words
// discovered along paths beginning there.
type CellWords struct {
	Cell  Coord
	Words []string
}

// Report is the aggregate outcome of searching every cell of one grid.
// Cells holds only starting cells that found at least one word, in
// row-major order, each with its words sorted ascending — iteration over
// a Report is fully deterministic.
type Report struct {
	// Cells lists non-empty per-cell results in row-major order.
	Cells []CellWords

	// UniqueWords counts distinct words across all starting cells.
	UniqueWords int

	// TotalInstances sums per-cell word counts; a word found from two
	// different starting cells counts twice here but once in UniqueWords.
	TotalInstances int
}

// Unique returns the sorted union of words across all starting cells.
// Complexity: O(W log W) over the distinct words.
func (r *Report) Unique() []string {
	seen := make(map[string]struct{})
	for _, cw := range r.Cells {
		for _, w := range cw.Words {
			seen[w] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	sort.Strings(out)

	return out
}

// WordsAt returns the words found from (row, col), or nil when that cell
// found none. Complexity: O(log C) over recorded cells.
func (r *Report) WordsAt(row, col int) []string {
	i := sort.Search(len(r.Cells), func(i int) bool {
		c := r.Cells[i].Cell
		return c.Row > row || (c.Row == row && c.Col >= col)
	})
	if i < len(r.Cells) && r.Cells[i].Cell == (Coord{Row: row, Col: col}) {
		return r.Cells[i].Words
	}

	return nil
}

// bitset tracks visited cells by flat row-major index. It is sized once
// for a grid and cloned per stack frame, so sibling branches never
// observe each other's visitation.
type bitset []uint64

// newBitset returns a bitset able to hold n cells.
func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

// has reports whether cell i is marked.
func (b bitset) has(i int) bool {
	return b[i>>6]&(1<<uint(i&63)) != 0
}

// set marks cell i.
func (b bitset) set(i int) {
	b[i>>6] |= 1 << uint(i&63)
}

// clone returns an independent copy.
func (b bitset) clone() bitset {
	c := make(bitset, len(b))
	copy(c, b)

	return c
}
