// Package grid models the square letter board a word search runs over:
// bounds checking, letter access, and row-major index conversion.
package grid

import (
	"strings"
)

// New constructs a Grid of the given size from exactly size² one-letter
// cells in row-major order. Each cell must be a single ASCII letter;
// uppercase is folded to lowercase. The input is copied, so later
// mutation of cells cannot affect the Grid.
// Returns ErrGridSize if size < 1, ErrCellCount on a length mismatch,
// ErrNotLetter on any malformed cell.
// Complexity: O(size²) time and memory.
func New(size int, cells []string) (*Grid, error) {
	// 1. Validate dimensions
	if size < 1 {
		return nil, ErrGridSize
	}
	if len(cells) != size*size {
		return nil, ErrCellCount
	}

	// 2. Validate and normalize every cell
	letters := make([]byte, len(cells))
	for i, c := range cells {
		b, ok := letterByte(c)
		if !ok {
			return nil, ErrNotLetter
		}
		letters[i] = b
	}

	return &Grid{size: size, cells: letters}, nil
}

// FromRows constructs a Grid from one string per row. The row count fixes
// the size; every row must contain exactly that many ASCII letters.
// Returns ErrGridSize on empty input, ErrRaggedRows on a length mismatch,
// ErrNotLetter on any non-letter byte.
// Complexity: O(size²).
func FromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrGridSize
	}
	n := len(rows)
	letters := make([]byte, 0, n*n)
	for _, row := range rows {
		if len(row) != n {
			return nil, ErrRaggedRows
		}
		for i := 0; i < n; i++ {
			b, ok := letterByte(row[i : i+1])
			if !ok {
				return nil, ErrNotLetter
			}
			letters = append(letters, b)
		}
	}

	return &Grid{size: n, cells: letters}, nil
}

// Size returns the grid dimension N. Complexity: O(1).
func (g *Grid) Size() int { return g.size }

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// LetterAt returns the lowercase letter at (row, col).
// Precondition: InBounds(row, col); panics otherwise.
// Complexity: O(1).
func (g *Grid) LetterAt(row, col int) byte {
	if !g.InBounds(row, col) {
		panic("grid: LetterAt out of bounds")
	}

	return g.cells[row*g.size+col]
}

// Index maps (row, col) to a row-major index: row*Size + col.
// Complexity: O(1).
func (g *Grid) Index(row, col int) int {
	return row*g.size + col
}

// Coordinate converts a row-major index back to (row, col).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.size, idx % g.size
}

// String renders the grid one row per line, for diagnostics and tests.
// Complexity: O(size²).
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.size * (g.size + 1))
	for r := 0; r < g.size; r++ {
		sb.Write(g.cells[r*g.size : (r+1)*g.size])
		if r < g.size-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// letterByte validates a one-letter cell and returns its lowercase byte.
func letterByte(c string) (byte, bool) {
	if len(c) != 1 {
		return 0, false
	}
	b := c[0]
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	if b < 'a' || b > 'z' {
		return 0, false
	}

	return b, true
}
