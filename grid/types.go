// Package grid defines the immutable letter-grid type and sentinel
// errors for its construction.
package grid

import (
	"errors"
)

// Sentinel errors for grid construction.
var (
	// ErrGridSize indicates a non-positive grid size.
	ErrGridSize = errors.New("grid: size must be at least 1")

	// ErrCellCount indicates the supplied cell count does not equal size².
	ErrCellCount = errors.New("grid: cell count must equal size×size")

	// ErrNotLetter indicates a supplied cell is not exactly one ASCII letter.
	ErrNotLetter = errors.New("grid: cell must be a single ASCII letter")

	// ErrRaggedRows indicates rows of differing lengths in FromRows.
	ErrRaggedRows = errors.New("grid: all rows must have the same length as the row count")
)

// Grid is an immutable N×N matrix of lowercase ASCII letters, indexed by
// (row, col), 0-based. Cells are stored row-major in a flat byte slice.
// Built fresh per search request and never mutated afterwards.
type Grid struct {
	size  int
	cells []byte
}
