// Package grid models a fixed-size square board of lowercase ASCII
// letters with O(1) bounds checking and letter access.
//
// What:
//
//   - New(size, cells) builds an N×N Grid from a flat row-major sequence
//     of one-letter cells, validating count and alphabet; FromRows builds
//     one from whole-row strings.
//   - InBounds / LetterAt / Index / Coordinate give constant-time access
//     in both (row, col) and flat row-major forms.
//
// Why:
//
//   - A search request arrives as loose user-supplied cells; the Grid is
//     the validated, immutable snapshot the solver traverses. Immutability
//     means any number of traversals may share one Grid without locks.
//
// Complexity:
//
//   - New / FromRows / String: O(size²).
//   - All accessors: O(1).
//
// Errors:
//
//   - ErrGridSize: size < 1 (or no rows).
//   - ErrCellCount: cell count ≠ size².
//   - ErrRaggedRows: FromRows given rows of the wrong length.
//   - ErrNotLetter: a cell is not exactly one ASCII letter.
package grid
