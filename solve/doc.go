// Package solve enumerates dictionary words spelled by paths of adjacent,
// non-repeating cells on a letter grid, using depth-first traversal
// pruned by dictionary prefix membership.
//
// What:
//
//   - SearchFrom(g, ix, row, col) finds every word reachable from one
//     starting cell: an explicit frame stack carries (cell, candidate
//     string, visited bitmask); a frame is expanded only while its
//     candidate still prefixes some dictionary entry and sits below the
//     length ceiling.
//   - SearchAll(g, ix) sweeps every starting cell in row-major order and
//     aggregates a Report with per-cell sorted word lists plus unique and
//     instance counts.
//
// Why:
//
//   - Prefix pruning cuts the 8-way branching tree to the dictionary's
//     actual prefix space; a cell whose letter starts no entry costs
//     nothing at all.
//   - The visited bitmask is keyed by row*N+col and cloned per frame, so
//     sibling branches never observe each other's visitation and no path
//     reuses a cell, without hashing overhead.
//
// Concurrency:
//
//   - A search is single-threaded and runs to completion once invoked.
//     Grid and Index are read-only during search, so callers may run
//     independent searches on separate goroutines, or push one search off
//     the interactive thread and discard its result to cancel.
//
// Complexity:
//
//   - SearchFrom: O(B) time for B surviving branches
//     (≤ 8^(MaxLen-1) before pruning); O(B·N²/64) stacked mask memory.
//   - SearchAll: N² SearchFrom sweeps.
//
// Errors:
//
//   - ErrGridNil, ErrIndexNil: nil collaborator.
//   - ErrStartOutOfBounds: SearchFrom start cell outside the grid.
//   - An empty result is a valid outcome, never an error.
package solve
