// Package solve implements bounded depth-first word search over a letter
// grid, pruned by dictionary prefix membership.
package solve

import (
	"sort"

	"github.com/katalvlaran/wordgrid/dict"
	"github.com/katalvlaran/wordgrid/grid"
)

// frame is one unit of pending traversal work: the path's current end
// cell, the letters it spells so far, and the cells it has consumed.
// Each frame owns its candidate string and visited bitmask outright.
type frame struct {
	cell      int
	candidate string
	visited   bitset
}

// SearchFrom enumerates every dictionary word spelled by a path of
// adjacent, non-repeating cells starting at (row, col). Traversal uses an
// explicit frame stack rather than recursion, so path depth never leans
// on the call stack. Every frame's candidate string is, by construction,
// a member of the prefix set:
//
//  1. If the starting letter prefixes no dictionary entry, the whole
//     search space from this cell is empty and nothing is pushed.
//  2. A popped candidate within [MinLen, MaxLen] that is a complete word
//     joins the result set (a set, so rediscovery via another path
//     collapses).
//  3. A candidate at MaxLen is never extended.
//  4. Each of the 8 neighbors, in fixed reading order, is pushed only if
//     in bounds, unvisited on this path, and the extended candidate is
//     still a prefix of some entry. The pushed frame gets a fresh copy of
//     the visited mask.
//
// Termination: each push strictly grows the candidate, bounded by MaxLen,
// with at most 8 branches per frame.
//
// The returned words are sorted ascending. A valid but wordless start is
// an empty result, never an error.
//
// Time:   O(B) where B = surviving branches, ≤ 8^(MaxLen-1) before pruning.
// Memory: O(B·N²/64) for stacked visited masks.
func SearchFrom(g *grid.Grid, ix *dict.Index, row, col int) ([]string, error) {
	// 1. Validate inputs
	if g == nil {
		return nil, ErrGridNil
	}
	if ix == nil {
		return nil, ErrIndexNil
	}
	if !g.InBounds(row, col) {
		return nil, ErrStartOutOfBounds
	}

	// 2. Primary pruning win: a letter that starts no entry ends it here
	start := string(g.LetterAt(row, col))
	if !ix.HasPrefix(start) {
		return nil, nil
	}

	// 3. Seed the stack with the single-letter path
	n := g.Size()
	visited := newBitset(n * n)
	visited.set(g.Index(row, col))
	stack := []frame{{cell: g.Index(row, col), candidate: start, visited: visited}}

	found := make(map[string]struct{})

	// 4. Drain the stack
	var f frame
	for len(stack) > 0 {
		f = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// 4a. Report a complete in-window word
		if len(f.candidate) >= ix.MinLen() && ix.IsWord(f.candidate) {
			found[f.candidate] = struct{}{}
		}

		// 4b. Length ceiling reached: no expansion from this frame
		if len(f.candidate) == ix.MaxLen() {
			continue
		}

		// 4c. Expand to prefix-viable, unvisited neighbors
		r, c := g.Coordinate(f.cell)
		for _, d := range neighborOffsets {
			nr, nc := r+d[0], c+d[1]
			if !g.InBounds(nr, nc) {
				continue
			}
			ni := g.Index(nr, nc)
			if f.visited.has(ni) {
				continue
			}
			next := f.candidate + string(g.LetterAt(nr, nc))
			if !ix.HasPrefix(next) {
				continue // pruned: no entry continues this way
			}
			nv := f.visited.clone()
			nv.set(ni)
			stack = append(stack, frame{cell: ni, candidate: next, visited: nv})
		}
	}

	// 5. Sort for deterministic output
	if len(found) == 0 {
		return nil, nil
	}
	words := make([]string, 0, len(found))
	for w := range found {
		words = append(words, w)
	}
	sort.Strings(words)

	return words, nil
}
