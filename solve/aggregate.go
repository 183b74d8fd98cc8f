package solve

import (
	"github.com/katalvlaran/wordgrid/dict"
	"github.com/katalvlaran/wordgrid/grid"
)

// SearchAll runs SearchFrom for every grid cell in row-major order and
// aggregates the outcome into a Report. Starting cells that find nothing
// are omitted; the rest appear in row-major order with sorted word lists,
// so the Report is identical across runs for a fixed grid and index.
//
// UniqueWords counts the union across cells; TotalInstances sums per-cell
// counts, so one word reachable from two starts contributes two instances
// and one unique word.
//
// Time:   O(N² · per-cell search cost).
// Memory: O(result size).
func SearchAll(g *grid.Grid, ix *dict.Index) (*Report, error) {
	// 1. Validate once; per-cell calls can then only succeed
	if g == nil {
		return nil, ErrGridNil
	}
	if ix == nil {
		return nil, ErrIndexNil
	}

	n := g.Size()
	rep := &Report{}
	unique := make(map[string]struct{})

	// 2. Row-major sweep over starting cells
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			words, err := SearchFrom(g, ix, row, col)
			if err != nil {
				return nil, err
			}
			if len(words) == 0 {
				continue
			}
			rep.Cells = append(rep.Cells, CellWords{
				Cell:  Coord{Row: row, Col: col},
				Words: words,
			})
			rep.TotalInstances += len(words)
			for _, w := range words {
				unique[w] = struct{}{}
			}
		}
	}
	rep.UniqueWords = len(unique)

	return rep, nil
}
