// Package engine ties the dictionary index lifecycle to per-request grid
// searches behind one process-wide facade.
package engine

import (
	"bufio"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/katalvlaran/wordgrid/dict"
	"github.com/katalvlaran/wordgrid/grid"
	"github.com/katalvlaran/wordgrid/solve"
)

// Engine owns the current dictionary index and serves searches against
// it. The index is published by a single atomic pointer swap: a reload
// builds fresh sets off to the side and installs them only once complete,
// so no search ever observes a half-built index. A search snapshots the
// pointer once at entry — it either wholly precedes or wholly follows any
// concurrent reload.
type Engine struct {
	opts dict.Options
	idx  atomic.Pointer[dict.Index]
}

// New returns an Engine with the given length bounds and no dictionary
// loaded. Bounds are validated on the first Load.
func New(opts dict.Options) *Engine {
	return &Engine{opts: opts}
}

// Load builds an index from raw dictionary lines and atomically replaces
// the current one. On error the previous index, if any, stays in service.
// Complexity: that of dict.Build.
func (e *Engine) Load(lines []string) error {
	ix, err := dict.Build(lines, e.opts)
	if err != nil {
		return fmt.Errorf("engine: load dictionary: %w", err)
	}
	e.idx.Store(ix)

	return nil
}

// LoadReader reads a newline-delimited dictionary source and loads it.
// Returns ErrSourceRead (wrapping the cause) if scanning fails; the
// previous index, if any, stays in service.
func (e *Engine) LoadReader(r io.Reader) error {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrSourceRead, err)
	}

	return e.Load(lines)
}

// Ready reports whether a dictionary has been loaded. Complexity: O(1).
func (e *Engine) Ready() bool {
	return e.idx.Load() != nil
}

// Index returns the currently published index, or nil before any
// successful Load. The returned index is immutable. Complexity: O(1).
func (e *Engine) Index() *dict.Index {
	return e.idx.Load()
}

// Search builds a fresh Grid from size² row-major one-letter cells and
// aggregates words for every starting cell against the index published
// at the moment of the call. Returns ErrNotLoaded before the first Load;
// grid validation errors pass through unchanged.
func (e *Engine) Search(size int, cells []string) (*solve.Report, error) {
	// Snapshot once: the whole search runs against this index.
	ix := e.idx.Load()
	if ix == nil {
		return nil, ErrNotLoaded
	}

	g, err := grid.New(size, cells)
	if err != nil {
		return nil, err
	}

	return solve.SearchAll(g, ix)
}
