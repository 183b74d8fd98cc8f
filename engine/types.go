// Package engine defines the sentinel errors of the search-engine facade.
package engine

import (
	"errors"
)

// Sentinel errors for engine operations.
var (
	// ErrNotLoaded is returned by Search before any dictionary has been
	// loaded successfully.
	ErrNotLoaded = errors.New("engine: no dictionary loaded")

	// ErrSourceRead wraps a failure while scanning a dictionary source.
	ErrSourceRead = errors.New("engine: reading dictionary source")
)
