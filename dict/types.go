// Package dict defines options and sentinel errors for building the
// word/prefix index consumed by the solve package.
package dict

import (
	"errors"
)

// Sentinel errors for index construction.
var (
	// ErrEmptyDictionary indicates that no input line survived cleaning:
	// the source yielded neither a word nor a single explorable prefix.
	ErrEmptyDictionary = errors.New("dict: no usable entries in dictionary source")

	// ErrLengthBounds indicates invalid length bounds: MinLen must be ≥ 1
	// and MinLen must not exceed MaxLen.
	ErrLengthBounds = errors.New("dict: length bounds must satisfy 1 ≤ MinLen ≤ MaxLen")
)

// Options contains tunable parameters for index construction.
type Options struct {
	// MinLen is the smallest word length eligible for the word set.
	MinLen int
	// MaxLen is the largest word length eligible for the word set,
	// and the ceiling on recorded prefix lengths.
	MaxLen int
}

// DefaultOptions returns an Options with the reference configuration:
// MinLen=4, MaxLen=8.
func DefaultOptions() Options {
	return Options{
		MinLen: 4,
		MaxLen: 8,
	}
}

// Index holds the derived word and prefix sets for one dictionary source.
// It is immutable once built; concurrent readers need no synchronization.
//
// The prefix set is the pruning oracle: a candidate string can extend into
// some dictionary entry iff it is present. Prefixes are recorded for every
// cleaned entry — including entries too short or too long to ever be
// reported — so pruning answers "could any entry continue here", never
// merely "is this string itself reportable".
type Index struct {
	minLen, maxLen int
	words          map[string]struct{}
	prefixes       map[string]struct{}
}

// MinLen returns the smallest reportable word length.
// Complexity: O(1).
func (ix *Index) MinLen() int { return ix.minLen }

// MaxLen returns the largest reportable word length.
// Complexity: O(1).
func (ix *Index) MaxLen() int { return ix.maxLen }

// IsWord reports whether s is a complete dictionary word within
// [MinLen, MaxLen]. Complexity: O(1) expected.
func (ix *Index) IsWord(s string) bool {
	_, ok := ix.words[s]
	return ok
}

// HasPrefix reports whether s prefixes at least one dictionary entry.
// Complexity: O(1) expected.
func (ix *Index) HasPrefix(s string) bool {
	_, ok := ix.prefixes[s]
	return ok
}

// WordCount returns the number of distinct reportable words.
// Complexity: O(1).
func (ix *Index) WordCount() int { return len(ix.words) }

// PrefixCount returns the number of distinct recorded prefixes.
// Complexity: O(1).
func (ix *Index) PrefixCount() int { return len(ix.prefixes) }
