// Package dict builds the word set and prefix set that drive
// prefix-pruned grid word search.
package dict

import (
	"strings"
)

// Build constructs an Index from raw dictionary lines under the given
// length bounds. Each line is trimmed of surrounding whitespace and
// lowercased; a line containing any non a–z byte after cleaning (empty
// lines included) is skipped entirely. Surviving entries are classified
// by cleaned length L:
//
//   - MinLen ≤ L ≤ MaxLen: entry joins the word set, and every prefix of
//     length 1..L joins the prefix set.
//   - L > MaxLen: only prefixes of length 1..MaxLen join the prefix set —
//     the entry itself is never a search target, but in-window words
//     sharing its prefix space must remain reachable.
//   - 0 < L < MinLen: prefixes of length 1..L join the prefix set —
//     too short to report, still explorable as the stem of longer words.
//
// Returns ErrLengthBounds on invalid opts, ErrEmptyDictionary when no
// line survives cleaning. An empty word set with a non-empty prefix set
// is a valid outcome, not an error.
//
// Time:   O(T·MaxLen) where T = total cleaned input length.
// Memory: O(W + P) for the word and prefix sets.
func Build(lines []string, opts Options) (*Index, error) {
	// 1. Validate bounds
	if opts.MinLen < 1 || opts.MinLen > opts.MaxLen {
		return nil, ErrLengthBounds
	}

	ix := &Index{
		minLen:   opts.MinLen,
		maxLen:   opts.MaxLen,
		words:    make(map[string]struct{}, len(lines)),
		prefixes: make(map[string]struct{}, len(lines)*opts.MaxLen/2),
	}

	// 2. Clean, filter, classify each line
	var entry string
	for _, raw := range lines {
		entry = strings.ToLower(strings.TrimSpace(raw))
		if !isLetters(entry) {
			continue // non-letter or empty line
		}

		if len(entry) >= opts.MinLen && len(entry) <= opts.MaxLen {
			ix.words[entry] = struct{}{}
		}

		// Prefix lengths are capped at MaxLen regardless of entry length.
		limit := len(entry)
		if limit > opts.MaxLen {
			limit = opts.MaxLen
		}
		for l := 1; l <= limit; l++ {
			ix.prefixes[entry[:l]] = struct{}{}
		}
	}

	// 3. A source with zero usable entries is an error the caller may retry
	if len(ix.prefixes) == 0 {
		return nil, ErrEmptyDictionary
	}

	return ix, nil
}

// isLetters reports whether s is non-empty and consists solely of
// lowercase ASCII letters. Complexity: O(len(s)).
func isLetters(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}

	return true
}
