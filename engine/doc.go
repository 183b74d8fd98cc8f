// Package engine is the process-wide facade over the word-search core:
// it owns the dictionary index lifecycle and serves per-request searches.
//
// What:
//
//   - Load / LoadReader build a fresh index from a raw word list and
//     publish it with one atomic pointer swap.
//   - Search validates the user-supplied cells into a fresh Grid and runs
//     the full-board aggregation against the index snapshot taken at
//     entry.
//
// Why:
//
//   - Reload atomicity: searches running concurrently with a reload see
//     either the old index or the new one in full, never a mixture —
//     the sets are built off to the side and installed only when complete.
//   - A failed reload keeps the previous dictionary in service.
//
// Errors:
//
//   - ErrNotLoaded: Search before any successful Load.
//   - ErrSourceRead: the dictionary source failed mid-scan.
//   - dict and grid construction errors pass through wrapped or unchanged
//     for errors.Is matching.
package engine
