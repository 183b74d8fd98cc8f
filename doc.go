// Package wordgrid is a constrained grid word-search engine: given a
// small square board of letters and a dictionary, it enumerates every
// sequence of adjacent, non-repeating cells whose letters spell a
// dictionary word within a bounded length range, from every starting
// cell.
//
// 🚀 What is wordgrid?
//
//	A small, thread-friendly library built from four pieces:
//		• dict   — word set + prefix set derived from a raw word list
//		• grid   — immutable N×N letter board with O(1) access
//		• solve  — explicit-stack DFS with prefix pruning, plus the
//		           full-board aggregator and its deterministic Report
//		• engine — atomic load/reload of the dictionary and per-request
//		           searches behind one facade
//
// ✨ Why choose wordgrid?
//
//   - Deterministic – sorted words, row-major reports, fixed neighbor order
//   - Sharply pruned – a branch dies the moment no dictionary entry can
//     continue it; a dead starting letter costs nothing
//   - Pure Go – no cgo, no hidden deps
//   - Safe to share – indexes and grids are immutable once built; reloads
//     publish by a single atomic swap
//
// Quick ASCII example:
//
//	c a t s
//	o r e n      with a 4..8 letter window and a dictionary holding
//	g l a d      cat, cats, car, care, carol — the board yields
//	x y z q      care, carol and cats from the single 'c' cell.
//
// Dive into each package's doc.go for contracts, complexity, and errors.
//
//	go get github.com/katalvlaran/wordgrid
package wordgrid
