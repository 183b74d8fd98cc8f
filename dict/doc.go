// Package dict derives the two sets that drive prefix-pruned grid word
// search: the word set (complete, reportable entries) and the prefix set
// (every explorable stem of every entry).
//
// What:
//
//   - Build(lines, opts) cleans raw dictionary lines and classifies them
//     three ways by length: in-window entries become words and contribute
//     all their prefixes; over-long entries contribute prefixes up to
//     MaxLen only; under-short entries contribute their full prefix chain
//     but never become words.
//   - Index answers IsWord and HasPrefix in O(1) expected time and is
//     read-only after Build — safe for any number of concurrent searches.
//
// Why:
//
//   - The prefix set is the pruning oracle of the solver: a search branch
//     whose candidate string is absent can never spell a dictionary entry
//     and is cut immediately, bounding the branching factor far below
//     8^depth.
//   - Recording prefixes of out-of-window entries is the crux of
//     correctness: pruning must answer "could any entry continue with
//     this string", not "is this string itself reportable".
//
// Complexity:
//
//   - Build: O(T·MaxLen) time, O(W+P) memory
//     (T = total cleaned input length, W = words, P = prefixes).
//   - IsWord / HasPrefix: O(1) expected.
//
// Options:
//
//   - Options.MinLen / Options.MaxLen: reportable length window;
//     DefaultOptions() gives the reference 4..8 configuration.
//
// Errors:
//
//   - ErrLengthBounds: MinLen < 1 or MinLen > MaxLen.
//   - ErrEmptyDictionary: no input line survived cleaning.
package dict
