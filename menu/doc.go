// Package menu builds Bombe menus: the letter graph a crib induces on a
// ciphertext at one alignment, split into connected subgraphs, ordered for the
// stop test and scored for their power to reject wrong keys.
//
// What:
//
//   - Link extraction: links[ciphertext[pos+j]][crib[j]] = pos+j, earliest
//     position wins (LinkGraph, NoLink).
//   - Subgraph discovery: depth-first traversal over the links taken as an
//     undirected graph. The position of the edge just taken is never crossed
//     back; a letter reached a second time is not expanded again, and each such
//     revisit is half a closure. Subgraphs with fewer than two letters are
//     dropped.
//   - Edge ordering: breadth-first distance of every letter from the first
//     letter of the subgraph's first edge, edges stably sorted by the smaller
//     distance of their endpoints. Every edge after the first then touches a
//     letter that an earlier edge already reached.
//   - Scoring: Turing's table of expected false stops by link count, divided by
//     26 per closure, floored at 0.001. Lower is better. Subgraphs are stably
//     sorted by ascending score.
//
// Complexity:
//
//   - Time:   O(len(crib) + 26²) per Build.
//   - Memory: O(26²) for the link graph.
//
// Options:
//
//   - WithLogger(l)   debug-level dump of the menu structure (default: no-op).
//
// Errors:
//
//   - ErrEmptyCrib      crib has no letters.
//   - ErrPositionRange  position outside the ciphertext.
//   - ErrCribTooLong    crib runs past the end of the ciphertext.
//   - ErrSelfEncipher   a crib letter equals the ciphertext letter above it.
//
// A built Menu is read-only and may be shared between goroutines.
package menu
