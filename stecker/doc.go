// Package stecker models the Enigma plugboard (Steckerbrett).
//
// What:
//
//   - Board: a complete involutive permutation of the 26 letters. The zero
//     value is the empty plugboard (every letter self-steckered).
//   - Assumption: a partial board as inferred by the Bombe stop test. Each letter
//     is either Unassigned or mapped to a partner (possibly itself).
//
// Invariant:
//
//	For every letter x with a known partner y, the partner of y is x.
//
// Every mutating method keeps the invariant: Connect and Disconnect release the
// previous partners of both letters before wiring the new pair, and Assign is
// only ever called by the stop test on letters it has checked to be free.
// Check re-verifies the invariant and returns ErrNotInvolution when it is
// broken, which always signals a bug in the caller.
//
// Complexity: all operations are O(1) except Check, String and Parse (O(26)).
package stecker
