// Package bombe implements the Turing–Welchman stop test: given a menu and the
// scrambler lookup of one candidate key, decide whether some plugboard
// hypothesis survives every link of the menu.
//
// The test guesses a partner for the anchor letter of the first subgraph
// (itself first, then every free letter in ascending order) and propagates the
// guess along the ordered edges. At each edge the letter with a known partner
// enters the scrambler; the scrambler output must either be free together with
// the letter on the other side (both get assigned), or already agree with it
// (a confirmation, counted as strength on the lower letter of the pair). Any
// disagreement rejects the guess. A surviving guess carries its assumptions
// into the next subgraph; the key stops when the last subgraph survives.
//
// Backtracking over subgraphs uses an explicit stack. Every frame owns value
// copies of its stecker assumption and strength counters, so a rejected
// branch never leaks state into its parent.
//
// Expected failure is Result.Stop == false with a nil error. Errors report
// defects only: ErrUnorderedMenu for an edge neither of whose letters is known
// yet, ErrStecker for a broken involution, ErrLookupRange when the lookup does
// not cover the crib.
package bombe
