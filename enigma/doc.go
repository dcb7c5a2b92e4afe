// Package enigma models the Wehrmacht and Kriegsmarine Enigma scramblers
// (models H, M3 and M4) and precomputes their rotor+reflector substitution per
// message position.
//
// What:
//
//   - Key: reflector, wheel order, ring settings and message settings,
//     parsed from and rendered to the "B:123:AAA:AAA" / "B:B123:AAAA:AAAA" form.
//   - BuildLookup(key, from, count): for every absolute position p in
//     [from, from+count) and input letter c, the plugboard-free scrambler output.
//     Positions before from are stepped through and discarded.
//   - EncipherDecipherAll(key, board, in): the full machine, plugboard included.
//     Enigma is reciprocal, so the same call deciphers.
//   - Steppings(key, n) and Key.LeftRotorSteppingPosition(n): where the middle
//     and left rotors move.
//
// Stepping happens before each letter. If the middle rotor sits at a turnover
// point all three rotors move (the double step); else if the right rotor sits at
// a turnover point the right and middle rotors move; otherwise only the right
// rotor moves. The greek wheel of the M4 never moves.
//
// Complexity:
//
//   - BuildLookup: O((from+count)·26) time, O(count·26) memory.
//   - EncipherDecipherAll: O(n).
//
// Errors:
//
//   - ErrInvalidModel, ErrInvalidReflector, ErrInvalidRotor, ErrInvalidGreek,
//     ErrSlotCollision, ErrInvalidSetting: the key cannot describe a machine.
//   - ErrInvalidKey: a key string does not parse.
//   - ErrLookupRange: a lookup was read outside the positions it covers.
//   - ErrInvalidLetter: input holds a value ≥ 26.
//
// A Lookup is immutable once built and may be shared between goroutines.
package enigma
