// Package alphabet converts between text and the 0..25 letter indices used by
// every other package of the bombe module.
//
// Ciphertext, cribs and plugboard strings are all handled as []uint8 buffers
// where 0 is 'A' and 25 is 'Z'. Letters are case-insensitive; anything that is
// not a Latin letter is dropped by Letters, so "WETTER VORHERSAGE" and
// "wettervorhersage" yield the same buffer.
package alphabet
