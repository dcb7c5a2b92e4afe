// Package crib finds the alignments at which a guessed plaintext fragment may
// sit under a ciphertext.
//
// Enigma never enciphers a letter to itself, so an alignment where some crib
// letter equals the ciphertext letter above it is impossible. NextValidPosition
// and ValidPositions skip such alignments; ParseRange reads the position
// selector accepted on the command line ("*", "N" or "A-B").
//
// All functions are pure and cheap: O(len(ciphertext)·len(crib)) at worst.
package crib
