package alphabet

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the number of letters in the Enigma alphabet.
const Size = 26

// ErrInvalidLetter is returned when a strict conversion meets a non-letter.
var ErrInvalidLetter = errors.New("alphabet: invalid letter")

// Index returns the letter index of r and whether r is a letter at all.
func Index(r rune) (uint8, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return uint8(r - 'A'), true
	case r >= 'a' && r <= 'z':
		return uint8(r - 'a'), true
	default:
		return 0, false
	}
}

// Char returns the upper-case letter for index c, or '?' when c is out of range.
func Char(c uint8) byte {
	if c >= Size {
		return '?'
	}

	return 'A' + c
}

// Letters converts s to letter indices, skipping every non-letter rune.
func Letters(s string) []uint8 {
	out := make([]uint8, 0, len(s))
	for _, r := range s {
		if c, ok := Index(r); ok {
			out = append(out, c)
		}
	}

	return out
}

// StrictLetters converts s to letter indices and fails on any non-letter rune.
func StrictLetters(s string) ([]uint8, error) {
	out := make([]uint8, 0, len(s))
	for i, r := range s {
		c, ok := Index(r)
		if !ok {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidLetter, r, i)
		}
		out = append(out, c)
	}

	return out, nil
}

// String renders letter indices as upper-case text.
func String(letters []uint8) string {
	var sb strings.Builder
	sb.Grow(len(letters))
	for _, c := range letters {
		sb.WriteByte(Char(c))
	}

	return sb.String()
}
