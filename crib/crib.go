package crib

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrEmptyCrib is returned when the crib has no letters.
	ErrEmptyCrib = errors.New("crib: empty crib")

	// ErrCribTooLong is returned when the crib is longer than the ciphertext.
	ErrCribTooLong = errors.New("crib: crib longer than ciphertext")

	// ErrInvalidRange is returned by ParseRange for malformed or out-of-range selectors.
	ErrInvalidRange = errors.New("crib: invalid position range")
)

// Conflict returns the first offset j at which crib[j] == ciphertext[pos+j],
// or -1 when the alignment is possible. Offsets past the end of the ciphertext
// count as a conflict at that offset.
func Conflict(ciphertext, crib []uint8, pos int) int {
	for j, c := range crib {
		if pos+j >= len(ciphertext) || ciphertext[pos+j] == c {
			return j
		}
	}

	return -1
}

// NextValidPosition returns the first alignment ≥ from with no coinciding
// letters, or -1 when the ciphertext is exhausted.
func NextValidPosition(ciphertext, crib []uint8, from int) int {
	if len(crib) == 0 {
		return -1
	}
	if from < 0 {
		from = 0
	}
	for pos := from; pos+len(crib) <= len(ciphertext); pos++ {
		if Conflict(ciphertext, crib, pos) == -1 {
			return pos
		}
	}

	return -1
}

// ValidPositions lists every valid alignment in [r.Min, r.Max].
func ValidPositions(ciphertext, crib []uint8, r Range) []int {
	var out []int
	for pos := NextValidPosition(ciphertext, crib, r.Min); pos != -1 && pos <= r.Max; pos = NextValidPosition(ciphertext, crib, pos+1) {
		out = append(out, pos)
	}

	return out
}

// Range is an inclusive span of crib start positions.
type Range struct {
	Min, Max int
}

// Single reports whether the range names exactly one position.
func (r Range) Single() bool { return r.Min == r.Max }

// String renders the range the way ParseRange reads it.
func (r Range) String() string {
	if r.Single() {
		return strconv.Itoa(r.Min)
	}

	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// MaxPosition returns the last alignment a crib of cribLen letters can take in
// a ciphertext of textLen letters.
func MaxPosition(textLen, cribLen int) (int, error) {
	if cribLen == 0 {
		return 0, ErrEmptyCrib
	}
	if cribLen > textLen {
		return 0, fmt.Errorf("%w: %d > %d", ErrCribTooLong, cribLen, textLen)
	}

	return textLen - cribLen, nil
}

// ParseRange reads "*" (or empty) for every position up to maxPos, "N" for a
// single position, or "A-B" for an inclusive span. Bounds must lie in
// [0, maxPos] and A ≤ B.
func ParseRange(s string, maxPos int) (Range, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "*" {
		return Range{Min: 0, Max: maxPos}, nil
	}

	atoi := func(v string, lo int) (int, error) {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < lo || n > maxPos {
			return 0, fmt.Errorf("%w: %q (want %d..%d)", ErrInvalidRange, v, lo, maxPos)
		}

		return n, nil
	}

	lo, hi, found := strings.Cut(s, "-")
	minPos, err := atoi(lo, 0)
	if err != nil {
		return Range{}, err
	}
	if !found {
		return Range{Min: minPos, Max: minPos}, nil
	}
	maxP, err := atoi(hi, minPos)
	if err != nil {
		return Range{}, err
	}

	return Range{Min: minPos, Max: maxP}, nil
}
