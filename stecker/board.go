package stecker

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/bombe/alphabet"
)

// Board is a full plugboard. Internally each slot stores partner+1 so that the
// zero value maps every letter to itself.
type Board struct {
	p [alphabet.Size]uint8
}

// Map returns the letter wired to c (c itself when unplugged).
func (b *Board) Map(c uint8) uint8 {
	if v := b.p[c]; v != 0 {
		return v - 1
	}

	return c
}

// Connect wires x and y together. Existing cables on x or y are removed first.
// Connect(x, x) leaves x self-steckered.
func (b *Board) Connect(x, y uint8) {
	b.release(x)
	b.release(y)
	if x == y {
		return
	}
	b.p[x] = y + 1
	b.p[y] = x + 1
}

// Disconnect makes both x and y self-steckered, unplugging any cable they hold.
func (b *Board) Disconnect(x, y uint8) {
	b.release(x)
	b.release(y)
}

// release unplugs x and its partner.
func (b *Board) release(x uint8) {
	if v := b.p[x]; v != 0 {
		b.p[v-1] = 0
		b.p[x] = 0
	}
}

// ActiveCount returns how many letters are plugged to a different letter.
func (b *Board) ActiveCount() int {
	n := 0
	for _, v := range b.p {
		if v != 0 {
			n++
		}
	}

	return n
}

// Pairs lists the cables, lower letter first, ordered by the lower letter.
func (b *Board) Pairs() [][2]uint8 {
	pairs := make([][2]uint8, 0, alphabet.Size/2)
	var x uint8
	for x = 0; x < alphabet.Size; x++ {
		if y := b.Map(x); y > x {
			pairs = append(pairs, [2]uint8{x, y})
		}
	}

	return pairs
}

// Check verifies the involution invariant.
func (b *Board) Check() error {
	var x uint8
	for x = 0; x < alphabet.Size; x++ {
		y := b.Map(x)
		if b.Map(y) != x {
			return fmt.Errorf("%w: %c→%c but %c→%c", ErrNotInvolution,
				alphabet.Char(x), alphabet.Char(y), alphabet.Char(y), alphabet.Char(b.Map(y)))
		}
	}

	return nil
}

// String returns the canonical pair list, e.g. "AZBYCX" (empty for no plugs).
func (b Board) String() string {
	var sb strings.Builder
	for _, p := range b.Pairs() {
		sb.WriteByte(alphabet.Char(p[0]))
		sb.WriteByte(alphabet.Char(p[1]))
	}

	return sb.String()
}

// Parse reads a pair list such as "AZBYCX" or "AZ BY CX". Letters must not
// repeat and the count must be even.
func Parse(s string) (Board, error) {
	var b Board
	compact := strings.Join(strings.Fields(s), "")
	if compact == "" {
		return b, nil
	}

	letters, err := alphabet.StrictLetters(compact)
	if err != nil {
		return b, fmt.Errorf("%w: %v", ErrInvalidPlugs, err)
	}
	if len(letters)%2 != 0 || len(letters) > alphabet.Size {
		return b, fmt.Errorf("%w: %q has %d letters", ErrInvalidPlugs, s, len(letters))
	}

	var seen [alphabet.Size]bool
	for _, c := range letters {
		if seen[c] {
			return b, fmt.Errorf("%w: letter %c used twice", ErrInvalidPlugs, alphabet.Char(c))
		}
		seen[c] = true
	}
	for i := 0; i < len(letters); i += 2 {
		b.Connect(letters[i], letters[i+1])
	}

	return b, nil
}

// ParseMax is Parse with at most maxPlugs plugged letters (two per cable).
func ParseMax(s string, maxPlugs int) (Board, error) {
	b, err := Parse(s)
	if err != nil {
		return b, err
	}
	if n := b.ActiveCount(); n > maxPlugs {
		return Board{}, fmt.Errorf("%w: %d plugged letters, limit %d", ErrTooManyPlugs, n, maxPlugs)
	}

	return b, nil
}

// MustParse is Parse for literals known to be valid; it panics otherwise.
func MustParse(s string) Board {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return b
}
