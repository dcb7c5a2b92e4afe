package stecker

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/bombe/alphabet"
)

// Assumption is a partial plugboard hypothesis. It is a value type: copying it
// gives an independent hypothesis, which is how the stop test keeps one per
// backtracking level.
type Assumption [alphabet.Size]int8

// NewAssumption returns an assumption with every letter Unassigned.
func NewAssumption() Assumption {
	var a Assumption
	for i := range a {
		a[i] = Unassigned
	}

	return a
}

// Assigned reports whether the partner of x is known.
func (a *Assumption) Assigned(x uint8) bool { return a[x] != Unassigned }

// Partner returns the partner of x. Only valid when Assigned(x).
func (a *Assumption) Partner(x uint8) uint8 { return uint8(a[x]) }

// Assign records x↔y (x↔x for a self-stecker). Both letters must be Unassigned.
func (a *Assumption) Assign(x, y uint8) {
	a[x] = int8(y)
	a[y] = int8(x)
}

// Plugged counts assigned letters whose partner differs from themselves.
func (a *Assumption) Plugged() int {
	n := 0
	for i, v := range a {
		if v != Unassigned && int(v) != i {
			n++
		}
	}

	return n
}

// Check verifies the involution invariant over the assigned letters.
func (a *Assumption) Check() error {
	for i, v := range a {
		if v == Unassigned {
			continue
		}
		if v < 0 || int(v) >= alphabet.Size || int(a[v]) != i {
			return fmt.Errorf("%w: %c→%c without the reverse link", ErrNotInvolution,
				alphabet.Char(uint8(i)), alphabet.Char(uint8(v)))
		}
	}

	return nil
}

// Board converts the assumption to a full board; unassigned letters stay self.
func (a *Assumption) Board() Board {
	var b Board
	for i, v := range a {
		if v != Unassigned && int(v) > i {
			b.Connect(uint8(i), uint8(v))
		}
	}

	return b
}

// ConsistentWith reports whether every assigned letter agrees with b.
func (a *Assumption) ConsistentWith(b *Board) bool {
	for i, v := range a {
		if v != Unassigned && b.Map(uint8(i)) != uint8(v) {
			return false
		}
	}

	return true
}

// String renders "Pairs: AB CD Self: EF"; unassigned letters are omitted.
func (a Assumption) String() string {
	var pairs, self []string
	for i, v := range a {
		switch {
		case v == Unassigned:
		case int(v) > i:
			pairs = append(pairs, string([]byte{alphabet.Char(uint8(i)), alphabet.Char(uint8(v))}))
		case int(v) == i:
			self = append(self, string(alphabet.Char(uint8(i))))
		}
	}

	return fmt.Sprintf("Pairs: %s Self: %s", strings.Join(pairs, " "), strings.Join(self, ""))
}
