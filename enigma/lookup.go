package enigma

import (
	"fmt"

	"github.com/katalvlaran/bombe/alphabet"
)

// Lookup holds the plugboard-free scrambler substitution for the absolute
// message positions [From, From+Len).
type Lookup struct {
	From int
	Len  int

	table []uint8
}

// BuildLookup validates k and computes its substitution for count positions
// starting at from.
func BuildLookup(k Key, from, count int) (*Lookup, error) {
	lk := &Lookup{}
	if err := lk.Rebuild(k, from, count); err != nil {
		return nil, err
	}

	return lk, nil
}

// Rebuild recomputes lk in place for another key, reusing its buffer. Search
// workers call it once per key.
func (lk *Lookup) Rebuild(k Key, from, count int) error {
	if err := k.Validate(); err != nil {
		return err
	}
	if from < 0 || count < 0 {
		return fmt.Errorf("%w: from=%d count=%d", ErrLookupRange, from, count)
	}

	size := count * alphabet.Size
	if cap(lk.table) < size {
		lk.table = make([]uint8, size)
	}
	lk.table = lk.table[:size]
	lk.From, lk.Len = from, count

	// 1. Step through the positions before from without recording them.
	st := newStepper(&k)
	for i := 0; i < from; i++ {
		st.advance()
	}

	// 2. Record one substitution row per position.
	fill := fillM3
	if k.Model == ModelM4 {
		fill = fillM4
	}
	for i := 0; i < count; i++ {
		st.advance()
		fill(&k, &st, lk.table[i*alphabet.Size:(i+1)*alphabet.Size])
	}

	return nil
}

func fillM3(k *Key, st *stepper, row []uint8) {
	wr, wm, wl := &rotorFwd[k.Right], &rotorFwd[k.Middle], &rotorFwd[k.Left]
	vr, vm, vl := &rotorRev[k.Right], &rotorRev[k.Middle], &rotorRev[k.Left]
	ukw, etw := &reflector[k.Reflector], &rotorRev[SlotNone]
	oR, oM, oL := st.r, st.m, st.l

	for in := 0; in < alphabet.Size; in++ {
		c := int(wr[in+oR+26])
		c = int(wm[c-oR+oM+26])
		c = int(wl[c-oM+oL+26])
		c = int(ukw[c-oL+26])
		c = int(vl[c+oL+26])
		c = int(vm[c+oM-oL+26])
		c = int(vr[c+oR-oM+26])
		row[in] = etw[c-oR+26]
	}
}

func fillM4(k *Key, st *stepper, row []uint8) {
	wr, wm, wl, wg := &rotorFwd[k.Right], &rotorFwd[k.Middle], &rotorFwd[k.Left], &rotorFwd[k.Greek]
	vr, vm, vl, vg := &rotorRev[k.Right], &rotorRev[k.Middle], &rotorRev[k.Left], &rotorRev[k.Greek]
	ukw, etw := &reflector[k.Reflector], &rotorRev[SlotNone]
	oR, oM, oL, oG := st.r, st.m, st.l, st.g

	for in := 0; in < alphabet.Size; in++ {
		c := int(wr[in+oR+26])
		c = int(wm[c-oR+oM+26])
		c = int(wl[c-oM+oL+26])
		c = int(wg[c-oL+oG+26])
		c = int(ukw[c-oG+26])
		c = int(vg[c+oG+26])
		c = int(vl[c+oL-oG+26])
		c = int(vm[c+oM-oL+26])
		c = int(vr[c+oR-oM+26])
		row[in] = etw[c-oR+26]
	}
}

// Covers reports whether positions [from, from+n) are inside the lookup.
func (lk *Lookup) Covers(from, n int) bool {
	return from >= lk.From && n >= 0 && from+n <= lk.From+lk.Len
}

// At returns the scrambler output for letter c at absolute position pos.
// pos must be covered by the lookup and c must be a letter index.
func (lk *Lookup) At(pos int, c uint8) uint8 {
	return lk.table[(pos-lk.From)*alphabet.Size+int(c)]
}

// Row returns the 26-letter substitution at absolute position pos.
func (lk *Lookup) Row(pos int) ([]uint8, error) {
	if !lk.Covers(pos, 1) {
		return nil, fmt.Errorf("%w: %d not in [%d,%d)", ErrLookupRange, pos, lk.From, lk.From+lk.Len)
	}
	i := (pos - lk.From) * alphabet.Size

	return lk.table[i : i+alphabet.Size : i+alphabet.Size], nil
}
