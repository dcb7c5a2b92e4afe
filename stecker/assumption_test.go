package stecker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/bombe/stecker"
)

func TestAssumption_Basics(t *testing.T) {
	a := stecker.NewAssumption()
	for c := uint8(0); c < 26; c++ {
		assert.False(t, a.Assigned(c))
	}

	a.Assign(0, 4) // A-E
	a.Assign(2, 2) // C self
	assert.True(t, a.Assigned(4))
	assert.Equal(t, uint8(0), a.Partner(4))
	assert.Equal(t, 2, a.Plugged())
	assert.NoError(t, a.Check())
	assert.Equal(t, "Pairs: AE Self: C", a.String())

	b := a.Board()
	assert.Equal(t, "AE", b.String())
	assert.True(t, a.ConsistentWith(&b))

	other := stecker.MustParse("AC")
	assert.False(t, a.ConsistentWith(&other))
}

func TestAssumption_ValueCopy(t *testing.T) {
	a := stecker.NewAssumption()
	b := a
	b.Assign(1, 2)
	assert.False(t, a.Assigned(1), "copy must not alias the original")
}

func TestAssumption_CheckDetectsBrokenLink(t *testing.T) {
	a := stecker.NewAssumption()
	a[0] = 5 // A→F without F→A
	assert.ErrorIs(t, a.Check(), stecker.ErrNotInvolution)
}
