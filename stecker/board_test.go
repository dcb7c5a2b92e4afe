package stecker_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bombe/stecker"
)

func TestBoard_ZeroValueIsIdentity(t *testing.T) {
	var b stecker.Board
	for c := uint8(0); c < 26; c++ {
		assert.Equal(t, c, b.Map(c))
	}
	assert.Equal(t, 0, b.ActiveCount())
	assert.Equal(t, "", b.String())
	assert.NoError(t, b.Check())
}

func TestBoard_ConnectDisconnect(t *testing.T) {
	var b stecker.Board
	b.Connect(0, 25) // A-Z
	assert.Equal(t, uint8(25), b.Map(0))
	assert.Equal(t, uint8(0), b.Map(25))
	assert.Equal(t, 2, b.ActiveCount())

	// Rewiring A releases Z.
	b.Connect(0, 1)
	assert.Equal(t, uint8(1), b.Map(0))
	assert.Equal(t, uint8(25), b.Map(25))
	assert.Equal(t, 2, b.ActiveCount())
	require.NoError(t, b.Check())

	b.Disconnect(1, 7)
	assert.Equal(t, uint8(0), b.Map(0))
	assert.Equal(t, 0, b.ActiveCount())
}

func TestBoard_ConnectSelfUnplugs(t *testing.T) {
	b := stecker.MustParse("AB")
	b.Connect(0, 0)
	assert.Equal(t, 0, b.ActiveCount())
	assert.NoError(t, b.Check())
}

func TestParse(t *testing.T) {
	b, err := stecker.Parse("zu hl cq")
	require.NoError(t, err)
	assert.Equal(t, "CQHLUZ", b.String())
	assert.Equal(t, 6, b.ActiveCount())
	assert.Len(t, b.Pairs(), 3)

	empty, err := stecker.Parse("   ")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.ActiveCount())
}

func TestParse_Invalid(t *testing.T) {
	for _, s := range []string{"ABC", "AA", "AB1C", "ABCA"} {
		_, err := stecker.Parse(s)
		assert.ErrorIs(t, err, stecker.ErrInvalidPlugs, s)
	}
}

func TestParseMax(t *testing.T) {
	all := "AB CD EF GH IJ KL MN OP QR ST UV WX YZ"
	_, err := stecker.ParseMax(all, stecker.DefaultMaxPlugs)
	assert.ErrorIs(t, err, stecker.ErrTooManyPlugs)

	b, err := stecker.ParseMax(all, 26)
	require.NoError(t, err)
	assert.Equal(t, 26, b.ActiveCount())

	b, err = stecker.ParseMax("AB CD EF GH IJ KL MN OP QR ST", stecker.DefaultMaxPlugs)
	require.NoError(t, err)
	assert.Equal(t, 20, b.ActiveCount())

	_, err = stecker.ParseMax("AB C", stecker.DefaultMaxPlugs)
	assert.ErrorIs(t, err, stecker.ErrInvalidPlugs)
}

func TestBoard_StringRoundTrip(t *testing.T) {
	b := stecker.MustParse("AZBYCXDWEV")
	again, err := stecker.Parse(b.String())
	require.NoError(t, err)
	assert.Equal(t, b, again)
}

// TestBoard_InvolutionProperty drives random Connect/Disconnect sequences and
// checks b.Map(b.Map(x)) == x after every single call.
func TestBoard_InvolutionProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("connect/disconnect keep the involution", prop.ForAll(
		func(ops []int) bool {
			var b stecker.Board
			for _, op := range ops {
				kind, x, y := op/(26*26), uint8((op/26)%26), uint8(op%26)
				if kind == 0 {
					b.Connect(x, y)
				} else {
					b.Disconnect(x, y)
				}
				for c := uint8(0); c < 26; c++ {
					if b.Map(b.Map(c)) != c {
						return false
					}
				}
				if b.Check() != nil || b.ActiveCount()%2 != 0 {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 2*26*26-1)),
	))

	properties.TestingRun(t)
}
