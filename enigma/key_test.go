package enigma_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bombe/enigma"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		model enigma.Model
		want  enigma.Key
		str   string
	}{
		{
			name: "M3 letters", in: "b:245:abc:xyz", model: enigma.ModelM3,
			want: enigma.Key{Model: enigma.ModelM3, Reflector: enigma.ReflectorB, Left: 2, Middle: 4, Right: 5,
				LeftRing: 0, MiddleRing: 1, RightRing: 2, LeftPos: 23, MiddlePos: 24, RightPos: 25},
			str: "B:245:ABC:XYZ",
		},
		{
			name: "numeric rings", in: "C:678:012610:AAA", model: enigma.ModelM3,
			want: enigma.Key{Model: enigma.ModelM3, Reflector: enigma.ReflectorC, Left: 6, Middle: 7, Right: 8,
				LeftRing: 0, MiddleRing: 25, RightRing: 9},
			str: "C:678:AZJ:AAA",
		},
		{
			name: "model H reflector A", in: "A:521:AAA:AAA", model: enigma.ModelH,
			want: enigma.Key{Model: enigma.ModelH, Reflector: enigma.ReflectorA, Left: 5, Middle: 2, Right: 1},
			str:  "A:521:AAA:AAA",
		},
		{
			name: "M4", in: "C:G123:BCDE:FGHI", model: enigma.ModelM4,
			want: enigma.Key{Model: enigma.ModelM4, Reflector: enigma.ReflectorCThin, Greek: enigma.SlotGamma,
				Left: 1, Middle: 2, Right: 3, GreekRing: 1, LeftRing: 2, MiddleRing: 3, RightRing: 4,
				GreekPos: 5, LeftPos: 6, MiddlePos: 7, RightPos: 8},
			str: "C:G123:BCDE:FGHI",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k, err := enigma.ParseKey(tc.in, tc.model)
			require.NoError(t, err)
			assert.Equal(t, tc.want, k)
			assert.Equal(t, tc.str, k.String())
		})
	}
}

func TestParseKey_Errors(t *testing.T) {
	tests := []struct {
		in    string
		model enigma.Model
		err   error
	}{
		{"B:123:AAA", enigma.ModelM3, enigma.ErrInvalidKey},
		{"A:123:AAA:AAA", enigma.ModelM3, enigma.ErrInvalidKey},
		{"B:1X3:AAA:AAA", enigma.ModelM3, enigma.ErrInvalidKey},
		{"B:123:A1A:AAA", enigma.ModelM3, enigma.ErrInvalidKey},
		{"B:123:002700:AAA", enigma.ModelM3, enigma.ErrInvalidKey},
		{"B:X123:AAAA:AAAA", enigma.ModelM4, enigma.ErrInvalidKey},
		{"B:112:AAA:AAA", enigma.ModelM3, enigma.ErrSlotCollision},
		{"B:126:AAA:AAA", enigma.ModelH, enigma.ErrInvalidRotor},
		{"B:093:AAA:AAA", enigma.ModelM3, enigma.ErrInvalidRotor},
	}
	for _, tc := range tests {
		_, err := enigma.ParseKey(tc.in, tc.model)
		assert.ErrorIs(t, err, tc.err, tc.in)
		assert.ErrorIs(t, err, enigma.ErrInvalidKey, tc.in)
	}
}

func TestParseBound_AllowsRepeats(t *testing.T) {
	k, err := enigma.ParseBound("B:888:ZZZ:ZZZ", enigma.ModelM3)
	require.NoError(t, err)
	assert.Equal(t, uint8(8), k.Left)
	assert.ErrorIs(t, k.Validate(), enigma.ErrSlotCollision)
}

func TestParseModel(t *testing.T) {
	m, err := enigma.ParseModel(" m4 ")
	require.NoError(t, err)
	assert.Equal(t, enigma.ModelM4, m)
	assert.Equal(t, "M4", m.String())

	_, err = enigma.ParseModel("T")
	assert.ErrorIs(t, err, enigma.ErrInvalidModel)
}

func TestKey_ValidateGreek(t *testing.T) {
	k := enigma.DefaultKey(enigma.ModelM3)
	k.Greek = enigma.SlotBeta
	assert.ErrorIs(t, k.Validate(), enigma.ErrInvalidGreek)

	k = enigma.DefaultKey(enigma.ModelM4)
	k.Greek = 3
	assert.ErrorIs(t, k.Validate(), enigma.ErrInvalidGreek)

	k = enigma.DefaultKey(enigma.ModelM4)
	k.Reflector = enigma.ReflectorB
	assert.ErrorIs(t, k.Validate(), enigma.ErrInvalidReflector)
}
