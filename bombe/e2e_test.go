package bombe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bombe/alphabet"
	"github.com/katalvlaran/bombe/bombe"
	"github.com/katalvlaran/bombe/crib"
	"github.com/katalvlaran/bombe/enigma"
	"github.com/katalvlaran/bombe/menu"
)

// TestWeatherReport runs the whole chain on a weather report: find the crib
// alignment, build the menu, stop on the true key, recover enough plugs to read
// the message, and reject altered wheel orders.
func TestWeatherReport(t *testing.T) {
	s := newScenario(t)
	cr := alphabet.Letters("WETTERVORHERSAGEFUERDIENORDSEE")

	pos := crib.NextValidPosition(s.ct, cr, 0)
	require.Equal(t, 0, pos)

	m, err := menu.Build(s.ct, cr, pos)
	require.NoError(t, err)
	require.Greater(t, m.TotalClosures, 0)

	res, err := bombe.TestStop(m, lookupFor(t, s.key, m))
	require.NoError(t, err)
	require.True(t, res.Stop)

	board := res.Board()
	out, err := enigma.EncipherDecipherAll(s.key, &board, s.ct[:len(cr)])
	require.NoError(t, err)
	same := 0
	for i := range out {
		if out[i] == cr[i] {
			same++
		}
	}
	assert.Greater(t, same, len(cr)/2, "recovered plugs should read most of the crib")

	altered := [][3]uint8{
		{1, 2, 3}, {5, 4, 2}, {3, 1, 5}, {2, 5, 4}, {4, 2, 5},
		{6, 7, 8}, {8, 4, 5}, {2, 4, 6}, {7, 4, 5}, {5, 2, 4},
	}
	stops := 0
	for _, w := range altered {
		k := s.key
		k.Left, k.Middle, k.Right = w[0], w[1], w[2]
		r, err := bombe.TestStop(m, lookupFor(t, k, m))
		require.NoError(t, err)
		if r.Stop {
			stops++
		}
	}
	assert.LessOrEqual(t, stops, 2)
}

func TestWeatherReport_ShortCrib(t *testing.T) {
	s := newScenario(t)
	cr := alphabet.Letters("WETTER")
	require.Equal(t, -1, crib.Conflict(s.ct, cr, 0))

	m, err := menu.Build(s.ct, cr, 0)
	require.NoError(t, err)

	res, err := bombe.TestStop(m, lookupFor(t, s.key, m))
	require.NoError(t, err)
	assert.True(t, res.Stop)
	require.NoError(t, res.Stecker.Check())
}
