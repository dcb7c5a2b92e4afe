package bombe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/bombe/alphabet"
	"github.com/katalvlaran/bombe/bombe"
	"github.com/katalvlaran/bombe/enigma"
	"github.com/katalvlaran/bombe/menu"
	"github.com/katalvlaran/bombe/stecker"
)

const (
	weatherReport = "WETTERVORHERSAGEFUERDIENORDSEEKEINEBESONDERENVORKOMMNISSEXWINDAUSWEST"
	trueKey       = "B:245:CMR:QXE"
	truePlugs     = "AQ BJ CX DN EY FZ GW HL IV KR"
)

type scenario struct {
	key   enigma.Key
	board stecker.Board
	ct    []uint8
	plain []uint8
}

func newScenario(t testing.TB) scenario {
	t.Helper()
	k, err := enigma.ParseKey(trueKey, enigma.ModelM3)
	require.NoError(t, err)
	b := stecker.MustParse(truePlugs)
	plain := alphabet.Letters(weatherReport)
	ct, err := enigma.EncipherDecipherAll(k, &b, plain)
	require.NoError(t, err)

	return scenario{key: k, board: b, ct: ct, plain: plain}
}

func (s scenario) menu(t testing.TB, pos, n int) *menu.Menu {
	t.Helper()
	m, err := menu.Build(s.ct, s.plain[pos:pos+n], pos)
	require.NoError(t, err)

	return m
}

func lookupFor(t testing.TB, k enigma.Key, m *menu.Menu) *enigma.Lookup {
	t.Helper()
	lk, err := enigma.BuildLookup(k, m.Position, m.Length)
	require.NoError(t, err)

	return lk
}

func TestTestStop_TrueKeyStops(t *testing.T) {
	s := newScenario(t)
	for _, pos := range []int{0, 7, 20} {
		m := s.menu(t, pos, 40)
		res, err := bombe.TestStop(m, lookupFor(t, s.key, m))
		require.NoError(t, err)
		require.True(t, res.Stop, "position %d", pos)
		require.NoError(t, res.Stecker.Check())

		// The best subgraph is heavily closed: its letters are recovered exactly.
		for _, c := range m.Subgraphs[0].Letters {
			assert.Equal(t, s.board.Map(c), res.Stecker.Partner(c), "letter %c", alphabet.Char(c))
		}

		total := 0
		for _, v := range res.Strength {
			total += int(v)
		}
		assert.Positive(t, total)
		assert.Positive(t, res.Stats.Candidates)
		assert.GreaterOrEqual(t, res.Stats.Edges, m.TotalLinks)
	}
}

func TestTestStop_WrongKeysRarelyStop(t *testing.T) {
	s := newScenario(t)
	m := s.menu(t, 0, 40)

	stops, tried := 0, 0
	for l := uint8(1); l <= 8; l++ {
		for r := uint8(1); r <= 8; r++ {
			if l == r || l == 4 || r == 4 {
				continue
			}
			k := s.key
			k.Left, k.Middle, k.Right = l, 4, r
			if k == s.key {
				continue
			}
			res, err := bombe.TestStop(m, lookupFor(t, k, m))
			require.NoError(t, err)
			tried++
			if res.Stop {
				stops++
			}
		}
	}
	require.GreaterOrEqual(t, tried, 20)
	assert.LessOrEqual(t, stops, 2)
}

func TestTestStop_MaxPlugs(t *testing.T) {
	s := newScenario(t)
	m := s.menu(t, 0, 40)

	res, err := bombe.TestStop(m, lookupFor(t, s.key, m), bombe.WithMaxPlugs(0))
	require.NoError(t, err)
	assert.False(t, res.Stop)

	_, err = bombe.TestStop(m, lookupFor(t, s.key, m), bombe.WithMaxPlugs(27))
	assert.ErrorIs(t, err, bombe.ErrOption)
}

func TestTestStop_Defects(t *testing.T) {
	k := enigma.DefaultKey(enigma.ModelM3)
	lk, err := enigma.BuildLookup(k, 0, 5)
	require.NoError(t, err)

	// Second edge shares no letter with the first: A self sends B to B (the
	// first letter of BDZGO), leaving C and D unknown.
	bad := &menu.Menu{
		Position: 0,
		Length:   2,
		Subgraphs: []menu.Subgraph{{
			Letters: []uint8{0, 1, 2, 3},
			Edges:   []menu.Edge{{Pos: 0, L1: 0, L2: 1}, {Pos: 1, L1: 2, L2: 3}},
		}},
	}
	_, err = bombe.TestStop(bad, lk)
	assert.ErrorIs(t, err, bombe.ErrUnorderedMenu)

	_, err = bombe.TestStop(nil, lk)
	assert.ErrorIs(t, err, bombe.ErrNilMenu)
	_, err = bombe.TestStop(bad, nil)
	assert.ErrorIs(t, err, bombe.ErrNilLookup)
	_, err = bombe.TestStop(&menu.Menu{}, lk)
	assert.ErrorIs(t, err, bombe.ErrEmptyMenu)

	bad.Length = 9
	_, err = bombe.TestStop(bad, lk)
	assert.ErrorIs(t, err, bombe.ErrLookupRange)
}

func TestTestStop_TraceAtDebug(t *testing.T) {
	s := newScenario(t)
	m := s.menu(t, 0, 40)
	core, logs := observer.New(zap.DebugLevel)

	tester, err := bombe.NewTester(bombe.WithLogger(zap.New(core)))
	require.NoError(t, err)
	res, err := tester.Test(m, lookupFor(t, s.key, m))
	require.NoError(t, err)
	require.True(t, res.Stop)

	assert.Equal(t, 1, logs.FilterMessage("stop").Len())
	assert.Equal(t, res.Stats.Candidates, logs.FilterMessage("assume").Len())
}
