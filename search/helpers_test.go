package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bombe/alphabet"
	"github.com/katalvlaran/bombe/enigma"
	"github.com/katalvlaran/bombe/menu"
	"github.com/katalvlaran/bombe/search"
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

func keyRange(t testing.TB, low, high string) search.Range {
	t.Helper()
	r, err := search.ParseRange(low, high, enigma.ModelM3)
	require.NoError(t, err)

	return r
}
