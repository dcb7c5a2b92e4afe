package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/bombe/enigma"
	"github.com/katalvlaran/bombe/metrics"
	"github.com/katalvlaran/bombe/stecker"
)

const (
	weatherReport = "WETTERVORHERSAGEFUERDIENORDSEEKEINEBESONDERENVORKOMMNISSEXWINDAUSWEST"
	trueKey       = "B:245:CMR:QXE"
	truePlugs     = "AQ BJ CX DN EY FZ GW HL IV KR"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func weatherCiphertext(t *testing.T) string {
	t.Helper()
	k, err := enigma.ParseKey(trueKey, enigma.ModelM3)
	require.NoError(t, err)
	b := stecker.MustParse(truePlugs)
	ct, err := enigma.EncipherString(k, &b, weatherReport)
	require.NoError(t, err)

	return ct
}

func TestEncipher(t *testing.T) {
	out, err := execute(t, "encipher", "--key", "B:123:AAA:AAA", "AAAAA")
	require.NoError(t, err)
	assert.Equal(t, "BDZGO\n", out)

	out, err = execute(t, "encipher", "--key", "B:123:AAA:AAA", "--trace", "BDZGO")
	require.NoError(t, err)
	assert.Equal(t, "AAAAA\nXXXXX\n", out)
}

func TestEncipher_Plugs(t *testing.T) {
	out, err := execute(t, "encipher", "--key", trueKey, "--plugs", truePlugs, weatherReport)
	require.NoError(t, err)
	assert.Equal(t, weatherCiphertext(t)+"\n", out)
}

func TestEncipher_BadKey(t *testing.T) {
	_, err := execute(t, "encipher", "--key", "B:999:AAA:AAA", "AAAAA")
	assert.ErrorIs(t, err, enigma.ErrInvalidKey)
	assert.ErrorIs(t, err, enigma.ErrInvalidRotor)

	_, err = execute(t, "encipher", "AAAAA")
	assert.Error(t, err)
}

func TestEncipher_TooManyPlugs(t *testing.T) {
	all := "AB CD EF GH IJ KL MN OP QR ST UV WX YZ"
	_, err := execute(t, "encipher", "--key", "B:123:AAA:AAA", "--plugs", all, "AAAAA")
	assert.ErrorIs(t, err, stecker.ErrTooManyPlugs)

	_, err = execute(t, "encipher", "--key", "B:123:AAA:AAA", "--plugs", all, "--max-plugs", "26", "AAAAA")
	assert.NoError(t, err)
}

func TestMenu(t *testing.T) {
	out, err := execute(t, "menu", "-c", weatherCiphertext(t), "--crib", weatherReport[:30], "--position", "0")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Menu at 0 (WETTERVORHERSAGEFUERDIENORDSEE)"), out)
	assert.Contains(t, out, "subgraph 0")
}

func TestSearch_SingleKey(t *testing.T) {
	out, err := execute(t, "search", "-c", weatherCiphertext(t), "--crib", weatherReport[:40],
		"--position", "0", "--key", trueKey, "--workers", "1")
	require.NoError(t, err)
	assert.Contains(t, out, trueKey+"\tpos 0\t")
	assert.Contains(t, out, "1 keys, 1 menu tests, 1 stops")
}

func TestSearch_Range(t *testing.T) {
	out, err := execute(t, "search", "-c", weatherCiphertext(t), "--crib", weatherReport[:40],
		"--position", "0", "--low", "B:245:CMR:QXA", "--high", "B:245:CMR:QXZ", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, trueKey+"\tpos 0\t")
	assert.Contains(t, out, "26 keys")
}

func TestSearch_NeedsRange(t *testing.T) {
	_, err := execute(t, "search", "-c", weatherCiphertext(t), "--crib", weatherReport[:20], "--position", "0")
	assert.Error(t, err)
}

func TestSearch_InvalidFlagConfig(t *testing.T) {
	_, err := execute(t, "search", "-c", weatherCiphertext(t), "--crib", weatherReport[:20],
		"--position", "0", "--key", trueKey, "--workers", "-1")
	assert.Error(t, err)
}

func TestSearch_MetricsAddr(t *testing.T) {
	out, err := execute(t, "search", "-c", weatherCiphertext(t), "--crib", weatherReport[:40],
		"--position", "0", "--key", trueKey, "--workers", "1", "--metrics-addr", "127.0.0.1:0")
	require.NoError(t, err)
	assert.Contains(t, out, "1 stops")

	_, err = execute(t, "search", "-c", weatherCiphertext(t), "--crib", weatherReport[:40],
		"--position", "0", "--key", trueKey, "--metrics-addr", "not-an-address")
	assert.Error(t, err)
}

func TestServeMetrics(t *testing.T) {
	reg := metrics.NewRegistry()
	reg.StopsTotal.Add(2)
	addr, shutdown, err := serveMetrics("127.0.0.1:0", reg, zap.NewNop())
	require.NoError(t, err)
	defer func() { require.NoError(t, shutdown(context.Background())) }()

	resp, err := http.Get("http://" + addr.String() + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "bombe_stops_total 2")
}
