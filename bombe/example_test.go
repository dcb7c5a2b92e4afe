package bombe_test

import (
	"fmt"

	"github.com/katalvlaran/bombe/alphabet"
	"github.com/katalvlaran/bombe/bombe"
	"github.com/katalvlaran/bombe/enigma"
	"github.com/katalvlaran/bombe/menu"
	"github.com/katalvlaran/bombe/stecker"
)

// ExampleTestStop enciphers a report with a known key and plugboard, then
// checks that the key stops on a menu built from the plaintext.
func ExampleTestStop() {
	k, _ := enigma.ParseKey("B:245:CMR:QXE", enigma.ModelM3)
	board := stecker.MustParse("AQ BJ CX DN EY FZ GW HL IV KR")
	plain := alphabet.Letters("WETTERVORHERSAGEFUERDIENORDSEEKEINEBESONDERENVORKOMMNISSE")
	ct, _ := enigma.EncipherDecipherAll(k, &board, plain)

	m, err := menu.Build(ct, plain[:40], 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	lk, _ := enigma.BuildLookup(k, m.Position, m.Length)
	res, err := bombe.TestStop(m, lk)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("stop:", res.Stop)
	// Output: stop: true
}
