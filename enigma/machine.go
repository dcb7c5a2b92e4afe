package enigma

import (
	"fmt"

	"github.com/katalvlaran/bombe/alphabet"
	"github.com/katalvlaran/bombe/stecker"
)

// EncipherDecipherAll runs in through the full machine: plugboard, scrambler,
// plugboard. A nil board means no cables.
func EncipherDecipherAll(k Key, board *stecker.Board, in []uint8) ([]uint8, error) {
	for i, c := range in {
		if c >= alphabet.Size {
			return nil, fmt.Errorf("%w: %d at offset %d", ErrInvalidLetter, c, i)
		}
	}
	if board == nil {
		board = &stecker.Board{}
	}

	lk, err := BuildLookup(k, 0, len(in))
	if err != nil {
		return nil, err
	}

	out := make([]uint8, len(in))
	for i, c := range in {
		out[i] = board.Map(lk.At(i, board.Map(c)))
	}

	return out, nil
}

// EncipherString is EncipherDecipherAll on text. Non-letters are dropped and
// the result is upper case.
func EncipherString(k Key, board *stecker.Board, text string) (string, error) {
	out, err := EncipherDecipherAll(k, board, alphabet.Letters(text))
	if err != nil {
		return "", err
	}

	return alphabet.String(out), nil
}
