package enigma

import "github.com/katalvlaran/bombe/alphabet"

const (
	rotorLen     = 3 * alphabet.Size
	reflectorLen = 2 * alphabet.Size
)

var rotorWiring = [numSlots]string{
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ", // identity
	"EKMFLGDQVZNTOWYHXUSPAIBRCJ", // I
	"AJDKSIRUXBLHWTMCQGZNPYFVOE", // II
	"BDFHJLCPRTXVZNYEIWGAKMUSQO", // III
	"ESOVPZJAYQUIRHXLNFTGKDCMWB", // IV
	"VZBRGITYUPSDNHLXAWMJQOFECK", // V
	"JPGVOUMFYQBENHZRDKASXLICTW", // VI
	"NZJHGRCXMYSWBOUFAIVLPEKQDT", // VII
	"FKQHTLXOCBJSPDZRAMEWNIUYGV", // VIII
	"LEYJVCNIXWPBQMDRTAKZGFUHOS", // Beta
	"FSOKANUERHMBTIYCWLQPZXVGJD", // Gamma
}

var reflectorWiring = [numReflectors]string{
	"EJMZALYXVBWFCRQUONTSPIKHGD", // A
	"YRUHQSLDPXNGOKMIEBFZCWVJAT", // B
	"FVPJIAOYEDRZXWGCTKUQSBNMHL", // C
	"ENKQAUYWJICOPBLMDXZVFTHRGS", // B thin
	"RDOBJNTKVEHMLFCWZAXGYIPSUQ", // C thin
}

// notches holds the letters at which each wheel carries the next one.
var notches = [numSlots]string{
	"", "Q", "E", "V", "J", "Z", "MZ", "MZ", "MZ", "", "",
}

var slotNames = [numSlots]string{
	"-", "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "Beta", "Gamma",
}

var reflectorNames = [numReflectors]string{"A", "B", "C", "B-thin", "C-thin"}

// Rotor tables are repeated three times and reflector tables twice so the
// scrambler can index with c+offset+26 instead of taking a modulo.
var (
	rotorFwd  [numSlots][rotorLen]uint8
	rotorRev  [numSlots][rotorLen]uint8
	reflector [numReflectors][reflectorLen]uint8
)

func init() {
	for s, w := range rotorWiring {
		for i := 0; i < alphabet.Size; i++ {
			out := w[i] - 'A'
			for rep := 0; rep < 3; rep++ {
				rotorFwd[s][rep*alphabet.Size+i] = out
				rotorRev[s][rep*alphabet.Size+int(out)] = uint8(i)
			}
		}
	}
	for r, w := range reflectorWiring {
		for i := 0; i < alphabet.Size; i++ {
			for rep := 0; rep < 2; rep++ {
				reflector[r][rep*alphabet.Size+i] = w[i] - 'A'
			}
		}
	}
}

// SlotName returns the conventional name of a wheel slot ("I" … "VIII",
// "Beta", "Gamma"; "-" for the identity slot).
func SlotName(slot uint8) string {
	if int(slot) >= numSlots {
		return "?"
	}

	return slotNames[slot]
}

// ReflectorName returns "A", "B", "C", "B-thin" or "C-thin".
func ReflectorName(r uint8) string {
	if r >= numReflectors {
		return "?"
	}

	return reflectorNames[r]
}

// turnoverPoints marks the offsets (position−ring) at which the wheel in slot
// steps its left neighbour.
func turnoverPoints(slot, ring uint8) [alphabet.Size]bool {
	var t [alphabet.Size]bool
	for i := 0; i < len(notches[slot]); i++ {
		n := notches[slot][i] - 'A'
		t[(alphabet.Size+int(n)-int(ring))%alphabet.Size] = true
	}

	return t
}
