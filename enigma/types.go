package enigma

import (
	"errors"
	"fmt"
	"strings"
)

// Model is the Enigma machine variant.
type Model uint8

const (
	// ModelH is the Army/Luftwaffe machine with rotors I–V and reflectors A, B, C.
	ModelH Model = iota + 1
	// ModelM3 is the three-rotor naval machine with rotors I–VIII and reflectors B, C.
	ModelM3
	// ModelM4 adds a non-stepping greek wheel (Beta or Gamma) and thin reflectors.
	ModelM4
)

// String returns "H", "M3" or "M4".
func (m Model) String() string {
	switch m {
	case ModelH:
		return "H"
	case ModelM3:
		return "M3"
	case ModelM4:
		return "M4"
	default:
		return fmt.Sprintf("Model(%d)", uint8(m))
	}
}

// ParseModel accepts "H", "M3" or "M4" in any case.
func ParseModel(s string) (Model, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "H":
		return ModelH, nil
	case "M3":
		return ModelM3, nil
	case "M4":
		return ModelM4, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidModel, s)
	}
}

// Wheel slots. Slot 0 is the identity wheel used when there is no greek wheel;
// 1–8 are rotors I–VIII.
const (
	SlotNone  uint8 = 0
	SlotBeta  uint8 = 9
	SlotGamma uint8 = 10

	numSlots = 11
)

// Reflector indices.
const (
	ReflectorA uint8 = iota
	ReflectorB
	ReflectorC
	ReflectorBThin
	ReflectorCThin

	numReflectors
)

var (
	// ErrInvalidModel indicates an unknown machine model.
	ErrInvalidModel = errors.New("enigma: invalid model")

	// ErrInvalidReflector indicates a reflector the model does not carry.
	ErrInvalidReflector = errors.New("enigma: invalid reflector")

	// ErrInvalidRotor indicates a wheel slot outside the model's rotor set.
	ErrInvalidRotor = errors.New("enigma: invalid rotor")

	// ErrInvalidGreek indicates a wrong greek wheel for the model.
	ErrInvalidGreek = errors.New("enigma: invalid greek wheel")

	// ErrSlotCollision indicates the same rotor in two positions.
	ErrSlotCollision = errors.New("enigma: rotor used twice")

	// ErrInvalidSetting indicates a ring or message setting outside 0..25.
	ErrInvalidSetting = errors.New("enigma: invalid ring or message setting")

	// ErrInvalidKey is returned when a key string does not parse.
	ErrInvalidKey = errors.New("enigma: invalid key string")

	// ErrLookupRange indicates a lookup read outside [From, From+Len).
	ErrLookupRange = errors.New("enigma: position outside lookup range")

	// ErrInvalidLetter indicates an input value that is not a letter index.
	ErrInvalidLetter = errors.New("enigma: invalid letter")
)
