package enigma

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/bombe/alphabet"
)

// Key is a complete machine setting without the plugboard. Slots use the
// numbering of SlotNone, 1–8 for rotors I–VIII, SlotBeta and SlotGamma.
// Rings and message settings (the window letters at the start of the message)
// are letter indices 0..25. The greek fields are only meaningful for ModelM4.
type Key struct {
	Model     Model
	Reflector uint8

	Greek, Left, Middle, Right uint8

	GreekRing, LeftRing, MiddleRing, RightRing uint8

	GreekPos, LeftPos, MiddlePos, RightPos uint8
}

// DefaultKey returns reflector B, wheel order I-II-III, rings and message
// settings all A; for ModelM4 the thin B reflector and Beta.
func DefaultKey(model Model) Key {
	k := Key{Model: model, Reflector: ReflectorB, Left: 1, Middle: 2, Right: 3}
	if model == ModelM4 {
		k.Reflector = ReflectorBThin
		k.Greek = SlotBeta
	}

	return k
}

// Validate reports whether the key describes a machine of its model.
func (k *Key) Validate() error {
	return k.validate(false)
}

func (k *Key) validate(allowRepeats bool) error {
	var maxRotor uint8
	switch k.Model {
	case ModelH:
		maxRotor = 5
		if k.Reflector > ReflectorC {
			return fmt.Errorf("%w: %s on model %s", ErrInvalidReflector, ReflectorName(k.Reflector), k.Model)
		}
	case ModelM3:
		maxRotor = 8
		if k.Reflector != ReflectorB && k.Reflector != ReflectorC {
			return fmt.Errorf("%w: %s on model %s", ErrInvalidReflector, ReflectorName(k.Reflector), k.Model)
		}
	case ModelM4:
		maxRotor = 8
		if k.Reflector != ReflectorBThin && k.Reflector != ReflectorCThin {
			return fmt.Errorf("%w: %s on model %s", ErrInvalidReflector, ReflectorName(k.Reflector), k.Model)
		}
	default:
		return fmt.Errorf("%w: %d", ErrInvalidModel, k.Model)
	}

	if k.Model == ModelM4 {
		if k.Greek != SlotBeta && k.Greek != SlotGamma {
			return fmt.Errorf("%w: slot %d", ErrInvalidGreek, k.Greek)
		}
	} else if k.Greek != SlotNone {
		return fmt.Errorf("%w: model %s has no greek wheel", ErrInvalidGreek, k.Model)
	}

	for _, s := range [...]uint8{k.Left, k.Middle, k.Right} {
		if s < 1 || s > maxRotor {
			return fmt.Errorf("%w: slot %d on model %s", ErrInvalidRotor, s, k.Model)
		}
	}
	if !allowRepeats && (k.Left == k.Middle || k.Left == k.Right || k.Middle == k.Right) {
		return fmt.Errorf("%w: %s-%s-%s", ErrSlotCollision, SlotName(k.Left), SlotName(k.Middle), SlotName(k.Right))
	}

	for _, v := range [...]uint8{
		k.GreekRing, k.LeftRing, k.MiddleRing, k.RightRing,
		k.GreekPos, k.LeftPos, k.MiddlePos, k.RightPos,
	} {
		if v >= alphabet.Size {
			return fmt.Errorf("%w: %d", ErrInvalidSetting, v)
		}
	}

	return nil
}

// offsets returns the effective rotor offsets (message − ring) mod 26.
func (k *Key) offsets() (g, l, m, r int) {
	off := func(pos, ring uint8) int { return (alphabet.Size + int(pos) - int(ring)) % alphabet.Size }

	return off(k.GreekPos, k.GreekRing), off(k.LeftPos, k.LeftRing),
		off(k.MiddlePos, k.MiddleRing), off(k.RightPos, k.RightRing)
}

// String renders the key as "B:123:AAA:AAA" or, for ModelM4, "B:B123:AAAA:AAAA".
func (k Key) String() string {
	var sb strings.Builder
	if k.Model == ModelM4 {
		sb.WriteByte('B' + k.Reflector - ReflectorBThin)
		sb.WriteByte(':')
		if k.Greek == SlotGamma {
			sb.WriteByte('G')
		} else {
			sb.WriteByte('B')
		}
	} else {
		sb.WriteByte(alphabet.Char(k.Reflector))
		sb.WriteByte(':')
	}
	sb.WriteByte('0' + k.Left)
	sb.WriteByte('0' + k.Middle)
	sb.WriteByte('0' + k.Right)

	sb.WriteByte(':')
	if k.Model == ModelM4 {
		sb.WriteByte(alphabet.Char(k.GreekRing))
	}
	sb.WriteByte(alphabet.Char(k.LeftRing))
	sb.WriteByte(alphabet.Char(k.MiddleRing))
	sb.WriteByte(alphabet.Char(k.RightRing))

	sb.WriteByte(':')
	if k.Model == ModelM4 {
		sb.WriteByte(alphabet.Char(k.GreekPos))
	}
	sb.WriteByte(alphabet.Char(k.LeftPos))
	sb.WriteByte(alphabet.Char(k.MiddlePos))
	sb.WriteByte(alphabet.Char(k.RightPos))

	return sb.String()
}

// ParseKey reads a key string for model and validates it. Accepted forms:
//
//	B:123:AAA:AAA      (H, M3)
//	B:123:010101:AAA   (H, M3; rings as two-digit numbers 01..26)
//	B:B123:AAAA:AAAA   (M4; greek wheel B(eta) or G(amma))
func ParseKey(s string, model Model) (Key, error) {
	return parseKey(s, model, false)
}

// ParseBound is ParseKey without the rotor collision check. It is meant for
// the low and high ends of a key range such as "B:111:AAA:AAA".."B:888:ZZZ:ZZZ".
func ParseBound(s string, model Model) (Key, error) {
	return parseKey(s, model, true)
}

func parseKey(s string, model Model, allowRepeats bool) (Key, error) {
	fail := func(reason string) (Key, error) {
		return Key{}, fmt.Errorf("%w: %q: %s", ErrInvalidKey, s, reason)
	}

	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 4 {
		return fail("want 4 fields separated by ':'")
	}
	ukw, wheels, rings, mesg := strings.ToUpper(parts[0]), strings.ToUpper(parts[1]), strings.ToUpper(parts[2]), strings.ToUpper(parts[3])

	k := Key{Model: model}
	width := 3
	if model == ModelM4 {
		width = 4
	}

	// 1. Reflector.
	if len(ukw) != 1 {
		return fail("reflector must be one letter")
	}
	switch {
	case model == ModelM4 && (ukw == "B" || ukw == "C"):
		k.Reflector = ReflectorBThin + ukw[0] - 'B'
	case model == ModelH && (ukw == "A" || ukw == "B" || ukw == "C"):
		k.Reflector = ukw[0] - 'A'
	case model == ModelM3 && (ukw == "B" || ukw == "C"):
		k.Reflector = ukw[0] - 'A'
	default:
		return fail("reflector " + ukw + " not available on model " + model.String())
	}

	// 2. Wheel order.
	if len(wheels) != width {
		return fail("wrong wheel order length")
	}
	if model == ModelM4 {
		switch wheels[0] {
		case 'B':
			k.Greek = SlotBeta
		case 'G':
			k.Greek = SlotGamma
		default:
			return fail("greek wheel must be B or G")
		}
		wheels = wheels[1:]
	}
	for i, dst := range [...]*uint8{&k.Left, &k.Middle, &k.Right} {
		d := wheels[i]
		if d < '0' || d > '9' {
			return fail("wheel order must be digits")
		}
		*dst = d - '0'
	}

	// 3. Rings, letters or two-digit numbers.
	ringVals, err := parseSettings(rings, width, true)
	if err != nil {
		return fail("rings: " + err.Error())
	}
	// 4. Message settings.
	mesgVals, err := parseSettings(mesg, width, false)
	if err != nil {
		return fail("message key: " + err.Error())
	}
	if model == ModelM4 {
		k.GreekRing, ringVals = ringVals[0], ringVals[1:]
		k.GreekPos, mesgVals = mesgVals[0], mesgVals[1:]
	}
	k.LeftRing, k.MiddleRing, k.RightRing = ringVals[0], ringVals[1], ringVals[2]
	k.LeftPos, k.MiddlePos, k.RightPos = mesgVals[0], mesgVals[1], mesgVals[2]

	if err := k.validate(allowRepeats); err != nil {
		return Key{}, fmt.Errorf("%w: %q: %w", ErrInvalidKey, s, err)
	}

	return k, nil
}

func parseSettings(s string, width int, numeric bool) ([]uint8, error) {
	if numeric && width == 3 && len(s) == 6 {
		out := make([]uint8, 3)
		for i := range out {
			n, err := strconv.Atoi(s[2*i : 2*i+2])
			if err != nil || n < 1 || n > alphabet.Size {
				return nil, fmt.Errorf("bad ring number %q", s[2*i:2*i+2])
			}
			out[i] = uint8(n - 1)
		}

		return out, nil
	}
	if len(s) != width {
		return nil, fmt.Errorf("want %d letters", width)
	}
	out, err := alphabet.StrictLetters(s)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// LeftRotorSteppingPosition returns the index of the first letter, within the
// first n+26 letters, at which the left rotor steps, or -1 when it never does.
func (k *Key) LeftRotorSteppingPosition(n int) int {
	_, _, offM, offR := k.offsets()
	rTurn := turnoverPoints(k.Right, k.RightRing)
	mTurn := turnoverPoints(k.Middle, k.MiddleRing)

	for i := 0; i < n+alphabet.Size; i++ {
		switch {
		case mTurn[offM]:
			return i
		case rTurn[offR]:
			offR = (offR + 1) % alphabet.Size
			offM = (offM + 1) % alphabet.Size
		default:
			offR = (offR + 1) % alphabet.Size
		}
	}

	return -1
}
