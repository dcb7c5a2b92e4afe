package enigma

import "github.com/katalvlaran/bombe/alphabet"

// Step tells which rotors moved before a letter was enciphered.
type Step uint8

const (
	// StepRight: only the right rotor moved.
	StepRight Step = iota
	// StepMiddle: the right and middle rotors moved.
	StepMiddle
	// StepLeft: all three rotors moved (middle rotor at its turnover point).
	StepLeft
)

// String returns "X", "M" or "L".
func (s Step) String() string {
	switch s {
	case StepMiddle:
		return "M"
	case StepLeft:
		return "L"
	default:
		return "X"
	}
}

// stepper tracks the effective offsets of the moving rotors.
type stepper struct {
	g, l, m, r   int
	rTurn, mTurn [alphabet.Size]bool
}

func newStepper(k *Key) stepper {
	s := stepper{
		rTurn: turnoverPoints(k.Right, k.RightRing),
		mTurn: turnoverPoints(k.Middle, k.MiddleRing),
	}
	s.g, s.l, s.m, s.r = k.offsets()

	return s
}

// advance moves the rotors once, middle-rotor turnover taking priority.
func (s *stepper) advance() Step {
	switch {
	case s.mTurn[s.m]:
		s.r = (s.r + 1) % alphabet.Size
		s.m = (s.m + 1) % alphabet.Size
		s.l = (s.l + 1) % alphabet.Size

		return StepLeft
	case s.rTurn[s.r]:
		s.r = (s.r + 1) % alphabet.Size
		s.m = (s.m + 1) % alphabet.Size

		return StepMiddle
	default:
		s.r = (s.r + 1) % alphabet.Size

		return StepRight
	}
}

// Steppings lists, for each of the first n letters, which rotors moved.
func Steppings(k Key, n int) ([]Step, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	st := newStepper(&k)
	out := make([]Step, n)
	for i := range out {
		out[i] = st.advance()
	}

	return out, nil
}

// Windows returns the letters visible in the left, middle and right windows
// after n key presses.
func Windows(k Key, n int) (l, m, r uint8, err error) {
	if err = k.Validate(); err != nil {
		return 0, 0, 0, err
	}
	st := newStepper(&k)
	for i := 0; i < n; i++ {
		st.advance()
	}
	win := func(off int, ring uint8) uint8 { return uint8((off + int(ring)) % alphabet.Size) }

	return win(st.l, k.LeftRing), win(st.m, k.MiddleRing), win(st.r, k.RightRing), nil
}
