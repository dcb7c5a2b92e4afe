package stecker

import "errors"

// DefaultMaxPlugs is the default upper bound on plugged letters (10 cables).
const DefaultMaxPlugs = 20

// Unassigned marks a letter whose partner is not yet known in an Assumption.
const Unassigned int8 = -1

var (
	// ErrNotInvolution indicates that x→y is present without y→x.
	ErrNotInvolution = errors.New("stecker: mapping is not an involution")

	// ErrInvalidPlugs is returned by Parse for malformed pair lists.
	ErrInvalidPlugs = errors.New("stecker: invalid plug list")

	// ErrTooManyPlugs is returned when a board exceeds the allowed plugged letters.
	ErrTooManyPlugs = errors.New("stecker: too many plugs")
)
