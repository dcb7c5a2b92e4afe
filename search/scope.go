package search

import (
	"fmt"
	"strings"
)

// MiddleRingScope restricts which middle ring settings are searched, judged
// by where in the message the left rotor first steps.
type MiddleRingScope string

const (
	// ScopeAll searches every middle ring setting.
	ScopeAll MiddleRingScope = "all"
	// ScopeOneNonStepping keeps keys whose left rotor steps after the message.
	ScopeOneNonStepping MiddleRingScope = "one-non-stepping"
	// ScopeSteppingInside keeps keys whose left rotor steps inside the message.
	ScopeSteppingInside MiddleRingScope = "stepping-inside"
	// ScopeNonStepping keeps keys whose left rotor never steps in the window.
	ScopeNonStepping MiddleRingScope = "non-stepping"
	// ScopeSteppingInsideAndOneNonStepping keeps every key whose left rotor steps at all.
	ScopeSteppingInsideAndOneNonStepping MiddleRingScope = "stepping-inside-and-one-non-stepping"
	// ScopeSmallImpactAndOneNonStepping keeps keys whose left rotor steps in the
	// first or last fifth of the message, or after it.
	ScopeSmallImpactAndOneNonStepping MiddleRingScope = "small-impact-and-one-non-stepping"
)

var scopes = []MiddleRingScope{
	ScopeAll, ScopeOneNonStepping, ScopeSteppingInside, ScopeNonStepping,
	ScopeSteppingInsideAndOneNonStepping, ScopeSmallImpactAndOneNonStepping,
}

// ParseMiddleRingScope accepts the scope names in any case.
func ParseMiddleRingScope(s string) (MiddleRingScope, error) {
	v := MiddleRingScope(strings.ToLower(strings.TrimSpace(s)))
	if v == "" {
		return ScopeAll, nil
	}
	for _, sc := range scopes {
		if v == sc {
			return v, nil
		}
	}

	return "", fmt.Errorf("%w: middle ring scope %q", ErrInvalidOption, s)
}

// Accepts reports whether a key whose left rotor first steps at leftStep
// (-1 for never) belongs to the scope, for a message of msgLen letters.
func (s MiddleRingScope) Accepts(msgLen, leftStep int) bool {
	switch s {
	case ScopeAll, "":
		return true
	case ScopeOneNonStepping:
		return leftStep >= msgLen
	case ScopeSteppingInside:
		return leftStep >= 0 && leftStep < msgLen
	case ScopeNonStepping:
		return leftStep == -1
	case ScopeSteppingInsideAndOneNonStepping:
		return leftStep >= 0
	case ScopeSmallImpactAndOneNonStepping:
		return leftStep >= 4*msgLen/5 || (leftStep >= 0 && leftStep < msgLen/5)
	default:
		return false
	}
}

// options estimates how many middle ring settings per wheel order the scope keeps.
func (s MiddleRingScope) options(msgLen, span int) int {
	switch s {
	case ScopeOneNonStepping:
		return 1
	case ScopeSteppingInside:
		return min(max(msgLen/26, 1), 26)
	case ScopeNonStepping:
		return max(26-min(msgLen/26, 26), 1)
	case ScopeSteppingInsideAndOneNonStepping:
		return min(msgLen/26+1, 26)
	case ScopeSmallImpactAndOneNonStepping:
		return min((3*msgLen/5)/26+1, 26)
	default:
		return span
	}
}
