package search

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/bombe/enigma"
)

// Range is an inclusive box of keys, bounded field by field by Low and High.
type Range struct {
	Low, High enigma.Key
}

// NewRange checks that low and high share a model and that low ≤ high on every field.
func NewRange(low, high enigma.Key) (Range, error) {
	if low.Model != high.Model {
		return Range{}, fmt.Errorf("%w: models %s and %s", ErrInvalidRange, low.Model, high.Model)
	}
	lo, hi := fields(&low), fields(&high)
	for i := range lo {
		if *lo[i] > *hi[i] {
			return Range{}, fmt.Errorf("%w: %s is above %s", ErrInvalidRange, low, high)
		}
	}

	return Range{Low: low, High: high}, nil
}

// ParseRange reads low and high bounds such as "B:111:AAA:AAA" and
// "B:555:ZZZ:ZZZ" for model.
func ParseRange(low, high string, model enigma.Model) (Range, error) {
	lo, err := enigma.ParseBound(low, model)
	if err != nil {
		return Range{}, err
	}
	hi, err := enigma.ParseBound(high, model)
	if err != nil {
		return Range{}, err
	}

	return NewRange(lo, hi)
}

// SingleKey returns the range holding only k.
func SingleKey(k enigma.Key) Range { return Range{Low: k, High: k} }

func fields(k *enigma.Key) []*uint8 {
	return []*uint8{
		&k.Reflector, &k.Greek, &k.Left, &k.Middle, &k.Right,
		&k.GreekRing, &k.LeftRing, &k.MiddleRing, &k.RightRing,
		&k.GreekPos, &k.LeftPos, &k.MiddlePos, &k.RightPos,
	}
}

// Keys enumerates the valid keys of the range in search order. Right ring
// values not divisible by spacing are skipped when the right ring varies.
// The scope filter is evaluated against a message of msgLen letters and is
// ignored when the middle ring is fixed.
func (r Range) Keys(msgLen int, scope MiddleRingScope, spacing int) iter.Seq[enigma.Key] {
	lo, hi := r.Low, r.High
	if lo.MiddleRing == hi.MiddleRing {
		scope = ScopeAll
	}
	sampleRight := spacing > 1 && lo.RightRing != hi.RightRing

	return func(yield func(enigma.Key) bool) {
		k := lo
		for k.Reflector = lo.Reflector; k.Reflector <= hi.Reflector; k.Reflector++ {
			for k.Greek = lo.Greek; k.Greek <= hi.Greek; k.Greek++ {
				for k.Left = lo.Left; k.Left <= hi.Left; k.Left++ {
					for k.Middle = lo.Middle; k.Middle <= hi.Middle; k.Middle++ {
						if k.Middle == k.Left {
							continue
						}
						for k.Right = lo.Right; k.Right <= hi.Right; k.Right++ {
							if k.Right == k.Left || k.Right == k.Middle {
								continue
							}
							if k.Validate() != nil {
								continue
							}
							if !r.settings(&k, msgLen, scope, sampleRight, spacing, yield) {
								return
							}
						}
					}
				}
			}
		}
	}
}

// settings walks rings and message settings for the wheel order already in k.
func (r Range) settings(k *enigma.Key, msgLen int, scope MiddleRingScope, sampleRight bool, spacing int, yield func(enigma.Key) bool) bool {
	lo, hi := &r.Low, &r.High
	for k.GreekRing = lo.GreekRing; k.GreekRing <= hi.GreekRing; k.GreekRing++ {
		for k.LeftRing = lo.LeftRing; k.LeftRing <= hi.LeftRing; k.LeftRing++ {
			for k.MiddleRing = lo.MiddleRing; k.MiddleRing <= hi.MiddleRing; k.MiddleRing++ {
				for k.RightRing = lo.RightRing; k.RightRing <= hi.RightRing; k.RightRing++ {
					if sampleRight && int(k.RightRing)%spacing != 0 {
						continue
					}
					for k.GreekPos = lo.GreekPos; k.GreekPos <= hi.GreekPos; k.GreekPos++ {
						for k.LeftPos = lo.LeftPos; k.LeftPos <= hi.LeftPos; k.LeftPos++ {
							for k.MiddlePos = lo.MiddlePos; k.MiddlePos <= hi.MiddlePos; k.MiddlePos++ {
								for k.RightPos = lo.RightPos; k.RightPos <= hi.RightPos; k.RightPos++ {
									if scope != ScopeAll && !scope.Accepts(msgLen, k.LeftRotorSteppingPosition(msgLen)) {
										continue
									}
									if !yield(*k) {
										return false
									}
								}
							}
						}
					}
				}
			}
		}
	}

	return true
}

// Count estimates the number of keys Keys yields. The middle ring term is an
// estimate when a scope other than ScopeAll applies.
func (r Range) Count(msgLen int, scope MiddleRingScope, spacing int) int64 {
	lo, hi := &r.Low, &r.High
	span := func(a, b uint8) int64 { return int64(b) - int64(a) + 1 }

	n := span(lo.Reflector, hi.Reflector) * span(lo.Greek, hi.Greek) *
		span(lo.GreekRing, hi.GreekRing) * span(lo.LeftRing, hi.LeftRing) *
		span(lo.GreekPos, hi.GreekPos) * span(lo.LeftPos, hi.LeftPos) *
		span(lo.MiddlePos, hi.MiddlePos) * span(lo.RightPos, hi.RightPos)

	right := span(lo.RightRing, hi.RightRing)
	if spacing > 1 && right > 1 {
		right = 0
		for v := int(lo.RightRing); v <= int(hi.RightRing); v++ {
			if v%spacing == 0 {
				right++
			}
		}
	}
	n *= right

	middle := span(lo.MiddleRing, hi.MiddleRing)
	if middle > 1 {
		middle = int64(scope.options(msgLen, int(middle)))
	}
	n *= middle

	var orders int64
	for l := lo.Left; l <= hi.Left; l++ {
		for m := lo.Middle; m <= hi.Middle; m++ {
			if m == l {
				continue
			}
			for rr := lo.Right; rr <= hi.Right; rr++ {
				if rr != l && rr != m {
					orders++
				}
			}
		}
	}

	return n * orders
}
