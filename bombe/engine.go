// Package bombe: stop test (depth-first search over menu subgraphs).
//
// Tester.Test decides whether one key, given as a scrambler Lookup, admits a
// plugboard consistent with every link of a menu.
//
// Outline:
//  1. Inputs are checked first: a nil or empty menu, or a lookup that does not
//     cover the crib, is an error. A key that does not stop is a plain result.
//  2. Subgraphs are handled best first. Each level of the search is a frame on
//     an explicit stack holding its own copy of the Assumption and the strength
//     counters; a backtrack is a pop, so no level sees another's state.
//  3. Candidate order for the anchor of a subgraph: its known partner when an
//     earlier subgraph fixed it, else the anchor itself, then every unassigned
//     letter in ascending order. The first surviving path is reported, so the
//     order fixes which stop a caller sees.
//  4. Each edge, in breadth-first order from the anchor, either extends the
//     Assumption, rejects the candidate, or confirms a pair (strength on the
//     lower letter). An edge with neither letter assigned means the menu was
//     not ordered and is returned as ErrUnorderedMenu.
//  5. After a subgraph, more than MaxPlugs plugged letters rejects the path.
//
// Complexity:
//   - Worst case 26 candidates per subgraph level, each propagating O(edges).
//     Heavily closed subgraphs reject almost every candidate on the first few
//     edges.
//   - Memory: one frame per subgraph, each a few hundred bytes.

package bombe

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/bombe/alphabet"
	"github.com/katalvlaran/bombe/enigma"
	"github.com/katalvlaran/bombe/menu"
	"github.com/katalvlaran/bombe/stecker"
)

// Tester runs stop tests with fixed options. It holds no per-test state and
// is safe for concurrent use.
type Tester struct {
	opts  Options
	trace bool
}

// NewTester applies opts and returns a Tester.
func NewTester(opts ...Option) (*Tester, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Tester{opts: o, trace: o.Logger.Core().Enabled(zap.DebugLevel)}, nil
}

// TestStop is NewTester(opts...).Test(m, lk).
func TestStop(m *menu.Menu, lk *enigma.Lookup, opts ...Option) (Result, error) {
	t, err := NewTester(opts...)
	if err != nil {
		return Result{}, err
	}

	return t.Test(m, lk)
}

// frame is one level of the subgraph backtracking stack.
type frame struct {
	sg int

	cands [alphabet.Size]uint8
	n     int
	next  int

	base     stecker.Assumption
	strength [alphabet.Size]uint8
}

// engine holds the inputs of a single test.
type engine struct {
	t     *Tester
	m     *menu.Menu
	lk    *enigma.Lookup
	stats Stats
}

// Test decides whether the key behind lk stops on m.
func (t *Tester) Test(m *menu.Menu, lk *enigma.Lookup) (Result, error) {
	// 1. Validate inputs
	if m == nil {
		return Result{}, ErrNilMenu
	}
	if lk == nil {
		return Result{}, ErrNilLookup
	}
	if len(m.Subgraphs) == 0 {
		return Result{}, ErrEmptyMenu
	}
	if !lk.Covers(m.Position, m.Length) {
		return Result{}, fmt.Errorf("%w: need [%d,%d), have [%d,%d)",
			ErrLookupRange, m.Position, m.End(), lk.From, lk.From+lk.Len)
	}

	e := &engine{t: t, m: m, lk: lk}

	// 2. Depth-first over subgraphs, one frame per level
	stack := make([]frame, 1, len(m.Subgraphs))
	stack[0].base = stecker.NewAssumption()
	e.fillCandidates(&stack[0])

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.next == f.n {
			stack = stack[:len(stack)-1]
			continue
		}
		cand := f.cands[f.next]
		f.next++
		e.stats.Candidates++

		a, s := f.base, f.strength
		anchor := m.Subgraphs[f.sg].Anchor()
		if !a.Assigned(anchor) {
			a.Assign(anchor, cand)
		}
		if e.t.trace {
			e.t.opts.Logger.Debug("assume",
				zap.Int("subgraph", f.sg),
				zap.String("pair", string([]byte{alphabet.Char(anchor), alphabet.Char(cand)})))
		}

		ok, err := e.propagate(f.sg, &a, &s)
		if err != nil {
			return Result{Stats: e.stats}, err
		}
		if !ok {
			continue
		}

		// 3. Last subgraph survived: stop
		if f.sg == len(m.Subgraphs)-1 {
			if err := a.Check(); err != nil {
				return Result{Stats: e.stats}, fmt.Errorf("%w: %v", ErrStecker, err)
			}
			if e.t.trace {
				e.t.opts.Logger.Debug("stop", zap.Int("position", m.Position), zap.Stringer("stecker", a))
			}

			return Result{Stop: true, Stecker: a, Strength: s, Stats: e.stats}, nil
		}

		next := frame{sg: f.sg + 1, base: a, strength: s}
		e.fillCandidates(&next)
		stack = append(stack, next)
	}

	return Result{Stats: e.stats}, nil
}

// fillCandidates lists the partners to try for the anchor of f's subgraph:
// the known partner only, else the anchor itself then every free letter.
func (e *engine) fillCandidates(f *frame) {
	anchor := e.m.Subgraphs[f.sg].Anchor()
	if f.base.Assigned(anchor) {
		f.cands[0], f.n = f.base.Partner(anchor), 1
		return
	}

	f.cands[0], f.n = anchor, 1
	var c uint8
	for c = 0; c < alphabet.Size; c++ {
		if c != anchor && !f.base.Assigned(c) {
			f.cands[f.n] = c
			f.n++
		}
	}
}

// propagate walks subgraph sg under assumption a. It returns false on the
// first contradiction.
func (e *engine) propagate(sg int, a *stecker.Assumption, strength *[alphabet.Size]uint8) (bool, error) {
	for _, ed := range e.m.Subgraphs[sg].Edges {
		e.stats.Edges++

		// 1. Orient the edge: the letter with a known partner goes in
		var in, out uint8
		switch {
		case a.Assigned(ed.L1):
			in, out = ed.L1, ed.L2
		case a.Assigned(ed.L2):
			in, out = ed.L2, ed.L1
		default:
			return false, fmt.Errorf("%w: subgraph %d edge %c-%c at %d",
				ErrUnorderedMenu, sg, alphabet.Char(ed.L1), alphabet.Char(ed.L2), ed.Pos)
		}

		// 2. Through the scrambler
		scrOut := e.lk.At(ed.Pos, a.Partner(in))

		// 3. Extend, reject or confirm
		switch {
		case !a.Assigned(out) && !a.Assigned(scrOut):
			a.Assign(out, scrOut)
		case a.Assigned(scrOut) && a.Partner(scrOut) != out:
			e.traceReject(sg, ed, scrOut, out)
			return false, nil
		case a.Assigned(out) && a.Partner(out) != scrOut:
			e.traceReject(sg, ed, scrOut, out)
			return false, nil
		default:
			strength[min(out, scrOut)]++
		}
	}

	if a.Plugged() > e.t.opts.MaxPlugs {
		return false, nil
	}

	return true, nil
}

func (e *engine) traceReject(sg int, ed menu.Edge, scrOut, out uint8) {
	if !e.t.trace {
		return
	}
	e.t.opts.Logger.Debug("reject",
		zap.Int("subgraph", sg),
		zap.Int("position", ed.Pos),
		zap.String("pair", string([]byte{alphabet.Char(scrOut), alphabet.Char(out)})))
}
