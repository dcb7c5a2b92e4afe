package bombe

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/bombe/alphabet"
	"github.com/katalvlaran/bombe/stecker"
)

var (
	// ErrNilMenu is returned when the menu is nil.
	ErrNilMenu = errors.New("bombe: menu is nil")

	// ErrNilLookup is returned when the lookup is nil.
	ErrNilLookup = errors.New("bombe: lookup is nil")

	// ErrEmptyMenu is returned for a menu without subgraphs.
	ErrEmptyMenu = errors.New("bombe: menu has no subgraphs")

	// ErrLookupRange is returned when the lookup does not cover the crib.
	ErrLookupRange = errors.New("bombe: lookup does not cover the menu")

	// ErrUnorderedMenu indicates an edge reached before either of its letters
	// has an assumed partner.
	ErrUnorderedMenu = errors.New("bombe: menu edges are not in traversal order")

	// ErrStecker indicates a stecker assumption that is no longer an involution.
	ErrStecker = errors.New("bombe: inconsistent stecker assumption")

	// ErrOption is returned for an out-of-range option value.
	ErrOption = errors.New("bombe: invalid option")
)

// Stats counts the work of one stop test.
type Stats struct {
	// Candidates is the number of anchor hypotheses tried across all subgraphs.
	Candidates int
	// Edges is the number of edges checked.
	Edges int
}

// Result is the outcome of one stop test.
type Result struct {
	Stop bool
	// Stecker is the surviving assumption; only meaningful when Stop.
	Stecker stecker.Assumption
	// Strength counts confirmations per letter: on the letter itself for a
	// self-stecker, else on the lower letter of the pair.
	Strength [alphabet.Size]uint8
	Stats    Stats
}

// Board returns the recovered plugboard; unassigned letters are left self.
func (r *Result) Board() stecker.Board { return r.Stecker.Board() }

// Option configures a Tester.
type Option func(*Options)

// Options holds stop-test parameters.
type Options struct {
	// Logger receives the per-candidate trace at debug level. Default zap.NewNop().
	Logger *zap.Logger

	// MaxPlugs bounds the number of plugged letters a hypothesis may assume.
	// Default stecker.DefaultMaxPlugs.
	MaxPlugs int

	err error
}

// DefaultOptions returns a no-op logger and the historical ten-cable limit.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop(), MaxPlugs: stecker.DefaultMaxPlugs}
}

// WithLogger sets the trace logger; nil keeps the default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxPlugs sets the plugged-letter limit, 0..26.
func WithMaxPlugs(n int) Option {
	return func(o *Options) {
		if n < 0 || n > alphabet.Size {
			o.err = ErrOption
			return
		}
		o.MaxPlugs = n
	}
}
