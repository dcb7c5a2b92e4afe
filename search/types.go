package search

import (
	"errors"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/bombe/alphabet"
	"github.com/katalvlaran/bombe/enigma"
	"github.com/katalvlaran/bombe/metrics"
	"github.com/katalvlaran/bombe/stecker"
)

var (
	// ErrInvalidOption is returned for out-of-range searcher options.
	ErrInvalidOption = errors.New("search: invalid option")

	// ErrInvalidRange is returned when a key range is empty or mixes models.
	ErrInvalidRange = errors.New("search: invalid key range")

	// ErrNoMenus is returned when no menu is available to search with.
	ErrNoMenus = errors.New("search: no usable menu")

	// ErrEmptyCiphertext is returned when there is nothing to search.
	ErrEmptyCiphertext = errors.New("search: empty ciphertext")

	// errStopLimit ends a run once MaxStops stops were delivered.
	errStopLimit = errors.New("search: stop limit reached")
)

// Stop is a key that passed the stop test on one of the menus.
type Stop struct {
	// Seq is the index of the key in enumeration order.
	Seq  int64
	Key  enigma.Key
	Menu int
	// Position is the crib alignment of the menu that stopped.
	Position int

	Stecker  stecker.Assumption
	Strength [alphabet.Size]uint8
	Board    stecker.Board
	// Plaintext is the ciphertext deciphered with Key and Board.
	Plaintext []uint8
}

// Summary describes a finished run.
type Summary struct {
	RunID     uuid.UUID
	Keys      int64
	MenuTests int64
	Stops     int
	Duration  time.Duration
	// Truncated is set when MaxStops ended the run.
	Truncated bool
}

// Option configures a Searcher.
type Option func(*Options)

// Options holds Searcher parameters.
type Options struct {
	// Workers is the number of goroutines testing keys. Default runtime.NumCPU().
	Workers int
	// BatchSize is the number of keys handed to a worker at once. Default 256.
	BatchSize int
	// MaxStops ends the run after that many stops; 0 means no limit.
	MaxStops int
	// MaxPlugs is passed to the stop test. Default stecker.DefaultMaxPlugs.
	MaxPlugs int
	// RightRingSpacing samples the right ring every n letters. Default 1.
	RightRingSpacing int
	// MiddleRingScope prunes middle ring settings. Default ScopeAll.
	MiddleRingScope MiddleRingScope

	Logger  *zap.Logger
	Metrics *metrics.Registry

	err error
}

// DefaultOptions returns one worker per CPU, no stop limit, every ring setting.
func DefaultOptions() Options {
	return Options{
		Workers:          runtime.NumCPU(),
		BatchSize:        256,
		MaxPlugs:         stecker.DefaultMaxPlugs,
		RightRingSpacing: 1,
		MiddleRingScope:  ScopeAll,
		Logger:           zap.NewNop(),
	}
}

func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// WithWorkers sets the worker count (≥ 1).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.fail(ErrInvalidOption)
			return
		}
		o.Workers = n
	}
}

// WithBatchSize sets how many keys a worker takes at once (≥ 1).
func WithBatchSize(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.fail(ErrInvalidOption)
			return
		}
		o.BatchSize = n
	}
}

// WithMaxStops ends the run after n stops; 0 disables the limit.
func WithMaxStops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail(ErrInvalidOption)
			return
		}
		o.MaxStops = n
	}
}

// WithMaxPlugs sets the plugged-letter limit of the stop test.
func WithMaxPlugs(n int) Option {
	return func(o *Options) { o.MaxPlugs = n }
}

// WithRightRingSpacing samples the right ring every n letters (1..26).
func WithRightRingSpacing(n int) Option {
	return func(o *Options) {
		if n < 1 || n > alphabet.Size {
			o.fail(ErrInvalidOption)
			return
		}
		o.RightRingSpacing = n
	}
}

// WithMiddleRingScope sets the middle ring pruning.
func WithMiddleRingScope(s MiddleRingScope) Option {
	return func(o *Options) {
		if _, err := ParseMiddleRingScope(string(s)); err != nil {
			o.fail(err)
			return
		}
		o.MiddleRingScope = s
	}
}

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records progress into r.
func WithMetrics(r *metrics.Registry) Option {
	return func(o *Options) { o.Metrics = r }
}
