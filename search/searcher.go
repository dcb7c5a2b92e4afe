// Package search: parallel driver.
//
// Run is a three-stage pipeline under one errgroup:
//  1. A producer walks the key range and cuts it into numbered batches.
//  2. Workers test each key against the menus in order, rebuilding one
//     reusable Lookup per menu; the first menu that stops wins the key.
//  3. A collector puts batch results back in sequence order and hands stops
//     to the caller in key order. MaxStops or a callback error ends the run
//     and cancels the other stages.

package search

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bombe/alphabet"
	"github.com/katalvlaran/bombe/bombe"
	"github.com/katalvlaran/bombe/enigma"
	"github.com/katalvlaran/bombe/menu"
)

// Searcher runs Bombe searches with fixed options.
type Searcher struct {
	opts   Options
	tester *bombe.Tester
}

// New applies opts and returns a Searcher.
func New(opts ...Option) (*Searcher, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	tester, err := bombe.NewTester(bombe.WithMaxPlugs(o.MaxPlugs))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOption, err)
	}

	return &Searcher{opts: o, tester: tester}, nil
}

type batch struct {
	seq   int64
	first int64
	keys  []enigma.Key
}

type batchResult struct {
	seq   int64
	keys  int64
	tests int64
	stops []Stop
}

// Run tests every key of kr against menus. For each key the menus are tried in
// order and the first stop wins. onStop (may be nil) sees the stops in key
// order; an error from it aborts the run. Run returns when the range is
// exhausted, MaxStops stops were delivered, ctx is done, or a worker fails.
func (s *Searcher) Run(ctx context.Context, ciphertext []uint8, menus []*menu.Menu, kr Range, onStop func(Stop) error) (Summary, error) {
	sum := Summary{RunID: uuid.New()}
	start := time.Now()

	// 1. Validate inputs
	if len(ciphertext) == 0 {
		return sum, ErrEmptyCiphertext
	}
	if len(menus) == 0 {
		return sum, ErrNoMenus
	}
	for i, m := range menus {
		if m == nil || m.End() > len(ciphertext) {
			return sum, fmt.Errorf("%w: menu %d does not fit the ciphertext", ErrNoMenus, i)
		}
	}
	if _, err := NewRange(kr.Low, kr.High); err != nil {
		return sum, err
	}

	log := s.opts.Logger.With(zap.Stringer("run_id", sum.RunID))
	log.Info("bombe search started",
		zap.Int("menus", len(menus)),
		zap.Int("workers", s.opts.Workers),
		zap.Int64("keys_estimate", kr.Count(len(ciphertext), s.opts.MiddleRingScope, s.opts.RightRingSpacing)),
		zap.String("low", kr.Low.String()),
		zap.String("high", kr.High.String()))
	if s.opts.Metrics != nil {
		s.opts.Metrics.MenusPlanned.Set(float64(len(menus)))
	}

	g, gctx := errgroup.WithContext(ctx)
	batches := make(chan batch, s.opts.Workers)
	results := make(chan batchResult, s.opts.Workers)

	// 2. Producer
	g.Go(func() error {
		defer close(batches)

		return s.produce(gctx, kr, len(ciphertext), batches)
	})

	// 3. Workers
	var wg sync.WaitGroup
	wg.Add(s.opts.Workers)
	for i := 0; i < s.opts.Workers; i++ {
		g.Go(func() error {
			defer wg.Done()

			return s.work(gctx, ciphertext, menus, batches, results)
		})
	}
	g.Go(func() error {
		wg.Wait()
		close(results)

		return nil
	})

	// 4. Collector: reorder batches and deliver stops in key order
	g.Go(func() error {
		return s.collect(results, onStop, &sum, log)
	})

	err := g.Wait()
	sum.Duration = time.Since(start)
	if errors.Is(err, errStopLimit) {
		err = nil
	}

	status := "ok"
	switch {
	case err != nil:
		status = "error"
	case sum.Truncated:
		status = "truncated"
	}
	if s.opts.Metrics != nil {
		s.opts.Metrics.RecordRun(status, sum.Duration)
	}
	log.Info("bombe search finished",
		zap.String("status", status),
		zap.Int64("keys", sum.Keys),
		zap.Int64("menu_tests", sum.MenuTests),
		zap.Int("stops", sum.Stops),
		zap.Duration("duration", sum.Duration))

	return sum, err
}

func (s *Searcher) produce(ctx context.Context, kr Range, msgLen int, out chan<- batch) error {
	var (
		seq, idx int64
		cur      = batch{keys: make([]enigma.Key, 0, s.opts.BatchSize)}
	)
	send := func() bool {
		select {
		case out <- cur:
		case <-ctx.Done():
			return false
		}
		seq++
		cur = batch{seq: seq, first: idx, keys: make([]enigma.Key, 0, s.opts.BatchSize)}

		return true
	}

	for k := range kr.Keys(msgLen, s.opts.MiddleRingScope, s.opts.RightRingSpacing) {
		cur.keys = append(cur.keys, k)
		idx++
		if len(cur.keys) == s.opts.BatchSize && !send() {
			return ctx.Err()
		}
	}
	if len(cur.keys) > 0 && !send() {
		return ctx.Err()
	}

	return nil
}

func (s *Searcher) work(ctx context.Context, ciphertext []uint8, menus []*menu.Menu, in <-chan batch, out chan<- batchResult) error {
	if m := s.opts.Metrics; m != nil {
		m.WorkersActive.Inc()
		defer m.WorkersActive.Dec()
	}
	lookups := make([]enigma.Lookup, len(menus))

	for {
		var b batch
		var ok bool
		select {
		case <-ctx.Done():
			return ctx.Err()
		case b, ok = <-in:
			if !ok {
				return nil
			}
		}

		res := batchResult{seq: b.seq}
		for i, k := range b.keys {
			res.keys++
			for mi, m := range menus {
				lk := &lookups[mi]
				if err := lk.Rebuild(k, m.Position, m.Length); err != nil {
					return fmt.Errorf("search: key %s: %w", k, err)
				}
				r, err := s.tester.Test(m, lk)
				if err != nil {
					return fmt.Errorf("search: key %s menu %d: %w", k, mi, err)
				}
				res.tests++
				if s.opts.Metrics != nil {
					s.opts.Metrics.RecordMenuTest(r.Stop)
				}
				if !r.Stop {
					continue
				}

				st, err := newStop(b.first+int64(i), k, mi, m, &r, ciphertext)
				if err != nil {
					return err
				}
				res.stops = append(res.stops, st)

				break
			}
		}
		if s.opts.Metrics != nil {
			s.opts.Metrics.KeysTotal.Add(float64(res.keys))
		}

		select {
		case out <- res:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func newStop(seq int64, k enigma.Key, mi int, m *menu.Menu, r *bombe.Result, ciphertext []uint8) (Stop, error) {
	board := r.Board()
	pt, err := enigma.EncipherDecipherAll(k, &board, ciphertext)
	if err != nil {
		return Stop{}, fmt.Errorf("search: decipher with %s: %w", k, err)
	}

	return Stop{
		Seq:       seq,
		Key:       k,
		Menu:      mi,
		Position:  m.Position,
		Stecker:   r.Stecker,
		Strength:  r.Strength,
		Board:     board,
		Plaintext: pt,
	}, nil
}

func (s *Searcher) collect(in <-chan batchResult, onStop func(Stop) error, sum *Summary, log *zap.Logger) error {
	pending := make(map[int64]batchResult)
	var next int64

	for res := range in {
		pending[res.seq] = res
		for {
			r, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++

			sum.Keys += r.keys
			sum.MenuTests += r.tests
			for _, st := range r.stops {
				sum.Stops++
				if s.opts.Metrics != nil {
					s.opts.Metrics.StopsTotal.Inc()
				}
				log.Info("stop",
					zap.Int64("seq", st.Seq),
					zap.String("key", st.Key.String()),
					zap.Int("position", st.Position),
					zap.Stringer("stecker", st.Stecker),
					zap.String("plaintext", alphabet.String(st.Plaintext)))
				if onStop != nil {
					if err := onStop(st); err != nil {
						return err
					}
				}
				if s.opts.MaxStops > 0 && sum.Stops >= s.opts.MaxStops {
					sum.Truncated = true
					return errStopLimit
				}
			}
		}
	}

	return nil
}
