package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bombe/alphabet"
	"github.com/katalvlaran/bombe/enigma"
	"github.com/katalvlaran/bombe/metrics"
	"github.com/katalvlaran/bombe/search"
)

func newSearchCmd(a *app) *cobra.Command {
	var ciphertext, cribText, positions, key, low, high, metricsAddr string
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run the Bombe over a key range",
		Example: `  bombe search -c <ciphertext> --crib WETTERVORHERSAGE --low B:111:AAA:AAA --high B:555:AAZ:ZZZ
  bombe search -c <ciphertext> --crib WETTER --position 0-10 --key B:245:CMR:QXE`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ct, menus, err := a.plan(ciphertext, cribText, positions)
			if err != nil {
				return err
			}
			kr, err := a.keyRange(key, low, high)
			if err != nil {
				return err
			}
			reg := metrics.NewRegistry()
			if metricsAddr != "" {
				_, shutdown, err := serveMetrics(metricsAddr, reg, a.logger)
				if err != nil {
					return err
				}
				defer func() {
					ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					_ = shutdown(ctx)
				}()
			}
			opts := append(a.cfg.SearchOptions(), search.WithLogger(a.logger), search.WithMetrics(reg))
			s, err := search.New(opts...)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			sum, err := s.Run(cmd.Context(), ct, menus, kr, func(st search.Stop) error {
				_, err := fmt.Fprintf(w, "%s\tpos %d\t%s\t%s\n",
					st.Key, st.Position, st.Stecker, alphabet.String(st.Plaintext))
				return err
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "run %s: %d keys, %d menu tests, %d stops in %s\n",
				sum.RunID, sum.Keys, sum.MenuTests, sum.Stops, sum.Duration.Round(time.Millisecond))

			return nil
		},
	}
	addCribFlags(cmd, &ciphertext, &cribText, &positions)
	f := cmd.Flags()
	f.StringVarP(&key, "key", "k", "", "test this key only")
	f.StringVar(&low, "low", "", "lowest key of the range, e.g. B:111:AAA:AAA")
	f.StringVar(&high, "high", "", "highest key of the range, e.g. B:555:ZZZ:ZZZ")
	f.Int("workers", 0, "worker goroutines (default one per CPU)")
	f.Int("batch-size", 256, "keys per work item")
	f.Int("max-plugs", 20, "plugged letters allowed per stop")
	f.Int("max-stops", 0, "stop after this many stops, 0 for no limit")
	f.Float64("max-menu-score", search.DefaultMaxMenuScore, "keep menus scoring below this")
	f.Int("right-ring-spacing", 1, "test every n-th right ring setting")
	f.StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")
	f.String("middle-ring-scope", string(search.ScopeAll), "middle ring settings to test")
	cmd.MarkFlagsMutuallyExclusive("key", "low")
	cmd.MarkFlagsMutuallyExclusive("key", "high")
	cmd.MarkFlagsRequiredTogether("low", "high")

	return cmd
}

func (a *app) keyRange(key, low, high string) (search.Range, error) {
	if key != "" {
		k, err := enigma.ParseKey(key, a.model)
		if err != nil {
			return search.Range{}, err
		}
		return search.SingleKey(k), nil
	}
	if low == "" {
		return search.Range{}, fmt.Errorf("%w: --key or --low/--high is required", search.ErrInvalidRange)
	}

	return search.ParseRange(low, high, a.model)
}
