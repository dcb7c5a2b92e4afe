package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bombe/alphabet"
	"github.com/katalvlaran/bombe/crib"
	"github.com/katalvlaran/bombe/menu"
	"github.com/katalvlaran/bombe/search"
)

// plan reads the ciphertext, crib and crib position range shared by menu and search.
func (a *app) plan(ciphertext, cribText, positions string) ([]uint8, []*menu.Menu, error) {
	ct, err := alphabet.StrictLetters(ciphertext)
	if err != nil {
		return nil, nil, fmt.Errorf("ciphertext: %w", err)
	}
	cr, err := alphabet.StrictLetters(cribText)
	if err != nil {
		return nil, nil, fmt.Errorf("crib: %w", err)
	}
	maxPos, err := crib.MaxPosition(len(ct), len(cr))
	if err != nil {
		return nil, nil, err
	}
	rng, err := crib.ParseRange(positions, maxPos)
	if err != nil {
		return nil, nil, err
	}
	menus, err := search.PlanMenus(ct, cr, rng, a.cfg.MaxMenuScore, menu.WithLogger(a.logger))
	if err != nil {
		return nil, nil, err
	}

	return ct, menus, nil
}

func newMenuCmd(a *app) *cobra.Command {
	var ciphertext, cribText, positions string
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Print the menus a crib yields against a ciphertext",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, menus, err := a.plan(ciphertext, cribText, positions)
			if err != nil {
				return err
			}
			for _, m := range menus {
				fmt.Fprint(cmd.OutOrStdout(), m)
			}

			return nil
		},
	}
	addCribFlags(cmd, &ciphertext, &cribText, &positions)
	cmd.Flags().Float64("max-menu-score", search.DefaultMaxMenuScore, "keep menus scoring below this")

	return cmd
}

func addCribFlags(cmd *cobra.Command, ciphertext, cribText, positions *string) {
	cmd.Flags().StringVarP(ciphertext, "ciphertext", "c", "", "ciphertext letters")
	cmd.Flags().StringVar(cribText, "crib", "", "known plaintext")
	cmd.Flags().StringVar(positions, "position", "*", "crib position: N, A-B or *")
	_ = cmd.MarkFlagRequired("ciphertext")
	_ = cmd.MarkFlagRequired("crib")
}
