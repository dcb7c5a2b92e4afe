package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bombe/alphabet"
	"github.com/katalvlaran/bombe/enigma"
	"github.com/katalvlaran/bombe/stecker"
)

func newEncipherCmd(a *app) *cobra.Command {
	var (
		key, plugs string
		trace      bool
	)
	cmd := &cobra.Command{
		Use:   "encipher [text...]",
		Short: "Encipher or decipher text with one key",
		Example: `  bombe encipher --key B:123:AAA:AAA AAAAA
  bombe encipher -m M4 --key B:B123:AAAA:AAAA --plugs "AB CD" HELLO`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := enigma.ParseKey(key, a.model)
			if err != nil {
				return err
			}
			board, err := stecker.ParseMax(plugs, a.cfg.MaxPlugs)
			if err != nil {
				return err
			}
			text := alphabet.Letters(strings.Join(args, ""))
			out, err := enigma.EncipherDecipherAll(k, &board, text)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, alphabet.String(out))
			if trace {
				steps, err := enigma.Steppings(k, len(text))
				if err != nil {
					return err
				}
				var sb strings.Builder
				for _, s := range steps {
					sb.WriteString(s.String())
				}
				fmt.Fprintln(w, sb.String())
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", "", "key, e.g. B:123:AAA:AAA")
	cmd.Flags().StringVarP(&plugs, "plugs", "p", "", "plugboard pairs, e.g. \"AB CD\"")
	cmd.Flags().Int("max-plugs", 20, "plugged letters allowed on the board")
	cmd.Flags().BoolVar(&trace, "trace", false, "print the rotor stepping of every letter")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}
