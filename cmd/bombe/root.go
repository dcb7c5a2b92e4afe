package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/bombe/config"
	"github.com/katalvlaran/bombe/enigma"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	model   enigma.Model
	logger  *zap.Logger
}

// flagKeys maps command-line flags onto configuration keys.
var flagKeys = map[string]string{
	"model":              "model",
	"verbose":            "verbose",
	"workers":            "workers",
	"batch-size":         "batch_size",
	"max-plugs":          "max_plugs",
	"max-stops":          "max_stops",
	"max-menu-score":     "max_menu_score",
	"right-ring-spacing": "right_ring_spacing",
	"middle-ring-scope":  "middle_ring_scope",
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "bombe",
		Short: "Enigma Bombe simulator",
		Long: `bombe recovers Enigma keys from a ciphertext and a crib the way the
Turing-Welchman Bombe did: it builds a menu from the crib, then tests every
key of a range against it and reports the stops.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default .bombe.yaml)")
	pf.BoolP("verbose", "v", false, "debug logging")
	pf.StringP("model", "m", "M3", "machine model: H, M3 or M4")

	root.AddCommand(newEncipherCmd(a), newMenuCmd(a), newSearchCmd(a))

	return root
}

// setup loads the configuration with cmd's flags bound over it and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.Init(a.v, a.cfgFile); err != nil {
		return err
	}
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok && bindErr == nil {
			bindErr = a.v.BindPFlag(key, f)
		}
	})
	if bindErr != nil {
		return fmt.Errorf("bind flags: %w", bindErr)
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	model, err := cfg.EnigmaModel()
	if err != nil {
		return err
	}
	a.cfg, a.model = cfg, model

	zc := zap.NewProductionConfig()
	if cfg.Verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	return nil
}
