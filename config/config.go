// Package config loads bombe runtime settings from .bombe.yaml, BOMBE_*
// environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/katalvlaran/bombe/enigma"
	"github.com/katalvlaran/bombe/search"
	"github.com/katalvlaran/bombe/stecker"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "BOMBE"

// ErrInvalid is returned when a loaded configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

var validate = validator.New()

// Config holds the settings of one bombe session.
type Config struct {
	Model            string  `mapstructure:"model" validate:"required,oneof=H M3 M4 h m3 m4"`
	MaxPlugs         int     `mapstructure:"max_plugs" validate:"min=0,max=26"`
	Workers          int     `mapstructure:"workers" validate:"min=1"`
	BatchSize        int     `mapstructure:"batch_size" validate:"min=1"`
	RightRingSpacing int     `mapstructure:"right_ring_spacing" validate:"min=1,max=26"`
	MiddleRingScope  string  `mapstructure:"middle_ring_scope" validate:"oneof=all one-non-stepping stepping-inside non-stepping stepping-inside-and-one-non-stepping small-impact-and-one-non-stepping"`
	MaxMenuScore     float64 `mapstructure:"max_menu_score" validate:"gt=0"`
	MaxStops         int     `mapstructure:"max_stops" validate:"min=0"`
	Verbose          bool    `mapstructure:"verbose"`
}

// SetDefaults registers the built-in value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("model", "M3")
	v.SetDefault("max_plugs", stecker.DefaultMaxPlugs)
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("batch_size", 256)
	v.SetDefault("right_ring_spacing", 1)
	v.SetDefault("middle_ring_scope", string(search.ScopeAll))
	v.SetDefault("max_menu_score", search.DefaultMaxMenuScore)
	v.SetDefault("max_stops", 0)
	v.SetDefault("verbose", false)
}

// Init points v at its sources: cfgFile when set, otherwise .bombe.yaml in
// the working directory or the home directory, plus BOMBE_* variables. A
// missing default config file is not an error.
func Init(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".bombe")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: read: %w", err)
	}

	return nil
}

// Load applies defaults to v, decodes it and validates the result.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field against its bounds.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Field(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// EnigmaModel returns the machine model named by Model.
func (c *Config) EnigmaModel() (enigma.Model, error) {
	return enigma.ParseModel(c.Model)
}

// SearchOptions translates the search settings into searcher options.
func (c *Config) SearchOptions() []search.Option {
	return []search.Option{
		search.WithWorkers(c.Workers),
		search.WithBatchSize(c.BatchSize),
		search.WithMaxPlugs(c.MaxPlugs),
		search.WithRightRingSpacing(c.RightRingSpacing),
		search.WithMiddleRingScope(search.MiddleRingScope(c.MiddleRingScope)),
		search.WithMaxStops(c.MaxStops),
	}
}
