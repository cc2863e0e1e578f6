package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read into Settings.
const EnvPrefix = "SCHEDSIM"

// DefaultMaxHorizon bounds the simulated time of a workload served over HTTP.
const DefaultMaxHorizon = 1_000_000

// Settings are the CLI defaults that are not part of a workload. Quantum is
// only checked when round robin runs.
type Settings struct {
	Quantum       int
	LogLevel      string
	NoColor       bool
	TimelineLimit int
	Listen        string
	MaxHorizon    int
}

// NewSettings resolves settings from, in increasing precedence: defaults, the
// optional settings file, SCHEDSIM_* environment variables and changed flags.
func NewSettings(flags *pflag.FlagSet, file string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("quantum", 2)
	v.SetDefault("log-level", "warn")
	v.SetDefault("no-color", false)
	v.SetDefault("timeline-limit", 50)
	v.SetDefault("listen", ":9095")
	v.SetDefault("max-horizon", DefaultMaxHorizon)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	s := &Settings{
		Quantum:       v.GetInt("quantum"),
		LogLevel:      v.GetString("log-level"),
		NoColor:       v.GetBool("no-color"),
		TimelineLimit: v.GetInt("timeline-limit"),
		Listen:        v.GetString("listen"),
		MaxHorizon:    v.GetInt("max-horizon"),
	}
	return s, nil
}
