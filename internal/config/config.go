// Package config loads the knapsack command configuration from flags,
// KNAPSACK_* environment variables and an optional YAML file, in that order
// of precedence, using viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knapsack/internal/logging"
	"github.com/katalvlaran/knapsack/solver"
)

// EnvPrefix is the prefix of environment overrides (KNAPSACK_REPS, ...).
const EnvPrefix = "KNAPSACK"

// Keys shared by flags, environment and config file.
const (
	KeyAlgorithm   = "algorithm"
	KeyAlgorithms  = "algorithms"
	KeyReps        = "reps"
	KeySeed        = "seed"
	KeyMaxItems    = "max-items"
	KeyOut         = "out"
	KeyLogLevel    = "log-level"
	KeyLogFormat   = "log-format"
	KeyMetricsFile = "metrics-file"
	KeyItems       = "items"
	KeyRatio       = "ratio"
)

// Defaults.
const (
	DefaultAlgorithm = "recursive"
	DefaultMaxItems  = 20
	DefaultItems     = 20
	DefaultRatio     = 0.5
	DefaultLogLevel  = "info"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the resolved command configuration.
type Config struct {
	Algorithm   string   `mapstructure:"algorithm" yaml:"algorithm"`
	Algorithms  []string `mapstructure:"algorithms" yaml:"algorithms"`
	Reps        int      `mapstructure:"reps" yaml:"reps"`
	Seed        int64    `mapstructure:"seed" yaml:"seed"`
	MaxItems    int      `mapstructure:"max-items" yaml:"max-items"`
	Out         string   `mapstructure:"out" yaml:"out,omitempty"`
	LogLevel    string   `mapstructure:"log-level" yaml:"log-level"`
	LogFormat   string   `mapstructure:"log-format" yaml:"log-format"`
	MetricsFile string   `mapstructure:"metrics-file" yaml:"metrics-file,omitempty"`
	Items       int      `mapstructure:"items" yaml:"items"`
	Ratio       float64  `mapstructure:"ratio" yaml:"ratio"`

	// SeedSet is true when the seed came from a flag, the environment or the
	// file rather than the zero default.
	SeedSet bool `mapstructure:"-" yaml:"-"`
}

// NewViper returns a viper instance with defaults and environment binding.
// If file is non-empty it is read as the config file.
func NewViper(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// Unmarshal only sees keys viper already knows; seed has no default.
	_ = v.BindEnv(KeySeed)

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	return v, nil
}

// SetDefaults registers every default except the seed, whose absence is
// meaningful (see Config.SeedSet).
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyAlgorithm, DefaultAlgorithm)
	v.SetDefault(KeyAlgorithms, algorithmNames(solver.Algorithms()))
	v.SetDefault(KeyReps, 0)
	v.SetDefault(KeyMaxItems, DefaultMaxItems)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFormat, logging.FormatConsole)
	v.SetDefault(KeyItems, DefaultItems)
	v.SetDefault(KeyRatio, DefaultRatio)
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.SeedSet = v.IsSet(KeySeed)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges and names.
func (c Config) Validate() error {
	if _, err := solver.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.ParsedAlgorithms(); err != nil {
		return err
	}
	switch {
	case c.Reps < 0:
		return fmt.Errorf("%w: reps %d < 0", ErrInvalidConfig, c.Reps)
	case c.MaxItems < 0:
		return fmt.Errorf("%w: max-items %d < 0", ErrInvalidConfig, c.MaxItems)
	case c.Items < 0:
		return fmt.Errorf("%w: items %d < 0", ErrInvalidConfig, c.Items)
	case c.Ratio < 0:
		return fmt.Errorf("%w: ratio %g < 0", ErrInvalidConfig, c.Ratio)
	}
	if c.LogFormat != logging.FormatConsole && c.LogFormat != logging.FormatJSON {
		return fmt.Errorf("%w: log-format %q", ErrInvalidConfig, c.LogFormat)
	}

	return nil
}

// ParsedAlgorithms resolves Algorithms into solver values.
func (c Config) ParsedAlgorithms() ([]solver.Algorithm, error) {
	out := make([]solver.Algorithm, 0, len(c.Algorithms))
	for _, name := range c.Algorithms {
		a, err := solver.ParseAlgorithm(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		out = append(out, a)
	}

	return out, nil
}

// SolverOptions maps the configuration onto solver.Options for one algorithm.
func (c Config) SolverOptions() (solver.Options, error) {
	algo, err := solver.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return solver.Options{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	opts := solver.DefaultOptions()
	opts.Algo = algo
	opts.Reps = c.Reps
	opts.Seed = c.Seed
	opts.MaxItems = c.MaxItems

	return opts, nil
}

// YAML renders the effective configuration.
func (c Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

func algorithmNames(algos []solver.Algorithm) []string {
	out := make([]string, len(algos))
	for i, a := range algos {
		out[i] = a.String()
	}

	return out
}
