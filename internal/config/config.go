package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/primext/internal/codec"
)

// EnvPrefix is prepended to upper-cased keys to form environment variables,
// e.g. PRIMEXT_LOG_LEVEL.
const EnvPrefix = "PRIMEXT"

// ErrInvalidConfig is returned when a loaded setting fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the CLI settings.
type Config struct {
	// Format is the input format used when it cannot be detected from a
	// file name (stdin). Empty means detect.
	Format string `mapstructure:"format"`
	// Output is the format results are written in.
	Output string `mapstructure:"output"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
	// Indent is the number of spaces per nesting level in output.
	Indent int `mapstructure:"indent"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Output:   string(codec.JSON),
		LogLevel: "warn",
		Indent:   2,
	}
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("format", defaults.Format)
	v.SetDefault("output", defaults.Output)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("indent", defaults.Indent)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// BindFlags binds each setting to the flag of the same name with dashes,
// when the flag set defines it.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{"format", "output", "log_level", "indent"} {
		f := flags.Lookup(strings.ReplaceAll(key, "_", "-"))
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %q: %w", f.Name, err)
		}
	}

	return nil
}

// Load merges the config file at path (if non-empty) into v, decodes the
// result and validates it.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		if err := mergeFile(v, path); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.ErrorUnused = true
	}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if c.Format != "" {
		if _, err := codec.ParseFormat(c.Format); err != nil {
			return fmt.Errorf("%w: format: %w", ErrInvalidConfig, err)
		}
	}
	if _, err := codec.ParseFormat(c.Output); err != nil {
		return fmt.Errorf("%w: output: %w", ErrInvalidConfig, err)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}
	if c.Indent < 0 {
		return fmt.Errorf("%w: indent must be >= 0, got %d", ErrInvalidConfig, c.Indent)
	}

	return nil
}

// mergeFile reads a config file through the codec package so that CUE and
// HCL files work alongside viper's own formats.
func mergeFile(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	f, err := codec.Detect(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	m, err := codec.Decode(data, f, path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := v.MergeConfigMap(m); err != nil {
		return fmt.Errorf("merge config: %w", err)
	}

	return nil
}
