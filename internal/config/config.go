// Package config loads runtime settings from defaults, an optional config
// file, .env, environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	HTTP    HTTPConfig    `mapstructure:"http"`
	Log     LogConfig     `mapstructure:"log"`
	Survey  SurveyConfig  `mapstructure:"survey"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type HTTPConfig struct {
	Port              string        `mapstructure:"port"                validate:"required"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" validate:"gte=0"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"        validate:"gte=0"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"       validate:"gte=0"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"        validate:"gte=0"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"    validate:"gte=0"`
	MaxBodyBytes      int64         `mapstructure:"max_body_bytes"      validate:"gt=0"`
}

// LogConfig selects the slog handler and, when File is set, lumberjack rotation.
type LogConfig struct {
	Level      string `mapstructure:"level"       validate:"oneof=debug info warn error"`
	Format     string `mapstructure:"format"      validate:"oneof=json text"`
	Output     string `mapstructure:"output"      validate:"oneof=stdout stderr"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"    validate:"gte=0"` // MB
	MaxBackups int    `mapstructure:"max_backups" validate:"gte=0"`
	MaxAge     int    `mapstructure:"max_age"     validate:"gte=0"` // days
	Compress   bool   `mapstructure:"compress"`
}

type SurveyConfig struct {
	Mode      string `mapstructure:"mode"       validate:"oneof=xy relative"`
	Input     string `mapstructure:"input"      validate:"oneof=sample stdin"`
	MaxPoints int    `mapstructure:"max_points" validate:"gte=0"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"    validate:"startswith=/"`
}

// Options customise a single Load call.
type Options struct {
	// Path to a config file (toml, yaml, json). Empty means none.
	Path string
	// Flags are bound by name, with "-" mapped to "." (log-level -> log.level).
	Flags *pflag.FlagSet
	// FlagKeys maps flag names to config keys when the name-derived key is wrong.
	FlagKeys map[string]string
	// Defaults override the built-in defaults for this binary.
	Defaults map[string]any
	// EnvFiles are loaded with godotenv before the environment is read.
	EnvFiles []string
}

var defaults = map[string]any{
	"http.port":                "8080",
	"http.read_header_timeout": 5 * time.Second,
	"http.read_timeout":        10 * time.Second,
	"http.write_timeout":       10 * time.Second,
	"http.idle_timeout":        60 * time.Second,
	"http.shutdown_timeout":    10 * time.Second,
	"http.max_body_bytes":      1 << 20,
	"log.level":                "info",
	"log.format":               "json",
	"log.output":               "stdout",
	"log.file":                 "",
	"log.max_size":             100,
	"log.max_backups":          5,
	"log.max_age":              30,
	"log.compress":             false,
	"survey.mode":              "xy",
	"survey.input":             "sample",
	"survey.max_points":        10000,
	"metrics.enabled":          true,
	"metrics.path":             "/metrics",
}

// Load builds a validated Config. A missing .env file is not an error.
func Load(opts Options) (*Config, error) {
	if err := godotenv.Load(opts.EnvFiles...); err != nil {
		slog.Debug("no .env file found (using environment variables)", "err", err)
	}

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	for k, val := range opts.Defaults {
		v.SetDefault(k, val)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.Path != "" {
		v.SetConfigFile(opts.Path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("load config: read %q: %w", opts.Path, err)
		}
	}

	if opts.Flags != nil {
		var bindErr error
		opts.Flags.VisitAll(func(f *pflag.Flag) {
			key, ok := opts.FlagKeys[f.Name]
			if !ok {
				key = strings.ReplaceAll(f.Name, "-", ".")
			}
			bindErr = errors.Join(bindErr, v.BindPFlag(key, f))
		})
		if bindErr != nil {
			return nil, fmt.Errorf("load config: bind flags: %w", bindErr)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("load config: unmarshal: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("load config: validate: %w", err)
	}

	return &cfg, nil
}

// Get returns the environment variable key, or fallback when it is unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
