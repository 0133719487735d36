// Package config loads defaults for the ecv1 command.
//
// Configuration comes from a single YAML file named by the --config flag
// or, when the flag is absent, the ECV1_CONFIG environment variable. There
// is no discovery: without either, built-in defaults apply. Command-line
// flags override file values.
//
//	chain: gz>b64
//	content_type: json
//	pretty: true
//	log_level: info
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zoobzio/ecv1"
)

// EnvVar names the environment variable consulted when --config is unset.
const EnvVar = "ECV1_CONFIG"

// Config holds ecv1 command defaults.
type Config struct {
	// Chain is the transform chain used by encode.
	Chain string `yaml:"chain"`

	// ContentType is the content type used by encode.
	ContentType string `yaml:"content_type"`

	// Pretty controls two-space indentation of decoded JSON.
	Pretty bool `yaml:"pretty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	opts := ecv1.DefaultOptions()
	return &Config{
		Chain:       opts.Chain,
		ContentType: opts.ContentType,
		Pretty:      true,
		LogLevel:    "info",
	}
}

// Resolve returns the config path to load: flagPath if set, otherwise the
// value of ECV1_CONFIG. An empty result means built-in defaults.
func Resolve(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return os.Getenv(EnvVar)
}

// Load reads the YAML file at path over the defaults. An empty path returns
// Default(). Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the chain uses known transforms and the log level
// is recognized.
func (c *Config) Validate() error {
	chain, err := ecv1.ParseChain(c.Chain)
	if err != nil {
		return fmt.Errorf("chain: %w", err)
	}
	if err := chain.Validate(); err != nil {
		return fmt.Errorf("chain: %w", err)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Options returns the encode options described by c.
func (c *Config) Options() ecv1.Options {
	return ecv1.Options{
		Chain:       c.Chain,
		ContentType: c.ContentType,
	}
}

// Level returns the slog level for LogLevel, defaulting to info.
func (c *Config) Level() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log_level: unknown level %q", s)
	}
}
