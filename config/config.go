package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/promptctl/model"
)

// Environment variables consulted by the config layer.
const (
	// EnvDir overrides the promptctl home directory.
	EnvDir = "PROMPTCTL_DIR"

	// EnvAPIKey supplies the Anthropic API key, taking precedence over the
	// config file.
	EnvAPIKey = "ANTHROPIC_API_KEY"
)

// Sentinel errors for config operations.
var (
	// ErrInvalid indicates a malformed config file or value.
	ErrInvalid = errors.New("invalid config")

	// ErrExists indicates Init found an existing config file.
	ErrExists = errors.New("config already exists")
)

// Config holds promptctl settings.
type Config struct {
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
	APIKey      string  `yaml:"api_key,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Model:       string(model.Default),
		Temperature: model.DefaultTemperature,
		MaxTokens:   model.DefaultMaxTokens,
	}
}

// Dir returns the promptctl home directory, respecting the EnvDir override.
func Dir() string {
	if env := os.Getenv(EnvDir); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".promptctl"
	}
	return filepath.Join(home, ".promptctl")
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Init creates the default config file and returns its path.
// Fails with ErrExists if the file is already present.
func Init() (string, error) {
	path := Path()
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%w at %s", ErrExists, path)
	}
	if err := write(path, Defaults()); err != nil {
		return "", err
	}
	return path, nil
}

// Load reads the config file, merging it over the defaults. A missing file
// yields the defaults without error.
func Load() (Config, error) {
	path := Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}

	// Unmarshal over the defaults so absent keys keep their default values.
	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: bad YAML in %s: %v", ErrInvalid, path, err)
	}
	return cfg, nil
}

// Set updates a single config value, creating the file if needed. Numeric
// keys validate their coercion; unknown keys are rejected.
func Set(key, value string) error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	switch key {
	case "model":
		cfg.Model = value
	case "temperature":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: invalid float for %q: %s", ErrInvalid, key, value)
		}
		cfg.Temperature = f
	case "max_tokens":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: invalid integer for %q: %s", ErrInvalid, key, value)
		}
		cfg.MaxTokens = n
	case "api_key":
		cfg.APIKey = value
	default:
		return fmt.Errorf("%w: unknown key %q", ErrInvalid, key)
	}

	return write(Path(), cfg)
}

// APIKey returns the Anthropic API key from the environment, falling back to
// the config file. Empty when configured nowhere.
func APIKey() string {
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key
	}
	cfg, err := Load()
	if err != nil {
		return ""
	}
	return cfg.APIKey
}

// write marshals cfg to path with owner-only permissions. The config may
// hold an API key, so group/world bits stay off.
func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
