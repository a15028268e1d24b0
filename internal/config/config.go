// Package config loads confplan settings from a YAML file with CONFPLAN_*
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // LoadLocation must work on hosts without zoneinfo

	"gopkg.in/yaml.v3"
)

const (
	DefaultTimezone  = "Asia/Kuching"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	dirName  = ".confplan"
	fileName = "config.yaml"
)

// Config is the top-level application configuration.
type Config struct {
	// Catalog is a catalog file or doublestar glob. Empty selects the
	// built-in schedule.
	Catalog string `yaml:"catalog"`

	// Store is the SQLite catalog store path.
	Store string `yaml:"store"`

	// UseStore reads the catalog from Store instead of Catalog.
	UseStore bool `yaml:"use_store"`

	// Timezone is the IANA zone session times are interpreted in for
	// calendar export.
	Timezone string `yaml:"timezone"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// LogFile receives logs while the TUI owns the terminal. Empty discards
	// them in the TUI and uses stderr elsewhere.
	LogFile string `yaml:"log_file"`
}

// Dir returns ~/.confplan.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// DefaultPath returns ~/.confplan/config.yaml.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// DefaultConfig returns the built-in defaults. storeDir is where the default
// store file lives; an empty storeDir leaves Store empty.
func DefaultConfig(storeDir string) Config {
	cfg := Config{
		Timezone:  DefaultTimezone,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
	if storeDir != "" {
		cfg.Store = filepath.Join(storeDir, "catalog.db")
	}
	return cfg
}

// Normalize fills zero values with defaults so partially-filled files still
// behave.
func (c *Config) Normalize() {
	if c.Timezone == "" {
		c.Timezone = DefaultTimezone
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}
}

// Validate reports every invalid setting in one error.
func (c Config) Validate() error {
	var errs []error
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone %q: %w", c.Timezone, err))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level %q: want debug, info, warn or error", c.LogLevel))
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log_format %q: want text or json", c.LogFormat))
	}
	if c.UseStore && c.Store == "" {
		errs = append(errs, errors.New("use_store is set but store is empty"))
	}
	return errors.Join(errs...)
}

// Location returns the configured time zone.
func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Load reads the YAML file at path over the defaults. A missing file is not
// an error and is not created.
func Load(path string, defaults Config) (Config, error) {
	cfg := defaults
	if path == "" {
		cfg.Normalize()
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg.Normalize()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.Normalize()
	return cfg, nil
}

// ApplyEnv overrides cfg from CONFPLAN_* variables looked up with getenv.
// Unparseable booleans are ignored.
func ApplyEnv(cfg *Config, getenv func(string) string) {
	if v := getenv("CONFPLAN_CATALOG"); v != "" {
		cfg.Catalog = v
	}
	if v := getenv("CONFPLAN_STORE"); v != "" {
		cfg.Store = v
	}
	if v := getenv("CONFPLAN_USE_STORE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.UseStore = b
		}
	}
	if v := getenv("CONFPLAN_TIMEZONE"); v != "" {
		cfg.Timezone = v
	}
	if v := getenv("CONFPLAN_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv("CONFPLAN_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := getenv("CONFPLAN_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	cfg.Normalize()
}

// LoadConfig resolves the full configuration: defaults, then the file at
// path (or the default path when empty), then the environment.
func LoadConfig(path string) (Config, error) {
	dir, dirErr := Dir()
	if path == "" {
		if dirErr != nil {
			return Config{}, dirErr
		}
		path = filepath.Join(dir, fileName)
	}

	cfg, err := Load(path, DefaultConfig(dir))
	if err != nil {
		return Config{}, err
	}
	ApplyEnv(&cfg, os.Getenv)
	return cfg, nil
}
