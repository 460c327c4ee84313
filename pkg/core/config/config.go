// ============================================================================
// Rechenwerk - Taschenrechner fürs Terminal
// ============================================================================
//
// Package:     config
// Description: Application configuration from TOML or YAML files
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	rwerror "github.com/msto63/rechenwerk/pkg/core/error"
	rwlog "github.com/msto63/rechenwerk/pkg/core/log"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "RECHENWERK_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Display DisplayConfig `toml:"display" yaml:"display"`
	Loan    LoanConfig    `toml:"loan" yaml:"loan"`
	Theme   ThemeConfig   `toml:"theme" yaml:"theme"`

	// path is the file the configuration was loaded from, empty for defaults
	path string
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
	LogFile   string `toml:"log_file" yaml:"log_file"`
}

// DisplayConfig holds calculator display settings
type DisplayConfig struct {
	// Significant digits of a formatted result
	Precision int `toml:"precision" yaml:"precision"`
	// Number of entries kept on the tape
	TapeSize int `toml:"tape_size" yaml:"tape_size"`
}

// LoanConfig holds the initial values of the loan dialog
type LoanConfig struct {
	Principal       float64 `toml:"principal" yaml:"principal"`
	RatePercent     float64 `toml:"rate_percent" yaml:"rate_percent"`
	Years           float64 `toml:"years" yaml:"years"`
	PaymentsPerYear int     `toml:"payments_per_year" yaml:"payments_per_year"`
}

// ThemeConfig holds the TUI colors as hex strings
type ThemeConfig struct {
	Primary   string `toml:"primary" yaml:"primary"`
	Secondary string `toml:"secondary" yaml:"secondary"`
	Accent    string `toml:"accent" yaml:"accent"`
	Error     string `toml:"error" yaml:"error"`
	Muted     string `toml:"muted" yaml:"muted"`
	Surface   string `toml:"surface" yaml:"surface"`
	Text      string `toml:"text" yaml:"text"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{
		Display: DisplayConfig{TapeSize: 100},
		Loan:    LoanConfig{Principal: 200000, RatePercent: 5.0},
	}
	cfg.applyDefaults()
	return cfg
}

// Path returns the file the configuration was loaded from
func (c *Config) Path() string {
	return c.path
}

// Load loads configuration from a TOML or YAML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, rwerror.New("config file not found: "+path).
			WithCode(rwerror.CodeMissingConfig).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	// keys present in the file override the defaults, zeros included
	cfg := Default()
	if err := decodeFile(path, cfg); err != nil {
		return nil, rwerror.Wrap(err, "failed to parse config").
			WithCode(rwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()
	cfg.path = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromEnv finds the configuration to use. An explicit path must exist;
// otherwise $RECHENWERK_CONFIG and the default locations are tried, and
// the defaults are returned when no file is found.
func LoadFromEnv(explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}

	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range defaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

func defaultPaths() []string {
	paths := []string{
		"./rechenwerk.toml",
		"./rechenwerk.yaml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "rechenwerk", "config.toml"),
			filepath.Join(home, ".config", "rechenwerk", "config.yaml"),
		)
	}
	return paths
}

func decodeFile(path string, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return yaml.Unmarshal(data, cfg)
	default:
		_, err := toml.DecodeFile(path, cfg)
		return err
	}
}

// applyDefaults replaces values that are empty or zero where zero is never
// valid. A zero principal, rate or tape size is meaningful and kept.
func (c *Config) applyDefaults() {
	// General
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "json"
	}
	if c.General.LogFile == "" {
		c.General.LogFile = defaultLogFile()
	}

	// Display
	if c.Display.Precision == 0 {
		c.Display.Precision = 12
	}

	// Loan
	if c.Loan.Years == 0 {
		c.Loan.Years = 30
	}
	if c.Loan.PaymentsPerYear == 0 {
		c.Loan.PaymentsPerYear = 12
	}

	// Theme
	if c.Theme.Primary == "" {
		c.Theme.Primary = "#3A86FF"
	}
	if c.Theme.Secondary == "" {
		c.Theme.Secondary = "#10B981"
	}
	if c.Theme.Accent == "" {
		c.Theme.Accent = "#F59E0B"
	}
	if c.Theme.Error == "" {
		c.Theme.Error = "#EF4444"
	}
	if c.Theme.Muted == "" {
		c.Theme.Muted = "#6B7280"
	}
	if c.Theme.Surface == "" {
		c.Theme.Surface = "#374151"
	}
	if c.Theme.Text == "" {
		c.Theme.Text = "#F9FAFB"
	}
}

func defaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".rechenwerk", "rechenwerk.log")
	}
	return filepath.Join(home, ".rechenwerk", "rechenwerk.log")
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.General.LogFile = os.ExpandEnv(c.General.LogFile)
}

// Validate checks value ranges after defaults were applied
func (c *Config) Validate() error {
	invalid := func(field string, value interface{}, reason string) error {
		return rwerror.New("invalid config value for "+field+": "+reason).
			WithCode(rwerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("field", field).
			WithDetail("value", value)
	}

	if _, err := rwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, err.Error())
	}
	if _, err := rwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, err.Error())
	}
	if c.Display.Precision < 1 || c.Display.Precision > 17 {
		return invalid("display.precision", c.Display.Precision, "must be between 1 and 17")
	}
	if c.Display.TapeSize < 0 {
		return invalid("display.tape_size", c.Display.TapeSize, "must not be negative")
	}
	if c.Loan.Principal < 0 {
		return invalid("loan.principal", c.Loan.Principal, "must not be negative")
	}
	if c.Loan.RatePercent < 0 {
		return invalid("loan.rate_percent", c.Loan.RatePercent, "must not be negative")
	}
	if c.Loan.Years <= 0 {
		return invalid("loan.years", c.Loan.Years, "must be greater than 0")
	}
	if c.Loan.PaymentsPerYear < 1 {
		return invalid("loan.payments_per_year", c.Loan.PaymentsPerYear, "must be at least 1")
	}
	return nil
}
