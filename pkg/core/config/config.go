// ============================================================================
// poutil - Path and Number Utilities
// ============================================================================
//
// Package:     config
// Description: TOML/YAML configuration with defaults and typed default values
// Author:      Mike Stoffels
// Created:     2026-10-05
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	poerr "github.com/msto63/poutil/foundation/core/error"
	polog "github.com/msto63/poutil/foundation/core/log"
	"github.com/msto63/poutil/foundation/utils/fixedx"
	"github.com/msto63/poutil/foundation/utils/pathx"
)

// Config holds the complete application configuration
type Config struct {
	General   GeneralConfig          `toml:"general" yaml:"general"`
	Validator ValidatorConfig        `toml:"validator" yaml:"validator"`
	Format    FormatConfig           `toml:"format" yaml:"format"`
	Batch     BatchConfig            `toml:"batch" yaml:"batch"`
	Defaults  map[string]interface{} `toml:"defaults" yaml:"defaults"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// ValidatorConfig holds path validation settings
type ValidatorConfig struct {
	Separator          string `toml:"separator" yaml:"separator"`
	ExtraPathChars     string `toml:"extra_path_chars" yaml:"extra_path_chars"`
	ExtraFileNameChars string `toml:"extra_file_name_chars" yaml:"extra_file_name_chars"`
}

// FormatConfig holds default column widths for number formatting
type FormatConfig struct {
	PrePointWidth int `toml:"pre_point_width" yaml:"pre_point_width"`

	// nil means unspecified; 0 is a valid width
	PostPointWidth *int `toml:"post_point_width" yaml:"post_point_width"`
}

// BatchConfig holds batch runner settings
type BatchConfig struct {
	Concurrency int      `toml:"concurrency" yaml:"concurrency"`
	Timeout     Duration `toml:"timeout" yaml:"timeout"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, poerr.Newf("config file not found: %s", path).
			WithCode(poerr.CodeNotFound).
			WithOperation("config.Load").
			WithDetail("path", path)
	}
	if err != nil {
		return nil, loadError(err, "failed to read config", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, loadError(err, "failed to parse config", path)
		}
	default:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, loadError(err, "failed to parse config", path)
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func loadError(err error, message, path string) error {
	return poerr.Wrap(err, message).
		WithCode(poerr.CodeConfigError).
		WithOperation("config.Load").
		WithDetail("path", path)
}

// LoadFromEnv loads configuration from the POUTIL_CONFIG environment variable
func LoadFromEnv() (*Config, error) {
	path := os.Getenv("POUTIL_CONFIG")
	if path == "" {
		// Try default locations
		defaultPaths := []string{
			"./configs/poutil.toml",
			"./poutil.toml",
			"./poutil.yaml",
			filepath.Join(os.Getenv("HOME"), ".config/poutil/config.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, fmt.Errorf("no config file found, set POUTIL_CONFIG or create configs/poutil.toml")
	}

	return Load(path)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "poutil"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Validator
	if c.Validator.Separator == "" {
		c.Validator.Separator = string(pathx.DefaultSeparator)
	}

	// Format
	if c.Format.PostPointWidth == nil {
		unspecified := fixedx.Unspecified
		c.Format.PostPointWidth = &unspecified
	}

	// Batch
	if c.Batch.Concurrency == 0 {
		c.Batch.Concurrency = 8
	}
	if c.Batch.Timeout.Duration == 0 {
		c.Batch.Timeout.Duration = 30 * time.Second
	}

	if c.Defaults == nil {
		c.Defaults = make(map[string]interface{})
	}
}

// Validate checks values that defaults cannot repair
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Validator.Separator) != 1 {
		return invalid("validator.separator", c.Validator.Separator, "must be exactly one character")
	}
	if _, err := polog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, err.Error())
	}
	if _, err := polog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, err.Error())
	}
	if c.Format.PrePointWidth < 0 {
		return invalid("format.pre_point_width", c.Format.PrePointWidth, "must not be negative")
	}
	if c.Batch.Concurrency < 0 {
		return invalid("batch.concurrency", c.Batch.Concurrency, "must not be negative")
	}
	if c.Batch.Timeout.Duration < 0 {
		return invalid("batch.timeout", c.Batch.Timeout.String(), "must not be negative")
	}
	return nil
}

func invalid(key string, value interface{}, reason string) error {
	return poerr.Newf("invalid config value for %s: %s", key, reason).
		WithCode(poerr.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("key", key).
		WithDetail("value", value)
}

// ValidatorRules returns the path rules described by the validator section
func (c *Config) ValidatorRules() pathx.Rules {
	rules := pathx.WindowsRules().With([]rune(c.Validator.ExtraPathChars), []rune(c.Validator.ExtraFileNameChars))
	if r, _ := utf8.DecodeRuneInString(c.Validator.Separator); r != utf8.RuneError {
		rules.Separator = r
	}
	return rules
}

// PostPointWidth returns the configured fraction width or fixedx.Unspecified
func (c *Config) PostPointWidth() int {
	if c.Format.PostPointWidth == nil {
		return fixedx.Unspecified
	}
	return *c.Format.PostPointWidth
}
