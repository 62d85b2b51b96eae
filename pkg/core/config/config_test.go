package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	poerr "github.com/msto63/poutil/foundation/core/error"
	"github.com/msto63/poutil/foundation/utils/fixedx"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDuration_UnmarshalText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"complex", "1h30m", 90 * time.Minute, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var d Duration
			err := d.UnmarshalText([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d.Duration)
		})
	}
}

func TestDuration_MarshalText(t *testing.T) {
	t.Parallel()

	out, err := Duration{5 * time.Minute}.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "5m0s", string(out))
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()

	assert.Equal(t, "poutil", cfg.General.Name)
	assert.Equal(t, "warn", cfg.General.LogLevel)
	assert.Equal(t, "text", cfg.General.LogFormat)
	assert.Equal(t, `\`, cfg.Validator.Separator)
	assert.Equal(t, fixedx.Unspecified, cfg.PostPointWidth())
	assert.Equal(t, 8, cfg.Batch.Concurrency)
	assert.Equal(t, 30*time.Second, cfg.Batch.Timeout.Duration)
	assert.NotNil(t, cfg.Defaults)
	assert.NoError(t, cfg.Validate())
}

func TestLoadTOML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "poutil.toml", `
[general]
log_level = "debug"
log_format = "json"

[validator]
extra_file_name_chars = "#"

[format]
pre_point_width = 6
post_point_width = 0

[batch]
concurrency = 2
timeout = "5s"

[defaults]
retries = 3
ratio = "0.25"
verbose = "true"
label = "reports"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.General.LogLevel)
	assert.Equal(t, "json", cfg.General.LogFormat)
	assert.Equal(t, "poutil", cfg.General.Name)
	assert.Equal(t, 6, cfg.Format.PrePointWidth)
	assert.Equal(t, 0, cfg.PostPointWidth())
	assert.Equal(t, 2, cfg.Batch.Concurrency)
	assert.Equal(t, 5*time.Second, cfg.Batch.Timeout.Duration)

	rules := cfg.ValidatorRules()
	assert.Equal(t, '\\', rules.Separator)
	assert.Contains(t, rules.InvalidFileNameChars, '#')
	assert.NotContains(t, rules.InvalidPathChars, '#')

	retries, err := cfg.DefaultInt("retries")
	require.NoError(t, err)
	assert.Equal(t, 3, retries)

	ratio, err := cfg.DefaultFloat("ratio")
	require.NoError(t, err)
	assert.InDelta(t, 0.25, ratio, 1e-12)

	verbose, err := cfg.DefaultBool("verbose")
	require.NoError(t, err)
	assert.True(t, verbose)

	label, err := cfg.DefaultString("label")
	require.NoError(t, err)
	assert.Equal(t, "reports", label)
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "poutil.yaml", `
general:
  name: columns
validator:
  separator: "/"
format:
  pre_point_width: 4
  post_point_width: 2
batch:
  timeout: 1m
defaults:
  width: 12
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "columns", cfg.General.Name)
	assert.Equal(t, '/', cfg.ValidatorRules().Separator)
	assert.Equal(t, 4, cfg.Format.PrePointWidth)
	assert.Equal(t, 2, cfg.PostPointWidth())
	assert.Equal(t, time.Minute, cfg.Batch.Timeout.Duration)

	width, err := cfg.DefaultString("width")
	require.NoError(t, err)
	assert.Equal(t, "12", width)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "config file not found")
	assert.True(t, poerr.HasCode(err, poerr.CodeNotFound))

	_, err = Load(writeConfig(t, "broken.toml", "[general\nname ="))
	assert.ErrorContains(t, err, "failed to parse config")
	assert.True(t, poerr.HasCode(err, poerr.CodeConfigError))

	_, err = Load(writeConfig(t, "broken.yml", "general: [unclosed"))
	assert.ErrorContains(t, err, "failed to parse config")
	assert.True(t, poerr.HasCode(err, poerr.CodeConfigError))
}

func TestLoadRejectsNegativeTimeout(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, "poutil.toml", "[batch]\ntimeout = \"-5s\"\n"))
	require.Error(t, err)
	assert.True(t, poerr.HasCode(err, poerr.CodeInvalidConfig))
	assert.ErrorContains(t, err, "batch.timeout")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		key    string
	}{
		{"two character separator", func(c *Config) { c.Validator.Separator = "//" }, "validator.separator"},
		{"unknown log level", func(c *Config) { c.General.LogLevel = "loud" }, "general.log_level"},
		{"unknown log format", func(c *Config) { c.General.LogFormat = "xml" }, "general.log_format"},
		{"negative width", func(c *Config) { c.Format.PrePointWidth = -1 }, "format.pre_point_width"},
		{"negative concurrency", func(c *Config) { c.Batch.Concurrency = -4 }, "batch.concurrency"},
		{"negative timeout", func(c *Config) { c.Batch.Timeout.Duration = -time.Second }, "batch.timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, poerr.HasCode(err, poerr.CodeInvalidConfig))

			var poErr *poerr.Error
			require.ErrorAs(t, err, &poErr)
			key, _ := poErr.Detail("key")
			assert.Equal(t, tt.key, key)
		})
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, "poutil.toml", "[validator]\nseparator = \"ab\"\n"))
	assert.True(t, poerr.HasCode(err, poerr.CodeInvalidConfig))
}

func TestLoadFromEnv(t *testing.T) {
	path := writeConfig(t, "env.toml", "[general]\nname = \"from-env\"\n")
	t.Setenv("POUTIL_CONFIG", path)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.General.Name)
}

func TestDefaultAccessorErrors(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Defaults["label"] = "reports"

	_, err := cfg.DefaultInt("missing")
	assert.True(t, poerr.HasCode(err, poerr.CodeNotFound))

	_, err = cfg.DefaultInt("label")
	assert.True(t, poerr.HasCode(err, poerr.CodeInvalidFormat))

	_, err = cfg.DefaultBool("label")
	assert.True(t, poerr.HasCode(err, poerr.CodeInvalidFormat))

	assert.True(t, cfg.HasDefault("label"))
	assert.False(t, cfg.HasDefault("missing"))
}
