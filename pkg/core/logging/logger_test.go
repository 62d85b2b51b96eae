package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	polog "github.com/msto63/poutil/foundation/core/log"
	"github.com/msto63/poutil/pkg/core/config"
)

func TestDefaultLoggerConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultLoggerConfig("poutil")

	assert.Equal(t, "poutil", cfg.Name)
	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, "text", cfg.Format)
	assert.Nil(t, cfg.Output)
}

func TestFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.General.LogLevel = "debug"
	cfg.General.LogFormat = "json"

	lc := FromConfig(cfg)
	assert.Equal(t, "poutil", lc.Name)
	assert.Equal(t, "debug", lc.Level)
	assert.Equal(t, "json", lc.Format)
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level string
		want  polog.Level
	}{
		{"debug", "debug", polog.LevelDebug},
		{"warning alias", "warning", polog.LevelWarn},
		{"empty falls back to warn", "", polog.LevelWarn},
		{"invalid falls back to warn", "loud", polog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger := NewLogger(LoggerConfig{Name: "test", Level: tt.level, Output: &bytes.Buffer{}})
			require.NotNil(t, logger)
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestNewLoggerJSONOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Name: "poutil", Level: "info", Format: "json", Output: &buf})

	logger.Info("validated", polog.Field("count", 3))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "validated", entry["message"])
	assert.Equal(t, "poutil", entry["logger"])
	assert.EqualValues(t, 3, entry["count"])
}

func TestNewLoggerAdditionalOutputs(t *testing.T) {
	t.Parallel()

	var primary, extra bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:             "info",
		Output:            &primary,
		AdditionalOutputs: []io.Writer{&extra},
	})

	logger.Info("hello")

	assert.Contains(t, primary.String(), "hello")
	assert.Equal(t, primary.String(), extra.String())
}

func TestNewSimpleLogger(t *testing.T) {
	t.Parallel()

	logger := NewSimpleLogger("poutil")
	require.NotNil(t, logger)
	assert.False(t, logger.IsLevelEnabled(polog.LevelInfo))
	assert.True(t, logger.IsLevelEnabled(polog.LevelWarn))
}

func TestWithNewRequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := NewLogger(LoggerConfig{Level: "info", Format: "text", Output: &buf})

	logger, id := WithNewRequestID(base)
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	logger.Info("tagged")
	base.Info("untagged")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "(req="+id+")")
	assert.NotContains(t, lines[1], "req=")

	assert.NotEqual(t, NewRequestID(), NewRequestID())
}
