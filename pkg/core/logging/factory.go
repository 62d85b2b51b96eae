// ============================================================================
// poutil - Path and Number Utilities
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating foundation loggers
// Author:      Mike Stoffels
// Created:     2026-10-05
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	polog "github.com/msto63/poutil/foundation/core/log"
	"github.com/msto63/poutil/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: "json", "text" or "console" (default: text)
	Format string

	// Destination (default: stderr)
	Output io.Writer

	// Additional outputs
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// FromConfig derives a LoggerConfig from the general section
func FromConfig(cfg *config.Config) LoggerConfig {
	return LoggerConfig{
		Name:   cfg.General.Name,
		Level:  cfg.General.LogLevel,
		Format: cfg.General.LogFormat,
	}
}

// NewLogger creates a new foundation logger
func NewLogger(cfg LoggerConfig) *polog.Logger {
	level, err := polog.ParseLevel(cfg.Level)
	if err != nil {
		level = polog.LevelWarn
	}

	format, err := polog.ParseFormat(cfg.Format)
	if err != nil {
		format = polog.FormatText
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return polog.NewWithConfig(polog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	})
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(name string) *polog.Logger {
	return NewLogger(DefaultLoggerConfig(name))
}

// NewRequestID returns a fresh request identifier
func NewRequestID() string {
	return uuid.NewString()
}

// WithNewRequestID tags logger with a fresh request ID and returns both
func WithNewRequestID(logger *polog.Logger) (*polog.Logger, string) {
	id := NewRequestID()
	return logger.WithRequestID(id), id
}
