// Package log provides structured logging for the poutil foundation library.
//
// Package: log
// Title: poutil Structured Logging
// Description: Leveled, structured logger with JSON, text and console output.
//              Loggers are immutable; the With* builders return configured
//              copies that are safe to share between goroutines.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-14 v0.2.0: Dropped async buffering and audit level
//
// Usage:
//   import polog "github.com/msto63/poutil/foundation/core/log"
//
//   logger := polog.New().
//     WithLevel(polog.LevelDebug).
//     WithFormat(polog.FormatText).
//     WithField("component", "pathx")
//
//   logger.Debug("path rejected", polog.Field("path", p), polog.Err(err))
//
//   timer := logger.StartTimer("batch_validate")
//   // ... validate paths
//   timer.Stop()
package log
