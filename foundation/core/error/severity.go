// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels let callers and the logger decide how loudly an
//              error should be reported. Rejected user input is low severity,
//              storage failures are medium.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with severity levels
// - 2026-10-14 v0.2.0: Severities for path codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates rejected input or another expected failure
	SeverityLow Severity = iota

	// SeverityMedium indicates a failure that has a workaround
	SeverityMedium

	// SeverityHigh indicates a failure that stops the current operation
	SeverityHigh

	// SeverityCritical indicates the process cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityHigh

	case CodePathStorage, CodeConfigError, CodeInvalidConfig:
		return SeverityMedium

	case CodeInvalidInput, CodeNotFound, CodeInvalidFormat,
		CodePathEmpty, CodePathReservedChar, CodePathEmptySegment, CodePathSeparator,
		CodePathComma, CodePathRootNotFound:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
