// ============================================================================
// poutil - Path and Number Utilities
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and the CLI
// Author:      Mike Stoffels
// Created:     2026-10-05
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants
const (
	// Module version
	Module = "0.1.0"

	// Component versions
	CLI       = "0.1.0"
	Validator = "0.1.0"
	Formatter = "0.1.0"
	Checker   = "0.1.0"
)

// Set at build time via -ldflags "-X github.com/msto63/poutil/pkg/core/version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "cli":
		return CLI
	case "validator":
		return Validator
	case "formatter":
		return Formatter
	case "checker":
		return Checker
	default:
		return Module
	}
}

// String returns a one-line version description
func String() string {
	return fmt.Sprintf("poutil %s (commit %s, built %s)", Module, Commit, BuildDate)
}
