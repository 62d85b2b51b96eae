// ============================================================================
// poutil - Path and Number Utilities
// ============================================================================
//
// Package:     cmd
// Description: Lipgloss styles for command output
// Author:      Mike Stoffels
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10B981")).
		Bold(true)

	invalidStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// statusLabel renders the fixed-width ok/invalid column
func statusLabel(valid bool) string {
	if valid {
		return okStyle.Render("ok") + "     "
	}
	return invalidStyle.Render("invalid")
}
