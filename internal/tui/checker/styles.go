// ============================================================================
// poutil - Path and Number Utilities
// ============================================================================
//
// Package:     checker
// Description: Styles for the interactive checker
// Author:      Mike Stoffels
// Created:     2026-10-08
// License:     MIT
// ============================================================================

package checker

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	ColorPrimary = lipgloss.Color("#8B5CF6") // Violet
	ColorSuccess = lipgloss.Color("#10B981") // Emerald
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorText    = lipgloss.Color("#F8FAFC") // Slate 50
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			MarginBottom(1)

	TabStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorPrimary).
			Bold(true).
			Padding(0, 1)

	InputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)

	ValidStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	InvalidStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	DetailStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	HistoryStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			PaddingLeft(2)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)
)
