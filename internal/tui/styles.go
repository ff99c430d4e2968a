// Package tui provides a bubbletea + lipgloss terminal UI for the telemetry
// dashboard.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorWhite = lipgloss.Color("#FAFAFA")
	colorGray  = lipgloss.Color("#888888")
	colorRed   = lipgloss.Color("#FF6B6B")
)

// Styles used across the TUI. Accent-dependent styles live on the Theme.
var (
	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	tooSmallStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Align(lipgloss.Center)
)
