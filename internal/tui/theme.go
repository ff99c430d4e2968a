package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.ACCDash/internal/config"
)

// Theme holds accent-color-derived styles.
type Theme struct {
	accent      string
	accentStyle lipgloss.Style // status bar background
	borderStyle lipgloss.Style // gauge area frame
}

// NewTheme creates a Theme from a hex accent color string (e.g. "#7D56F4").
// If accentColor is empty, config.DefaultAccentColor is used.
func NewTheme(accentColor string) Theme {
	color := config.DefaultAccentColor
	if accentColor != "" {
		color = accentColor
	}
	c := lipgloss.Color(color)
	return Theme{
		accent: color,
		accentStyle: lipgloss.NewStyle().
			Background(c).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true),
		borderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray),
	}
}

// Accent returns the hex accent color.
func (t Theme) Accent() string {
	return t.accent
}

// AccentHeaderStyle returns the style for the status bar.
func (t Theme) AccentHeaderStyle() lipgloss.Style {
	return t.accentStyle
}

// BodyStyle returns the frame drawn around the gauges.
func (t Theme) BodyStyle() lipgloss.Style {
	return t.borderStyle
}
