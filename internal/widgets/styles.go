package widgets

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	colorWhite  = lipgloss.Color("#FAFAFA")
	colorGray   = lipgloss.Color("#888888")
	colorBlue   = lipgloss.Color("#5B9BD5")
	colorGreen  = lipgloss.Color("#6BCB77")
	colorYellow = lipgloss.Color("#FFD93D")
	colorRed    = lipgloss.Color("#FF6B6B")
	colorOrange = lipgloss.Color("#FFA54F")
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	coldStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	optimalStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	tooHotStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	shiftStyle = lipgloss.NewStyle().
			Foreground(colorOrange)

	redlineStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true).
			Blink(true)
)

