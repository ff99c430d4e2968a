package panels

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD93D"))
)

// FooterProps holds all data needed to render the footer bar.
type FooterProps struct {
	Help  string // rendered key help
	Armed bool   // statics will be re-applied on the next live frame
	Error string
}

// RenderFooter renders the footer bar: a notice on the left, key help on
// the right.
func RenderFooter(props FooterProps, width int) string {
	var left string
	switch {
	case props.Error != "":
		left = "✗ " + props.Error
	case props.Armed:
		left = noticeStyle.Render("statics armed")
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(props.Help)
	if gap < 2 {
		gap = 2
	}

	return footerStyle.Width(width).Render(left + strings.Repeat(" ", gap) + props.Help)
}
