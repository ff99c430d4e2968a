// Package panels renders the bars around the dashboard gauges.
package panels

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// StatusProps holds all data needed to render the status bar.
// String fields for state avoid importing the parent tui package.
type StatusProps struct {
	Peer        string
	ConfigPath  string
	StateSymbol string // e.g. "●", "○", "✗"
	StateLabel  string // e.g. "LIVE", "WAITING"
	PacketID    int64
	Frames      int
	BadFrames   int
	Elapsed     time.Duration
	Clock       time.Time
}

// AbbreviatePath returns a display-friendly path, replacing the home directory
// with "~" and converting backslashes to forward slashes.
func AbbreviatePath(path string) string {
	if path == "" {
		return ""
	}
	if home, err := os.UserHomeDir(); err == nil && strings.HasPrefix(path, home) {
		path = "~" + path[len(home):]
	}
	return strings.ReplaceAll(path, "\\", "/")
}

// FormatElapsed renders a duration as a compact string: "5s", "2m30s", "1h15m".
func FormatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh%dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}

// RenderStatus renders the status bar. accentStyle is applied to the full
// bar width.
func RenderStatus(props StatusProps, width int, accentStyle lipgloss.Style) string {
	peer := props.Peer
	if peer == "" {
		peer = "—"
	}

	parts := []string{"ACCDash", "peer: " + peer}

	stateLabel := props.StateLabel
	if props.StateSymbol != "" && props.StateLabel != "" {
		stateLabel = props.StateSymbol + " " + props.StateLabel
	}
	if stateLabel != "" {
		parts = append(parts, stateLabel)
	}

	parts = append(parts,
		fmt.Sprintf("packet: %d", props.PacketID),
		fmt.Sprintf("frames: %d", props.Frames),
	)
	if props.BadFrames > 0 {
		parts = append(parts, fmt.Sprintf("bad: %d", props.BadFrames))
	}
	if props.ConfigPath != "" {
		parts = append(parts, "config: "+AbbreviatePath(props.ConfigPath))
	}
	if props.Elapsed > 0 {
		parts = append(parts, fmt.Sprintf("up: %s", FormatElapsed(props.Elapsed)))
	}
	if !props.Clock.IsZero() {
		parts = append(parts, props.Clock.Format("15:04"))
	}

	content := strings.Join(parts, "  │  ")
	return accentStyle.Width(width).Render(content)
}
