package widgets

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// segment is one run of text placed at an absolute column.
type segment struct {
	x      int
	text   string
	style  lipgloss.Style
	styled bool
}

// Canvas is a sparse screen buffer. Gauges place text at absolute
// coordinates; Render lays the rows out left to right and pads the gaps.
type Canvas struct {
	rows  map[int][]segment
	maxY  int
	label lipgloss.Style
}

// NewCanvas returns an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{rows: make(map[int][]segment), maxY: -1, label: labelStyle}
}

// SetLabelColor recolors gauge titles, typically with the configured
// accent color.
func (c *Canvas) SetLabelColor(hex string) {
	if hex == "" {
		return
	}
	c.label = labelStyle.Foreground(lipgloss.Color(hex))
}

// Reset clears every row.
func (c *Canvas) Reset() {
	c.rows = make(map[int][]segment)
	c.maxY = -1
}

// Text places unstyled text.
func (c *Canvas) Text(x, y int, text string) {
	c.put(segment{x: x, text: text}, y)
}

// Label places a gauge title.
func (c *Canvas) Label(x, y int, text string) {
	c.Put(x, y, text, c.label)
}

// Put places styled text. The rendered run ends with a color reset.
func (c *Canvas) Put(x, y int, text string, style lipgloss.Style) {
	c.put(segment{x: x, text: text, style: style, styled: true}, y)
}

func (c *Canvas) put(s segment, y int) {
	if s.x < 0 || y < 0 || s.text == "" {
		return
	}
	c.rows[y] = append(c.rows[y], s)
	if y > c.maxY {
		c.maxY = y
	}
}

// Height is the number of rows up to and including the last written one.
func (c *Canvas) Height() int {
	return c.maxY + 1
}

// Render returns the styled frame, one line per row.
func (c *Canvas) Render() string {
	return c.render(true)
}

// Plain returns the frame without styling.
func (c *Canvas) Plain() string {
	return c.render(false)
}

// Line returns row y without styling.
func (c *Canvas) Line(y int) string {
	return c.line(y, false)
}

func (c *Canvas) render(styled bool) string {
	lines := make([]string, c.Height())
	for y := range lines {
		lines[y] = c.line(y, styled)
	}
	return strings.Join(lines, "\n")
}

func (c *Canvas) line(y int, styled bool) string {
	segs := append([]segment(nil), c.rows[y]...)
	sort.SliceStable(segs, func(i, j int) bool { return segs[i].x < segs[j].x })

	var b strings.Builder
	col := 0
	for _, s := range segs {
		if s.x > col {
			b.WriteString(strings.Repeat(" ", s.x-col))
			col = s.x
		}
		if styled && s.styled {
			b.WriteString(s.style.Render(s.text))
		} else {
			b.WriteString(s.text)
		}
		// Overlapping segments are appended, not clipped.
		col += lipgloss.Width(s.text)
	}
	return b.String()
}
