package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestCanvas_PadsGaps(t *testing.T) {
	c := NewCanvas()
	c.Text(4, 0, "b")
	c.Text(0, 0, "a")
	c.Text(2, 2, "c")

	if got, want := c.Plain(), "a   b\n\n  c"; got != want {
		t.Errorf("Plain() = %q, want %q", got, want)
	}
	if c.Height() != 3 {
		t.Errorf("Height() = %d, want 3", c.Height())
	}
}

func TestCanvas_OverlapAppends(t *testing.T) {
	c := NewCanvas()
	c.Text(0, 0, "hello")
	c.Text(2, 0, "XY")
	if got := c.Line(0); got != "helloXY" {
		t.Errorf("Line(0) = %q", got)
	}
}

func TestCanvas_IgnoresInvalid(t *testing.T) {
	c := NewCanvas()
	c.Text(-1, 0, "x")
	c.Text(0, -1, "x")
	c.Text(0, 0, "")
	if c.Height() != 0 {
		t.Errorf("Height() = %d, want 0", c.Height())
	}
	if c.Render() != "" {
		t.Errorf("Render() = %q, want empty", c.Render())
	}
}

func TestCanvas_Reset(t *testing.T) {
	c := NewCanvas()
	c.Text(0, 5, "x")
	c.Reset()
	if c.Height() != 0 {
		t.Errorf("Height() after Reset = %d", c.Height())
	}
}

func TestCanvas_RenderKeepsText(t *testing.T) {
	c := NewCanvas()
	c.SetLabelColor("#7D56F4")
	c.Label(0, 0, "Tachometer")
	c.Put(12, 0, "hot", tooHotStyle)
	c.Put(0, 1, "cold", lipgloss.NewStyle().Foreground(colorBlue))

	out := c.Render()
	for _, want := range []string{"Tachometer", "hot", "cold"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q; got %q", want, out)
		}
	}
}
