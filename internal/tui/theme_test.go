package tui

import (
	"testing"

	"github.com/LISSConsulting/LISSTech.ACCDash/internal/config"
)

func TestNewTheme_DefaultAccent(t *testing.T) {
	th := NewTheme("")
	if th.Accent() != config.DefaultAccentColor {
		t.Errorf("Accent() = %q, want %q", th.Accent(), config.DefaultAccentColor)
	}
	_ = th.AccentHeaderStyle().Render("x")
	_ = th.BodyStyle().Render("x")
}

func TestNewTheme_CustomAccent(t *testing.T) {
	th := NewTheme("#FF0000")
	if th.Accent() != "#FF0000" {
		t.Errorf("Accent() = %q", th.Accent())
	}
}
