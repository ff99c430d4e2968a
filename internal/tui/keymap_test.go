package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
		want    bool
	}{
		{"q quits", runeKey("q"), km.Quit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit, true},
		{"r rearms", runeKey("r"), km.Rearm, true},
		{"r does not quit", runeKey("r"), km.Quit, false},
		{"x is unbound", runeKey("x"), km.Quit, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := key.Matches(tt.msg, tt.binding); got != tt.want {
				t.Errorf("Matches = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewKeyMap_EmptyDisables(t *testing.T) {
	km := NewKeyMap([]string{"esc"}, nil)
	if km.Rearm.Enabled() {
		t.Error("rearm with no keys should be disabled")
	}
	if !km.Quit.Enabled() {
		t.Error("quit should be enabled")
	}
	if got := km.Quit.Help().Key; got != "esc" {
		t.Errorf("quit help key = %q, want esc", got)
	}
}

func TestKeyMap_Help(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) != 2 {
		t.Errorf("ShortHelp() = %d bindings, want 2", len(km.ShortHelp()))
	}
	if len(km.FullHelp()) != 1 {
		t.Errorf("FullHelp() = %d groups, want 1", len(km.FullHelp()))
	}
	if got := km.Quit.Help().Key; got != "q/ctrl+c" {
		t.Errorf("quit help key = %q", got)
	}
}
