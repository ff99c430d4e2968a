package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the dashboard hotkeys. It implements help.KeyMap.
type KeyMap struct {
	Quit  key.Binding
	Rearm key.Binding
}

// NewKeyMap binds the given key names. An empty list disables the action.
func NewKeyMap(quit, rearm []string) KeyMap {
	return KeyMap{
		Quit:  binding(quit, "quit"),
		Rearm: binding(rearm, "reload statics"),
	}
}

// DefaultKeyMap is q/ctrl+c to quit and r to re-arm statics.
func DefaultKeyMap() KeyMap {
	return NewKeyMap([]string{"q", "ctrl+c"}, []string{"r"})
}

func binding(keys []string, desc string) key.Binding {
	b := key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
	if len(keys) == 0 {
		b.SetEnabled(false)
	}
	return b
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Rearm, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
