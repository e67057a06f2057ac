package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Refresh  key.Binding
	Provider key.Binding
	Offline  key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Provider: key.NewBinding(
			key.WithKeys("p", "tab"),
			key.WithHelp("p", "next airline"),
		),
		Offline: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "toggle offline"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Provider, k.Offline, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Refresh, k.Provider, k.Offline, k.Quit}}
}
