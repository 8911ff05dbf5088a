package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Increment key.Binding
	Reset     key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Increment: key.NewBinding(key.WithKeys(" ", "+", "enter", "up"), key.WithHelp("space", "count one")),
		Reset:     key.NewBinding(key.WithKeys("r", "0"), key.WithHelp("r", "reset")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increment, k.Reset, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Increment, k.Reset, k.Quit}}
}
