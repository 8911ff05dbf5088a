// Package tui renders the tally screen and owns its state.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tally/internal/config"
	"tally/internal/counter"
)

// App is the whole UI: one screen, one counter.
type App struct {
	tally  counter.Counter
	keys   keyMap
	emoji  string
	title  string
	status string
	width  int
	height int
}

func New(cfg config.Config) *App {
	a := &App{
		tally:  counter.New(),
		keys:   newKeyMap(),
		emoji:  cfg.UI.Emoji,
		title:  cfg.UI.Title,
		status: "Ready",
	}
	a.keys.Reset.SetEnabled(a.tally.Resettable())
	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(m, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(m, a.keys.Increment):
			a.tally.Increment()
			a.status = fmt.Sprintf("Counted %d", a.tally.Value())
			a.keys.Reset.SetEnabled(a.tally.Resettable())
		case key.Matches(m, a.keys.Reset):
			a.tally.Reset()
			a.status = "Back to zero"
			a.keys.Reset.SetEnabled(a.tally.Resettable())
		}
	}
	return a, nil
}

// Count returns the current tally value.
func (a *App) Count() int {
	return a.tally.Value()
}
