package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) View() string {
	header := titleStyle.Render(a.emoji + "  " + a.title)
	card := cardStyle.Render(countStyle.Render(strconv.Itoa(a.tally.Value())))
	buttons := buttonStyle.Render("space  Count")
	if a.tally.Resettable() {
		buttons = lipgloss.JoinHorizontal(lipgloss.Center, buttons, "  ", resetButtonStyle.Render("r  Reset"))
	}
	body := lipgloss.JoinVertical(lipgloss.Center, header, "", card, "", buttons)
	statusLine := renderStatusBar(a.width, a.status)
	footer := renderFooter(a.width, a.keys.ShortHelp())
	return a.placeWithFooter(body, statusLine, footer)
}

func (a *App) placeWithFooter(body, statusLine, footer string) string {
	if a.height == 0 {
		return body + "\n\n" + statusLine + "\n" + footer
	}
	contentHeight := a.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + statusLine + "\n" + footer
	}
	main := lipgloss.Place(a.width, contentHeight, lipgloss.Center, lipgloss.Center, body)
	return main + "\n" + statusLine + "\n" + footer
}
