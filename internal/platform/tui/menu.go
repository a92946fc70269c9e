package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/logroll/internal/registry"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("130"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
)

// MenuItem represents a selectable game mode in the menu.
type MenuItem struct {
	GameID string
	Title  string
}

// menuScene lists the registered log roll modes.
type menuScene struct {
	items  []MenuItem
	cursor int
}

// newMenuScene creates a menu from the registry.
func newMenuScene() menuScene {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
	}
	return menuScene{items: items}
}

// Move shifts the cursor, stopping at the ends.
func (m *menuScene) Move(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor > len(m.items)-1 {
		m.cursor = max(len(m.items)-1, 0)
	}
}

// Selected returns the item under the cursor.
func (m menuScene) Selected() (MenuItem, bool) {
	if len(m.items) == 0 {
		return MenuItem{}, false
	}
	return m.items[m.cursor], true
}

// View renders the menu centered in the given area.
func (m menuScene) View(width, height int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("L O G   R O L L"))
	b.WriteString("\n\n")
	b.WriteString(subtitleStyle.Render("Keep the log level and walk it home"))
	b.WriteString("\n\n")

	for i, item := range m.items {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render(fmt.Sprintf("> %s", item.Title)))
		} else {
			b.WriteString(fmt.Sprintf("  %s", item.Title))
		}
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
