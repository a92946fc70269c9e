package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/logroll/internal/games/logroll"
)

var (
	resultBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("130")).
			Padding(1, 4).
			Align(lipgloss.Center)
	lossStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	winStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

// gameOverView renders the final result of a run.
func gameOverView(result logroll.SessionEnded, width, height int) string {
	title := winStyle.Render("GOAL REACHED")
	if result.Reason.Failed() {
		title = lossStyle.Render("GAME OVER")
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		title,
		subtitleStyle.Render(result.Reason.String()),
		"",
		fmt.Sprintf("Score:  %d", result.Score),
		fmt.Sprintf("Walked: %.1f", result.Walked),
		"",
		subtitleStyle.Render("R to play again  |  B for menu  |  Q to quit"),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, resultBoxStyle.Render(body))
}
