package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/logroll/internal/games/logroll"
)

// Debug panel layout constants
const (
	debugFieldWidth = 12
	debugValueWidth = 10
)

var debugBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

// debugRows flattens a snapshot into field/value rows.
func debugRows(s logroll.Snapshot) []table.Row {
	return []table.Row{
		{"game over", fmt.Sprintf("%t", s.GameOver)},
		{"reason", s.Reason},
		{"score", fmt.Sprintf("%d", s.Score)},
		{"log angle", fmt.Sprintf("%.2f", s.LogAngle)},
		{"x", fmt.Sprintf("%.1f", s.XPos)},
		{"y", fmt.Sprintf("%.1f", s.YPos)},
		{"x inertia", fmt.Sprintf("%.3f", s.XInertia)},
		{"y inertia", fmt.Sprintf("%.3f", s.YInertia)},
		{"walked", fmt.Sprintf("%.2f", s.Walked)},
		{"walked back", fmt.Sprintf("%.2f", s.WalkedBack)},
		{"forward", fmt.Sprintf("%t", s.MovingForward)},
		{"backward", fmt.Sprintf("%t", s.MovingBackward)},
		{"items", fmt.Sprintf("%d (x%d)", s.Items, s.Carried)},
		{"tick", fmt.Sprintf("%d", s.Tick)},
	}
}

// debugPanel renders the mirrored simulation state as a boxed table.
func debugPanel(s logroll.Snapshot) string {
	rows := debugRows(s)
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Field", Width: debugFieldWidth},
			{Title: "Value", Width: debugValueWidth},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2),
		table.WithFocused(false),
	)

	// Table styles
	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = lipgloss.NewStyle()
	t.SetStyles(st)

	return debugBoxStyle.Render(t.View())
}
