package logroll

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/logroll/internal/core"
)

// Visual characters for rendering
const (
	LaneChar     = '─'
	BoxChar      = '■'
	MiniLogChar  = '▬'
	HeadChar     = 'O'
	BandMarkChar = '▸'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	st := g.sim.State()
	snap := g.sim.Snapshot()

	g.drawLanes(dst)
	g.drawBand(dst)
	g.drawLog(dst)
	g.drawCharacter(dst, snap)
	g.drawItems(dst)
	g.drawHUD(dst, snap)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if st.GameOver {
		title := "GAME OVER"
		if st.Reason == ReasonGoalReached {
			title = "GOAL REACHED"
		}
		g.drawCenteredMessage(dst, title, fmt.Sprintf("%s  |  Score: %d", st.Reason, st.Score))
	}
}

// cell converts a world position to a screen cell.
func (g *Game) cell(x, y float64) (int, int) {
	col := int(math.Floor(x / g.cfg.Scene.CellPixelsX))
	row := int(math.Floor(y / g.cfg.Scene.CellPixelsY))
	return col, row
}

func (g *Game) drawLanes(dst *core.Screen) {
	for _, m := range g.sim.Lanes() {
		col, row := g.cell(m.X, m.Y)
		dst.DrawHLine(col-1, row, 3, LaneChar, core.ColorGray)
	}
}

// drawBand marks the walking band on the left edge.
func (g *Game) drawBand(dst *core.Screen) {
	yMin, yMax := g.sim.Band()
	_, top := g.cell(0, yMin)
	_, bottom := g.cell(0, yMax)
	for row := top; row <= bottom; row++ {
		dst.SetColored(0, row, BandMarkChar, core.ColorGray)
	}
}

// drawLog draws the log as a line of cells along its tilt.
func (g *Game) drawLog(dst *core.Screen) {
	b := g.logBody
	glyph := '='
	switch {
	case b.Angle() > g.cfg.Balance.WalkTiltThreshold:
		glyph = '\\'
	case b.Angle() < -g.cfg.Balance.WalkTiltThreshold:
		glyph = '/'
	}

	theta := core.DegToRad(b.Angle())
	cw := g.cfg.Scene.CellPixelsX
	n := int(math.Round(b.Width() / cw))
	for i := 0; i < n; i++ {
		t := -b.Width()/2 + (float64(i)+0.5)*cw
		col, row := g.cell(b.X()+t*math.Cos(theta), b.Y()+t*math.Sin(theta))
		dst.SetColored(col, row, glyph, core.ColorBrown)
	}
}

// drawCharacter draws the character standing on the log, leaning with it.
func (g *Game) drawCharacter(dst *core.Screen, snap Snapshot) {
	col, feet := g.cell(snap.XPos, snap.YPos-1)
	lean := int(math.Round(snap.LogAngle / 10))

	legs := "/ \\"
	if snap.Walking {
		if (snap.Tick/8)%2 == 0 {
			legs = "/ |"
		} else {
			legs = "| \\"
		}
	}
	arms := "-|-"
	if math.Abs(snap.LogAngle) > g.cfg.Balance.DropAngle/2 {
		arms = "\\|/"
	}

	color := core.ColorCyan
	if snap.GameOver && g.sim.State().Reason.Failed() {
		color = core.ColorRed
	}
	dst.DrawTextColored(col-1, feet, legs, color)
	dst.DrawTextColored(col-1+lean/2, feet-1, arms, color)
	dst.SetColored(col+lean, feet-2, HeadChar, color)
}

func (g *Game) drawItems(dst *core.Screen) {
	for _, it := range g.sim.Items() {
		col, row := g.cell(it.Body.X(), it.Body.Y())
		glyph := BoxChar
		if strings.HasPrefix(it.Kind.Name, "mini_log") {
			glyph = MiniLogChar
		}
		dst.SetColored(col, row, glyph, itemColor(it.Kind.Multiplier))
	}
}

// itemColor maps a multiplier to a color.
func itemColor(multiplier int) core.Color {
	switch {
	case multiplier >= 3:
		return core.ColorBrightRed
	case multiplier == 2:
		return core.ColorOrange
	default:
		return core.ColorYellow
	}
}

// drawHUD draws the score line and the tilt meter.
func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	goal := "∞"
	if g.cfg.Walking.Goal > 0 {
		goal = fmt.Sprintf("%.0f", g.cfg.Walking.Goal)
	}
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d  Walked: %.1f/%s  Back: %.1f/%.0f  Carried: x%d ",
		snap.Score, snap.Walked, goal, snap.WalkedBack, g.cfg.Walking.MaxWalkedBack, snap.Carried))

	dst.DrawText(2, 1, " Tilt ")
	dst.DrawTextColored(8, 1, tiltMeter(snap.LogAngle, g.cfg.Balance.DropAngle), tiltColor(snap.LogAngle, g.cfg.Balance.DropAngle))
}

// tiltMeter renders the log angle on a 21-cell gauge.
func tiltMeter(angle, drop float64) string {
	const half = 10
	pos := half + int(math.Round(angle/drop*half))
	pos = core.Clamp(pos, 0, 2*half)

	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i <= 2*half; i++ {
		switch {
		case i == pos:
			sb.WriteRune('◆')
		case i == half:
			sb.WriteRune('┼')
		default:
			sb.WriteRune('─')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// tiltColor goes from green to red as the log nears the drop angle.
func tiltColor(angle, drop float64) core.Color {
	r := math.Abs(angle) / drop
	switch {
	case r < 0.5:
		return core.ColorGreen
	case r < 0.8:
		return core.ColorYellow
	default:
		return core.ColorRed
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subtitleLen := len([]rune(subtitle))

	// Calculate box dimensions
	boxW := core.Max(titleLen, subtitleLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	dst.DrawText(boxX+(boxW-titleLen)/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle)
}
