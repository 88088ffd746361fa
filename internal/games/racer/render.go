package racer

import (
	"fmt"

	"github.com/vovakirdan/lane-racer/internal/config"
	"github.com/vovakirdan/lane-racer/internal/core"
)

// Visual characters for rendering
const (
	GrassChar    = '░'
	RoadEdgeChar = '│'
	MarkingChar  = '╎'
	PlayerChar   = '█'
	ObstacleChar = '▓'
	CoinChar     = '●'
)

// Road marking layout in playfield units.
const (
	markingSpacing = 40
	markingLength  = 20
	markingWidth   = 10
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot(), g.cfg.Field)
}

// RenderSnapshot draws a frame, scaling the playfield to fill dst.
func RenderSnapshot(dst *core.Screen, s Snapshot, field config.RacerField) {
	sx := float64(dst.Width()) / field.Width
	sy := float64(dst.Height()) / field.Height

	dst.Fill(GrassChar, core.ColorGreen)

	road := core.NewRectF(field.CorridorLeft(), 0, field.RoadWidth, field.Height).Cells(sx, sy)
	dst.DrawRect(road, ' ', core.ColorDefault)
	dst.DrawVLine(road.X, 0, dst.Height(), RoadEdgeChar, core.ColorGray)
	dst.DrawVLine(road.Right()-1, 0, dst.Height(), RoadEdgeChar, core.ColorGray)

	for y := 0.0; y < field.Height; y += markingSpacing {
		mark := core.NewRectF(field.Width/2-markingWidth/2, y, markingWidth, markingLength).Cells(sx, sy)
		dst.DrawRect(mark, MarkingChar, core.ColorWhite)
	}

	for _, c := range s.Coins {
		dst.DrawRect(c.Rect.Cells(sx, sy), CoinChar, c.Tier.Color())
	}
	for _, o := range s.Obstacles {
		dst.DrawRect(o.Cells(sx, sy), ObstacleChar, core.ColorBlue)
	}
	dst.DrawRect(s.Player.Cells(sx, sy), PlayerChar, core.ColorRed)

	// HUD
	dst.DrawTextColored(1, 0, fmt.Sprintf(" Score: %d ", s.Score), core.ColorBrightWhite)
	dst.DrawTextColored(1, 1, fmt.Sprintf(" Coins: %d ", s.Collected), core.ColorBrightWhite)
	dst.DrawTextColored(1, 2, fmt.Sprintf(" Difficulty: %d ", s.Level), core.ColorBrightWhite)

	if s.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorCyan)
	}

	if s.GameOver {
		subtitle := fmt.Sprintf("Score: %d  |  Best: %d", s.Score, s.HighScore)
		drawCenteredMessage(dst, "GAME OVER - Press R to restart", subtitle, core.ColorBrightRed)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	titleW := len([]rune(title))
	subtitleW := len([]rune(subtitle))

	boxW := core.Max(titleW, subtitleW) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-titleW)/2, boxY+1, title, c)
	dst.DrawText(boxX+(boxW-subtitleW)/2, boxY+3, subtitle)
}
