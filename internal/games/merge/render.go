package merge

import (
	"fmt"
	"math"

	"github.com/vovakirdan/merge-balls/internal/core"
)

// Visual characters for rendering
const (
	BallChar  = '█'
	WallChar  = '│'
	FloorChar = '─'
	LineChar  = '╌'
)

// Game-over box dimensions in cells.
const (
	overBoxW = 30
	overBoxH = 7
)

const retryLabel = "[ RETRY ]"

// boardLayout maps world coordinates onto screen cells. Row 0 holds the
// HUD, the board starts at row 1 and the floor is drawn below it. Terminal
// cells are about twice as tall as wide, so a row covers twice the world
// units of a column.
type boardLayout struct {
	left, top   int // Screen cell of world (0, 0)
	cols, rows  int
	unitsPerCol float64
	unitsPerRow float64
	overBox     core.Rect
	retry       core.Rect
}

func (g *Game) layout() boardLayout {
	b := g.cfg.Board
	availW := max(g.runtime.ScreenW-2, 1) // Two wall columns
	availH := max(g.runtime.ScreenH-2, 1) // HUD row and floor row

	lay := boardLayout{top: 1}
	lay.unitsPerRow = b.Height / float64(availH)
	lay.unitsPerCol = lay.unitsPerRow / 2
	lay.rows = availH
	lay.cols = int(math.Ceil(b.Width / lay.unitsPerCol))
	if lay.cols > availW {
		lay.cols = availW
		lay.unitsPerCol = b.Width / float64(availW)
		lay.unitsPerRow = lay.unitsPerCol * 2
		lay.rows = min(int(math.Ceil(b.Height/lay.unitsPerRow)), availH)
	}
	lay.left = 1 + (availW-lay.cols)/2

	boxX := (g.runtime.ScreenW - overBoxW) / 2
	boxY := (g.runtime.ScreenH - overBoxH) / 2
	lay.overBox = core.NewRect(boxX, boxY, overBoxW, overBoxH)
	btnX := boxX + (overBoxW-len(retryLabel))/2
	lay.retry = core.NewRect(btnX-1, boxY+3, len(retryLabel)+2, 3)
	return lay
}

// worldX converts a screen column to a world x at the cell center.
func (l boardLayout) worldX(col int) float64 {
	return (float64(col-l.left) + 0.5) * l.unitsPerCol
}

// cell converts a world point to the screen cell containing it.
func (l boardLayout) cell(p core.Vec2) (int, int) {
	return l.left + int(math.Floor(p.X/l.unitsPerCol)), l.top + int(math.Floor(p.Y/l.unitsPerRow))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	lay := g.layout()

	g.drawFrame(dst, lay)

	// Game-over line
	lineRow := lay.top + int(g.cfg.Board.GameOverLineY/lay.unitsPerRow)
	for x := 0; x < lay.cols; x += 2 {
		dst.SetColor(lay.left+x, lineRow, LineChar, core.ColorBrightRed)
	}

	for _, b := range g.balls.Balls() {
		g.drawBall(dst, lay, b)
	}
	if p := g.spawner.Pending(); p != nil && !g.state.GameOver {
		g.drawBall(dst, lay, p)
	}

	// Draw HUD
	dst.DrawText(1, 0, g.hud.score)
	if p := g.spawner.Pending(); p != nil && !g.state.GameOver {
		label := fmt.Sprintf("next: %c", tierRune(p.Tier))
		x := (dst.Width() - len(label)) / 2
		dst.DrawText(x, 0, label)
		dst.SetColor(x+len(label)-1, 0, tierRune(p.Tier), g.tiers.At(p.Tier).Color)
	}
	status := "drop: ready"
	if !g.state.NextBallReady {
		status = "drop: wait "
	}
	dst.DrawText(max(dst.Width()-len(status)-1, 0), 0, status)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.hud.showRetry {
		g.drawGameOver(dst, lay)
	}
}

// drawFrame draws the walls and the floor around the board.
func (g *Game) drawFrame(dst *core.Screen, lay boardLayout) {
	right := lay.left + lay.cols
	bottom := lay.top + lay.rows
	dst.DrawVLine(lay.left-1, lay.top, lay.rows, WallChar, core.ColorGray)
	dst.DrawVLine(right, lay.top, lay.rows, WallChar, core.ColorGray)
	dst.DrawHLine(lay.left, bottom, lay.cols, FloorChar, core.ColorGray)
	dst.SetColor(lay.left-1, bottom, '└', core.ColorGray)
	dst.SetColor(right, bottom, '┘', core.ColorGray)
}

// drawBall fills every cell whose center lies inside the ball and marks
// the center cell with the tier number.
func (g *Game) drawBall(dst *core.Screen, lay boardLayout, b *Ball) {
	t := g.tiers.At(b.Tier)
	r := t.Radius()

	c0 := int(math.Floor((b.Pos.X - r) / lay.unitsPerCol))
	c1 := int(math.Floor((b.Pos.X + r) / lay.unitsPerCol))
	r0 := int(math.Floor((b.Pos.Y - r) / lay.unitsPerRow))
	r1 := int(math.Floor((b.Pos.Y + r) / lay.unitsPerRow))

	for row := r0; row <= r1; row++ {
		wy := (float64(row) + 0.5) * lay.unitsPerRow
		for col := c0; col <= c1; col++ {
			wx := (float64(col) + 0.5) * lay.unitsPerCol
			if core.V(wx, wy).Sub(b.Pos).LenSq() <= r*r {
				dst.SetColor(lay.left+col, lay.top+row, BallChar, t.Color)
			}
		}
	}

	cx, cy := lay.cell(b.Pos)
	dst.SetColor(cx, cy, tierRune(b.Tier), t.Color)
}

// tierRune labels a ball with its 1-based tier number.
func tierRune(tier int) rune {
	if tier >= 0 && tier < 9 {
		return rune('1' + tier)
	}
	return '*'
}

// drawGameOver draws the final score and the RETRY control.
func (g *Game) drawGameOver(dst *core.Screen, lay boardLayout) {
	box := lay.overBox
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	title := g.hud.gameOver
	dst.DrawText(box.X+(box.W-len(title))/2, box.Y+1, title)

	dst.DrawTextColor(lay.retry.X+1, lay.retry.Y+1, retryLabel, core.ColorBrightYellow)

	hint := "click RETRY or press R"
	dst.DrawText(box.X+(box.W-len(hint))/2, box.Y+box.H-2, hint)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
