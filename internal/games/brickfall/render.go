package brickfall

import (
	"fmt"
	"math"

	"github.com/vovakirdan/brickfall/internal/core"
)

// Visual characters for rendering
const (
	BallChar   = '●'
	BrickChar  = '█'
	FadeChar   = '▓'
	FadeChar2  = '░'
	AimDotChar = '·'
)

// aimLineLength is how far the aim indicator extends, in field units.
const aimLineLength = 200

// fieldFromCell maps a screen cell to field coordinates (cell center).
func (g *Game) fieldFromCell(cx, cy int) (float64, float64) {
	fx := (float64(cx) + 0.5) * g.field.Width / float64(g.playW)
	fy := (float64(cy-g.playTop) + 0.5) * g.field.Height / float64(g.playH)
	return fx, fy
}

// cellFromField maps field coordinates to a screen cell.
func (g *Game) cellFromField(fx, fy float64) (int, int) {
	cx := int(fx * float64(g.playW) / g.field.Width)
	cy := g.playTop + int(fy*float64(g.playH)/g.field.Height)
	return cx, cy
}

// brickCellRect returns the screen rectangle covering a grid cell.
func (g *Game) brickCellRect(col, row int) core.Rect {
	x0 := col * g.playW / g.field.Cols
	x1 := (col + 1) * g.playW / g.field.Cols
	y0 := g.playTop + row*g.playH/g.field.Rows
	y1 := g.playTop + (row+1)*g.playH/g.field.Rows
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// brickColor maps a hit-point ratio to a color, from healthy green down to
// near-depleted pink.
func brickColor(hp, maxHP int) core.Color {
	if maxHP <= 0 {
		return core.ColorBrightMagenta
	}
	ratio := float64(hp) / float64(maxHP)
	switch {
	case ratio > 0.67:
		return core.ColorBrightGreen
	case ratio > 0.34:
		return core.ColorBrightYellow
	default:
		return core.ColorBrightMagenta
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.layoutFor(dst.Width(), dst.Height())

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderBricks(dst)
	g.renderDying(dst)
	g.renderAim(dst)
	g.renderBalls(dst)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderBricks draws live bricks as colored blocks with their hit points.
func (g *Game) renderBricks(dst *core.Screen) {
	for _, b := range g.grid.Bricks() {
		r := g.brickCellRect(b.Col, b.Row)
		color := brickColor(b.HP, b.MaxHP)

		// Leave a 1-cell seam on the right/bottom so the grid reads as
		// separate bricks.
		fill := r
		if fill.W > 1 {
			fill.W--
		}
		if fill.H > 1 {
			fill.H--
		}
		dst.DrawRect(fill, BrickChar, color)

		hp := fmt.Sprintf("%d", core.Max(0, b.HP))
		if fill.W >= len(hp)+2 {
			cx, cy := fill.Center()
			dst.DrawTextColored(cx-len(hp)/2, cy, hp, core.ColorBrightWhite)
		}
	}
}

// renderDying draws fading removed bricks.
func (g *Game) renderDying(dst *core.Screen) {
	for _, d := range g.grid.Dying() {
		r := g.brickCellRect(d.Brick.Col, d.Brick.Row)
		if r.W > 1 {
			r.W--
		}
		if r.H > 1 {
			r.H--
		}
		ch := FadeChar
		if d.FadeRatio() < 0.5 {
			ch = FadeChar2
		}
		dst.DrawRect(r, ch, core.ColorGray)
	}
}

// renderAim draws the dotted aim indicator and the launch origin marker.
// The indicator is only shown while aiming.
func (g *Game) renderAim(dst *core.Screen) {
	if g.state == StateGameOver {
		return
	}

	originX := g.aimX
	originY := g.field.Height - g.field.Radius

	if g.state == StateAiming {
		dirX := math.Cos(g.aimAngle)
		dirY := -math.Sin(g.aimAngle)
		for t := 10.0; t <= aimLineLength; t += 10 {
			cx, cy := g.cellFromField(originX+dirX*t, originY+dirY*t)
			if cy >= g.playTop && cy < g.playTop+g.playH {
				dst.SetCell(cx, cy, AimDotChar, core.ColorGray)
			}
		}
	}

	cx, cy := g.cellFromField(originX, originY)
	dst.SetCell(cx, cy, BallChar, core.ColorBrightWhite)
}

// renderBalls draws every launched ball. Balls that have come to rest on the
// floor stay visible until the round resets.
func (g *Game) renderBalls(dst *core.Screen) {
	for _, b := range g.balls {
		if !b.Launched {
			continue
		}
		cx, cy := g.cellFromField(b.X, b.Y)
		dst.SetCell(cx, cy, BallChar, core.ColorBrightWhite)
	}
}

// renderHUD draws score/high score on the top row and level/lives on the
// bottom row, with the lives text flashing red after a breach.
func (g *Game) renderHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf("Score: %s", FormatShort(g.score))
	dst.DrawText(1, 0, scoreText)

	highText := fmt.Sprintf("High: %s  H-Lvl: %d", FormatShort(g.highScore), g.highestLevel)
	dst.DrawText(dst.Width()-len(highText)-1, 0, highText)

	bottom := dst.Height() - 1
	levelText := fmt.Sprintf("Level: %d", g.level)
	dst.DrawText(1, bottom, levelText)

	livesText := fmt.Sprintf("Lives: %d", g.lives)
	livesColor := core.ColorDefault
	if g.livesFlash > 0 {
		livesColor = core.ColorBrightRed
	}
	dst.DrawTextColored(dst.Width()-len(livesText)-1, bottom, livesText, livesColor)
}

// renderOverlay draws the game over box.
func (g *Game) renderOverlay(dst *core.Screen) {
	if g.state != StateGameOver {
		return
	}

	title := "GAME OVER"
	subtitle := fmt.Sprintf("Score: %s  |  Press R to restart", FormatShort(g.score))

	w := dst.Width()
	h := dst.Height()
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
