package game

import (
	"fmt"

	"github.com/ndemidov/brickwave/internal/core"
	"github.com/ndemidov/brickwave/internal/sim"
)

// Drawing characters.
const (
	PaddleChar  = '='
	BallChar    = '●'
	PickupChar  = '?'
	BorderHoriz = '─'
	BorderVert  = '│'
)

// BrickGlyphs are cycled per row for normal bricks.
var BrickGlyphs = []rune{'█', '▓', '▒', '░', '#', '+', '*', '='}

// ReinforcedGlyph is used for reinforced bricks at full HP.
const ReinforcedGlyph = '▓'

// IndestructibleGlyph is used for indestructible bricks.
const IndestructibleGlyph = '█'

// brickRowColors are cycled per row for normal bricks.
var brickRowColors = []core.Color{
	core.ColorRed, core.ColorOrange, core.ColorYellow,
	core.ColorGreen, core.ColorCyan, core.ColorBlue,
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}
	if g.s == nil {
		return
	}

	g.renderHUD(dst)
	g.renderWalls(dst)
	g.renderBricks(dst)
	g.renderPickups(dst)
	g.renderPaddle(dst)
	g.renderBall(dst)
	g.renderOverlay(dst)
}

// renderHUD draws the score, lives, and level indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(1, 0, scoreText)

	livesText := fmt.Sprintf("Lives: %d", g.lives)
	dst.DrawTextCentered(0, livesText)

	var levelText string
	if g.opts.Mode == ModeEndless {
		levelText = fmt.Sprintf("Level: %d", g.Level())
	} else {
		levelText = fmt.Sprintf("Level: %d/%d", g.levelIndex+1, LevelCount())
	}
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	for x := range dst.Width() {
		dst.Set(x, 1, BorderHoriz)
	}
}

// renderWalls draws the side walls of the playfield.
func (g *Game) renderWalls(dst *core.Screen) {
	for y := 2; y < dst.Height(); y++ {
		dst.SetColored(0, y, BorderVert, core.ColorGray)
		dst.SetColored(dst.Width()-1, y, BorderVert, core.ColorGray)
	}
}

// renderBricks draws all alive bricks at their simulation bounds,
// clipped to the visible screen.
func (g *Game) renderBricks(dst *core.Screen) {
	screen := core.NewRect(0, 0, dst.Width(), dst.Height())
	g.s.Bricks().Active(func(b *sim.Brick) {
		row := int(b.Bounds.Min.Y)
		x0 := int(b.Bounds.Min.X)
		x1 := int(b.Bounds.Max.X)
		if !core.NewRect(x0, row, x1-x0, 1).Intersects(screen) {
			return
		}

		var glyph rune
		var color core.Color
		switch b.Type {
		case sim.BrickIndestructible:
			glyph = IndestructibleGlyph
			color = core.ColorGray
		case sim.BrickReinforced:
			if b.HP > 1 {
				glyph = ReinforcedGlyph
			} else {
				glyph = BrickGlyphs[row%len(BrickGlyphs)]
			}
			color = core.ColorMagenta
		case sim.BrickPowerUp:
			glyph = BrickGlyphs[row%len(BrickGlyphs)]
			color = core.ColorBrightCyan
		default:
			glyph = BrickGlyphs[row%len(BrickGlyphs)]
			color = brickRowColors[row%len(brickRowColors)]
		}

		for x := core.Max(x0, 0); x < core.Min(x1, dst.Width()); x++ {
			dst.SetColored(x, row, glyph, color)
		}
	})
}

// renderPickups draws falling power-ups.
func (g *Game) renderPickups(dst *core.Screen) {
	for _, p := range g.s.PowerUps() {
		x := int(p.Pos.X)
		y := int(p.Pos.Y)
		if x >= 0 && x < dst.Width() && y >= 0 && y < dst.Height() {
			dst.SetColored(x, y, PickupChar, core.ColorBrightYellow)
		}
	}
}

// renderPaddle draws the player's paddle.
func (g *Game) renderPaddle(dst *core.Screen) {
	p := g.s.Paddle()
	y := int(p.Y)
	x0 := int(p.Left())
	x1 := int(p.Right() + 0.5)
	for x := x0; x <= x1; x++ {
		if x >= 0 && x < dst.Width() && y >= 0 && y < dst.Height() {
			dst.SetColored(x, y, PaddleChar, core.ColorBrightWhite)
		}
	}
}

// renderBall draws the ball.
func (g *Game) renderBall(dst *core.Screen) {
	b := g.s.Ball()
	x := int(b.Pos.X)
	y := int(b.Pos.Y)
	if x >= 0 && x < dst.Width() && y >= 0 && y < dst.Height() {
		dst.SetColored(x, y, BallChar, core.ColorBrightWhite)
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case g.state == stateServe:
		if g.serveTicks <= 0 {
			dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")
		} else {
			dst.DrawTextCentered(dst.Height()-1, "Get ready...")
		}

	case g.state == stateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case g.state == stateWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "YOU WIN!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
