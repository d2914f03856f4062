package catch

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-catch/internal/core"
)

// Visual characters for rendering
const (
	SmallObjectChar = '●'
	LargeObjectChar = '◉'
	BasketLeft      = '╰'
	BasketRight     = '╯'
	BasketFill      = '─'
	GroundChar      = '▔'
	LifeChar        = '♥'
	LostLifeChar    = '♡'
)

// largeObjectSize is the size from which objects use the large glyph.
const largeObjectSize = 1.5

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	groundY := int(g.field.H)
	dst.DrawHLine(0, groundY, dst.Width(), GroundChar, core.ColorGray)

	for _, o := range g.objects {
		g.drawObject(dst, o)
	}
	g.drawPlayer(dst)
	g.drawHUD(dst)

	switch {
	case !g.started:
		g.drawCenteredMessage(dst, "C A T C H", "SPACE to start  ←/→ or mouse to move")
	case g.State().GameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.session.Score))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawObject(dst *core.Screen, o FallingObject) {
	x := int(math.Floor(o.X))
	y := int(math.Floor(o.Y))
	if o.Size >= largeObjectSize {
		dst.SetColor(x, y, LargeObjectChar, core.ColorOrange)
		return
	}
	dst.SetColor(x, y, SmallObjectChar, core.ColorBrightYellow)
}

func (g *Game) drawPlayer(dst *core.Screen) {
	x := int(math.Round(g.player.X))
	w := max(int(math.Round(g.player.W)), 1)
	top := int(math.Floor(g.player.Y))
	rows := max(int(math.Round(g.player.H)), 1)

	for row := 0; row < rows; row++ {
		y := top + row
		dst.DrawHLine(x, y, w, BasketFill, core.ColorBrightCyan)
		if w > 1 && row == rows-1 {
			dst.SetColor(x, y, BasketLeft, core.ColorBrightCyan)
			dst.SetColor(x+w-1, y, BasketRight, core.ColorBrightCyan)
		}
	}
}

// drawHUD shows score on the left, difficulty and control source in the
// middle and lives on the right of the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawTextColor(1, 0, fmt.Sprintf(" Score: %d ", g.session.Score), core.ColorBrightYellow)

	level := 0.0
	if g.spawner != nil {
		level = g.spawner.Level()
	}
	status := fmt.Sprintf(" Lv %d%%  %s ", int(math.Round(level*100)), g.control.Source())
	dst.DrawTextCentered(0, status, core.ColorGray)

	total := max(g.cfg.Gameplay.Lives, g.session.Lives)
	left := max(g.session.Lives, 0)
	lives := strings.Repeat(string(LifeChar), left) + strings.Repeat(string(LostLifeChar), total-left)
	dst.DrawTextColor(dst.Width()-len([]rune(lives))-2, 0, lives, core.ColorBrightRed)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subtitleLen := len([]rune(subtitle))

	boxW := max(titleLen, subtitleLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextColor(boxX+(boxW-titleLen)/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle)
}
