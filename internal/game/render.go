package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/sim"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

// Render draws the arena into the screen buffer. Scores live in the
// platform header, not in the playfield.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	vp := core.NewViewport(g.cfg.Arena.Width, g.cfg.Arena.Height, dst.Width(), dst.Height())

	// Draw center line (net)
	centerX := dst.Width() / 2
	for y := 0; y < dst.Height(); y += 2 {
		dst.SetColored(centerX, y, NetChar, core.ColorGray)
	}

	g.drawPaddle(dst, vp, sim.SideLeft, core.ColorCyan)
	g.drawPaddle(dst, vp, sim.SideRight, core.ColorMagenta)

	if b, _, live := g.world.Ball(); live {
		x, y := vp.Cell(b.Pos)
		dst.SetColored(x, y, BallChar, core.ColorYellow)
	} else if g.serving && (g.tick/10)%2 == 0 {
		// Blink at the spawn point while the serve counts down.
		x, y := vp.Cell(core.Vec2{X: g.cfg.Arena.Width / 2, Y: g.cfg.Arena.Height / 2})
		dst.SetColored(x, y, BallChar, core.ColorGray)
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		scores := g.world.Scores()
		title := fmt.Sprintf("%s WINS!", strings.ToUpper(sim.Side(g.winner - 1).String()))
		subtitle := fmt.Sprintf("%d - %d  |  Press R to restart", scores.Left, scores.Right)
		g.drawCenteredMessage(dst, title, subtitle)
	}
}

func (g *Game) drawPaddle(dst *core.Screen, vp core.Viewport, side sim.Side, c core.Color) {
	p := g.world.PaddleBySide(side)
	if p == nil {
		return
	}
	x, y, w, h := vp.CellRect(p.Bounds())
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			dst.SetColored(x+dx, y+dy, PaddleChar, c)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
