package sim

import "github.com/vovakirdan/tui-pong/internal/core"

// Side identifies a paddle and the half of the arena it defends.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Draw layers, low to high. The ball draws above the paddles.
const (
	LayerPaddle = 0
	LayerBall   = 1
)

// Transform is an entity's placement in arena space plus its draw layer.
// Exactly one system writes a given transform per tick.
type Transform struct {
	Pos   core.Vec2
	Layer int
}

// Paddle is one player's bat. Side and dimensions are fixed for the match;
// only Pos.Y changes, and only inside the paddle control system. X stays at
// the side's fixed lane.
type Paddle struct {
	Transform
	Side   Side
	Width  float64
	Height float64
}

// Bounds returns the paddle's collision box.
func (p Paddle) Bounds() core.Rect {
	return core.Rect{Center: p.Pos, HalfW: p.Width / 2, HalfH: p.Height / 2}
}

// Ball is the moving object. At most one ball is live at a time; it is
// destroyed when it leaves the arena and respawned by the match lifecycle.
type Ball struct {
	Transform
	Vel    core.Vec2
	Radius float64
}

// ScoreBoard counts points per side. Values never decrease; only the
// winner system writes them.
type ScoreBoard struct {
	Left  int
	Right int
}

// Score returns the count for one side.
func (s ScoreBoard) Score(side Side) int {
	if side == SideLeft {
		return s.Left
	}
	return s.Right
}
