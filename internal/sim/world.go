// Package sim implements the fixed-step Pong simulation: a small arena
// store holding two paddles, an optional ball, and the scoreboard, plus the
// per-tick systems that move and score them. The package is pure: no
// terminal, no clocks, no randomness. Serve timing and direction live in
// the game layer above.
package sim

import "github.com/vovakirdan/tui-pong/internal/core"

// Entity slots. The store is tailored to Pong's fixed population: two
// paddles and at most one ball.
const (
	slotPaddleLeft uint32 = 1 + iota
	slotPaddleRight
	slotBall
)

// Handle identifies an entity in the world. The zero Handle never resolves.
// Paddle handles stay valid for the world's lifetime; a ball handle goes
// stale when that ball is removed, because every spawn bumps the slot
// generation. A stale handle can therefore never reach a later ball.
type Handle struct {
	slot uint32
	gen  uint32
}

// World is the arena store. Systems receive it explicitly each tick; there
// is no global state.
type World struct {
	arenaW float64
	arenaH float64

	paddles   [2]Paddle
	paddleSet [2]bool

	ball     Ball
	ballLive bool
	ballGen  uint32

	scores  ScoreBoard
	display ScoreDisplay

	pending []Command
	events  []Event
	tick    uint64
}

// NewWorld creates an empty world with the given arena bounds. The walls
// sit at y=0 and y=arenaH; the goals are the open edges at x=0 and
// x=arenaW.
func NewWorld(arenaW, arenaH float64) *World {
	return &World{
		arenaW:  arenaW,
		arenaH:  arenaH,
		display: NopDisplay{},
	}
}

// ArenaWidth returns the horizontal extent of the arena.
func (w *World) ArenaWidth() float64 { return w.arenaW }

// ArenaHeight returns the vertical extent of the arena.
func (w *World) ArenaHeight() float64 { return w.arenaH }

// SetScoreDisplay attaches the display that receives score updates from
// the winner system. Passing nil restores the no-op display.
func (w *World) SetScoreDisplay(d ScoreDisplay) {
	if d == nil {
		d = NopDisplay{}
	}
	w.display = d
}

// SpawnPaddle places a paddle for side at its fixed lane (half a paddle
// width in from the edge), vertically centered. Spawning a side twice
// replaces that paddle; the handle is unchanged.
func (w *World) SpawnPaddle(side Side, width, height float64) Handle {
	x := width / 2
	if side == SideRight {
		x = w.arenaW - width/2
	}
	w.paddles[side] = Paddle{
		Transform: Transform{Pos: core.Vec2{X: x, Y: w.arenaH / 2}, Layer: LayerPaddle},
		Side:      side,
		Width:     width,
		Height:    height,
	}
	w.paddleSet[side] = true
	return Handle{slot: slotPaddleLeft + uint32(side), gen: 1}
}

// Paddle resolves a paddle handle. Returns nil for handles that did not
// come from SpawnPaddle on this world.
func (w *World) Paddle(h Handle) *Paddle {
	if h.gen != 1 {
		return nil
	}
	switch h.slot {
	case slotPaddleLeft:
		return w.PaddleBySide(SideLeft)
	case slotPaddleRight:
		return w.PaddleBySide(SideRight)
	}
	return nil
}

// PaddleBySide returns the paddle defending side, or nil before it spawns.
func (w *World) PaddleBySide(side Side) *Paddle {
	if !w.paddleSet[side] {
		return nil
	}
	return &w.paddles[side]
}

// SpawnBall puts a live ball into the world and returns its handle. Any
// previous ball is replaced and its handles go stale.
func (w *World) SpawnBall(pos, vel core.Vec2, radius float64) Handle {
	w.ballGen++
	w.ball = Ball{
		Transform: Transform{Pos: pos, Layer: LayerBall},
		Vel:       vel,
		Radius:    radius,
	}
	w.ballLive = true
	return Handle{slot: slotBall, gen: w.ballGen}
}

// Ball returns the live ball and its handle. The third result is false
// when no ball is live; systems treat that as a quiet no-op, not an error.
func (w *World) Ball() (*Ball, Handle, bool) {
	if !w.ballLive {
		return nil, Handle{}, false
	}
	return &w.ball, Handle{slot: slotBall, gen: w.ballGen}, true
}

// AwardPoint adds one point for side and pushes the new total through the
// score display. Only the winner system calls this.
func (w *World) AwardPoint(side Side) {
	if side == SideLeft {
		w.scores.Left++
		w.display.SetScore(SideLeft, w.scores.Left)
	} else {
		w.scores.Right++
		w.display.SetScore(SideRight, w.scores.Right)
	}
}

// Scores returns the current scoreboard.
func (w *World) Scores() ScoreBoard { return w.scores }

// Emit records an event for this tick's drain.
func (w *World) Emit(ev Event) {
	w.events = append(w.events, ev)
}

// DrainEvents returns the events emitted since the last drain and clears
// the buffer.
func (w *World) DrainEvents() []Event {
	if len(w.events) == 0 {
		return nil
	}
	out := w.events
	w.events = nil
	return out
}

// Tick returns the tick number of the most recent pipeline step.
func (w *World) Tick() uint64 { return w.tick }
