package sim

import "math"

// Snapshot is a flat copy of the simulation state for determinism testing
// and the debug overlay. Uses primitive types only.
type Snapshot struct {
	Tick         uint64
	PaddleLeftY  float64
	PaddleRightY float64
	BallLive     bool
	BallX        float64
	BallY        float64
	BallVX       float64
	BallVY       float64
	ScoreLeft    int
	ScoreRight   int
}

// Snapshot captures the current world state.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       w.tick,
		ScoreLeft:  w.scores.Left,
		ScoreRight: w.scores.Right,
	}
	if p := w.PaddleBySide(SideLeft); p != nil {
		snap.PaddleLeftY = p.Pos.Y
	}
	if p := w.PaddleBySide(SideRight); p != nil {
		snap.PaddleRightY = p.Pos.Y
	}
	if w.ballLive {
		snap.BallLive = true
		snap.BallX = w.ball.Pos.X
		snap.BallY = w.ball.Pos.Y
		snap.BallVX = w.ball.Vel.X
		snap.BallVY = w.ball.Vel.Y
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Floats are folded by their bit patterns, so any numeric drift between
// two runs changes the hash.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + math.Float64bits(snap.PaddleLeftY)
	h = h*31 + math.Float64bits(snap.PaddleRightY)
	if snap.BallLive {
		h = h*31 + 1
		h = h*31 + math.Float64bits(snap.BallX)
		h = h*31 + math.Float64bits(snap.BallY)
		h = h*31 + math.Float64bits(snap.BallVX)
		h = h*31 + math.Float64bits(snap.BallVY)
	} else {
		h = h * 31
	}
	h = h*31 + uint64(snap.ScoreLeft)  //#nosec G115 -- scores never go negative
	h = h*31 + uint64(snap.ScoreRight) //#nosec G115 -- scores never go negative
	return h
}
