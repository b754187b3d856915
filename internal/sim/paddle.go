package sim

import "github.com/vovakirdan/tui-pong/internal/core"

// PaddleControl moves both paddles from the tick's input axes and keeps
// them inside the arena. The clamp applies every tick, so a paddle that
// somehow ends up out of range is snapped back even with no input held.
type PaddleControl struct {
	left  Handle
	right Handle
	speed float64 // arena units per second
}

// NewPaddleControl creates the control system for the two paddle handles.
func NewPaddleControl(left, right Handle, speed float64) *PaddleControl {
	return &PaddleControl{left: left, right: right, speed: speed}
}

// Name implements System.
func (s *PaddleControl) Name() string { return "paddle-control" }

// DependsOn implements System. Paddle control reads only input.
func (s *PaddleControl) DependsOn() []string { return nil }

// Execute implements System.
func (s *PaddleControl) Execute(w *World, f Frame) {
	s.move(w, s.left, f, axisFor(f.Input, SideLeft))
	s.move(w, s.right, f, axisFor(f.Input, SideRight))
}

func (s *PaddleControl) move(w *World, h Handle, f Frame, axis float64) {
	p := w.Paddle(h)
	if p == nil {
		return
	}
	axis = core.ClampF(axis, -1, 1)
	y := p.Pos.Y + axis*f.DT*s.speed
	p.Pos.Y = core.ClampF(y, p.Height/2, w.ArenaHeight()-p.Height/2)
}

// axisFor folds the held actions for one side into its movement axis.
func axisFor(in core.InputFrame, side Side) float64 {
	if side == SideLeft {
		return in.Axis(core.ActionLeftUp, core.ActionLeftDown)
	}
	return in.Axis(core.ActionRightUp, core.ActionRightDown)
}
