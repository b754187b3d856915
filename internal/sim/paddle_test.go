package sim

import (
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func inputWith(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestPaddleControlAxis(t *testing.T) {
	tests := []struct {
		name    string
		actions []core.Action
		side    Side
		wantY   float64
	}{
		{"left up", []core.Action{core.ActionLeftUp}, SideLeft, 52},
		{"left down", []core.Action{core.ActionLeftDown}, SideLeft, 48},
		{"left idle", nil, SideLeft, 50},
		{"left both cancel", []core.Action{core.ActionLeftUp, core.ActionLeftDown}, SideLeft, 50},
		{"right up", []core.Action{core.ActionRightUp}, SideRight, 52},
		{"right down", []core.Action{core.ActionRightDown}, SideRight, 48},
		{"right ignores left keys", []core.Action{core.ActionLeftUp}, SideRight, 50},
		{"left ignores right keys", []core.Action{core.ActionRightDown}, SideLeft, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, lh, rh := newTestWorld()
			sys := NewPaddleControl(lh, rh, 8)

			// dt 0.25 at speed 8 moves exactly 2 units.
			sys.Execute(w, Frame{DT: 0.25, Input: inputWith(tt.actions...)})

			if got := w.PaddleBySide(tt.side).Pos.Y; got != tt.wantY {
				t.Errorf("paddle y = %v, expected %v", got, tt.wantY)
			}
		})
	}
}

func TestPaddleControlBothSidesSameTick(t *testing.T) {
	w, lh, rh := newTestWorld()
	sys := NewPaddleControl(lh, rh, 8)

	in := inputWith(core.ActionLeftUp, core.ActionRightDown)
	sys.Execute(w, Frame{DT: 0.25, Input: in})

	if got := w.PaddleBySide(SideLeft).Pos.Y; got != 52 {
		t.Errorf("left y = %v, expected 52", got)
	}
	if got := w.PaddleBySide(SideRight).Pos.Y; got != 48 {
		t.Errorf("right y = %v, expected 48", got)
	}
}

func TestPaddleControlClamps(t *testing.T) {
	w, lh, rh := newTestWorld()
	sys := NewPaddleControl(lh, rh, 8)

	// 100 ticks upward overshoots the arena; the paddle must stop with
	// its top edge on the boundary.
	in := inputWith(core.ActionLeftUp)
	for i := 0; i < 100; i++ {
		sys.Execute(w, Frame{DT: 0.25, Input: in})
	}
	if got := w.PaddleBySide(SideLeft).Pos.Y; got != 92 {
		t.Errorf("paddle clamped at y = %v, expected 92", got)
	}

	in = inputWith(core.ActionLeftDown)
	for i := 0; i < 100; i++ {
		sys.Execute(w, Frame{DT: 0.25, Input: in})
	}
	if got := w.PaddleBySide(SideLeft).Pos.Y; got != 8 {
		t.Errorf("paddle clamped at y = %v, expected 8", got)
	}
}

func TestPaddleControlClampsWithoutInput(t *testing.T) {
	w, lh, rh := newTestWorld()
	sys := NewPaddleControl(lh, rh, 8)

	// An out-of-range paddle snaps back even when no key is held.
	w.PaddleBySide(SideRight).Pos.Y = 200
	sys.Execute(w, Frame{DT: 0.25, Input: core.NewInputFrame()})

	if got := w.PaddleBySide(SideRight).Pos.Y; got != 92 {
		t.Errorf("paddle y = %v, expected clamp to 92", got)
	}
}

func TestPaddleControlKeepsX(t *testing.T) {
	w, lh, rh := newTestWorld()
	sys := NewPaddleControl(lh, rh, 8)

	for i := 0; i < 10; i++ {
		sys.Execute(w, Frame{DT: 0.25, Input: inputWith(core.ActionLeftUp, core.ActionRightUp)})
	}

	if got := w.PaddleBySide(SideLeft).Pos.X; got != 2 {
		t.Errorf("left paddle x = %v, expected 2", got)
	}
	if got := w.PaddleBySide(SideRight).Pos.X; got != 98 {
		t.Errorf("right paddle x = %v, expected 98", got)
	}
}

func TestPaddleControlScalesWithDT(t *testing.T) {
	w, lh, rh := newTestWorld()
	sys := NewPaddleControl(lh, rh, 8)

	in := inputWith(core.ActionLeftUp)
	sys.Execute(w, Frame{DT: 0.5, Input: in})

	if got := w.PaddleBySide(SideLeft).Pos.Y; got != 54 {
		t.Errorf("paddle y = %v, expected 54 after a double-length tick", got)
	}
}

func TestPaddleBounds(t *testing.T) {
	w, _, _ := newTestWorld()
	p := w.PaddleBySide(SideLeft)

	r := p.Bounds()
	if r.Left() != 0 || r.Right() != 4 {
		t.Errorf("bounds x span [%v, %v], expected [0, 4]", r.Left(), r.Right())
	}
	if r.Bottom() != 42 || r.Top() != 58 {
		t.Errorf("bounds y span [%v, %v], expected [42, 58]", r.Bottom(), r.Top())
	}
}
