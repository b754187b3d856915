package sim

// Bounce reflects the live ball off the paddles and the horizontal walls
// by flipping velocity components. It never moves the ball: there is no
// positional correction, and an overlap resolves over the following ticks
// as the reversed velocity carries the ball back out. Reflections only
// fire when the ball is heading into the surface, so a ball that overlaps
// the same surface for several ticks flips exactly once.
type Bounce struct {
	left  Handle
	right Handle
}

// NewBounce creates the bounce system for the two paddle handles.
func NewBounce(left, right Handle) *Bounce {
	return &Bounce{left: left, right: right}
}

// Name implements System.
func (s *Bounce) Name() string { return "bounce" }

// DependsOn implements System. Bounce tests this tick's paddle and ball
// positions, so both movers run first.
func (s *Bounce) DependsOn() []string { return []string{"paddle-control", "ball-motion"} }

// Execute implements System.
func (s *Bounce) Execute(w *World, f Frame) {
	b, _, ok := w.Ball()
	if !ok {
		return
	}

	// Paddles reverse horizontal travel. The left paddle only repels a
	// ball moving left, the right one a ball moving right; a ball already
	// on its way out keeps its course.
	if p := w.Paddle(s.left); p != nil && b.Vel.X < 0 && p.Bounds().OverlapsCircle(b.Pos, b.Radius) {
		b.Vel.X = -b.Vel.X
		w.Emit(BounceEvent{Surface: SurfacePaddle})
	}
	if p := w.Paddle(s.right); p != nil && b.Vel.X > 0 && p.Bounds().OverlapsCircle(b.Pos, b.Radius) {
		b.Vel.X = -b.Vel.X
		w.Emit(BounceEvent{Surface: SurfacePaddle})
	}

	// Walls reverse vertical travel under the same heading check. A
	// corner contact flips both components in the same tick, each from
	// its own surface, independent of check order.
	if b.Pos.Y+b.Radius >= w.ArenaHeight() && b.Vel.Y > 0 {
		b.Vel.Y = -b.Vel.Y
		w.Emit(BounceEvent{Surface: SurfaceWall})
	}
	if b.Pos.Y-b.Radius <= 0 && b.Vel.Y < 0 {
		b.Vel.Y = -b.Vel.Y
		w.Emit(BounceEvent{Surface: SurfaceWall})
	}
}
