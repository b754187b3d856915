package sim

// BallMotion integrates the live ball's position by one fixed step:
// position += velocity * dt, nothing else. No clamping here; the ball may
// leave the arena, and the winner system decides what that means.
type BallMotion struct{}

// Name implements System.
func (BallMotion) Name() string { return "ball-motion" }

// DependsOn implements System. Motion reads only the ball's own state.
func (BallMotion) DependsOn() []string { return nil }

// Execute implements System.
func (BallMotion) Execute(w *World, f Frame) {
	b, _, ok := w.Ball()
	if !ok {
		return
	}
	b.Pos = b.Pos.Add(b.Vel.Scale(f.DT))
}
