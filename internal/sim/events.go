package sim

// Event is something the simulation wants collaborators to hear about:
// sounds to play, scores to flash. Implementations are small value types
// drained from the world after each tick.
type Event interface {
	simEvent()
}

// Surface distinguishes what the ball bounced off.
type Surface int

const (
	SurfacePaddle Surface = iota
	SurfaceWall
)

// String returns a human-readable name for the surface.
func (s Surface) String() string {
	switch s {
	case SurfacePaddle:
		return "paddle"
	case SurfaceWall:
		return "wall"
	default:
		return "unknown"
	}
}

// BounceEvent is emitted each time the bounce system flips a velocity
// component. A corner hit emits two events, one per surface.
type BounceEvent struct {
	Surface Surface
}

func (BounceEvent) simEvent() {}

// ScoreEvent is emitted when the ball leaves the arena and a point is
// awarded.
type ScoreEvent struct {
	Scorer Side
}

func (ScoreEvent) simEvent() {}
