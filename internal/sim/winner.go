package sim

// Winner awards the point when the ball's center crosses a goal edge,
// pushes the new total to the score display, and schedules the ball's
// removal. The removal is a deferred command, so every system of the tick
// still sees the ball; it is gone when the next tick begins, which makes
// the award fire exactly once per exit. Winner never spawns a ball -
// serving is the match lifecycle's job.
type Winner struct{}

// Name implements System.
func (Winner) Name() string { return "winner" }

// DependsOn implements System. Scoring reads the ball position this tick's
// motion produced.
func (Winner) DependsOn() []string { return []string{"ball-motion"} }

// Execute implements System.
func (Winner) Execute(w *World, f Frame) {
	b, h, ok := w.Ball()
	if !ok {
		return
	}

	var scorer Side
	switch {
	case b.Pos.X < 0:
		scorer = SideRight
	case b.Pos.X > w.ArenaWidth():
		scorer = SideLeft
	default:
		return
	}

	w.AwardPoint(scorer)
	w.Defer(RemoveBall(h))
	w.Emit(ScoreEvent{Scorer: scorer})
}
