package sim

// Command is a structural world change buffered during a tick and applied
// after every system has run, so all systems of one tick observe the same
// world shape.
type Command interface {
	apply(w *World)
}

// Defer queues a command for the end of the current tick. Outside a tick
// the command runs on the next pipeline step's flush.
func (w *World) Defer(c Command) {
	w.pending = append(w.pending, c)
}

// flushCommands applies and clears the queued commands in order.
func (w *World) flushCommands() {
	for _, c := range w.pending {
		c.apply(w)
	}
	w.pending = w.pending[:0]
}

// RemoveBall returns a command that despawns the ball identified by h.
// A stale handle is a no-op, so a command queued for an already-replaced
// ball cannot remove its successor.
func RemoveBall(h Handle) Command {
	return removeBall{h: h}
}

type removeBall struct {
	h Handle
}

func (c removeBall) apply(w *World) {
	if !w.ballLive || c.h.slot != slotBall || c.h.gen != w.ballGen {
		return
	}
	w.ballLive = false
}
