package sim

import (
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// recordingDisplay captures score pushes for assertions.
type recordingDisplay struct {
	sides  []Side
	totals []int
}

func (d *recordingDisplay) SetScore(side Side, points int) {
	d.sides = append(d.sides, side)
	d.totals = append(d.totals, points)
}

func newTestWorld() (*World, Handle, Handle) {
	w := NewWorld(100, 100)
	left := w.SpawnPaddle(SideLeft, 4, 16)
	right := w.SpawnPaddle(SideRight, 4, 16)
	return w, left, right
}

func TestSpawnPaddlePlacement(t *testing.T) {
	w, _, _ := newTestWorld()

	left := w.PaddleBySide(SideLeft)
	if left == nil {
		t.Fatal("left paddle should exist after spawn")
	}
	if left.Pos.X != 2 || left.Pos.Y != 50 {
		t.Errorf("left paddle at (%v, %v), expected (2, 50)", left.Pos.X, left.Pos.Y)
	}

	right := w.PaddleBySide(SideRight)
	if right == nil {
		t.Fatal("right paddle should exist after spawn")
	}
	if right.Pos.X != 98 || right.Pos.Y != 50 {
		t.Errorf("right paddle at (%v, %v), expected (98, 50)", right.Pos.X, right.Pos.Y)
	}

	if left.Layer != LayerPaddle || right.Layer != LayerPaddle {
		t.Error("paddles should draw on the paddle layer")
	}
}

func TestPaddleHandleResolution(t *testing.T) {
	w, lh, rh := newTestWorld()

	if w.Paddle(lh) != w.PaddleBySide(SideLeft) {
		t.Error("left handle should resolve to the left paddle")
	}
	if w.Paddle(rh) != w.PaddleBySide(SideRight) {
		t.Error("right handle should resolve to the right paddle")
	}
	if w.Paddle(Handle{}) != nil {
		t.Error("zero handle should not resolve")
	}
}

func TestSpawnPaddleTwiceKeepsHandle(t *testing.T) {
	w, lh, _ := newTestWorld()

	w.PaddleBySide(SideLeft).Pos.Y = 80
	again := w.SpawnPaddle(SideLeft, 4, 16)

	if again != lh {
		t.Error("respawning a side should return the same handle")
	}
	if got := w.Paddle(lh).Pos.Y; got != 50 {
		t.Errorf("respawn should reset the paddle, y = %v, expected 50", got)
	}
}

func TestBallSpawnAndHandle(t *testing.T) {
	w, _, _ := newTestWorld()

	if _, _, live := w.Ball(); live {
		t.Fatal("new world should have no ball")
	}

	h := w.SpawnBall(core.Vec2{X: 50, Y: 50}, core.Vec2{X: 75, Y: 50}, 2)
	b, got, live := w.Ball()
	if !live {
		t.Fatal("ball should be live after spawn")
	}
	if got != h {
		t.Error("Ball() should return the spawn handle")
	}
	if b.Pos.X != 50 || b.Pos.Y != 50 || b.Radius != 2 {
		t.Errorf("ball state = %+v, expected center spawn with radius 2", b)
	}
	if b.Layer != LayerBall {
		t.Error("ball should draw on the ball layer")
	}
}

func TestBallHandleGoesStale(t *testing.T) {
	w, _, _ := newTestWorld()

	h1 := w.SpawnBall(core.Vec2{X: 50, Y: 50}, core.Vec2{X: 75, Y: 50}, 2)
	w.Defer(RemoveBall(h1))
	w.flushCommands()

	if _, _, live := w.Ball(); live {
		t.Fatal("ball should be gone after removal")
	}

	h2 := w.SpawnBall(core.Vec2{X: 50, Y: 50}, core.Vec2{X: -75, Y: 50}, 2)
	if h1 == h2 {
		t.Error("a new spawn must not reuse the old handle")
	}

	// The stale handle must not be able to remove the new ball.
	w.Defer(RemoveBall(h1))
	w.flushCommands()
	if _, _, live := w.Ball(); !live {
		t.Error("stale handle removed the successor ball")
	}

	w.Defer(RemoveBall(h2))
	w.flushCommands()
	if _, _, live := w.Ball(); live {
		t.Error("current handle should remove the ball")
	}
}

func TestSpawnBallReplaces(t *testing.T) {
	w, _, _ := newTestWorld()

	w.SpawnBall(core.Vec2{X: 50, Y: 50}, core.Vec2{X: 75, Y: 50}, 2)
	w.SpawnBall(core.Vec2{X: 30, Y: 30}, core.Vec2{X: -75, Y: -50}, 2)

	b, _, live := w.Ball()
	if !live {
		t.Fatal("ball should be live")
	}
	if b.Pos.X != 30 || b.Vel.X != -75 {
		t.Errorf("second spawn should replace the first, got pos.X=%v vel.X=%v", b.Pos.X, b.Vel.X)
	}
}

func TestAwardPointUpdatesDisplay(t *testing.T) {
	w, _, _ := newTestWorld()
	d := &recordingDisplay{}
	w.SetScoreDisplay(d)

	w.AwardPoint(SideLeft)
	w.AwardPoint(SideLeft)
	w.AwardPoint(SideRight)

	scores := w.Scores()
	if scores.Left != 2 || scores.Right != 1 {
		t.Errorf("scores = %+v, expected left 2 right 1", scores)
	}
	if scores.Score(SideLeft) != 2 || scores.Score(SideRight) != 1 {
		t.Error("Score(side) should match the board fields")
	}

	want := []int{1, 2, 1}
	if len(d.totals) != 3 {
		t.Fatalf("display received %d updates, expected 3", len(d.totals))
	}
	for i, total := range want {
		if d.totals[i] != total {
			t.Errorf("display update %d = %d, expected %d", i, d.totals[i], total)
		}
	}
	if d.sides[0] != SideLeft || d.sides[2] != SideRight {
		t.Error("display updates should carry the scoring side")
	}
}

func TestSetScoreDisplayNil(t *testing.T) {
	w, _, _ := newTestWorld()
	w.SetScoreDisplay(nil)

	// Must not panic.
	w.AwardPoint(SideRight)
	if w.Scores().Right != 1 {
		t.Error("scoring should work with the no-op display")
	}
}

func TestDrainEventsClears(t *testing.T) {
	w, _, _ := newTestWorld()

	w.Emit(BounceEvent{Surface: SurfaceWall})
	w.Emit(ScoreEvent{Scorer: SideLeft})

	events := w.DrainEvents()
	if len(events) != 2 {
		t.Fatalf("drained %d events, expected 2", len(events))
	}
	if again := w.DrainEvents(); again != nil {
		t.Errorf("second drain should be empty, got %d events", len(again))
	}
}

func TestSideHelpers(t *testing.T) {
	if SideLeft.Opposite() != SideRight || SideRight.Opposite() != SideLeft {
		t.Error("Opposite should swap sides")
	}
	if SideLeft.String() != "left" || SideRight.String() != "right" {
		t.Error("Side names should be left/right")
	}
}

func TestSnapshotHash(t *testing.T) {
	build := func() *World {
		w, _, _ := newTestWorld()
		w.SpawnBall(core.Vec2{X: 50, Y: 50}, core.Vec2{X: 75, Y: 50}, 2)
		return w
	}

	a := build()
	b := build()
	if a.Snapshot().Hash() != b.Snapshot().Hash() {
		t.Error("identical worlds should hash identically")
	}

	b.PaddleBySide(SideLeft).Pos.Y = 60
	if a.Snapshot().Hash() == b.Snapshot().Hash() {
		t.Error("a moved paddle should change the hash")
	}

	c := build()
	_, h, _ := c.Ball()
	c.Defer(RemoveBall(h))
	c.flushCommands()
	if a.Snapshot().Hash() == c.Snapshot().Hash() {
		t.Error("ball presence should change the hash")
	}

	snap := a.Snapshot()
	if !snap.BallLive || snap.BallX != 50 || snap.BallVX != 75 {
		t.Errorf("snapshot ball fields = %+v, expected live ball at 50 moving 75", snap)
	}
}
