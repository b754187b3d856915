// Package game runs a two-player Pong match on top of the simulation
// pipeline. The left paddle is player one, the right paddle player two;
// both are driven from the same input frame.
package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/sim"
)

// StepResult carries the per-tick outcome back to the platform layer.
type StepResult struct {
	State  core.GameState
	Events []sim.Event
}

// Game owns the world, the pipeline and the serve cycle.
type Game struct {
	cfg config.PongConfig

	world    *sim.World
	pipeline *sim.Pipeline
	left     sim.Handle
	right    sim.Handle

	display sim.ScoreDisplay
	runtime core.RuntimeConfig
	dt      float64

	// Serve cycle
	serving    bool
	serveDelay float64 // seconds until the ball spawns
	serveTo    sim.Side

	// Match state
	paused   bool
	gameOver bool
	winner   int // 0 = none, 1 = left, 2 = right

	rng  *rand.Rand
	tick uint64
}

// New builds a game for the given config. Reset must be called before
// the first Step.
func New(cfg config.PongConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     cfg,
		display: sim.NopDisplay{},
		dt:      1.0 / 60.0,
	}
	g.buildWorld()

	// Paddle handles are stable per side, so the pipeline survives
	// world rebuilds on Reset.
	p, err := sim.NewMatchPipeline(g.left, g.right, cfg.Paddle.Speed)
	if err != nil {
		return nil, err
	}
	g.pipeline = p
	return g, nil
}

// buildWorld replaces the world with a fresh one at starting positions.
func (g *Game) buildWorld() {
	g.world = sim.NewWorld(g.cfg.Arena.Width, g.cfg.Arena.Height)
	g.world.SetScoreDisplay(g.display)
	g.left = g.world.SpawnPaddle(sim.SideLeft, g.cfg.Paddle.Width, g.cfg.Paddle.Height)
	g.right = g.world.SpawnPaddle(sim.SideRight, g.cfg.Paddle.Width, g.cfg.Paddle.Height)
}

// Reset initializes or restarts the match.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	rate := runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	g.dt = 1.0 / float64(rate)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.buildWorld()
	g.paused = false
	g.gameOver = false
	g.winner = 0
	g.tick = 0

	// The opening serve goes to a random side.
	g.startServe(sim.Side(g.rng.Intn(2)))
}

// SetScoreDisplay routes score changes to a display. Passing nil
// restores the no-op display.
func (g *Game) SetScoreDisplay(d sim.ScoreDisplay) {
	if d == nil {
		d = sim.NopDisplay{}
	}
	g.display = d
	g.world.SetScoreDisplay(d)
}

// startServe arms the serve countdown toward the given side.
func (g *Game) startServe(to sim.Side) {
	g.serving = true
	g.serveDelay = g.cfg.Gameplay.SpawnDelay
	g.serveTo = to
}

// serve spawns the ball at the arena center. The horizontal direction
// rewards the side that took the last point; the vertical direction is
// drawn from the seeded rng.
func (g *Game) serve() {
	g.serving = false

	vx := g.cfg.Ball.SpeedX
	if g.serveTo == sim.SideLeft {
		vx = -vx
	}
	vy := g.cfg.Ball.SpeedY
	if g.rng.Intn(2) == 0 {
		vy = -vy
	}

	center := core.Vec2{X: g.cfg.Arena.Width / 2, Y: g.cfg.Arena.Height / 2}
	g.world.SpawnBall(center, core.Vec2{X: vx, Y: vy}, g.cfg.Ball.Radius)
}

// Step advances the match by one tick.
func (g *Game) Step(in core.InputFrame) StepResult {
	if g.gameOver {
		return StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return StepResult{State: g.State()}
	}

	g.tick++

	// Count down to the serve. Paddles keep moving in the meantime.
	if g.serving {
		g.serveDelay -= g.dt
		if g.serveDelay <= 0 {
			g.serve()
		}
	}

	events := g.pipeline.Step(g.world, sim.Frame{Tick: g.tick, DT: g.dt, Input: in})
	for _, e := range events {
		if s, ok := e.(sim.ScoreEvent); ok {
			g.handleScore(s.Scorer)
		}
	}

	return StepResult{State: g.State(), Events: events}
}

// handleScore ends the match at the win score or arms the next serve.
func (g *Game) handleScore(scorer sim.Side) {
	win := g.cfg.Gameplay.WinScore
	if win > 0 && g.world.Scores().Score(scorer) >= win {
		g.gameOver = true
		g.winner = int(scorer) + 1
		return
	}
	g.startServe(scorer)
}

// State returns the current match state.
func (g *Game) State() core.GameState {
	scores := g.world.Scores()
	return core.GameState{
		ScoreLeft:  scores.Left,
		ScoreRight: scores.Right,
		Paused:     g.paused,
		GameOver:   g.gameOver,
		Winner:     g.winner,
	}
}

// Snapshot exposes the world snapshot for replay checks.
func (g *Game) Snapshot() sim.Snapshot {
	return g.world.Snapshot()
}
