package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/audio"
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/game"
	"github.com/vovakirdan/tui-pong/internal/sim"
)

// chromeRows is the vertical space taken by the score header and the
// help bar around the playfield.
const chromeRows = 2

var helpBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a match.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	sound      *audio.Player
	header     *ScoreHeader
	keyMapper  *KeyMapper
	keys       MatchKeyMap
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g *game.Game, sound *audio.Player, bindings config.BindingsConfig, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if sound == nil {
		sound = audio.NewPlayer(nil)
	}

	header := NewScoreHeader()
	g.SetScoreDisplay(header)

	h := help.New()
	h.ShowAll = false

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-chromeRows, 1)),
		sound:      sound,
		header:     header,
		keyMapper:  NewKeyMapper(bindings),
		keys:       NewMatchKeyMap(bindings),
		help:       h,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the match.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Mute):
		m.sound.ToggleMuted()
		return m, nil
	}

	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	// Map key to action for the next tick's input frame
	switch action := m.keyMapper.MapKey(msg); action {
	case core.ActionNone:
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The arena viewport is
// resolution independent, so the match keeps running at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-chromeRows, 1))
	m.help.Width = msg.Width

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new match
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.header.Reset()
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Run the simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.playEvents(result.Events)

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// playEvents maps simulation events to sounds.
func (m Model) playEvents(events []sim.Event) {
	for _, e := range events {
		switch ev := e.(type) {
		case sim.BounceEvent:
			if ev.Surface == sim.SurfacePaddle {
				m.sound.PlayPaddleHit()
			} else {
				m.sound.PlayWallHit()
			}
		case sim.ScoreEvent:
			m.sound.PlayScore()
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".pong", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("pong_%s.txt", timestamp))

	// Save screenshot
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	var sb strings.Builder
	sb.WriteString(m.header.Render(m.config.ScreenW))
	sb.WriteString("\n")
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteString("\n")
	sb.WriteString(helpBarStyle.Render(m.help.View(m.keys)))
	return sb.String()
}

// Run starts the Bubble Tea program for a match.
func Run(g *game.Game, sound *audio.Player, bindings config.BindingsConfig, cfg core.RuntimeConfig) error {
	model := NewModel(g, sound, bindings, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
