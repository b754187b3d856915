package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/game"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultPongConfig()
	g, err := game.New(cfg)
	if err != nil {
		t.Fatalf("game.New failed: %v", err)
	}
	m := NewModel(g, nil, cfg.Bindings, core.RuntimeConfig{
		ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7,
	})
	m.Init()
	return m
}

func tick(m Model) Model {
	next, _ := m.Update(TickMsg(time.Now()))
	return next.(Model)
}

func TestModelTicksAdvanceMatch(t *testing.T) {
	m := newTestModel(t)

	for i := 0; i < 5; i++ {
		m = tick(m)
	}

	view := m.View()
	if view == "" {
		t.Fatal("view should not be empty while running")
	}
	if !strings.Contains(view, "LEFT") || !strings.Contains(view, "RIGHT") {
		t.Error("view should include the score header")
	}
}

func TestModelQuitKey(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(runeKey('q'))
	m = next.(Model)

	if !m.quitting {
		t.Error("q should set quitting")
	}
	if cmd == nil {
		t.Error("quit should produce a command")
	}
	if m.View() != "" {
		t.Error("quitting view should be empty")
	}
}

func TestModelMovementKeysFeedInputFrame(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(runeKey('w'))
	m = next.(Model)

	if !m.inputFrame.Has(core.ActionLeftUp) {
		t.Error("w should queue the left-up action")
	}

	m = tick(m)
	if m.inputFrame.Has(core.ActionLeftUp) {
		t.Error("the input frame should clear after a tick")
	}
}

func TestModelRestartGatedByGameOver(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(runeKey('r'))
	m = next.(Model)

	if m.inputFrame.Has(core.ActionRestart) {
		t.Error("restart should be ignored while the match runs")
	}
}

func TestModelResizeKeepsMatch(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 3; i++ {
		m = tick(m)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	if m.screen.Width() != 100 || m.screen.Height() != 28 {
		t.Errorf("screen = %dx%d, expected 100x28 after resize", m.screen.Width(), m.screen.Height())
	}

	// The match keeps running; the next tick must not panic.
	m = tick(m)
	if m.View() == "" {
		t.Error("view should render at the new size")
	}
}
