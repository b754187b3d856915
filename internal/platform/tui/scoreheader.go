package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/sim"
)

var (
	leftLabelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	rightLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	scoreValueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// ScoreHeader renders the score line above the playfield. It receives
// score changes straight from the world as its score display.
type ScoreHeader struct {
	left  int
	right int
}

// NewScoreHeader creates an empty score header.
func NewScoreHeader() *ScoreHeader {
	return &ScoreHeader{}
}

// SetScore implements sim.ScoreDisplay.
func (h *ScoreHeader) SetScore(side sim.Side, points int) {
	if side == sim.SideLeft {
		h.left = points
	} else {
		h.right = points
	}
}

// Reset clears both scores for a new match.
func (h *ScoreHeader) Reset() {
	h.left = 0
	h.right = 0
}

// Render returns the styled header line centered in the given width.
func (h *ScoreHeader) Render(width int) string {
	line := fmt.Sprintf("%s  %s  %s",
		leftLabelStyle.Render("LEFT"),
		scoreValueStyle.Render(fmt.Sprintf("%d : %d", h.left, h.right)),
		rightLabelStyle.Render("RIGHT"),
	)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}
