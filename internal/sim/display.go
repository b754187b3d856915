package sim

// ScoreDisplay receives score updates as they happen. The terminal
// platform implements it with its two header text slots; tests implement
// it with a recorder. The default NopDisplay keeps the simulation runnable
// with no UI attached.
type ScoreDisplay interface {
	// SetScore reports side's new total after a point is awarded.
	SetScore(side Side, points int)
}

// NopDisplay ignores all updates.
type NopDisplay struct{}

// SetScore implements ScoreDisplay.
func (NopDisplay) SetScore(Side, int) {}
