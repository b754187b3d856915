package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a user-supplied name into a preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard)", name)
	}
}

// ApplyPreset scales the speed parameters for a difficulty preset.
// Normal leaves the config untouched.
func ApplyPreset(cfg *PongConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ball.SpeedX *= 0.8
		cfg.Ball.SpeedY *= 0.8
		cfg.Paddle.Speed *= 1.2
	case DifficultyHard:
		cfg.Ball.SpeedX *= 1.3
		cfg.Ball.SpeedY *= 1.3
		cfg.Paddle.Speed *= 0.9
	}
}
