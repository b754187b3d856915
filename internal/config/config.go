// Package config provides YAML-based configuration loading and
// difficulty presets for the pong simulation.
package config

import "fmt"

// PongConfig contains all tunable parameters for a match.
type PongConfig struct {
	Arena    ArenaConfig    `yaml:"arena"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Bindings BindingsConfig `yaml:"bindings"`
	Audio    AudioConfig    `yaml:"audio"`
}

// ArenaConfig defines the playfield dimensions in arena units.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines paddle geometry and movement speed.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // arena units per second
}

// BallConfig defines ball geometry and serve velocity.
type BallConfig struct {
	Radius float64 `yaml:"radius"`
	SpeedX float64 `yaml:"speed_x"` // horizontal serve speed, arena units per second
	SpeedY float64 `yaml:"speed_y"` // vertical serve speed, arena units per second
}

// GameplayConfig defines match rules.
type GameplayConfig struct {
	WinScore   int     `yaml:"win_score"`   // points to win; 0 plays endless
	SpawnDelay float64 `yaml:"spawn_delay"` // seconds between a goal and the next serve
}

// BindingsConfig maps actions to key names. Each action accepts any of
// its listed keys.
type BindingsConfig struct {
	LeftUp    []string `yaml:"left_up"`
	LeftDown  []string `yaml:"left_down"`
	RightUp   []string `yaml:"right_up"`
	RightDown []string `yaml:"right_down"`
	Pause     []string `yaml:"pause"`
	Restart   []string `yaml:"restart"`
	Mute      []string `yaml:"mute"`
	Quit      []string `yaml:"quit"`
}

// AudioConfig toggles sound output.
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
	Music   bool `yaml:"music"`
}

// Validate reports the first structurally broken parameter. Loaded
// configs pass through here before a match starts.
func (c PongConfig) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("config: arena %gx%g must be positive", c.Arena.Width, c.Arena.Height)
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		return fmt.Errorf("config: paddle %gx%g must be positive", c.Paddle.Width, c.Paddle.Height)
	}
	if c.Paddle.Height > c.Arena.Height {
		return fmt.Errorf("config: paddle height %g exceeds arena height %g", c.Paddle.Height, c.Arena.Height)
	}
	if c.Paddle.Speed <= 0 {
		return fmt.Errorf("config: paddle speed %g must be positive", c.Paddle.Speed)
	}
	if c.Ball.Radius <= 0 {
		return fmt.Errorf("config: ball radius %g must be positive", c.Ball.Radius)
	}
	if c.Ball.SpeedX <= 0 || c.Ball.SpeedY <= 0 {
		return fmt.Errorf("config: ball speed %gx%g must be positive", c.Ball.SpeedX, c.Ball.SpeedY)
	}
	if c.Gameplay.SpawnDelay < 0 {
		return fmt.Errorf("config: spawn delay %g must not be negative", c.Gameplay.SpawnDelay)
	}
	if c.Gameplay.WinScore < 0 {
		return fmt.Errorf("config: win score %d must not be negative", c.Gameplay.WinScore)
	}
	return nil
}
