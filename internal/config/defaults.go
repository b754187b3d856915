package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Arena: ArenaConfig{
			Width:  100,
			Height: 100,
		},
		Paddle: PaddleConfig{
			Width:  4,
			Height: 16,
			Speed:  75,
		},
		Ball: BallConfig{
			Radius: 2,
			SpeedX: 75,
			SpeedY: 50,
		},
		Gameplay: GameplayConfig{
			WinScore:   0, // endless by default
			SpawnDelay: 2.0,
		},
		Bindings: BindingsConfig{
			LeftUp:    []string{"w"},
			LeftDown:  []string{"s"},
			RightUp:   []string{"up"},
			RightDown: []string{"down"},
			Pause:     []string{"p", "space"},
			Restart:   []string{"r"},
			Mute:      []string{"m"},
			Quit:      []string{"q", "ctrl+c"},
		},
		Audio: AudioConfig{
			Enabled: true,
			Music:   true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}
