package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultPongConfig().Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg PongConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML should parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultPongConfig()) {
		t.Errorf("embedded default %+v differs from hardcoded %+v", cfg, DefaultPongConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := `
arena:
  width: 120.0
  height: 80.0
paddle:
  width: 4.0
  height: 12.0
  speed: 60.0
ball:
  radius: 1.5
  speed_x: 80.0
  speed_y: 40.0
gameplay:
  win_score: 11
  spawn_delay: 1.5
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Arena.Width != 120 || cfg.Arena.Height != 80 {
		t.Errorf("arena = %+v, expected 120x80", cfg.Arena)
	}
	if cfg.Gameplay.WinScore != 11 || cfg.Gameplay.SpawnDelay != 1.5 {
		t.Errorf("gameplay = %+v, expected win 11 delay 1.5", cfg.Gameplay)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("loading a missing explicit path should fail")
	}
}

func TestLoadMalformedCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("arena: [not a mapping"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("loading malformed YAML should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PongConfig)
	}{
		{"zero arena width", func(c *PongConfig) { c.Arena.Width = 0 }},
		{"negative arena height", func(c *PongConfig) { c.Arena.Height = -10 }},
		{"zero paddle height", func(c *PongConfig) { c.Paddle.Height = 0 }},
		{"paddle taller than arena", func(c *PongConfig) { c.Paddle.Height = 200 }},
		{"zero paddle speed", func(c *PongConfig) { c.Paddle.Speed = 0 }},
		{"zero ball radius", func(c *PongConfig) { c.Ball.Radius = 0 }},
		{"negative ball speed", func(c *PongConfig) { c.Ball.SpeedX = -75 }},
		{"negative spawn delay", func(c *PongConfig) { c.Gameplay.SpawnDelay = -1 }},
		{"negative win score", func(c *PongConfig) { c.Gameplay.WinScore = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPongConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"easy", "normal", "hard"} {
		preset, err := ParsePreset(name)
		if err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", name, err)
		}
		if string(preset) != name {
			t.Errorf("ParsePreset(%q) = %q", name, preset)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail to parse")
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultPongConfig()

	easy := DefaultPongConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Ball.SpeedX != base.Ball.SpeedX*0.8 || easy.Paddle.Speed != base.Paddle.Speed*1.2 {
		t.Errorf("easy preset = ball %g paddle %g", easy.Ball.SpeedX, easy.Paddle.Speed)
	}

	hard := DefaultPongConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Ball.SpeedX != base.Ball.SpeedX*1.3 || hard.Paddle.Speed != base.Paddle.Speed*0.9 {
		t.Errorf("hard preset = ball %g paddle %g", hard.Ball.SpeedX, hard.Paddle.Speed)
	}

	normal := DefaultPongConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, base) {
		t.Error("normal preset should not change the config")
	}
}
