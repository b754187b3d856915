package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/audio"
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/game"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a match",
	Long: `Starts a two-player Pong match in the current terminal.

Controls:
  W/S        - Left paddle up/down
  Up/Down    - Right paddle up/down
  P/Space    - Pause
  R          - Restart (after the match ends)
  M          - Mute/unmute sound
  Ctrl+S     - Save a screenshot to ~/.pong/screenshots
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower ball, faster paddles
  normal - The configured speeds as-is
  hard   - Faster ball, slower paddles

Examples:
  pong play
  pong play --difficulty easy
  pong play --fps 120 --seed 42
  pong play --config ./my-pong.yaml --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagFPS <= 0 {
		fmt.Fprintf(os.Stderr, "Error: --fps must be positive, got %d\n", flagFPS)
		os.Exit(1)
	}

	logger := newLogger()

	// Load game config
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		preset, presetErr := config.ParsePreset(flagDifficulty)
		if presetErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", presetErr)
			os.Exit(1)
		}
		config.ApplyPreset(&cfg, preset)
	}

	// Terminal size for the screen buffer; DefaultConfig's 80x24 when the
	// size cannot be read (e.g. output is not a terminal).
	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	g, err := game.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Sound is best-effort: a machine without an audio device still plays.
	sound := audio.NewPlayer(logger)
	if cfg.Audio.Enabled {
		if audioErr := sound.Init(); audioErr != nil {
			logger.Warn("audio unavailable, continuing silent", "error", audioErr)
		} else if cfg.Audio.Music {
			sound.StartMusic()
		}
	}
	if flagMute {
		sound.SetMuted(true)
	}

	// Run the match
	runErr := tui.Run(g, sound, cfg.Bindings, rt)

	sound.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// newLogger returns a file-backed logger with --debug and a discard
// logger otherwise. The TUI owns stdout, so logs never go there.
func newLogger() *log.Logger {
	if !flagDebug {
		return log.New(io.Discard)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return log.New(io.Discard)
	}
	dir := filepath.Join(home, ".pong")
	if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
		return log.New(io.Discard)
	}
	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return log.New(io.Discard)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
	})
	logger.SetLevel(log.DebugLevel)
	return logger
}
