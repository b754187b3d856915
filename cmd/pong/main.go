// pong is a terminal two-player Pong game built on a fixed-timestep
// simulation.
//
// Usage:
//
//	pong play                - Start a match
//	pong keys                - Show the effective key bindings
//	pong config              - Print the default configuration YAML
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible serves
//	--config <path>      - Path to a custom config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard
//	--mute               - Start with sound muted
//	--debug              - Write debug logs to ~/.pong/debug.log
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - the two-player classic in your terminal",
	Long: `Pong is a terminal rendition of the two-player classic: left paddle
on W/S, right paddle on the arrow keys. First to the configured win
score takes the match (endless by default).

Available commands:
  play     - Start a match
  keys     - Show the effective key bindings
  config   - Print the default configuration YAML

Examples:
  pong play
  pong play --difficulty hard
  pong play --config ./my-pong.yaml --seed 42
  pong keys
  pong config > ~/.pong/config.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write debug logs to ~/.pong/debug.log")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(configCmd)
}
