package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the effective key bindings",
	Long: `Prints the key bindings the game will use, after applying any custom
config given with --config.`,
	Run: runKeys,
}

func runKeys(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	b := cfg.Bindings
	rows := []struct {
		action string
		keys   []string
	}{
		{"Left paddle up", b.LeftUp},
		{"Left paddle down", b.LeftDown},
		{"Right paddle up", b.RightUp},
		{"Right paddle down", b.RightDown},
		{"Pause", b.Pause},
		{"Restart", b.Restart},
		{"Mute", b.Mute},
		{"Quit", b.Quit},
	}

	// Calculate column width
	maxLen := len("Action")
	for _, r := range rows {
		if len(r.action) > maxLen {
			maxLen = len(r.action)
		}
	}

	fmt.Println("Key bindings:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxLen, "Action", "Keys")
	fmt.Printf("  %-*s  %s\n", maxLen, "------", "----")
	for _, r := range rows {
		fmt.Printf("  %-*s  %s\n", maxLen, r.action, strings.Join(r.keys, ", "))
	}

	fmt.Println()
	fmt.Println("Edit ~/.pong/config.yaml to change them ('pong config' prints the defaults).")
}
