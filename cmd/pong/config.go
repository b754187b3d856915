package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration YAML",
	Long: `Prints the built-in default configuration. Redirect it to a file to
start customizing:

  pong config > ~/.pong/config.yaml`,
	Run: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	fmt.Print(string(config.DefaultYAML()))
}
