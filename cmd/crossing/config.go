package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
)

var configCmd = &cobra.Command{
	Use:   "config [variant]",
	Short: "Print the default configuration",
	Long: `Print the embedded default YAML configuration. Redirect it to a file,
edit it and pass it back with --config, or save it as
~/.arcade/configs/crossing.yaml to make it the default.

Examples:
  crossing config > my-crossing.yaml
  crossing play --config ./my-crossing.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, args []string) {
	gameID := crossing.VariantFull
	if len(args) > 0 {
		gameID = args[0]
	}

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: no default config for %q\n", gameID)
		os.Exit(1)
	}
	os.Stdout.Write(data) //nolint:errcheck // Nothing useful to do on a failed stdout write
}
