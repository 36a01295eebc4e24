// crossing is an endless road-crossing game for the terminal.
//
// Usage:
//
//	crossing list              - List available variants
//	crossing play [variant]    - Play a variant (default: crossing)
//	crossing menu              - Start menu to pick variants interactively
//	crossing scores [variant]  - Show high scores for a variant
//	crossing wallet            - Show coin balance and recent credits
//	crossing config            - Print the default YAML configuration
//	crossing serve             - Start SSH server for remote play
//	crossing spectate          - Stream an autopiloted run over WebSocket
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Load a custom crossing YAML config
//	--difficulty <preset> - easy, normal, hard or fixed
//	--strict              - Any road lane is fatal
//	--skin <name>         - Player glyph: classic, dark, star
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagStrict     bool
	flagSkin       string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crossing",
	Short: "Road Crossing - cross endless traffic in your terminal",
	Long: `Road Crossing is an endless arcade game: step forward lane by lane,
dodge cars, minibuses and buses, and see how far you get.

Available commands:
  list      - Show all game variants
  play      - Play a variant directly
  menu      - Interactive variant picker
  scores    - View high scores
  wallet    - View coin balance
  config    - Print the default configuration
  serve     - Start SSH server for remote play
  spectate  - Watch the autopilot play in a browser

Examples:
  crossing play
  crossing play crossing_classic --difficulty hard
  crossing menu --strict
  crossing serve --ssh :2222
  crossing spectate --addr :8090`,
	PersistentPreRun: applyGameFlags,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom crossing config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "Die on entering any road lane")
	rootCmd.PersistentFlags().StringVar(&flagSkin, "skin", "", "Player skin: classic, dark, star")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(walletCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(spectateCmd)
}

// applyGameFlags hands the game-level flags to the crossing package before
// any game is created.
func applyGameFlags(_ *cobra.Command, _ []string) {
	crossing.SetConfigPath(flagConfig)
	crossing.SetDifficultyPreset(flagDifficulty)
	crossing.SetStrictLanes(flagStrict)
	crossing.SetSkin(flagSkin)
}
