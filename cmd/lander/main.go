// lander is a terminal Lunar Lander: fly a craft down onto a pad under
// gravity, with scores kept in a local SQLite leaderboard.
//
// Usage:
//
//	lander                  - Start the menu
//	lander play             - Fly straight away
//	lander scores           - Show the leaderboard
//	lander settings         - Show or change saved preferences
//	lander config           - Print the effective configuration
//	lander serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for a reproducible pad position
//	--db <path>           - Set database path (default: ~/.lander/scores.db)
//	--config <path>       - Load a custom config YAML
//	--difficulty <name>   - Apply a preset: easy, normal, hard
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
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lander",
	Short: "Lunar Lander - land on the pad in your terminal",
	Long: `Lunar Lander is a terminal flight game. Burn fuel to fight gravity,
keep the craft upright and touch down slowly on the pad.

Available commands:
  play      - Fly straight away
  menu      - Interactive menu (default)
  scores    - View the leaderboard
  settings  - Show or change saved preferences
  config    - Print the effective configuration
  serve     - Start SSH server for remote play

Examples:
  lander
  lander play --difficulty hard
  lander scores
  lander serve --ssh :2222`,
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lander/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom lander config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}
