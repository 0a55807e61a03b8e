package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/platform/tui"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fly the lander",
	Long: `Start a flight straight away, skipping the menu.

Controls:
  Up/Space     - Main engine
  Left/Right   - Rotate
  N            - Edit pilot name (while flying)
  Enter/Esc    - Save/cancel the name
  R            - Restart
  Ctrl+S       - Screenshot
  Esc/Q        - Quit

A touchdown counts as a landing when the bottom of the craft is over the
pad, the heading is within the angle limit and the speed is below the
safe limit on both axes.

Difficulty options:
  easy   - Weaker gravity, wider angle and speed limits
  normal - The configured values
  hard   - Stronger gravity, tighter limits, less fuel

Examples:
  lander play
  lander play --difficulty hard
  lander play --player Armstrong
  lander play --seed 42 --config ./my-lander.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Pilot name for this flight")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog := openLogger()
	defer closeLog()

	store := openStoreOrWarn()
	opts := localOptions(cfg, store, logger)
	if name := strings.TrimSpace(flagPlayer); name != "" {
		opts.Profile.Save(name)
	}

	// Run the game
	runErr := tui.Run(opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
