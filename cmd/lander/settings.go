package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/storage"
)

var (
	flagSavePlayer bool
	flagSaveScores bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change saved preferences",
	Long: `Show the saved preferences, or change them with flags.

  --save-player  Remember the pilot name between flights
  --save-scores  Record landings on the leaderboard

Examples:
  lander settings
  lander settings --save-scores=false
  lander settings --save-player=true --save-scores=true`,
	Args: cobra.NoArgs,
	Run:  runSettings,
}

func init() {
	settingsCmd.Flags().BoolVar(&flagSavePlayer, "save-player", true, "Remember the pilot name")
	settingsCmd.Flags().BoolVar(&flagSaveScores, "save-scores", true, "Record landings")
}

func runSettings(cmd *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	settings, err := store.Settings()
	if err != nil {
		store.Close()
		fail("reading settings: %v", err)
	}

	// Only flags given on the command line change anything
	changed := false
	if cmd.Flags().Changed("save-player") {
		settings.SavePlayer = flagSavePlayer
		changed = true
	}
	if cmd.Flags().Changed("save-scores") {
		settings.SaveScores = flagSaveScores
		changed = true
	}
	if changed {
		if err := store.SaveSettings(settings); err != nil {
			store.Close()
			fail("saving settings: %v", err)
		}
	}

	fmt.Printf("%s: %t\n", storage.SettingSavePlayer, settings.SavePlayer)
	fmt.Printf("%s: %t\n", storage.SettingSaveScores, settings.SaveScores)
}
