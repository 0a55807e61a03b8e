package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the lander with the main menu",
	Long: `Start the lander in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a flight you return to the menu with Esc.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select or toggle a setting
  Q            - Quit

Examples:
  lander menu
  lander menu --fps 30
  lander menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog := openLogger()
	defer closeLog()

	store := openStoreOrWarn()
	runErr := tui.RunSession(localOptions(cfg, store, logger), store)

	// Cleanup
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("%v", runErr)
	}
}
