package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/platform/tui"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

var (
	flagClearScores bool
	flagScoreLimit  int
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the best landings with their score breakdown.

Examples:
  lander scores
  lander scores --limit 20
  lander scores --interactive
  lander scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete every recorded landing")
	scoresCmd.Flags().IntVar(&flagScoreLimit, "limit", 10, "Number of landings to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the leaderboard in a table view")
}

func runScores(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(); err != nil {
			store.Close()
			fail("clearing scores: %v", err)
		}
		fmt.Println("Leaderboard cleared.")
		return
	}

	if flagInteractive {
		rt := runtimeConfig()
		board := storage.NewBoard(store, flagScoreLimit, nil)
		if _, err := tui.RunScoreboard(board, rt.ScreenW, rt.ScreenH); err != nil {
			store.Close()
			fail("%v", err)
		}
		return
	}

	// Get top scores
	scores, err := store.TopScores(flagScoreLimit)
	if err != nil {
		store.Close()
		fail("retrieving scores: %v", err)
	}

	fmt.Println("High Scores - Lunar Lander")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No landings recorded yet.")
		fmt.Println()
		fmt.Println("Play 'lander play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-15s  %6s  %6s  %6s  %6s  %6s  %8s  %s\n",
		"Rank", "Pilot", "Score", "Speed", "Pos", "Fuel", "Time", "Mission", "Date")
	fmt.Printf("  %-4s  %-15s  %6s  %6s  %6s  %6s  %6s  %8s  %s\n",
		"----", "-----", "-----", "-----", "---", "----", "----", "-------", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Local().Format("2006-01-02 15:04")
		if bd := entry.Breakdown; bd != nil {
			fmt.Printf("  %-4d  %-15s  %6d  %6d  %6d  %6d  %6d  %7.1fs  %s\n",
				i+1, entry.Player, entry.Score, bd.SpeedBonus, bd.PositionBonus,
				bd.FuelBonus, bd.TimeBonus, float64(bd.MissionTimeMs)/1000, dateStr)
			continue
		}
		fmt.Printf("  %-4d  %-15s  %6d  %6s  %6s  %6s  %6s  %8s  %s\n",
			i+1, entry.Player, entry.Score, "-", "-", "-", "-", "-", dateStr)
	}

	// Show totals
	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not read stats: %v\n", err)
		return
	}
	fmt.Println()
	fmt.Printf("Best: %d  Average: %.0f  Landings: %d  Pilots: %d\n",
		stats.HighScore, stats.AvgScore, stats.Landings, stats.Pilots)
}
