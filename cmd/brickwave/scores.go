package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ndemidov/brickwave/internal/game"
	"github.com/ndemidov/brickwave/internal/platform/tui"
	"github.com/ndemidov/brickwave/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and run telemetry",
	Long: `Display the top 10 high scores and aggregate run telemetry.

Examples:
  brickwave scores
  brickwave scores --interactive`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse scores and runs in a TUI")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(game.GameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Brickwave")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'brickwave play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	highScore, err := store.HighScore(game.GameID)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}

	totals, err := store.Anomalies(game.GameID)
	if err == nil && totals.Runs > 0 {
		fmt.Printf("Runs: %d (stuck fixes: %d, tunnel fixes: %d, dropped contacts: %d)\n",
			totals.Runs, totals.StuckCorrections,
			totals.TunnelCorrections, totals.DroppedContacts)
	}
}
