// brickwave is a terminal brick breaker built on a deterministic
// collision engine.
//
// Usage:
//
//	brickwave play           - Play in the current terminal
//	brickwave serve          - Start SSH server for remote play
//	brickwave scores         - Show high scores and run telemetry
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.brickwave/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickwave",
	Short: "Brickwave - a brick breaker in your terminal",
	Long: `Brickwave is a terminal brick breaker. Knock out every brick,
keep the ball off the floor, and chase the high score.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View high scores and run telemetry

Examples:
  brickwave play
  brickwave play --difficulty hard --endless
  brickwave serve --ssh :2222
  brickwave scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.brickwave/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
