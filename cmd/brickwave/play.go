package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ndemidov/brickwave/internal/config"
	"github.com/ndemidov/brickwave/internal/core"
	"github.com/ndemidov/brickwave/internal/game"
	"github.com/ndemidov/brickwave/internal/platform/tui"
	"github.com/ndemidov/brickwave/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagEndless    bool
	flagDebug      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play brickwave",
	Long: `Start a play session in the current terminal.

Controls:
  A/D, Left/Right  - Move paddle
  Space            - Launch ball
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, wider paddle, slower ball
  normal - Default settings
  hard   - Fewer lives, narrower paddle, faster ball
  fixed  - Normal settings without endless speed ramp

Examples:
  brickwave play
  brickwave play --difficulty hard
  brickwave play --endless
  brickwave play --config ./my-brickwave.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Cycle levels forever with a speed ramp")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Print collision telemetry after the session")
}

func runPlay(_ *cobra.Command, _ []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	mode := game.ModeCampaign
	if flagEndless {
		mode = game.ModeEndless
	}
	g := game.New(game.Options{
		ConfigPath: flagConfig,
		Preset:     config.DifficultyPreset(flagDifficulty),
		Mode:       mode,
	})

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(g, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if flagDebug {
		t := g.Telemetry()
		logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "brickwave"})
		logger.Info("session telemetry",
			"score", g.State().Score,
			"level", g.Level(),
			"ticks", g.Duration(),
			"stuck_corrections", t.StuckCorrections,
			"tunnel_corrections", t.TunnelCorrections,
			"dropped_contacts", t.DroppedContacts,
		)
	}
}
