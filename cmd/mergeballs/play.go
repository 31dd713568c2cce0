package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/merge-balls/internal/config"
	"github.com/vovakirdan/merge-balls/internal/core"
	"github.com/vovakirdan/merge-balls/internal/games/merge"
	"github.com/vovakirdan/merge-balls/internal/platform/tui"
	"github.com/vovakirdan/merge-balls/internal/registry"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Merge Balls",
	Long: `Start a game of Merge Balls.

Controls:
  Mouse        - Aim the next ball
  Click/Space  - Drop the ball
  Left/Right   - Nudge the aim (A/D also work)
  P/Esc        - Pause
  R/Click      - Retry (after game over)
  Q/Ctrl+C     - Quit

Examples:
  mergeballs play
  mergeballs play --seed 42
  mergeballs play --config ./my-merge.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closer, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	// A broken tier table must stop us before the first frame.
	cfg, err := loadChecked(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("config loaded", "tiers", len(cfg.Tiers), "board_w", cfg.Board.Width, "board_h", cfg.Board.Height)

	merge.SetConfigPath(flagConfig)
	merge.SetLogger(logger)

	game, err := registry.Create(merge.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.Run(game, rc, logger); err != nil {
		logger.Error("game loop", "err", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// loadChecked loads the config the game would use and verifies it,
// including the tier table.
func loadChecked(path string) (config.MergeConfig, error) {
	cfg, err := config.LoadMerge(path)
	if err != nil {
		return cfg, err
	}
	if err := config.Validate(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config:\n%w", err)
	}
	if _, err := merge.TiersFromConfig(cfg.Tiers); err != nil {
		return cfg, fmt.Errorf("invalid tier table: %w", err)
	}
	return cfg, nil
}
