// mergeballs is a terminal merge-balls arcade game: drop balls into a box,
// matching tiers merge into the next tier, and the game ends when a fresh
// drop lands above the line.
//
// Usage:
//
//	mergeballs play              - Play the game
//	mergeballs tiers             - Show the tier table in effect
//	mergeballs validate <file>   - Check a config file
//	mergeballs list              - List available games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-file <path>     - Write logs to a file (default: discarded)
//	--log-level <level>   - debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/merge-balls/internal/games/merge"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mergeballs",
	Short: "Merge Balls - drop, merge and score in your terminal",
	Long: `Merge Balls is a terminal arcade game. Drop balls into the box;
two balls of the same tier merge into one ball of the next tier and
score points. A dropped ball that touches another ball while still
above the line ends the game.

Available commands:
  play      - Play the game
  tiers     - Show the tier table
  validate  - Check a config file
  list      - Show all available games

Examples:
  mergeballs play
  mergeballs play --config ./my-merge.yaml --seed 42
  mergeballs tiers
  mergeballs validate ./my-merge.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(tiersCmd)
	rootCmd.AddCommand(validateCmd)
}

// newLogger builds the logger selected by the global flags. The returned
// closer releases the log file, if any.
func newLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	var (
		w      io.Writer = io.Discard
		closer io.Closer = io.NopCloser(nil)
	)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "mergeballs",
		Level:           level,
	})
	return logger, closer, nil
}
