package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/merge-balls/internal/games/merge"
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Show the tier table",
	Long: `Print the tier table the game would use: size, score and color of
every tier, which tiers the spawner can hand out, and the terminal tier
that clears instead of merging further.

Examples:
  mergeballs tiers
  mergeballs tiers --config ./my-merge.yaml`,
	Args: cobra.NoArgs,
	Run:  runTiers,
}

func init() {
	tiersCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runTiers(cmd *cobra.Command, args []string) {
	cfg, err := loadChecked(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	table, err := merge.TiersFromConfig(cfg.Tiers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	window := min(max(cfg.Spawn.Window, 1), table.Len())

	fmt.Printf("  %-4s  %6s  %6s  %-14s  %s\n", "Tier", "Size", "Score", "Color", "Notes")
	fmt.Printf("  %-4s  %6s  %6s  %-14s  %s\n", "----", "----", "-----", "-----", "-----")
	for _, t := range table.All() {
		notes := ""
		if t.Index < window {
			notes = "spawn"
		}
		if table.IsTerminal(t.Index) {
			if notes != "" {
				notes += ", "
			}
			notes += "terminal"
		}
		fmt.Printf("  %-4d  %6.0f  %6d  %-14s  %s\n", t.Index, t.Size, t.Score, t.Color, notes)
	}
}
