package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a config file",
	Long: `Load a Merge Balls config file and report every problem found in it.
Exits with status 1 when the file is not usable.

Examples:
  mergeballs validate ./my-merge.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) {
	path := args[0]
	cfg, err := loadChecked(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		os.Exit(1)
	}
	fmt.Printf("%s: ok (%d tiers, board %gx%g)\n", path, len(cfg.Tiers), cfg.Board.Width, cfg.Board.Height)
}
