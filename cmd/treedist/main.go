package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/treedist/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "treedist",
	Short: "Tree edit distance for ordered labeled trees",
	Long: `treedist computes the edit distance and minimum-cost edit mapping
between ordered labeled trees using optimal single-path decomposition.

Features:
  • Exact tree edit distance with pluggable cost weights
  • Minimum-cost edit mapping reconstruction
  • Bracket notation ({a{b}{c}}) and Python source inputs
  • Pairwise batch comparison over file sets`,
	Version: version.Short(),
}

func init() {
	rootCmd.AddCommand(NewCompareCmd())
	rootCmd.AddCommand(NewBatchCmd())
	rootCmd.AddCommand(NewVersionCmd())
	rootCmd.AddCommand(NewInitCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
