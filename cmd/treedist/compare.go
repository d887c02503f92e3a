package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ludo-technologies/treedist/app"
	"github.com/ludo-technologies/treedist/domain"
	"github.com/ludo-technologies/treedist/internal/config"
)

// CompareCommand handles the compare CLI command
type CompareCommand struct {
	configFile string
	notation   string

	renameCost float64
	insertCost float64
	deleteCost float64

	// Output format flags (only one should be true)
	json bool
	yaml bool
	csv  bool

	showMapping bool
	outputPath  string
	fromFiles   bool
}

// NewCompareCommand creates a new compare command
func NewCompareCommand() *CompareCommand {
	return &CompareCommand{
		notation:   string(domain.TreeNotationBracket),
		renameCost: domain.DefaultRenameCost,
		insertCost: domain.DefaultInsertCost,
		deleteCost: domain.DefaultDeleteCost,
	}
}

// CreateCobraCommand creates the cobra command for tree comparison
func (c *CompareCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <tree1> <tree2>",
		Short: "Compute the edit distance between two trees",
		Long: `Compute the tree edit distance between two ordered labeled trees.

Trees are given in bracket notation, or as file paths with --files.
With --notation python the inputs are parsed as Python source.

Examples:
  # Distance between two bracket-notation trees
  treedist compare "{a{b}{c}}" "{a{b}}"

  # Include the minimum-cost edit mapping
  treedist compare --mapping "{a{b}{c}}" "{x{b}{c}}"

  # Compare two Python files structurally
  treedist compare --files --notation python a.py b.py`,
		Args: cobra.ExactArgs(2),
		RunE: c.runCompare,
	}

	cmd.Flags().StringVarP(&c.configFile, "config", "c", "", "Configuration file path")
	cmd.Flags().StringVar(&c.notation, "notation", c.notation, "Tree notation: bracket, python")
	cmd.Flags().Float64Var(&c.renameCost, "rename-cost", c.renameCost, "Cost of renaming a node")
	cmd.Flags().Float64Var(&c.insertCost, "insert-cost", c.insertCost, "Cost of inserting a node")
	cmd.Flags().Float64Var(&c.deleteCost, "delete-cost", c.deleteCost, "Cost of deleting a node")
	cmd.Flags().BoolVar(&c.json, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&c.yaml, "yaml", false, "Output as YAML")
	cmd.Flags().BoolVar(&c.csv, "csv", false, "Output as CSV")
	cmd.Flags().BoolVarP(&c.showMapping, "mapping", "m", false, "Reconstruct the edit mapping")
	cmd.Flags().StringVarP(&c.outputPath, "output", "o", "", "Write the report to a file")
	cmd.Flags().BoolVar(&c.fromFiles, "files", false, "Treat arguments as file paths")

	return cmd
}

// runCompare executes the compare command
func (c *CompareCommand) runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(c.configFile)
	if err != nil {
		return err
	}

	req := domain.DefaultCompareRequest()
	req.Notation = domain.TreeNotation(c.notation)
	req.Costs = cfg.Costs
	req.IncludeMapping = c.showMapping || cfg.Output.ShowMapping
	req.OutputFormat = resolveFormat(c.json, c.yaml, c.csv, cfg.Output.Format)
	req.OutputWriter = cmd.OutOrStdout()
	req.OutputPath = c.outputPath

	c.applyCostFlags(cmd.Flags(), &req.Costs)

	req.Tree1, req.Tree2 = args[0], args[1]
	if c.fromFiles {
		for i, arg := range args {
			data, err := os.ReadFile(arg)
			if err != nil {
				return domain.NewFileNotFoundError(arg, err)
			}
			if i == 0 {
				req.Tree1 = string(data)
			} else {
				req.Tree2 = string(data)
			}
		}
	}

	useCase := app.NewCompareUseCase(nil, nil, nil)
	if _, err := useCase.Execute(cmd.Context(), req); err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}
	return nil
}

// applyCostFlags overrides configured cost weights with explicitly set
// flags. Flag values win over config values only when the user passed
// them.
func (c *CompareCommand) applyCostFlags(flags *pflag.FlagSet, costs *domain.CostWeights) {
	if flags.Changed("rename-cost") {
		costs.Rename = c.renameCost
	}
	if flags.Changed("insert-cost") {
		costs.Insert = c.insertCost
	}
	if flags.Changed("delete-cost") {
		costs.Delete = c.deleteCost
	}
}

func resolveFormat(json, yaml, csv bool, configured string) domain.OutputFormat {
	switch {
	case json:
		return domain.OutputFormatJSON
	case yaml:
		return domain.OutputFormatYAML
	case csv:
		return domain.OutputFormatCSV
	}
	if configured != "" {
		return domain.OutputFormat(configured)
	}
	return domain.OutputFormatText
}

// NewCompareCmd creates and returns the compare cobra command
func NewCompareCmd() *cobra.Command {
	return NewCompareCommand().CreateCobraCommand()
}
