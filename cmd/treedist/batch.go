package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/treedist/app"
	"github.com/ludo-technologies/treedist/domain"
	"github.com/ludo-technologies/treedist/internal/config"
)

// BatchCommand handles the batch comparison CLI command
type BatchCommand struct {
	configFile      string
	notation        string
	includePatterns []string
	excludePatterns []string
	recursive       bool
	noProgress      bool

	json bool
	yaml bool
	csv  bool

	outputPath string
}

// NewBatchCommand creates a new batch command
func NewBatchCommand() *BatchCommand {
	return &BatchCommand{
		notation:  string(domain.TreeNotationBracket),
		recursive: true,
	}
}

// CreateCobraCommand creates the cobra command for batch comparison
func (b *BatchCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <path> [path...]",
		Short: "Compute pairwise distances over a set of tree files",
		Long: `Compare every pair of tree files found under the given paths.

Files are collected with glob patterns (doublestar syntax) and parsed
once; each pair is then compared independently.

Examples:
  # All .tree fixtures under testdata
  treedist batch testdata/

  # Python sources, JSON report
  treedist batch --notation python --include "**/*.py" --json src/`,
		Args: cobra.MinimumNArgs(1),
		RunE: b.runBatch,
	}

	cmd.Flags().StringVarP(&b.configFile, "config", "c", "", "Configuration file path")
	cmd.Flags().StringVar(&b.notation, "notation", b.notation, "Tree notation: bracket, python")
	cmd.Flags().StringSliceVar(&b.includePatterns, "include", nil, "Include glob patterns")
	cmd.Flags().StringSliceVar(&b.excludePatterns, "exclude", nil, "Exclude glob patterns")
	cmd.Flags().BoolVar(&b.recursive, "recursive", b.recursive, "Search directories recursively")
	cmd.Flags().BoolVar(&b.noProgress, "no-progress", false, "Disable the progress bar")
	cmd.Flags().BoolVar(&b.json, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&b.yaml, "yaml", false, "Output as YAML")
	cmd.Flags().BoolVar(&b.csv, "csv", false, "Output as CSV")
	cmd.Flags().StringVarP(&b.outputPath, "output", "o", "", "Write the report to a file")

	return cmd
}

// runBatch executes the batch command
func (b *BatchCommand) runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(b.configFile)
	if err != nil {
		return err
	}

	req := domain.DefaultBatchRequest()
	req.Paths = args
	req.Notation = domain.TreeNotation(b.notation)
	req.Costs = cfg.Costs
	req.Recursive = b.recursive
	req.ShowProgress = !b.noProgress
	req.OutputFormat = resolveFormat(b.json, b.yaml, b.csv, cfg.Output.Format)
	req.OutputWriter = cmd.OutOrStdout()
	req.OutputPath = b.outputPath

	req.IncludePatterns = cfg.Batch.IncludePatterns
	if len(b.includePatterns) > 0 {
		req.IncludePatterns = b.includePatterns
	}
	req.ExcludePatterns = cfg.Batch.ExcludePatterns
	if len(b.excludePatterns) > 0 {
		req.ExcludePatterns = b.excludePatterns
	}

	useCase := app.NewCompareUseCase(nil, nil, nil)
	if _, err := useCase.ExecuteBatch(cmd.Context(), req); err != nil {
		return fmt.Errorf("batch comparison failed: %w", err)
	}
	return nil
}

// NewBatchCmd creates and returns the batch cobra command
func NewBatchCmd() *cobra.Command {
	return NewBatchCommand().CreateCobraCommand()
}
