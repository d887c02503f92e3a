package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/treedist/internal/config"
)

// InitCommand writes a starter configuration file
type InitCommand struct {
	path string
}

// NewInitCommand creates a new init command
func NewInitCommand() *InitCommand {
	return &InitCommand{path: ".treedist.toml"}
}

// CreateCobraCommand creates the cobra command for config generation
func (i *InitCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default .treedist.toml configuration file",
		RunE:  i.runInit,
	}

	cmd.Flags().StringVarP(&i.path, "path", "p", i.path, "Path of the config file to create")

	return cmd
}

// runInit executes the init command
func (i *InitCommand) runInit(cmd *cobra.Command, args []string) error {
	if err := config.WriteDefaultConfig(i.path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", i.path)
	return nil
}

// NewInitCmd creates and returns the init cobra command
func NewInitCmd() *cobra.Command {
	return NewInitCommand().CreateCobraCommand()
}
