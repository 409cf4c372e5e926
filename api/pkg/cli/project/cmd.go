package project

import (
	"github.com/spf13/cobra"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "project",
		Short:   "Project commands",
		Aliases: []string{"prj", "p"},
	}

	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newInspectCommand())
	cmd.AddCommand(newStatusCommand())
	cmd.AddCommand(newCyclesCommand())
	cmd.AddCommand(newRebuildTimeCommand())

	return cmd
}
