package project

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Artox/open-build-service/api/pkg/cli/util"
	"github.com/Artox/open-build-service/api/pkg/client"
	"github.com/Artox/open-build-service/api/pkg/types"
)

func newListCommand() *cobra.Command {
	var showAll bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List projects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			apiClient, err := client.NewClientFromEnv()
			if err != nil {
				return err
			}

			index, err := apiClient.ListProjects(cmd.Context(), showAll)
			if err != nil {
				return fmt.Errorf("failed to list projects: %w", err)
			}

			renderIndex(cmd.OutOrStdout(), index)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showAll, "all", false, "Include home projects")

	return cmd
}

func renderIndex(w io.Writer, index *types.ProjectIndex) {
	table := util.NewTable(w, []string{"Name", "Kind"})
	for _, name := range index.MainProjects {
		table.Append([]string{name, "main"})
	}
	for _, name := range index.ExcludedProjects {
		table.Append([]string{name, "excluded"})
	}
	table.Render()
}
