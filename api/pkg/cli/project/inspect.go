package project

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Artox/open-build-service/api/pkg/client"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <project>",
		Short: "Show the project details as json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := client.NewClientFromEnv()
			if err != nil {
				return err
			}

			info, err := apiClient.GetProject(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get project: %w", err)
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(info)
		},
	}
}
