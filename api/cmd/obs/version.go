package obs

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Artox/open-build-service/api/pkg/data"
)

func newVersionCommand() *cobra.Command {
	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), data.GetVersion())
		},
	}
	return versionCmd
}
