package obs

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/Artox/open-build-service/api/pkg/cli/project"
)

var Fatal = FatalErrorHandler

func NewRootCmd() *cobra.Command {
	RootCmd := &cobra.Command{
		Use:   getCommandLineExecutable(),
		Short: "OBS",
		Long:  `Open Build Service webui api`,
	}

	RootCmd.AddCommand(project.New())

	RootCmd.AddCommand(newServeCmd())
	RootCmd.AddCommand(newVersionCommand())

	return RootCmd
}

func Execute() {
	RootCmd := NewRootCmd()
	RootCmd.SetContext(context.Background())
	RootCmd.SetOutput(os.Stdout)

	if err := RootCmd.Execute(); err != nil {
		Fatal(RootCmd, err.Error(), 1)
	}
}
