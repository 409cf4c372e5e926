package project

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Artox/open-build-service/api/pkg/cli/util"
	"github.com/Artox/open-build-service/api/pkg/client"
	"github.com/Artox/open-build-service/api/pkg/types"
)

func newCyclesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cycles <project> <repository>",
		Short: "Show the dependency cycles of a repository",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := client.NewClientFromEnv()
			if err != nil {
				return err
			}

			state, err := apiClient.RepositoryState(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to get repository state: %w", err)
			}

			renderCycles(cmd.OutOrStdout(), state)
			return nil
		},
	}
}

func renderCycles(w io.Writer, state *types.RepositoryState) {
	table := util.NewTable(w, []string{"Arch", "Cycle", "Packages"})
	for _, arch := range state.Archs {
		for i, cycle := range state.Cycles[arch] {
			table.Append([]string{arch, strconv.Itoa(i + 1), strings.Join(cycle, " ")})
		}
	}
	table.Render()
}

func newRebuildTimeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rebuild-time <project> <repository> <arch>",
		Short: "Estimate how long a full rebuild of the repository takes",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := client.NewClientFromEnv()
			if err != nil {
				return err
			}

			res, err := apiClient.RebuildTime(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return fmt.Errorf("failed to get rebuild time: %w", err)
			}

			renderRebuildTime(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func renderRebuildTime(w io.Writer, res *types.RebuildTimeResult) {
	fmt.Fprintf(w, "%s/%s/%s on %s hosts (%s): %s\n",
		res.Project, res.Repository, res.Arch,
		humanize.Comma(int64(res.Hosts)), res.Scheduler,
		time.Duration(res.RebuildTime)*time.Second)

	table := util.NewTable(w, []string{"Package", "Build Time", "Finished"})
	for _, t := range res.Timings {
		table.Append([]string{
			t.Package,
			(time.Duration(t.BuildTime) * time.Second).String(),
			(time.Duration(t.Finished) * time.Second).String(),
		})
	}
	table.Render()

	for _, path := range res.LongestPath {
		fmt.Fprintf(w, "longest path: %s\n", strings.Join(path, " -> "))
	}
}
