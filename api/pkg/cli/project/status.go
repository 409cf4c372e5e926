package project

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Artox/open-build-service/api/pkg/cli/util"
	"github.com/Artox/open-build-service/api/pkg/client"
	"github.com/Artox/open-build-service/api/pkg/status"
	"github.com/Artox/open-build-service/api/pkg/types"
)

func newStatusCommand() *cobra.Command {
	var (
		devel         string
		ignorePending bool
		failsOnly     bool
		oldOnly       bool
		versions      bool
		maintainer    string
	)

	cmd := &cobra.Command{
		Use:   "status <project>",
		Short: "Show the packages of a project that need attention",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := client.NewClientFromEnv()
			if err != nil {
				return err
			}

			filter := types.StatusFilter{
				IgnorePending:   ignorePending,
				LimitToFails:    failsOnly,
				LimitToOld:      oldOnly,
				IncludeVersions: versions,
				FilterForUser:   maintainer,
			}
			switch devel {
			case "", status.DevelFilterAllLabel:
				filter.Devel.All = true
			case status.DevelFilterNoneLabel:
				filter.Devel.None = true
			default:
				filter.Devel.Project = devel
			}

			res, err := apiClient.ProjectStatus(cmd.Context(), args[0], filter)
			if err != nil {
				return fmt.Errorf("failed to get project status: %w", err)
			}

			renderStatus(cmd.OutOrStdout(), res, time.Now())
			return nil
		},
	}

	cmd.Flags().StringVar(&devel, "devel", "", `Devel project filter, "No Project" for packages without one`)
	cmd.Flags().BoolVar(&ignorePending, "ignore-pending", false, "Hide packages with pending requests")
	cmd.Flags().BoolVar(&failsOnly, "fails", true, "Only show failing packages")
	cmd.Flags().BoolVar(&oldOnly, "old", false, "Only show packages that are older than their devel package")
	cmd.Flags().BoolVar(&versions, "versions", true, "Compare against the upstream versions")
	cmd.Flags().StringVar(&maintainer, "user", "", "Only show packages maintained by this user")

	return cmd
}

func renderStatus(w io.Writer, res *types.StatusResult, now time.Time) {
	table := util.NewTable(w, []string{"Package", "Devel", "Fail", "Problems", "Requests", "Comment"})

	for _, pkg := range res.Packages {
		devel := ""
		if pkg.DevelProject != "" {
			devel = pkg.DevelProject + "/" + pkg.DevelPackage
		}

		fail := ""
		if pkg.FailedRepo != "" {
			fail = pkg.FailedRepo + "/" + pkg.FailedArch
			if pkg.FirstFail != nil {
				fail += " since " + humanize.RelTime(time.Unix(*pkg.FirstFail, 0), now, "ago", "from now")
			}
		}

		requests := make([]string, 0, len(pkg.RequestsFrom)+len(pkg.RequestsTo))
		for _, id := range pkg.RequestsFrom {
			requests = append(requests, fmt.Sprintf("from #%d", id))
		}
		for _, id := range pkg.RequestsTo {
			requests = append(requests, fmt.Sprintf("to #%d", id))
		}
		if pkg.CurrentlyDeclined != 0 {
			requests = append(requests, fmt.Sprintf("declined #%d", pkg.CurrentlyDeclined))
		}

		table.Append([]string{
			pkg.Name,
			devel,
			fail,
			strings.Join(pkg.Problems, ","),
			strings.Join(requests, " "),
			pkg.FailedComment,
		})
	}

	table.Render()
}
