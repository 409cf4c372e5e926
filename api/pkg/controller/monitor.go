package controller

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"

	"github.com/Artox/open-build-service/api/pkg/backend"
	"github.com/Artox/open-build-service/api/pkg/buildresult"
	"github.com/Artox/open-build-service/api/pkg/types"
)

// Monitor returns the build states of the project packages narrowed by the monitor form
func (c *Controller) Monitor(ctx context.Context, name string, query url.Values) (*types.MonitorResult, error) {
	project, err := c.getProject(ctx, name)
	if err != nil {
		return nil, err
	}

	filter := buildresult.ParseMonitorFilter(query, project)
	list, err := c.Options.Backend.GetBuildResults(ctx, name, &backend.BuildResultOptions{
		View:         "status",
		Codes:        buildresult.StatusCodes(filter),
		Archs:        filter.Archs,
		Repositories: filter.Repos,
		LastBuild:    filter.LastBuild,
	})
	if err != nil {
		if backend.IsNotFound(err) {
			return nil, fmt.Errorf("%w: no build results for project '%s'", ErrNotFound, name)
		}
		return nil, err
	}
	return buildresult.BuildMonitor(name, list, filter), nil
}

// PackageBuildresult returns the last build results of one package. The backend
// answers unknown packages with client errors, those give an empty result.
func (c *Controller) PackageBuildresult(ctx context.Context, project, pkg string) (*types.PackageBuildResult, error) {
	list, err := c.Options.Backend.GetBuildResults(ctx, project, &backend.BuildResultOptions{
		View:      "status",
		Package:   pkg,
		LastBuild: true,
	})
	if err != nil {
		log.Ctx(ctx).Debug().Err(err).Str("project", project).Str("package", pkg).Msg("no build results for package")
		list = nil
	}
	return buildresult.NewPackageResult(project, pkg, list), nil
}

// BuildResult summarizes the package states per repository and architecture
func (c *Controller) BuildResult(ctx context.Context, name string) (types.BuildSummary, error) {
	list, err := c.Options.Backend.GetBuildResults(ctx, name, &backend.BuildResultOptions{View: "summary"})
	if err != nil {
		return nil, err
	}
	return buildresult.Summarize(list), nil
}
