package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Artox/open-build-service/api/pkg/status"
	"github.com/Artox/open-build-service/api/pkg/types"
)

func projectPath(name string, parts ...string) string {
	path := "/projects/" + url.PathEscape(name)
	for _, part := range parts {
		path += "/" + url.PathEscape(part)
	}
	return path
}

func (c *ObsClient) ListProjects(ctx context.Context, showAll bool) (*types.ProjectIndex, error) {
	query := url.Values{}
	if showAll {
		query.Set("show_all", strconv.FormatBool(showAll))
	}
	path := "/projects"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var index types.ProjectIndex
	if err := c.makeRequest(ctx, http.MethodGet, path, nil, &index); err != nil {
		return nil, err
	}
	return &index, nil
}

func (c *ObsClient) GetProject(ctx context.Context, name string) (*types.ProjectInfo, error) {
	var info types.ProjectInfo
	if err := c.makeRequest(ctx, http.MethodGet, projectPath(name), nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *ObsClient) ProjectStatus(ctx context.Context, name string, filter types.StatusFilter) (*types.StatusResult, error) {
	path := projectPath(name, "status") + "?" + status.Values(filter).Encode()

	var result types.StatusResult
	if err := c.makeRequest(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *ObsClient) ListRepositories(ctx context.Context, name string) (*types.RepositoriesResult, error) {
	var result types.RepositoriesResult
	if err := c.makeRequest(ctx, http.MethodGet, projectPath(name, "repositories"), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *ObsClient) RepositoryState(ctx context.Context, name, repository string) (*types.RepositoryState, error) {
	var state types.RepositoryState
	if err := c.makeRequest(ctx, http.MethodGet, projectPath(name, "repositories", repository, "state"), nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (c *ObsClient) RebuildTime(ctx context.Context, name, repository, arch string) (*types.RebuildTimeResult, error) {
	path := projectPath(name, "repositories", repository, "rebuild_time") + "?" + url.Values{"arch": {arch}}.Encode()

	var result types.RebuildTimeResult
	if err := c.makeRequest(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
