package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Artox/open-build-service/api/pkg/system"
	"github.com/Artox/open-build-service/api/pkg/types"
)

func getRepositoryName(r *http.Request) string {
	return mux.Vars(r)["repository"]
}

func (apiServer *ObsAPIServer) listRepositories(_ http.ResponseWriter, r *http.Request) (*types.RepositoriesResult, *system.HTTPError) {
	return result(apiServer.Controller.Repositories(r.Context(), getProjectName(r)))
}

func (apiServer *ObsAPIServer) editRepository(_ http.ResponseWriter, r *http.Request) (*types.EditRepositoryResult, *system.HTTPError) {
	return result(apiServer.Controller.EditRepository(r.Context(), getProjectName(r), getRepositoryName(r)))
}

type updateTargetRequest struct {
	Archs []string `json:"arch"`
}

func (apiServer *ObsAPIServer) updateTarget(_ http.ResponseWriter, r *http.Request) (*types.EditRepositoryResult, *system.HTTPError) {
	var req updateTargetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, system.NewHTTPError400("failed to decode request body: " + err.Error())
	}
	return result(apiServer.Controller.UpdateTarget(r.Context(), getRequestUser(r), getProjectName(r), getRepositoryName(r), req.Archs))
}

// addRepositories godoc
// @Summary Add repositories
// @Description Adds distribution repositories to the project, or a path to an existing repository.
// @Tags    repositories
// @Param   project path string                       true "Project name"
// @Param   request body types.AddRepositoriesRequest true "Repositories"
// @Success 200 {object} types.RepositoriesResult
// @Router /api/v1/projects/{project}/repositories [post]
func (apiServer *ObsAPIServer) addRepositories(_ http.ResponseWriter, r *http.Request) (*types.RepositoriesResult, *system.HTTPError) {
	var req types.AddRepositoriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, system.NewHTTPError400("failed to decode request body: " + err.Error())
	}
	name := getProjectName(r)
	if err := apiServer.Controller.AddRepositories(r.Context(), getRequestUser(r), name, &req); err != nil {
		return nil, httpErrorFrom(err)
	}
	return result(apiServer.Controller.Repositories(r.Context(), name))
}

func (apiServer *ObsAPIServer) removeTarget(_ http.ResponseWriter, r *http.Request) (*types.RepositoriesResult, *system.HTTPError) {
	name := getProjectName(r)
	if err := apiServer.Controller.RemoveTarget(r.Context(), getRequestUser(r), name, getRepositoryName(r)); err != nil {
		return nil, httpErrorFrom(err)
	}
	return result(apiServer.Controller.Repositories(r.Context(), name))
}

type releaseRepositoryRequest struct {
	Target string `json:"target"`
}

func (apiServer *ObsAPIServer) releaseRepository(_ http.ResponseWriter, r *http.Request) (*types.ProjectEvent, *system.HTTPError) {
	var req releaseRepositoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, system.NewHTTPError400("failed to decode request body: " + err.Error())
	}
	name := getProjectName(r)
	if err := apiServer.Controller.ReleaseRepository(r.Context(), getRequestUser(r), name, getRepositoryName(r), req.Target); err != nil {
		return nil, httpErrorFrom(err)
	}
	return &types.ProjectEvent{Type: types.ProjectEventRepositories, Project: name}, nil
}

func (apiServer *ObsAPIServer) removePath(_ http.ResponseWriter, r *http.Request) (*types.EditRepositoryResult, *system.HTTPError) {
	name, repository := getProjectName(r), getRepositoryName(r)
	query := r.URL.Query()
	err := apiServer.Controller.RemovePath(r.Context(), getRequestUser(r), name, repository, query.Get("path_project"), query.Get("path_repository"))
	if err != nil {
		return nil, httpErrorFrom(err)
	}
	return result(apiServer.Controller.EditRepository(r.Context(), name, repository))
}

type movePathRequest struct {
	Project    string              `json:"path_project"`
	Repository string              `json:"path_repository"`
	Direction  types.PathDirection `json:"direction"`
}

func (apiServer *ObsAPIServer) movePath(_ http.ResponseWriter, r *http.Request) (*types.EditRepositoryResult, *system.HTTPError) {
	var req movePathRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, system.NewHTTPError400("failed to decode request body: " + err.Error())
	}
	name, repository := getProjectName(r), getRepositoryName(r)
	err := apiServer.Controller.MovePath(r.Context(), getRequestUser(r), name, repository, req.Project, req.Repository, req.Direction)
	if err != nil {
		return nil, httpErrorFrom(err)
	}
	return result(apiServer.Controller.EditRepository(r.Context(), name, repository))
}

// repositoryState godoc
// @Summary Repository dependency cycles
// @Description Reports the package dependency cycles of the repository for every architecture.
// @Tags    repositories
// @Param   project    path string true "Project name"
// @Param   repository path string true "Repository name"
// @Success 200 {object} types.RepositoryState
// @Router /api/v1/projects/{project}/repositories/{repository}/state [get]
func (apiServer *ObsAPIServer) repositoryState(_ http.ResponseWriter, r *http.Request) (*types.RepositoryState, *system.HTTPError) {
	return result(apiServer.Controller.RepositoryState(r.Context(), getProjectName(r), getRepositoryName(r)))
}

func (apiServer *ObsAPIServer) rebuildTime(_ http.ResponseWriter, r *http.Request) (*types.RebuildTimeResult, *system.HTTPError) {
	query := r.URL.Query()
	return result(apiServer.Controller.RebuildTime(
		r.Context(),
		getProjectName(r),
		getRepositoryName(r),
		query.Get("arch"),
		query.Get("hosts"),
		query.Get("scheduler"),
	))
}

func (apiServer *ObsAPIServer) rebuildTimePNG(w http.ResponseWriter, r *http.Request) {
	png, err := apiServer.Controller.RebuildTimePNG(mux.Vars(r)["key"])
	writeRaw(w, r, "image/png", png, err)
}

func (apiServer *ObsAPIServer) defaultDistributions(_ http.ResponseWriter, r *http.Request) ([]*types.DistributionVendor, *system.HTTPError) {
	return result(apiServer.Controller.DefaultDistributions(r.Context()))
}

func (apiServer *ObsAPIServer) changeFlag(_ http.ResponseWriter, r *http.Request) (types.RepositoryFlags, *system.HTTPError) {
	var req types.ChangeFlagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, system.NewHTTPError400("failed to decode request body: " + err.Error())
	}
	return result(apiServer.Controller.ChangeFlag(r.Context(), getRequestUser(r), getProjectName(r), &req))
}
