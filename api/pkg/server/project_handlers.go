package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/Artox/open-build-service/api/pkg/system"
	"github.com/Artox/open-build-service/api/pkg/types"
)

// listProjects godoc
// @Summary List projects
// @Description Lists the main projects, the excluded ones and the important projects.
// @Tags    projects
// @Param   show_all query bool   false "Include home projects"
// @Param   exclude  query string false "Regular expression of projects to exclude"
// @Success 200 {object} types.ProjectIndex
// @Router /api/v1/projects [get]
func (apiServer *ObsAPIServer) listProjects(_ http.ResponseWriter, r *http.Request) (*types.ProjectIndex, *system.HTTPError) {
	query := r.URL.Query()
	showAll, _ := strconv.ParseBool(query.Get("show_all"))
	return result(apiServer.Controller.Index(r.Context(), showAll, query.Get("exclude")))
}

func (apiServer *ObsAPIServer) autocompleteProjects(_ http.ResponseWriter, r *http.Request) ([]string, *system.HTTPError) {
	return result(apiServer.Controller.AutocompleteProjects(r.Context(), r.URL.Query().Get("term")))
}

func (apiServer *ObsAPIServer) autocompleteIncidents(_ http.ResponseWriter, r *http.Request) ([]string, *system.HTTPError) {
	return result(apiServer.Controller.AutocompleteIncidents(r.Context(), r.URL.Query().Get("term")))
}

func (apiServer *ObsAPIServer) autocompletePackages(_ http.ResponseWriter, r *http.Request) ([]string, *system.HTTPError) {
	return result(apiServer.Controller.AutocompletePackages(r.Context(), getProjectName(r), r.URL.Query().Get("term")))
}

func (apiServer *ObsAPIServer) autocompleteRepositories(_ http.ResponseWriter, r *http.Request) ([]string, *system.HTTPError) {
	return result(apiServer.Controller.AutocompleteRepositories(r.Context(), getProjectName(r)))
}

func (apiServer *ObsAPIServer) projectUsers(_ http.ResponseWriter, r *http.Request) (*types.ProjectUsers, *system.HTTPError) {
	return result(apiServer.Controller.Users(r.Context(), getProjectName(r)))
}

func (apiServer *ObsAPIServer) subprojects(_ http.ResponseWriter, r *http.Request) (*types.SubprojectsResult, *system.HTTPError) {
	return result(apiServer.Controller.Subprojects(r.Context(), getProjectName(r)))
}

func (apiServer *ObsAPIServer) prepareNewProject(_ http.ResponseWriter, r *http.Request) (*types.NewProjectTemplate, *system.HTTPError) {
	query := r.URL.Query()
	return result(apiServer.Controller.PrepareNewProject(r.Context(), getRequestUser(r), query.Get("ns"), query.Get("name")))
}

// createProject godoc
// @Summary Create a project
// @Tags    projects
// @Param   request body types.CreateProjectRequest true "Project"
// @Success 200 {object} types.Project
// @Router /api/v1/projects [post]
func (apiServer *ObsAPIServer) createProject(_ http.ResponseWriter, r *http.Request) (*types.Project, *system.HTTPError) {
	var req types.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, system.NewHTTPError400("failed to decode request body: " + err.Error())
	}
	return result(apiServer.Controller.CreateProject(r.Context(), getRequestUser(r), &req))
}

// getProject godoc
// @Summary Project details
// @Description Shows the project with its packages, link targets, open requests and problems.
// @Tags    projects
// @Param   project path string true "Project name"
// @Success 200 {object} types.ProjectInfo
// @Router /api/v1/projects/{project} [get]
func (apiServer *ObsAPIServer) getProject(_ http.ResponseWriter, r *http.Request) (*types.ProjectInfo, *system.HTTPError) {
	return result(apiServer.Controller.ProjectInfo(r.Context(), getRequestUser(r), getProjectName(r)))
}

func (apiServer *ObsAPIServer) updateProject(_ http.ResponseWriter, r *http.Request) (*types.Project, *system.HTTPError) {
	var req types.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, system.NewHTTPError400("failed to decode request body: " + err.Error())
	}
	return result(apiServer.Controller.UpdateProject(r.Context(), getRequestUser(r), getProjectName(r), &req))
}

func (apiServer *ObsAPIServer) deleteProject(_ http.ResponseWriter, r *http.Request) (*types.DeleteProjectResult, *system.HTTPError) {
	force, _ := strconv.ParseBool(r.URL.Query().Get("force"))
	return result(apiServer.Controller.DeleteProject(r.Context(), getRequestUser(r), getProjectName(r), force))
}

type watchResponse struct {
	Watched bool `json:"watched"`
}

func (apiServer *ObsAPIServer) toggleWatch(_ http.ResponseWriter, r *http.Request) (*watchResponse, *system.HTTPError) {
	watched, err := apiServer.Controller.ToggleWatch(r.Context(), getRequestUser(r), getProjectName(r))
	if err != nil {
		return nil, httpErrorFrom(err)
	}
	return &watchResponse{Watched: watched}, nil
}

type unlockRequest struct {
	Comment string `json:"comment"`
}

func (apiServer *ObsAPIServer) unlockProject(_ http.ResponseWriter, r *http.Request) (*types.ProjectEvent, *system.HTTPError) {
	var req unlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return nil, system.NewHTTPError400("failed to decode request body: " + err.Error())
	}
	name := getProjectName(r)
	if err := apiServer.Controller.Unlock(r.Context(), getRequestUser(r), name, req.Comment); err != nil {
		return nil, httpErrorFrom(err)
	}
	return &types.ProjectEvent{Type: types.ProjectEventUnlocked, Project: name}, nil
}

func (apiServer *ObsAPIServer) getMeta(w http.ResponseWriter, r *http.Request) {
	meta, err := apiServer.Controller.Meta(r.Context(), getProjectName(r))
	writeRaw(w, r, "application/xml", meta, err)
}

func (apiServer *ObsAPIServer) saveMeta(_ http.ResponseWriter, r *http.Request) (*types.ProjectEvent, *system.HTTPError) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, system.NewHTTPError400("failed to read request body: " + err.Error())
	}
	name := getProjectName(r)
	if err := apiServer.Controller.SaveMeta(r.Context(), getRequestUser(r), name, body); err != nil {
		return nil, httpErrorFrom(err)
	}
	return &types.ProjectEvent{Type: types.ProjectEventMetaSaved, Project: name}, nil
}

func (apiServer *ObsAPIServer) getPrjconf(w http.ResponseWriter, r *http.Request) {
	prjconf, err := apiServer.Controller.Prjconf(r.Context(), getProjectName(r))
	writeRaw(w, r, "text/plain", prjconf, err)
}

func (apiServer *ObsAPIServer) savePrjconf(_ http.ResponseWriter, r *http.Request) (*types.ProjectEvent, *system.HTTPError) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, system.NewHTTPError400("failed to read request body: " + err.Error())
	}
	name := getProjectName(r)
	if err := apiServer.Controller.SavePrjconf(r.Context(), getRequestUser(r), name, body); err != nil {
		return nil, httpErrorFrom(err)
	}
	return &types.ProjectEvent{Type: types.ProjectEventConfigSaved, Project: name}, nil
}

// writeRaw answers with a document that is not json encoded
func writeRaw(w http.ResponseWriter, r *http.Request, contentType string, body []byte, err error) {
	if err != nil {
		httpErr := httpErrorFrom(err)
		log.Ctx(r.Context()).Error().Int("status", httpErr.StatusCode).Msgf("error for route: %s", httpErr.Message)
		http.Error(w, httpErr.Message, httpErr.StatusCode)
		return
	}
	w.Header().Set("Content-Type", contentType)
	if _, err := w.Write(body); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to write response")
	}
}
