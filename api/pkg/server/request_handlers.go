package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Artox/open-build-service/api/pkg/system"
	"github.com/Artox/open-build-service/api/pkg/types"
)

type createRequestRequest struct {
	Description string `json:"description"`
	Repository  string `json:"repository,omitempty"`
}

func decodeCreateRequest(r *http.Request) (*createRequestRequest, *system.HTTPError) {
	var req createRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return nil, system.NewHTTPError400("failed to decode request body: " + err.Error())
	}
	return &req, nil
}

func (apiServer *ObsAPIServer) listRequests(_ http.ResponseWriter, r *http.Request) ([]*types.BsRequest, *system.HTTPError) {
	query := r.URL.Query()
	return result(apiServer.Controller.ListRequests(r.Context(), getProjectName(r), query.Get("type"), query.Get("state")))
}

func (apiServer *ObsAPIServer) createIncidentRequest(_ http.ResponseWriter, r *http.Request) (*types.BsRequest, *system.HTTPError) {
	req, httpErr := decodeCreateRequest(r)
	if httpErr != nil {
		return nil, httpErr
	}
	return result(apiServer.Controller.CreateIncidentRequest(r.Context(), getRequestUser(r), getProjectName(r), req.Description))
}

func (apiServer *ObsAPIServer) createReleaseRequest(_ http.ResponseWriter, r *http.Request) (*types.BsRequest, *system.HTTPError) {
	req, httpErr := decodeCreateRequest(r)
	if httpErr != nil {
		return nil, httpErr
	}
	return result(apiServer.Controller.CreateReleaseRequest(r.Context(), getRequestUser(r), getProjectName(r), req.Description))
}

func (apiServer *ObsAPIServer) createRemoveTargetRequest(_ http.ResponseWriter, r *http.Request) (*types.BsRequest, *system.HTTPError) {
	req, httpErr := decodeCreateRequest(r)
	if httpErr != nil {
		return nil, httpErr
	}
	return result(apiServer.Controller.CreateRemoveTargetRequest(r.Context(), getRequestUser(r), getProjectName(r), req.Repository, req.Description))
}

func (apiServer *ObsAPIServer) newIncident(_ http.ResponseWriter, r *http.Request) (*types.NewIncidentResult, *system.HTTPError) {
	return result(apiServer.Controller.NewIncident(r.Context(), getRequestUser(r), getProjectName(r)))
}

func (apiServer *ObsAPIServer) maintenanceIncidents(_ http.ResponseWriter, r *http.Request) ([]*types.Project, *system.HTTPError) {
	return result(apiServer.Controller.MaintenanceIncidents(r.Context(), getProjectName(r)))
}

func (apiServer *ObsAPIServer) maintainedProjects(_ http.ResponseWriter, r *http.Request) ([]string, *system.HTTPError) {
	return result(apiServer.Controller.MaintainedProjects(r.Context(), getProjectName(r)))
}

type maintainedProjectRequest struct {
	Project string `json:"project"`
}

func (apiServer *ObsAPIServer) addMaintainedProject(_ http.ResponseWriter, r *http.Request) ([]string, *system.HTTPError) {
	var req maintainedProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, system.NewHTTPError400("failed to decode request body: " + err.Error())
	}
	name := getProjectName(r)
	if err := apiServer.Controller.AddMaintainedProject(r.Context(), getRequestUser(r), name, req.Project); err != nil {
		return nil, httpErrorFrom(err)
	}
	return result(apiServer.Controller.MaintainedProjects(r.Context(), name))
}

func (apiServer *ObsAPIServer) removeMaintainedProject(_ http.ResponseWriter, r *http.Request) ([]string, *system.HTTPError) {
	name := getProjectName(r)
	if err := apiServer.Controller.RemoveMaintainedProject(r.Context(), getRequestUser(r), name, mux.Vars(r)["maintained"]); err != nil {
		return nil, httpErrorFrom(err)
	}
	return result(apiServer.Controller.MaintainedProjects(r.Context(), name))
}
