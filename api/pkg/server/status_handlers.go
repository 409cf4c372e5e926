package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Artox/open-build-service/api/pkg/status"
	"github.com/Artox/open-build-service/api/pkg/system"
	"github.com/Artox/open-build-service/api/pkg/types"
)

// projectStatus godoc
// @Summary Project status
// @Description Aggregates the packages of the project with their devel packages, build fails and requests.
// @Tags    status
// @Param   project        path  string true  "Project name"
// @Param   filter_devel   query string false "All Packages, No Project or a devel project"
// @Param   ignore_pending query bool   false "Ignore packages with pending requests"
// @Param   limit_to_fails query bool   false "Only show failing packages"
// @Param   limit_to_old   query bool   false "Only show outdated packages"
// @Param   include_versions query bool false "Compare upstream versions"
// @Param   filter_for_user query string false "Only packages of this maintainer"
// @Success 200 {object} types.StatusResult
// @Router /api/v1/projects/{project}/status [get]
func (apiServer *ObsAPIServer) projectStatus(_ http.ResponseWriter, r *http.Request) (*types.StatusResult, *system.HTTPError) {
	return result(apiServer.Controller.Status(r.Context(), getProjectName(r), status.ParseFilter(r.URL.Query())))
}

func (apiServer *ObsAPIServer) monitor(_ http.ResponseWriter, r *http.Request) (*types.MonitorResult, *system.HTTPError) {
	return result(apiServer.Controller.Monitor(r.Context(), getProjectName(r), r.URL.Query()))
}

func (apiServer *ObsAPIServer) buildResult(_ http.ResponseWriter, r *http.Request) (types.BuildSummary, *system.HTTPError) {
	return result(apiServer.Controller.BuildResult(r.Context(), getProjectName(r)))
}

func (apiServer *ObsAPIServer) packageBuildresult(_ http.ResponseWriter, r *http.Request) (*types.PackageBuildResult, *system.HTTPError) {
	return result(apiServer.Controller.PackageBuildresult(r.Context(), getProjectName(r), mux.Vars(r)["package"]))
}

type editCommentRequest struct {
	Text string `json:"text"`
}

type editCommentResponse struct {
	Package string `json:"package"`
	Text    string `json:"text"`
}

func (apiServer *ObsAPIServer) editComment(_ http.ResponseWriter, r *http.Request) (*editCommentResponse, *system.HTTPError) {
	var req editCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, system.NewHTTPError400("failed to decode request body: " + err.Error())
	}
	pkg := mux.Vars(r)["package"]
	text, err := apiServer.Controller.EditComment(r.Context(), getRequestUser(r), getProjectName(r), pkg, req.Text)
	if err != nil {
		return nil, httpErrorFrom(err)
	}
	return &editCommentResponse{Package: pkg, Text: text}, nil
}

type clearCommentsRequest struct {
	Packages []string `json:"package"`
}

func (apiServer *ObsAPIServer) clearFailedComment(_ http.ResponseWriter, r *http.Request) ([]string, *system.HTTPError) {
	var req clearCommentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, system.NewHTTPError400("failed to decode request body: " + err.Error())
	}
	if err := apiServer.Controller.ClearFailedComment(r.Context(), getRequestUser(r), getProjectName(r), req.Packages); err != nil {
		return nil, httpErrorFrom(err)
	}
	return req.Packages, nil
}
