package controller

import (
	"context"
	"net/url"

	"go.uber.org/mock/gomock"

	"github.com/Artox/open-build-service/api/pkg/backend"
	"github.com/Artox/open-build-service/api/pkg/store"
	"github.com/Artox/open-build-service/api/pkg/types"
)

func (suite *ControllerSuite) TestNewIncident() {
	_, err := suite.controller.NewIncident(suite.ctx, suite.alice, "")
	suite.ErrorIs(err, ErrInvalidRequest)

	suite.backend.EXPECT().SourceCommand(suite.ctx, "openSUSE:Maintenance", "createmaintenanceincident", nil).
		Return(&backend.Status{Code: "ok", Data: []backend.StatusData{{Name: "targetproject", Value: "openSUSE:Maintenance:42"}}}, nil)
	suite.expectNotify("openSUSE:Maintenance:42")

	result, err := suite.controller.NewIncident(suite.ctx, suite.alice, "openSUSE:Maintenance")
	suite.Require().NoError(err)
	suite.Equal("openSUSE:Maintenance:42", result.Project)
}

func (suite *ControllerSuite) TestCreateReleaseRequest() {
	name := "openSUSE:Maintenance:42"
	suite.store.EXPECT().GetProject(suite.ctx, name).Return(&types.Project{ID: 42, Name: name}, nil)
	suite.store.EXPECT().CreateRequest(suite.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, r *types.BsRequest) (*types.BsRequest, error) {
			suite.Equal("alice", r.Creator)
			suite.Equal("ready", r.Description)
			suite.Require().Len(r.Actions, 1)
			suite.Equal(types.RequestActionTypeMaintenanceRelease, r.Actions[0].Type)
			suite.Equal(name, r.Actions[0].SourceProject)
			r.ID = 100
			return r, nil
		})
	suite.expectNotify(name)

	request, err := suite.controller.CreateReleaseRequest(suite.ctx, suite.alice, name, "ready")
	suite.Require().NoError(err)
	suite.Equal(uint(100), request.ID)
}

func (suite *ControllerSuite) TestCreateRemoveTargetRequest() {
	project := &types.Project{ID: 4, Name: "devel:tools", Repositories: []*types.Repository{{Name: "standard"}}}

	suite.store.EXPECT().GetProject(suite.ctx, project.Name).Return(project, nil).Times(2)

	_, err := suite.controller.CreateRemoveTargetRequest(suite.ctx, suite.alice, project.Name, "ports", "")
	suite.ErrorIs(err, ErrNotFound)

	suite.store.EXPECT().CreateRequest(suite.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, r *types.BsRequest) (*types.BsRequest, error) {
			suite.Equal(types.RequestActionTypeDelete, r.Actions[0].Type)
			suite.Equal(project.Name, r.Actions[0].TargetProject)
			suite.Equal("standard", r.Actions[0].TargetRepository)
			r.ID = 7
			return r, nil
		})
	suite.expectNotify(project.Name)

	request, err := suite.controller.CreateRemoveTargetRequest(suite.ctx, suite.alice, project.Name, "standard", "obsolete")
	suite.Require().NoError(err)
	suite.Equal(uint(7), request.ID)
}

func (suite *ControllerSuite) TestListRequests() {
	project := &types.Project{ID: 4, Name: "devel:tools"}
	suite.store.EXPECT().GetProject(suite.ctx, project.Name).Return(project, nil).Times(2)

	_, err := suite.controller.ListRequests(suite.ctx, project.Name, "merge", "")
	suite.ErrorIs(err, ErrInvalidRequest)

	suite.store.EXPECT().ListRequests(suite.ctx, &store.ListRequestsQuery{
		Project: project.Name,
		Types:   []types.RequestActionType{types.RequestActionTypeSubmit},
		States:  []types.RequestState{types.RequestStateNew},
	}).Return([]*types.BsRequest{{ID: 1}}, nil)

	requests, err := suite.controller.ListRequests(suite.ctx, project.Name, "submit", "new")
	suite.Require().NoError(err)
	suite.Len(requests, 1)
}

func (suite *ControllerSuite) TestEditComment() {
	pkg := &types.Package{ID: 11, ProjectID: 4, Name: "vim"}

	suite.store.EXPECT().GetPackage(suite.ctx, "devel:tools", "vim").Return(pkg, nil).Times(2)
	suite.store.EXPECT().UserHasRole(suite.ctx, &store.UserHasRoleQuery{
		UserID:    suite.alice.ID,
		ProjectID: 4,
		PackageID: &pkg.ID,
		Roles:     []types.RoleTitle{types.RoleMaintainer},
	}).Return(false, nil)

	_, err := suite.controller.EditComment(suite.ctx, suite.alice, "devel:tools", "vim", "broken again")
	suite.ErrorIs(err, ErrForbidden)
	suite.Contains(err.Error(), "can't create attributes")

	suite.store.EXPECT().SetPackageAttribute(suite.ctx, &store.SetPackageAttributeQuery{
		Namespace: types.AttribNamespaceOBS,
		Name:      types.AttribFailComment,
		PackageID: 11,
		Value:     "broken again",
	}).Return(nil)

	text, err := suite.controller.EditComment(suite.ctx, suite.admin, "devel:tools", "vim", "broken again")
	suite.Require().NoError(err)
	suite.Equal("broken again", text)
}

func (suite *ControllerSuite) TestClearFailedComment() {
	suite.store.EXPECT().GetPackage(suite.ctx, "devel:tools", "vim").Return(&types.Package{ID: 11, ProjectID: 4}, nil)
	suite.store.EXPECT().GetPackage(suite.ctx, "devel:tools", "emacs").Return(&types.Package{ID: 12, ProjectID: 4}, nil)
	suite.backend.EXPECT().DeleteAttribute(suite.ctx, "devel:tools", "vim", "OBS:ProjectStatusPackageFailComment").Return(nil)
	suite.backend.EXPECT().DeleteAttribute(suite.ctx, "devel:tools", "emacs", "OBS:ProjectStatusPackageFailComment").Return(nil)
	suite.store.EXPECT().DeletePackageAttribute(suite.ctx, types.AttribNamespaceOBS, types.AttribFailComment, uint(11)).Return(nil)
	suite.store.EXPECT().DeletePackageAttribute(suite.ctx, types.AttribNamespaceOBS, types.AttribFailComment, uint(12)).Return(nil)

	err := suite.controller.ClearFailedComment(suite.ctx, suite.alice, "devel:tools", []string{"vim", "emacs"})
	suite.Require().NoError(err)
}

func (suite *ControllerSuite) TestClearFailedCommentForbidden() {
	suite.ErrorIs(suite.controller.ClearFailedComment(suite.ctx, suite.alice, "devel:tools", nil), ErrInvalidRequest)

	suite.store.EXPECT().GetPackage(suite.ctx, "devel:tools", "vim").Return(&types.Package{ID: 11, ProjectID: 4}, nil)
	suite.backend.EXPECT().DeleteAttribute(suite.ctx, "devel:tools", "vim", gomock.Any()).
		Return(&backend.Error{StatusCode: 403, Code: "change_attribute_no_permission", Summary: "no permission to modify attribute"})

	err := suite.controller.ClearFailedComment(suite.ctx, suite.alice, "devel:tools", []string{"vim", "emacs"})
	suite.ErrorIs(err, ErrForbidden)
	suite.Contains(err.Error(), "no permission to modify attribute")
}

func (suite *ControllerSuite) TestMaintainedProjects() {
	maintenance := &types.Project{ID: 10, Name: "openSUSE:Maintenance", Kind: types.ProjectKindMaintenance}
	leap := &types.Project{ID: 20, Name: "openSUSE:Leap:15.6"}

	suite.store.EXPECT().GetProject(suite.ctx, leap.Name).Return(leap, nil)
	_, err := suite.controller.MaintainedProjects(suite.ctx, leap.Name)
	suite.ErrorIs(err, ErrInvalidRequest)

	suite.store.EXPECT().GetProject(suite.ctx, maintenance.Name).Return(maintenance, nil).Times(3)
	suite.store.EXPECT().GetProject(suite.ctx, leap.Name).Return(leap, nil).Times(2)
	suite.store.EXPECT().AddMaintainedProject(suite.ctx, uint(10), uint(20)).Return(nil)
	suite.expectNotify(maintenance.Name)
	suite.Require().NoError(suite.controller.AddMaintainedProject(suite.ctx, suite.admin, maintenance.Name, leap.Name))

	suite.store.EXPECT().ListMaintainedProjects(suite.ctx, uint(10)).Return([]string{leap.Name}, nil)
	names, err := suite.controller.MaintainedProjects(suite.ctx, maintenance.Name)
	suite.Require().NoError(err)
	suite.Equal([]string{leap.Name}, names)

	suite.store.EXPECT().RemoveMaintainedProject(suite.ctx, uint(10), uint(20)).Return(store.ErrNotFound)
	err = suite.controller.RemoveMaintainedProject(suite.ctx, suite.admin, maintenance.Name, leap.Name)
	suite.ErrorIs(err, ErrNotFound)

	err = suite.controller.AddMaintainedProject(suite.ctx, suite.admin, maintenance.Name, "")
	suite.ErrorIs(err, ErrInvalidRequest)
}

func (suite *ControllerSuite) TestMonitorUnknownProject() {
	project := &types.Project{ID: 2, Name: "openSUSE:Factory"}
	suite.store.EXPECT().GetProject(suite.ctx, project.Name).Return(project, nil)
	suite.backend.EXPECT().GetBuildResults(suite.ctx, project.Name, gomock.Any()).Return(nil, &backend.Error{StatusCode: 404})

	_, err := suite.controller.Monitor(suite.ctx, project.Name, url.Values{})
	suite.ErrorIs(err, ErrNotFound)
}

func (suite *ControllerSuite) TestPackageBuildresultIgnoresBackendErrors() {
	suite.backend.EXPECT().GetBuildResults(suite.ctx, "devel:tools", &backend.BuildResultOptions{
		View:      "status",
		Package:   "vim",
		LastBuild: true,
	}).Return(nil, &backend.Error{StatusCode: 400, Summary: "unknown package"})

	result, err := suite.controller.PackageBuildresult(suite.ctx, "devel:tools", "vim")
	suite.Require().NoError(err)
	suite.Equal("vim", result.Package)
	suite.Empty(result.Statuses)
}
