package controller

import (
	"context"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Artox/open-build-service/api/pkg/backend"
	"github.com/Artox/open-build-service/api/pkg/diststats"
	"github.com/Artox/open-build-service/api/pkg/store"
	"github.com/Artox/open-build-service/api/pkg/types"
)

func repoArchs(names ...string) []*types.RepositoryArchitecture {
	entries := make([]*types.RepositoryArchitecture, 0, len(names))
	for i, name := range names {
		entries = append(entries, &types.RepositoryArchitecture{
			ArchitectureID: uint(i + 1),
			Architecture:   &types.Architecture{ID: uint(i + 1), Name: name},
			Position:       i,
		})
	}
	return entries
}

func pathTo(project, repository string) *types.PathElement {
	return &types.PathElement{LinkedRepository: &types.Repository{
		Name:    repository,
		Project: &types.Project{Name: project},
	}}
}

func TestEffectiveFlag(t *testing.T) {
	pkgID := uint(3)
	flags := []*types.Flag{
		{Type: types.FlagTypeBuild, Status: types.FlagStatusDisable},
		{Type: types.FlagTypeBuild, Status: types.FlagStatusEnable, Repository: "standard"},
		{Type: types.FlagTypeBuild, Status: types.FlagStatusDisable, Repository: "standard", Architecture: "i586"},
		{Type: types.FlagTypeBuild, Status: types.FlagStatusEnable, Architecture: "aarch64"},
		{Type: types.FlagTypeBuild, Status: types.FlagStatusDisable, Repository: "standard", Architecture: "x86_64", PackageID: &pkgID},
		{Type: types.FlagTypeDebugInfo, Status: types.FlagStatusEnable, Architecture: "x86_64"},
	}

	tests := []struct {
		flagType   types.FlagType
		repository string
		arch       string
		want       types.FlagStatus
	}{
		{types.FlagTypeBuild, "standard", "i586", types.FlagStatusDisable},
		{types.FlagTypeBuild, "standard", "x86_64", types.FlagStatusEnable},
		{types.FlagTypeBuild, "standard", "aarch64", types.FlagStatusEnable},
		{types.FlagTypeBuild, "other", "aarch64", types.FlagStatusEnable},
		{types.FlagTypeBuild, "other", "x86_64", types.FlagStatusDisable},
		{types.FlagTypeBuild, "", "", types.FlagStatusDisable},
		{types.FlagTypeDebugInfo, "other", "ppc64le", types.FlagStatusDisable},
		{types.FlagTypeDebugInfo, "other", "x86_64", types.FlagStatusEnable},
		{types.FlagTypePublish, "standard", "x86_64", types.FlagStatusEnable},
		{types.FlagTypeUseForBuild, "", "", types.FlagStatusEnable},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s/%s", tt.flagType, tt.repository, tt.arch), func(t *testing.T) {
			assert.Equal(t, tt.want, effectiveFlag(flags, tt.flagType, tt.repository, tt.arch))
		})
	}
}

func TestExpandFlags(t *testing.T) {
	project := &types.Project{
		Repositories: []*types.Repository{
			{Name: "standard", Architectures: repoArchs("x86_64", "i586")},
			{Name: "ports", Architectures: repoArchs("aarch64")},
		},
		Flags: []*types.Flag{
			{Type: types.FlagTypePublish, Status: types.FlagStatusDisable, Repository: "ports"},
		},
	}

	flags := expandFlags(project, []types.FlagType{types.FlagTypePublish})
	assert.Len(t, flags, 1)
	publish := flags[types.FlagTypePublish]
	assert.Equal(t, map[string]types.FlagStatus{
		"":        types.FlagStatusEnable,
		"aarch64": types.FlagStatusEnable,
		"i586":    types.FlagStatusEnable,
		"x86_64":  types.FlagStatusEnable,
	}, publish[""])
	assert.Equal(t, types.FlagStatusEnable, publish["standard"]["x86_64"])
	assert.Equal(t, map[string]types.FlagStatus{
		"":        types.FlagStatusDisable,
		"aarch64": types.FlagStatusDisable,
	}, publish["ports"])
}

func TestValidTargetName(t *testing.T) {
	assert.True(t, ValidTargetName("openSUSE_Tumbleweed"))
	assert.True(t, ValidTargetName("SLE-15.6&backports"))
	assert.False(t, ValidTargetName("-standard"))
	assert.False(t, ValidTargetName("images/x86"))
	assert.False(t, ValidTargetName(""))
}

func (suite *ControllerSuite) TestRepositoriesOfRemoteProject() {
	suite.store.EXPECT().GetProject(suite.ctx, "openSUSE.org").
		Return(&types.Project{ID: 1, Name: "openSUSE.org", RemoteURL: "https://api.opensuse.org/public"}, nil)

	_, err := suite.controller.Repositories(suite.ctx, "openSUSE.org")
	suite.ErrorIs(err, ErrInvalidRequest)
}

func (suite *ControllerSuite) TestEditRepository() {
	project := &types.Project{ID: 1, Name: "devel:tools", Repositories: []*types.Repository{
		{Name: "standard", Architectures: repoArchs("x86_64", "sparc")},
	}}
	suite.store.EXPECT().GetProject(suite.ctx, project.Name).Return(project, nil)
	suite.store.EXPECT().ListArchitectures(suite.ctx, true).
		Return([]*types.Architecture{{Name: "x86_64"}, {Name: "aarch64"}}, nil)

	result, err := suite.controller.EditRepository(suite.ctx, project.Name, "standard")
	suite.Require().NoError(err)
	suite.Equal(map[string]bool{"x86_64": true, "aarch64": false, "sparc": true}, result.Archs)
}

func (suite *ControllerSuite) TestUpdateTargetUnknownArchitecture() {
	project := &types.Project{ID: 1, Name: "devel:tools", Repositories: []*types.Repository{{Name: "standard"}}}
	suite.store.EXPECT().GetProject(suite.ctx, project.Name).Return(project, nil)
	suite.store.EXPECT().GetArchitecturesByName(suite.ctx, []string{"vax"}).
		Return(nil, fmt.Errorf("%w: architecture vax", store.ErrNotFound))

	_, err := suite.controller.UpdateTarget(suite.ctx, suite.admin, project.Name, "standard", []string{"vax"})
	suite.ErrorIs(err, ErrInvalidRequest)
}

func (suite *ControllerSuite) TestAddImagesRepository() {
	project := &types.Project{ID: 1, Name: "home:alice"}
	factory := &types.Project{ID: 2, Name: "openSUSE:Factory", Repositories: []*types.Repository{{ID: 9, Name: "standard"}}}

	suite.store.EXPECT().GetProject(suite.ctx, project.Name).Return(project, nil).Times(2)
	suite.store.EXPECT().GetProject(suite.ctx, factory.Name).Return(factory, nil)
	suite.store.EXPECT().GetArchitecturesByName(suite.ctx, []string{"x86_64"}).
		Return([]*types.Architecture{{ID: 1, Name: "x86_64"}}, nil)
	suite.store.EXPECT().SaveRepository(suite.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, repo *types.Repository) (*types.Repository, error) {
			suite.Equal("images", repo.Name)
			suite.Equal(uint(1), repo.ProjectID)
			suite.Require().Len(repo.Paths, 1)
			suite.Equal(uint(9), repo.Paths[0].LinkedRepositoryID)
			suite.Equal([]string{"x86_64"}, repo.ArchitectureNames())
			return repo, nil
		})
	suite.backend.EXPECT().GetProjectConfig(suite.ctx, project.Name).Return([]byte("Macros:\n"), nil)
	suite.backend.EXPECT().PutProjectConfig(suite.ctx, project.Name, []byte(kiwiPrjconf+"Macros:\n")).Return(nil)
	suite.store.EXPECT().ListRelationships(suite.ctx, project.ID).Return(nil, nil)
	suite.backend.EXPECT().PutProjectMeta(suite.ctx, project.Name, gomock.Any()).Return(nil)
	suite.expectNotify(project.Name)

	err := suite.controller.AddRepositories(suite.ctx, suite.admin, project.Name, &types.AddRepositoriesRequest{
		TargetProject: "openSUSE:Factory",
		TargetRepo:    "standard",
		Repos:         []string{"images"},
		Archs:         []string{"x86_64"},
	})
	suite.Require().NoError(err)
}

func (suite *ControllerSuite) TestEnsureKiwiPrjconfKeepsType() {
	suite.backend.EXPECT().GetProjectConfig(suite.ctx, "home:alice").Return([]byte("Type: spec\n"), nil)
	suite.Require().NoError(suite.controller.ensureKiwiPrjconf(suite.ctx, "home:alice"))

	suite.backend.EXPECT().GetProjectConfig(suite.ctx, "home:bob").Return(nil, &backend.Error{StatusCode: 404})
	suite.backend.EXPECT().PutProjectConfig(suite.ctx, "home:bob", []byte(kiwiPrjconf)).Return(nil)
	suite.Require().NoError(suite.controller.ensureKiwiPrjconf(suite.ctx, "home:bob"))
}

func (suite *ControllerSuite) TestAddRepositoriesValidatesNamesFirst() {
	project := &types.Project{ID: 1, Name: "home:alice", Repositories: []*types.Repository{{Name: "standard"}}}

	err := suite.controller.AddRepositories(suite.ctx, suite.admin, project.Name, &types.AddRepositoriesRequest{})
	suite.ErrorIs(err, ErrInvalidRequest)

	suite.store.EXPECT().GetProject(suite.ctx, project.Name).Return(project, nil).Times(2)

	err = suite.controller.AddRepositories(suite.ctx, suite.admin, project.Name, &types.AddRepositoriesRequest{
		TargetProject: "openSUSE:Factory",
		TargetRepo:    "standard",
		Repos:         []string{"good", "bad/name"},
	})
	suite.ErrorIs(err, ErrInvalidRequest)
	suite.Contains(err.Error(), "bad/name")

	err = suite.controller.AddRepositories(suite.ctx, suite.admin, project.Name, &types.AddRepositoriesRequest{
		TargetProject: "openSUSE:Factory",
		TargetRepo:    "standard",
		Repos:         []string{"standard"},
	})
	suite.ErrorIs(err, ErrInvalidRequest)
	suite.Contains(err.Error(), "already exists")
}

func (suite *ControllerSuite) TestAddPathAlreadySet() {
	project := &types.Project{ID: 1, Name: "home:alice", Repositories: []*types.Repository{
		{Name: "standard", Paths: []*types.PathElement{pathTo("openSUSE:Factory", "standard")}},
	}}
	suite.store.EXPECT().GetProject(suite.ctx, project.Name).Return(project, nil)

	err := suite.controller.AddRepositories(suite.ctx, suite.admin, project.Name, &types.AddRepositoriesRequest{
		TargetProject: "openSUSE:Factory",
		TargetRepo:    "standard",
		ToRepository:  "standard",
	})
	suite.ErrorIs(err, ErrInvalidRequest)
	suite.Contains(err.Error(), "already set")
}

func (suite *ControllerSuite) TestMovePath() {
	repo := &types.Repository{ID: 3, Name: "standard", Paths: []*types.PathElement{
		pathTo("A", "standard"), pathTo("B", "standard"), pathTo("C", "standard"),
	}}
	project := &types.Project{ID: 1, Name: "home:alice", Repositories: []*types.Repository{repo}}

	suite.store.EXPECT().GetProject(suite.ctx, project.Name).Return(project, nil).Times(2)
	suite.store.EXPECT().SaveRepository(suite.ctx, repo).DoAndReturn(
		func(_ context.Context, r *types.Repository) (*types.Repository, error) {
			order := make([]string, 0, len(r.Paths))
			for _, p := range r.Paths {
				order = append(order, p.LinkedRepository.Project.Name)
			}
			suite.Equal([]string{"B", "A", "C"}, order)
			return r, nil
		})
	suite.store.EXPECT().ListRelationships(suite.ctx, project.ID).Return(nil, nil)
	suite.backend.EXPECT().PutProjectMeta(suite.ctx, project.Name, gomock.Any()).Return(nil)
	suite.expectNotify(project.Name)

	err := suite.controller.MovePath(suite.ctx, suite.admin, project.Name, "standard", "B", "standard", types.PathDirectionUp)
	suite.Require().NoError(err)
}

func (suite *ControllerSuite) TestMovePathInvalid() {
	err := suite.controller.MovePath(suite.ctx, suite.admin, "home:alice", "standard", "B", "standard", "sideways")
	suite.ErrorIs(err, ErrInvalidRequest)

	project := &types.Project{ID: 1, Name: "home:alice", Repositories: []*types.Repository{{Name: "standard"}}}
	suite.store.EXPECT().GetProject(suite.ctx, project.Name).Return(project, nil)
	err = suite.controller.RemovePath(suite.ctx, suite.admin, project.Name, "standard", "B", "standard")
	suite.ErrorIs(err, ErrNotFound)
}

func (suite *ControllerSuite) TestRemoveTarget() {
	project := &types.Project{ID: 1, Name: "home:alice", Repositories: []*types.Repository{{ID: 3, Name: "standard"}}}

	suite.ErrorIs(suite.controller.RemoveTarget(suite.ctx, suite.admin, project.Name, ""), ErrInvalidRequest)

	suite.store.EXPECT().GetProject(suite.ctx, project.Name).Return(project, nil).Times(2)
	suite.store.EXPECT().DeleteRepository(suite.ctx, uint(3)).Return(nil)
	suite.store.EXPECT().ListRelationships(suite.ctx, project.ID).Return(nil, nil)
	suite.backend.EXPECT().PutProjectMeta(suite.ctx, project.Name, gomock.Any()).Return(nil)
	suite.expectNotify(project.Name)

	suite.Require().NoError(suite.controller.RemoveTarget(suite.ctx, suite.admin, project.Name, "standard"))
}

func (suite *ControllerSuite) TestReleaseRepository() {
	project := &types.Project{ID: 1, Name: "openSUSE:Maintenance:1", Repositories: []*types.Repository{{Name: "standard"}}}
	suite.store.EXPECT().GetProject(suite.ctx, project.Name).Return(project, nil)
	suite.backend.EXPECT().SourceCommand(suite.ctx, project.Name, "release", url.Values{
		"repository": {"standard"},
		"target":     {"openSUSE:Updates/update"},
	}).Return(&backend.Status{Code: "ok"}, nil)

	err := suite.controller.ReleaseRepository(suite.ctx, suite.admin, project.Name, "standard", "openSUSE:Updates/update")
	suite.Require().NoError(err)
}

func (suite *ControllerSuite) TestChangeFlag() {
	name := "devel:tools"
	repos := []*types.Repository{{Name: "standard", Architectures: repoArchs("x86_64")}}
	flag := &types.Flag{ProjectID: 4, Type: types.FlagTypeBuild, Status: types.FlagStatusDisable, Repository: "standard"}

	suite.store.EXPECT().GetProject(suite.ctx, name).Return(&types.Project{ID: 4, Name: name, Repositories: repos}, nil)
	suite.backend.EXPECT().SourceCommand(suite.ctx, name, "set_flag", url.Values{
		"flag":       {"build"},
		"repository": {"standard"},
		"status":     {"disable"},
	}).Return(&backend.Status{Code: "ok"}, nil)
	suite.store.EXPECT().SetFlag(suite.ctx, flag).Return(nil)
	suite.expectNotify(name)
	suite.store.EXPECT().GetProject(suite.ctx, name).
		Return(&types.Project{ID: 4, Name: name, Repositories: repos, Flags: []*types.Flag{flag}}, nil)

	flags, err := suite.controller.ChangeFlag(suite.ctx, suite.admin, name, &types.ChangeFlagRequest{
		Command:    "set_flag",
		Flag:       types.FlagTypeBuild,
		Status:     types.FlagStatusDisable,
		Repository: "standard",
	})
	suite.Require().NoError(err)
	suite.Equal(types.FlagStatusDisable, flags[types.FlagTypeBuild]["standard"][""])
	suite.Equal(types.FlagStatusDisable, flags[types.FlagTypeBuild]["standard"]["x86_64"])
	suite.Equal(types.FlagStatusEnable, flags[types.FlagTypeBuild][""][""])
	suite.NotContains(flags, types.FlagTypePublish)
}

func (suite *ControllerSuite) TestChangeFlagInvalid() {
	_, err := suite.controller.ChangeFlag(suite.ctx, suite.admin, "devel:tools", &types.ChangeFlagRequest{Command: "toggle", Flag: types.FlagTypeBuild})
	suite.ErrorIs(err, ErrInvalidRequest)

	_, err = suite.controller.ChangeFlag(suite.ctx, suite.admin, "devel:tools", &types.ChangeFlagRequest{Command: "set_flag", Flag: "colour"})
	suite.ErrorIs(err, ErrInvalidRequest)

	_, err = suite.controller.ChangeFlag(suite.ctx, suite.admin, "devel:tools", &types.ChangeFlagRequest{Command: "set_flag", Flag: types.FlagTypeBuild, Status: "maybe"})
	suite.ErrorIs(err, ErrInvalidRequest)
}

func (suite *ControllerSuite) TestRemoveFlag() {
	name := "devel:tools"
	project := &types.Project{ID: 4, Name: name}

	suite.store.EXPECT().GetProject(suite.ctx, name).Return(project, nil).Times(2)
	suite.backend.EXPECT().SourceCommand(suite.ctx, name, "remove_flag", url.Values{
		"flag": {"publish"},
		"arch": {"i586"},
	}).Return(&backend.Status{Code: "ok"}, nil)
	suite.store.EXPECT().RemoveFlag(suite.ctx, uint(4), types.FlagTypePublish, "", "i586").Return(nil)
	suite.expectNotify(name)

	flags, err := suite.controller.ChangeFlag(suite.ctx, suite.admin, name, &types.ChangeFlagRequest{
		Command: "remove_flag",
		Flag:    types.FlagTypePublish,
		Arch:    "i586",
	})
	suite.Require().NoError(err)
	suite.Equal(types.FlagStatusEnable, flags[types.FlagTypePublish][""][""])
}

func (suite *ControllerSuite) TestRebuildTimeWithoutResult() {
	name := "openSUSE:Factory"
	deps := &backend.BuilddepInfo{Raw: []byte("<builddepinfo/>")}
	jobs := &backend.JobHistoryList{Raw: []byte("<jobhistlist/>")}

	suite.store.EXPECT().GetProject(suite.ctx, name).Return(&types.Project{ID: 2, Name: name}, nil)
	suite.store.EXPECT().ListPackages(suite.ctx, &store.ListPackagesQuery{ProjectID: 2}).
		Return([]*types.Package{{Name: "bash"}, {Name: "vim"}}, nil)
	suite.backend.EXPECT().GetBuilddepInfo(gomock.Any(), name, "standard", "x86_64", "").Return(deps, nil)
	suite.backend.EXPECT().GetJobHistory(gomock.Any(), name, "standard", "x86_64", &backend.JobHistoryOptions{
		Limit: 6,
		Codes: []string{"succeeded", "unchanged"},
	}).Return(jobs, nil)
	suite.diststats.EXPECT().RebuildTime(suite.ctx, diststats.Options{
		Project:    name,
		Repository: "standard",
		Arch:       "x86_64",
		Hosts:      diststats.DefaultHosts,
		Scheduler:  diststats.DefaultScheduler,
	}, deps.Raw, jobs.Raw).Return(nil, fmt.Errorf("%w: exit status 1", diststats.ErrNoResult))

	result, err := suite.controller.RebuildTime(suite.ctx, name, "standard", "x86_64", "", "")
	suite.Require().NoError(err)
	suite.Equal(diststats.DefaultHosts, result.Hosts)
	suite.Equal(diststats.DefaultScheduler, result.Scheduler)
	suite.Empty(result.Timings)
	suite.Empty(result.LongestPath)
	suite.Empty(result.PNGKey)
}

func (suite *ControllerSuite) TestRebuildTimeBackendFailure() {
	name := "openSUSE:Factory"

	suite.store.EXPECT().GetProject(suite.ctx, name).Return(&types.Project{ID: 2, Name: name}, nil)
	suite.store.EXPECT().ListPackages(suite.ctx, gomock.Any()).Return(nil, nil)
	suite.backend.EXPECT().GetBuilddepInfo(gomock.Any(), name, "standard", "x86_64", "").Return(nil, &backend.Error{StatusCode: 500})
	suite.backend.EXPECT().GetJobHistory(gomock.Any(), name, "standard", "x86_64", gomock.Any()).Return(&backend.JobHistoryList{}, nil).AnyTimes()

	_, err := suite.controller.RebuildTime(suite.ctx, name, "standard", "x86_64", "10", "fifo")
	suite.Require().Error(err)
	suite.Contains(err.Error(), "could not collect infos")
}

func (suite *ControllerSuite) TestRebuildTimeInvalidScheduler() {
	_, err := suite.controller.RebuildTime(suite.ctx, "openSUSE:Factory", "standard", "x86_64", "", "bogus")
	suite.ErrorIs(err, ErrInvalidRequest)
	suite.ErrorIs(err, diststats.ErrInvalidScheduler)

	_, err = suite.controller.RebuildTime(suite.ctx, "openSUSE:Factory", "", "x86_64", "", "")
	suite.ErrorIs(err, ErrInvalidRequest)
}

func (suite *ControllerSuite) TestRebuildTimePNG() {
	suite.diststats.EXPECT().PNG("abc").Return([]byte("png"), true)
	png, err := suite.controller.RebuildTimePNG("abc")
	suite.Require().NoError(err)
	suite.Equal([]byte("png"), png)

	suite.diststats.EXPECT().PNG("gone").Return(nil, false)
	_, err = suite.controller.RebuildTimePNG("gone")
	suite.ErrorIs(err, ErrNotFound)
}

func (suite *ControllerSuite) TestRepositoryStateRequiresRepository() {
	_, err := suite.controller.RepositoryState(suite.ctx, "openSUSE:Factory", "")
	suite.ErrorIs(err, ErrInvalidRequest)
}

func (suite *ControllerSuite) TestDefaultDistributions() {
	suite.store.EXPECT().ListDistributions(suite.ctx).Return([]*types.Distribution{
		{Vendor: "openSUSE", Name: "openSUSE Tumbleweed"},
		{Vendor: "Fedora", Name: "Fedora 40"},
		{Vendor: "openSUSE", Name: "openSUSE Leap 15.6"},
	}, nil)

	vendors, err := suite.controller.DefaultDistributions(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(vendors, 2)
	suite.Equal("openSUSE", vendors[0].Vendor)
	suite.Len(vendors[0].Distributions, 2)
	suite.Equal("Fedora", vendors[1].Vendor)
}
