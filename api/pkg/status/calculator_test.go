package status

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Artox/open-build-service/api/pkg/backend"
	"github.com/Artox/open-build-service/api/pkg/store"
	"github.com/Artox/open-build-service/api/pkg/types"
)

func TestCalculatorSuite(t *testing.T) {
	suite.Run(t, new(CalculatorSuite))
}

type CalculatorSuite struct {
	suite.Suite
	ctx        context.Context
	ctrl       *gomock.Controller
	store      *store.MockStore
	backend    *backend.MockClient
	calculator *Calculator
}

func (suite *CalculatorSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.ctrl = gomock.NewController(suite.T())
	suite.store = store.NewMockStore(suite.ctrl)
	suite.backend = backend.NewMockClient(suite.ctrl)
	suite.calculator = NewCalculator(suite.store, suite.backend, 4)
}

func factory() *types.Project {
	return &types.Project{
		ID:   1,
		Name: "openSUSE:Factory",
		Repositories: []*types.Repository{{
			Name: "standard",
			Architectures: []*types.RepositoryArchitecture{
				{Architecture: &types.Architecture{Name: "x86_64"}},
				{Architecture: &types.Architecture{Name: "i586"}},
			},
		}},
	}
}

func (suite *CalculatorSuite) TestCalculate() {
	develID := uint(11)
	suite.store.EXPECT().GetProject(suite.ctx, "openSUSE:Factory").Return(factory(), nil)
	suite.store.EXPECT().ListPackages(suite.ctx, &store.ListPackagesQuery{ProjectID: 1}).Return([]*types.Package{
		{
			ID:             1,
			Name:           "gcc",
			DevelPackageID: &develID,
			DevelPackage: &types.Package{
				ID:      develID,
				Name:    "gcc",
				Project: &types.Project{Name: "devel:gcc"},
			},
		},
		{ID: 2, Name: "vim"},
		{ID: 3, Name: "ocaml"},
	}, nil)

	suite.backend.EXPECT().GetSourceInfo(gomock.Any(), "openSUSE:Factory", nil).Return(&backend.SourceInfoList{
		SourceInfos: []backend.SourceInfo{
			{Package: "gcc", SrcMD5: "s1", VerifyMD5: "v1", ChangesMD5: "c1", MaxMTime: 10, Version: "13.2"},
			{Package: "vim", VerifyMD5: "v2", Version: "9.1", Linked: []backend.LinkedInfo{{Project: "openSUSE:Factory", Package: "vim-base"}}},
			{Package: "vim-base", VerifyMD5: "v2-base"},
			{Package: "ocaml", VerifyMD5: "v3", Linked: []backend.LinkedInfo{{Project: "openSUSE:13.1", Package: "ocaml"}}},
		},
	}, nil)
	suite.backend.EXPECT().GetJobHistory(gomock.Any(), "openSUSE:Factory", "standard", "x86_64", &backend.JobHistoryOptions{Codes: []string{"lastfailures"}}).
		Return(&backend.JobHistoryList{Entries: []backend.JobHistory{
			{Package: "gcc", ReadyTime: 100, VerifyMD5: "v1"},
		}}, nil)
	suite.backend.EXPECT().GetJobHistory(gomock.Any(), "openSUSE:Factory", "standard", "i586", gomock.Any()).
		Return(nil, errors.New("scheduler down"))
	suite.backend.EXPECT().GetSourceInfo(gomock.Any(), "devel:gcc", []string{"gcc"}).Return(&backend.SourceInfoList{
		SourceInfos: []backend.SourceInfo{
			{Package: "gcc", VerifyMD5: "dv1", ChangesMD5: "dc1", MaxMTime: 20, Error: "broken link"},
		},
	}, nil)
	suite.backend.EXPECT().GetSourceInfo(gomock.Any(), "openSUSE:13.1", []string{"ocaml"}).
		Return(nil, &backend.Error{StatusCode: 404, Code: "unknown_project"})

	snapshot, err := suite.calculator.Calculate(suite.ctx, "openSUSE:Factory")
	suite.Require().NoError(err)
	suite.Require().Len(snapshot, 3)

	gcc := snapshot[1]
	suite.Equal("gcc", gcc.Name)
	suite.Equal("openSUSE:Factory", gcc.Project)
	suite.Equal("v1", gcc.VerifyMD5)
	suite.Equal("c1", gcc.ChangesMD5)
	suite.Equal("13.2", gcc.Version)
	suite.Equal([]types.PackageFail{{Repository: "standard", Architecture: "x86_64", Time: 100, MD5: "v1"}}, gcc.Fails)
	suite.Nil(gcc.LinksTo)
	suite.Equal(&types.PackageRef{
		PackageID:  11,
		Project:    "devel:gcc",
		Name:       "gcc",
		VerifyMD5:  "dv1",
		ChangesMD5: "dc1",
		MaxMTime:   20,
		Error:      "broken link",
	}, gcc.DevelPack)

	vim := snapshot[2]
	suite.Empty(vim.Fails)
	suite.Nil(vim.DevelPack)
	suite.Equal(&types.PackageRef{Project: "openSUSE:Factory", Name: "vim-base", VerifyMD5: "v2-base"}, vim.LinksTo)

	ocaml := snapshot[3]
	suite.Equal(&types.PackageRef{Project: "openSUSE:13.1", Name: "ocaml"}, ocaml.LinksTo)
}

func (suite *CalculatorSuite) TestSourceInfoFailure() {
	suite.store.EXPECT().GetProject(suite.ctx, "openSUSE:Factory").Return(&types.Project{ID: 1, Name: "openSUSE:Factory"}, nil)
	suite.store.EXPECT().ListPackages(suite.ctx, gomock.Any()).Return(nil, nil)
	suite.backend.EXPECT().GetSourceInfo(gomock.Any(), "openSUSE:Factory", nil).Return(nil, errors.New("backend down"))

	_, err := suite.calculator.Calculate(suite.ctx, "openSUSE:Factory")
	suite.ErrorContains(err, "backend down")
}

func (suite *CalculatorSuite) TestUnknownProject() {
	suite.store.EXPECT().GetProject(suite.ctx, "nope").Return(nil, store.ErrNotFound)

	_, err := suite.calculator.Calculate(suite.ctx, "nope")
	suite.ErrorIs(err, store.ErrNotFound)
}
