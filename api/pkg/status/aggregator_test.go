package status

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Artox/open-build-service/api/pkg/backend"
	"github.com/Artox/open-build-service/api/pkg/config"
	"github.com/Artox/open-build-service/api/pkg/store"
	"github.com/Artox/open-build-service/api/pkg/types"
)

const testProject = "openSUSE:Factory"

func TestAggregatorSuite(t *testing.T) {
	suite.Run(t, new(AggregatorSuite))
}

type AggregatorSuite struct {
	suite.Suite
	ctx        context.Context
	ctrl       *gomock.Controller
	store      *store.MockStore
	backend    *backend.MockClient
	aggregator *Aggregator
}

func (suite *AggregatorSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.ctrl = gomock.NewController(suite.T())
	suite.store = store.NewMockStore(suite.ctrl)
	suite.backend = backend.NewMockClient(suite.ctrl)

	aggregator, err := NewAggregator(config.Status{
		CacheTTL:    5 * time.Minute,
		RevCacheTTL: time.Hour,
		Concurrency: 2,
	}, suite.store, suite.backend)
	suite.Require().NoError(err)
	suite.aggregator = aggregator
}

func (suite *AggregatorSuite) TearDownTest() {
	suite.aggregator.Close()
}

func (suite *AggregatorSuite) seed(packages ...*types.PackageStatus) {
	snapshot := types.StatusSnapshot{}
	for _, p := range packages {
		p.Project = testProject
		snapshot[p.PackageID] = p
	}
	suite.aggregator.snapshots.SetWithTTL(snapshotKey(testProject), snapshot, 1, 0)
	suite.aggregator.snapshots.Wait()
}

// expectLookups sets up the per request queries. Versions are only looked up when asked for.
func (suite *AggregatorSuite) expectLookups(comments map[uint]string, versions, urls map[uint]string, targets []*types.RequestTarget) {
	suite.store.EXPECT().ListAttribValues(suite.ctx, gomock.Cond(func(q any) bool {
		return q.(*store.ListAttribValuesQuery).Name == types.AttribFailComment
	})).Return(comments, nil).Times(1)
	if versions != nil {
		suite.store.EXPECT().ListAttribValues(suite.ctx, gomock.Cond(func(q any) bool {
			return q.(*store.ListAttribValuesQuery).Name == types.AttribUpstreamVersion
		})).Return(versions, nil).Times(1)
		suite.store.EXPECT().ListAttribValues(suite.ctx, gomock.Cond(func(q any) bool {
			return q.(*store.ListAttribValuesQuery).Name == types.AttribUpstreamTarballURL
		})).Return(urls, nil).Times(1)
	}
	suite.store.EXPECT().ListSubmitRequestTargets(suite.ctx, nil, requestStates).Return(targets, nil).Times(1)
}

func noVersions() types.StatusFilter {
	return types.StatusFilter{Devel: types.DevelFilter{All: true}, LimitToFails: true}
}

func (suite *AggregatorSuite) TestFirstFailIgnoresStaleSources() {
	suite.seed(&types.PackageStatus{
		PackageID: 1,
		Name:      "gcc",
		VerifyMD5: "abc123",
		Fails: []types.PackageFail{
			{Repository: "standard", Architecture: "i586", Time: 50, MD5: "old999"},
			{Repository: "standard", Architecture: "x86_64", Time: 100, MD5: "abc123"},
			{Repository: "ports", Architecture: "aarch64", Time: 200, MD5: "old999"},
		},
	})
	suite.expectLookups(map[uint]string{}, nil, nil, nil)

	result, err := suite.aggregator.Status(suite.ctx, testProject, noVersions())
	suite.Require().NoError(err)
	suite.Require().Len(result.Packages, 1)

	pkg := result.Packages[0]
	suite.Require().NotNil(pkg.FirstFail)
	suite.Equal(int64(100), *pkg.FirstFail)
	suite.Equal("x86_64", pkg.FailedArch)
	suite.Equal("standard", pkg.FailedRepo)
	suite.Equal("abc123", pkg.MD5)
}

func (suite *AggregatorSuite) TestLimitToFails() {
	suite.seed(
		&types.PackageStatus{
			PackageID: 1,
			Name:      "stale",
			VerifyMD5: "new",
			Fails:     []types.PackageFail{{Repository: "standard", Architecture: "x86_64", Time: 100, MD5: "old"}},
		},
		&types.PackageStatus{PackageID: 2, Name: "commented", VerifyMD5: "x"},
	)

	suite.expectLookups(map[uint]string{2: "known gcc 14 issue"}, nil, nil, nil)
	result, err := suite.aggregator.Status(suite.ctx, testProject, noVersions())
	suite.Require().NoError(err)
	suite.Empty(result.Packages)

	filter := noVersions()
	filter.LimitToFails = false
	suite.expectLookups(map[uint]string{2: "known gcc 14 issue"}, nil, nil, nil)
	result, err = suite.aggregator.Status(suite.ctx, testProject, filter)
	suite.Require().NoError(err)
	suite.Require().Len(result.Packages, 1)
	suite.Equal("commented", result.Packages[0].Name)
	suite.Equal("known gcc 14 issue", result.Packages[0].FailedComment)
	suite.Nil(result.Packages[0].FirstFail)
}

func (suite *AggregatorSuite) TestZeroTimeFailCounts() {
	suite.seed(&types.PackageStatus{
		PackageID: 1,
		Name:      "gcc",
		VerifyMD5: "abc",
		Fails:     []types.PackageFail{{Repository: "standard", Architecture: "x86_64", Time: 0, MD5: "abc"}},
	})
	suite.expectLookups(map[uint]string{}, nil, nil, nil)

	result, err := suite.aggregator.Status(suite.ctx, testProject, noVersions())
	suite.Require().NoError(err)
	suite.Require().Len(result.Packages, 1)
	suite.Require().NotNil(result.Packages[0].FirstFail)
	suite.Equal(int64(0), *result.Packages[0].FirstFail)
}

func develStatus() *types.PackageStatus {
	return &types.PackageStatus{
		PackageID:  1,
		Name:       "gcc",
		VerifyMD5:  "aaa",
		ChangesMD5: "c-aaa",
		DevelPack: &types.PackageRef{
			PackageID:  11,
			Project:    "devel:gcc",
			Name:       "gcc",
			VerifyMD5:  "bbb",
			ChangesMD5: "c-bbb",
			MaxMTime:   1234,
		},
	}
}

func declinedRequest(rev string) *types.BsRequest {
	return &types.BsRequest{
		ID:    7,
		State: types.RequestStateDeclined,
		Actions: []*types.BsRequestAction{
			{Type: types.RequestActionTypeSubmit, SourceProject: "other", SourcePackage: "gcc", SourceRev: rev},
			{Type: types.RequestActionTypeSubmit, SourceProject: "devel:gcc", SourcePackage: "gcc", SourceRev: rev},
		},
	}
}

func (suite *AggregatorSuite) TestCurrentlyDeclined() {
	suite.seed(develStatus())
	filter := noVersions()
	filter.LimitToFails = false

	targets := []*types.RequestTarget{
		{ID: 7, State: types.RequestStateDeclined, TargetProject: testProject, TargetPackage: "gcc"},
	}
	suite.store.EXPECT().ListRequestsByIDs(suite.ctx, []uint{7}).Return([]*types.BsRequest{declinedRequest("5")}, nil).Times(2)
	suite.backend.EXPECT().GetDirectory(suite.ctx, "devel:gcc", "gcc").Return(&backend.Directory{Name: "gcc", Rev: "5"}, nil).Times(1)

	for i := 0; i < 2; i++ {
		suite.expectLookups(map[uint]string{}, nil, nil, targets)
		result, err := suite.aggregator.Status(suite.ctx, testProject, filter)
		suite.Require().NoError(err)
		suite.Require().Len(result.Packages, 1)

		pkg := result.Packages[0]
		suite.Equal(uint(7), pkg.CurrentlyDeclined)
		suite.Equal([]string{types.ProblemCurrentlyDeclined}, pkg.Problems)
		suite.Equal("devel:gcc", pkg.DevelProject)
		suite.Equal("bbb", pkg.DevelMD5)
		suite.Equal(int64(1234), pkg.DevelMTime)
	}
}

func (suite *AggregatorSuite) TestDeclinedOlderRevision() {
	suite.seed(develStatus())
	filter := noVersions()
	filter.LimitToFails = false

	targets := []*types.RequestTarget{
		{ID: 7, State: types.RequestStateDeclined, TargetProject: testProject, TargetPackage: "gcc"},
	}
	suite.expectLookups(map[uint]string{}, nil, nil, targets)
	suite.store.EXPECT().ListRequestsByIDs(suite.ctx, []uint{7}).Return([]*types.BsRequest{declinedRequest("4")}, nil)
	suite.backend.EXPECT().GetDirectory(suite.ctx, "devel:gcc", "gcc").Return(&backend.Directory{Name: "gcc", Rev: "5"}, nil)

	result, err := suite.aggregator.Status(suite.ctx, testProject, filter)
	suite.Require().NoError(err)
	suite.Require().Len(result.Packages, 1)
	suite.Zero(result.Packages[0].CurrentlyDeclined)
	suite.Equal([]string{types.ProblemDifferentChanges}, result.Packages[0].Problems)
}

func (suite *AggregatorSuite) TestDifferentSources() {
	status := develStatus()
	status.DevelPack.ChangesMD5 = status.ChangesMD5
	suite.seed(status)
	filter := noVersions()
	filter.LimitToFails = false

	// declined requests into other projects are not ours
	suite.expectLookups(map[uint]string{}, nil, nil, []*types.RequestTarget{
		{ID: 8, State: types.RequestStateDeclined, TargetProject: "openSUSE:Leap", TargetPackage: "gcc"},
	})

	result, err := suite.aggregator.Status(suite.ctx, testProject, filter)
	suite.Require().NoError(err)
	suite.Require().Len(result.Packages, 1)
	suite.Equal([]string{types.ProblemDifferentSources}, result.Packages[0].Problems)
}

func (suite *AggregatorSuite) TestDevelErrorAndLink() {
	status := develStatus()
	status.DevelPack.VerifyMD5 = status.VerifyMD5
	status.DevelPack.Error = "broken link"
	status.LinksTo = &types.PackageRef{Project: "openSUSE:13.1", Name: "gcc-base", VerifyMD5: "zzz"}
	suite.seed(status)
	filter := noVersions()
	filter.LimitToFails = false

	suite.expectLookups(map[uint]string{}, nil, nil, nil)
	result, err := suite.aggregator.Status(suite.ctx, testProject, filter)
	suite.Require().NoError(err)
	suite.Require().Len(result.Packages, 1)

	pkg := result.Packages[0]
	suite.Equal([]string{"error-broken link", types.ProblemDiffAgainstLink}, pkg.Problems)
	suite.Equal("openSUSE:13.1", pkg.LinkProject)
	suite.Equal("gcc-base", pkg.LinkPackage)
}

func (suite *AggregatorSuite) TestRequests() {
	status := develStatus()
	status.DevelPack.VerifyMD5 = status.VerifyMD5
	suite.seed(status, &types.PackageStatus{PackageID: 2, Name: "vim", VerifyMD5: "v"})
	filter := noVersions()
	filter.LimitToFails = false

	targets := []*types.RequestTarget{
		{ID: 3, State: types.RequestStateNew, TargetProject: testProject, TargetPackage: "gcc"},
		{ID: 4, State: types.RequestStateReview, TargetProject: "devel:gcc", TargetPackage: "gcc"},
		{ID: 5, State: types.RequestStateNew, TargetProject: testProject, TargetPackage: "gcc"},
	}
	suite.expectLookups(map[uint]string{}, nil, nil, targets)
	result, err := suite.aggregator.Status(suite.ctx, testProject, filter)
	suite.Require().NoError(err)
	suite.Require().Len(result.Packages, 1)
	suite.Equal([]uint{3, 5}, result.Packages[0].RequestsFrom)
	suite.Equal([]uint{4}, result.Packages[0].RequestsTo)

	filter.IgnorePending = true
	suite.expectLookups(map[uint]string{}, nil, nil, targets)
	result, err = suite.aggregator.Status(suite.ctx, testProject, filter)
	suite.Require().NoError(err)
	suite.Empty(result.Packages)
}

func (suite *AggregatorSuite) TestUpstreamVersions() {
	suite.seed(
		&types.PackageStatus{PackageID: 1, Name: "older", Version: "1.2.0"},
		&types.PackageStatus{PackageID: 2, Name: "same", Version: "2.0"},
		&types.PackageStatus{PackageID: 3, Name: "garbage", Version: "not a version"},
		&types.PackageStatus{PackageID: 4, Name: "commented", Version: "1.0"},
	)
	filter := types.StatusFilter{Devel: types.DevelFilter{All: true}, IncludeVersions: true}
	versions := map[uint]string{1: "1.10.0", 2: "2.0", 3: "3.0"}
	urls := map[uint]string{1: "https://example.org/older-1.10.0.tar.gz"}

	suite.expectLookups(map[uint]string{4: "waiting for upstream"}, versions, urls, nil)
	result, err := suite.aggregator.Status(suite.ctx, testProject, filter)
	suite.Require().NoError(err)
	suite.Require().Len(result.Packages, 2)
	suite.Equal("commented", result.Packages[0].Name)
	suite.Empty(result.Packages[0].UpstreamVersion)
	suite.Equal("older", result.Packages[1].Name)
	suite.Equal("1.10.0", result.Packages[1].UpstreamVersion)
	suite.Equal("https://example.org/older-1.10.0.tar.gz", result.Packages[1].UpstreamURL)
	suite.Equal("1.2.0", result.Packages[1].Version)

	filter.IncludeVersions = false
	filter.LimitToOld = true
	suite.expectLookups(map[uint]string{4: "waiting for upstream"}, versions, urls, nil)
	result, err = suite.aggregator.Status(suite.ctx, testProject, filter)
	suite.Require().NoError(err)
	suite.Require().Len(result.Packages, 1)
	suite.Equal("older", result.Packages[0].Name)
}

func (suite *AggregatorSuite) TestDevelFilter() {
	withDevel := func(id uint, name, develProject string) *types.PackageStatus {
		return &types.PackageStatus{
			PackageID:     id,
			Name:          name,
			FailedComment: "",
			DevelPack:     &types.PackageRef{PackageID: id + 100, Project: develProject, Name: name},
		}
	}
	snapshot := []*types.PackageStatus{
		withDevel(1, "gcc", "devel:gcc"),
		withDevel(2, "vim", "editors"),
		withDevel(3, "emacs", "Editors:Extra"),
		{PackageID: 4, Name: "bash"},
	}
	comments := map[uint]string{1: "c", 2: "c", 3: "c", 4: "c"}
	filter := types.StatusFilter{}

	names := func(result *types.StatusResult) []string {
		var names []string
		for _, p := range result.Packages {
			names = append(names, p.Name)
		}
		return names
	}

	tests := []struct {
		devel types.DevelFilter
		want  []string
	}{
		{types.DevelFilter{All: true}, []string{"bash", "emacs", "gcc", "vim"}},
		{types.DevelFilter{}, []string{"bash", "emacs", "gcc", "vim"}},
		{types.DevelFilter{None: true}, []string{"bash"}},
		{types.DevelFilter{Project: "editors"}, []string{"vim"}},
		{types.DevelFilter{Project: "unknown"}, nil},
	}
	for _, tt := range tests {
		suite.seed(snapshot...)
		filter.Devel = tt.devel
		suite.expectLookups(comments, nil, nil, nil)

		result, err := suite.aggregator.Status(suite.ctx, testProject, filter)
		suite.Require().NoError(err)
		suite.Equal(tt.want, names(result), "filter %+v", tt.devel)
		suite.Equal([]string{"devel:gcc", "editors", "Editors:Extra"}, result.DevelProjects)
	}
}

func (suite *AggregatorSuite) TestFilterForUser() {
	suite.seed(
		&types.PackageStatus{PackageID: 1, Name: "gcc", DevelPack: &types.PackageRef{PackageID: 11, Project: "devel:gcc", Name: "gcc"}},
		&types.PackageStatus{PackageID: 2, Name: "vim"},
		&types.PackageStatus{PackageID: 3, Name: "bash"},
	)
	filter := types.StatusFilter{Devel: types.DevelFilter{All: true}, FilterForUser: "alice"}

	suite.store.EXPECT().GetUser(suite.ctx, "alice").Return(&types.User{ID: 42, Login: "alice"}, nil)
	// 1 is the target of gcc, which is matched through its devel package
	suite.store.EXPECT().RelevantPackageIDsForUser(suite.ctx, uint(42)).Return([]uint{1, 11, 2}, nil)
	suite.store.EXPECT().ListAttribValues(suite.ctx, &store.ListAttribValuesQuery{
		Namespace:  types.AttribNamespaceOBS,
		Name:       types.AttribFailComment,
		PackageIDs: []uint{1, 2},
	}).Return(map[uint]string{1: "c", 2: "c"}, nil)
	suite.store.EXPECT().ListSubmitRequestTargets(suite.ctx, nil, requestStates).Return(nil, nil)

	result, err := suite.aggregator.Status(suite.ctx, testProject, filter)
	suite.Require().NoError(err)
	suite.Require().Len(result.Packages, 2)
	suite.Equal("gcc", result.Packages[0].Name)
	suite.Equal("vim", result.Packages[1].Name)
}

func (suite *AggregatorSuite) TestUnknownFilterUser() {
	suite.seed(&types.PackageStatus{PackageID: 1, Name: "gcc"})
	suite.store.EXPECT().GetUser(suite.ctx, "ghost").Return(nil, store.ErrNotFound)

	_, err := suite.aggregator.Status(suite.ctx, testProject, types.StatusFilter{FilterForUser: "ghost"})
	suite.ErrorIs(err, store.ErrNotFound)
}

func (suite *AggregatorSuite) TestSnapshotIsCachedAndNotModified() {
	suite.store.EXPECT().GetProject(suite.ctx, testProject).Return(&types.Project{ID: 1, Name: testProject}, nil).Times(2)
	suite.store.EXPECT().ListPackages(suite.ctx, gomock.Any()).Return([]*types.Package{{ID: 1, Name: "gcc"}}, nil).Times(2)
	suite.backend.EXPECT().GetSourceInfo(gomock.Any(), testProject, nil).Return(&backend.SourceInfoList{
		SourceInfos: []backend.SourceInfo{{Package: "gcc", VerifyMD5: "abc"}},
	}, nil).Times(2)

	filter := noVersions()
	filter.LimitToFails = false
	for i := 0; i < 2; i++ {
		suite.expectLookups(map[uint]string{1: "comment"}, nil, nil, nil)
		result, err := suite.aggregator.Status(suite.ctx, testProject, filter)
		suite.Require().NoError(err)
		suite.Require().Len(result.Packages, 1)
		suite.Equal("comment", result.Packages[0].FailedComment)
	}

	snapshot, err := suite.aggregator.Snapshot(suite.ctx, testProject)
	suite.Require().NoError(err)
	suite.Empty(snapshot[1].FailedComment)

	suite.aggregator.Invalidate(testProject)
	_, err = suite.aggregator.Snapshot(suite.ctx, testProject)
	suite.Require().NoError(err)
}

func TestNewerUpstream(t *testing.T) {
	tests := []struct {
		version  string
		upstream string
		want     bool
	}{
		{"1.2.0", "1.10.0", true},
		{"1.2", "1.2.1", true},
		{"2.0", "2.0", false},
		{"2.0", "1.9", false},
		{"2.0", "", false},
		{"", "1.0", false},
		{"1.0", "latest", false},
		{"1.0~rc1", "1.0", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, newerUpstream(tt.version, tt.upstream), "%s < %s", tt.version, tt.upstream)
	}
}
