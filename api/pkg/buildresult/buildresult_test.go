package buildresult

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Artox/open-build-service/api/pkg/backend"
	"github.com/Artox/open-build-service/api/pkg/types"
)

func TestCodeIndex(t *testing.T) {
	assert.Equal(t, 0, CodeIndex("succeeded"))
	assert.Equal(t, 3, CodeIndex("broken"))
	assert.Equal(t, len(Codes), CodeIndex("exploded"))
	assert.Equal(t, "failed", IndexCode(1))
	assert.Equal(t, "unknown", IndexCode(99))

	for i, c := range Codes {
		assert.Equal(t, c, IndexCode(CodeIndex(c)), "index %d", i)
	}
}

func TestSummarize(t *testing.T) {
	list := &backend.ResultList{Results: []backend.Result{
		{Repository: "standard", Arch: "x86_64", Summary: &backend.Summary{StatusCounts: []backend.StatusCount{
			{Code: "disabled", Count: 3},
			{Code: "failed", Count: 2},
			{Code: "succeeded", Count: 40},
		}}},
		{Repository: "standard", Arch: "i586", Summary: &backend.Summary{StatusCounts: []backend.StatusCount{
			{Code: "broken", Count: 1},
		}}},
		{Repository: "ports", Arch: "ppc64le"},
	}}

	summary := Summarize(list)
	assert.Equal(t, types.BuildSummary{
		"standard": {
			"x86_64": {{Code: "succeeded", Count: 40}, {Code: "failed", Count: 2}, {Code: "disabled", Count: 3}},
			"i586":   {{Code: "broken", Count: 1}},
		},
	}, summary)

	assert.Empty(t, Summarize(nil))
}

func TestCountProblemPackages(t *testing.T) {
	list := &backend.ResultList{Results: []backend.Result{
		{Repository: "standard", Arch: "x86_64", Statuses: []backend.BuildStatus{
			{Package: "gcc", Code: "failed"},
			{Package: "zlib", Code: "succeeded"},
			{Package: "perl", Code: "unresolvable"},
		}},
		{Repository: "standard", Arch: "i586", Statuses: []backend.BuildStatus{
			{Package: "gcc", Code: "broken"},
		}},
	}}
	assert.Equal(t, 2, CountProblemPackages(list))
	assert.Equal(t, 0, CountProblemPackages(nil))
}

func TestFilterMatches(t *testing.T) {
	cases := []struct {
		input  string
		filter string
		want   bool
	}{
		{"gcc14", "gcc", true},
		{"gcc14", "clang", false},
		{"gcc14", "!clang", true},
		{"gcc14", "!gcc", false},
		{"gcc14-32bit", "clang, gcc", true},
		{"gcc14-32bit", "!32bit,clang", false},
		{"python3", " py thon ", true},
		{"python3", "", false},
		{"python3", ",,", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FilterMatches(c.input, c.filter), "%s ~ %q", c.input, c.filter)
	}
}

func TestValidXMLID(t *testing.T) {
	assert.Equal(t, "arch_x86_64", ValidXMLID("arch_x86_64"))
	assert.Equal(t, "repo_openSUSE_Leap_15_6", ValidXMLID("repo_openSUSE_Leap_15.6"))
	assert.Equal(t, "_1st", ValidXMLID("1st"))
	assert.Equal(t, "repo_a_b", ValidXMLID("repo_a:b"))
}

func monitorProject() *types.Project {
	return &types.Project{
		Name: "home:alice",
		Repositories: []*types.Repository{
			{Name: "openSUSE_Factory", Architectures: []*types.RepositoryArchitecture{
				{Architecture: &types.Architecture{Name: "x86_64"}},
				{Architecture: &types.Architecture{Name: "i586"}},
			}},
			{Name: "Fedora_40", Architectures: []*types.RepositoryArchitecture{
				{Architecture: &types.Architecture{Name: "x86_64"}},
			}},
		},
	}
}

func TestParseMonitorFilter_Defaults(t *testing.T) {
	filter := ParseMonitorFilter(url.Values{}, monitorProject())

	assert.True(t, filter.Defaults)
	assert.True(t, filter.Status["succeeded"])
	assert.True(t, filter.Status["failed"])
	assert.False(t, filter.Status["disabled"])
	assert.False(t, filter.Status["excluded"])
	assert.False(t, filter.Status["unknown"])
	assert.Equal(t, []string{"i586", "x86_64"}, filter.Archs)
	assert.Equal(t, []string{"Fedora_40", "openSUSE_Factory"}, filter.Repos)
	assert.NotContains(t, StatusCodes(filter), "disabled")
}

func TestParseMonitorFilter_Explicit(t *testing.T) {
	query := url.Values{
		"defaults":              {"0"},
		"failed":                {"1"},
		"broken":                {"garbage"},
		"succeeded":             {"0"},
		"disabled":              {"1"},
		"arch_x86_64":           {"1"},
		"repo_openSUSE_Factory": {"1"},
		"pkgname":               {"gcc"},
		"lastbuild":             {"1"},
		"unresolvable":          {"1"},
	}
	filter := ParseMonitorFilter(query, monitorProject())

	assert.False(t, filter.Defaults)
	assert.Equal(t, []string{"failed", "unresolvable", "broken", "disabled"}, StatusCodes(filter))
	assert.Equal(t, []string{"x86_64"}, filter.Archs)
	assert.Equal(t, []string{"openSUSE_Factory"}, filter.Repos)
	assert.Equal(t, "gcc", filter.Name)
	assert.True(t, filter.LastBuild)
	// the caller's values are left alone
	assert.False(t, query.Has("expansionerror"))
}

func TestParseMonitorFilter_MalformedDefaults(t *testing.T) {
	filter := ParseMonitorFilter(url.Values{"defaults": {"yes please"}}, monitorProject())
	assert.True(t, filter.Defaults)
}

func TestBuildMonitor(t *testing.T) {
	list := &backend.ResultList{Results: []backend.Result{
		{Repository: "openSUSE_Factory", Arch: "x86_64", Statuses: []backend.BuildStatus{
			{Package: "gcc", Code: "failed", Details: "oom"},
			{Package: "zlib", Code: "succeeded"},
		}},
		{Repository: "openSUSE_Factory", Arch: "i586", Statuses: []backend.BuildStatus{
			{Package: "zlib", Code: "succeeded"},
		}},
		{Repository: "Fedora_40", Arch: "x86_64", Statuses: []backend.BuildStatus{
			{Package: "gcc", Code: "building"},
		}},
	}}

	result := BuildMonitor("home:alice", list, &types.MonitorFilter{Name: "gcc"})
	require.False(t, result.Unavailable)
	assert.Equal(t, []string{"gcc"}, result.Packages)
	// i586 only has zlib, which the name filter hides
	assert.Equal(t, map[string][]string{
		"openSUSE_Factory": {"x86_64"},
		"Fedora_40":        {"x86_64"},
	}, result.RepoArchs)
	assert.Equal(t, types.PackageBuildStatus{Code: "failed", Details: "oom"}, result.Statuses["openSUSE_Factory"]["x86_64"]["gcc"])
	assert.Equal(t, Codes, result.States)

	all := BuildMonitor("home:alice", list, &types.MonitorFilter{})
	assert.Equal(t, []string{"gcc", "zlib"}, all.Packages)
	assert.Equal(t, []string{"x86_64", "i586"}, all.RepoArchs["openSUSE_Factory"])
}

func TestBuildMonitor_NoResults(t *testing.T) {
	result := BuildMonitor("home:alice", &backend.ResultList{}, nil)
	assert.True(t, result.Unavailable)
	assert.Empty(t, result.Packages)
}

func TestNewPackageResult(t *testing.T) {
	list := &backend.ResultList{Results: []backend.Result{
		{Repository: "openSUSE_Factory", Arch: "x86_64", Statuses: []backend.BuildStatus{{Package: "gcc", Code: "succeeded"}}},
		{Repository: "openSUSE_Factory", Arch: "i586", Statuses: []backend.BuildStatus{{Package: "gcc", Code: "failed"}}},
	}}

	result := NewPackageResult("home:alice", "gcc", list)
	assert.Equal(t, []string{"x86_64", "i586"}, result.RepoArchs["openSUSE_Factory"])
	assert.Equal(t, "failed", result.Statuses["openSUSE_Factory"]["i586"].Code)

	empty := NewPackageResult("home:alice", "gcc", nil)
	assert.Empty(t, empty.RepoArchs)
}
