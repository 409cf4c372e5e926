package buildresult

import (
	"html"
	"maps"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Artox/open-build-service/api/pkg/backend"
	"github.com/Artox/open-build-service/api/pkg/types"
)

var (
	xmlIDStart   = regexp.MustCompile(`^[A-Za-z_]`)
	xmlIDInvalid = regexp.MustCompile(`[+&: ./~()@#]`)
)

// ValidXMLID turns an arbitrary name into a string usable as form field id
func ValidXMLID(raw string) string {
	if !xmlIDStart.MatchString(raw) {
		raw = "_" + raw
	}
	return html.EscapeString(xmlIDInvalid.ReplaceAllString(raw, "_"))
}

// ParseMonitorFilter reads the monitor form. Malformed numbers count as set.
func ParseMonitorFilter(query url.Values, project *types.Project) *types.MonitorFilter {
	query = maps.Clone(query)
	if query == nil {
		query = url.Values{}
	}

	defaults := true
	if query.Has("defaults") {
		defaults = flagValue(query.Get("defaults"))
	}
	if query.Has("unresolvable") {
		// legacy name of the expansion error state
		query.Set("expansionerror", "1")
	}

	filter := &types.MonitorFilter{
		Defaults:  defaults,
		Status:    make(map[string]bool, len(Codes)),
		Name:      query.Get("pkgname"),
		LastBuild: query.Get("lastbuild") != "",
	}

	for _, code := range Codes {
		id := strings.ReplaceAll(code, " ", "")
		enabled := defaults
		if query.Has(id) {
			enabled = flagValue(query.Get(id))
		}
		if defaults && defaultFilteredOut[code] {
			enabled = false
		}
		filter.Status[code] = enabled
	}

	repos, archs := availableReposAndArchs(project)
	for _, a := range archs {
		if defaults || query.Has(ValidXMLID("arch_"+a)) {
			filter.Archs = append(filter.Archs, a)
		}
	}
	for _, r := range repos {
		if defaults || query.Has(ValidXMLID("repo_"+r)) {
			filter.Repos = append(filter.Repos, r)
		}
	}
	return filter
}

// StatusCodes returns the enabled codes in display order
func StatusCodes(filter *types.MonitorFilter) []string {
	var codes []string
	for _, code := range Codes {
		if filter.Status[code] {
			codes = append(codes, code)
		}
	}
	return codes
}

// flagValue is true for positive numbers and for anything that is not a number
func flagValue(value string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return true
	}
	return n > 0
}

func availableReposAndArchs(project *types.Project) ([]string, []string) {
	if project == nil {
		return nil, nil
	}
	repoSet := map[string]bool{}
	archSet := map[string]bool{}
	for _, r := range project.Repositories {
		repoSet[r.Name] = true
		for _, a := range r.ArchitectureNames() {
			archSet[a] = true
		}
	}
	return sortedKeys(repoSet), sortedKeys(archSet)
}

// FilterMatches evaluates a comma separated filter like "gcc,!32bit" against the
// input. Entries are ORed, "!x" matches when x is not part of the input.
func FilterMatches(input, filter string) bool {
	filter = strings.Join(strings.Fields(filter), "")

	result := false
	for _, entry := range strings.Split(filter, ",") {
		if entry == "" || entry == "!" {
			continue
		}
		if strings.HasPrefix(entry, "!") {
			if !strings.Contains(input, entry[1:]) {
				result = true
			}
			continue
		}
		if strings.Contains(input, entry) {
			result = true
		}
	}
	return result
}

// BuildMonitor shapes the status view of a project for the monitor page
func BuildMonitor(project string, list *backend.ResultList, filter *types.MonitorFilter) *types.MonitorResult {
	result := &types.MonitorResult{
		Project:   project,
		RepoArchs: map[string][]string{},
		Statuses:  map[string]map[string]map[string]types.PackageBuildStatus{},
		Packages:  []string{},
		States:    Codes,
		Filter:    filter,
	}
	if list == nil || len(list.Results) == 0 {
		result.Unavailable = true
		return result
	}

	names := map[string]bool{}
	for _, res := range list.Results {
		result.RepoArchs[res.Repository] = append(result.RepoArchs[res.Repository], res.Arch)
		if result.Statuses[res.Repository] == nil {
			result.Statuses[res.Repository] = map[string]map[string]types.PackageBuildStatus{}
		}
		statuses := map[string]types.PackageBuildStatus{}
		for _, s := range res.Statuses {
			statuses[s.Package] = types.PackageBuildStatus{Code: s.Code, Details: s.Details}
			names[s.Package] = true
		}
		result.Statuses[res.Repository][res.Arch] = statuses
	}

	for _, name := range sortedKeys(names) {
		if filter != nil && filter.Name != "" && !FilterMatches(name, filter.Name) {
			continue
		}
		result.Packages = append(result.Packages, name)
	}

	current := make(map[string]bool, len(result.Packages))
	for _, name := range result.Packages {
		current[name] = true
	}
	// drop archs that hold none of the listed packages
	for repo, archs := range result.Statuses {
		kept := result.RepoArchs[repo][:0]
		for _, arch := range result.RepoArchs[repo] {
			if hasAny(archs[arch], current) {
				kept = append(kept, arch)
			}
		}
		result.RepoArchs[repo] = kept
	}
	return result
}

// NewPackageResult shapes the last build results of a single package
func NewPackageResult(project, pkg string, list *backend.ResultList) *types.PackageBuildResult {
	result := &types.PackageBuildResult{
		Project:   project,
		Package:   pkg,
		RepoArchs: map[string][]string{},
		Statuses:  map[string]map[string]types.PackageBuildStatus{},
	}
	if list == nil {
		return result
	}

	for _, res := range list.Results {
		result.RepoArchs[res.Repository] = append(result.RepoArchs[res.Repository], res.Arch)
		if result.Statuses[res.Repository] == nil {
			result.Statuses[res.Repository] = map[string]types.PackageBuildStatus{}
		}
		for _, s := range res.Statuses {
			if s.Package == pkg {
				result.Statuses[res.Repository][res.Arch] = types.PackageBuildStatus{Code: s.Code, Details: s.Details}
			}
		}
	}
	return result
}

func hasAny(statuses map[string]types.PackageBuildStatus, names map[string]bool) bool {
	for pkg := range statuses {
		if names[pkg] {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
