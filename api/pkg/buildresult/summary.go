package buildresult

import (
	"sort"

	"github.com/Artox/open-build-service/api/pkg/backend"
	"github.com/Artox/open-build-service/api/pkg/types"
)

// Summarize groups the summary view into repository -> arch -> counts ordered by code
func Summarize(list *backend.ResultList) types.BuildSummary {
	summary := types.BuildSummary{}
	if list == nil {
		return summary
	}

	for _, result := range list.Results {
		if result.Summary == nil {
			continue
		}
		archs, ok := summary[result.Repository]
		if !ok {
			archs = map[string][]types.StatusCount{}
			summary[result.Repository] = archs
		}
		counts := archs[result.Arch]
		for _, sc := range result.Summary.StatusCounts {
			counts = append(counts, types.StatusCount{Code: sc.Code, Count: sc.Count})
		}
		sort.SliceStable(counts, func(i, j int) bool {
			return CodeIndex(counts[i].Code) < CodeIndex(counts[j].Code)
		})
		archs[result.Arch] = counts
	}
	return summary
}

// CountProblemPackages counts the distinct packages that are in a problem state in
// at least one repository/arch
func CountProblemPackages(list *backend.ResultList) int {
	if list == nil {
		return 0
	}
	problem := make(map[string]bool, len(ProblemCodes))
	for _, c := range ProblemCodes {
		problem[c] = true
	}

	packages := map[string]bool{}
	for _, result := range list.Results {
		for _, status := range result.Statuses {
			if problem[status.Code] {
				packages[status.Package] = true
			}
		}
	}
	return len(packages)
}
