package status

import (
	"net/url"
	"strconv"

	"github.com/Artox/open-build-service/api/pkg/types"
)

// labels the status page uses for the two special devel filters
const (
	DevelFilterAllLabel  = "All Packages"
	DevelFilterNoneLabel = "No Project"
)

// ParseFilter reads the status page parameters
func ParseFilter(query url.Values) types.StatusFilter {
	filter := types.StatusFilter{
		LimitToFails:    query.Get("limit_to_fails") != "false",
		IncludeVersions: query.Get("include_versions") != "false",
		FilterForUser:   query.Get("filter_for_user"),
	}

	switch devel := query.Get("filter_devel"); devel {
	case "", DevelFilterAllLabel:
		filter.Devel.All = true
	case DevelFilterNoneLabel:
		filter.Devel.None = true
	default:
		filter.Devel.Project = devel
	}

	if query.Has("limit_to_old") {
		filter.LimitToOld = query.Get("limit_to_old") != "false"
	}
	if v := query.Get("ignore_pending"); v != "" {
		ignore, err := strconv.ParseBool(v)
		filter.IgnorePending = err == nil && ignore
	}

	return filter
}

// Values renders the filter back into query parameters
func Values(filter types.StatusFilter) url.Values {
	query := url.Values{}
	switch {
	case filter.Devel.None:
		query.Set("filter_devel", DevelFilterNoneLabel)
	case filter.Devel.Project != "" && !filter.Devel.All:
		query.Set("filter_devel", filter.Devel.Project)
	}
	query.Set("limit_to_fails", strconv.FormatBool(filter.LimitToFails))
	query.Set("limit_to_old", strconv.FormatBool(filter.LimitToOld))
	query.Set("include_versions", strconv.FormatBool(filter.IncludeVersions))
	query.Set("ignore_pending", strconv.FormatBool(filter.IgnorePending))
	if filter.FilterForUser != "" {
		query.Set("filter_for_user", filter.FilterForUser)
	}
	return query
}
