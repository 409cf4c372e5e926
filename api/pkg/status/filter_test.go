package status

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Artox/open-build-service/api/pkg/types"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  types.StatusFilter
	}{
		{
			name:  "defaults",
			query: "",
			want: types.StatusFilter{
				Devel:           types.DevelFilter{All: true},
				LimitToFails:    true,
				IncludeVersions: true,
			},
		},
		{
			name:  "all packages label",
			query: "filter_devel=All+Packages&limit_to_fails=false&include_versions=false",
			want:  types.StatusFilter{Devel: types.DevelFilter{All: true}},
		},
		{
			name:  "no project label",
			query: "filter_devel=No+Project",
			want: types.StatusFilter{
				Devel:           types.DevelFilter{None: true},
				LimitToFails:    true,
				IncludeVersions: true,
			},
		},
		{
			name:  "devel project",
			query: "filter_devel=devel:languages:ocaml&limit_to_old=1&ignore_pending=true&filter_for_user=alice",
			want: types.StatusFilter{
				Devel:           types.DevelFilter{Project: "devel:languages:ocaml"},
				LimitToFails:    true,
				LimitToOld:      true,
				IncludeVersions: true,
				IgnorePending:   true,
				FilterForUser:   "alice",
			},
		},
		{
			name:  "explicit false and malformed values",
			query: "limit_to_old=false&ignore_pending=maybe&limit_to_fails=0",
			want: types.StatusFilter{
				Devel:           types.DevelFilter{All: true},
				LimitToFails:    true,
				IncludeVersions: true,
			},
		},
		{
			name:  "empty limit_to_old counts as set",
			query: "limit_to_old=",
			want: types.StatusFilter{
				Devel:           types.DevelFilter{All: true},
				LimitToFails:    true,
				LimitToOld:      true,
				IncludeVersions: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, ParseFilter(query))
		})
	}
}

func TestValuesParseBack(t *testing.T) {
	filters := []types.StatusFilter{
		{Devel: types.DevelFilter{All: true}, LimitToFails: true, IncludeVersions: true},
		{Devel: types.DevelFilter{None: true}, IgnorePending: true},
		{Devel: types.DevelFilter{Project: "devel:gcc"}, LimitToOld: true, FilterForUser: "bob"},
	}
	for _, filter := range filters {
		assert.Equal(t, filter, ParseFilter(Values(filter)))
	}
}
