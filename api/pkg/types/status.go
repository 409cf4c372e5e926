package types

// PackageFail is the latest failed build of a package in one repository/arch
type PackageFail struct {
	Repository   string `json:"repository"`
	Architecture string `json:"architecture"`
	Time         int64  `json:"time"`
	MD5          string `json:"md5"`
}

// PackageRef points at a package in another project with its source checksums
type PackageRef struct {
	PackageID  uint   `json:"package_id,omitempty"`
	Project    string `json:"project"`
	Name       string `json:"name"`
	VerifyMD5  string `json:"verifymd5,omitempty"`
	ChangesMD5 string `json:"changesmd5,omitempty"`
	MaxMTime   int64  `json:"maxmtime,omitempty"`
	Error      string `json:"error,omitempty"`
}

// PackageStatus is one entry of the per-project status snapshot
type PackageStatus struct {
	PackageID  uint          `json:"package_id"`
	Project    string        `json:"project"`
	Name       string        `json:"name"`
	SrcMD5     string        `json:"srcmd5,omitempty"`
	VerifyMD5  string        `json:"verifymd5,omitempty"`
	ChangesMD5 string        `json:"changesmd5,omitempty"`
	MaxMTime   int64         `json:"maxmtime,omitempty"`
	Version    string        `json:"version,omitempty"`
	Error      string        `json:"error,omitempty"`
	Fails      []PackageFail `json:"fails,omitempty"`
	LinksTo    *PackageRef   `json:"links_to,omitempty"`
	DevelPack  *PackageRef   `json:"develpack,omitempty"`

	// set per request from bulk lookups, never stored in the snapshot
	DeclinedRequest uint   `json:"declined_request,omitempty"`
	FailedComment   string `json:"failed_comment,omitempty"`
	UpstreamVersion string `json:"upstream_version,omitempty"`
	UpstreamURL     string `json:"upstream_url,omitempty"`
}

// Clone returns a copy that can be annotated without touching the snapshot
func (p *PackageStatus) Clone() *PackageStatus {
	c := *p
	if p.Fails != nil {
		c.Fails = append([]PackageFail(nil), p.Fails...)
	}
	if p.LinksTo != nil {
		l := *p.LinksTo
		c.LinksTo = &l
	}
	if p.DevelPack != nil {
		d := *p.DevelPack
		c.DevelPack = &d
	}
	return &c
}

// StatusSnapshot maps package id to the package state
type StatusSnapshot map[uint]*PackageStatus

// StatusPackage is a package worth showing on the project status page
type StatusPackage struct {
	Name              string   `json:"name"`
	FailedComment     string   `json:"failedcomment,omitempty"`
	RequestsFrom      []uint   `json:"requests_from"`
	RequestsTo        []uint   `json:"requests_to"`
	FirstFail         *int64   `json:"firstfail,omitempty"`
	FailedArch        string   `json:"failedarch,omitempty"`
	FailedRepo        string   `json:"failedrepo,omitempty"`
	MD5               string   `json:"md5,omitempty"`
	ChangesMD5        string   `json:"changesmd5,omitempty"`
	DevelProject      string   `json:"develproject,omitempty"`
	DevelPackage      string   `json:"develpackage,omitempty"`
	DevelMD5          string   `json:"develmd5,omitempty"`
	DevelMTime        int64    `json:"develmtime,omitempty"`
	Problems          []string `json:"problems"`
	CurrentlyDeclined uint     `json:"currently_declined,omitempty"`
	Version           string   `json:"version,omitempty"`
	UpstreamVersion   string   `json:"upstream_version,omitempty"`
	UpstreamURL       string   `json:"upstream_url,omitempty"`
	LinkProject       string   `json:"lproject,omitempty"`
	LinkPackage       string   `json:"lpackage,omitempty"`
}

// HasProblem reports whether the given problem tag was recorded
func (s *StatusPackage) HasProblem(problem string) bool {
	for _, p := range s.Problems {
		if p == problem {
			return true
		}
	}
	return false
}

// problem tags
const (
	ProblemDiffAgainstLink   = "diff_against_link"
	ProblemCurrentlyDeclined = "currently_declined"
	ProblemDifferentChanges  = "different_changes"
	ProblemDifferentSources  = "different_sources"
	ProblemErrorPrefix       = "error-"
)

// DevelFilter selects packages by their devel project
type DevelFilter struct {
	// All and None are mutually exclusive, Project is used when both are false
	All     bool   `json:"all"`
	None    bool   `json:"none"`
	Project string `json:"project,omitempty"`
}

type StatusFilter struct {
	Devel           DevelFilter `json:"devel"`
	IgnorePending   bool        `json:"ignore_pending"`
	LimitToFails    bool        `json:"limit_to_fails"`
	LimitToOld      bool        `json:"limit_to_old"`
	IncludeVersions bool        `json:"include_versions"`
	FilterForUser   string      `json:"filter_for_user,omitempty"`
}

type StatusResult struct {
	Project       string           `json:"project"`
	Packages      []*StatusPackage `json:"packages"`
	DevelProjects []string         `json:"develprojects"`
	Filter        StatusFilter     `json:"filter"`
}
