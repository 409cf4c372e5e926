package types

// StatusCount is the number of packages in a build state
type StatusCount struct {
	Code  string `json:"code"`
	Count int    `json:"count"`
}

// BuildSummary maps repository -> architecture -> counts ordered by code
type BuildSummary map[string]map[string][]StatusCount

// RepositoryCycles maps architecture -> cycle groups, each sorted by package name
type RepositoryCycles map[string][][]string

type RepositoryState struct {
	Project    string           `json:"project"`
	Repository string           `json:"repository"`
	Archs      []string         `json:"archs"`
	Cycles     RepositoryCycles `json:"cycles"`
}

type MonitorFilter struct {
	Defaults bool            `json:"defaults"`
	Status   map[string]bool `json:"status"`
	Archs    []string        `json:"archs,omitempty"`
	Repos    []string        `json:"repos,omitempty"`
	Name     string          `json:"name,omitempty"`
	// LastBuild asks the backend for the last build result instead of the current state
	LastBuild bool `json:"lastbuild"`
}

// PackageBuildStatus is a package state in one repository/arch
type PackageBuildStatus struct {
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

type MonitorResult struct {
	Project string `json:"project"`
	// RepoArchs maps repository -> architectures with at least one listed package
	RepoArchs map[string][]string `json:"repohash"`
	// Statuses maps repository -> architecture -> package -> state
	Statuses map[string]map[string]map[string]PackageBuildStatus `json:"statushash"`
	Packages []string                                            `json:"packagenames"`
	States   []string                                            `json:"avail_status_values"`
	Filter   *MonitorFilter                                      `json:"filter"`
	// Unavailable is set when the backend returned no results at all
	Unavailable bool `json:"buildresult_unavailable"`
}

type PackageBuildResult struct {
	Project   string                                   `json:"project"`
	Package   string                                   `json:"package"`
	RepoArchs map[string][]string                      `json:"repohash"`
	Statuses  map[string]map[string]PackageBuildStatus `json:"statushash"`
}

type RebuildTiming struct {
	Package   string `json:"package"`
	BuildTime int64  `json:"buildtime"`
	Finished  int64  `json:"finished"`
}

type RebuildTimeResult struct {
	Project     string          `json:"project"`
	Repository  string          `json:"repository"`
	Arch        string          `json:"arch"`
	Hosts       int             `json:"hosts"`
	Scheduler   string          `json:"scheduler"`
	RebuildTime int64           `json:"rebuildtime"`
	Timings     []RebuildTiming `json:"timings"`
	LongestPath [][]string      `json:"longestpaths"`
	PNGKey      string          `json:"pngkey"`
}

type ProjectIndex struct {
	MainProjects      []string   `json:"main_projects"`
	ExcludedProjects  []string   `json:"excluded_projects"`
	ImportantProjects []*Project `json:"important_projects"`
	ExcludeFilter     string     `json:"exclude_filter"`
}

type MaintenanceInfo struct {
	IsMaintenanceProject bool     `json:"is_maintenance_project"`
	IsIncident           bool     `json:"is_incident"`
	MaintenanceProjects  []string `json:"maintenance_projects"`
	OpenIncidents        []string `json:"open_maintenance_incidents,omitempty"`
	MaintainedProjects   []string `json:"maintained_projects,omitempty"`
	OpenReleaseRequests  []uint   `json:"open_release_requests,omitempty"`
	ReleaseTargets       []string `json:"release_targets,omitempty"`
}

type ProjectInfo struct {
	Project           *Project          `json:"project"`
	Packages          []string          `json:"packages"`
	InheritedPackages map[string]string `json:"inherited_packages"`
	LinkingProjects   []string          `json:"linking_projects"`
	Requests          []uint            `json:"requests"`
	NrOfProblems      int               `json:"nr_of_problems"`
	HasPatchinfo      bool              `json:"has_patchinfo"`
	BugownerEmails    []string          `json:"bugowners_mail"`
	Maintenance       *MaintenanceInfo  `json:"maintenance"`
	Watched           bool              `json:"watched"`
}

// ProjectUsers groups the project relationships by role
type ProjectUsers struct {
	Users  map[string][]RoleTitle `json:"users"`
	Groups map[string][]RoleTitle `json:"groups"`
	Roles  []RoleTitle            `json:"roles"`
}

type DistributionVendor struct {
	Vendor        string          `json:"vendor"`
	Distributions []*Distribution `json:"distributions"`
}

// RepositoryFlags maps flag type -> repository -> architecture -> status.
// The empty repository or architecture name stands for "all"
type RepositoryFlags map[FlagType]map[string]map[string]FlagStatus

type RepositoriesResult struct {
	Project      *Project        `json:"project"`
	Repositories []*Repository   `json:"repositories"`
	Flags        RepositoryFlags `json:"flags"`
}

type DeleteProjectResult struct {
	// RedirectTo is the project to show next, empty means the project index
	RedirectTo string `json:"redirect_to"`
}

type SubprojectsResult struct {
	Subprojects    []string `json:"subprojects"`
	ParentProjects []string `json:"parentprojects"`
}

// NewProjectTemplate prefills the new project form
type NewProjectTemplate struct {
	Namespace string `json:"namespace,omitempty"`
	Name      string `json:"name,omitempty"`
	Title     string `json:"title"`
	// HomeMissing is set when the namespace is the user's home project, which does not exist yet
	HomeMissing bool `json:"home_missing"`
}

type CreateProjectRequest struct {
	Namespace          string `json:"ns,omitempty"`
	Name               string `json:"name"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	MaintenanceProject bool   `json:"maintenance_project"`
	AccessProtection   bool   `json:"access_protection"`
	SourceProtection   bool   `json:"source_protection"`
	DisablePublishing  bool   `json:"disable_publishing"`
}

type UpdateProjectRequest struct {
	Title       *string `json:"title"`
	Description string  `json:"description"`
}

type NewIncidentResult struct {
	Project string `json:"project"`
}

type EditRepositoryResult struct {
	Repository *Repository `json:"repository"`
	// Archs maps every available architecture, and those the repository still uses, to its state
	Archs map[string]bool `json:"archs"`
}

// AddRepositoriesRequest either extends ToRepository with the target path or adds the
// repositories listed in Repos
type AddRepositoriesRequest struct {
	TargetProject string   `json:"target_project"`
	TargetRepo    string   `json:"target_repo"`
	ToRepository  string   `json:"torepository,omitempty"`
	Repos         []string `json:"repo,omitempty"`
	Archs         []string `json:"arch,omitempty"`
	// RepoPaths and RepoArchs override the path ("project/repository") and the
	// architectures per repository
	RepoPaths map[string]string   `json:"repo_paths,omitempty"`
	RepoArchs map[string][]string `json:"repo_archs,omitempty"`
}

type ChangeFlagRequest struct {
	Command    string     `json:"cmd"`
	Flag       FlagType   `json:"flag"`
	Status     FlagStatus `json:"status,omitempty"`
	Repository string     `json:"repository,omitempty"`
	Arch       string     `json:"arch,omitempty"`
}

type PathDirection string

const (
	PathDirectionUp   PathDirection = "up"
	PathDirectionDown PathDirection = "down"
)
