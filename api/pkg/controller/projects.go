package controller

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/Artox/open-build-service/api/pkg/backend"
	"github.com/Artox/open-build-service/api/pkg/buildresult"
	"github.com/Artox/open-build-service/api/pkg/store"
	"github.com/Artox/open-build-service/api/pkg/types"
)

const (
	// DefaultExcludeFilter hides home projects from the index unless all projects are asked for
	DefaultExcludeFilter = "home:"

	patchinfoPackage = "patchinfo"
	patchinfoFile    = "_patchinfo"
)

var (
	projectNameRE = regexp.MustCompile(`^[-+\w.:]{1,200}$`)
	homeProjectRE = regexp.MustCompile(`home:(.+)`)
)

// ValidProjectName checks a full project name against the naming rules of the backend
func ValidProjectName(name string) bool {
	if name == "0" || !projectNameRE.MatchString(name) {
		return false
	}
	if strings.ContainsAny(name[:1], ":._") || strings.HasSuffix(name, ":") {
		return false
	}
	for _, bad := range []string{"::", ":.", ":_"} {
		if strings.Contains(name, bad) {
			return false
		}
	}
	return true
}

// parentNames returns the namespaces above the project, outermost first
func parentNames(name string) []string {
	parts := strings.Split(name, ":")
	names := make([]string, 0, len(parts)-1)
	for i := 1; i < len(parts); i++ {
		names = append(names, strings.Join(parts[:i], ":"))
	}
	return names
}

func projectNames(projects []*types.Project) []string {
	names := make([]string, 0, len(projects))
	for _, p := range projects {
		names = append(names, p.Name)
	}
	return names
}

func (c *Controller) Index(ctx context.Context, showAll bool, excludeFilter string) (*types.ProjectIndex, error) {
	if !showAll {
		excludeFilter = DefaultExcludeFilter
	}
	if excludeFilter == "undefined" {
		excludeFilter = ""
	}

	names, err := c.Options.Store.ListProjectNames(ctx)
	if err != nil {
		return nil, err
	}
	important, err := c.Options.Store.ListProjectsByAttribute(ctx, types.AttribNamespaceOBS, types.AttribVeryImportant)
	if err != nil {
		return nil, err
	}
	sort.Slice(important, func(i, j int) bool { return important[i].Name < important[j].Name })

	index := &types.ProjectIndex{
		MainProjects:      []string{},
		ExcludedProjects:  []string{},
		ImportantProjects: important,
		ExcludeFilter:     excludeFilter,
	}
	for _, name := range names {
		if excludeFilter != "" && strings.HasPrefix(name, excludeFilter) {
			index.ExcludedProjects = append(index.ExcludedProjects, name)
		} else {
			index.MainProjects = append(index.MainProjects, name)
		}
	}
	return index, nil
}

func (c *Controller) AutocompleteProjects(ctx context.Context, term string) ([]string, error) {
	projects, err := c.Options.Store.ListProjects(ctx, &store.ListProjectsQuery{
		NameContains: term,
		ExcludeKinds: []types.ProjectKind{types.ProjectKindMaintenanceIncident},
	})
	if err != nil {
		return nil, err
	}
	return projectNames(projects), nil
}

func (c *Controller) AutocompleteIncidents(ctx context.Context, term string) ([]string, error) {
	projects, err := c.Options.Store.ListProjects(ctx, &store.ListProjectsQuery{
		NameContains: term,
		Kinds:        []types.ProjectKind{types.ProjectKindMaintenanceIncident},
	})
	if err != nil {
		return nil, err
	}
	return projectNames(projects), nil
}

// AutocompletePackages returns an empty list for unknown projects
func (c *Controller) AutocompletePackages(ctx context.Context, name, term string) ([]string, error) {
	project, err := c.getProject(ctx, name)
	if errors.Is(err, ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	packages, err := c.Options.Store.ListPackages(ctx, &store.ListPackagesQuery{ProjectID: project.ID, NameContains: term})
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(packages))
	for _, p := range packages {
		names = append(names, p.Name)
	}
	return names, nil
}

func (c *Controller) AutocompleteRepositories(ctx context.Context, name string) ([]string, error) {
	project, err := c.getProject(ctx, name)
	if errors.Is(err, ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(project.Repositories))
	for _, r := range project.Repositories {
		names = append(names, r.Name)
	}
	return names, nil
}

func (c *Controller) Users(ctx context.Context, name string) (*types.ProjectUsers, error) {
	project, err := c.getProject(ctx, name)
	if err != nil {
		return nil, err
	}
	relationships, err := c.Options.Store.ListRelationships(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	roles, err := c.Options.Store.ListRoles(ctx)
	if err != nil {
		return nil, err
	}

	result := &types.ProjectUsers{
		Users:  map[string][]types.RoleTitle{},
		Groups: map[string][]types.RoleTitle{},
		Roles:  make([]types.RoleTitle, 0, len(roles)),
	}
	for _, r := range roles {
		result.Roles = append(result.Roles, r.Title)
	}
	for _, r := range relationships {
		if r.Role == nil {
			continue
		}
		switch {
		case r.User != nil:
			result.Users[r.User.Login] = append(result.Users[r.User.Login], r.Role.Title)
		case r.Group != nil:
			result.Groups[r.Group.Title] = append(result.Groups[r.Group.Title], r.Role.Title)
		}
	}
	return result, nil
}

func (c *Controller) Subprojects(ctx context.Context, name string) (*types.SubprojectsResult, error) {
	if _, err := c.getProject(ctx, name); err != nil {
		return nil, err
	}

	subprojects, err := c.Options.Store.ListProjects(ctx, &store.ListProjectsQuery{NamePrefix: name + ":"})
	if err != nil {
		return nil, err
	}
	parents, err := c.parentProjects(ctx, name)
	if err != nil {
		return nil, err
	}
	return &types.SubprojectsResult{
		Subprojects:    projectNames(subprojects),
		ParentProjects: parents,
	}, nil
}

// parentProjects returns the existing projects above the project, outermost first
func (c *Controller) parentProjects(ctx context.Context, name string) ([]string, error) {
	candidates := parentNames(name)
	if len(candidates) == 0 {
		return []string{}, nil
	}
	parents, err := c.Options.Store.ListProjects(ctx, &store.ListProjectsQuery{Names: candidates})
	if err != nil {
		return nil, err
	}
	return projectNames(parents), nil
}

// PrepareNewProject checks the namespace of a project about to be created and
// suggests a title
func (c *Controller) PrepareNewProject(ctx context.Context, user *types.User, namespace, name string) (*types.NewProjectTemplate, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}

	template := &types.NewProjectTemplate{Namespace: namespace, Name: name}
	if namespace != "" {
		exists, err := c.Options.Store.ProjectExists(ctx, namespace)
		if err != nil {
			return nil, err
		}
		if !exists {
			if namespace != user.HomeProjectName() {
				return nil, fmt.Errorf("%w: invalid namespace name '%s'", ErrNotFound, namespace)
			}
			template.HomeMissing = true
			template.Name = namespace
		}
	}
	if m := homeProjectRE.FindStringSubmatch(template.Name); m != nil {
		template.Title = fmt.Sprintf("%s's Home Project", m[1])
	}
	return template, nil
}

// CreateProject stores a new project with the user as maintainer and pushes its meta
func (c *Controller) CreateProject(ctx context.Context, user *types.User, req *types.CreateProjectRequest) (*types.Project, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}

	name := req.Name
	if req.Namespace != "" {
		name = req.Namespace + ":" + req.Name
	}
	if !ValidProjectName(name) {
		return nil, fmt.Errorf("%w: invalid project name '%s'", ErrInvalidRequest, name)
	}
	exists, err := c.Options.Store.ProjectExists(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: project '%s' already exists", ErrInvalidRequest, name)
	}
	if err := c.authorizeCreate(ctx, user, name); err != nil {
		return nil, err
	}

	project := &types.Project{
		Name:        name,
		Title:       req.Title,
		Description: req.Description,
		Kind:        types.ProjectKindStandard,
	}
	if req.MaintenanceProject {
		project.Kind = types.ProjectKindMaintenance
	}
	disabled := []struct {
		set  bool
		flag types.FlagType
	}{
		{req.AccessProtection, types.FlagTypeAccess},
		{req.SourceProtection, types.FlagTypeSourceAccess},
		{req.DisablePublishing, types.FlagTypePublish},
	}
	for _, d := range disabled {
		if d.set {
			project.Flags = append(project.Flags, &types.Flag{
				Type:     d.flag,
				Status:   types.FlagStatusDisable,
				Position: len(project.Flags) + 1,
			})
		}
	}

	created, err := c.Options.Store.CreateProject(ctx, project)
	if err != nil {
		return nil, err
	}
	role, err := c.Options.Store.GetRole(ctx, types.RoleMaintainer)
	if err != nil {
		return nil, fmt.Errorf("error getting maintainer role: %w", err)
	}
	err = c.Options.Store.AddRelationship(ctx, &types.Relationship{
		ProjectID: &created.ID,
		RoleID:    role.ID,
		UserID:    &user.ID,
	})
	if err != nil {
		return nil, err
	}
	if err := c.pushMeta(ctx, name); err != nil {
		return nil, err
	}

	log.Ctx(ctx).Info().Str("project", name).Str("user", user.Login).Msg("project created")
	c.notify(ctx, user, types.ProjectEventCreated, name)
	return created, nil
}

// authorizeCreate allows admins, the owner of the home namespace and maintainers of
// the nearest existing parent project
func (c *Controller) authorizeCreate(ctx context.Context, user *types.User, name string) error {
	if user.Admin {
		return nil
	}
	home := user.HomeProjectName()
	if name == home || strings.HasPrefix(name, home+":") {
		return nil
	}

	parents, err := c.parentProjects(ctx, name)
	if err != nil {
		return err
	}
	if len(parents) > 0 {
		parent, err := c.getProject(ctx, parents[len(parents)-1])
		if err != nil {
			return err
		}
		ok, err := c.isMaintainer(ctx, user, parent.ID, nil)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}
	return fmt.Errorf("%w: %s may not create project %s", ErrForbidden, user.Login, name)
}

func (c *Controller) UpdateProject(ctx context.Context, user *types.User, name string, req *types.UpdateProjectRequest) (*types.Project, error) {
	if req.Title == nil {
		return nil, fmt.Errorf("%w: title must not be empty", ErrInvalidRequest)
	}
	project, err := c.authorizeProject(ctx, user, name)
	if err != nil {
		return nil, err
	}

	project.Title = *req.Title
	project.Description = req.Description
	updated, err := c.Options.Store.UpdateProject(ctx, project)
	if err != nil {
		return nil, err
	}
	if err := c.pushMeta(ctx, name); err != nil {
		return nil, err
	}
	c.notify(ctx, user, types.ProjectEventUpdated, name)
	return updated, nil
}

func (c *Controller) packageNames(ctx context.Context, projectID uint) ([]string, error) {
	packages, err := c.Options.Store.ListPackages(ctx, &store.ListPackagesQuery{ProjectID: projectID})
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(packages))
	for _, p := range packages {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names, nil
}

// projectPackages returns the local packages and the packages inherited through
// project links, mapped to the project providing them. Links are followed depth first
// and the first provider of a name wins.
func (c *Controller) projectPackages(ctx context.Context, project *types.Project) ([]string, map[string]string, error) {
	local, err := c.packageNames(ctx, project.ID)
	if err != nil {
		return nil, nil, err
	}
	seen := make(map[string]bool, len(local))
	for _, name := range local {
		seen[name] = true
	}

	inherited := map[string]string{}
	visited := map[uint]bool{project.ID: true}
	var walk func(p *types.Project) error
	walk = func(p *types.Project) error {
		for _, lp := range p.LinkedProjects {
			if lp.LinkedProject == nil || visited[lp.LinkedProject.ID] {
				continue
			}
			visited[lp.LinkedProject.ID] = true

			names, err := c.packageNames(ctx, lp.LinkedProject.ID)
			if err != nil {
				return err
			}
			for _, name := range names {
				if !seen[name] {
					seen[name] = true
					inherited[name] = lp.LinkedProject.Name
				}
			}

			linked, err := c.getProject(ctx, lp.LinkedProject.Name)
			if err != nil {
				return err
			}
			if err := walk(linked); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(project); err != nil {
		return nil, nil, err
	}
	return local, inherited, nil
}

// ProjectInfo collects everything shown on the project page
func (c *Controller) ProjectInfo(ctx context.Context, user *types.User, name string) (*types.ProjectInfo, error) {
	project, err := c.getProject(ctx, name)
	if err != nil {
		return nil, err
	}
	packages, inherited, err := c.projectPackages(ctx, project)
	if err != nil {
		return nil, err
	}

	info := &types.ProjectInfo{
		Project:           project,
		Packages:          packages,
		InheritedPackages: inherited,
		Maintenance: &types.MaintenanceInfo{
			IsMaintenanceProject: project.IsMaintenance(),
			IsIncident:           project.IsMaintenanceIncident(),
			ReleaseTargets:       releaseTargets(project),
		},
	}

	p := pool.New().WithErrors().WithContext(ctx).WithMaxGoroutines(c.Options.Concurrency)
	p.Go(func(ctx context.Context) error {
		linking, err := c.Options.Store.ListLinkingProjects(ctx, project.ID)
		info.LinkingProjects = linking
		return err
	})
	p.Go(func(ctx context.Context) error {
		requests, err := c.Options.Store.ListRequests(ctx, &store.ListRequestsQuery{
			Project: name,
			States:  types.OpenRequestStates,
		})
		info.Requests = requestIDs(requests)
		return err
	})
	p.Go(func(ctx context.Context) error {
		count, err := c.problemPackages(ctx, name)
		info.NrOfProblems = count
		return err
	})
	p.Go(func(ctx context.Context) error {
		emails, err := c.bugownerEmails(ctx, project.ID)
		info.BugownerEmails = emails
		return err
	})
	p.Go(func(ctx context.Context) error {
		names, err := c.Options.Store.ListMaintenanceProjectsFor(ctx, project.ID)
		info.Maintenance.MaintenanceProjects = names
		return err
	})
	if slices.Contains(packages, patchinfoPackage) {
		p.Go(func(ctx context.Context) error {
			info.HasPatchinfo = c.hasPatchinfo(ctx, name)
			return nil
		})
	}
	if project.IsMaintenance() {
		p.Go(func(ctx context.Context) error {
			incidents, err := c.openIncidents(ctx, name)
			info.Maintenance.OpenIncidents = incidents
			return err
		})
		p.Go(func(ctx context.Context) error {
			maintained, err := c.Options.Store.ListMaintainedProjects(ctx, project.ID)
			info.Maintenance.MaintainedProjects = maintained
			return err
		})
	}
	if project.IsMaintenanceIncident() {
		p.Go(func(ctx context.Context) error {
			requests, err := c.Options.Store.ListRequests(ctx, &store.ListRequestsQuery{
				Project: name,
				States:  types.OpenRequestStates,
				Types:   []types.RequestActionType{types.RequestActionTypeMaintenanceRelease},
			})
			info.Maintenance.OpenReleaseRequests = requestIDs(requests)
			return err
		})
	}
	if user != nil {
		p.Go(func(ctx context.Context) error {
			watched, err := c.Options.Store.IsWatchingProject(ctx, user.ID, project.ID)
			info.Watched = watched
			return err
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return info, nil
}

func requestIDs(requests []*types.BsRequest) []uint {
	ids := make([]uint, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.ID)
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}

// problemPackages counts the packages failed, broken or unresolvable somewhere.
// A project unknown to the backend has none.
func (c *Controller) problemPackages(ctx context.Context, name string) (int, error) {
	list, err := c.Options.Backend.GetBuildResults(ctx, name, &backend.BuildResultOptions{
		View:  "status",
		Codes: buildresult.ProblemCodes,
	})
	if err != nil {
		if backend.IsNotFound(err) {
			return 0, nil
		}
		return 0, err
	}
	return buildresult.CountProblemPackages(list), nil
}

func (c *Controller) hasPatchinfo(ctx context.Context, name string) bool {
	dir, err := c.Options.Backend.GetDirectory(ctx, name, patchinfoPackage)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("project", name).Msg("failed to list patchinfo package")
		return false
	}
	return dir.HasEntry(patchinfoFile)
}

func (c *Controller) bugownerEmails(ctx context.Context, projectID uint) ([]string, error) {
	relationships, err := c.Options.Store.ListRelationships(ctx, projectID)
	if err != nil {
		return nil, err
	}
	emails := []string{}
	for _, r := range relationships {
		if r.Role == nil || r.Role.Title != types.RoleBugowner {
			continue
		}
		switch {
		case r.User != nil && r.User.Email != "":
			emails = append(emails, r.User.Email)
		case r.Group != nil && r.Group.Email != "":
			emails = append(emails, r.Group.Email)
		}
	}
	slices.Sort(emails)
	return slices.Compact(emails), nil
}

// openIncidents returns the incident projects below the maintenance project that
// still release via a maintenance trigger
func (c *Controller) openIncidents(ctx context.Context, name string) ([]string, error) {
	incidents, err := c.Options.Store.ListProjects(ctx, &store.ListProjectsQuery{
		NamePrefix: name + ":",
		Kinds:      []types.ProjectKind{types.ProjectKindMaintenanceIncident},
	})
	if err != nil {
		return nil, err
	}

	open := []string{}
	for _, incident := range incidents {
		project, err := c.getProject(ctx, incident.Name)
		if err != nil {
			return nil, err
		}
		if hasMaintenanceTrigger(project) {
			open = append(open, project.Name)
		}
	}
	return open, nil
}

func hasMaintenanceTrigger(project *types.Project) bool {
	for _, repo := range project.Repositories {
		for _, rt := range repo.ReleaseTargets {
			if rt.Trigger == "maintenance" {
				return true
			}
		}
	}
	return false
}

// releaseTargets lists the first release target of each repository as project/repository
func releaseTargets(project *types.Project) []string {
	var targets []string
	for _, repo := range project.Repositories {
		for _, rt := range repo.ReleaseTargets {
			if rt.TargetRepository == nil || rt.TargetRepository.Project == nil {
				continue
			}
			targets = append(targets, rt.TargetRepository.Project.Name+"/"+rt.TargetRepository.Name)
			break
		}
	}
	return targets
}

// DeleteProject removes the project from the backend and the store. The result names
// the project to show next.
func (c *Controller) DeleteProject(ctx context.Context, user *types.User, name string, force bool) (*types.DeleteProjectResult, error) {
	project, err := c.authorizeProject(ctx, user, name)
	if err != nil {
		return nil, err
	}

	if err := c.Options.Backend.DeleteProject(ctx, name, force); err != nil {
		return nil, err
	}
	if err := c.Options.Store.DeleteProject(ctx, name); err != nil {
		return nil, err
	}
	log.Ctx(ctx).Info().Str("project", name).Str("user", user.Login).Bool("force", force).Msg("project deleted")
	c.notify(ctx, user, types.ProjectEventDeleted, name)

	result := &types.DeleteProjectResult{}
	if project.IsMaintenance() {
		result.RedirectTo = name
		return result, nil
	}
	parents, err := c.parentProjects(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(parents) > 0 {
		result.RedirectTo = parents[len(parents)-1]
	}
	return result, nil
}

// ToggleWatch adds the project to the user's watch list or removes it, and returns
// whether the project is watched afterwards
func (c *Controller) ToggleWatch(ctx context.Context, user *types.User, name string) (bool, error) {
	if err := requireUser(user); err != nil {
		return false, err
	}
	project, err := c.getProject(ctx, name)
	if err != nil {
		return false, err
	}

	watching, err := c.Options.Store.IsWatchingProject(ctx, user.ID, project.ID)
	if err != nil {
		return false, err
	}
	if watching {
		log.Ctx(ctx).Debug().Str("project", name).Str("user", user.Login).Msg("removing project from watchlist")
		return false, c.Options.Store.RemoveWatchedProject(ctx, user.ID, project.ID)
	}
	log.Ctx(ctx).Debug().Str("project", name).Str("user", user.Login).Msg("adding project to watchlist")
	return true, c.Options.Store.AddWatchedProject(ctx, user.ID, project.ID)
}

func (c *Controller) Meta(ctx context.Context, name string) ([]byte, error) {
	return c.renderMeta(ctx, name)
}

// SaveMeta stores a raw _meta document. Backend rejections are returned as invalid
// requests carrying the backend summary.
func (c *Controller) SaveMeta(ctx context.Context, user *types.User, name string, meta []byte) error {
	if _, err := c.authorizeProject(ctx, user, name); err != nil {
		return err
	}
	if err := c.Options.Backend.PutProjectMeta(ctx, name, meta); err != nil {
		return backendRejection(err)
	}
	c.notify(ctx, user, types.ProjectEventMetaSaved, name)
	return nil
}

func (c *Controller) Prjconf(ctx context.Context, name string) ([]byte, error) {
	prjconf, err := c.Options.Backend.GetProjectConfig(ctx, name)
	if err != nil {
		if backend.IsNotFound(err) {
			return nil, fmt.Errorf("%w: project _config not found: %s", ErrNotFound, name)
		}
		return nil, err
	}
	return prjconf, nil
}

func (c *Controller) SavePrjconf(ctx context.Context, user *types.User, name string, prjconf []byte) error {
	if err := requireUser(user); err != nil {
		return err
	}
	if err := c.Options.Backend.PutProjectConfig(ctx, name, prjconf); err != nil {
		return err
	}
	c.notify(ctx, user, types.ProjectEventConfigSaved, name)
	return nil
}

func (c *Controller) Unlock(ctx context.Context, user *types.User, name, comment string) error {
	if err := requireUser(user); err != nil {
		return err
	}
	if _, err := c.getProject(ctx, name); err != nil {
		return err
	}
	_, err := c.Options.Backend.SourceCommand(ctx, name, "unlock", url.Values{"comment": {comment}})
	if err != nil {
		return err
	}
	c.notify(ctx, user, types.ProjectEventUnlocked, name)
	return nil
}

// backendRejection turns a backend error into an invalid request with its summary
func backendRejection(err error) error {
	var backendErr *backend.Error
	if errors.As(err, &backendErr) {
		return fmt.Errorf("%w: %s", ErrInvalidRequest, backendErr.Summary)
	}
	return err
}
