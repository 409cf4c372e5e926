package controller

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/Artox/open-build-service/api/pkg/backend"
	"github.com/Artox/open-build-service/api/pkg/diststats"
	"github.com/Artox/open-build-service/api/pkg/store"
	"github.com/Artox/open-build-service/api/pkg/types"
)

const (
	imagesRepository = "images"
	kiwiPrjconf      = "%if \"%_repository\" == \"images\"\nType: kiwi\nRepotype: none\nPatterntype: none\n%endif\n"

	cmdSetFlag    = "set_flag"
	cmdRemoveFlag = "remove_flag"
	cmdRelease    = "release"
)

var (
	targetNameRE = regexp.MustCompile(`^\w[-.\w&]*$`)
	typeLineRE   = regexp.MustCompile(`(?m)^Type:`)

	rebuildJobCodes = []string{"succeeded", "unchanged"}
)

var flagDefaults = map[types.FlagType]types.FlagStatus{
	types.FlagTypeBuild:       types.FlagStatusEnable,
	types.FlagTypePublish:     types.FlagStatusEnable,
	types.FlagTypeDebugInfo:   types.FlagStatusDisable,
	types.FlagTypeUseForBuild: types.FlagStatusEnable,
}

func ValidTargetName(name string) bool {
	return targetNameRE.MatchString(name)
}

// effectiveFlag returns the state of a flag type for repository/arch, where the empty
// name stands for all. Flags naming both win over a repository flag, which wins over
// an architecture flag, which wins over a general one.
func effectiveFlag(flags []*types.Flag, flagType types.FlagType, repository, arch string) types.FlagStatus {
	status := flagDefaults[flagType]
	best := -1
	for _, f := range flags {
		if f.PackageID != nil || f.Type != flagType {
			continue
		}
		if f.Repository != "" && f.Repository != repository {
			continue
		}
		if f.Architecture != "" && f.Architecture != arch {
			continue
		}
		score := 0
		if f.Repository != "" {
			score += 2
		}
		if f.Architecture != "" {
			score++
		}
		if score >= best {
			best = score
			status = f.Status
		}
	}
	return status
}

// expandFlags computes the effective state of each flag type for every repository and architecture
func expandFlags(project *types.Project, flagTypes []types.FlagType) types.RepositoryFlags {
	var allArchs []string
	for _, repo := range project.Repositories {
		for _, a := range repo.ArchitectureNames() {
			if !slices.Contains(allArchs, a) {
				allArchs = append(allArchs, a)
			}
		}
	}
	slices.Sort(allArchs)

	result := types.RepositoryFlags{}
	for _, flagType := range flagTypes {
		byRepo := map[string]map[string]types.FlagStatus{}
		byRepo[""] = archStates(project.Flags, flagType, "", allArchs)
		for _, repo := range project.Repositories {
			byRepo[repo.Name] = archStates(project.Flags, flagType, repo.Name, repo.ArchitectureNames())
		}
		result[flagType] = byRepo
	}
	return result
}

func archStates(flags []*types.Flag, flagType types.FlagType, repository string, archs []string) map[string]types.FlagStatus {
	states := map[string]types.FlagStatus{"": effectiveFlag(flags, flagType, repository, "")}
	for _, a := range archs {
		states[a] = effectiveFlag(flags, flagType, repository, a)
	}
	return states
}

func (c *Controller) Repositories(ctx context.Context, name string) (*types.RepositoriesResult, error) {
	project, err := c.getProject(ctx, name)
	if err != nil {
		return nil, err
	}
	if project.IsRemote() {
		return nil, fmt.Errorf("%w: can't show repositories for remote instances", ErrInvalidRequest)
	}
	return &types.RepositoriesResult{
		Project:      project,
		Repositories: project.Repositories,
		Flags:        expandFlags(project, types.RepositoryFlagTypes),
	}, nil
}

func (c *Controller) getRepository(ctx context.Context, project *types.Project, name string) (*types.Repository, error) {
	repo := project.Repository(name)
	if repo == nil {
		return nil, fmt.Errorf("%w: repository %s/%s", ErrNotFound, project.Name, name)
	}
	return repo, nil
}

// archMap marks the architectures of the repository among the available ones. Used
// architectures that are no longer available are kept.
func (c *Controller) archMap(ctx context.Context, repo *types.Repository) (map[string]bool, error) {
	available, err := c.Options.Store.ListArchitectures(ctx, true)
	if err != nil {
		return nil, err
	}
	archs := make(map[string]bool, len(available))
	for _, a := range available {
		archs[a.Name] = false
	}
	for _, a := range repo.ArchitectureNames() {
		archs[a] = true
	}
	return archs, nil
}

func (c *Controller) EditRepository(ctx context.Context, name, repository string) (*types.EditRepositoryResult, error) {
	project, err := c.getProject(ctx, name)
	if err != nil {
		return nil, err
	}
	repo, err := c.getRepository(ctx, project, repository)
	if err != nil {
		return nil, err
	}
	archs, err := c.archMap(ctx, repo)
	if err != nil {
		return nil, err
	}
	return &types.EditRepositoryResult{Repository: repo, Archs: archs}, nil
}

func (c *Controller) architectures(ctx context.Context, names []string) ([]*types.RepositoryArchitecture, error) {
	archs, err := c.Options.Store.GetArchitecturesByName(ctx, names)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, err)
		}
		return nil, err
	}
	entries := make([]*types.RepositoryArchitecture, 0, len(archs))
	for _, a := range archs {
		entries = append(entries, &types.RepositoryArchitecture{ArchitectureID: a.ID, Architecture: a})
	}
	return entries, nil
}

// UpdateTarget replaces the architectures of the repository
func (c *Controller) UpdateTarget(ctx context.Context, user *types.User, name, repository string, archNames []string) (*types.EditRepositoryResult, error) {
	project, err := c.authorizeProject(ctx, user, name)
	if err != nil {
		return nil, err
	}
	repo, err := c.getRepository(ctx, project, repository)
	if err != nil {
		return nil, err
	}
	archs, err := c.architectures(ctx, archNames)
	if err != nil {
		return nil, err
	}

	repo.Architectures = archs
	if _, err := c.Options.Store.SaveRepository(ctx, repo); err != nil {
		return nil, err
	}
	if err := c.pushMeta(ctx, name); err != nil {
		return nil, err
	}
	c.notify(ctx, user, types.ProjectEventRepositories, name)

	archMap, err := c.archMap(ctx, repo)
	if err != nil {
		return nil, err
	}
	return &types.EditRepositoryResult{Repository: repo, Archs: archMap}, nil
}

// resolveRepository finds the repository named by a "project/repository" path
func (c *Controller) resolveRepository(ctx context.Context, path string) (*types.Repository, error) {
	i := strings.LastIndex(path, "/")
	if i <= 0 || i == len(path)-1 {
		return nil, fmt.Errorf("%w: invalid repository path '%s'", ErrInvalidRequest, path)
	}
	project, err := c.getProject(ctx, path[:i])
	if err != nil {
		return nil, err
	}
	repo, err := c.getRepository(ctx, project, path[i+1:])
	if err != nil {
		return nil, err
	}
	repo.Project = project
	return repo, nil
}

// AddRepositories extends an existing repository with a path or adds new
// repositories building against a path
func (c *Controller) AddRepositories(ctx context.Context, user *types.User, name string, req *types.AddRepositoriesRequest) error {
	if req.TargetProject == "" && req.ToRepository == "" && len(req.Repos) == 0 && req.TargetRepo == "" {
		return fmt.Errorf("%w: missing arguments for target project or repository", ErrInvalidRequest)
	}
	project, err := c.authorizeProject(ctx, user, name)
	if err != nil {
		return err
	}
	defaultPath := req.TargetProject + "/" + req.TargetRepo

	switch {
	case req.ToRepository != "":
		repo, err := c.getRepository(ctx, project, req.ToRepository)
		if err != nil {
			return err
		}
		if repo.HasPath(req.TargetProject, req.TargetRepo) {
			return fmt.Errorf("%w: path %s is already set for this repository", ErrInvalidRequest, defaultPath)
		}
		linked, err := c.resolveRepository(ctx, defaultPath)
		if err != nil {
			return err
		}
		repo.Paths = append(repo.Paths, &types.PathElement{LinkedRepositoryID: linked.ID, LinkedRepository: linked})
		if _, err := c.Options.Store.SaveRepository(ctx, repo); err != nil {
			return err
		}

	case len(req.Repos) > 0:
		for _, repoName := range req.Repos {
			if !ValidTargetName(repoName) {
				return fmt.Errorf("%w: illegal target name %s", ErrInvalidRequest, repoName)
			}
			if project.Repository(repoName) != nil {
				return fmt.Errorf("%w: repository %s already exists", ErrInvalidRequest, repoName)
			}
		}

		repos := make([]*types.Repository, 0, len(req.Repos))
		for _, repoName := range req.Repos {
			path := defaultPath
			if p, ok := req.RepoPaths[repoName]; ok && p != "" {
				path = p
			}
			archNames := req.Archs
			if a, ok := req.RepoArchs[repoName]; ok {
				archNames = a
			}

			linked, err := c.resolveRepository(ctx, path)
			if err != nil {
				return err
			}
			archs, err := c.architectures(ctx, archNames)
			if err != nil {
				return err
			}
			log.Ctx(ctx).Debug().Str("project", name).Str("repository", repoName).Str("path", path).Strs("archs", archNames).Msg("adding repository")
			repos = append(repos, &types.Repository{
				ProjectID:     project.ID,
				Name:          repoName,
				Architectures: archs,
				Paths:         []*types.PathElement{{LinkedRepositoryID: linked.ID, LinkedRepository: linked}},
			})
		}
		for _, repo := range repos {
			if _, err := c.Options.Store.SaveRepository(ctx, repo); err != nil {
				return err
			}
		}
		if slices.Contains(req.Repos, imagesRepository) {
			if err := c.ensureKiwiPrjconf(ctx, name); err != nil {
				return err
			}
		}

	default:
		return fmt.Errorf("%w: nothing to add", ErrInvalidRequest)
	}

	if err := c.pushMeta(ctx, name); err != nil {
		return err
	}
	c.notify(ctx, user, types.ProjectEventRepositories, name)
	return nil
}

// ensureKiwiPrjconf prepends the image build settings to a project config without a Type line
func (c *Controller) ensureKiwiPrjconf(ctx context.Context, name string) error {
	prjconf, err := c.Options.Backend.GetProjectConfig(ctx, name)
	if err != nil && !backend.IsNotFound(err) {
		return err
	}
	if typeLineRE.Match(prjconf) {
		return nil
	}
	return c.Options.Backend.PutProjectConfig(ctx, name, append([]byte(kiwiPrjconf), prjconf...))
}

func (c *Controller) RemoveTarget(ctx context.Context, user *types.User, name, target string) error {
	if target == "" {
		return fmt.Errorf("%w: no target selected", ErrInvalidRequest)
	}
	project, err := c.authorizeProject(ctx, user, name)
	if err != nil {
		return err
	}
	repo, err := c.getRepository(ctx, project, target)
	if err != nil {
		return err
	}

	if err := c.Options.Store.DeleteRepository(ctx, repo.ID); err != nil {
		return err
	}
	if err := c.pushMeta(ctx, name); err != nil {
		return err
	}
	c.notify(ctx, user, types.ProjectEventRepositories, name)
	return nil
}

func (c *Controller) ReleaseRepository(ctx context.Context, user *types.User, name, repository, releaseTarget string) error {
	project, err := c.authorizeProject(ctx, user, name)
	if err != nil {
		return err
	}
	if _, err := c.getRepository(ctx, project, repository); err != nil {
		return err
	}

	params := url.Values{"repository": {repository}}
	if releaseTarget != "" {
		params.Set("target", releaseTarget)
	}
	_, err = c.Options.Backend.SourceCommand(ctx, name, cmdRelease, params)
	return err
}

func pathIndex(repo *types.Repository, project, repository string) int {
	return slices.IndexFunc(repo.Paths, func(p *types.PathElement) bool {
		return p.LinkedRepository != nil && p.LinkedRepository.Project != nil &&
			p.LinkedRepository.Project.Name == project && p.LinkedRepository.Name == repository
	})
}

func (c *Controller) RemovePath(ctx context.Context, user *types.User, name, repository, pathProject, pathRepository string) error {
	return c.changePaths(ctx, user, name, repository, pathProject, pathRepository, func(paths []*types.PathElement, i int) []*types.PathElement {
		return slices.Delete(paths, i, i+1)
	})
}

// MovePath swaps the path with its neighbour. Moving past either end changes nothing.
func (c *Controller) MovePath(ctx context.Context, user *types.User, name, repository, pathProject, pathRepository string, direction types.PathDirection) error {
	var offset int
	switch direction {
	case types.PathDirectionUp:
		offset = -1
	case types.PathDirectionDown:
		offset = 1
	default:
		return fmt.Errorf("%w: invalid direction '%s'", ErrInvalidRequest, direction)
	}

	return c.changePaths(ctx, user, name, repository, pathProject, pathRepository, func(paths []*types.PathElement, i int) []*types.PathElement {
		j := i + offset
		if j >= 0 && j < len(paths) {
			paths[i], paths[j] = paths[j], paths[i]
		}
		return paths
	})
}

func (c *Controller) changePaths(ctx context.Context, user *types.User, name, repository, pathProject, pathRepository string, change func([]*types.PathElement, int) []*types.PathElement) error {
	if repository == "" || pathProject == "" || pathRepository == "" {
		return fmt.Errorf("%w: repository, path_project and path_repository are required", ErrInvalidRequest)
	}
	project, err := c.authorizeProject(ctx, user, name)
	if err != nil {
		return err
	}
	repo, err := c.getRepository(ctx, project, repository)
	if err != nil {
		return err
	}
	i := pathIndex(repo, pathProject, pathRepository)
	if i < 0 {
		return fmt.Errorf("%w: path %s/%s of %s", ErrNotFound, pathProject, pathRepository, repository)
	}

	repo.Paths = change(repo.Paths, i)
	if _, err := c.Options.Store.SaveRepository(ctx, repo); err != nil {
		return err
	}
	if err := c.pushMeta(ctx, name); err != nil {
		return err
	}
	c.notify(ctx, user, types.ProjectEventRepositories, name)
	return nil
}

func (c *Controller) RepositoryState(ctx context.Context, name, repository string) (*types.RepositoryState, error) {
	if repository == "" {
		return nil, fmt.Errorf("%w: repository is required", ErrInvalidRequest)
	}
	return c.cycles.RepositoryCycles(ctx, name, repository)
}

// RebuildTime estimates how long a full rebuild of the repository/arch takes. When
// mkdiststats produces nothing the result is empty.
func (c *Controller) RebuildTime(ctx context.Context, name, repository, arch, hosts, scheduler string) (*types.RebuildTimeResult, error) {
	if repository == "" || arch == "" {
		return nil, fmt.Errorf("%w: repository and arch are required", ErrInvalidRequest)
	}
	scheduler, err := diststats.ValidateScheduler(scheduler)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	project, err := c.getProject(ctx, name)
	if err != nil {
		return nil, err
	}
	packages, inherited, err := c.projectPackages(ctx, project)
	if err != nil {
		return nil, err
	}

	opts := diststats.Options{
		Project:    name,
		Repository: repository,
		Arch:       arch,
		Hosts:      diststats.ParseHosts(hosts),
		Scheduler:  scheduler,
	}

	var (
		deps *backend.BuilddepInfo
		jobs *backend.JobHistoryList
	)
	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		deps, err = c.Options.Backend.GetBuilddepInfo(ctx, name, repository, arch, "")
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		jobs, err = c.Options.Backend.GetJobHistory(ctx, name, repository, arch, &backend.JobHistoryOptions{
			Limit: (len(packages) + len(inherited)) * 3,
			Codes: rebuildJobCodes,
		})
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, fmt.Errorf("could not collect infos about repository %s/%s: %w", repository, arch, err)
	}

	result, err := c.Options.Diststats.RebuildTime(ctx, opts, deps.Raw, jobs.Raw)
	if errors.Is(err, diststats.ErrNoResult) {
		return &types.RebuildTimeResult{
			Project:     name,
			Repository:  repository,
			Arch:        arch,
			Hosts:       opts.Hosts,
			Scheduler:   opts.Scheduler,
			Timings:     []types.RebuildTiming{},
			LongestPath: [][]string{},
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Controller) RebuildTimePNG(key string) ([]byte, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: key is required", ErrInvalidRequest)
	}
	png, ok := c.Options.Diststats.PNG(key)
	if !ok {
		return nil, fmt.Errorf("%w: rebuild image %s", ErrNotFound, key)
	}
	return png, nil
}

// DefaultDistributions groups the configured distributions by vendor
func (c *Controller) DefaultDistributions(ctx context.Context) ([]*types.DistributionVendor, error) {
	distributions, err := c.Options.Store.ListDistributions(ctx)
	if err != nil {
		return nil, err
	}

	vendors := []*types.DistributionVendor{}
	byVendor := map[string]*types.DistributionVendor{}
	for _, d := range distributions {
		v, ok := byVendor[d.Vendor]
		if !ok {
			v = &types.DistributionVendor{Vendor: d.Vendor}
			byVendor[d.Vendor] = v
			vendors = append(vendors, v)
		}
		v.Distributions = append(v.Distributions, d)
	}
	return vendors, nil
}

// ChangeFlag sets or removes a flag in the backend, mirrors it into the store and
// returns the new effective states of the flag type
func (c *Controller) ChangeFlag(ctx context.Context, user *types.User, name string, req *types.ChangeFlagRequest) (types.RepositoryFlags, error) {
	if req.Command != cmdSetFlag && req.Command != cmdRemoveFlag {
		return nil, fmt.Errorf("%w: invalid command '%s'", ErrInvalidRequest, req.Command)
	}
	flagType, err := types.ValidateFlagType(string(req.Flag))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, err)
	}
	if req.Command == cmdSetFlag {
		if _, err := types.ValidateFlagStatus(string(req.Status)); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, err)
		}
	}
	project, err := c.authorizeProject(ctx, user, name)
	if err != nil {
		return nil, err
	}

	params := url.Values{"flag": {string(flagType)}}
	if req.Repository != "" {
		params.Set("repository", req.Repository)
	}
	if req.Arch != "" {
		params.Set("arch", req.Arch)
	}
	if req.Status != "" {
		params.Set("status", string(req.Status))
	}
	if _, err := c.Options.Backend.SourceCommand(ctx, name, req.Command, params); err != nil {
		return nil, err
	}

	if req.Command == cmdSetFlag {
		err = c.Options.Store.SetFlag(ctx, &types.Flag{
			ProjectID:    project.ID,
			Type:         flagType,
			Status:       req.Status,
			Repository:   req.Repository,
			Architecture: req.Arch,
		})
	} else {
		err = c.Options.Store.RemoveFlag(ctx, project.ID, flagType, req.Repository, req.Arch)
	}
	if err != nil {
		return nil, err
	}
	c.notify(ctx, user, types.ProjectEventUpdated, name)

	project, err = c.getProject(ctx, name)
	if err != nil {
		return nil, err
	}
	return expandFlags(project, []types.FlagType{flagType}), nil
}
