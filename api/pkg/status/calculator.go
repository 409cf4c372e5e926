package status

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/Artox/open-build-service/api/pkg/backend"
	"github.com/Artox/open-build-service/api/pkg/metrics"
	"github.com/Artox/open-build-service/api/pkg/store"
	"github.com/Artox/open-build-service/api/pkg/types"
)

// jobHistoryLastFailures asks the backend for the most recent failure of every package
const jobHistoryLastFailures = "lastfailures"

// Calculator builds the status snapshot of a project from the store and the backend
type Calculator struct {
	store       store.Store
	backend     backend.Client
	concurrency int
}

func NewCalculator(store store.Store, backend backend.Client, concurrency int) *Calculator {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Calculator{
		store:       store,
		backend:     backend,
		concurrency: concurrency,
	}
}

// Calculate returns package id -> state for every package of the project
func (c *Calculator) Calculate(ctx context.Context, projectName string) (types.StatusSnapshot, error) {
	start := time.Now()
	defer func() {
		metrics.StatusSnapshotDuration.Observe(time.Since(start).Seconds())
	}()

	project, err := c.store.GetProject(ctx, projectName)
	if err != nil {
		return nil, err
	}
	packages, err := c.store.ListPackages(ctx, &store.ListPackagesQuery{ProjectID: project.ID})
	if err != nil {
		return nil, err
	}

	var (
		mu      sync.Mutex
		infos   map[string]*backend.SourceInfo
		fails   = map[string][]types.PackageFail{}
		sources = map[sourceKey]*backend.SourceInfo{}
	)

	p := pool.New().WithErrors().WithContext(ctx).WithMaxGoroutines(c.concurrency)
	p.Go(func(ctx context.Context) error {
		list, err := c.backend.GetSourceInfo(ctx, project.Name, nil)
		if err != nil {
			return fmt.Errorf("error getting source info of %s: %w", project.Name, err)
		}
		mu.Lock()
		infos = indexSourceInfo(list)
		mu.Unlock()
		return nil
	})
	for _, repo := range project.Repositories {
		for _, arch := range repo.ArchitectureNames() {
			repoName := repo.Name
			p.Go(func(ctx context.Context) error {
				history, err := c.backend.GetJobHistory(ctx, project.Name, repoName, arch, &backend.JobHistoryOptions{
					Codes: []string{jobHistoryLastFailures},
				})
				if err != nil {
					log.Ctx(ctx).Warn().Err(err).
						Str("project", project.Name).
						Str("repository", repoName).
						Str("arch", arch).
						Msg("skipping job history")
					return nil
				}
				mu.Lock()
				defer mu.Unlock()
				for _, entry := range history.Entries {
					fails[entry.Package] = append(fails[entry.Package], types.PackageFail{
						Repository:   repoName,
						Architecture: arch,
						Time:         entry.ReadyTime,
						MD5:          entry.VerifyMD5,
					})
				}
				return nil
			})
		}
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	// the second round needs the links found in the project's own source info
	wanted := map[string]map[string]bool{}
	want := func(prj, pkg string) {
		if prj == project.Name {
			return
		}
		if wanted[prj] == nil {
			wanted[prj] = map[string]bool{}
		}
		wanted[prj][pkg] = true
	}
	for _, pkg := range packages {
		if devel := pkg.DevelPackage; devel != nil && devel.Project != nil {
			want(devel.Project.Name, devel.Name)
		}
		if info := infos[pkg.Name]; info != nil && len(info.Linked) > 0 {
			want(info.Linked[0].Project, info.Linked[0].Package)
		}
	}

	p = pool.New().WithErrors().WithContext(ctx).WithMaxGoroutines(c.concurrency)
	for prj, names := range wanted {
		pkgNames := make([]string, 0, len(names))
		for name := range names {
			pkgNames = append(pkgNames, name)
		}
		sort.Strings(pkgNames)

		p.Go(func(ctx context.Context) error {
			list, err := c.backend.GetSourceInfo(ctx, prj, pkgNames)
			if err != nil {
				// a vanished devel or link project only loses the comparison
				if backend.IsNotFound(err) {
					return nil
				}
				return fmt.Errorf("error getting source info of %s: %w", prj, err)
			}
			mu.Lock()
			defer mu.Unlock()
			for name, info := range indexSourceInfo(list) {
				sources[sourceKey{project: prj, pkg: name}] = info
			}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	lookup := func(prj, pkg string) *backend.SourceInfo {
		if prj == project.Name {
			return infos[pkg]
		}
		return sources[sourceKey{project: prj, pkg: pkg}]
	}

	snapshot := make(types.StatusSnapshot, len(packages))
	for _, pkg := range packages {
		status := &types.PackageStatus{
			PackageID: pkg.ID,
			Project:   project.Name,
			Name:      pkg.Name,
			Fails:     sortFails(fails[pkg.Name]),
		}
		if info := infos[pkg.Name]; info != nil {
			status.SrcMD5 = info.SrcMD5
			status.VerifyMD5 = info.VerifyMD5
			status.ChangesMD5 = info.ChangesMD5
			status.MaxMTime = info.MaxMTime
			status.Version = info.Version
			status.Error = info.Error

			if len(info.Linked) > 0 {
				linked := info.Linked[0]
				status.LinksTo = newPackageRef(0, linked.Project, linked.Package, lookup(linked.Project, linked.Package))
			}
		}
		if devel := pkg.DevelPackage; devel != nil && devel.Project != nil {
			status.DevelPack = newPackageRef(devel.ID, devel.Project.Name, devel.Name, lookup(devel.Project.Name, devel.Name))
		}
		snapshot[pkg.ID] = status
	}

	log.Ctx(ctx).Debug().
		Str("project", project.Name).
		Int("packages", len(snapshot)).
		Dur("took", time.Since(start)).
		Msg("calculated status snapshot")

	return snapshot, nil
}

type sourceKey struct {
	project string
	pkg     string
}

func indexSourceInfo(list *backend.SourceInfoList) map[string]*backend.SourceInfo {
	result := map[string]*backend.SourceInfo{}
	if list == nil {
		return result
	}
	for i := range list.SourceInfos {
		info := &list.SourceInfos[i]
		result[info.Package] = info
	}
	return result
}

func newPackageRef(packageID uint, project, name string, info *backend.SourceInfo) *types.PackageRef {
	ref := &types.PackageRef{
		PackageID: packageID,
		Project:   project,
		Name:      name,
	}
	if info != nil {
		ref.VerifyMD5 = info.VerifyMD5
		ref.ChangesMD5 = info.ChangesMD5
		ref.MaxMTime = info.MaxMTime
		ref.Error = info.Error
	}
	return ref
}

func sortFails(fails []types.PackageFail) []types.PackageFail {
	sort.SliceStable(fails, func(i, j int) bool {
		if fails[i].Repository != fails[j].Repository {
			return fails[i].Repository < fails[j].Repository
		}
		return fails[i].Architecture < fails[j].Architecture
	})
	return fails
}
