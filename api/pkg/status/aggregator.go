package status

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/dgraph-io/ristretto/v2"
	"github.com/rs/zerolog/log"

	"github.com/Artox/open-build-service/api/pkg/backend"
	"github.com/Artox/open-build-service/api/pkg/config"
	"github.com/Artox/open-build-service/api/pkg/metrics"
	"github.com/Artox/open-build-service/api/pkg/ptr"
	"github.com/Artox/open-build-service/api/pkg/store"
	"github.com/Artox/open-build-service/api/pkg/types"
)

// requestStates are the submit request states shown on the status page
var requestStates = []types.RequestState{
	types.RequestStateNew,
	types.RequestStateReview,
	types.RequestStateDeclined,
}

// Aggregator turns cached project snapshots into the filtered status page
type Aggregator struct {
	cfg        config.Status
	store      store.Store
	backend    backend.Client
	calculator *Calculator

	snapshots *ristretto.Cache[string, types.StatusSnapshot]
	revs      *ristretto.Cache[string, string]
}

func NewAggregator(cfg config.Status, store store.Store, backend backend.Client) (*Aggregator, error) {
	snapshots, err := ristretto.NewCache(&ristretto.Config[string, types.StatusSnapshot]{
		NumCounters: 1e5,
		MaxCost:     1 << 12,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot cache: %w", err)
	}
	revs, err := ristretto.NewCache(&ristretto.Config[string, string]{
		NumCounters: 1e6,
		MaxCost:     1 << 16,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create revision cache: %w", err)
	}

	return &Aggregator{
		cfg:        cfg,
		store:      store,
		backend:    backend,
		calculator: NewCalculator(store, backend, cfg.Concurrency),
		snapshots:  snapshots,
		revs:       revs,
	}, nil
}

func snapshotKey(project string) string {
	return "prj_status-" + project
}

func revKey(project, pkg, md5 string) string {
	return fmt.Sprintf("rev-%s-%s-%s", project, pkg, md5)
}

// Snapshot returns the cached snapshot of the project, calculating it on a miss.
// Callers must not modify the returned entries.
func (a *Aggregator) Snapshot(ctx context.Context, project string) (types.StatusSnapshot, error) {
	if snapshot, found := a.snapshots.Get(snapshotKey(project)); found {
		metrics.StatusCacheLookups.WithLabelValues("hit").Inc()
		return snapshot, nil
	}
	metrics.StatusCacheLookups.WithLabelValues("miss").Inc()
	return a.Refresh(ctx, project)
}

// Refresh recalculates the snapshot of the project and stores it in the cache
func (a *Aggregator) Refresh(ctx context.Context, project string) (types.StatusSnapshot, error) {
	snapshot, err := a.calculator.Calculate(ctx, project)
	if err != nil {
		return nil, err
	}
	a.snapshots.SetWithTTL(snapshotKey(project), snapshot, 1, a.cfg.CacheTTL)
	a.snapshots.Wait()
	return snapshot, nil
}

// Invalidate drops the cached snapshot of the project
func (a *Aggregator) Invalidate(project string) {
	a.snapshots.Del(snapshotKey(project))
}

func (a *Aggregator) Close() {
	a.snapshots.Close()
	a.revs.Close()
}

// Status returns the packages of the project that need attention
func (a *Aggregator) Status(ctx context.Context, project string, filter types.StatusFilter) (*types.StatusResult, error) {
	snapshot, err := a.Snapshot(ctx, project)
	if err != nil {
		return nil, err
	}

	var relevant map[uint]bool
	if filter.FilterForUser != "" {
		user, err := a.store.GetUser(ctx, filter.FilterForUser)
		if err != nil {
			return nil, fmt.Errorf("error getting user %s: %w", filter.FilterForUser, err)
		}
		ids, err := a.store.RelevantPackageIDsForUser(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		relevant = make(map[uint]bool, len(ids))
		for _, id := range ids {
			relevant[id] = true
		}
	}

	selected, develProjects := filterPackages(snapshot, filter, relevant)

	if err := a.gatherAttributes(ctx, selected, filter); err != nil {
		return nil, err
	}
	requests, err := a.gatherRequests(ctx, project, selected)
	if err != nil {
		return nil, err
	}

	result := &types.StatusResult{
		Project:       project,
		Packages:      []*types.StatusPackage{},
		DevelProjects: develProjects,
		Filter:        filter,
	}
	for _, status := range sortedByName(selected) {
		if pkg := a.checkPackage(ctx, project, status, filter, requests); pkg != nil {
			result.Packages = append(result.Packages, pkg)
		}
	}
	return result, nil
}

// filterPackages copies the snapshot entries matching the filter. The devel projects
// are collected from every entry before filtering.
func filterPackages(snapshot types.StatusSnapshot, filter types.StatusFilter, relevant map[uint]bool) (map[uint]*types.PackageStatus, []string) {
	selected := map[uint]*types.PackageStatus{}
	seen := map[string]bool{}
	develProjects := []string{}

	for id, status := range snapshot {
		devel := status.DevelPack
		if devel != nil && !seen[devel.Project] {
			seen[devel.Project] = true
			develProjects = append(develProjects, devel.Project)
		}

		switch {
		case filter.Devel.All, !filter.Devel.None && filter.Devel.Project == "":
		case filter.Devel.None:
			if devel != nil {
				continue
			}
		default:
			if devel == nil || devel.Project != filter.Devel.Project {
				continue
			}
		}

		if relevant != nil {
			matchID := status.PackageID
			if devel != nil {
				matchID = devel.PackageID
			}
			if !relevant[matchID] {
				continue
			}
		}

		selected[id] = status.Clone()
	}

	sort.Slice(develProjects, func(i, j int) bool {
		a, b := strings.ToLower(develProjects[i]), strings.ToLower(develProjects[j])
		if a != b {
			return a < b
		}
		return develProjects[i] < develProjects[j]
	})
	return selected, develProjects
}

type statusAttribute struct {
	namespace string
	name      string
	set       func(*types.PackageStatus, string)
}

func (a *Aggregator) gatherAttributes(ctx context.Context, selected map[uint]*types.PackageStatus, filter types.StatusFilter) error {
	ids := make([]uint, 0, len(selected))
	for id := range selected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	attributes := []statusAttribute{
		{types.AttribNamespaceOBS, types.AttribFailComment, func(p *types.PackageStatus, v string) { p.FailedComment = v }},
	}
	if filter.IncludeVersions || filter.LimitToOld {
		attributes = append(attributes,
			statusAttribute{types.AttribNamespaceOpenSUSE, types.AttribUpstreamVersion, func(p *types.PackageStatus, v string) { p.UpstreamVersion = v }},
			statusAttribute{types.AttribNamespaceOpenSUSE, types.AttribUpstreamTarballURL, func(p *types.PackageStatus, v string) { p.UpstreamURL = v }},
		)
	}

	for _, attr := range attributes {
		values, err := a.store.ListAttribValues(ctx, &store.ListAttribValuesQuery{
			Namespace:  attr.namespace,
			Name:       attr.name,
			PackageIDs: ids,
		})
		if err != nil {
			return err
		}
		for id, value := range values {
			if status, ok := selected[id]; ok {
				attr.set(status, value)
			}
		}
	}
	return nil
}

type requestIndex struct {
	// target project/package -> open submit request ids
	submits  map[string][]uint
	declined map[uint]*types.BsRequest
}

func (a *Aggregator) gatherRequests(ctx context.Context, project string, selected map[uint]*types.PackageStatus) (*requestIndex, error) {
	// requests into the devel projects are needed too, so the query is not
	// restricted to this project
	targets, err := a.store.ListSubmitRequestTargets(ctx, nil, requestStates)
	if err != nil {
		return nil, err
	}

	name2id := make(map[string]uint, len(selected))
	for id, status := range selected {
		name2id[status.Name] = id
	}

	index := &requestIndex{
		submits:  map[string][]uint{},
		declined: map[uint]*types.BsRequest{},
	}
	var declinedIDs []uint
	for _, target := range targets {
		if target.State == types.RequestStateDeclined {
			id, ok := name2id[target.TargetPackage]
			if target.TargetProject != project || !ok {
				continue
			}
			selected[id].DeclinedRequest = target.ID
			if _, seen := index.declined[target.ID]; !seen {
				index.declined[target.ID] = nil
				declinedIDs = append(declinedIDs, target.ID)
			}
			continue
		}
		key := target.TargetProject + "/" + target.TargetPackage
		index.submits[key] = append(index.submits[key], target.ID)
	}

	if len(declinedIDs) > 0 {
		requests, err := a.store.ListRequestsByIDs(ctx, declinedIDs)
		if err != nil {
			return nil, err
		}
		for _, request := range requests {
			index.declined[request.ID] = request
		}
	}
	return index, nil
}

// checkPackage builds the record of one package, nil when there is nothing to report
func (a *Aggregator) checkPackage(ctx context.Context, project string, p *types.PackageStatus, filter types.StatusFilter, requests *requestIndex) *types.StatusPackage {
	pkg := &types.StatusPackage{
		Name:         p.Name,
		RequestsFrom: []uint{},
		RequestsTo:   []uint{},
		Problems:     []string{},
	}

	if from, ok := requests.submits[project+"/"+p.Name]; ok {
		if filter.IgnorePending {
			return nil
		}
		pkg.RequestsFrom = append(pkg.RequestsFrom, from...)
	}
	pkg.FailedComment = p.FailedComment

	// the newest fail of the current sources, older sources never count
	var newest int64
	for _, fail := range p.Fails {
		if newest > fail.Time {
			continue
		}
		if fail.MD5 != p.VerifyMD5 {
			continue
		}
		pkg.FailedArch = fail.Architecture
		pkg.FailedRepo = fail.Repository
		newest = fail.Time
		pkg.FirstFail = ptr.To(newest)
	}
	if pkg.FirstFail == nil && filter.LimitToFails {
		return nil
	}

	pkg.MD5 = p.VerifyMD5
	pkg.ChangesMD5 = p.ChangesMD5
	a.checkDevelPackage(ctx, pkg, p, requests)

	pkg.Version = p.Version
	if newerUpstream(p.Version, p.UpstreamVersion) {
		pkg.UpstreamVersion = p.UpstreamVersion
		pkg.UpstreamURL = p.UpstreamURL
	}

	if link := p.LinksTo; link != nil && pkg.MD5 != link.VerifyMD5 {
		pkg.Problems = append(pkg.Problems, types.ProblemDiffAgainstLink)
		pkg.LinkProject = link.Project
		pkg.LinkPackage = link.Name
	}

	interesting := pkg.FirstFail != nil ||
		pkg.FailedComment != "" ||
		pkg.UpstreamVersion != "" ||
		len(pkg.Problems) > 0 ||
		len(pkg.RequestsFrom) > 0 ||
		len(pkg.RequestsTo) > 0
	if !interesting {
		return nil
	}
	if filter.LimitToOld && pkg.UpstreamVersion == "" {
		return nil
	}
	return pkg
}

func (a *Aggregator) checkDevelPackage(ctx context.Context, pkg *types.StatusPackage, p *types.PackageStatus, requests *requestIndex) {
	devel := p.DevelPack
	if devel == nil {
		return
	}
	pkg.DevelProject = devel.Project
	pkg.DevelPackage = devel.Name
	pkg.RequestsTo = append(pkg.RequestsTo, requests.submits[devel.Project+"/"+devel.Name]...)
	pkg.DevelMD5 = devel.VerifyMD5
	pkg.DevelMTime = devel.MaxMTime

	if devel.Error != "" {
		pkg.Problems = append(pkg.Problems, types.ProblemErrorPrefix+devel.Error)
	}

	if pkg.MD5 == "" || pkg.DevelMD5 == "" || pkg.MD5 == pkg.DevelMD5 {
		return
	}

	if request := requests.declined[p.DeclinedRequest]; p.DeclinedRequest != 0 && request != nil {
		for _, action := range request.Actions {
			if action.SourceProject != devel.Project || action.SourcePackage != devel.Name {
				continue
			}
			rev, err := a.sourceRev(ctx, devel.Project, devel.Name, pkg.MD5)
			if err != nil {
				log.Ctx(ctx).Warn().Err(err).
					Str("project", devel.Project).
					Str("package", devel.Name).
					Msg("cannot get devel package revision")
				continue
			}
			if rev == action.SourceRev && pkg.CurrentlyDeclined == 0 {
				pkg.CurrentlyDeclined = p.DeclinedRequest
				pkg.Problems = append(pkg.Problems, types.ProblemCurrentlyDeclined)
			}
		}
	}

	if pkg.CurrentlyDeclined == 0 {
		if p.ChangesMD5 != devel.ChangesMD5 {
			pkg.Problems = append(pkg.Problems, types.ProblemDifferentChanges)
		} else {
			pkg.Problems = append(pkg.Problems, types.ProblemDifferentSources)
		}
	}
}

// sourceRev returns the current revision of a devel package, cached per target md5
func (a *Aggregator) sourceRev(ctx context.Context, project, pkg, md5 string) (string, error) {
	key := revKey(project, pkg, md5)
	if rev, found := a.revs.Get(key); found {
		return rev, nil
	}

	dir, err := a.backend.GetDirectory(ctx, project, pkg)
	if err != nil {
		return "", err
	}
	a.revs.SetWithTTL(key, dir.Rev, 1, a.cfg.RevCacheTTL)
	a.revs.Wait()
	return dir.Rev, nil
}

// newerUpstream reports whether upstream is a strictly greater version. Versions
// that do not parse are never compared.
func newerUpstream(version, upstream string) bool {
	if upstream == "" {
		return false
	}
	current, err := semver.NewVersion(version)
	if err != nil {
		return false
	}
	candidate, err := semver.NewVersion(upstream)
	if err != nil {
		return false
	}
	return candidate.GreaterThan(current)
}

func sortedByName(selected map[uint]*types.PackageStatus) []*types.PackageStatus {
	list := make([]*types.PackageStatus, 0, len(selected))
	for _, status := range selected {
		list = append(list, status)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].PackageID < list[j].PackageID
	})
	return list
}
