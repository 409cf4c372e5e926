package cycles

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/Artox/open-build-service/api/pkg/backend"
	"github.com/Artox/open-build-service/api/pkg/store"
	"github.com/Artox/open-build-service/api/pkg/types"
)

var ErrRepositoryNotFound = errors.New("repository not found")

// skipPackages asks the backend for the cycles only
const skipPackages = "-"

type Reporter struct {
	store       store.Store
	backend     backend.Client
	concurrency int
}

func NewReporter(store store.Store, backend backend.Client, concurrency int) *Reporter {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Reporter{
		store:       store,
		backend:     backend,
		concurrency: concurrency,
	}
}

// RepositoryCycles returns the build dependency cycles of every architecture of the
// repository. Architectures without cycles, or whose dependency info cannot be
// fetched, are left out of the map.
func (r *Reporter) RepositoryCycles(ctx context.Context, projectName, repositoryName string) (*types.RepositoryState, error) {
	project, err := r.store.GetProject(ctx, projectName)
	if err != nil {
		return nil, err
	}
	repo := project.Repository(repositoryName)
	if repo == nil {
		return nil, fmt.Errorf("%w: %s/%s", ErrRepositoryNotFound, projectName, repositoryName)
	}

	state := &types.RepositoryState{
		Project:    project.Name,
		Repository: repo.Name,
		Archs:      repo.ArchitectureNames(),
		Cycles:     types.RepositoryCycles{},
	}

	var mu sync.Mutex
	p := pool.New().WithMaxGoroutines(r.concurrency)
	for _, arch := range state.Archs {
		p.Go(func() {
			groups := r.archCycles(ctx, project.Name, repo.Name, arch)
			if len(groups) == 0 {
				return
			}
			mu.Lock()
			state.Cycles[arch] = groups
			mu.Unlock()
		})
	}
	p.Wait()

	return state, nil
}

func (r *Reporter) archCycles(ctx context.Context, project, repository, arch string) [][]string {
	logger := log.Ctx(ctx).With().
		Str("project", project).
		Str("repository", repository).
		Str("arch", arch).
		Logger()

	info, err := r.backend.GetBuilddepInfo(ctx, project, repository, arch, skipPackages)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to get build dependency info")
		return nil
	}

	reported := make([][]string, 0, len(info.Cycles))
	for _, c := range info.Cycles {
		reported = append(reported, c.Packages)
	}
	return Merge(reported, logger)
}
