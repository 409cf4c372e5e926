package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Artox/open-build-service/api/pkg/backend"
	"github.com/Artox/open-build-service/api/pkg/cycles"
	"github.com/Artox/open-build-service/api/pkg/diststats"
	"github.com/Artox/open-build-service/api/pkg/pubsub"
	"github.com/Artox/open-build-service/api/pkg/store"
	"github.com/Artox/open-build-service/api/pkg/system"
	"github.com/Artox/open-build-service/api/pkg/types"
)

var (
	ErrUnauthorized   = errors.New("login required")
	ErrForbidden      = errors.New("forbidden")
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotFound       = errors.New("not found")
)

//go:generate mockgen -source $GOFILE -destination controller_mocks.go -package $GOPACKAGE

type StatusAggregator interface {
	Status(ctx context.Context, project string, filter types.StatusFilter) (*types.StatusResult, error)
	Invalidate(project string)
}

type RebuildEstimator interface {
	RebuildTime(ctx context.Context, opts diststats.Options, builddepinfo, jobhistory []byte) (*types.RebuildTimeResult, error)
	PNG(key string) ([]byte, bool)
}

type Options struct {
	Store     store.Store
	Backend   backend.Client
	PubSub    pubsub.Publisher
	Status    StatusAggregator
	Diststats RebuildEstimator
	// parallel backend and store calls per action
	Concurrency int
}

type Controller struct {
	Options Options

	cycles *cycles.Reporter
}

func NewController(options Options) (*Controller, error) {
	if options.Store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if options.Backend == nil {
		return nil, fmt.Errorf("backend is required")
	}
	if options.PubSub == nil {
		return nil, fmt.Errorf("pubsub is required")
	}
	if options.Status == nil {
		return nil, fmt.Errorf("status aggregator is required")
	}
	if options.Diststats == nil {
		return nil, fmt.Errorf("diststats runner is required")
	}
	if options.Concurrency < 1 {
		options.Concurrency = 1
	}

	return &Controller{
		Options: options,
		cycles:  cycles.NewReporter(options.Store, options.Backend, options.Concurrency),
	}, nil
}

func (c *Controller) getProject(ctx context.Context, name string) (*types.Project, error) {
	project, err := c.Options.Store.GetProject(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: project %s", ErrNotFound, name)
		}
		return nil, err
	}
	return project, nil
}

func requireUser(user *types.User) error {
	if user == nil {
		return ErrUnauthorized
	}
	return nil
}

// isMaintainer reports whether the user may change the project, or the package when given
func (c *Controller) isMaintainer(ctx context.Context, user *types.User, projectID uint, packageID *uint) (bool, error) {
	if user.Admin {
		return true, nil
	}
	return c.Options.Store.UserHasRole(ctx, &store.UserHasRoleQuery{
		UserID:    user.ID,
		ProjectID: projectID,
		PackageID: packageID,
		Roles:     []types.RoleTitle{types.RoleMaintainer},
	})
}

// authorizeProject loads the project and checks that the user maintains it
func (c *Controller) authorizeProject(ctx context.Context, user *types.User, name string) (*types.Project, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	project, err := c.getProject(ctx, name)
	if err != nil {
		return nil, err
	}
	ok, err := c.isMaintainer(ctx, user, project.ID, nil)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a maintainer of %s", ErrForbidden, user.Login, name)
	}
	return project, nil
}

func (c *Controller) renderMeta(ctx context.Context, name string) ([]byte, error) {
	project, err := c.getProject(ctx, name)
	if err != nil {
		return nil, err
	}
	relationships, err := c.Options.Store.ListRelationships(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	project.Relationships = relationships
	return backend.RenderProjectMeta(project)
}

// pushMeta writes the stored state of the project to the backend
func (c *Controller) pushMeta(ctx context.Context, name string) error {
	meta, err := c.renderMeta(ctx, name)
	if err != nil {
		return err
	}
	if err := c.Options.Backend.PutProjectMeta(ctx, name, meta); err != nil {
		return fmt.Errorf("error storing meta of %s: %w", name, err)
	}
	return nil
}

// notify publishes the project event and drops the status snapshots of the project.
// Publishing failures are logged only.
func (c *Controller) notify(ctx context.Context, user *types.User, eventType types.ProjectEventType, project string) {
	c.Options.Status.Invalidate(project)

	event := &types.ProjectEvent{
		Type:      eventType,
		Project:   project,
		RequestID: system.GetRequestID(ctx),
	}
	if user != nil {
		event.User = user.Login
	}
	if err := pubsub.PublishProjectEvent(ctx, c.Options.PubSub, event); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("project", project).Str("event", string(eventType)).Msg("failed to publish project event")
	}
	if err := pubsub.InvalidateStatus(ctx, c.Options.PubSub, project); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("project", project).Msg("failed to publish status invalidation")
	}
}
