package controller

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Artox/open-build-service/api/pkg/store"
	"github.com/Artox/open-build-service/api/pkg/types"
)

const cmdCreateMaintenanceIncident = "createmaintenanceincident"

// NewIncident asks the backend to open a maintenance incident below the namespace
func (c *Controller) NewIncident(ctx context.Context, user *types.User, namespace string) (*types.NewIncidentResult, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	if namespace == "" {
		return nil, fmt.Errorf("%w: namespace is required", ErrInvalidRequest)
	}

	status, err := c.Options.Backend.SourceCommand(ctx, namespace, cmdCreateMaintenanceIncident, nil)
	if err != nil {
		return nil, err
	}
	target := status.DataValue("targetproject")
	log.Ctx(ctx).Info().Str("namespace", namespace).Str("project", target).Msg("created maintenance incident project")
	if target != "" {
		c.notify(ctx, user, types.ProjectEventCreated, target)
	}
	return &types.NewIncidentResult{Project: target}, nil
}

func (c *Controller) CreateIncidentRequest(ctx context.Context, user *types.User, project, description string) (*types.BsRequest, error) {
	return c.createSourceRequest(ctx, user, types.RequestActionTypeMaintenanceIncident, project, description)
}

func (c *Controller) CreateReleaseRequest(ctx context.Context, user *types.User, project, description string) (*types.BsRequest, error) {
	return c.createSourceRequest(ctx, user, types.RequestActionTypeMaintenanceRelease, project, description)
}

func (c *Controller) createSourceRequest(ctx context.Context, user *types.User, actionType types.RequestActionType, project, description string) (*types.BsRequest, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	if _, err := c.getProject(ctx, project); err != nil {
		return nil, err
	}

	return c.createRequest(ctx, user, project, &types.BsRequest{
		Creator:     user.Login,
		Description: description,
		Actions: []*types.BsRequestAction{
			{Type: actionType, SourceProject: project},
		},
	})
}

// CreateRemoveTargetRequest asks for the removal of the project, or of one of its
// repositories when given
func (c *Controller) CreateRemoveTargetRequest(ctx context.Context, user *types.User, project, repository, description string) (*types.BsRequest, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	target, err := c.getProject(ctx, project)
	if err != nil {
		return nil, err
	}
	if repository != "" && target.Repository(repository) == nil {
		return nil, fmt.Errorf("%w: repository %s/%s", ErrNotFound, project, repository)
	}

	return c.createRequest(ctx, user, project, &types.BsRequest{
		Creator:     user.Login,
		Description: description,
		Actions: []*types.BsRequestAction{
			{Type: types.RequestActionTypeDelete, TargetProject: project, TargetRepository: repository},
		},
	})
}

func (c *Controller) createRequest(ctx context.Context, user *types.User, project string, request *types.BsRequest) (*types.BsRequest, error) {
	created, err := c.Options.Store.CreateRequest(ctx, request)
	if err != nil {
		return nil, err
	}
	log.Ctx(ctx).Info().
		Uint("request", created.ID).
		Str("type", string(created.Actions[0].Type)).
		Str("project", project).
		Msg("request created")
	c.notify(ctx, user, types.ProjectEventRequestCreate, project)
	return created, nil
}

// ListRequests returns the requests with an action on the project, optionally
// narrowed to one action type and one state
func (c *Controller) ListRequests(ctx context.Context, project, actionType, state string) ([]*types.BsRequest, error) {
	if _, err := c.getProject(ctx, project); err != nil {
		return nil, err
	}

	query := &store.ListRequestsQuery{Project: project}
	if actionType != "" {
		t, err := types.ValidateRequestActionType(actionType)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, err)
		}
		query.Types = []types.RequestActionType{t}
	}
	if state != "" {
		s, err := types.ValidateRequestState(state)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, err)
		}
		query.States = []types.RequestState{s}
	}
	return c.Options.Store.ListRequests(ctx, query)
}
