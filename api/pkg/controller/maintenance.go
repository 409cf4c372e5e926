package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/Artox/open-build-service/api/pkg/store"
	"github.com/Artox/open-build-service/api/pkg/types"
)

func requireMaintenance(project *types.Project) error {
	if !project.IsMaintenance() {
		return fmt.Errorf("%w: %s is not a maintenance project", ErrInvalidRequest, project.Name)
	}
	return nil
}

func (c *Controller) MaintainedProjects(ctx context.Context, name string) ([]string, error) {
	project, err := c.getProject(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := requireMaintenance(project); err != nil {
		return nil, err
	}
	return c.Options.Store.ListMaintainedProjects(ctx, project.ID)
}

func (c *Controller) AddMaintainedProject(ctx context.Context, user *types.User, name, maintained string) error {
	project, maintainedProject, err := c.maintenancePair(ctx, user, name, maintained)
	if err != nil {
		return err
	}
	if err := c.Options.Store.AddMaintainedProject(ctx, project.ID, maintainedProject.ID); err != nil {
		return err
	}
	c.notify(ctx, user, types.ProjectEventUpdated, name)
	return nil
}

func (c *Controller) RemoveMaintainedProject(ctx context.Context, user *types.User, name, maintained string) error {
	project, maintainedProject, err := c.maintenancePair(ctx, user, name, maintained)
	if err != nil {
		return err
	}
	err = c.Options.Store.RemoveMaintainedProject(ctx, project.ID, maintainedProject.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: %s is not maintained by %s", ErrNotFound, maintained, name)
		}
		return err
	}
	c.notify(ctx, user, types.ProjectEventUpdated, name)
	return nil
}

func (c *Controller) maintenancePair(ctx context.Context, user *types.User, name, maintained string) (*types.Project, *types.Project, error) {
	if maintained == "" {
		return nil, nil, fmt.Errorf("%w: please provide a valid project name", ErrInvalidRequest)
	}
	project, err := c.authorizeProject(ctx, user, name)
	if err != nil {
		return nil, nil, err
	}
	if err := requireMaintenance(project); err != nil {
		return nil, nil, err
	}
	maintainedProject, err := c.getProject(ctx, maintained)
	if err != nil {
		return nil, nil, err
	}
	return project, maintainedProject, nil
}

// MaintenanceIncidents lists the incident projects below the project
func (c *Controller) MaintenanceIncidents(ctx context.Context, name string) ([]*types.Project, error) {
	if _, err := c.getProject(ctx, name); err != nil {
		return nil, err
	}
	return c.Options.Store.ListProjects(ctx, &store.ListProjectsQuery{
		NamePrefix: name + ":",
		Kinds:      []types.ProjectKind{types.ProjectKindMaintenanceIncident},
	})
}
