package controller

import (
	"context"

	"github.com/Artox/open-build-service/api/pkg/types"
)

// Status returns the packages of the project that need attention
func (c *Controller) Status(ctx context.Context, name string, filter types.StatusFilter) (*types.StatusResult, error) {
	if _, err := c.getProject(ctx, name); err != nil {
		return nil, err
	}
	return c.Options.Status.Status(ctx, name, filter)
}
