package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/Artox/open-build-service/api/pkg/backend"
	"github.com/Artox/open-build-service/api/pkg/store"
	"github.com/Artox/open-build-service/api/pkg/types"
)

func failCommentAttribute() string {
	return types.AttribNamespaceOBS + ":" + types.AttribFailComment
}

func (c *Controller) getPackage(ctx context.Context, project, name string) (*types.Package, error) {
	pkg, err := c.Options.Store.GetPackage(ctx, project, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: package %s/%s", ErrNotFound, project, name)
		}
		return nil, err
	}
	return pkg, nil
}

// EditComment sets the fail comment of a package shown on the status page
func (c *Controller) EditComment(ctx context.Context, user *types.User, project, pkgName, text string) (string, error) {
	if err := requireUser(user); err != nil {
		return "", err
	}
	pkg, err := c.getPackage(ctx, project, pkgName)
	if err != nil {
		return "", err
	}
	ok, err := c.isMaintainer(ctx, user, pkg.ProjectID, &pkg.ID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: can't create attributes in %s/%s", ErrForbidden, project, pkgName)
	}

	err = c.Options.Store.SetPackageAttribute(ctx, &store.SetPackageAttributeQuery{
		Namespace: types.AttribNamespaceOBS,
		Name:      types.AttribFailComment,
		PackageID: pkg.ID,
		Value:     text,
	})
	if err != nil {
		return "", err
	}
	return text, nil
}

// ClearFailedComment removes the fail comments of the packages, stopping at the
// first one the backend refuses
func (c *Controller) ClearFailedComment(ctx context.Context, user *types.User, project string, packages []string) error {
	if err := requireUser(user); err != nil {
		return err
	}
	if len(packages) == 0 {
		return fmt.Errorf("%w: no package given", ErrInvalidRequest)
	}

	for _, name := range packages {
		pkg, err := c.getPackage(ctx, project, name)
		if err != nil {
			return err
		}
		if err := c.Options.Backend.DeleteAttribute(ctx, project, name, failCommentAttribute()); err != nil {
			var backendErr *backend.Error
			if backend.IsForbidden(err) && errors.As(err, &backendErr) {
				return fmt.Errorf("%w: %s", ErrForbidden, backendErr.Summary)
			}
			return err
		}
		err = c.Options.Store.DeletePackageAttribute(ctx, types.AttribNamespaceOBS, types.AttribFailComment, pkg.ID)
		if err != nil {
			return err
		}
	}
	return nil
}
