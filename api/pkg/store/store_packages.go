package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Artox/open-build-service/api/pkg/types"
)

// ListPackages returns the packages of a project with their devel package and its project
func (s *PostgresStore) ListPackages(ctx context.Context, query *ListPackagesQuery) ([]*types.Package, error) {
	if query == nil || query.ProjectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}

	q := s.gdb.WithContext(ctx).
		Preload("DevelPackage.Project").
		Where("project_id = ?", query.ProjectID)
	if query.NameContains != "" {
		q = q.Where("LOWER(name) LIKE ? ESCAPE '\\'", "%"+escapeLike(strings.ToLower(query.NameContains))+"%")
	}
	if query.Limit > 0 {
		q = q.Limit(query.Limit)
	}

	var packages []*types.Package
	err := q.Order("name").Find(&packages).Error
	if err != nil {
		return nil, fmt.Errorf("error listing packages: %w", err)
	}
	return packages, nil
}

func (s *PostgresStore) GetPackage(ctx context.Context, project, name string) (*types.Package, error) {
	var pkg types.Package
	err := s.gdb.WithContext(ctx).
		Preload("Project").
		Preload("DevelPackage.Project").
		Joins("JOIN projects ON projects.id = packages.project_id").
		Where("projects.name = ? AND packages.name = ?", project, name).
		First(&pkg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting package: %w", err)
	}
	return &pkg, nil
}

// RelevantPackageIDsForUser returns the packages the user, or one of the user's
// groups, holds a role in, directly or through the package's project
func (s *PostgresStore) RelevantPackageIDsForUser(ctx context.Context, userID uint) ([]uint, error) {
	db := s.gdb.WithContext(ctx)

	groupIDs := db.Model(&types.GroupUser{}).Select("group_id").Where("user_id = ?", userID)
	holder := "(relationships.user_id = ? OR relationships.group_id IN (?))"

	var ids []uint
	err := db.Model(&types.Package{}).
		Where("packages.id IN (?) OR packages.project_id IN (?)",
			db.Model(&types.Relationship{}).Select("package_id").Where("package_id IS NOT NULL AND "+holder, userID, groupIDs),
			db.Model(&types.Relationship{}).Select("project_id").Where("project_id IS NOT NULL AND "+holder, userID, groupIDs),
		).
		Order("packages.id").
		Pluck("packages.id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("error listing relevant packages: %w", err)
	}
	return ids, nil
}
