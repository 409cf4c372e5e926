package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Artox/open-build-service/api/pkg/types"
)

func (s *PostgresStore) GetUser(ctx context.Context, login string) (*types.User, error) {
	if login == "" {
		return nil, fmt.Errorf("login is required")
	}

	var user types.User
	err := s.gdb.WithContext(ctx).Where("login = ?", login).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	return &user, nil
}

// EnsureUser returns the user, creating it on first sight
func (s *PostgresStore) EnsureUser(ctx context.Context, login string) (*types.User, error) {
	if login == "" {
		return nil, fmt.Errorf("login is required")
	}

	var user types.User
	err := s.gdb.WithContext(ctx).Where(types.User{Login: login}).FirstOrCreate(&user).Error
	if err != nil {
		return nil, fmt.Errorf("error ensuring user: %w", err)
	}
	return &user, nil
}

func (s *PostgresStore) ListUsersByIDs(ctx context.Context, ids []uint) ([]*types.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []*types.User
	err := s.gdb.WithContext(ctx).Where("id IN ?", ids).Order("login").Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return users, nil
}

// ListRelationships returns the project level relationships with users, groups and roles loaded
func (s *PostgresStore) ListRelationships(ctx context.Context, projectID uint) ([]*types.Relationship, error) {
	var relationships []*types.Relationship
	err := s.gdb.WithContext(ctx).
		Preload("Role").
		Preload("User").
		Preload("Group").
		Where("project_id = ? AND package_id IS NULL", projectID).
		Order("id").
		Find(&relationships).Error
	if err != nil {
		return nil, fmt.Errorf("error listing relationships: %w", err)
	}
	return relationships, nil
}

func (s *PostgresStore) AddRelationship(ctx context.Context, relationship *types.Relationship) error {
	if relationship.RoleID == 0 {
		return fmt.Errorf("role is required")
	}
	if relationship.UserID == nil && relationship.GroupID == nil {
		return fmt.Errorf("user or group is required")
	}
	err := s.gdb.WithContext(ctx).Omit("Role", "User", "Group").Create(relationship).Error
	if err != nil {
		return fmt.Errorf("error adding relationship: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetRole(ctx context.Context, title types.RoleTitle) (*types.Role, error) {
	var role types.Role
	err := s.gdb.WithContext(ctx).Where("title = ?", title).First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting role: %w", err)
	}
	return &role, nil
}

func (s *PostgresStore) ListRoles(ctx context.Context) ([]*types.Role, error) {
	var roles []*types.Role
	err := s.gdb.WithContext(ctx).Order("id").Find(&roles).Error
	if err != nil {
		return nil, fmt.Errorf("error listing roles: %w", err)
	}
	return roles, nil
}

// UserHasRole checks the user's own and group roles on the project and, if given, the package
func (s *PostgresStore) UserHasRole(ctx context.Context, query *UserHasRoleQuery) (bool, error) {
	db := s.gdb.WithContext(ctx)

	groupIDs := db.Model(&types.GroupUser{}).Select("group_id").Where("user_id = ?", query.UserID)
	q := db.Model(&types.Relationship{}).
		Joins("JOIN roles ON roles.id = relationships.role_id").
		Where("relationships.user_id = ? OR relationships.group_id IN (?)", query.UserID, groupIDs)
	if len(query.Roles) > 0 {
		q = q.Where("roles.title IN ?", query.Roles)
	}
	if query.PackageID != nil {
		q = q.Where("(relationships.project_id = ? AND relationships.package_id IS NULL) OR relationships.package_id = ?", query.ProjectID, *query.PackageID)
	} else {
		q = q.Where("relationships.project_id = ? AND relationships.package_id IS NULL", query.ProjectID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("error checking roles: %w", err)
	}
	return count > 0, nil
}

func (s *PostgresStore) IsWatchingProject(ctx context.Context, userID, projectID uint) (bool, error) {
	var count int64
	err := s.gdb.WithContext(ctx).Model(&types.WatchedProject{}).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("error checking watched project: %w", err)
	}
	return count > 0, nil
}

func (s *PostgresStore) AddWatchedProject(ctx context.Context, userID, projectID uint) error {
	wp := types.WatchedProject{UserID: userID, ProjectID: projectID}
	err := s.gdb.WithContext(ctx).Where(wp).FirstOrCreate(&types.WatchedProject{}).Error
	if err != nil {
		return fmt.Errorf("error watching project: %w", err)
	}
	return nil
}

func (s *PostgresStore) RemoveWatchedProject(ctx context.Context, userID, projectID uint) error {
	err := s.gdb.WithContext(ctx).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Delete(&types.WatchedProject{}).Error
	if err != nil {
		return fmt.Errorf("error unwatching project: %w", err)
	}
	return nil
}
