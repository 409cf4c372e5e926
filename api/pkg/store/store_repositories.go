package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Artox/open-build-service/api/pkg/types"
)

// SaveRepository creates or updates a repository and replaces its architectures,
// paths and release targets with the given lists, renumbering positions
func (s *PostgresStore) SaveRepository(ctx context.Context, repository *types.Repository) (*types.Repository, error) {
	if repository.ProjectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if repository.Name == "" {
		return nil, fmt.Errorf("repository name is required")
	}

	err := s.gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := types.Repository{
			ID:                repository.ID,
			ProjectID:         repository.ProjectID,
			Name:              repository.Name,
			RemoteProjectName: repository.RemoteProjectName,
		}
		if err := tx.Omit(clause.Associations).Save(&row).Error; err != nil {
			return fmt.Errorf("error saving repository: %w", err)
		}
		repository.ID = row.ID

		for _, m := range []interface{}{&types.RepositoryArchitecture{}, &types.ReleaseTarget{}} {
			if err := tx.Where("repository_id = ?", row.ID).Delete(m).Error; err != nil {
				return fmt.Errorf("error clearing repository %s: %w", row.Name, err)
			}
		}
		if err := tx.Where("parent_id = ?", row.ID).Delete(&types.PathElement{}).Error; err != nil {
			return fmt.Errorf("error clearing repository %s: %w", row.Name, err)
		}

		for i, ra := range repository.Architectures {
			archID := ra.ArchitectureID
			if archID == 0 && ra.Architecture != nil {
				archID = ra.Architecture.ID
			}
			entry := types.RepositoryArchitecture{RepositoryID: row.ID, ArchitectureID: archID, Position: i + 1}
			if err := tx.Omit(clause.Associations).Create(&entry).Error; err != nil {
				return fmt.Errorf("error adding architecture: %w", err)
			}
			ra.ID, ra.RepositoryID, ra.ArchitectureID, ra.Position = entry.ID, row.ID, archID, entry.Position
		}
		for i, p := range repository.Paths {
			linkedID := p.LinkedRepositoryID
			if linkedID == 0 && p.LinkedRepository != nil {
				linkedID = p.LinkedRepository.ID
			}
			entry := types.PathElement{ParentID: row.ID, LinkedRepositoryID: linkedID, Position: i + 1}
			if err := tx.Omit(clause.Associations).Create(&entry).Error; err != nil {
				return fmt.Errorf("error adding path: %w", err)
			}
			p.ID, p.ParentID, p.LinkedRepositoryID, p.Position = entry.ID, row.ID, linkedID, entry.Position
		}
		for _, rt := range repository.ReleaseTargets {
			targetID := rt.TargetRepositoryID
			if targetID == 0 && rt.TargetRepository != nil {
				targetID = rt.TargetRepository.ID
			}
			entry := types.ReleaseTarget{RepositoryID: row.ID, TargetRepositoryID: targetID, Trigger: rt.Trigger}
			if err := tx.Omit(clause.Associations).Create(&entry).Error; err != nil {
				return fmt.Errorf("error adding release target: %w", err)
			}
			rt.ID, rt.RepositoryID, rt.TargetRepositoryID = entry.ID, row.ID, targetID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return repository, nil
}

func (s *PostgresStore) DeleteRepository(ctx context.Context, repositoryID uint) error {
	return s.gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&types.Repository{}).Where("id = ?", repositoryID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return deleteRepository(tx, repositoryID)
	})
}

// deleteRepository removes a repository and every path or release target pointing at it
func deleteRepository(tx *gorm.DB, repositoryID uint) error {
	steps := []struct {
		model interface{}
		query string
		args  []interface{}
	}{
		{&types.RepositoryArchitecture{}, "repository_id = ?", []interface{}{repositoryID}},
		{&types.ReleaseTarget{}, "repository_id = ? OR target_repository_id = ?", []interface{}{repositoryID, repositoryID}},
		{&types.PathElement{}, "parent_id = ? OR linked_repository_id = ?", []interface{}{repositoryID, repositoryID}},
		{&types.Repository{}, "id = ?", []interface{}{repositoryID}},
	}
	for _, step := range steps {
		if err := tx.Where(step.query, step.args...).Delete(step.model).Error; err != nil {
			return fmt.Errorf("error deleting repository: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) ListArchitectures(ctx context.Context, availableOnly bool) ([]*types.Architecture, error) {
	q := s.gdb.WithContext(ctx)
	if availableOnly {
		q = q.Where("available = ?", true)
	}

	var archs []*types.Architecture
	err := q.Order("name").Find(&archs).Error
	if err != nil {
		return nil, fmt.Errorf("error listing architectures: %w", err)
	}
	return archs, nil
}

// GetArchitecturesByName returns the architectures in the order requested, unknown names are an error
func (s *PostgresStore) GetArchitecturesByName(ctx context.Context, names []string) ([]*types.Architecture, error) {
	if len(names) == 0 {
		return nil, nil
	}

	var archs []*types.Architecture
	err := s.gdb.WithContext(ctx).Where("name IN ?", names).Find(&archs).Error
	if err != nil {
		return nil, fmt.Errorf("error getting architectures: %w", err)
	}

	byName := make(map[string]*types.Architecture, len(archs))
	for _, a := range archs {
		byName[a.Name] = a
	}
	result := make([]*types.Architecture, 0, len(names))
	for _, name := range names {
		a, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown architecture %s: %w", name, ErrNotFound)
		}
		result = append(result, a)
	}
	return result, nil
}

func (s *PostgresStore) SetFlag(ctx context.Context, flag *types.Flag) error {
	if flag.ProjectID == 0 {
		return fmt.Errorf("project ID is required")
	}

	return s.gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing types.Flag
		err := flagScope(tx, flag.ProjectID, flag.PackageID, flag.Type, flag.Repository, flag.Architecture).First(&existing).Error
		switch {
		case err == nil:
			existing.Status = flag.Status
			if err := tx.Save(&existing).Error; err != nil {
				return fmt.Errorf("error updating flag: %w", err)
			}
			*flag = existing
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			var maxPos int
			tx.Model(&types.Flag{}).Where("project_id = ?", flag.ProjectID).Select("COALESCE(MAX(position), 0)").Scan(&maxPos)
			flag.Position = maxPos + 1
			if err := tx.Create(flag).Error; err != nil {
				return fmt.Errorf("error creating flag: %w", err)
			}
			return nil
		default:
			return fmt.Errorf("error getting flag: %w", err)
		}
	})
}

func (s *PostgresStore) RemoveFlag(ctx context.Context, projectID uint, flagType types.FlagType, repository, architecture string) error {
	err := flagScope(s.gdb.WithContext(ctx), projectID, nil, flagType, repository, architecture).Delete(&types.Flag{}).Error
	if err != nil {
		return fmt.Errorf("error removing flag: %w", err)
	}
	return nil
}

func flagScope(db *gorm.DB, projectID uint, packageID *uint, flagType types.FlagType, repository, architecture string) *gorm.DB {
	q := db.Model(&types.Flag{}).
		Where("project_id = ? AND type = ? AND repository = ? AND architecture = ?", projectID, flagType, repository, architecture)
	if packageID != nil {
		return q.Where("package_id = ?", *packageID)
	}
	return q.Where("package_id IS NULL")
}

func (s *PostgresStore) ListDistributions(ctx context.Context) ([]*types.Distribution, error) {
	var distributions []*types.Distribution
	err := s.gdb.WithContext(ctx).Order("vendor").Order("version DESC").Find(&distributions).Error
	if err != nil {
		return nil, fmt.Errorf("error listing distributions: %w", err)
	}
	return distributions, nil
}
