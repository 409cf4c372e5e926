package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Artox/open-build-service/api/pkg/types"
)

// deletedProjectName is the placeholder project the backend keeps for removed packages
const deletedProjectName = "deleted"

func (s *PostgresStore) CreateProject(ctx context.Context, project *types.Project) (*types.Project, error) {
	if project.Name == "" {
		return nil, fmt.Errorf("project name is required")
	}
	if project.Kind == "" {
		project.Kind = types.ProjectKindStandard
	}

	err := s.gdb.WithContext(ctx).Create(project).Error
	if err != nil {
		return nil, fmt.Errorf("error creating project: %w", err)
	}
	return s.GetProject(ctx, project.Name)
}

// GetProject loads a project with its repositories, flags and linked projects
func (s *PostgresStore) GetProject(ctx context.Context, name string) (*types.Project, error) {
	if name == "" {
		return nil, fmt.Errorf("project name is required")
	}

	var project types.Project
	err := s.gdb.WithContext(ctx).
		Preload("Repositories", func(db *gorm.DB) *gorm.DB { return db.Order("name") }).
		Preload("Repositories.Architectures", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Repositories.Architectures.Architecture").
		Preload("Repositories.Paths", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Repositories.Paths.LinkedRepository.Project").
		Preload("Repositories.ReleaseTargets.TargetRepository.Project").
		Preload("Flags", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("LinkedProjects", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("LinkedProjects.LinkedProject").
		Where("name = ?", name).
		First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting project: %w", err)
	}
	return &project, nil
}

func (s *PostgresStore) ProjectExists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := s.gdb.WithContext(ctx).Model(&types.Project{}).Where("name = ?", name).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("error checking project: %w", err)
	}
	return count > 0, nil
}

// UpdateProject saves the project columns, associations are managed separately
func (s *PostgresStore) UpdateProject(ctx context.Context, project *types.Project) (*types.Project, error) {
	if project.ID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}

	err := s.gdb.WithContext(ctx).Model(project).Select("title", "description", "kind", "remote_url").Updates(project).Error
	if err != nil {
		return nil, fmt.Errorf("error updating project: %w", err)
	}
	return s.GetProject(ctx, project.Name)
}

// DeleteProject removes a project and everything that hangs off it
func (s *PostgresStore) DeleteProject(ctx context.Context, name string) error {
	project, err := s.GetProject(ctx, name)
	if err != nil {
		return err
	}

	return s.gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, repo := range project.Repositories {
			if err := deleteRepository(tx, repo.ID); err != nil {
				return err
			}
		}

		packageIDs := tx.Model(&types.Package{}).Select("id").Where("project_id = ?", project.ID)
		attribIDs := tx.Model(&types.Attrib{}).Select("id").Where("project_id = ? OR package_id IN (?)", project.ID, packageIDs)

		deletes := []struct {
			model interface{}
			query string
			args  []interface{}
		}{
			{&types.AttribValue{}, "attrib_id IN (?)", []interface{}{attribIDs}},
			{&types.Attrib{}, "project_id = ? OR package_id IN (?)", []interface{}{project.ID, packageIDs}},
			{&types.Relationship{}, "project_id = ? OR package_id IN (?)", []interface{}{project.ID, packageIDs}},
			{&types.Flag{}, "project_id = ?", []interface{}{project.ID}},
			{&types.LinkedProject{}, "project_id = ? OR linked_project_id = ?", []interface{}{project.ID, project.ID}},
			{&types.MaintainedProject{}, "project_id = ? OR maintenance_project_id = ?", []interface{}{project.ID, project.ID}},
			{&types.WatchedProject{}, "project_id = ?", []interface{}{project.ID}},
			{&types.Package{}, "project_id = ?", []interface{}{project.ID}},
		}
		err := tx.Model(&types.Package{}).
			Where("devel_package_id IN (?) AND project_id <> ?", packageIDs, project.ID).
			Update("devel_package_id", nil).Error
		if err != nil {
			return fmt.Errorf("error unlinking devel packages of %s: %w", name, err)
		}

		for _, d := range deletes {
			if err := tx.Where(d.query, d.args...).Delete(d.model).Error; err != nil {
				return fmt.Errorf("error deleting project %s: %w", name, err)
			}
		}

		if err := tx.Delete(&types.Project{}, project.ID).Error; err != nil {
			return fmt.Errorf("error deleting project %s: %w", name, err)
		}
		return nil
	})
}

func (s *PostgresStore) ListProjects(ctx context.Context, query *ListProjectsQuery) ([]*types.Project, error) {
	q := s.gdb.WithContext(ctx).Model(&types.Project{})

	if query != nil {
		if query.NamePrefix != "" {
			q = q.Where("name LIKE ? ESCAPE '\\'", escapeLike(query.NamePrefix)+"%")
		}
		if query.NameContains != "" {
			q = q.Where("LOWER(name) LIKE ? ESCAPE '\\'", "%"+escapeLike(strings.ToLower(query.NameContains))+"%")
		}
		if len(query.Kinds) > 0 {
			q = q.Where("kind IN ?", query.Kinds)
		}
		if len(query.ExcludeKinds) > 0 {
			q = q.Where("kind NOT IN ?", query.ExcludeKinds)
		}
		if len(query.Names) > 0 {
			q = q.Where("name IN ?", query.Names)
		}
		if query.Remote != nil {
			if *query.Remote {
				q = q.Where("remote_url <> ''")
			} else {
				q = q.Where("remote_url = '' OR remote_url IS NULL")
			}
		}
		if query.Limit > 0 {
			q = q.Limit(query.Limit)
		}
	}

	var projects []*types.Project
	err := q.Order("name").Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("error listing projects: %w", err)
	}
	return projects, nil
}

func (s *PostgresStore) ListProjectNames(ctx context.Context) ([]string, error) {
	var names []string
	err := s.gdb.WithContext(ctx).Model(&types.Project{}).
		Where("name <> ?", deletedProjectName).
		Order("name").
		Pluck("name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("error listing project names: %w", err)
	}
	return names, nil
}

func (s *PostgresStore) ListProjectsByAttribute(ctx context.Context, namespace, name string) ([]*types.Project, error) {
	var projects []*types.Project
	err := s.gdb.WithContext(ctx).
		Joins("JOIN attribs ON attribs.project_id = projects.id").
		Joins("JOIN attrib_types ON attrib_types.id = attribs.attrib_type_id").
		Where("attrib_types.namespace = ? AND attrib_types.name = ?", namespace, name).
		Order("projects.name").
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("error listing projects by attribute: %w", err)
	}
	return projects, nil
}

// ListLinkingProjects returns the projects that inherit packages from the project
func (s *PostgresStore) ListLinkingProjects(ctx context.Context, projectID uint) ([]string, error) {
	var names []string
	err := s.gdb.WithContext(ctx).Model(&types.Project{}).
		Joins("JOIN linked_projects ON linked_projects.project_id = projects.id").
		Where("linked_projects.linked_project_id = ?", projectID).
		Order("projects.name").
		Distinct().
		Pluck("projects.name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("error listing linking projects: %w", err)
	}
	return names, nil
}

func (s *PostgresStore) ListMaintainedProjects(ctx context.Context, maintenanceProjectID uint) ([]string, error) {
	var names []string
	err := s.gdb.WithContext(ctx).Model(&types.Project{}).
		Joins("JOIN maintained_projects ON maintained_projects.project_id = projects.id").
		Where("maintained_projects.maintenance_project_id = ?", maintenanceProjectID).
		Order("projects.name").
		Pluck("projects.name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("error listing maintained projects: %w", err)
	}
	return names, nil
}

func (s *PostgresStore) AddMaintainedProject(ctx context.Context, maintenanceProjectID, projectID uint) error {
	mp := types.MaintainedProject{MaintenanceProjectID: maintenanceProjectID, ProjectID: projectID}
	err := s.gdb.WithContext(ctx).Where(mp).FirstOrCreate(&types.MaintainedProject{}).Error
	if err != nil {
		return fmt.Errorf("error adding maintained project: %w", err)
	}
	return nil
}

func (s *PostgresStore) RemoveMaintainedProject(ctx context.Context, maintenanceProjectID, projectID uint) error {
	res := s.gdb.WithContext(ctx).
		Where("maintenance_project_id = ? AND project_id = ?", maintenanceProjectID, projectID).
		Delete(&types.MaintainedProject{})
	if res.Error != nil {
		return fmt.Errorf("error removing maintained project: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListMaintenanceProjectsFor returns the maintenance projects taking care of the project
func (s *PostgresStore) ListMaintenanceProjectsFor(ctx context.Context, projectID uint) ([]string, error) {
	var names []string
	err := s.gdb.WithContext(ctx).Model(&types.Project{}).
		Joins("JOIN maintained_projects ON maintained_projects.maintenance_project_id = projects.id").
		Where("maintained_projects.project_id = ?", projectID).
		Order("projects.name").
		Pluck("projects.name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("error listing maintenance projects: %w", err)
	}
	return names, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
