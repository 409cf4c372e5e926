package types

type Repository struct {
	ID        uint     `json:"id" gorm:"primaryKey"`
	ProjectID uint     `json:"project_id" gorm:"uniqueIndex:idx_repository_project_name"`
	Project   *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	Name      string   `json:"name" gorm:"uniqueIndex:idx_repository_project_name;not null"`

	// RemoteProjectName is set for repositories of remote projects
	RemoteProjectName string `json:"remote_project_name,omitempty"`

	Architectures  []*RepositoryArchitecture `json:"architectures,omitempty" gorm:"foreignKey:RepositoryID;constraint:OnDelete:CASCADE"`
	Paths          []*PathElement            `json:"paths,omitempty" gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"`
	ReleaseTargets []*ReleaseTarget          `json:"release_targets,omitempty" gorm:"foreignKey:RepositoryID;constraint:OnDelete:CASCADE"`
}

// ArchitectureNames returns the repository architectures in position order
func (r *Repository) ArchitectureNames() []string {
	names := make([]string, 0, len(r.Architectures))
	for _, a := range r.Architectures {
		if a.Architecture != nil {
			names = append(names, a.Architecture.Name)
		}
	}
	return names
}

// HasPath reports whether the repository already builds against project/repository
func (r *Repository) HasPath(project, repository string) bool {
	for _, p := range r.Paths {
		if p.LinkedRepository == nil || p.LinkedRepository.Project == nil {
			continue
		}
		if p.LinkedRepository.Project.Name == project && p.LinkedRepository.Name == repository {
			return true
		}
	}
	return false
}

type Architecture struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"uniqueIndex;not null"`
	Available bool   `json:"available"`
}

type RepositoryArchitecture struct {
	ID             uint          `json:"id" gorm:"primaryKey"`
	RepositoryID   uint          `json:"repository_id" gorm:"index"`
	ArchitectureID uint          `json:"architecture_id"`
	Architecture   *Architecture `json:"architecture,omitempty" gorm:"foreignKey:ArchitectureID"`
	Position       int           `json:"position"`
}

// PathElement is one entry of the ordered list of repositories a repository builds against
type PathElement struct {
	ID                 uint        `json:"id" gorm:"primaryKey"`
	ParentID           uint        `json:"parent_id" gorm:"index"`
	LinkedRepositoryID uint        `json:"linked_repository_id"`
	LinkedRepository   *Repository `json:"linked_repository,omitempty" gorm:"foreignKey:LinkedRepositoryID"`
	Position           int         `json:"position"`
}

type ReleaseTarget struct {
	ID                 uint        `json:"id" gorm:"primaryKey"`
	RepositoryID       uint        `json:"repository_id" gorm:"index"`
	TargetRepositoryID uint        `json:"target_repository_id"`
	TargetRepository   *Repository `json:"target_repository,omitempty" gorm:"foreignKey:TargetRepositoryID"`
	Trigger            string      `json:"trigger,omitempty"`
}
