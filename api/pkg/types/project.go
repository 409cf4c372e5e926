package types

import (
	"time"
)

// Project is a build project. Names are colon-namespaced, e.g. home:user:sub
type Project struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	Name        string      `json:"name" gorm:"uniqueIndex;not null"`
	Title       string      `json:"title"`
	Description string      `json:"description" gorm:"type:text"`
	Kind        ProjectKind `json:"kind" gorm:"index;default:standard"`

	// RemoteURL is set for projects that only proxy a remote instance
	RemoteURL string `json:"remote_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Repositories   []*Repository    `json:"repositories,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Flags          []*Flag          `json:"flags,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Relationships  []*Relationship  `json:"relationships,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	LinkedProjects []*LinkedProject `json:"linked_projects,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

func (p *Project) IsMaintenance() bool {
	return p.Kind == ProjectKindMaintenance
}

func (p *Project) IsMaintenanceIncident() bool {
	return p.Kind == ProjectKindMaintenanceIncident
}

func (p *Project) IsRemote() bool {
	return p.RemoteURL != ""
}

// Repository returns the named repository or nil
func (p *Project) Repository(name string) *Repository {
	for _, repo := range p.Repositories {
		if repo.Name == name {
			return repo
		}
	}
	return nil
}

// LinkedProject is an entry of the ordered list of projects a project inherits packages from
type LinkedProject struct {
	ID                      uint     `json:"id" gorm:"primaryKey"`
	ProjectID               uint     `json:"project_id" gorm:"index"`
	LinkedProjectID         *uint    `json:"linked_project_id,omitempty"`
	LinkedProject           *Project `json:"linked_project,omitempty" gorm:"foreignKey:LinkedProjectID"`
	LinkedRemoteProjectName string   `json:"linked_remote_project_name,omitempty"`
	Position                int      `json:"position"`
}

// MaintainedProject records that a maintenance project takes care of another project
type MaintainedProject struct {
	ID                   uint     `json:"id" gorm:"primaryKey"`
	MaintenanceProjectID uint     `json:"maintenance_project_id" gorm:"uniqueIndex:idx_maintained_project"`
	ProjectID            uint     `json:"project_id" gorm:"uniqueIndex:idx_maintained_project"`
	Project              *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
}

type Package struct {
	ID          uint     `json:"id" gorm:"primaryKey"`
	ProjectID   uint     `json:"project_id" gorm:"uniqueIndex:idx_package_project_name"`
	Project     *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	Name        string   `json:"name" gorm:"uniqueIndex:idx_package_project_name;not null"`
	Title       string   `json:"title"`
	Description string   `json:"description" gorm:"type:text"`

	DevelPackageID *uint    `json:"devel_package_id,omitempty" gorm:"index"`
	DevelPackage   *Package `json:"devel_package,omitempty" gorm:"foreignKey:DevelPackageID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Flag struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	ProjectID    uint       `json:"project_id" gorm:"index"`
	PackageID    *uint      `json:"package_id,omitempty" gorm:"index"`
	Type         FlagType   `json:"type"`
	Status       FlagStatus `json:"status"`
	Repository   string     `json:"repository,omitempty"`
	Architecture string     `json:"architecture,omitempty"`
	Position     int        `json:"position"`
}

type Distribution struct {
	ID            uint     `json:"id" gorm:"primaryKey"`
	Vendor        string   `json:"vendor" gorm:"index"`
	Version       string   `json:"version"`
	Name          string   `json:"name"`
	Project       string   `json:"project"`
	Reponame      string   `json:"reponame"`
	Repository    string   `json:"repository"`
	Link          string   `json:"link"`
	Architectures []string `json:"architectures" gorm:"type:jsonb;serializer:json"`
}

// ProjectEvent is published whenever a project changes
type ProjectEvent struct {
	Type      ProjectEventType `json:"type"`
	Project   string           `json:"project"`
	User      string           `json:"user,omitempty"`
	RequestID string           `json:"request_id,omitempty"`
	Created   time.Time        `json:"created"`
}
