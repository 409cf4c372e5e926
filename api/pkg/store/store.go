package store

import (
	"context"
	"errors"

	"github.com/Artox/open-build-service/api/pkg/types"
)

type ListProjectsQuery struct {
	// NamePrefix matches projects below a namespace, e.g. "home:user:"
	NamePrefix string `json:"name_prefix"`
	// NameContains is a case insensitive substring match
	NameContains string              `json:"name_contains"`
	Kinds        []types.ProjectKind `json:"kinds"`
	ExcludeKinds []types.ProjectKind `json:"exclude_kinds"`
	// Names restricts the result to the given names
	Names  []string `json:"names"`
	Remote *bool    `json:"remote"`
	Limit  int      `json:"limit"`
}

type ListPackagesQuery struct {
	ProjectID    uint   `json:"project_id"`
	NameContains string `json:"name_contains"`
	Limit        int    `json:"limit"`
}

type ListRequestsQuery struct {
	// Project matches requests with an action sourcing or targeting the project
	Project string                    `json:"project"`
	States  []types.RequestState      `json:"states"`
	Types   []types.RequestActionType `json:"types"`
	Limit   int                       `json:"limit"`
}

type ListAttribValuesQuery struct {
	Namespace  string `json:"namespace"`
	Name       string `json:"name"`
	PackageIDs []uint `json:"package_ids"`
}

type SetPackageAttributeQuery struct {
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
	PackageID uint   `json:"package_id"`
	Value     string `json:"value"`
}

type UserHasRoleQuery struct {
	UserID    uint              `json:"user_id"`
	ProjectID uint              `json:"project_id"`
	PackageID *uint             `json:"package_id"`
	Roles     []types.RoleTitle `json:"roles"`
}

//go:generate mockgen -source $GOFILE -destination store_mocks.go -package $GOPACKAGE

type Store interface {
	//
	// projects
	//
	CreateProject(ctx context.Context, project *types.Project) (*types.Project, error)
	GetProject(ctx context.Context, name string) (*types.Project, error)
	ProjectExists(ctx context.Context, name string) (bool, error)
	UpdateProject(ctx context.Context, project *types.Project) (*types.Project, error)
	DeleteProject(ctx context.Context, name string) error
	ListProjects(ctx context.Context, query *ListProjectsQuery) ([]*types.Project, error)
	ListProjectNames(ctx context.Context) ([]string, error)
	ListProjectsByAttribute(ctx context.Context, namespace, name string) ([]*types.Project, error)
	ListLinkingProjects(ctx context.Context, projectID uint) ([]string, error)

	ListMaintainedProjects(ctx context.Context, maintenanceProjectID uint) ([]string, error)
	AddMaintainedProject(ctx context.Context, maintenanceProjectID, projectID uint) error
	RemoveMaintainedProject(ctx context.Context, maintenanceProjectID, projectID uint) error
	ListMaintenanceProjectsFor(ctx context.Context, projectID uint) ([]string, error)

	//
	// packages
	//
	ListPackages(ctx context.Context, query *ListPackagesQuery) ([]*types.Package, error)
	GetPackage(ctx context.Context, project, name string) (*types.Package, error)
	RelevantPackageIDsForUser(ctx context.Context, userID uint) ([]uint, error)

	//
	// repositories
	//
	SaveRepository(ctx context.Context, repository *types.Repository) (*types.Repository, error)
	DeleteRepository(ctx context.Context, repositoryID uint) error
	ListArchitectures(ctx context.Context, availableOnly bool) ([]*types.Architecture, error)
	GetArchitecturesByName(ctx context.Context, names []string) ([]*types.Architecture, error)

	//
	// flags
	//
	SetFlag(ctx context.Context, flag *types.Flag) error
	RemoveFlag(ctx context.Context, projectID uint, flagType types.FlagType, repository, architecture string) error

	//
	// users
	//
	GetUser(ctx context.Context, login string) (*types.User, error)
	EnsureUser(ctx context.Context, login string) (*types.User, error)
	ListUsersByIDs(ctx context.Context, ids []uint) ([]*types.User, error)
	ListRelationships(ctx context.Context, projectID uint) ([]*types.Relationship, error)
	AddRelationship(ctx context.Context, relationship *types.Relationship) error
	GetRole(ctx context.Context, title types.RoleTitle) (*types.Role, error)
	ListRoles(ctx context.Context) ([]*types.Role, error)
	UserHasRole(ctx context.Context, query *UserHasRoleQuery) (bool, error)

	IsWatchingProject(ctx context.Context, userID, projectID uint) (bool, error)
	AddWatchedProject(ctx context.Context, userID, projectID uint) error
	RemoveWatchedProject(ctx context.Context, userID, projectID uint) error

	//
	// attributes
	//
	GetAttribType(ctx context.Context, namespace, name string) (*types.AttribType, error)
	ListAttribValues(ctx context.Context, query *ListAttribValuesQuery) (map[uint]string, error)
	SetPackageAttribute(ctx context.Context, query *SetPackageAttributeQuery) error
	DeletePackageAttribute(ctx context.Context, namespace, name string, packageID uint) error

	//
	// requests
	//
	CreateRequest(ctx context.Context, request *types.BsRequest) (*types.BsRequest, error)
	ListSubmitRequestTargets(ctx context.Context, targetProjects []string, states []types.RequestState) ([]*types.RequestTarget, error)
	ListRequestsByIDs(ctx context.Context, ids []uint) ([]*types.BsRequest, error)
	ListRequests(ctx context.Context, query *ListRequestsQuery) ([]*types.BsRequest, error)

	//
	// distributions
	//
	ListDistributions(ctx context.Context) ([]*types.Distribution, error)

	Close() error
}

var ErrNotFound = errors.New("not found")
