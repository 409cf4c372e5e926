package store

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/suite"

	"github.com/Artox/open-build-service/api/pkg/config"
	"github.com/Artox/open-build-service/api/pkg/system"
	"github.com/Artox/open-build-service/api/pkg/types"
)

// GetTestDB returns a migrated store backed by a private in-memory sqlite database
func GetTestDB() (*PostgresStore, error) {
	return NewPostgresStore(config.Store{
		Driver:          DriverSqlite,
		SqlitePath:      fmt.Sprintf("file:%s?mode=memory&cache=shared", system.GenerateUUID()),
		AutoMigrate:     true,
		ConnectAttempts: 1,
	})
}

type storeSuite struct {
	suite.Suite
	ctx context.Context
	db  *PostgresStore
}

func (suite *storeSuite) SetupTest() {
	suite.ctx = context.Background()
	db, err := GetTestDB()
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *storeSuite) TearDownTest() {
	suite.NoError(suite.db.Close())
}

func (suite *storeSuite) createProject(name string) *types.Project {
	project, err := suite.db.CreateProject(suite.ctx, &types.Project{Name: name, Title: "Title of " + name})
	suite.Require().NoError(err)
	return project
}

func (suite *storeSuite) createPackage(project *types.Project, name string, devel *types.Package) *types.Package {
	pkg := &types.Package{ProjectID: project.ID, Name: name}
	if devel != nil {
		pkg.DevelPackageID = &devel.ID
	}
	suite.Require().NoError(suite.db.gdb.Create(pkg).Error)
	return pkg
}

func (suite *storeSuite) createRepository(project *types.Project, name string, archs ...string) *types.Repository {
	architectures, err := suite.db.GetArchitecturesByName(suite.ctx, archs)
	suite.Require().NoError(err)

	repo := &types.Repository{ProjectID: project.ID, Name: name}
	for _, a := range architectures {
		repo.Architectures = append(repo.Architectures, &types.RepositoryArchitecture{Architecture: a})
	}
	repo, err = suite.db.SaveRepository(suite.ctx, repo)
	suite.Require().NoError(err)
	return repo
}
