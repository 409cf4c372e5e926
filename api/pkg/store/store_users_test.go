package store

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Artox/open-build-service/api/pkg/types"
)

func TestUsersTestSuite(t *testing.T) {
	suite.Run(t, new(UsersTestSuite))
}

type UsersTestSuite struct {
	storeSuite
}

func (suite *UsersTestSuite) TestEnsureUser() {
	_, err := suite.db.GetUser(suite.ctx, "alice")
	suite.ErrorIs(err, ErrNotFound)

	created, err := suite.db.EnsureUser(suite.ctx, "alice")
	suite.Require().NoError(err)
	suite.NotZero(created.ID)
	suite.Equal("home:alice", created.HomeProjectName())

	again, err := suite.db.EnsureUser(suite.ctx, "alice")
	suite.Require().NoError(err)
	suite.Equal(created.ID, again.ID)

	users, err := suite.db.ListUsersByIDs(suite.ctx, []uint{created.ID})
	suite.Require().NoError(err)
	suite.Len(users, 1)
}

func (suite *UsersTestSuite) TestRoles() {
	roles, err := suite.db.ListRoles(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(roles, len(types.AllRoles))

	_, err = suite.db.GetRole(suite.ctx, "janitor")
	suite.ErrorIs(err, ErrNotFound)
}

func (suite *UsersTestSuite) TestUserHasRole() {
	project := suite.createProject("devel:languages:go")
	other := suite.createProject("devel:languages:rust")
	pkg := suite.createPackage(other, "cargo", nil)

	alice, err := suite.db.EnsureUser(suite.ctx, "alice")
	suite.Require().NoError(err)
	bob, err := suite.db.EnsureUser(suite.ctx, "bob")
	suite.Require().NoError(err)

	maintainer, err := suite.db.GetRole(suite.ctx, types.RoleMaintainer)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.db.AddRelationship(suite.ctx, &types.Relationship{ProjectID: &project.ID, RoleID: maintainer.ID, UserID: &alice.ID}))

	group := &types.Group{Title: "rust-maintainers"}
	suite.Require().NoError(suite.db.gdb.Create(group).Error)
	suite.Require().NoError(suite.db.gdb.Create(&types.GroupUser{GroupID: group.ID, UserID: bob.ID}).Error)
	suite.Require().NoError(suite.db.AddRelationship(suite.ctx, &types.Relationship{PackageID: &pkg.ID, RoleID: maintainer.ID, GroupID: &group.ID}))

	has, err := suite.db.UserHasRole(suite.ctx, &UserHasRoleQuery{UserID: alice.ID, ProjectID: project.ID, Roles: []types.RoleTitle{types.RoleMaintainer}})
	suite.Require().NoError(err)
	suite.True(has)

	has, err = suite.db.UserHasRole(suite.ctx, &UserHasRoleQuery{UserID: alice.ID, ProjectID: project.ID, Roles: []types.RoleTitle{types.RoleBugowner}})
	suite.Require().NoError(err)
	suite.False(has)

	// bob only maintains the package, through his group
	has, err = suite.db.UserHasRole(suite.ctx, &UserHasRoleQuery{UserID: bob.ID, ProjectID: other.ID})
	suite.Require().NoError(err)
	suite.False(has)

	has, err = suite.db.UserHasRole(suite.ctx, &UserHasRoleQuery{UserID: bob.ID, ProjectID: other.ID, PackageID: &pkg.ID})
	suite.Require().NoError(err)
	suite.True(has)

	relationships, err := suite.db.ListRelationships(suite.ctx, project.ID)
	suite.Require().NoError(err)
	suite.Require().Len(relationships, 1)
	suite.Equal("alice", relationships[0].User.Login)
	suite.Equal(types.RoleMaintainer, relationships[0].Role.Title)

	ids, err := suite.db.RelevantPackageIDsForUser(suite.ctx, bob.ID)
	suite.Require().NoError(err)
	suite.Equal([]uint{pkg.ID}, ids)

	suite.Error(suite.db.AddRelationship(suite.ctx, &types.Relationship{ProjectID: &project.ID, RoleID: maintainer.ID}))
}

func (suite *UsersTestSuite) TestRelevantPackagesThroughProject() {
	project := suite.createProject("devel:languages:go")
	first := suite.createPackage(project, "go", nil)
	second := suite.createPackage(project, "gopls", nil)
	suite.createPackage(suite.createProject("devel:languages:rust"), "cargo", nil)

	alice, err := suite.db.EnsureUser(suite.ctx, "alice")
	suite.Require().NoError(err)
	bugowner, err := suite.db.GetRole(suite.ctx, types.RoleBugowner)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.db.AddRelationship(suite.ctx, &types.Relationship{ProjectID: &project.ID, RoleID: bugowner.ID, UserID: &alice.ID}))

	ids, err := suite.db.RelevantPackageIDsForUser(suite.ctx, alice.ID)
	suite.Require().NoError(err)
	suite.Equal([]uint{first.ID, second.ID}, ids)
}

func (suite *UsersTestSuite) TestWatchedProjects() {
	project := suite.createProject("openSUSE:Factory")
	alice, err := suite.db.EnsureUser(suite.ctx, "alice")
	suite.Require().NoError(err)

	watching, err := suite.db.IsWatchingProject(suite.ctx, alice.ID, project.ID)
	suite.Require().NoError(err)
	suite.False(watching)

	suite.Require().NoError(suite.db.AddWatchedProject(suite.ctx, alice.ID, project.ID))
	suite.Require().NoError(suite.db.AddWatchedProject(suite.ctx, alice.ID, project.ID))
	watching, err = suite.db.IsWatchingProject(suite.ctx, alice.ID, project.ID)
	suite.Require().NoError(err)
	suite.True(watching)

	suite.Require().NoError(suite.db.RemoveWatchedProject(suite.ctx, alice.ID, project.ID))
	watching, err = suite.db.IsWatchingProject(suite.ctx, alice.ID, project.ID)
	suite.Require().NoError(err)
	suite.False(watching)
}
