package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProjectKind(t *testing.T) {
	kind, err := ValidateProjectKind("", true)
	require.NoError(t, err)
	assert.Equal(t, ProjectKindStandard, kind)

	kind, err = ValidateProjectKind("maintenance_incident", false)
	require.NoError(t, err)
	assert.Equal(t, ProjectKindMaintenanceIncident, kind)

	_, err = ValidateProjectKind("", false)
	require.Error(t, err)
}

func TestValidateFlags(t *testing.T) {
	flag, err := ValidateFlagType("useforbuild")
	require.NoError(t, err)
	assert.Equal(t, FlagTypeUseForBuild, flag)

	_, err = ValidateFlagType("rebuild")
	require.Error(t, err)

	_, err = ValidateFlagStatus("maybe")
	require.Error(t, err)
}

func TestProjectRepository(t *testing.T) {
	project := &Project{Repositories: []*Repository{{Name: "standard"}, {Name: "images"}}}
	require.NotNil(t, project.Repository("images"))
	assert.Nil(t, project.Repository("ports"))
}

func TestRepositoryArchitectureNames(t *testing.T) {
	repo := &Repository{Architectures: []*RepositoryArchitecture{
		{Architecture: &Architecture{Name: "x86_64"}},
		{},
		{Architecture: &Architecture{Name: "aarch64"}},
	}}
	assert.Equal(t, []string{"x86_64", "aarch64"}, repo.ArchitectureNames())
}

func TestRepositoryHasPath(t *testing.T) {
	repo := &Repository{Paths: []*PathElement{
		{LinkedRepository: &Repository{Name: "standard", Project: &Project{Name: "openSUSE:Factory"}}},
		{LinkedRepository: &Repository{Name: "standard"}},
	}}
	assert.True(t, repo.HasPath("openSUSE:Factory", "standard"))
	assert.False(t, repo.HasPath("openSUSE:Leap", "standard"))
}

func TestPackageStatusClone(t *testing.T) {
	orig := &PackageStatus{
		Fails:     []PackageFail{{Repository: "standard"}},
		DevelPack: &PackageRef{Project: "editors", Name: "vim"},
	}
	clone := orig.Clone()
	clone.Fails[0].Repository = "ports"
	clone.DevelPack.Project = "devel:tools"

	assert.Equal(t, "standard", orig.Fails[0].Repository)
	assert.Equal(t, "editors", orig.DevelPack.Project)
}

func TestStatusPackageHasProblem(t *testing.T) {
	pkg := &StatusPackage{Problems: []string{"different_changes", "currently_declined"}}
	assert.True(t, pkg.HasProblem("currently_declined"))
	assert.False(t, pkg.HasProblem("diff_against_link"))
}

func TestHomeProjectName(t *testing.T) {
	assert.Equal(t, "home:alice", (&User{Login: "alice"}).HomeProjectName())
}
