package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Artox/open-build-service/api/pkg/types"
)

func TestRenderProjectMeta(t *testing.T) {
	factory := &types.Project{Name: "openSUSE:Factory"}
	standard := &types.Repository{Name: "standard", Project: factory}
	packageID := uint(9)

	project := &types.Project{
		Name:        "openSUSE:Maintenance",
		Title:       "Maintenance",
		Description: "Updates & fixes",
		Kind:        types.ProjectKindMaintenance,
		Relationships: []*types.Relationship{
			{Role: &types.Role{Title: types.RoleMaintainer}, User: &types.User{Login: "alice"}},
			{Role: &types.Role{Title: types.RoleReviewer}, Group: &types.Group{Title: "security-team"}},
		},
		Flags: []*types.Flag{
			{Type: types.FlagTypeBuild, Status: types.FlagStatusDisable},
			{Type: types.FlagTypeBuild, Status: types.FlagStatusEnable, Repository: "standard", Architecture: "x86_64"},
			{Type: types.FlagTypeAccess, Status: types.FlagStatusDisable},
			{Type: types.FlagTypePublish, Status: types.FlagStatusDisable, PackageID: &packageID},
		},
		Repositories: []*types.Repository{{
			Name: "openSUSE_Factory",
			Architectures: []*types.RepositoryArchitecture{
				{Architecture: &types.Architecture{Name: "x86_64"}},
				{Architecture: &types.Architecture{Name: "aarch64"}},
			},
			Paths: []*types.PathElement{{LinkedRepository: standard}},
		}},
	}

	meta, err := RenderProjectMeta(project)
	require.NoError(t, err)

	doc := string(meta)
	assert.Contains(t, doc, `<project name="openSUSE:Maintenance" kind="maintenance">`)
	assert.Contains(t, doc, `<description>Updates &amp; fixes</description>`)
	assert.Contains(t, doc, `<person userid="alice" role="maintainer"></person>`)
	assert.Contains(t, doc, `<group groupid="security-team" role="reviewer"></group>`)
	assert.Contains(t, doc, `<disable></disable>`)
	assert.Contains(t, doc, `<enable repository="standard" arch="x86_64"></enable>`)
	assert.Contains(t, doc, `<path project="openSUSE:Factory" repository="standard"></path>`)
	assert.Contains(t, doc, `<arch>x86_64</arch>`)
	assert.Contains(t, doc, `<access>`)
	// package flags do not belong into the project meta
	assert.NotContains(t, doc, `<publish>`)
}

func TestRenderProjectMeta_StandardKindOmitted(t *testing.T) {
	meta, err := RenderProjectMeta(&types.Project{Name: "home:alice", Kind: types.ProjectKindStandard})
	require.NoError(t, err)
	assert.Contains(t, string(meta), `<project name="home:alice">`)
}

func TestRenderProjectMeta_RequiresRoles(t *testing.T) {
	_, err := RenderProjectMeta(&types.Project{
		Name:          "home:alice",
		Relationships: []*types.Relationship{{User: &types.User{Login: "alice"}}},
	})
	assert.Error(t, err)
}
