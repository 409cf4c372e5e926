package backend

import (
	"encoding/xml"
	"fmt"

	"github.com/Artox/open-build-service/api/pkg/types"
)

// ProjectMeta is the _meta document of a project
type ProjectMeta struct {
	XMLName      xml.Name         `xml:"project"`
	Name         string           `xml:"name,attr"`
	Kind         string           `xml:"kind,attr,omitempty"`
	Title        string           `xml:"title"`
	Description  string           `xml:"description"`
	Links        []MetaLink       `xml:"link"`
	Persons      []MetaPerson     `xml:"person"`
	Groups       []MetaGroup      `xml:"group"`
	Lock         *MetaFlags       `xml:"lock"`
	Build        *MetaFlags       `xml:"build"`
	Publish      *MetaFlags       `xml:"publish"`
	DebugInfo    *MetaFlags       `xml:"debuginfo"`
	UseForBuild  *MetaFlags       `xml:"useforbuild"`
	SourceAccess *MetaFlags       `xml:"sourceaccess"`
	Access       *MetaFlags       `xml:"access"`
	Repositories []MetaRepository `xml:"repository"`
}

type MetaLink struct {
	Project string `xml:"project,attr"`
}

type MetaPerson struct {
	UserID string `xml:"userid,attr"`
	Role   string `xml:"role,attr"`
}

type MetaGroup struct {
	GroupID string `xml:"groupid,attr"`
	Role    string `xml:"role,attr"`
}

type MetaFlags struct {
	Entries []MetaFlag
}

// MetaFlag is an <enable/> or <disable/> entry
type MetaFlag struct {
	XMLName      xml.Name
	Repository   string `xml:"repository,attr,omitempty"`
	Architecture string `xml:"arch,attr,omitempty"`
}

type MetaRepository struct {
	Name           string              `xml:"name,attr"`
	ReleaseTargets []MetaReleaseTarget `xml:"releasetarget"`
	Paths          []MetaPath          `xml:"path"`
	Archs          []string            `xml:"arch"`
}

type MetaReleaseTarget struct {
	Project    string `xml:"project,attr"`
	Repository string `xml:"repository,attr"`
	Trigger    string `xml:"trigger,attr,omitempty"`
}

type MetaPath struct {
	Project    string `xml:"project,attr"`
	Repository string `xml:"repository,attr"`
}

// RenderProjectMeta builds the _meta document the backend stores for the project.
// Relationships need their users, groups and roles loaded.
func RenderProjectMeta(project *types.Project) ([]byte, error) {
	meta := ProjectMeta{
		Name:        project.Name,
		Title:       project.Title,
		Description: project.Description,
	}
	if project.Kind != "" && project.Kind != types.ProjectKindStandard {
		meta.Kind = string(project.Kind)
	}

	for _, lp := range project.LinkedProjects {
		switch {
		case lp.LinkedProject != nil:
			meta.Links = append(meta.Links, MetaLink{Project: lp.LinkedProject.Name})
		case lp.LinkedRemoteProjectName != "":
			meta.Links = append(meta.Links, MetaLink{Project: lp.LinkedRemoteProjectName})
		}
	}

	for _, r := range project.Relationships {
		if r.Role == nil {
			return nil, fmt.Errorf("relationship %d of %s has no role loaded", r.ID, project.Name)
		}
		switch {
		case r.User != nil:
			meta.Persons = append(meta.Persons, MetaPerson{UserID: r.User.Login, Role: string(r.Role.Title)})
		case r.Group != nil:
			meta.Groups = append(meta.Groups, MetaGroup{GroupID: r.Group.Title, Role: string(r.Role.Title)})
		}
	}

	for _, f := range project.Flags {
		if f.PackageID != nil {
			continue
		}
		flags := meta.flagsFor(f.Type)
		if flags == nil {
			return nil, fmt.Errorf("unknown flag type %s", f.Type)
		}
		flags.Entries = append(flags.Entries, MetaFlag{
			XMLName:      xml.Name{Local: string(f.Status)},
			Repository:   f.Repository,
			Architecture: f.Architecture,
		})
	}

	for _, repo := range project.Repositories {
		mr := MetaRepository{Name: repo.Name, Archs: repo.ArchitectureNames()}
		for _, rt := range repo.ReleaseTargets {
			if rt.TargetRepository == nil || rt.TargetRepository.Project == nil {
				continue
			}
			mr.ReleaseTargets = append(mr.ReleaseTargets, MetaReleaseTarget{
				Project:    rt.TargetRepository.Project.Name,
				Repository: rt.TargetRepository.Name,
				Trigger:    rt.Trigger,
			})
		}
		for _, p := range repo.Paths {
			if p.LinkedRepository == nil || p.LinkedRepository.Project == nil {
				continue
			}
			mr.Paths = append(mr.Paths, MetaPath{
				Project:    p.LinkedRepository.Project.Name,
				Repository: p.LinkedRepository.Name,
			})
		}
		meta.Repositories = append(meta.Repositories, mr)
	}

	return xml.MarshalIndent(meta, "", "  ")
}

// flagsFor returns the section of the flag type, creating it on first use
func (m *ProjectMeta) flagsFor(flagType types.FlagType) *MetaFlags {
	var section **MetaFlags
	switch flagType {
	case types.FlagTypeLock:
		section = &m.Lock
	case types.FlagTypeBuild:
		section = &m.Build
	case types.FlagTypePublish:
		section = &m.Publish
	case types.FlagTypeDebugInfo:
		section = &m.DebugInfo
	case types.FlagTypeUseForBuild:
		section = &m.UseForBuild
	case types.FlagTypeSourceAccess:
		section = &m.SourceAccess
	case types.FlagTypeAccess:
		section = &m.Access
	default:
		return nil
	}
	if *section == nil {
		*section = &MetaFlags{}
	}
	return *section
}
