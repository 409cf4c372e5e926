package types

import (
	"fmt"
)

type ProjectKind string

const (
	ProjectKindStandard            ProjectKind = "standard"
	ProjectKindMaintenance         ProjectKind = "maintenance"
	ProjectKindMaintenanceIncident ProjectKind = "maintenance_incident"
)

func ValidateProjectKind(kind string, acceptEmpty bool) (ProjectKind, error) {
	switch kind {
	case string(ProjectKindStandard):
		return ProjectKindStandard, nil
	case string(ProjectKindMaintenance):
		return ProjectKindMaintenance, nil
	case string(ProjectKindMaintenanceIncident):
		return ProjectKindMaintenanceIncident, nil
	default:
		if acceptEmpty && kind == "" {
			return ProjectKindStandard, nil
		}
		return "", fmt.Errorf("invalid project kind: %s", kind)
	}
}

type RequestState string

const (
	RequestStateNew        RequestState = "new"
	RequestStateReview     RequestState = "review"
	RequestStateAccepted   RequestState = "accepted"
	RequestStateDeclined   RequestState = "declined"
	RequestStateSuperseded RequestState = "superseded"
	RequestStateRevoked    RequestState = "revoked"
)

// OpenRequestStates are the states of requests still waiting for a decision
var OpenRequestStates = []RequestState{RequestStateNew, RequestStateReview}

func ValidateRequestState(state string) (RequestState, error) {
	switch RequestState(state) {
	case RequestStateNew, RequestStateReview, RequestStateAccepted,
		RequestStateDeclined, RequestStateSuperseded, RequestStateRevoked:
		return RequestState(state), nil
	default:
		return "", fmt.Errorf("invalid request state: %s", state)
	}
}

type RequestActionType string

const (
	RequestActionTypeSubmit              RequestActionType = "submit"
	RequestActionTypeDelete              RequestActionType = "delete"
	RequestActionTypeMaintenanceIncident RequestActionType = "maintenance_incident"
	RequestActionTypeMaintenanceRelease  RequestActionType = "maintenance_release"
)

func ValidateRequestActionType(actionType string) (RequestActionType, error) {
	switch RequestActionType(actionType) {
	case RequestActionTypeSubmit, RequestActionTypeDelete,
		RequestActionTypeMaintenanceIncident, RequestActionTypeMaintenanceRelease:
		return RequestActionType(actionType), nil
	default:
		return "", fmt.Errorf("invalid request action type: %s", actionType)
	}
}

type FlagType string

const (
	FlagTypeAccess       FlagType = "access"
	FlagTypeSourceAccess FlagType = "sourceaccess"
	FlagTypePublish      FlagType = "publish"
	FlagTypeBuild        FlagType = "build"
	FlagTypeDebugInfo    FlagType = "debuginfo"
	FlagTypeUseForBuild  FlagType = "useforbuild"
	FlagTypeLock         FlagType = "lock"
)

// RepositoryFlagTypes are the flags shown on the repositories page, in display order
var RepositoryFlagTypes = []FlagType{FlagTypeBuild, FlagTypePublish, FlagTypeDebugInfo, FlagTypeUseForBuild}

func ValidateFlagType(flagType string) (FlagType, error) {
	switch FlagType(flagType) {
	case FlagTypeAccess, FlagTypeSourceAccess, FlagTypePublish, FlagTypeBuild,
		FlagTypeDebugInfo, FlagTypeUseForBuild, FlagTypeLock:
		return FlagType(flagType), nil
	default:
		return "", fmt.Errorf("invalid flag type: %s", flagType)
	}
}

type FlagStatus string

const (
	FlagStatusEnable  FlagStatus = "enable"
	FlagStatusDisable FlagStatus = "disable"
)

func ValidateFlagStatus(status string) (FlagStatus, error) {
	switch FlagStatus(status) {
	case FlagStatusEnable, FlagStatusDisable:
		return FlagStatus(status), nil
	default:
		return "", fmt.Errorf("invalid flag status: %s", status)
	}
}

type RoleTitle string

const (
	RoleMaintainer RoleTitle = "maintainer"
	RoleBugowner   RoleTitle = "bugowner"
	RoleReviewer   RoleTitle = "reviewer"
	RoleDownloader RoleTitle = "downloader"
	RoleReader     RoleTitle = "reader"
)

var AllRoles = []RoleTitle{RoleMaintainer, RoleBugowner, RoleReviewer, RoleDownloader, RoleReader}

// attribute names used by the project pages
const (
	AttribNamespaceOBS      = "OBS"
	AttribNamespaceOpenSUSE = "openSUSE"

	AttribFailComment         = "ProjectStatusPackageFailComment"
	AttribUpstreamVersion     = "UpstreamVersion"
	AttribUpstreamTarballURL  = "UpstreamTarballURL"
	AttribVeryImportant       = "VeryImportantProject"
	AttribMaintenanceProject  = "MaintenanceProject"
	AttribMaintenanceIdPrefix = "MaintenanceIdTemplate"
)

// ProjectEventType is the type of a project event published on the message bus
type ProjectEventType string

const (
	ProjectEventCreated       ProjectEventType = "created"
	ProjectEventUpdated       ProjectEventType = "updated"
	ProjectEventDeleted       ProjectEventType = "deleted"
	ProjectEventMetaSaved     ProjectEventType = "meta_saved"
	ProjectEventConfigSaved   ProjectEventType = "config_saved"
	ProjectEventRepositories  ProjectEventType = "repositories_changed"
	ProjectEventRequestCreate ProjectEventType = "request_created"
	ProjectEventUnlocked      ProjectEventType = "unlocked"
)
