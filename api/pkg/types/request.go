package types

import "time"

// BsRequest is a workflow request wrapping one or more typed actions
type BsRequest struct {
	ID          uint               `json:"id" gorm:"primaryKey"`
	Creator     string             `json:"creator" gorm:"index"`
	State       RequestState       `json:"state" gorm:"index"`
	Description string             `json:"description" gorm:"type:text"`
	Actions     []*BsRequestAction `json:"actions,omitempty" gorm:"foreignKey:BsRequestID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

type BsRequestAction struct {
	ID                   uint              `json:"id" gorm:"primaryKey"`
	BsRequestID          uint              `json:"bs_request_id" gorm:"index"`
	Type                 RequestActionType `json:"type" gorm:"index"`
	SourceProject        string            `json:"source_project,omitempty"`
	SourcePackage        string            `json:"source_package,omitempty"`
	SourceRev            string            `json:"source_rev,omitempty"`
	TargetProject        string            `json:"target_project,omitempty" gorm:"index"`
	TargetPackage        string            `json:"target_package,omitempty"`
	TargetRepository     string            `json:"target_repository,omitempty"`
	TargetReleaseProject string            `json:"target_releaseproject,omitempty"`
}

// RequestTarget is the narrow projection of a submit action used by the status page
type RequestTarget struct {
	ID            uint         `json:"id"`
	State         RequestState `json:"state"`
	TargetProject string       `json:"target_project"`
	TargetPackage string       `json:"target_package"`
}

// CreateRequestOptions describes a new request with a single action
type CreateRequestOptions struct {
	Type             RequestActionType `json:"type"`
	Description      string            `json:"description"`
	SourceProject    string            `json:"source_project,omitempty"`
	TargetProject    string            `json:"target_project,omitempty"`
	TargetRepository string            `json:"target_repository,omitempty"`
	ReleaseProject   string            `json:"release_project,omitempty"`
}
