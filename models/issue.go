package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type IssueStatus string

const (
	StatusPending    IssueStatus = "PENDING"
	StatusInProgress IssueStatus = "IN_PROGRESS"
	StatusResolved   IssueStatus = "RESOLVED"
)

// ParseIssueStatus rejects anything outside the three known literals.
// Membership is enforced uniformly on create and update; transition
// legality is deliberately not (RESOLVED may go back to PENDING).
func ParseIssueStatus(s string) (IssueStatus, error) {
	switch IssueStatus(s) {
	case StatusPending, StatusInProgress, StatusResolved:
		return IssueStatus(s), nil
	}
	return "", fmt.Errorf("status must be PENDING, IN_PROGRESS or RESOLVED, got %q", s)
}

type IssueSeverity string

const (
	SeverityLow      IssueSeverity = "LOW"
	SeverityMedium   IssueSeverity = "MEDIUM"
	SeverityHigh     IssueSeverity = "HIGH"
	SeverityCritical IssueSeverity = "CRITICAL"
)

func ParseIssueSeverity(s string) (IssueSeverity, error) {
	switch IssueSeverity(s) {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return IssueSeverity(s), nil
	}
	return "", fmt.Errorf("severity must be LOW, MEDIUM, HIGH or CRITICAL, got %q", s)
}

// Issue is the central aggregate root: a reported civic problem owned by
// a citizen and optionally assigned to an MLA and/or organization.
//
// UpvoteCount is a cached projection of count(upvotes where issue_id=id)
// and is only ever written together with an Upvote row inside one
// transaction (see db.UpvoteRepository).
type Issue struct {
	Model
	Title          string        `json:"title" gorm:"not null"`
	Description    string        `json:"description" gorm:"type:varchar(2000);not null"`
	Category       string        `json:"category" gorm:"not null;index"`
	MediaURL       *string       `json:"mediaUrl" gorm:"column:media_url"`
	Location       string        `json:"location"`
	Latitude       *float64      `json:"latitude"`
	Longitude      *float64      `json:"longitude"`
	Status         IssueStatus   `json:"status" gorm:"type:varchar(20);default:'PENDING';index"`
	Severity       IssueSeverity `json:"severity" gorm:"type:varchar(20);default:'LOW';index"`
	UpvoteCount    int           `json:"upvoteCount" gorm:"default:0"`
	CitizenID      uuid.UUID     `json:"citizenId" gorm:"type:uuid;not null;index"`
	MLAID          *uuid.UUID    `json:"mlaId" gorm:"column:mla_id;type:uuid;index"`
	OrganizationID *uuid.UUID    `json:"organizationId" gorm:"type:uuid;index"`

	Citizen      *Citizen      `json:"citizen,omitempty" gorm:"foreignKey:CitizenID"`
	MLA          *MLA          `json:"mla,omitempty" gorm:"foreignKey:MLAID"`
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
	Comments     []Comment     `json:"comments,omitempty" gorm:"foreignKey:IssueID"`
	Upvotes      []Upvote      `json:"upvotes,omitempty" gorm:"foreignKey:IssueID"`
}

// IssueFilter narrows issue listings. Zero values mean "no filter".
// Constituency matches through citizen OR mla OR organization.
type IssueFilter struct {
	Status         string
	Severity       string
	Category       string
	Constituency   string
	CitizenID      *uuid.UUID
	MLAID          *uuid.UUID
	OrganizationID *uuid.UUID
	Limit          *int
	Offset         *int
}

// IssueView is the flattened list/detail projection with related
// entities replaced by their public views.
type IssueView struct {
	ID             uuid.UUID         `json:"id"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Category       string            `json:"category"`
	MediaURL       *string           `json:"mediaUrl"`
	Location       string            `json:"location"`
	Latitude       *float64          `json:"latitude"`
	Longitude      *float64          `json:"longitude"`
	Status         IssueStatus       `json:"status"`
	Severity       IssueSeverity     `json:"severity"`
	UpvoteCount    int               `json:"upvoteCount"`
	CitizenID      uuid.UUID         `json:"citizenId"`
	MLAID          *uuid.UUID        `json:"mlaId"`
	OrganizationID *uuid.UUID        `json:"organizationId"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
	Citizen        *CitizenView      `json:"citizen,omitempty"`
	MLA            *MLAView          `json:"mla,omitempty"`
	Organization   *OrganizationView `json:"organization,omitempty"`
}

func (i *Issue) View() IssueView {
	v := IssueView{
		ID:             i.ID,
		Title:          i.Title,
		Description:    i.Description,
		Category:       i.Category,
		MediaURL:       i.MediaURL,
		Location:       i.Location,
		Latitude:       i.Latitude,
		Longitude:      i.Longitude,
		Status:         i.Status,
		Severity:       i.Severity,
		UpvoteCount:    i.UpvoteCount,
		CitizenID:      i.CitizenID,
		MLAID:          i.MLAID,
		OrganizationID: i.OrganizationID,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
	if i.Citizen != nil {
		cv := i.Citizen.View()
		v.Citizen = &cv
	}
	if i.MLA != nil {
		mv := i.MLA.View()
		v.MLA = &mv
	}
	if i.Organization != nil {
		ov := i.Organization.View()
		v.Organization = &ov
	}
	return v
}

// IssueThread is the single-issue payload with the full thread attached.
type IssueThread struct {
	IssueView
	HasUpvoted   bool          `json:"hasUpvoted"`
	Comments     []CommentView `json:"comments"`
	CommentCount int           `json:"commentCount"`
	Upvoters     []UpvoterView `json:"upvotes"`
}
