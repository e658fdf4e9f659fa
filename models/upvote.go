package models

import (
	"time"

	"github.com/google/uuid"
)

// Upvote is a citizen's endorsement of an issue. Existence of the row is
// the source of truth for "has upvoted"; the unique index on
// (issue_id, citizen_id) caps a citizen at one upvote per issue and
// Issue.UpvoteCount mirrors the row count.
type Upvote struct {
	Model
	IssueID   uuid.UUID `json:"issueId" gorm:"type:uuid;not null;uniqueIndex:idx_upvotes_issue_citizen"`
	CitizenID uuid.UUID `json:"citizenId" gorm:"type:uuid;not null;uniqueIndex:idx_upvotes_issue_citizen"`

	Citizen *Citizen `json:"citizen,omitempty" gorm:"foreignKey:CitizenID"`
}

// UpvoterView is one entry in the "who upvoted" list.
type UpvoterView struct {
	Citizen   CitizenView `json:"citizen"`
	UpvotedAt time.Time   `json:"upvotedAt"`
}

// UpvoteStatus is the {count, hasUpvoted} pair for an issue as seen by
// an optional citizen.
type UpvoteStatus struct {
	UpvoteCount int  `json:"upvoteCount"`
	HasUpvoted  bool `json:"hasUpvoted"`
}
