package models

import "github.com/google/uuid"

// Citizen represents a registered citizen of the platform. Citizens own
// issues and may author comments and upvotes.
type Citizen struct {
	Model
	Name         string `json:"name" binding:"required,min=2" conform:"trim"`
	Email        string `json:"email" gorm:"unique;not null" binding:"required,email" conform:"trim,lower"`
	Constituency string `json:"constituency" binding:"required" conform:"trim"`

	LinkedMLAs          []MLA          `json:"linked_MLAs,omitempty" gorm:"many2many:citizen_mlas;"`
	LinkedOrganizations []Organization `json:"linked_Organizations,omitempty" gorm:"many2many:citizen_organizations;"`
	Issues              []Issue        `json:"issues,omitempty" gorm:"foreignKey:CitizenID"`
}

// CitizenView is the projection embedded in issue and comment payloads.
type CitizenView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	Constituency string    `json:"constituency"`
}

func (c *Citizen) View() CitizenView {
	return CitizenView{ID: c.ID, Name: c.Name, Email: c.Email, Constituency: c.Constituency}
}

// CitizenDetails is the shape returned by the citizen details endpoint:
// the profile plus the most recent linked MLA, linked organizations and
// the citizen's issues, newest first.
type CitizenDetails struct {
	ID                  uuid.UUID      `json:"id"`
	Name                string         `json:"name"`
	Email               string         `json:"email"`
	Constituency        string         `json:"constituency"`
	MLAID               *uuid.UUID     `json:"mlaId"`
	CurrentMLA          *MLA           `json:"currentMLA"`
	LinkedOrganizations []Organization `json:"linked_Organizations"`
	Issues              []IssueView    `json:"issues"`
}
