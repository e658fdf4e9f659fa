package models

import "github.com/google/uuid"

// MLA is an elected representative an issue may be assigned to. Read
// mostly: rows are seeded or imported, never mutated by issue flows.
type MLA struct {
	Model
	Name         string   `json:"name" binding:"required" conform:"trim"`
	Party        string   `json:"party" conform:"trim"`
	Constituency string   `json:"constituency" binding:"required" conform:"trim"`
	Email        string   `json:"email" binding:"omitempty,email" conform:"trim,lower"`
	Phone        *string  `json:"phone"`
	Rating       *float64 `json:"rating"`
}

func (MLA) TableName() string { return "mlas" }

// MLAView is the projection embedded in issue and comment payloads.
type MLAView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Party        string    `json:"party"`
	Constituency string    `json:"constituency"`
	Email        string    `json:"email,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	Rating       *float64  `json:"rating,omitempty"`
}

func (m *MLA) View() MLAView {
	return MLAView{
		ID:           m.ID,
		Name:         m.Name,
		Party:        m.Party,
		Constituency: m.Constituency,
		Email:        m.Email,
		Phone:        m.Phone,
		Rating:       m.Rating,
	}
}
