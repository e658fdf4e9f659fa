package models

import "github.com/google/uuid"

// Organization is a civic organization (NGO, utility, municipal body)
// an issue may be assigned to. Same read-mostly role as MLA.
type Organization struct {
	Model
	Name         string `json:"name" binding:"required" conform:"trim"`
	Category     string `json:"category" conform:"trim"`
	Constituency string `json:"constituency" binding:"required" conform:"trim"`
	ContactEmail string `json:"contact_email" gorm:"column:contact_email" binding:"omitempty,email" conform:"trim,lower"`
	ContactPhone string `json:"contact_phone" gorm:"column:contact_phone"`
	Address      string `json:"address" conform:"trim"`
}

// OrganizationView is the projection embedded in issue and comment payloads.
type OrganizationView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Constituency string    `json:"constituency"`
	ContactEmail string    `json:"contact_email,omitempty"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	Address      string    `json:"address,omitempty"`
}

func (o *Organization) View() OrganizationView {
	return OrganizationView{
		ID:           o.ID,
		Name:         o.Name,
		Category:     o.Category,
		Constituency: o.Constituency,
		ContactEmail: o.ContactEmail,
		ContactPhone: o.ContactPhone,
		Address:      o.Address,
	}
}
