package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type AuthorType string

const (
	AuthorCitizen      AuthorType = "CITIZEN"
	AuthorMLA          AuthorType = "MLA"
	AuthorOrganization AuthorType = "ORGANIZATION"
)

func ParseAuthorType(s string) (AuthorType, error) {
	switch AuthorType(s) {
	case AuthorCitizen, AuthorMLA, AuthorOrganization:
		return AuthorType(s), nil
	}
	return "", fmt.Errorf("unknown author type %q", s)
}

// Comment belongs to an issue and carries a polymorphic author: the
// AuthorType discriminator plus exactly one of the three author foreign
// keys, always the one matching AuthorType. The other two stay NULL.
type Comment struct {
	Model
	Content    string     `json:"content" gorm:"type:varchar(1000);not null"`
	IssueID    uuid.UUID  `json:"issueId" gorm:"type:uuid;not null;index"`
	AuthorType AuthorType `json:"authorType" gorm:"type:varchar(20);not null"`
	AuthorID   uuid.UUID  `json:"authorId" gorm:"type:uuid;not null"`

	CitizenAuthorID *uuid.UUID `json:"-" gorm:"type:uuid"`
	MLAAuthorID     *uuid.UUID `json:"-" gorm:"column:mla_author_id;type:uuid"`
	OrgAuthorID     *uuid.UUID `json:"-" gorm:"type:uuid"`

	CitizenAuthor *Citizen      `json:"-" gorm:"foreignKey:CitizenAuthorID"`
	MLAAuthor     *MLA          `json:"-" gorm:"foreignKey:MLAAuthorID"`
	OrgAuthor     *Organization `json:"-" gorm:"foreignKey:OrgAuthorID"`
}

// Author is the uniform author view: whichever entity wrote the comment,
// flattened to its public fields and tagged with its type. Fields that
// do not apply to a given author kind are omitted from the JSON.
type Author struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email,omitempty"`
	Party        string     `json:"party,omitempty"`
	Category     string     `json:"category,omitempty"`
	Constituency string     `json:"constituency"`
	Type         AuthorType `json:"type"`
}

// Author resolves the populated author relation into the uniform view.
// This is the single place the three-way branch lives; every read path
// that returns comments goes through it. Returns nil when the relation
// matching AuthorType was not loaded.
func (c *Comment) Author() *Author {
	switch c.AuthorType {
	case AuthorCitizen:
		if c.CitizenAuthor != nil {
			return &Author{
				ID:           c.CitizenAuthor.ID,
				Name:         c.CitizenAuthor.Name,
				Email:        c.CitizenAuthor.Email,
				Constituency: c.CitizenAuthor.Constituency,
				Type:         AuthorCitizen,
			}
		}
	case AuthorMLA:
		if c.MLAAuthor != nil {
			return &Author{
				ID:           c.MLAAuthor.ID,
				Name:         c.MLAAuthor.Name,
				Party:        c.MLAAuthor.Party,
				Constituency: c.MLAAuthor.Constituency,
				Type:         AuthorMLA,
			}
		}
	case AuthorOrganization:
		if c.OrgAuthor != nil {
			return &Author{
				ID:           c.OrgAuthor.ID,
				Name:         c.OrgAuthor.Name,
				Category:     c.OrgAuthor.Category,
				Constituency: c.OrgAuthor.Constituency,
				Type:         AuthorOrganization,
			}
		}
	}
	return nil
}

// CommentView is the comment as returned by every read endpoint.
type CommentView struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	Author    *Author   `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Comment) View() CommentView {
	return CommentView{
		ID:        c.ID,
		Content:   c.Content,
		Author:    c.Author(),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
