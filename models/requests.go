package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Coordinate accepts either a JSON number or a numeric string (clients
// historically sent both) and rejects anything that does not parse as a
// float.
type Coordinate float64

func (c *Coordinate) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		s = strings.TrimSpace(str)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid coordinate %q", s)
	}
	*c = Coordinate(f)
	return nil
}

func (c *Coordinate) Float() *float64 {
	if c == nil {
		return nil
	}
	f := float64(*c)
	return &f
}

// IssueRequest is the body of POST /citizen/issue. With Update unset it
// creates an issue; with Update set it applies a partial update to
// IssueID (status required, severity/coordinates optional).
type IssueRequest struct {
	Update         bool        `json:"update"`
	IssueID        string      `json:"issueId"`
	Title          string      `json:"title" conform:"trim"`
	Description    string      `json:"description" conform:"trim"`
	Category       string      `json:"category" conform:"trim"`
	MediaURL       string      `json:"mediaUrl" conform:"trim"`
	Location       string      `json:"location" conform:"trim"`
	Latitude       *Coordinate `json:"latitude"`
	Longitude      *Coordinate `json:"longitude"`
	CitizenID      string      `json:"citizenId"`
	MLAID          string      `json:"mlaId"`
	OrganizationID string      `json:"organizationId"`
	Status         string      `json:"status"`
	Severity       string      `json:"severity"`
}

// CommentRequest is the body of the comment creation endpoints.
type CommentRequest struct {
	Content    string `json:"content" conform:"trim"`
	AuthorType string `json:"authorType" conform:"trim,upper"`
	AuthorID   string `json:"authorId" conform:"trim"`
}

// DeleteCommentRequest carries the caller-declared author identity.
// Ownership is checked against this asserted pair; there is no session
// layer anywhere in the system.
type DeleteCommentRequest struct {
	AuthorType string `json:"authorType" conform:"trim,upper"`
	AuthorID   string `json:"authorId" conform:"trim"`
}

// UpvoteRequest is the body of the upvote toggle endpoint.
type UpvoteRequest struct {
	CitizenID string `json:"citizenId" conform:"trim"`
}
