package db

import (
	"testing"
	"time"

	"github.com/Mohfazam/CIVICOS/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCommentReloadsAuthor(t *testing.T) {
	g := newTestDB(t)
	repo := NewCommentRepo(g)

	citizen := createTestCitizen(t, g, "asha", "Indiranagar")
	issue := createTestIssue(t, g, citizen, "pothole")

	created, err := repo.CreateComment(&models.Comment{
		Content:         "still not fixed",
		IssueID:         issue.ID,
		AuthorType:      models.AuthorCitizen,
		AuthorID:        citizen.ID,
		CitizenAuthorID: &citizen.ID,
	})
	require.NoError(t, err)

	author := created.Author()
	require.NotNil(t, author)
	assert.Equal(t, models.AuthorCitizen, author.Type)
	assert.Equal(t, "asha", author.Name)
	assert.Equal(t, "asha@example.com", author.Email)
}

func TestListCommentsByIssueOldestFirst(t *testing.T) {
	g := newTestDB(t)
	repo := NewCommentRepo(g)

	citizen := createTestCitizen(t, g, "asha", "Indiranagar")
	org := createTestOrganization(t, g, "water-board", "Indiranagar")
	issue := createTestIssue(t, g, citizen, "burst pipe")

	_, err := repo.CreateComment(&models.Comment{
		Content:         "any update?",
		IssueID:         issue.ID,
		AuthorType:      models.AuthorCitizen,
		AuthorID:        citizen.ID,
		CitizenAuthorID: &citizen.ID,
	})
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	_, err = repo.CreateComment(&models.Comment{
		Content:     "crew dispatched",
		IssueID:     issue.ID,
		AuthorType:  models.AuthorOrganization,
		AuthorID:    org.ID,
		OrgAuthorID: &org.ID,
	})
	require.NoError(t, err)

	comments, err := repo.ListCommentsByIssue(issue.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "any update?", comments[0].Content)

	second := comments[1].Author()
	require.NotNil(t, second)
	assert.Equal(t, models.AuthorOrganization, second.Type)
	assert.Equal(t, "WATER", second.Category)
	assert.Empty(t, second.Email)
}

func TestDeleteComment(t *testing.T) {
	g := newTestDB(t)
	repo := NewCommentRepo(g)

	citizen := createTestCitizen(t, g, "asha", "Indiranagar")
	issue := createTestIssue(t, g, citizen, "pothole")

	created, err := repo.CreateComment(&models.Comment{
		Content:         "duplicate report",
		IssueID:         issue.ID,
		AuthorType:      models.AuthorCitizen,
		AuthorID:        citizen.ID,
		CitizenAuthorID: &citizen.ID,
	})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteComment(created.ID))

	_, err = repo.FindCommentByID(created.ID)
	assert.Error(t, err)
}
