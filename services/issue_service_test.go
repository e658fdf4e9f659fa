package services

import (
	"testing"

	"github.com/Mohfazam/CIVICOS/config"
	errs "github.com/Mohfazam/CIVICOS/errors"
	"github.com/Mohfazam/CIVICOS/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type issueServiceFixture struct {
	citizens  *fakeCitizenRepo
	directory *fakeDirectoryRepo
	issues    *fakeIssueRepo
	upvotes   *fakeUpvoteRepo
	notifier  *fakeNotifier
	service   IssueService
}

func newIssueServiceFixture() *issueServiceFixture {
	f := &issueServiceFixture{
		citizens:  newFakeCitizenRepo(),
		directory: newFakeDirectoryRepo(),
		issues:    newFakeIssueRepo(),
		upvotes:   newFakeUpvoteRepo(),
		notifier:  &fakeNotifier{},
	}
	f.service = NewIssueService(f.issues, f.citizens, f.directory, f.upvotes, f.notifier, &config.Config{})
	return f
}

func validIssueRequest(citizenID uuid.UUID) *models.IssueRequest {
	return &models.IssueRequest{
		Title:       "pothole on 5th main",
		Description: "deep pothole near the bus stop",
		Category:    "ROADS",
		Location:    "5th Main Road",
		CitizenID:   citizenID.String(),
	}
}

func TestCreateIssueRequiredFields(t *testing.T) {
	f := newIssueServiceFixture()
	citizen := f.citizens.add("asha", "asha@example.com", "Indiranagar")

	cases := []struct {
		name   string
		mutate func(*models.IssueRequest)
		field  string
	}{
		{"title", func(r *models.IssueRequest) { r.Title = "" }, "title"},
		{"description", func(r *models.IssueRequest) { r.Description = "" }, "description"},
		{"category", func(r *models.IssueRequest) { r.Category = "" }, "category"},
		{"location", func(r *models.IssueRequest) { r.Location = "" }, "location"},
		{"citizenId", func(r *models.IssueRequest) { r.CitizenID = "" }, "citizenId"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validIssueRequest(citizen.ID)
			tc.mutate(req)
			_, err := f.service.CreateIssue(req)
			var e *errs.Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, errs.CodeMissingField, e.Code)
			assert.Contains(t, e.Message, tc.field)
		})
	}
}

func TestCreateIssueDefaults(t *testing.T) {
	f := newIssueServiceFixture()
	citizen := f.citizens.add("asha", "asha@example.com", "Indiranagar")

	req := validIssueRequest(citizen.ID)
	req.Status = "RESOLVED" // ignored on create

	issue, err := f.service.CreateIssue(req)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, issue.Status)
	assert.Equal(t, models.SeverityLow, issue.Severity)
	assert.Equal(t, 0, issue.UpvoteCount)
	assert.Empty(t, f.notifier.mlas)
}

func TestCreateIssueRejectsUnknownSeverity(t *testing.T) {
	f := newIssueServiceFixture()
	citizen := f.citizens.add("asha", "asha@example.com", "Indiranagar")

	req := validIssueRequest(citizen.ID)
	req.Severity = "URGENT"

	_, err := f.service.CreateIssue(req)
	var e *errs.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errs.CodeBadRequest, e.Code)
}

func TestCreateIssueInvalidReferences(t *testing.T) {
	f := newIssueServiceFixture()
	citizen := f.citizens.add("asha", "asha@example.com", "Indiranagar")

	t.Run("unknown citizen", func(t *testing.T) {
		req := validIssueRequest(uuid.New())
		_, err := f.service.CreateIssue(req)
		var e *errs.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, errs.CodeInvalidReference, e.Code)
		assert.Equal(t, 400, e.Status)
	})

	t.Run("malformed citizen id", func(t *testing.T) {
		req := validIssueRequest(citizen.ID)
		req.CitizenID = "not-a-uuid"
		_, err := f.service.CreateIssue(req)
		var e *errs.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, errs.CodeInvalidReference, e.Code)
	})

	t.Run("unknown mla", func(t *testing.T) {
		req := validIssueRequest(citizen.ID)
		req.MLAID = uuid.New().String()
		_, err := f.service.CreateIssue(req)
		var e *errs.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, errs.CodeInvalidReference, e.Code)
		assert.Contains(t, e.Message, "mlaId")
	})

	t.Run("unknown organization", func(t *testing.T) {
		req := validIssueRequest(citizen.ID)
		req.OrganizationID = uuid.New().String()
		_, err := f.service.CreateIssue(req)
		var e *errs.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, errs.CodeInvalidReference, e.Code)
	})
}

func TestCreateIssueNotifiesAssignedMLA(t *testing.T) {
	f := newIssueServiceFixture()
	citizen := f.citizens.add("asha", "asha@example.com", "Indiranagar")
	mla := f.directory.addMLA("rajeev", "Indiranagar")

	req := validIssueRequest(citizen.ID)
	req.MLAID = mla.ID.String()
	req.Severity = "HIGH"

	issue, err := f.service.CreateIssue(req)
	require.NoError(t, err)
	require.NotNil(t, issue.MLAID)
	assert.Equal(t, mla.ID, *issue.MLAID)
	assert.Equal(t, models.SeverityHigh, issue.Severity)

	require.Len(t, f.notifier.mlas, 1)
	assert.Equal(t, mla.ID, f.notifier.mlas[0].ID)
	assert.Equal(t, issue.ID, f.notifier.issues[0].ID)
}

func TestUpdateIssueRequiresIDAndStatus(t *testing.T) {
	f := newIssueServiceFixture()

	_, err := f.service.UpdateIssue(&models.IssueRequest{Update: true, Status: "RESOLVED"})
	var e *errs.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errs.CodeMissingField, e.Code)
	assert.Contains(t, e.Message, "issueId")

	_, err = f.service.UpdateIssue(&models.IssueRequest{Update: true, IssueID: uuid.New().String()})
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errs.CodeMissingField, e.Code)
	assert.Contains(t, e.Message, "status")
}

func TestUpdateIssueUnknownIssue(t *testing.T) {
	f := newIssueServiceFixture()

	_, err := f.service.UpdateIssue(&models.IssueRequest{
		Update:  true,
		IssueID: uuid.New().String(),
		Status:  "IN_PROGRESS",
	})
	var e *errs.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errs.CodeNotFound, e.Code)
	assert.Equal(t, 404, e.Status)
}

func TestUpdateIssuePartial(t *testing.T) {
	f := newIssueServiceFixture()
	citizen := f.citizens.add("asha", "asha@example.com", "Indiranagar")
	issue := f.issues.add(&models.Issue{
		Title:     "pothole",
		Status:    models.StatusPending,
		Severity:  models.SeverityMedium,
		CitizenID: citizen.ID,
	})

	updated, err := f.service.UpdateIssue(&models.IssueRequest{
		Update:  true,
		IssueID: issue.ID.String(),
		Status:  "RESOLVED",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, updated.Status)
	assert.Equal(t, models.SeverityMedium, updated.Severity)

	// Only status moved; the update map carried no other field.
	_, hasSeverity := f.issues.lastUpdates["severity"]
	assert.False(t, hasSeverity)
	_, hasLat := f.issues.lastUpdates["latitude"]
	assert.False(t, hasLat)
}

func TestUpdateIssueRejectsUnknownStatus(t *testing.T) {
	f := newIssueServiceFixture()
	citizen := f.citizens.add("asha", "asha@example.com", "Indiranagar")
	issue := f.issues.add(&models.Issue{Title: "pothole", CitizenID: citizen.ID})

	_, err := f.service.UpdateIssue(&models.IssueRequest{
		Update:  true,
		IssueID: issue.ID.String(),
		Status:  "DONE",
	})
	var e *errs.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errs.CodeBadRequest, e.Code)
}

func TestGetIssueThreadHasUpvoted(t *testing.T) {
	f := newIssueServiceFixture()
	citizen := f.citizens.add("asha", "asha@example.com", "Indiranagar")
	issue := f.issues.add(&models.Issue{Title: "pothole", CitizenID: citizen.ID})

	_, _, err := f.upvotes.ToggleUpvote(issue.ID, citizen.ID)
	require.NoError(t, err)

	thread, err := f.service.GetIssueThread(issue.ID, &citizen.ID)
	require.NoError(t, err)
	assert.True(t, thread.HasUpvoted)

	anonymous, err := f.service.GetIssueThread(issue.ID, nil)
	require.NoError(t, err)
	assert.False(t, anonymous.HasUpvoted)
}
