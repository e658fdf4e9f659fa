package services

import (
	"log"

	"github.com/Mohfazam/CIVICOS/config"
	"github.com/Mohfazam/CIVICOS/db"
	errs "github.com/Mohfazam/CIVICOS/errors"
	"github.com/Mohfazam/CIVICOS/models"
	"github.com/google/uuid"
)

// IssueNotifier is told when a newly created issue is assigned to an
// MLA. Implementations must be best-effort: a failed notification never
// fails the issue creation.
type IssueNotifier interface {
	IssueAssigned(issue *models.Issue, mla *models.MLA)
}

type IssueService interface {
	CreateIssue(req *models.IssueRequest) (*models.Issue, error)
	UpdateIssue(req *models.IssueRequest) (*models.Issue, error)
	GetIssueThread(issueID uuid.UUID, citizenID *uuid.UUID) (*models.IssueThread, error)
	ListIssues(filter models.IssueFilter) ([]models.IssueView, int64, error)
}

type issueService struct {
	Config        *config.Config
	issueRepo     db.IssueRepository
	citizenRepo   db.CitizenRepository
	directoryRepo db.DirectoryRepository
	upvoteRepo    db.UpvoteRepository
	notifier      IssueNotifier
}

// NewIssueService instantiates an IssueService. notifier may be nil.
func NewIssueService(issueRepo db.IssueRepository, citizenRepo db.CitizenRepository, directoryRepo db.DirectoryRepository, upvoteRepo db.UpvoteRepository, notifier IssueNotifier, conf *config.Config) IssueService {
	return &issueService{
		Config:        conf,
		issueRepo:     issueRepo,
		citizenRepo:   citizenRepo,
		directoryRepo: directoryRepo,
		upvoteRepo:    upvoteRepo,
		notifier:      notifier,
	}
}

// CreateIssue validates everything before the first write: required
// fields, severity enum, and that every referenced entity exists. The
// existence checks are advisory; no transaction spans check and insert,
// so a row deleted in between still slips through. Status is always
// PENDING at birth regardless of what the caller sent.
func (s *issueService) CreateIssue(req *models.IssueRequest) (*models.Issue, error) {
	switch {
	case req.Title == "":
		return nil, errs.MissingField("title")
	case req.Description == "":
		return nil, errs.MissingField("description")
	case req.Category == "":
		return nil, errs.MissingField("category")
	case req.Location == "":
		return nil, errs.MissingField("location")
	case req.CitizenID == "":
		return nil, errs.MissingField("citizenId")
	}

	severity := models.SeverityLow
	if req.Severity != "" {
		parsed, err := models.ParseIssueSeverity(req.Severity)
		if err != nil {
			return nil, errs.BadRequest(err.Error())
		}
		severity = parsed
	}

	citizenID, err := uuid.Parse(req.CitizenID)
	if err != nil {
		return nil, errs.InvalidReference("Citizen", "citizenId")
	}
	exists, err := s.citizenRepo.CitizenExists(citizenID)
	if err != nil {
		return nil, errs.StorageFailure(err)
	}
	if !exists {
		return nil, errs.InvalidReference("Citizen", "citizenId")
	}

	var mlaID *uuid.UUID
	var mla *models.MLA
	if req.MLAID != "" {
		id, err := uuid.Parse(req.MLAID)
		if err != nil {
			return nil, errs.InvalidReference("MLA", "mlaId")
		}
		mla, err = s.directoryRepo.FindMLAByID(id)
		if err != nil {
			e := storageErr(err, "MLA")
			if e.Code == errs.CodeNotFound {
				return nil, errs.InvalidReference("MLA", "mlaId")
			}
			return nil, e
		}
		mlaID = &id
	}

	var orgID *uuid.UUID
	if req.OrganizationID != "" {
		id, err := uuid.Parse(req.OrganizationID)
		if err != nil {
			return nil, errs.InvalidReference("Organization", "organizationId")
		}
		exists, err := s.directoryRepo.OrganizationExists(id)
		if err != nil {
			return nil, errs.StorageFailure(err)
		}
		if !exists {
			return nil, errs.InvalidReference("Organization", "organizationId")
		}
		orgID = &id
	}

	issue := &models.Issue{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		Location:       req.Location,
		Latitude:       req.Latitude.Float(),
		Longitude:      req.Longitude.Float(),
		Status:         models.StatusPending,
		Severity:       severity,
		CitizenID:      citizenID,
		MLAID:          mlaID,
		OrganizationID: orgID,
	}
	if req.MediaURL != "" {
		mediaURL := req.MediaURL
		issue.MediaURL = &mediaURL
	}

	if err := s.issueRepo.CreateIssue(issue); err != nil {
		return nil, errs.StorageFailure(err)
	}

	if s.notifier != nil && mla != nil {
		s.notifier.IssueAssigned(issue, mla)
	}

	log.Printf("issue %s created by citizen %s", issue.ID, citizenID)
	return issue, nil
}

// UpdateIssue applies a partial update: status is mandatory on this
// path, severity and coordinates move only when supplied. Enum
// membership is checked; transition legality deliberately is not, so
// RESOLVED may go back to PENDING.
func (s *issueService) UpdateIssue(req *models.IssueRequest) (*models.Issue, error) {
	if req.IssueID == "" {
		return nil, errs.MissingField("issueId")
	}
	if req.Status == "" {
		return nil, errs.MissingField("status")
	}

	issueID, err := uuid.Parse(req.IssueID)
	if err != nil {
		return nil, errs.NotFound("Issue")
	}
	exists, err := s.issueRepo.IssueExists(issueID)
	if err != nil {
		return nil, errs.StorageFailure(err)
	}
	if !exists {
		return nil, errs.NotFound("Issue")
	}

	status, err := models.ParseIssueStatus(req.Status)
	if err != nil {
		return nil, errs.BadRequest(err.Error())
	}

	updates := map[string]interface{}{"status": status}
	if req.Severity != "" {
		severity, err := models.ParseIssueSeverity(req.Severity)
		if err != nil {
			return nil, errs.BadRequest(err.Error())
		}
		updates["severity"] = severity
	}
	if req.Latitude != nil {
		updates["latitude"] = *req.Latitude.Float()
	}
	if req.Longitude != nil {
		updates["longitude"] = *req.Longitude.Float()
	}

	issue, err := s.issueRepo.UpdateIssue(issueID, updates)
	if err != nil {
		return nil, storageErr(err, "Issue")
	}
	return issue, nil
}

// GetIssueThread returns the issue with its full thread. hasUpvoted is
// resolved with a point lookup on the unique (issue, citizen) pair when
// a citizen id is supplied.
func (s *issueService) GetIssueThread(issueID uuid.UUID, citizenID *uuid.UUID) (*models.IssueThread, error) {
	issue, err := s.issueRepo.FindIssueWithThread(issueID)
	if err != nil {
		return nil, storageErr(err, "Issue")
	}

	hasUpvoted := false
	if citizenID != nil {
		hasUpvoted, err = s.upvoteRepo.HasUpvoted(issueID, *citizenID)
		if err != nil {
			return nil, errs.StorageFailure(err)
		}
	}

	comments := make([]models.CommentView, 0, len(issue.Comments))
	for i := range issue.Comments {
		comments = append(comments, issue.Comments[i].View())
	}

	upvoters := make([]models.UpvoterView, 0, len(issue.Upvotes))
	for i := range issue.Upvotes {
		uv := issue.Upvotes[i]
		if uv.Citizen == nil {
			continue
		}
		upvoters = append(upvoters, models.UpvoterView{
			Citizen:   uv.Citizen.View(),
			UpvotedAt: uv.CreatedAt,
		})
	}

	return &models.IssueThread{
		IssueView:    issue.View(),
		HasUpvoted:   hasUpvoted,
		Comments:     comments,
		CommentCount: len(comments),
		Upvoters:     upvoters,
	}, nil
}

// ListIssues returns the filtered page plus the total match count, which
// ignores pagination so clients can page.
func (s *issueService) ListIssues(filter models.IssueFilter) ([]models.IssueView, int64, error) {
	issues, err := s.issueRepo.ListIssues(filter)
	if err != nil {
		return nil, 0, errs.StorageFailure(err)
	}
	total, err := s.issueRepo.CountIssues(filter)
	if err != nil {
		return nil, 0, errs.StorageFailure(err)
	}

	views := make([]models.IssueView, 0, len(issues))
	for i := range issues {
		views = append(views, issues[i].View())
	}
	return views, total, nil
}
