package services

import (
	"github.com/Mohfazam/CIVICOS/config"
	"github.com/Mohfazam/CIVICOS/db"
	errs "github.com/Mohfazam/CIVICOS/errors"
	"github.com/Mohfazam/CIVICOS/models"
	"github.com/google/uuid"
)

// ThreadService owns the comment and upvote operations of an issue
// thread.
type ThreadService interface {
	ListComments(issueID uuid.UUID) ([]models.CommentView, error)
	AddComment(issueID uuid.UUID, req *models.CommentRequest) (*models.CommentView, error)
	DeleteComment(commentID uuid.UUID, req *models.DeleteCommentRequest) error
	ToggleUpvote(issueID uuid.UUID, citizenID uuid.UUID) (bool, int, error)
	UpvoteStatus(issueID uuid.UUID, citizenID *uuid.UUID) (*models.UpvoteStatus, error)
	ListUpvoters(issueID uuid.UUID) ([]models.UpvoterView, error)
}

type threadService struct {
	Config        *config.Config
	issueRepo     db.IssueRepository
	commentRepo   db.CommentRepository
	upvoteRepo    db.UpvoteRepository
	citizenRepo   db.CitizenRepository
	directoryRepo db.DirectoryRepository
}

func NewThreadService(issueRepo db.IssueRepository, commentRepo db.CommentRepository, upvoteRepo db.UpvoteRepository, citizenRepo db.CitizenRepository, directoryRepo db.DirectoryRepository, conf *config.Config) ThreadService {
	return &threadService{
		Config:        conf,
		issueRepo:     issueRepo,
		commentRepo:   commentRepo,
		upvoteRepo:    upvoteRepo,
		citizenRepo:   citizenRepo,
		directoryRepo: directoryRepo,
	}
}

func (s *threadService) ListComments(issueID uuid.UUID) ([]models.CommentView, error) {
	comments, err := s.commentRepo.ListCommentsByIssue(issueID)
	if err != nil {
		return nil, errs.StorageFailure(err)
	}
	views := make([]models.CommentView, 0, len(comments))
	for i := range comments {
		views = append(views, comments[i].View())
	}
	return views, nil
}

// AddComment validates the issue, the author type and the author's
// existence before writing, then sets exactly the author foreign key
// matching the declared type. The other two stay NULL.
func (s *threadService) AddComment(issueID uuid.UUID, req *models.CommentRequest) (*models.CommentView, error) {
	switch {
	case req.Content == "":
		return nil, errs.MissingField("content")
	case req.AuthorType == "":
		return nil, errs.MissingField("authorType")
	case req.AuthorID == "":
		return nil, errs.MissingField("authorId")
	}

	authorType, err := models.ParseAuthorType(req.AuthorType)
	if err != nil {
		return nil, errs.InvalidAuthorType(req.AuthorType)
	}

	exists, err := s.issueRepo.IssueExists(issueID)
	if err != nil {
		return nil, errs.StorageFailure(err)
	}
	if !exists {
		return nil, errs.NotFound("Issue")
	}

	authorID, err := uuid.Parse(req.AuthorID)
	if err != nil {
		return nil, errs.NotFound(authorEntity(authorType))
	}
	if err := s.checkAuthorExists(authorType, authorID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content:    req.Content,
		IssueID:    issueID,
		AuthorType: authorType,
		AuthorID:   authorID,
	}
	switch authorType {
	case models.AuthorCitizen:
		comment.CitizenAuthorID = &authorID
	case models.AuthorMLA:
		comment.MLAAuthorID = &authorID
	case models.AuthorOrganization:
		comment.OrgAuthorID = &authorID
	}

	created, err := s.commentRepo.CreateComment(comment)
	if err != nil {
		return nil, errs.StorageFailure(err)
	}
	view := created.View()
	return &view, nil
}

// DeleteComment removes a comment only when the caller-declared
// (authorType, authorId) pair equals the stored one. The pair is
// asserted, not authenticated; there is no session layer in the system,
// so anyone holding the original identifiers can delete.
func (s *threadService) DeleteComment(commentID uuid.UUID, req *models.DeleteCommentRequest) error {
	if req.AuthorType == "" {
		return errs.MissingField("authorType")
	}
	if req.AuthorID == "" {
		return errs.MissingField("authorId")
	}

	comment, err := s.commentRepo.FindCommentByID(commentID)
	if err != nil {
		return storageErr(err, "Comment")
	}

	authorID, parseErr := uuid.Parse(req.AuthorID)
	if parseErr != nil || comment.AuthorType != models.AuthorType(req.AuthorType) || comment.AuthorID != authorID {
		return errs.Forbidden("you can only delete your own comments")
	}

	if err := s.commentRepo.DeleteComment(commentID); err != nil {
		return errs.StorageFailure(err)
	}
	return nil
}

// ToggleUpvote validates both ends of the pair and delegates the
// row+counter flip to the repository, which runs it in one transaction.
func (s *threadService) ToggleUpvote(issueID uuid.UUID, citizenID uuid.UUID) (bool, int, error) {
	exists, err := s.issueRepo.IssueExists(issueID)
	if err != nil {
		return false, 0, errs.StorageFailure(err)
	}
	if !exists {
		return false, 0, errs.NotFound("Issue")
	}

	exists, err = s.citizenRepo.CitizenExists(citizenID)
	if err != nil {
		return false, 0, errs.StorageFailure(err)
	}
	if !exists {
		return false, 0, errs.NotFound("Citizen")
	}

	upvoted, count, err := s.upvoteRepo.ToggleUpvote(issueID, citizenID)
	if err != nil {
		return false, 0, errs.StorageFailure(err)
	}
	return upvoted, count, nil
}

func (s *threadService) UpvoteStatus(issueID uuid.UUID, citizenID *uuid.UUID) (*models.UpvoteStatus, error) {
	count, err := s.upvoteRepo.CountUpvotes(issueID)
	if err != nil {
		return nil, errs.StorageFailure(err)
	}

	hasUpvoted := false
	if citizenID != nil {
		hasUpvoted, err = s.upvoteRepo.HasUpvoted(issueID, *citizenID)
		if err != nil {
			return nil, errs.StorageFailure(err)
		}
	}

	return &models.UpvoteStatus{UpvoteCount: int(count), HasUpvoted: hasUpvoted}, nil
}

func (s *threadService) ListUpvoters(issueID uuid.UUID) ([]models.UpvoterView, error) {
	upvotes, err := s.upvoteRepo.ListUpvoters(issueID)
	if err != nil {
		return nil, errs.StorageFailure(err)
	}
	views := make([]models.UpvoterView, 0, len(upvotes))
	for i := range upvotes {
		if upvotes[i].Citizen == nil {
			continue
		}
		views = append(views, models.UpvoterView{
			Citizen:   upvotes[i].Citizen.View(),
			UpvotedAt: upvotes[i].CreatedAt,
		})
	}
	return views, nil
}

func (s *threadService) checkAuthorExists(authorType models.AuthorType, authorID uuid.UUID) error {
	var exists bool
	var err error
	switch authorType {
	case models.AuthorCitizen:
		exists, err = s.citizenRepo.CitizenExists(authorID)
	case models.AuthorMLA:
		exists, err = s.directoryRepo.MLAExists(authorID)
	case models.AuthorOrganization:
		exists, err = s.directoryRepo.OrganizationExists(authorID)
	}
	if err != nil {
		return errs.StorageFailure(err)
	}
	if !exists {
		return errs.NotFound(authorEntity(authorType))
	}
	return nil
}

func authorEntity(t models.AuthorType) string {
	switch t {
	case models.AuthorMLA:
		return "MLA"
	case models.AuthorOrganization:
		return "Organization"
	default:
		return "Citizen"
	}
}
