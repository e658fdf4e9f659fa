package db

import (
	"time"

	"github.com/Mohfazam/CIVICOS/models"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// IssueRepository owns issue rows. UpvoteCount is never written here;
// that column moves only inside UpvoteRepository transactions.
type IssueRepository interface {
	CreateIssue(issue *models.Issue) error
	UpdateIssue(id uuid.UUID, updates map[string]interface{}) (*models.Issue, error)
	FindIssueByID(id uuid.UUID) (*models.Issue, error)
	FindIssueWithThread(id uuid.UUID) (*models.Issue, error)
	IssueExists(id uuid.UUID) (bool, error)
	ListIssues(filter models.IssueFilter) ([]models.Issue, error)
	CountIssues(filter models.IssueFilter) (int64, error)
}

type issueRepo struct {
	DB *gorm.DB
}

func NewIssueRepo(db *GormDB) IssueRepository {
	return &issueRepo{db.DB}
}

func (r *issueRepo) CreateIssue(issue *models.Issue) error {
	if err := r.DB.Create(issue).Error; err != nil {
		return errors.Wrap(err, "creating issue")
	}
	return nil
}

// UpdateIssue applies a partial update and returns the fresh row.
// updatedAt always moves, even when the map is otherwise a no-op.
func (r *issueRepo) UpdateIssue(id uuid.UUID, updates map[string]interface{}) (*models.Issue, error) {
	updates["updated_at"] = time.Now()
	if err := r.DB.Model(&models.Issue{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, errors.Wrap(err, "updating issue")
	}
	return r.FindIssueByID(id)
}

func (r *issueRepo) FindIssueByID(id uuid.UUID) (*models.Issue, error) {
	var issue models.Issue
	err := r.DB.
		Preload("Citizen").
		Preload("MLA").
		Preload("Organization").
		Where("id = ?", id).
		First(&issue).Error
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

// FindIssueWithThread loads the issue plus its full thread: comments
// oldest first with all three author relations, and upvotes newest first
// with the upvoting citizen attached.
func (r *issueRepo) FindIssueWithThread(id uuid.UUID) (*models.Issue, error) {
	var issue models.Issue
	err := r.DB.
		Preload("Citizen").
		Preload("MLA").
		Preload("Organization").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.CitizenAuthor").
		Preload("Comments.MLAAuthor").
		Preload("Comments.OrgAuthor").
		Preload("Upvotes", func(db *gorm.DB) *gorm.DB {
			return db.Order("upvotes.created_at DESC")
		}).
		Preload("Upvotes.Citizen").
		Where("id = ?", id).
		First(&issue).Error
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

func (r *issueRepo) IssueExists(id uuid.UUID) (bool, error) {
	var count int64
	if err := r.DB.Model(&models.Issue{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter builds the WHERE clause shared by ListIssues and
// CountIssues. The constituency filter is an OR across the citizen, MLA
// and organization relations, so it needs the joins; the joins stay LEFT
// so issues without an assignee still match the other filters.
func applyFilter(q *gorm.DB, filter models.IssueFilter) *gorm.DB {
	if filter.Status != "" {
		q = q.Where("issues.status = ?", filter.Status)
	}
	if filter.Severity != "" {
		q = q.Where("issues.severity = ?", filter.Severity)
	}
	if filter.Category != "" {
		q = q.Where("issues.category = ?", filter.Category)
	}
	if filter.CitizenID != nil {
		q = q.Where("issues.citizen_id = ?", *filter.CitizenID)
	}
	if filter.MLAID != nil {
		q = q.Where("issues.mla_id = ?", *filter.MLAID)
	}
	if filter.OrganizationID != nil {
		q = q.Where("issues.organization_id = ?", *filter.OrganizationID)
	}
	if filter.Constituency != "" {
		q = q.
			Joins("LEFT JOIN citizens ON citizens.id = issues.citizen_id").
			Joins("LEFT JOIN mlas ON mlas.id = issues.mla_id").
			Joins("LEFT JOIN organizations ON organizations.id = issues.organization_id").
			Where("citizens.constituency = ? OR mlas.constituency = ? OR organizations.constituency = ?",
				filter.Constituency, filter.Constituency, filter.Constituency)
	}
	return q
}

// ListIssues returns matching issues newest first. Limit/offset apply
// only when supplied; without them every matching row comes back.
func (r *issueRepo) ListIssues(filter models.IssueFilter) ([]models.Issue, error) {
	var issues []models.Issue
	q := applyFilter(r.DB.Model(&models.Issue{}), filter).
		Preload("Citizen").
		Preload("MLA").
		Preload("Organization").
		Order("issues.created_at DESC")

	if filter.Limit != nil {
		q = q.Limit(*filter.Limit)
	}
	if filter.Offset != nil {
		q = q.Offset(*filter.Offset)
	}

	if err := q.Find(&issues).Error; err != nil {
		return nil, errors.Wrap(err, "listing issues")
	}
	return issues, nil
}

// CountIssues counts all rows matching the filter, ignoring pagination.
func (r *issueRepo) CountIssues(filter models.IssueFilter) (int64, error) {
	var count int64
	q := applyFilter(r.DB.Model(&models.Issue{}), filter)
	if err := q.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "counting issues")
	}
	return count, nil
}
