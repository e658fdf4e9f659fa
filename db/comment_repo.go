package db

import (
	"github.com/Mohfazam/CIVICOS/models"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type CommentRepository interface {
	CreateComment(comment *models.Comment) (*models.Comment, error)
	FindCommentByID(id uuid.UUID) (*models.Comment, error)
	DeleteComment(id uuid.UUID) error
	ListCommentsByIssue(issueID uuid.UUID) ([]models.Comment, error)
}

type commentRepo struct {
	DB *gorm.DB
}

func NewCommentRepo(db *GormDB) CommentRepository {
	return &commentRepo{db.DB}
}

// CreateComment inserts the comment and reloads it with the author
// relation populated so the caller can project the uniform author view.
func (r *commentRepo) CreateComment(comment *models.Comment) (*models.Comment, error) {
	if err := r.DB.Create(comment).Error; err != nil {
		return nil, errors.Wrap(err, "creating comment")
	}

	var created models.Comment
	err := r.DB.
		Preload("CitizenAuthor").
		Preload("MLAAuthor").
		Preload("OrgAuthor").
		Where("id = ?", comment.ID).
		First(&created).Error
	if err != nil {
		return nil, errors.Wrap(err, "reloading created comment")
	}
	return &created, nil
}

func (r *commentRepo) FindCommentByID(id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	if err := r.DB.Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepo) DeleteComment(id uuid.UUID) error {
	if err := r.DB.Delete(&models.Comment{}, "id = ?", id).Error; err != nil {
		return errors.Wrap(err, "deleting comment")
	}
	return nil
}

// ListCommentsByIssue returns the thread oldest first with all three
// author relations loaded.
func (r *commentRepo) ListCommentsByIssue(issueID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.DB.
		Preload("CitizenAuthor").
		Preload("MLAAuthor").
		Preload("OrgAuthor").
		Where("issue_id = ?", issueID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, errors.Wrap(err, "listing comments")
	}
	return comments, nil
}
