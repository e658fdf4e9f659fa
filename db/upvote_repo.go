package db

import (
	"log"

	"github.com/Mohfazam/CIVICOS/models"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// UpvoteRepository owns the upvote rows and the denormalized
// Issue.UpvoteCount column. Both always move together inside one
// transaction; no other code path writes the counter.
type UpvoteRepository interface {
	ToggleUpvote(issueID, citizenID uuid.UUID) (bool, int, error)
	HasUpvoted(issueID, citizenID uuid.UUID) (bool, error)
	CountUpvotes(issueID uuid.UUID) (int64, error)
	ListUpvoters(issueID uuid.UUID) ([]models.Upvote, error)
}

type upvoteRepo struct {
	DB *gorm.DB
}

func NewUpvoteRepo(db *GormDB) UpvoteRepository {
	return &upvoteRepo{db.DB}
}

// ToggleUpvote flips the (issueID, citizenID) upvote. Row present:
// delete it and decrement the counter; absent: insert and increment.
// The counter moves via a SQL expression relative to its stored value,
// never a value read earlier in the request, so concurrent toggles by
// different citizens cannot overwrite each other. Returns the new
// upvoted state and the count read back after commit.
func (r *upvoteRepo) ToggleUpvote(issueID, citizenID uuid.UUID) (bool, int, error) {
	var upvoted bool

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Upvote
		err := tx.Where("issue_id = ? AND citizen_id = ?", issueID, citizenID).First(&existing).Error

		switch {
		case err == nil:
			res := tx.Delete(&models.Upvote{}, "id = ?", existing.ID)
			if res.Error != nil {
				return errors.Wrap(res.Error, "deleting upvote")
			}
			if res.RowsAffected == 0 {
				// A concurrent toggle removed the row after our lookup.
				// Abort so the counter never moves without a matching
				// row deletion in the same transaction.
				return gorm.ErrRecordNotFound
			}
			if err := tx.Model(&models.Issue{}).Where("id = ?", issueID).
				UpdateColumn("upvote_count", gorm.Expr("upvote_count - ?", 1)).Error; err != nil {
				return errors.Wrap(err, "decrementing upvote count")
			}
			upvoted = false
			return nil

		case errors.Is(err, gorm.ErrRecordNotFound):
			upvote := models.Upvote{IssueID: issueID, CitizenID: citizenID}
			if err := tx.Create(&upvote).Error; err != nil {
				return errors.Wrap(err, "creating upvote")
			}
			if err := tx.Model(&models.Issue{}).Where("id = ?", issueID).
				UpdateColumn("upvote_count", gorm.Expr("upvote_count + ?", 1)).Error; err != nil {
				return errors.Wrap(err, "incrementing upvote count")
			}
			upvoted = true
			return nil

		default:
			return errors.Wrap(err, "looking up upvote")
		}
	})
	if err != nil {
		log.Printf("upvote toggle rolled back for issue %s: %v", issueID, err)
		return false, 0, err
	}

	var issue models.Issue
	if err := r.DB.Select("upvote_count").Where("id = ?", issueID).First(&issue).Error; err != nil {
		return upvoted, 0, errors.Wrap(err, "reading upvote count")
	}
	return upvoted, issue.UpvoteCount, nil
}

// HasUpvoted is a point lookup on the unique pair, never a scan.
func (r *upvoteRepo) HasUpvoted(issueID, citizenID uuid.UUID) (bool, error) {
	var count int64
	err := r.DB.Model(&models.Upvote{}).
		Where("issue_id = ? AND citizen_id = ?", issueID, citizenID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *upvoteRepo) CountUpvotes(issueID uuid.UUID) (int64, error) {
	var count int64
	err := r.DB.Model(&models.Upvote{}).Where("issue_id = ?", issueID).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *upvoteRepo) ListUpvoters(issueID uuid.UUID) ([]models.Upvote, error) {
	var upvotes []models.Upvote
	err := r.DB.
		Preload("Citizen").
		Where("issue_id = ?", issueID).
		Order("created_at DESC").
		Find(&upvotes).Error
	if err != nil {
		return nil, errors.Wrap(err, "listing upvoters")
	}
	return upvotes, nil
}
