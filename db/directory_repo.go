package db

import (
	"github.com/Mohfazam/CIVICOS/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DirectoryRepository covers the read-mostly MLA and organization
// reference entities.
type DirectoryRepository interface {
	FindMLAByID(id uuid.UUID) (*models.MLA, error)
	FindOrganizationByID(id uuid.UUID) (*models.Organization, error)
	MLAExists(id uuid.UUID) (bool, error)
	OrganizationExists(id uuid.UUID) (bool, error)
	ListMLAsByRating(limit int) ([]models.MLA, error)
}

type directoryRepo struct {
	DB *gorm.DB
}

func NewDirectoryRepo(db *GormDB) DirectoryRepository {
	return &directoryRepo{db.DB}
}

func (r *directoryRepo) FindMLAByID(id uuid.UUID) (*models.MLA, error) {
	var mla models.MLA
	if err := r.DB.Where("id = ?", id).First(&mla).Error; err != nil {
		return nil, err
	}
	return &mla, nil
}

func (r *directoryRepo) FindOrganizationByID(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	if err := r.DB.Where("id = ?", id).First(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *directoryRepo) MLAExists(id uuid.UUID) (bool, error) {
	var count int64
	if err := r.DB.Model(&models.MLA{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *directoryRepo) OrganizationExists(id uuid.UUID) (bool, error) {
	var count int64
	if err := r.DB.Model(&models.Organization{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListMLAsByRating orders the leaderboard best first; unrated MLAs sink
// to the bottom.
func (r *directoryRepo) ListMLAsByRating(limit int) ([]models.MLA, error) {
	var mlas []models.MLA
	err := r.DB.
		Order("rating DESC NULLS LAST").
		Order("name ASC").
		Limit(limit).
		Find(&mlas).Error
	if err != nil {
		return nil, err
	}
	return mlas, nil
}
