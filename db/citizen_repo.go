package db

import (
	"github.com/Mohfazam/CIVICOS/models"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CitizenRepository resolves citizens and assembles the details view.
type CitizenRepository interface {
	FindCitizenByID(id uuid.UUID) (*models.Citizen, error)
	FindCitizenByEmail(email string) (*models.Citizen, error)
	CitizenExists(id uuid.UUID) (bool, error)
}

type citizenRepo struct {
	DB *gorm.DB
}

func NewCitizenRepo(db *GormDB) CitizenRepository {
	return &citizenRepo{db.DB}
}

func (r *citizenRepo) FindCitizenByID(id uuid.UUID) (*models.Citizen, error) {
	var citizen models.Citizen
	if err := r.DB.Where("id = ?", id).First(&citizen).Error; err != nil {
		return nil, err
	}
	return &citizen, nil
}

// FindCitizenByEmail loads the full details graph: linked MLAs newest
// first, linked organizations, and the citizen's issues newest first
// with their mla/organization rows attached.
func (r *citizenRepo) FindCitizenByEmail(email string) (*models.Citizen, error) {
	var citizen models.Citizen
	err := r.DB.
		Preload("LinkedMLAs", func(db *gorm.DB) *gorm.DB {
			return db.Order("mlas.created_at DESC")
		}).
		Preload("LinkedOrganizations").
		Preload("Issues", func(db *gorm.DB) *gorm.DB {
			return db.Order("issues.created_at DESC")
		}).
		Preload("Issues.MLA").
		Preload("Issues.Organization").
		Where("email = ?", email).
		First(&citizen).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "fetching citizen by email")
	}
	return &citizen, nil
}

func (r *citizenRepo) CitizenExists(id uuid.UUID) (bool, error) {
	var count int64
	if err := r.DB.Model(&models.Citizen{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
