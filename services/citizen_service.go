package services

import (
	"github.com/Mohfazam/CIVICOS/config"
	"github.com/Mohfazam/CIVICOS/db"
	errs "github.com/Mohfazam/CIVICOS/errors"
	"github.com/Mohfazam/CIVICOS/models"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type CitizenService interface {
	GetDetails(email string) (*models.CitizenDetails, error)
}

type citizenService struct {
	Config      *config.Config
	citizenRepo db.CitizenRepository
}

func NewCitizenService(citizenRepo db.CitizenRepository, conf *config.Config) CitizenService {
	return &citizenService{Config: conf, citizenRepo: citizenRepo}
}

// GetDetails assembles the citizen profile view: most recent linked MLA
// (the repo loads linked MLAs newest first), linked organizations and
// the citizen's issues newest first.
func (s *citizenService) GetDetails(email string) (*models.CitizenDetails, error) {
	if email == "" {
		return nil, errs.MissingField("email")
	}
	if err := validate.Var(email, "email"); err != nil {
		return nil, errs.BadRequest("invalid email address")
	}

	citizen, err := s.citizenRepo.FindCitizenByEmail(email)
	if err != nil {
		return nil, storageErr(err, "Citizen")
	}

	details := &models.CitizenDetails{
		ID:                  citizen.ID,
		Name:                citizen.Name,
		Email:               citizen.Email,
		Constituency:        citizen.Constituency,
		LinkedOrganizations: citizen.LinkedOrganizations,
	}

	if len(citizen.LinkedMLAs) > 0 {
		current := citizen.LinkedMLAs[0]
		details.MLAID = &current.ID
		details.CurrentMLA = &current
	}

	issues := make([]models.IssueView, 0, len(citizen.Issues))
	for i := range citizen.Issues {
		issues = append(issues, citizen.Issues[i].View())
	}
	details.Issues = issues

	return details, nil
}
