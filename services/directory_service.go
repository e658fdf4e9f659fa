package services

import (
	"github.com/Mohfazam/CIVICOS/config"
	"github.com/Mohfazam/CIVICOS/db"
	errs "github.com/Mohfazam/CIVICOS/errors"
	"github.com/Mohfazam/CIVICOS/models"
)

type DirectoryService interface {
	MLALeaderboard(limit int) ([]models.MLAView, error)
}

type directoryService struct {
	Config        *config.Config
	directoryRepo db.DirectoryRepository
}

func NewDirectoryService(directoryRepo db.DirectoryRepository, conf *config.Config) DirectoryService {
	return &directoryService{Config: conf, directoryRepo: directoryRepo}
}

// MLALeaderboard ranks MLAs by rating, best first. Unrated MLAs sort
// last.
func (s *directoryService) MLALeaderboard(limit int) ([]models.MLAView, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	mlas, err := s.directoryRepo.ListMLAsByRating(limit)
	if err != nil {
		return nil, errs.StorageFailure(err)
	}
	views := make([]models.MLAView, 0, len(mlas))
	for i := range mlas {
		views = append(views, mlas[i].View())
	}
	return views, nil
}
