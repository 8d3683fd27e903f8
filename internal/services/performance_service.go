package services

import (
	"errors"
	"time"

	"melodybase/internal/models"
	"melodybase/internal/repositories"

	"github.com/google/uuid"
)

type PerformanceService struct {
	performanceRepo *repositories.PerformanceRepository
	performerRepo   *repositories.PerformerRepository
	songRepo        *repositories.SongRepository
}

func NewPerformanceService(
	performanceRepo *repositories.PerformanceRepository,
	performerRepo *repositories.PerformerRepository,
	songRepo *repositories.SongRepository,
) *PerformanceService {
	return &PerformanceService{
		performanceRepo: performanceRepo,
		performerRepo:   performerRepo,
		songRepo:        songRepo,
	}
}

func (s *PerformanceService) List() ([]models.Performance, error) {
	return s.performanceRepo.List()
}

// Create records a live performance. The performer must already have the
// song in their repertoire; the service checks so the caller gets a clear
// message, and the composite foreign key backs the rule in the database.
func (s *PerformanceService) Create(performerID, songID uuid.UUID, performedOn time.Time, venue, city string) (*models.Performance, error) {
	if venue == "" || city == "" {
		return nil, errors.New("venue and city are required")
	}

	performer, err := s.performerRepo.FindByID(performerID)
	if err != nil {
		return nil, err
	}
	if performer == nil {
		return nil, errors.New("performer not found")
	}

	song, err := s.songRepo.FindByID(songID)
	if err != nil {
		return nil, err
	}
	if song == nil {
		return nil, errors.New("song not found")
	}

	linked, err := s.performerRepo.IsLinked(performerID, songID)
	if err != nil {
		return nil, err
	}
	if !linked {
		return nil, errors.New("performer does not have this song in their repertoire")
	}

	performance := &models.Performance{
		PerformerID: performerID,
		SongID:      songID,
		PerformedOn: performedOn,
		Venue:       venue,
		City:        city,
	}
	if err := s.performanceRepo.Create(performance); err != nil {
		return nil, err
	}
	performance.PerformerName = performer.Name
	performance.SongTitle = song.Title

	return performance, nil
}
