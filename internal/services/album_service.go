package services

import (
	"errors"
	"time"

	"melodybase/internal/models"
	"melodybase/internal/repositories"

	"github.com/google/uuid"
)

type AlbumService struct {
	albumRepo     *repositories.AlbumRepository
	performerRepo *repositories.PerformerRepository
}

func NewAlbumService(albumRepo *repositories.AlbumRepository, performerRepo *repositories.PerformerRepository) *AlbumService {
	return &AlbumService{
		albumRepo:     albumRepo,
		performerRepo: performerRepo,
	}
}

func (s *AlbumService) List() ([]models.Album, error) {
	return s.albumRepo.List()
}

// Create registers an album. The format arrives as a code; its name and
// medium live only on the formats row, never on the album.
func (s *AlbumService) Create(title string, performerID uuid.UUID, formatCode string, releasedOn *time.Time) (*models.Album, error) {
	if title == "" {
		return nil, errors.New("album title is required")
	}

	performer, err := s.performerRepo.FindByID(performerID)
	if err != nil {
		return nil, err
	}
	if performer == nil {
		return nil, errors.New("performer not found")
	}

	format, err := s.albumRepo.FindFormatByCode(formatCode)
	if err != nil {
		return nil, err
	}
	if format == nil {
		return nil, errors.New("unknown format code")
	}

	album := &models.Album{
		Title:       title,
		PerformerID: performerID,
		FormatID:    format.ID,
		ReleasedOn:  releasedOn,
	}
	if err := s.albumRepo.Create(album); err != nil {
		return nil, err
	}

	return s.albumRepo.FindByID(album.ID)
}

func (s *AlbumService) ListFormats() ([]models.Format, error) {
	return s.albumRepo.ListFormats()
}
