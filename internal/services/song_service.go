package services

import (
	"errors"
	"fmt"

	"melodybase/internal/models"
	"melodybase/internal/repositories"

	"github.com/google/uuid"
)

type SongService struct {
	songRepo *repositories.SongRepository
}

func NewSongService(songRepo *repositories.SongRepository) *SongService {
	return &SongService{songRepo: songRepo}
}

func (s *SongService) List() ([]models.Song, error) {
	return s.songRepo.List()
}

func (s *SongService) Get(id uuid.UUID) (*models.Song, error) {
	song, err := s.songRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if song == nil {
		return nil, errors.New("song not found")
	}
	return song, nil
}

// Create registers a song with its languages. Languages arrive as ISO 639-1
// codes and every code must resolve; a song in no language at all is fine.
func (s *SongService) Create(title string, durationSeconds int, languageCodes []string) (*models.Song, error) {
	if title == "" {
		return nil, errors.New("song title is required")
	}
	if durationSeconds <= 0 {
		return nil, errors.New("duration must be positive")
	}

	existing, err := s.songRepo.FindByTitle(title)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("song already exists")
	}

	languageIDs := make([]uuid.UUID, 0, len(languageCodes))
	for _, code := range languageCodes {
		language, err := s.songRepo.FindLanguageByCode(code)
		if err != nil {
			return nil, err
		}
		if language == nil {
			return nil, fmt.Errorf("unknown language code %q", code)
		}
		languageIDs = append(languageIDs, language.ID)
	}

	song := &models.Song{
		Title:           title,
		DurationSeconds: &durationSeconds,
	}
	if err := s.songRepo.Create(song, languageIDs); err != nil {
		return nil, err
	}

	return s.songRepo.FindByID(song.ID)
}

func (s *SongService) ListLanguages() ([]models.Language, error) {
	return s.songRepo.ListLanguages()
}
