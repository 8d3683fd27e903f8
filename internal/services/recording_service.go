package services

import (
	"errors"
	"fmt"
	"time"

	"melodybase/internal/models"
	"melodybase/internal/repositories"

	"github.com/google/uuid"
)

type RecordingService struct {
	recordingRepo *repositories.RecordingRepository
	songRepo      *repositories.SongRepository
}

func NewRecordingService(recordingRepo *repositories.RecordingRepository, songRepo *repositories.SongRepository) *RecordingService {
	return &RecordingService{
		recordingRepo: recordingRepo,
		songRepo:      songRepo,
	}
}

func (s *RecordingService) List() ([]models.Recording, error) {
	return s.recordingRepo.List()
}

func (s *RecordingService) ListEngineers() ([]models.SoundEngineer, error) {
	return s.recordingRepo.ListEngineers()
}

// Create records a studio session. Engineers are created on first mention,
// and an engineer works at exactly one studio: naming an existing engineer
// with a different studio is rejected instead of silently forking the fact.
func (s *RecordingService) Create(songID uuid.UUID, engineerName, studioName string, recordedOn time.Time) (*models.Recording, error) {
	if engineerName == "" || studioName == "" {
		return nil, errors.New("engineer name and studio name are required")
	}

	song, err := s.songRepo.FindByID(songID)
	if err != nil {
		return nil, err
	}
	if song == nil {
		return nil, errors.New("song not found")
	}

	engineer, err := s.recordingRepo.FindEngineerByName(engineerName)
	if err != nil {
		return nil, err
	}
	if engineer == nil {
		engineer = &models.SoundEngineer{Name: engineerName, Studio: studioName}
		if err := s.recordingRepo.CreateEngineer(engineer); err != nil {
			return nil, err
		}
	} else if engineer.Studio != studioName {
		return nil, fmt.Errorf("engineer %s works at %s, not %s", engineer.Name, engineer.Studio, studioName)
	}

	recording := &models.Recording{
		SongID:     songID,
		EngineerID: engineer.ID,
		RecordedOn: recordedOn,
	}
	if err := s.recordingRepo.Create(recording); err != nil {
		return nil, err
	}
	recording.SongTitle = song.Title
	recording.EngineerName = engineer.Name
	recording.Studio = engineer.Studio

	return recording, nil
}
