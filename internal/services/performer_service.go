package services

import (
	"errors"

	"melodybase/internal/models"
	"melodybase/internal/repositories"

	"github.com/google/uuid"
)

type PerformerService struct {
	performerRepo *repositories.PerformerRepository
	countryRepo   *repositories.CountryRepository
	songRepo      *repositories.SongRepository
	albumRepo     *repositories.AlbumRepository
	promotionRepo *repositories.PromotionRepository
}

func NewPerformerService(
	performerRepo *repositories.PerformerRepository,
	countryRepo *repositories.CountryRepository,
	songRepo *repositories.SongRepository,
	albumRepo *repositories.AlbumRepository,
	promotionRepo *repositories.PromotionRepository,
) *PerformerService {
	return &PerformerService{
		performerRepo: performerRepo,
		countryRepo:   countryRepo,
		songRepo:      songRepo,
		albumRepo:     albumRepo,
		promotionRepo: promotionRepo,
	}
}

func (s *PerformerService) List() ([]models.Performer, error) {
	return s.performerRepo.List()
}

// Create registers a performer. The country arrives as an ISO code and is
// resolved to its lookup row, never stored as text on the performer.
func (s *PerformerService) Create(name, countryCode string, debutYear *int) (*models.Performer, error) {
	if name == "" {
		return nil, errors.New("performer name is required")
	}

	existing, err := s.performerRepo.FindByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("performer already exists")
	}

	country, err := s.countryRepo.FindByCode(countryCode)
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, errors.New("unknown country code")
	}

	performer := &models.Performer{
		Name:      name,
		CountryID: country.ID,
		DebutYear: debutYear,
	}
	if err := s.performerRepo.Create(performer); err != nil {
		return nil, err
	}
	performer.CountryName = country.Name

	return performer, nil
}

// Discography assembles the performer with their songs and albums.
func (s *PerformerService) Discography(id uuid.UUID) (*models.Discography, error) {
	performer, err := s.performerRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if performer == nil {
		return nil, errors.New("performer not found")
	}

	songs, err := s.songRepo.ListByPerformer(id)
	if err != nil {
		return nil, err
	}

	albums, err := s.albumRepo.ListByPerformer(id)
	if err != nil {
		return nil, err
	}

	return &models.Discography{
		Performer: *performer,
		Songs:     songs,
		Albums:    albums,
	}, nil
}

// AddSong links an existing song to the performer's repertoire.
func (s *PerformerService) AddSong(performerID, songID uuid.UUID) error {
	performer, err := s.performerRepo.FindByID(performerID)
	if err != nil {
		return err
	}
	if performer == nil {
		return errors.New("performer not found")
	}

	song, err := s.songRepo.FindByID(songID)
	if err != nil {
		return err
	}
	if song == nil {
		return errors.New("song not found")
	}

	return s.performerRepo.LinkSong(performerID, songID)
}

// Promotions builds the performer's promotion profile. Platforms and
// countries are the stored facts; deals are derived by the three-way join.
func (s *PerformerService) Promotions(id uuid.UUID) (*models.PromotionProfile, error) {
	performer, err := s.performerRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if performer == nil {
		return nil, errors.New("performer not found")
	}

	platforms, err := s.promotionRepo.PlatformsFor(id)
	if err != nil {
		return nil, err
	}
	countries, err := s.promotionRepo.CountriesFor(id)
	if err != nil {
		return nil, err
	}
	deals, err := s.promotionRepo.DealsFor(id)
	if err != nil {
		return nil, err
	}

	return &models.PromotionProfile{
		PerformerID:   performer.ID,
		PerformerName: performer.Name,
		Platforms:     platforms,
		Countries:     countries,
		Deals:         deals,
	}, nil
}

// AddPlatformPromotion records that the performer promotes on a platform.
func (s *PerformerService) AddPlatformPromotion(performerID uuid.UUID, platformName string) error {
	performer, err := s.performerRepo.FindByID(performerID)
	if err != nil {
		return err
	}
	if performer == nil {
		return errors.New("performer not found")
	}

	platform, err := s.promotionRepo.FindPlatformByName(platformName)
	if err != nil {
		return err
	}
	if platform == nil {
		return errors.New("unknown platform")
	}

	return s.promotionRepo.AddPlatformPromotion(performerID, platform.ID)
}

// AddCountryPromotion records that the performer targets a country.
func (s *PerformerService) AddCountryPromotion(performerID uuid.UUID, countryCode string) error {
	performer, err := s.performerRepo.FindByID(performerID)
	if err != nil {
		return err
	}
	if performer == nil {
		return errors.New("performer not found")
	}

	country, err := s.countryRepo.FindByCode(countryCode)
	if err != nil {
		return err
	}
	if country == nil {
		return errors.New("unknown country code")
	}

	return s.promotionRepo.AddCountryPromotion(performerID, country.ID)
}
