package repositories

import (
	"context"
	"errors"

	"melodybase/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RecordingRepository struct {
	pool *pgxpool.Pool
}

func NewRecordingRepository(pool *pgxpool.Pool) *RecordingRepository {
	return &RecordingRepository{pool: pool}
}

func (r *RecordingRepository) CreateEngineer(engineer *models.SoundEngineer) error {
	ctx := context.Background()

	engineer.Prepare()

	query := `
		INSERT INTO sound_engineers (id, name, studio_name)
		VALUES ($1, $2, $3)
	`

	_, err := r.pool.Exec(ctx, query, engineer.ID, engineer.Name, engineer.Studio)
	return err
}

func (r *RecordingRepository) FindEngineerByName(name string) (*models.SoundEngineer, error) {
	ctx := context.Background()

	query := `SELECT id, name, studio_name FROM sound_engineers WHERE name = $1`

	var e models.SoundEngineer
	err := r.pool.QueryRow(ctx, query, name).Scan(&e.ID, &e.Name, &e.Studio)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &e, nil
}

func (r *RecordingRepository) ListEngineers() ([]models.SoundEngineer, error) {
	ctx := context.Background()

	query := `SELECT id, name, studio_name FROM sound_engineers ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var engineers []models.SoundEngineer
	for rows.Next() {
		var e models.SoundEngineer
		if err := rows.Scan(&e.ID, &e.Name, &e.Studio); err != nil {
			return nil, err
		}
		engineers = append(engineers, e)
	}

	return engineers, rows.Err()
}

func (r *RecordingRepository) Create(recording *models.Recording) error {
	ctx := context.Background()

	recording.Prepare()

	query := `
		INSERT INTO recordings (id, song_id, engineer_id, recorded_on)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query,
		recording.ID,
		recording.SongID,
		recording.EngineerID,
		recording.RecordedOn,
	)

	return err
}

func (r *RecordingRepository) List() ([]models.Recording, error) {
	ctx := context.Background()

	query := `
		SELECT r.id, r.song_id, r.engineer_id, r.recorded_on,
		       s.title, e.name, e.studio_name
		FROM recordings r
		JOIN songs s ON s.id = r.song_id
		JOIN sound_engineers e ON e.id = r.engineer_id
		ORDER BY r.recorded_on DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recordings []models.Recording
	for rows.Next() {
		var rec models.Recording
		if err := rows.Scan(
			&rec.ID,
			&rec.SongID,
			&rec.EngineerID,
			&rec.RecordedOn,
			&rec.SongTitle,
			&rec.EngineerName,
			&rec.Studio,
		); err != nil {
			return nil, err
		}
		recordings = append(recordings, rec)
	}

	return recordings, rows.Err()
}

func (r *RecordingRepository) ListBySong(songID uuid.UUID) ([]models.Recording, error) {
	ctx := context.Background()

	query := `
		SELECT r.id, r.song_id, r.engineer_id, r.recorded_on,
		       s.title, e.name, e.studio_name
		FROM recordings r
		JOIN songs s ON s.id = r.song_id
		JOIN sound_engineers e ON e.id = r.engineer_id
		WHERE r.song_id = $1
		ORDER BY r.recorded_on
	`

	rows, err := r.pool.Query(ctx, query, songID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recordings []models.Recording
	for rows.Next() {
		var rec models.Recording
		if err := rows.Scan(
			&rec.ID,
			&rec.SongID,
			&rec.EngineerID,
			&rec.RecordedOn,
			&rec.SongTitle,
			&rec.EngineerName,
			&rec.Studio,
		); err != nil {
			return nil, err
		}
		recordings = append(recordings, rec)
	}

	return recordings, rows.Err()
}
