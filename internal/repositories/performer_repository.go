package repositories

import (
	"context"
	"errors"

	"melodybase/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PerformerRepository struct {
	pool *pgxpool.Pool
}

func NewPerformerRepository(pool *pgxpool.Pool) *PerformerRepository {
	return &PerformerRepository{pool: pool}
}

func (r *PerformerRepository) Create(performer *models.Performer) error {
	ctx := context.Background()

	performer.Prepare()

	query := `
		INSERT INTO performers (id, name, country_id, debut_year)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query,
		performer.ID,
		performer.Name,
		performer.CountryID,
		performer.DebutYear,
	)

	return err
}

func (r *PerformerRepository) FindByID(id uuid.UUID) (*models.Performer, error) {
	ctx := context.Background()

	query := `
		SELECT p.id, p.name, p.country_id, p.debut_year, p.created_at, c.name
		FROM performers p
		JOIN countries c ON c.id = p.country_id
		WHERE p.id = $1
	`

	var p models.Performer
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.CountryID,
		&p.DebutYear,
		&p.CreatedAt,
		&p.CountryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &p, nil
}

func (r *PerformerRepository) FindByName(name string) (*models.Performer, error) {
	ctx := context.Background()

	query := `
		SELECT p.id, p.name, p.country_id, p.debut_year, p.created_at, c.name
		FROM performers p
		JOIN countries c ON c.id = p.country_id
		WHERE p.name = $1
	`

	var p models.Performer
	err := r.pool.QueryRow(ctx, query, name).Scan(
		&p.ID,
		&p.Name,
		&p.CountryID,
		&p.DebutYear,
		&p.CreatedAt,
		&p.CountryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &p, nil
}

func (r *PerformerRepository) List() ([]models.Performer, error) {
	ctx := context.Background()

	query := `
		SELECT p.id, p.name, p.country_id, p.debut_year, p.created_at, c.name
		FROM performers p
		JOIN countries c ON c.id = p.country_id
		ORDER BY p.name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var performers []models.Performer
	for rows.Next() {
		var p models.Performer
		if err := rows.Scan(&p.ID, &p.Name, &p.CountryID, &p.DebutYear, &p.CreatedAt, &p.CountryName); err != nil {
			return nil, err
		}
		performers = append(performers, p)
	}

	return performers, rows.Err()
}

// LinkSong adds the performer to the song's repertoire. Linking twice is a
// no-op so callers do not have to check first.
func (r *PerformerRepository) LinkSong(performerID, songID uuid.UUID) error {
	ctx := context.Background()

	query := `
		INSERT INTO performer_songs (performer_id, song_id)
		VALUES ($1, $2)
		ON CONFLICT (performer_id, song_id) DO NOTHING
	`

	_, err := r.pool.Exec(ctx, query, performerID, songID)
	return err
}

// IsLinked reports whether the performer has the song in their repertoire.
func (r *PerformerRepository) IsLinked(performerID, songID uuid.UUID) (bool, error) {
	ctx := context.Background()

	query := `
		SELECT EXISTS(
			SELECT 1 FROM performer_songs
			WHERE performer_id = $1 AND song_id = $2
		)
	`

	var linked bool
	err := r.pool.QueryRow(ctx, query, performerID, songID).Scan(&linked)
	return linked, err
}
