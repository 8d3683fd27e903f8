package repositories

import (
	"context"

	"melodybase/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PerformanceRepository struct {
	pool *pgxpool.Pool
}

func NewPerformanceRepository(pool *pgxpool.Pool) *PerformanceRepository {
	return &PerformanceRepository{pool: pool}
}

// Create inserts a performance. The composite foreign key on
// (performer_id, song_id) makes Postgres reject performances of songs the
// performer does not have in their repertoire.
func (r *PerformanceRepository) Create(performance *models.Performance) error {
	ctx := context.Background()

	performance.Prepare()

	query := `
		INSERT INTO performances (id, performer_id, song_id, performed_on, venue, city)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		performance.ID,
		performance.PerformerID,
		performance.SongID,
		performance.PerformedOn,
		performance.Venue,
		performance.City,
	)

	return err
}

func (r *PerformanceRepository) List() ([]models.Performance, error) {
	ctx := context.Background()

	query := `
		SELECT pe.id, pe.performer_id, pe.song_id, pe.performed_on, pe.venue, pe.city,
		       p.name, s.title
		FROM performances pe
		JOIN performers p ON p.id = pe.performer_id
		JOIN songs s ON s.id = pe.song_id
		ORDER BY pe.performed_on DESC
	`

	return r.queryPerformances(ctx, query)
}

func (r *PerformanceRepository) ListByPerformer(performerID uuid.UUID) ([]models.Performance, error) {
	ctx := context.Background()

	query := `
		SELECT pe.id, pe.performer_id, pe.song_id, pe.performed_on, pe.venue, pe.city,
		       p.name, s.title
		FROM performances pe
		JOIN performers p ON p.id = pe.performer_id
		JOIN songs s ON s.id = pe.song_id
		WHERE pe.performer_id = $1
		ORDER BY pe.performed_on DESC
	`

	return r.queryPerformances(ctx, query, performerID)
}

func (r *PerformanceRepository) queryPerformances(ctx context.Context, query string, args ...any) ([]models.Performance, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var performances []models.Performance
	for rows.Next() {
		var p models.Performance
		if err := rows.Scan(
			&p.ID,
			&p.PerformerID,
			&p.SongID,
			&p.PerformedOn,
			&p.Venue,
			&p.City,
			&p.PerformerName,
			&p.SongTitle,
		); err != nil {
			return nil, err
		}
		performances = append(performances, p)
	}

	return performances, rows.Err()
}
