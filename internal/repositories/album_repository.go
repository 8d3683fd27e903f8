package repositories

import (
	"context"
	"errors"

	"melodybase/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AlbumRepository struct {
	pool *pgxpool.Pool
}

func NewAlbumRepository(pool *pgxpool.Pool) *AlbumRepository {
	return &AlbumRepository{pool: pool}
}

func (r *AlbumRepository) Create(album *models.Album) error {
	ctx := context.Background()

	album.Prepare()

	query := `
		INSERT INTO albums (id, title, performer_id, released_on, format_id)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		album.ID,
		album.Title,
		album.PerformerID,
		album.ReleasedOn,
		album.FormatID,
	)

	return err
}

const albumSelect = `
	SELECT a.id, a.title, a.performer_id, a.format_id, a.released_on, a.created_at,
	       p.name, f.code, f.name
	FROM albums a
	JOIN performers p ON p.id = a.performer_id
	JOIN formats f ON f.id = a.format_id
`

func (r *AlbumRepository) List() ([]models.Album, error) {
	ctx := context.Background()

	return r.queryAlbums(ctx, albumSelect+` ORDER BY a.title`)
}

func (r *AlbumRepository) ListByPerformer(performerID uuid.UUID) ([]models.Album, error) {
	ctx := context.Background()

	return r.queryAlbums(ctx, albumSelect+` WHERE a.performer_id = $1 ORDER BY a.released_on`, performerID)
}

func (r *AlbumRepository) FindByID(id uuid.UUID) (*models.Album, error) {
	ctx := context.Background()

	var a models.Album
	err := r.pool.QueryRow(ctx, albumSelect+` WHERE a.id = $1`, id).Scan(
		&a.ID,
		&a.Title,
		&a.PerformerID,
		&a.FormatID,
		&a.ReleasedOn,
		&a.CreatedAt,
		&a.PerformerName,
		&a.FormatCode,
		&a.FormatName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &a, nil
}

func (r *AlbumRepository) queryAlbums(ctx context.Context, query string, args ...any) ([]models.Album, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var albums []models.Album
	for rows.Next() {
		var a models.Album
		if err := rows.Scan(
			&a.ID,
			&a.Title,
			&a.PerformerID,
			&a.FormatID,
			&a.ReleasedOn,
			&a.CreatedAt,
			&a.PerformerName,
			&a.FormatCode,
			&a.FormatName,
		); err != nil {
			return nil, err
		}
		albums = append(albums, a)
	}

	return albums, rows.Err()
}

func (r *AlbumRepository) ListFormats() ([]models.Format, error) {
	ctx := context.Background()

	query := `SELECT id, code, name, medium FROM formats ORDER BY code`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var formats []models.Format
	for rows.Next() {
		var f models.Format
		if err := rows.Scan(&f.ID, &f.Code, &f.Name, &f.Medium); err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}

	return formats, rows.Err()
}

func (r *AlbumRepository) FindFormatByCode(code string) (*models.Format, error) {
	ctx := context.Background()

	query := `SELECT id, code, name, medium FROM formats WHERE code = $1`

	var f models.Format
	err := r.pool.QueryRow(ctx, query, code).Scan(&f.ID, &f.Code, &f.Name, &f.Medium)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &f, nil
}
