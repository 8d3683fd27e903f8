package repositories

import (
	"context"
	"errors"

	"melodybase/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SongRepository struct {
	pool *pgxpool.Pool
}

func NewSongRepository(pool *pgxpool.Pool) *SongRepository {
	return &SongRepository{pool: pool}
}

// Create inserts the song and its language links in one transaction, so a
// song never exists half-linked.
func (r *SongRepository) Create(song *models.Song, languageIDs []uuid.UUID) error {
	ctx := context.Background()

	song.Prepare()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO songs (id, title, duration_seconds)
		VALUES ($1, $2, $3)
	`
	if _, err := tx.Exec(ctx, query, song.ID, song.Title, song.DurationSeconds); err != nil {
		return err
	}

	linkQuery := `
		INSERT INTO song_languages (song_id, language_id)
		VALUES ($1, $2)
		ON CONFLICT (song_id, language_id) DO NOTHING
	`
	for _, langID := range languageIDs {
		if _, err := tx.Exec(ctx, linkQuery, song.ID, langID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *SongRepository) FindByID(id uuid.UUID) (*models.Song, error) {
	ctx := context.Background()

	query := `SELECT id, title, duration_seconds, created_at FROM songs WHERE id = $1`

	var s models.Song
	err := r.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.Title, &s.DurationSeconds, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if err := r.attachLanguages(ctx, []*models.Song{&s}); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SongRepository) FindByTitle(title string) (*models.Song, error) {
	ctx := context.Background()

	query := `SELECT id, title, duration_seconds, created_at FROM songs WHERE title = $1`

	var s models.Song
	err := r.pool.QueryRow(ctx, query, title).Scan(&s.ID, &s.Title, &s.DurationSeconds, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if err := r.attachLanguages(ctx, []*models.Song{&s}); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SongRepository) List() ([]models.Song, error) {
	ctx := context.Background()

	query := `SELECT id, title, duration_seconds, created_at FROM songs ORDER BY title`

	return r.querySongs(ctx, query)
}

func (r *SongRepository) ListByPerformer(performerID uuid.UUID) ([]models.Song, error) {
	ctx := context.Background()

	query := `
		SELECT s.id, s.title, s.duration_seconds, s.created_at
		FROM songs s
		JOIN performer_songs ps ON ps.song_id = s.id
		WHERE ps.performer_id = $1
		ORDER BY s.title
	`

	return r.querySongs(ctx, query, performerID)
}

func (r *SongRepository) ListLanguages() ([]models.Language, error) {
	ctx := context.Background()

	query := `SELECT id, code, name FROM languages ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var languages []models.Language
	for rows.Next() {
		var l models.Language
		if err := rows.Scan(&l.ID, &l.Code, &l.Name); err != nil {
			return nil, err
		}
		languages = append(languages, l)
	}

	return languages, rows.Err()
}

func (r *SongRepository) FindLanguageByCode(code string) (*models.Language, error) {
	ctx := context.Background()

	query := `SELECT id, code, name FROM languages WHERE code = $1`

	var l models.Language
	err := r.pool.QueryRow(ctx, query, code).Scan(&l.ID, &l.Code, &l.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &l, nil
}

func (r *SongRepository) querySongs(ctx context.Context, query string, args ...any) ([]models.Song, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var songs []models.Song
	for rows.Next() {
		var s models.Song
		if err := rows.Scan(&s.ID, &s.Title, &s.DurationSeconds, &s.CreatedAt); err != nil {
			return nil, err
		}
		songs = append(songs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	ptrs := make([]*models.Song, len(songs))
	for i := range songs {
		ptrs[i] = &songs[i]
	}
	if err := r.attachLanguages(ctx, ptrs); err != nil {
		return nil, err
	}

	return songs, nil
}

// attachLanguages fills Languages for every song in one query.
func (r *SongRepository) attachLanguages(ctx context.Context, songs []*models.Song) error {
	if len(songs) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(songs))
	for i, s := range songs {
		ids[i] = s.ID
	}

	query := `
		SELECT sl.song_id, l.id, l.code, l.name
		FROM song_languages sl
		JOIN languages l ON l.id = sl.language_id
		WHERE sl.song_id = ANY($1)
		ORDER BY l.name
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	bySong := make(map[uuid.UUID][]models.Language)
	for rows.Next() {
		var songID uuid.UUID
		var l models.Language
		if err := rows.Scan(&songID, &l.ID, &l.Code, &l.Name); err != nil {
			return err
		}
		bySong[songID] = append(bySong[songID], l)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, s := range songs {
		s.Languages = bySong[s.ID]
	}
	return nil
}
