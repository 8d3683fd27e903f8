package repositories

import (
	"context"
	"errors"

	"melodybase/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PromotionRepository struct {
	pool *pgxpool.Pool
}

func NewPromotionRepository(pool *pgxpool.Pool) *PromotionRepository {
	return &PromotionRepository{pool: pool}
}

func (r *PromotionRepository) ListPlatforms() ([]models.Platform, error) {
	ctx := context.Background()

	query := `SELECT id, name FROM platforms ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var platforms []models.Platform
	for rows.Next() {
		var p models.Platform
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		platforms = append(platforms, p)
	}

	return platforms, rows.Err()
}

func (r *PromotionRepository) FindPlatformByName(name string) (*models.Platform, error) {
	ctx := context.Background()

	query := `SELECT id, name FROM platforms WHERE name = $1`

	var p models.Platform
	err := r.pool.QueryRow(ctx, query, name).Scan(&p.ID, &p.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &p, nil
}

func (r *PromotionRepository) AddPlatformPromotion(performerID, platformID uuid.UUID) error {
	ctx := context.Background()

	query := `
		INSERT INTO platform_promotions (performer_id, platform_id)
		VALUES ($1, $2)
		ON CONFLICT (performer_id, platform_id) DO NOTHING
	`

	_, err := r.pool.Exec(ctx, query, performerID, platformID)
	return err
}

func (r *PromotionRepository) AddCountryPromotion(performerID, countryID uuid.UUID) error {
	ctx := context.Background()

	query := `
		INSERT INTO country_promotions (performer_id, country_id)
		VALUES ($1, $2)
		ON CONFLICT (performer_id, country_id) DO NOTHING
	`

	_, err := r.pool.Exec(ctx, query, performerID, countryID)
	return err
}

func (r *PromotionRepository) AddPlatformCountry(platformID, countryID uuid.UUID) error {
	ctx := context.Background()

	query := `
		INSERT INTO platform_countries (platform_id, country_id)
		VALUES ($1, $2)
		ON CONFLICT (platform_id, country_id) DO NOTHING
	`

	_, err := r.pool.Exec(ctx, query, platformID, countryID)
	return err
}

// PlatformsFor lists the platform names a performer promotes on.
func (r *PromotionRepository) PlatformsFor(performerID uuid.UUID) ([]string, error) {
	ctx := context.Background()

	query := `
		SELECT pl.name
		FROM platform_promotions pp
		JOIN platforms pl ON pl.id = pp.platform_id
		WHERE pp.performer_id = $1
		ORDER BY pl.name
	`

	return r.queryStrings(ctx, query, performerID)
}

// CountriesFor lists the country codes a performer targets.
func (r *PromotionRepository) CountriesFor(performerID uuid.UUID) ([]string, error) {
	ctx := context.Background()

	query := `
		SELECT c.code
		FROM country_promotions cp
		JOIN countries c ON c.id = cp.country_id
		WHERE cp.performer_id = $1
		ORDER BY c.code
	`

	return r.queryStrings(ctx, query, performerID)
}

// DealsFor reconstructs the performer's effective deals: the three-way join
// of platform promotions, country promotions and platform coverage. The
// ternary fact is never stored, only derived.
func (r *PromotionRepository) DealsFor(performerID uuid.UUID) ([]models.PromoDeal, error) {
	ctx := context.Background()

	query := `
		SELECT pl.name, c.code
		FROM platform_promotions pp
		JOIN country_promotions cp ON cp.performer_id = pp.performer_id
		JOIN platform_countries pc ON pc.platform_id = pp.platform_id AND pc.country_id = cp.country_id
		JOIN platforms pl ON pl.id = pp.platform_id
		JOIN countries c ON c.id = cp.country_id
		WHERE pp.performer_id = $1
		ORDER BY pl.name, c.code
	`

	rows, err := r.pool.Query(ctx, query, performerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deals []models.PromoDeal
	for rows.Next() {
		var d models.PromoDeal
		if err := rows.Scan(&d.PlatformName, &d.CountryCode); err != nil {
			return nil, err
		}
		deals = append(deals, d)
	}

	return deals, rows.Err()
}

func (r *PromotionRepository) queryStrings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	return values, rows.Err()
}
