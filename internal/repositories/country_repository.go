package repositories

import (
	"context"
	"errors"

	"melodybase/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CountryRepository struct {
	pool *pgxpool.Pool
}

func NewCountryRepository(pool *pgxpool.Pool) *CountryRepository {
	return &CountryRepository{pool: pool}
}

func (r *CountryRepository) List() ([]models.Country, error) {
	ctx := context.Background()

	query := `SELECT id, code, name FROM countries ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var countries []models.Country
	for rows.Next() {
		var c models.Country
		if err := rows.Scan(&c.ID, &c.Code, &c.Name); err != nil {
			return nil, err
		}
		countries = append(countries, c)
	}

	return countries, rows.Err()
}

func (r *CountryRepository) FindByID(id uuid.UUID) (*models.Country, error) {
	ctx := context.Background()

	query := `SELECT id, code, name FROM countries WHERE id = $1`

	var c models.Country
	err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Code, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &c, nil
}

func (r *CountryRepository) FindByCode(code string) (*models.Country, error) {
	ctx := context.Background()

	query := `SELECT id, code, name FROM countries WHERE code = $1`

	var c models.Country
	err := r.pool.QueryRow(ctx, query, code).Scan(&c.ID, &c.Code, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &c, nil
}
