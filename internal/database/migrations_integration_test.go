package database

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

func setupTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()
	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("melodybase_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestMigrationsAndSeedsAreIdempotent(t *testing.T) {
	pool := setupTestPool(t)
	ctx := context.Background()

	// Two full cycles: the second must change nothing.
	for range [2]struct{}{} {
		require.NoError(t, RunMigrations(pool))
		require.NoError(t, RunSeeds(pool))
	}

	for table, want := range SeedCounts() {
		var got int
		err := pool.QueryRow(ctx, "SELECT count(*) FROM "+table).Scan(&got)
		require.NoError(t, err, "counting %s", table)
		assert.Equalf(t, want, got, "table %s", table)
	}
}

func TestPerformancesRequireRepertoireLink(t *testing.T) {
	pool := setupTestPool(t)
	ctx := context.Background()

	require.NoError(t, RunMigrations(pool))
	require.NoError(t, RunSeeds(pool))

	// Rosalia has no linked songs, so a performance row for her must be
	// rejected by the composite foreign key into performer_songs.
	_, err := pool.Exec(ctx, `
		INSERT INTO performances (performer_id, song_id, performed_on, venue, city)
		SELECT p.id, s.id, DATE '2024-06-01', 'Palau Sant Jordi', 'Barcelona'
		FROM performers p, songs s
		WHERE p.name = 'Rosalia' AND s.title = 'Ojos Asi'`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "performances")
}

func TestFormatMediumIsConstrained(t *testing.T) {
	pool := setupTestPool(t)
	ctx := context.Background()

	require.NoError(t, RunMigrations(pool))

	_, err := pool.Exec(ctx,
		`INSERT INTO formats (code, name, medium) VALUES ('TAPE', 'Cassette', 'analog')`)
	require.Error(t, err)

	_, err = pool.Exec(ctx,
		`INSERT INTO formats (code, name, medium) VALUES ('TAPE', 'Cassette', 'physical')`)
	require.NoError(t, err)
}
