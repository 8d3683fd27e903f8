package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"melodybase/internal/database"
	"melodybase/internal/models"
	"melodybase/internal/repositories"
	"melodybase/internal/utils"
	"melodybase/internal/workbench"
)

type serviceDeps struct {
	pool   *pgxpool.Pool
	sqlDB  *sql.DB
	gormDB *gorm.DB
}

func setupServiceDeps(t *testing.T) serviceDeps {
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

	require.NoError(t, database.RunMigrations(pool))
	require.NoError(t, database.RunSeeds(pool))

	sqlDB, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	return serviceDeps{pool: pool, sqlDB: sqlDB, gormDB: gormDB}
}

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()
	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	endpoint, err := ctr.Endpoint(ctx, "")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())

	return client
}

func TestSchemaServiceDiagramAgainstLiveCatalog(t *testing.T) {
	deps := setupServiceDeps(t)
	rdb := setupRedis(t)
	ctx := context.Background()

	cache := repositories.NewRedisRepository(rdb)
	svc := NewSchemaService(repositories.NewSchemaRepository(deps.pool), cache)

	diagram, err := svc.Diagram(ctx)
	require.NoError(t, err)

	assert.Contains(t, diagram, "erDiagram")
	assert.Contains(t, diagram, "COUNTRIES ||--o{ PERFORMERS : \"\"")
	assert.Contains(t, diagram, "PERFORMERS }o--o{ SONGS : \"\"",
		"performer_songs collapses into a many-to-many edge")
	assert.Contains(t, diagram, "SONGS }o--o{ LANGUAGES : \"\"")
	assert.Contains(t, diagram, "PERFORMERS }o--o{ PLATFORMS : \"\"")
	assert.Contains(t, diagram, "PERFORMER_SONGS ||--o{ PERFORMANCES : \"\"",
		"composite foreign key renders as a single edge")
	assert.Contains(t, diagram, "PERFORMER_SONGS {",
		"junction tables still get an entity block")

	cached, err := cache.CacheGet(ctx, diagramCacheKey)
	require.NoError(t, err)
	assert.Equal(t, diagram, cached)

	again, err := svc.Diagram(ctx)
	require.NoError(t, err)
	assert.Equal(t, diagram, again)
}

func TestVerifyServiceReportsCleanCatalog(t *testing.T) {
	deps := setupServiceDeps(t)
	rdb := setupRedis(t)
	ctx := context.Background()

	svc := NewVerifyService(deps.pool,
		repositories.NewSchemaRepository(deps.pool),
		repositories.NewRedisRepository(rdb))

	report, err := svc.Run(ctx, false)
	require.NoError(t, err)
	assert.True(t, report.Passed)
	assert.NotEmpty(t, report.Checks)
	for _, check := range report.Checks {
		assert.Truef(t, check.Passed, "check %s: %d violations", check.Name, check.Violations)
		assert.Empty(t, check.Error)
	}

	// Knock the catalog below a seed floor.
	_, err = deps.pool.Exec(ctx,
		`DELETE FROM platform_countries
		 WHERE platform_id = (SELECT id FROM platforms WHERE name = 'Deezer')`)
	require.NoError(t, err)

	cached, err := svc.Run(ctx, false)
	require.NoError(t, err)
	assert.True(t, cached.Passed, "stale cached report is served until refresh")

	fresh, err := svc.Run(ctx, true)
	require.NoError(t, err)
	assert.False(t, fresh.Passed)

	var floorCheck *VerifyCheck
	for i := range fresh.Checks {
		if fresh.Checks[i].Name == "seed_floor_platform_countries" {
			floorCheck = &fresh.Checks[i]
		}
	}
	require.NotNil(t, floorCheck)
	assert.False(t, floorCheck.Passed)
	assert.Equal(t, int64(1), floorCheck.Violations)
}

func TestWorkbenchServiceRunPersistsHistory(t *testing.T) {
	deps := setupServiceDeps(t)
	ctx := context.Background()

	svc := NewWorkbenchService(
		workbench.NewRunner(deps.sqlDB),
		repositories.NewWorkbenchRunRepository(deps.gormDB),
	)

	report, err := svc.RunPoint(ctx, 1)
	require.NoError(t, err)
	assert.True(t, report.Passed)

	runs, err := svc.RunHistory(1, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 1, runs[0].PointNumber)
	assert.Equal(t, "1NF", runs[0].TargetForm)
	assert.True(t, runs[0].Passed)
	assert.Equal(t, len(report.Checks), runs[0].ChecksTotal)
	assert.Equal(t, 0, runs[0].ChecksFailed)

	run, stored, err := svc.RunDetail(runs[0].ID)
	require.NoError(t, err)
	require.NotNil(t, run)
	require.NotNil(t, stored)
	assert.Equal(t, report.PointNumber, stored.PointNumber)
	assert.Equal(t, report.Schema, stored.Schema)
	assert.Len(t, stored.Checks, len(report.Checks))

	_, err = svc.RunPoint(ctx, 99)
	assert.Error(t, err)
}

func TestAuthServiceSessionLifecycle(t *testing.T) {
	deps := setupServiceDeps(t)
	rdb := setupRedis(t)
	ctx := context.Background()

	utils.AccessTokenSecret = []byte("integration-access-secret")
	utils.RefreshTokenSecret = []byte("integration-refresh-secret")

	svc := NewAuthService(
		repositories.NewUserRepository(deps.pool),
		repositories.NewRedisRepository(rdb),
	)

	first := &models.User{Email: "Admin@MelodyBase.dev", Password: "s3cret-passw0rd"}
	access, refresh, err := svc.Register(ctx, first)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, "admin", first.Role, "the first account becomes admin")

	second := &models.User{Email: "listener@example.com", Password: "another-pass"}
	_, _, err = svc.Register(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, "user", second.Role)

	_, _, err = svc.Register(ctx, &models.User{Email: "listener@example.com", Password: "x"})
	require.EqualError(t, err, "user already exists")

	_, _, err = svc.Login(ctx, "admin@melodybase.dev", "wrong")
	require.EqualError(t, err, "invalid email or password")

	access, refresh, err = svc.Login(ctx, "admin@melodybase.dev", "s3cret-passw0rd")
	require.NoError(t, err)

	newAccess, newRefresh, err := svc.Refresh(ctx, refresh)
	require.NoError(t, err)
	assert.NotEqual(t, access, newAccess)

	// Rotation kills the old pair.
	_, _, err = svc.Refresh(ctx, refresh)
	require.EqualError(t, err, "session has been revoked")

	claims, err := utils.VerifyJWT(newRefresh, utils.RefreshTokenSecret)
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx, claims.ID))

	_, _, err = svc.Refresh(ctx, newRefresh)
	require.EqualError(t, err, "session has been revoked")
}
