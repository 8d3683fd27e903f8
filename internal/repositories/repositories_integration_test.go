package repositories

import (
	"context"
	"testing"
	"time"

	"melodybase/internal/database"
	"melodybase/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupCatalog(t *testing.T) (*pgxpool.Pool, *gorm.DB) {
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

	gdb, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	return pool, gdb
}

func TestPerformerRepositoryRoundtrip(t *testing.T) {
	pool, _ := setupCatalog(t)

	countries := NewCountryRepository(pool)
	performers := NewPerformerRepository(pool)

	mexico, err := countries.FindByCode("MX")
	require.NoError(t, err)
	require.NotNil(t, mexico)

	debut := 2002
	p := &models.Performer{Name: "Natalia Lafourcade", CountryID: mexico.ID, DebutYear: &debut}
	require.NoError(t, performers.Create(p))

	found, err := performers.FindByName("Natalia Lafourcade")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, p.ID, found.ID)
	assert.Equal(t, "Mexico", found.CountryName)

	missing, err := performers.FindByName("Nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSongRepositoryCreatesLanguageLinks(t *testing.T) {
	pool, _ := setupCatalog(t)

	songs := NewSongRepository(pool)

	es, err := songs.FindLanguageByCode("es")
	require.NoError(t, err)
	require.NotNil(t, es)
	en, err := songs.FindLanguageByCode("en")
	require.NoError(t, err)
	require.NotNil(t, en)

	duration := 201
	s := &models.Song{Title: "Hips Dont Lie", DurationSeconds: &duration}
	require.NoError(t, songs.Create(s, nil))

	// No links yet.
	found, err := songs.FindByTitle("Hips Dont Lie")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Empty(t, found.Languages)

	duration2 := 213
	bilingual := &models.Song{Title: "Beautiful Liar", DurationSeconds: &duration2}
	require.NoError(t, songs.Create(bilingual, []uuid.UUID{es.ID, en.ID}))

	found, err = songs.FindByTitle("Beautiful Liar")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Len(t, found.Languages, 2)
	assert.Equal(t, "English", found.Languages[0].Name)
	assert.Equal(t, "Spanish", found.Languages[1].Name)
}

func TestPerformanceRequiresRepertoireLink(t *testing.T) {
	pool, _ := setupCatalog(t)

	performers := NewPerformerRepository(pool)
	songs := NewSongRepository(pool)
	performances := NewPerformanceRepository(pool)

	rosalia, err := performers.FindByName("Rosalia")
	require.NoError(t, err)
	require.NotNil(t, rosalia)
	song, err := songs.FindByTitle("Ojos Asi")
	require.NoError(t, err)
	require.NotNil(t, song)

	perf := &models.Performance{
		PerformerID: rosalia.ID,
		SongID:      song.ID,
		Venue:       "Palau Sant Jordi",
		City:        "Barcelona",
		PerformedOn: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	// Not linked, so the composite foreign key rejects the row.
	require.Error(t, performances.Create(perf))

	require.NoError(t, performers.LinkSong(rosalia.ID, song.ID))
	linked, err := performers.IsLinked(rosalia.ID, song.ID)
	require.NoError(t, err)
	require.True(t, linked)

	perf.ID = uuid.Nil
	require.NoError(t, performances.Create(perf))
}

func TestPromotionDealsAreDerivedFromThreeTables(t *testing.T) {
	pool, _ := setupCatalog(t)

	performers := NewPerformerRepository(pool)
	promotions := NewPromotionRepository(pool)

	shakira, err := performers.FindByName("Shakira")
	require.NoError(t, err)
	require.NotNil(t, shakira)

	platforms, err := promotions.PlatformsFor(shakira.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple Music", "Spotify"}, platforms)

	countries, err := promotions.CountriesFor(shakira.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"BR", "CO", "US"}, countries)

	deals, err := promotions.DealsFor(shakira.ID)
	require.NoError(t, err)
	// Apple Music does not operate in BR or CO in the seed coverage, so the
	// cross product of platforms and countries is cut down to four deals.
	assert.Equal(t, []models.PromoDeal{
		{PlatformName: "Apple Music", CountryCode: "US"},
		{PlatformName: "Spotify", CountryCode: "BR"},
		{PlatformName: "Spotify", CountryCode: "CO"},
		{PlatformName: "Spotify", CountryCode: "US"},
	}, deals)
}

func TestSchemaRepositoryReadsCompositeForeignKey(t *testing.T) {
	pool, _ := setupCatalog(t)
	ctx := context.Background()

	schemas := NewSchemaRepository(pool)

	tables, err := schemas.GetTables(ctx, "public")
	require.NoError(t, err)
	assert.Contains(t, tables, "performances")
	assert.Contains(t, tables, "performer_songs")

	fks, err := schemas.GetForeignKeys(ctx, "public", "performances")
	require.NoError(t, err)
	require.Len(t, fks, 1)
	assert.Equal(t, "performer_songs", fks[0].ToTable)
	assert.Equal(t, []models.ColumnRef{
		{FromColumn: "performer_id", ToColumn: "performer_id"},
		{FromColumn: "song_id", ToColumn: "song_id"},
	}, fks[0].Columns)

	uniques, err := schemas.GetUniqueConstraints(ctx, "public", "performances")
	require.NoError(t, err)
	require.Len(t, uniques, 1)
	assert.Equal(t, []string{"performer_id", "song_id", "performed_on"}, uniques[0].Columns)
}

func TestWorkbenchRunRepositoryRoundtrip(t *testing.T) {
	_, gdb := setupCatalog(t)

	runs := NewWorkbenchRunRepository(gdb)

	run := &models.WorkbenchRun{
		PointNumber:  3,
		TargetForm:   "3NF",
		Passed:       true,
		ChecksTotal:  6,
		ChecksFailed: 0,
		DurationMs:   42,
		ReportJSON:   `{"point_number":3}`,
	}
	require.NoError(t, runs.Create(run))
	require.NotEqual(t, uuid.Nil, run.ID)

	found, err := runs.FindByID(run.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 3, found.PointNumber)
	assert.True(t, found.Passed)

	listed, err := runs.List(3, 10)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, run.ID, listed[0].ID)

	other, err := runs.List(5, 10)
	require.NoError(t, err)
	assert.Empty(t, other)
}
