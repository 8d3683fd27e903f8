package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RunMigrations creates the catalog schema. Statements are idempotent so the
// server can rerun them on every start.
func RunMigrations(pool *pgxpool.Pool) error {
	ctx := context.Background()

	migrations := []string{
		createCountriesTable,
		createLanguagesTable,
		createFormatsTable,
		createPlatformsTable,
		createPerformersTable,
		createSongsTable,
		createSongLanguagesTable,
		createPerformerSongsTable,
		createPerformancesTable,
		createSoundEngineersTable,
		createRecordingsTable,
		createAlbumsTable,
		createPlatformPromotionsTable,
		createCountryPromotionsTable,
		createPlatformCountriesTable,
		createUsersTable,
		createWorkbenchRunsTable,
	}

	for i, migration := range migrations {
		log.Printf("Running migration %d/%d", i+1, len(migrations))
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Println("All migrations completed successfully")
	return nil
}

const createCountriesTable = `
CREATE TABLE IF NOT EXISTS countries (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  name TEXT NOT NULL UNIQUE,
  code CHAR(2) NOT NULL UNIQUE
);
`

const createLanguagesTable = `
CREATE TABLE IF NOT EXISTS languages (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  code CHAR(2) NOT NULL UNIQUE,
  name TEXT NOT NULL UNIQUE
);
`

const createFormatsTable = `
CREATE TABLE IF NOT EXISTS formats (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  code TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  medium TEXT NOT NULL CHECK (medium IN ('physical', 'digital'))
);
`

const createPlatformsTable = `
CREATE TABLE IF NOT EXISTS platforms (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  name TEXT NOT NULL UNIQUE
);
`

const createPerformersTable = `
CREATE TABLE IF NOT EXISTS performers (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  name TEXT NOT NULL UNIQUE,
  country_id UUID NOT NULL REFERENCES countries(id) ON DELETE RESTRICT,
  debut_year INT CHECK (debut_year >= 1900),
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_performers_country_id ON performers(country_id);
`

const createSongsTable = `
CREATE TABLE IF NOT EXISTS songs (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  title TEXT NOT NULL UNIQUE,
  duration_seconds INT NOT NULL CHECK (duration_seconds > 0),
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

const createSongLanguagesTable = `
CREATE TABLE IF NOT EXISTS song_languages (
  song_id UUID NOT NULL REFERENCES songs(id) ON DELETE CASCADE,
  language_id UUID NOT NULL REFERENCES languages(id) ON DELETE RESTRICT,
  PRIMARY KEY (song_id, language_id)
);
`

const createPerformerSongsTable = `
CREATE TABLE IF NOT EXISTS performer_songs (
  performer_id UUID NOT NULL REFERENCES performers(id) ON DELETE CASCADE,
  song_id UUID NOT NULL REFERENCES songs(id) ON DELETE CASCADE,
  PRIMARY KEY (performer_id, song_id)
);

CREATE INDEX IF NOT EXISTS idx_performer_songs_song_id ON performer_songs(song_id);
`

const createPerformancesTable = `
CREATE TABLE IF NOT EXISTS performances (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  performer_id UUID NOT NULL,
  song_id UUID NOT NULL,
  performed_on DATE NOT NULL,
  venue TEXT NOT NULL,
  city TEXT NOT NULL,
  UNIQUE (performer_id, song_id, performed_on),
  FOREIGN KEY (performer_id, song_id)
    REFERENCES performer_songs(performer_id, song_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_performances_performer_id ON performances(performer_id);
CREATE INDEX IF NOT EXISTS idx_performances_song_id ON performances(song_id);
`

const createSoundEngineersTable = `
CREATE TABLE IF NOT EXISTS sound_engineers (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  name TEXT NOT NULL UNIQUE,
  studio_name TEXT NOT NULL
);
`

const createRecordingsTable = `
CREATE TABLE IF NOT EXISTS recordings (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  song_id UUID NOT NULL REFERENCES songs(id) ON DELETE CASCADE,
  engineer_id UUID NOT NULL REFERENCES sound_engineers(id) ON DELETE RESTRICT,
  recorded_on DATE NOT NULL,
  UNIQUE (song_id, engineer_id, recorded_on)
);

CREATE INDEX IF NOT EXISTS idx_recordings_song_id ON recordings(song_id);
`

const createAlbumsTable = `
CREATE TABLE IF NOT EXISTS albums (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  title TEXT NOT NULL,
  performer_id UUID NOT NULL REFERENCES performers(id) ON DELETE CASCADE,
  released_on DATE,
  format_id UUID NOT NULL REFERENCES formats(id) ON DELETE RESTRICT,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  UNIQUE (title, performer_id)
);

CREATE INDEX IF NOT EXISTS idx_albums_performer_id ON albums(performer_id);
`

const createPlatformPromotionsTable = `
CREATE TABLE IF NOT EXISTS platform_promotions (
  performer_id UUID NOT NULL REFERENCES performers(id) ON DELETE CASCADE,
  platform_id UUID NOT NULL REFERENCES platforms(id) ON DELETE CASCADE,
  PRIMARY KEY (performer_id, platform_id)
);
`

const createCountryPromotionsTable = `
CREATE TABLE IF NOT EXISTS country_promotions (
  performer_id UUID NOT NULL REFERENCES performers(id) ON DELETE CASCADE,
  country_id UUID NOT NULL REFERENCES countries(id) ON DELETE CASCADE,
  PRIMARY KEY (performer_id, country_id)
);
`

const createPlatformCountriesTable = `
CREATE TABLE IF NOT EXISTS platform_countries (
  platform_id UUID NOT NULL REFERENCES platforms(id) ON DELETE CASCADE,
  country_id UUID NOT NULL REFERENCES countries(id) ON DELETE CASCADE,
  PRIMARY KEY (platform_id, country_id)
);
`

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL DEFAULT 'user',
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  last_login_at TIMESTAMPTZ
);

CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);
`

const createWorkbenchRunsTable = `
CREATE TABLE IF NOT EXISTS workbench_runs (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  point_number INT NOT NULL,
  target_form TEXT NOT NULL,
  passed BOOLEAN NOT NULL,
  checks_total INT NOT NULL,
  checks_failed INT NOT NULL,
  duration_ms BIGINT NOT NULL,
  report_json TEXT NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_workbench_runs_point_number ON workbench_runs(point_number);
CREATE INDEX IF NOT EXISTS idx_workbench_runs_created_at ON workbench_runs(created_at);
`
