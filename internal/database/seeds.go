package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RunSeeds loads the reference catalog. Every statement upserts by natural
// key with ON CONFLICT DO NOTHING, so reruns leave existing rows alone and
// user-created rows are never touched.
func RunSeeds(pool *pgxpool.Pool) error {
	ctx := context.Background()

	seeds := []string{
		seedCountries,
		seedLanguages,
		seedFormats,
		seedPlatforms,
		seedPerformers,
		seedSongs,
		seedSongLanguages,
		seedPerformerSongs,
		seedPerformances,
		seedSoundEngineers,
		seedRecordings,
		seedAlbums,
		seedPlatformPromotions,
		seedCountryPromotions,
		seedPlatformCountries,
	}

	for i, seed := range seeds {
		log.Printf("Running seed %d/%d", i+1, len(seeds))
		if _, err := pool.Exec(ctx, seed); err != nil {
			return fmt.Errorf("seed %d failed: %w", i+1, err)
		}
	}

	log.Println("All seeds completed successfully")
	return nil
}

// SeedCounts reports how many rows each seed statement guarantees. The
// verification suite treats these as floors: the API may add rows on top,
// but a table below its floor means seeding is broken.
func SeedCounts() map[string]int {
	return map[string]int{
		"countries":           5,
		"languages":           4,
		"formats":             4,
		"platforms":           4,
		"performers":          4,
		"songs":               6,
		"song_languages":      7,
		"performer_songs":     6,
		"performances":        4,
		"sound_engineers":     3,
		"recordings":          3,
		"albums":              5,
		"platform_promotions": 5,
		"country_promotions":  6,
		"platform_countries":  12,
	}
}

const seedCountries = `
INSERT INTO countries (name, code) VALUES
  ('Colombia', 'CO'),
  ('Brazil', 'BR'),
  ('Mexico', 'MX'),
  ('United States', 'US'),
  ('Spain', 'ES')
ON CONFLICT (name) DO NOTHING;
`

const seedLanguages = `
INSERT INTO languages (code, name) VALUES
  ('es', 'Spanish'),
  ('en', 'English'),
  ('pt', 'Portuguese'),
  ('ca', 'Catalan')
ON CONFLICT (code) DO NOTHING;
`

const seedFormats = `
INSERT INTO formats (code, name, medium) VALUES
  ('CD', 'Compact Disc', 'physical'),
  ('VIN', 'Vinyl', 'physical'),
  ('STR', 'Streaming', 'digital'),
  ('DL', 'Digital Download', 'digital')
ON CONFLICT (code) DO NOTHING;
`

const seedPlatforms = `
INSERT INTO platforms (name) VALUES
  ('Spotify'),
  ('Apple Music'),
  ('YouTube Music'),
  ('Deezer')
ON CONFLICT (name) DO NOTHING;
`

const seedPerformers = `
INSERT INTO performers (name, country_id, debut_year)
SELECT v.name, c.id, v.debut_year
FROM (VALUES
  ('Shakira', 'CO', 1991),
  ('Juanes', 'CO', 2000),
  ('Caetano Veloso', 'BR', 1965),
  ('Rosalia', 'ES', 2017)
) AS v(name, country_code, debut_year)
JOIN countries c ON c.code = v.country_code
ON CONFLICT (name) DO NOTHING;
`

const seedSongs = `
INSERT INTO songs (title, duration_seconds) VALUES
  ('Ojos Asi', 247),
  ('La Tortura', 213),
  ('Whenever Wherever', 196),
  ('La Camisa Negra', 216),
  ('A Dios le Pido', 206),
  ('Sozinho', 222)
ON CONFLICT (title) DO NOTHING;
`

const seedSongLanguages = `
INSERT INTO song_languages (song_id, language_id)
SELECT s.id, l.id
FROM (VALUES
  ('Ojos Asi', 'Spanish'),
  ('La Tortura', 'Spanish'),
  ('Whenever Wherever', 'English'),
  ('Whenever Wherever', 'Spanish'),
  ('La Camisa Negra', 'Spanish'),
  ('A Dios le Pido', 'Spanish'),
  ('Sozinho', 'Portuguese')
) AS v(song_title, language_name)
JOIN songs s ON s.title = v.song_title
JOIN languages l ON l.name = v.language_name
ON CONFLICT (song_id, language_id) DO NOTHING;
`

const seedPerformerSongs = `
INSERT INTO performer_songs (performer_id, song_id)
SELECT p.id, s.id
FROM (VALUES
  ('Shakira', 'Ojos Asi'),
  ('Shakira', 'La Tortura'),
  ('Shakira', 'Whenever Wherever'),
  ('Juanes', 'La Camisa Negra'),
  ('Juanes', 'A Dios le Pido'),
  ('Caetano Veloso', 'Sozinho')
) AS v(performer_name, song_title)
JOIN performers p ON p.name = v.performer_name
JOIN songs s ON s.title = v.song_title
ON CONFLICT (performer_id, song_id) DO NOTHING;
`

const seedPerformances = `
INSERT INTO performances (performer_id, song_id, performed_on, venue, city)
SELECT p.id, s.id, v.performed_on::date, v.venue, v.city
FROM (VALUES
  ('Shakira', 'Ojos Asi', '1999-08-12', 'MTV Studios', 'New York'),
  ('Shakira', 'Whenever Wherever', '2020-02-02', 'Hard Rock Stadium', 'Miami'),
  ('Juanes', 'La Camisa Negra', '2005-11-19', 'Estadio El Campin', 'Bogota'),
  ('Caetano Veloso', 'Sozinho', '1998-09-04', 'Canecao', 'Rio de Janeiro')
) AS v(performer_name, song_title, performed_on, venue, city)
JOIN performers p ON p.name = v.performer_name
JOIN songs s ON s.title = v.song_title
ON CONFLICT (performer_id, song_id, performed_on) DO NOTHING;
`

const seedSoundEngineers = `
INSERT INTO sound_engineers (name, studio_name) VALUES
  ('Gustavo Celis', 'Criteria Studios'),
  ('Javier Garza', 'Sonic Ranch'),
  ('Emily Lazar', 'The Lodge')
ON CONFLICT (name) DO NOTHING;
`

const seedRecordings = `
INSERT INTO recordings (song_id, engineer_id, recorded_on)
SELECT s.id, e.id, v.recorded_on::date
FROM (VALUES
  ('Ojos Asi', 'Gustavo Celis', '1998-05-10'),
  ('La Camisa Negra', 'Javier Garza', '2004-03-18'),
  ('Whenever Wherever', 'Emily Lazar', '2001-08-21')
) AS v(song_title, engineer_name, recorded_on)
JOIN songs s ON s.title = v.song_title
JOIN sound_engineers e ON e.name = v.engineer_name
ON CONFLICT (song_id, engineer_id, recorded_on) DO NOTHING;
`

const seedAlbums = `
INSERT INTO albums (title, performer_id, released_on, format_id)
SELECT v.title, p.id, v.released_on::date, f.id
FROM (VALUES
  ('Donde Estan los Ladrones', 'Shakira', '1998-09-29', 'CD'),
  ('Laundry Service', 'Shakira', '2001-11-13', 'CD'),
  ('Mi Sangre', 'Juanes', '2004-09-28', 'VIN'),
  ('Livro', 'Caetano Veloso', '1997-10-01', 'CD'),
  ('El Mal Querer', 'Rosalia', '2018-11-02', 'STR')
) AS v(title, performer_name, released_on, format_code)
JOIN performers p ON p.name = v.performer_name
JOIN formats f ON f.code = v.format_code
ON CONFLICT (title, performer_id) DO NOTHING;
`

const seedPlatformPromotions = `
INSERT INTO platform_promotions (performer_id, platform_id)
SELECT pf.id, pl.id
FROM (VALUES
  ('Shakira', 'Spotify'),
  ('Shakira', 'Apple Music'),
  ('Juanes', 'Spotify'),
  ('Juanes', 'YouTube Music'),
  ('Rosalia', 'Spotify')
) AS v(performer_name, platform_name)
JOIN performers pf ON pf.name = v.performer_name
JOIN platforms pl ON pl.name = v.platform_name
ON CONFLICT (performer_id, platform_id) DO NOTHING;
`

const seedCountryPromotions = `
INSERT INTO country_promotions (performer_id, country_id)
SELECT pf.id, c.id
FROM (VALUES
  ('Shakira', 'US'),
  ('Shakira', 'BR'),
  ('Shakira', 'CO'),
  ('Juanes', 'CO'),
  ('Juanes', 'MX'),
  ('Rosalia', 'ES')
) AS v(performer_name, country_code)
JOIN performers pf ON pf.name = v.performer_name
JOIN countries c ON c.code = v.country_code
ON CONFLICT (performer_id, country_id) DO NOTHING;
`

const seedPlatformCountries = `
INSERT INTO platform_countries (platform_id, country_id)
SELECT pl.id, c.id
FROM (VALUES
  ('Spotify', 'US'),
  ('Spotify', 'BR'),
  ('Spotify', 'CO'),
  ('Spotify', 'MX'),
  ('Spotify', 'ES'),
  ('Apple Music', 'US'),
  ('Apple Music', 'MX'),
  ('Apple Music', 'ES'),
  ('YouTube Music', 'CO'),
  ('YouTube Music', 'BR'),
  ('YouTube Music', 'MX'),
  ('Deezer', 'BR')
) AS v(platform_name, country_code)
JOIN platforms pl ON pl.name = v.platform_name
JOIN countries c ON c.code = v.country_code
ON CONFLICT (platform_id, country_id) DO NOTHING;
`
