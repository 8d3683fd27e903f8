package workbench

import (
	"fmt"

	"melodybase/internal/normalform"
)

// Points returns the six worked examples in order, 1NF through 5NF.
func Points() []Point {
	return []Point{
		firstNormalFormPoint(),
		secondNormalFormPoint(),
		thirdNormalFormPoint(),
		boyceCoddPoint(),
		fourthNormalFormPoint(),
		fifthNormalFormPoint(),
	}
}

// PointByNumber returns the worked example with the given 1-based number.
func PointByNumber(number int) (Point, error) {
	points := Points()
	if number < 1 || number > len(points) {
		return Point{}, fmt.Errorf("no workbench point numbered %d", number)
	}
	return points[number-1], nil
}

// The scratch tables use natural keys on purpose: the worked examples read
// like the blackboard versions, and the migrations stay plain
// INSERT .. SELECT DISTINCT with no surrogate-id bookkeeping. The live
// catalog in internal/database keeps UUID surrogate keys.

func firstNormalFormPoint() Point {
	return Point{
		Number:     1,
		TargetForm: normalform.FirstNF,
		Title:      "Repeating groups in the performer catalog",
		Summary: "legacy_performer_catalog packs song titles and their languages into " +
			"comma-separated columns, so single cells hold lists and no key governs the " +
			"repeating groups. Splitting the lists into countries, performers, songs, " +
			"languages and the two association tables makes every value atomic.",
		Relation: normalform.Relation{
			Name:       "legacy_performer_catalog",
			Attributes: []string{"performer_name", "country_name", "song_titles", "song_languages"},
			NonAtomic:  []string{"song_titles", "song_languages"},
		},
		Dependencies: normalform.Dependencies{
			FDs: []normalform.FD{
				{From: []string{"performer_name"}, To: []string{"country_name"}},
			},
		},
		Denormalized: Statement{
			Label: "create legacy_performer_catalog",
			SQL: `CREATE TABLE legacy_performer_catalog (
    performer_name TEXT NOT NULL,
    country_name   TEXT NOT NULL,
    song_titles    TEXT NOT NULL,
    song_languages TEXT NOT NULL
)`,
		},
		SampleData: []Statement{
			{
				Label: "load legacy rows",
				SQL: `INSERT INTO legacy_performer_catalog (performer_name, country_name, song_titles, song_languages) VALUES
    ('Shakira', 'Colombia', 'Ojos Asi,La Tortura,Whenever Wherever', 'Spanish,Spanish,English'),
    ('Juanes', 'Colombia', 'La Camisa Negra,A Dios le Pido', 'Spanish,Spanish'),
    ('Caetano Veloso', 'Brazil', 'Sozinho', 'Portuguese')`,
			},
		},
		Normalized: []Statement{
			{
				Label: "create countries",
				SQL: `CREATE TABLE countries (
    country_name TEXT PRIMARY KEY
)`,
			},
			{
				Label: "create performers",
				SQL: `CREATE TABLE performers (
    performer_name TEXT PRIMARY KEY,
    country_name   TEXT NOT NULL REFERENCES countries (country_name)
)`,
			},
			{
				Label: "create songs",
				SQL: `CREATE TABLE songs (
    song_title TEXT PRIMARY KEY
)`,
			},
			{
				Label: "create languages",
				SQL: `CREATE TABLE languages (
    language_name TEXT PRIMARY KEY
)`,
			},
			{
				Label: "create song_languages",
				SQL: `CREATE TABLE song_languages (
    song_title    TEXT NOT NULL REFERENCES songs (song_title),
    language_name TEXT NOT NULL REFERENCES languages (language_name),
    PRIMARY KEY (song_title, language_name)
)`,
			},
			{
				Label: "create performer_songs",
				SQL: `CREATE TABLE performer_songs (
    performer_name TEXT NOT NULL REFERENCES performers (performer_name),
    song_title     TEXT NOT NULL REFERENCES songs (song_title),
    PRIMARY KEY (performer_name, song_title)
)`,
			},
		},
		Migration: []Statement{
			{
				Label: "migrate countries",
				SQL: `INSERT INTO countries (country_name)
SELECT DISTINCT country_name FROM legacy_performer_catalog`,
			},
			{
				Label: "migrate performers",
				SQL: `INSERT INTO performers (performer_name, country_name)
SELECT DISTINCT performer_name, country_name FROM legacy_performer_catalog`,
			},
			{
				Label: "migrate songs",
				SQL: `INSERT INTO songs (song_title)
SELECT DISTINCT trim(t.song_title)
FROM legacy_performer_catalog lpc,
     unnest(string_to_array(lpc.song_titles, ',')) AS t(song_title)`,
			},
			{
				Label: "migrate languages",
				SQL: `INSERT INTO languages (language_name)
SELECT DISTINCT trim(t.language_name)
FROM legacy_performer_catalog lpc,
     unnest(string_to_array(lpc.song_languages, ',')) AS t(language_name)`,
			},
			{
				Label: "migrate song_languages",
				SQL: `INSERT INTO song_languages (song_title, language_name)
SELECT DISTINCT trim(t.song_title), trim(t.language_name)
FROM legacy_performer_catalog lpc,
     unnest(string_to_array(lpc.song_titles, ','), string_to_array(lpc.song_languages, ',')) AS t(song_title, language_name)`,
			},
			{
				Label: "migrate performer_songs",
				SQL: `INSERT INTO performer_songs (performer_name, song_title)
SELECT DISTINCT lpc.performer_name, trim(t.song_title)
FROM legacy_performer_catalog lpc,
     unnest(string_to_array(lpc.song_titles, ',')) AS t(song_title)`,
			},
		},
		Checks: []Check{
			{
				Name: "performer_country_fk_resolves",
				SQL: `SELECT p.performer_name
FROM performers p
LEFT JOIN countries c ON c.country_name = p.country_name
WHERE c.country_name IS NULL`,
				Expect: Expectation{Kind: ExpectEmpty},
			},
			{
				Name: "song_language_fk_resolves",
				SQL: `SELECT sl.song_title
FROM song_languages sl
LEFT JOIN songs s ON s.song_title = sl.song_title
WHERE s.song_title IS NULL`,
				Expect: Expectation{Kind: ExpectEmpty},
			},
			{
				Name: "song_titles_unique",
				SQL: `SELECT song_title
FROM songs
GROUP BY song_title
HAVING count(*) > 1`,
				Expect: Expectation{Kind: ExpectEmpty},
			},
			{
				Name: "exploded_rows_all_reconstructed",
				SQL: `WITH exploded AS (
    SELECT lpc.performer_name,
           lpc.country_name,
           trim(t.song_title)    AS song_title,
           trim(t.language_name) AS language_name
    FROM legacy_performer_catalog lpc,
         unnest(string_to_array(lpc.song_titles, ','), string_to_array(lpc.song_languages, ',')) AS t(song_title, language_name)
)
SELECT performer_name, country_name, song_title, language_name FROM exploded
EXCEPT
SELECT p.performer_name, p.country_name, ps.song_title, sl.language_name
FROM performer_songs ps
JOIN performers p ON p.performer_name = ps.performer_name
JOIN song_languages sl ON sl.song_title = ps.song_title`,
				Expect: Expectation{Kind: ExpectEmpty},
			},
			{
				Name: "reconstruction_adds_no_rows",
				SQL: `SELECT p.performer_name, p.country_name, ps.song_title, sl.language_name
FROM performer_songs ps
JOIN performers p ON p.performer_name = ps.performer_name
JOIN song_languages sl ON sl.song_title = ps.song_title
EXCEPT
SELECT lpc.performer_name,
       lpc.country_name,
       trim(t.song_title),
       trim(t.language_name)
FROM legacy_performer_catalog lpc,
     unnest(string_to_array(lpc.song_titles, ','), string_to_array(lpc.song_languages, ',')) AS t(song_title, language_name)`,
				Expect: Expectation{Kind: ExpectEmpty},
			},
			{
				Name:   "all_performers_migrated",
				SQL:    `SELECT performer_name FROM performers`,
				Expect: Expectation{Kind: ExpectRows, Rows: 3},
			},
			{
				Name:   "list_cells_fully_split",
				SQL:    `SELECT song_title FROM songs`,
				Expect: Expectation{Kind: ExpectRows, Rows: 6},
			},
		},
	}
}

func secondNormalFormPoint() Point {
	return Point{
		Number:     2,
		TargetForm: normalform.SecondNF,
		Title:      "Partial dependencies in the performance log",
		Summary: "legacy_performances keys rows by (performer, song, date), but the " +
			"performer's country depends on the performer alone and the song's duration " +
			"on the song alone. Those facts repeat per performance and move out to " +
			"performers and songs; the performance keeps only what the full key determines.",
		Relation: normalform.Relation{
			Name:       "legacy_performances",
			Attributes: []string{"performer_name", "song_title", "performed_on", "venue", "city", "country_name", "duration_seconds"},
		},
		Dependencies: normalform.Dependencies{
			FDs: []normalform.FD{
				{From: []string{"performer_name", "song_title", "performed_on"}, To: []string{"venue", "city"}},
				{From: []string{"performer_name"}, To: []string{"country_name"}},
				{From: []string{"song_title"}, To: []string{"duration_seconds"}},
			},
		},
		Denormalized: Statement{
			Label: "create legacy_performances",
			SQL: `CREATE TABLE legacy_performances (
    performer_name   TEXT NOT NULL,
    song_title       TEXT NOT NULL,
    performed_on     DATE NOT NULL,
    venue            TEXT NOT NULL,
    city             TEXT NOT NULL,
    country_name     TEXT NOT NULL,
    duration_seconds INT  NOT NULL,
    PRIMARY KEY (performer_name, song_title, performed_on)
)`,
		},
		SampleData: []Statement{
			{
				Label: "load legacy rows",
				SQL: `INSERT INTO legacy_performances (performer_name, song_title, performed_on, venue, city, country_name, duration_seconds) VALUES
    ('Shakira', 'Ojos Asi', DATE '1999-08-12', 'MTV Studios', 'New York', 'Colombia', 247),
    ('Shakira', 'Ojos Asi', DATE '2003-05-20', 'Estadio Azteca', 'Mexico City', 'Colombia', 247),
    ('Shakira', 'Whenever Wherever', DATE '2020-02-02', 'Hard Rock Stadium', 'Miami', 'Colombia', 196),
    ('Juanes', 'La Camisa Negra', DATE '2005-11-19', 'Estadio El Campin', 'Bogota', 'Colombia', 216),
    ('Caetano Veloso', 'Sozinho', DATE '1998-09-04', 'Canecao', 'Rio de Janeiro', 'Brazil', 222)`,
			},
		},
		Normalized: []Statement{
			{
				Label: "create performers",
				SQL: `CREATE TABLE performers (
    performer_name TEXT PRIMARY KEY,
    country_name   TEXT NOT NULL
)`,
			},
			{
				Label: "create songs",
				SQL: `CREATE TABLE songs (
    song_title       TEXT PRIMARY KEY,
    duration_seconds INT NOT NULL
)`,
			},
			{
				Label: "create performances",
				SQL: `CREATE TABLE performances (
    performer_name TEXT NOT NULL REFERENCES performers (performer_name),
    song_title     TEXT NOT NULL REFERENCES songs (song_title),
    performed_on   DATE NOT NULL,
    venue          TEXT NOT NULL,
    city           TEXT NOT NULL,
    PRIMARY KEY (performer_name, song_title, performed_on)
)`,
			},
		},
		Migration: []Statement{
			{
				Label: "migrate performers",
				SQL: `INSERT INTO performers (performer_name, country_name)
SELECT DISTINCT performer_name, country_name FROM legacy_performances`,
			},
			{
				Label: "migrate songs",
				SQL: `INSERT INTO songs (song_title, duration_seconds)
SELECT DISTINCT song_title, duration_seconds FROM legacy_performances`,
			},
			{
				Label: "migrate performances",
				SQL: `INSERT INTO performances (performer_name, song_title, performed_on, venue, city)
SELECT DISTINCT performer_name, song_title, performed_on, venue, city FROM legacy_performances`,
			},
		},
		Checks: []Check{
			{
				Name: "performance_performer_fk_resolves",
				SQL: `SELECT p.performer_name
FROM performances p
LEFT JOIN performers pf ON pf.performer_name = p.performer_name
WHERE pf.performer_name IS NULL`,
				Expect: Expectation{Kind: ExpectEmpty},
			},
			{
				Name: "performance_song_fk_resolves",
				SQL: `SELECT p.song_title
FROM performances p
LEFT JOIN songs s ON s.song_title = p.song_title
WHERE s.song_title IS NULL`,
				Expect: Expectation{Kind: ExpectEmpty},
			},
			{
				Name: "one_country_per_performer",
				SQL: `SELECT performer_name
FROM performers
GROUP BY performer_name
HAVING count(*) > 1`,
				Expect: Expectation{Kind: ExpectEmpty},
			},
			{
				Name: "lossless_join_no_missing_rows",
				SQL: `SELECT performer_name, song_title, performed_on, venue, city, country_name, duration_seconds
FROM legacy_performances
EXCEPT
SELECT p.performer_name, p.song_title, p.performed_on, p.venue, p.city, pf.country_name, s.duration_seconds
FROM performances p
JOIN performers pf ON pf.performer_name = p.performer_name
JOIN songs s ON s.song_title = p.song_title`,
				Expect: Expectation{Kind: ExpectEmpty},
			},
			{
				Name: "lossless_join_no_extra_rows",
				SQL: `SELECT p.performer_name, p.song_title, p.performed_on, p.venue, p.city, pf.country_name, s.duration_seconds
FROM performances p
JOIN performers pf ON pf.performer_name = p.performer_name
JOIN songs s ON s.song_title = p.song_title
EXCEPT
SELECT performer_name, song_title, performed_on, venue, city, country_name, duration_seconds
FROM legacy_performances`,
				Expect: Expectation{Kind: ExpectEmpty},
			},
			{
				Name:   "country_fact_stored_once_per_performer",
				SQL:    `SELECT performer_name FROM performers`,
				Expect: Expectation{Kind: ExpectRows, Rows: 3},
			},
			{
				Name:   "duration_fact_stored_once_per_song",
				SQL:    `SELECT song_title FROM songs`,
				Expect: Expectation{Kind: ExpectRows, Rows: 4},
			},
		},
	}
}

func thirdNormalFormPoint() Point {
	return Point{
		Number:     3,
		TargetForm: normalform.ThirdNF,
		Title:      "Transitive dependency in the album listing",
		Summary: "legacy_albums stores the format's name and medium next to the format " +
			"code, so (album, performer) determines format_code and format_code determines " +
			"the rest - a transitive chain through a non-key attribute. Formats become " +
			"their own table; albums keep only the code.",
		Relation: normalform.Relation{
			Name:       "legacy_albums",
			Attributes: []string{"album_title", "performer_name", "released_on", "format_code", "format_name", "format_medium"},
		},
		Dependencies: normalform.Dependencies{
			FDs: []normalform.FD{
				{From: []string{"album_title", "performer_name"}, To: []string{"released_on", "format_code"}},
				{From: []string{"format_code"}, To: []string{"format_name", "format_medium"}},
			},
		},
		Denormalized: Statement{
			Label: "create legacy_albums",
			SQL: `CREATE TABLE legacy_albums (
    album_title    TEXT NOT NULL,
    performer_name TEXT NOT NULL,
    released_on    DATE NOT NULL,
    format_code    TEXT NOT NULL,
    format_name    TEXT NOT NULL,
    format_medium  TEXT NOT NULL,
    PRIMARY KEY (album_title, performer_name)
)`,
		},
		SampleData: []Statement{
			{
				Label: "load legacy rows",
				SQL: `INSERT INTO legacy_albums (album_title, performer_name, released_on, format_code, format_name, format_medium) VALUES
    ('Donde Estan los Ladrones', 'Shakira', DATE '1998-09-29', 'CD', 'Compact Disc', 'physical'),
    ('Laundry Service', 'Shakira', DATE '2001-11-13', 'CD', 'Compact Disc', 'physical'),
    ('Mi Sangre', 'Juanes', DATE '2004-09-28', 'VIN', 'Vinyl', 'physical'),
    ('El Mal Querer', 'Rosalia', DATE '2018-11-02', 'STR', 'Streaming', 'digital'),
    ('Livro', 'Caetano Veloso', DATE '1997-10-01', 'CD', 'Compact Disc', 'physical')`,
			},
		},
		Normalized: []Statement{
			{
				Label: "create formats",
				SQL: `CREATE TABLE formats (
    format_code   TEXT PRIMARY KEY,
    format_name   TEXT NOT NULL,
    format_medium TEXT NOT NULL CHECK (format_medium IN ('physical', 'digital'))
)`,
			},
			{
				Label: "create albums",
				SQL: `CREATE TABLE albums (
    album_title    TEXT NOT NULL,
    performer_name TEXT NOT NULL,
    released_on    DATE NOT NULL,
    format_code    TEXT NOT NULL REFERENCES formats (format_code),
    PRIMARY KEY (album_title, performer_name)
)`,
			},
		},
		Migration: []Statement{
			{
				Label: "migrate formats",
				SQL: `INSERT INTO formats (format_code, format_name, format_medium)
SELECT DISTINCT format_code, format_name, format_medium FROM legacy_albums`,
			},
			{
				Label: "migrate albums",
				SQL: `INSERT INTO albums (album_title, performer_name, released_on, format_code)
SELECT DISTINCT album_title, performer_name, released_on, format_code FROM legacy_albums`,
			},
		},
		Checks: []Check{
			{
				Name: "album_format_fk_resolves",
				SQL: `SELECT a.album_title
FROM albums a
LEFT JOIN formats f ON f.format_code = a.format_code
WHERE f.format_code IS NULL`,
				Expect: Expectation{Kind: ExpectEmpty},
			},
			{
				Name: "format_codes_unique",
				SQL: `SELECT format_code
FROM formats
GROUP BY format_code
HAVING count(*) > 1`,
				Expect: Expectation{Kind: ExpectEmpty},
			},
			{
				Name: "format_facts_preserved",
				SQL: `SELECT DISTINCT format_code, format_name, format_medium FROM legacy_albums
EXCEPT
SELECT format_code, format_name, format_medium FROM formats`,
				Expect: Expectation{Kind: ExpectEmpty},
			},
			{
				Name: "lossless_join_no_missing_rows",
				SQL: `SELECT album_title, performer_name, released_on, format_code, format_name, format_medium
FROM legacy_albums
EXCEPT
SELECT a.album_title, a.performer_name, a.released_on, a.format_code, f.format_name, f.format_medium
FROM albums a
JOIN formats f ON f.format_code = a.format_code`,
				Expect: Expectation{Kind: ExpectEmpty},
			},
			{
				Name: "lossless_join_no_extra_rows",
				SQL: `SELECT a.album_title, a.performer_name, a.released_on, a.format_code, f.format_name, f.format_medium
FROM albums a
JOIN formats f ON f.format_code = a.format_code
EXCEPT
SELECT album_title, performer_name, released_on, format_code, format_name, format_medium
FROM legacy_albums`,
				Expect: Expectation{Kind: ExpectEmpty},
			},
			{
				Name:   "format_fact_stored_once_per_code",
				SQL:    `SELECT format_code FROM formats`,
				Expect: Expectation{Kind: ExpectRows, Rows: 3},
			},
		},
	}
}

func boyceCoddPoint() Point {
	return Point{
		Number:     4,
		TargetForm: normalform.BoyceCoddNF,
		Title:      "Non-key determinant in the recording sessions",
		Summary: "legacy_recordings satisfies 3NF - every dependent of engineer_name is " +
			"prime - but engineer_name determines studio_name without being a superkey. " +
			"Pulling engineers into their own table removes the anomaly; the price, as " +
			"always with BCNF, is that the session rule (one engineer per song, studio " +
			"and day) is no longer enforceable by a key of a single table.",
		Relation: normalform.Relation{
			Name:       "legacy_recordings",
			Attributes: []string{"song_title", "engineer_name", "studio_name", "recorded_on"},
		},
		Dependencies: normalform.Dependencies{
			FDs: []normalform.FD{
				{From: []string{"engineer_name"}, To: []string{"studio_name"}},
				{From: []string{"song_title", "studio_name", "recorded_on"}, To: []string{"engineer_name"}},
			},
		},
		Denormalized: Statement{
			Label: "create legacy_recordings",
			SQL: `CREATE TABLE legacy_recordings (
    song_title    TEXT NOT NULL,
    engineer_name TEXT NOT NULL,
    studio_name   TEXT NOT NULL,
    recorded_on   DATE NOT NULL,
    PRIMARY KEY (song_title, engineer_name, recorded_on)
)`,
		},
		SampleData: []Statement{
			{
				Label: "load legacy rows",
				SQL: `INSERT INTO legacy_recordings (song_title, engineer_name, studio_name, recorded_on) VALUES
    ('Ojos Asi', 'Gustavo Celis', 'Criteria Studios', DATE '1998-05-10'),
    ('Ojos Asi', 'Javier Garza', 'Sonic Ranch', DATE '1998-06-02'),
    ('La Camisa Negra', 'Javier Garza', 'Sonic Ranch', DATE '2004-03-18'),
    ('Whenever Wherever', 'Emily Lazar', 'The Lodge', DATE '2001-08-21'),
    ('La Tortura', 'Gustavo Celis', 'Criteria Studios', DATE '2005-01-12')`,
			},
		},
		Normalized: []Statement{
			{
				Label: "create sound_engineers",
				SQL: `CREATE TABLE sound_engineers (
    engineer_name TEXT PRIMARY KEY,
    studio_name   TEXT NOT NULL
)`,
			},
			{
				Label: "create recordings",
				SQL: `CREATE TABLE recordings (
    song_title    TEXT NOT NULL,
    engineer_name TEXT NOT NULL REFERENCES sound_engineers (engineer_name),
    recorded_on   DATE NOT NULL,
    PRIMARY KEY (song_title, engineer_name, recorded_on)
)`,
			},
		},
		Migration: []Statement{
			{
				Label: "migrate sound_engineers",
				SQL: `INSERT INTO sound_engineers (engineer_name, studio_name)
SELECT DISTINCT engineer_name, studio_name FROM legacy_recordings`,
			},
			{
				Label: "migrate recordings",
				SQL: `INSERT INTO recordings (song_title, engineer_name, recorded_on)
SELECT DISTINCT song_title, engineer_name, recorded_on FROM legacy_recordings`,
			},
		},
		Checks: []Check{
			{
				Name: "recording_engineer_fk_resolves",
				SQL: `SELECT r.song_title
FROM recordings r
LEFT JOIN sound_engineers e ON e.engineer_name = r.engineer_name
WHERE e.engineer_name IS NULL`,
				Expect: Expectation{Kind: ExpectEmpty},
			},
			{
				Name: "one_studio_per_engineer",
				SQL: `SELECT engineer_name
FROM sound_engineers
GROUP BY engineer_name
HAVING count(*) > 1`,
				Expect: Expectation{Kind: ExpectEmpty},
			},
			{
				Name: "studio_facts_preserved",
				SQL: `SELECT DISTINCT engineer_name, studio_name FROM legacy_recordings
EXCEPT
SELECT engineer_name, studio_name FROM sound_engineers`,
				Expect: Expectation{Kind: ExpectEmpty},
			},
			{
				Name: "lossless_join_no_missing_rows",
				SQL: `SELECT song_title, engineer_name, studio_name, recorded_on FROM legacy_recordings
EXCEPT
SELECT r.song_title, r.engineer_name, e.studio_name, r.recorded_on
FROM recordings r
JOIN sound_engineers e ON e.engineer_name = r.engineer_name`,
				Expect: Expectation{Kind: ExpectEmpty},
			},
			{
				Name: "lossless_join_no_extra_rows",
				SQL: `SELECT r.song_title, r.engineer_name, e.studio_name, r.recorded_on
FROM recordings r
JOIN sound_engineers e ON e.engineer_name = r.engineer_name
EXCEPT
SELECT song_title, engineer_name, studio_name, recorded_on FROM legacy_recordings`,
				Expect: Expectation{Kind: ExpectEmpty},
			},
			{
				Name:   "studio_fact_stored_once_per_engineer",
				SQL:    `SELECT engineer_name FROM sound_engineers`,
				Expect: Expectation{Kind: ExpectRows, Rows: 3},
			},
		},
	}
}

func fourthNormalFormPoint() Point {
	return Point{
		Number:     5,
		TargetForm: normalform.FourthNF,
		Title:      "Independent multivalued facts in the promotion matrix",
		Summary: "Which platforms a performer promotes on and which countries they target " +
			"are independent facts, but legacy_promotions stores them in one table, forcing " +
			"a full cross product per performer. Splitting into platform_promotions and " +
			"country_promotions stores each fact once; joining on the performer rebuilds " +
			"the matrix exactly.",
		Relation: normalform.Relation{
			Name:       "legacy_promotions",
			Attributes: []string{"performer_name", "platform_name", "country_code"},
		},
		Dependencies: normalform.Dependencies{
			MVDs: []normalform.MVD{
				{From: []string{"performer_name"}, To: []string{"platform_name"}},
				{From: []string{"performer_name"}, To: []string{"country_code"}},
			},
		},
		Denormalized: Statement{
			Label: "create legacy_promotions",
			SQL: `CREATE TABLE legacy_promotions (
    performer_name TEXT NOT NULL,
    platform_name  TEXT NOT NULL,
    country_code   CHAR(2) NOT NULL,
    PRIMARY KEY (performer_name, platform_name, country_code)
)`,
		},
		SampleData: []Statement{
			{
				Label: "load legacy rows",
				SQL: `INSERT INTO legacy_promotions (performer_name, platform_name, country_code) VALUES
    ('Shakira', 'Spotify', 'US'),
    ('Shakira', 'Spotify', 'BR'),
    ('Shakira', 'Apple Music', 'US'),
    ('Shakira', 'Apple Music', 'BR'),
    ('Juanes', 'Spotify', 'CO'),
    ('Juanes', 'Spotify', 'MX')`,
			},
		},
		Normalized: []Statement{
			{
				Label: "create platform_promotions",
				SQL: `CREATE TABLE platform_promotions (
    performer_name TEXT NOT NULL,
    platform_name  TEXT NOT NULL,
    PRIMARY KEY (performer_name, platform_name)
)`,
			},
			{
				Label: "create country_promotions",
				SQL: `CREATE TABLE country_promotions (
    performer_name TEXT NOT NULL,
    country_code   CHAR(2) NOT NULL,
    PRIMARY KEY (performer_name, country_code)
)`,
			},
		},
		Migration: []Statement{
			{
				Label: "migrate platform_promotions",
				SQL: `INSERT INTO platform_promotions (performer_name, platform_name)
SELECT DISTINCT performer_name, platform_name FROM legacy_promotions`,
			},
			{
				Label: "migrate country_promotions",
				SQL: `INSERT INTO country_promotions (performer_name, country_code)
SELECT DISTINCT performer_name, country_code FROM legacy_promotions`,
			},
		},
		Checks: []Check{
			{
				Name: "platform_rows_deduplicated",
				SQL: `SELECT performer_name, platform_name
FROM platform_promotions
GROUP BY performer_name, platform_name
HAVING count(*) > 1`,
				Expect: Expectation{Kind: ExpectEmpty},
			},
			{
				Name: "join_on_performer_no_missing_rows",
				SQL: `SELECT performer_name, platform_name, country_code FROM legacy_promotions
EXCEPT
SELECT pp.performer_name, pp.platform_name, cp.country_code
FROM platform_promotions pp
JOIN country_promotions cp ON cp.performer_name = pp.performer_name`,
				Expect: Expectation{Kind: ExpectEmpty},
			},
			{
				Name: "join_on_performer_no_extra_rows",
				SQL: `SELECT pp.performer_name, pp.platform_name, cp.country_code
FROM platform_promotions pp
JOIN country_promotions cp ON cp.performer_name = pp.performer_name
EXCEPT
SELECT performer_name, platform_name, country_code FROM legacy_promotions`,
				Expect: Expectation{Kind: ExpectEmpty},
			},
			{
				Name:   "platform_facts_stored_once",
				SQL:    `SELECT performer_name, platform_name FROM platform_promotions`,
				Expect: Expectation{Kind: ExpectRows, Rows: 3},
			},
			{
				Name:   "country_facts_stored_once",
				SQL:    `SELECT performer_name, country_code FROM country_promotions`,
				Expect: Expectation{Kind: ExpectRows, Rows: 4},
			},
		},
	}
}

func fifthNormalFormPoint() Point {
	return Point{
		Number:     6,
		TargetForm: normalform.FifthNF,
		Title:      "Cyclic join dependency in the promo deals",
		Summary: "A promo deal exists exactly when the performer promotes on the platform, " +
			"the performer targets the country, and the platform operates in the country. " +
			"That cyclic rule is a three-way join dependency: no pair of binary projections " +
			"rebuilds the deals, but the three together do, losslessly.",
		Relation: normalform.Relation{
			Name:       "legacy_promo_deals",
			Attributes: []string{"performer_name", "platform_name", "country_code"},
		},
		Dependencies: normalform.Dependencies{
			Join: &normalform.JoinDependency{Components: [][]string{
				{"performer_name", "platform_name"},
				{"performer_name", "country_code"},
				{"platform_name", "country_code"},
			}},
		},
		Denormalized: Statement{
			Label: "create legacy_promo_deals",
			SQL: `CREATE TABLE legacy_promo_deals (
    performer_name TEXT NOT NULL,
    platform_name  TEXT NOT NULL,
    country_code   CHAR(2) NOT NULL,
    PRIMARY KEY (performer_name, platform_name, country_code)
)`,
		},
		SampleData: []Statement{
			{
				Label: "load legacy rows",
				SQL: `INSERT INTO legacy_promo_deals (performer_name, platform_name, country_code) VALUES
    ('Shakira', 'Spotify', 'US'),
    ('Shakira', 'Spotify', 'CO'),
    ('Shakira', 'YouTube Music', 'CO'),
    ('Juanes', 'Spotify', 'CO')`,
			},
		},
		Normalized: []Statement{
			{
				Label: "create platform_promotions",
				SQL: `CREATE TABLE platform_promotions (
    performer_name TEXT NOT NULL,
    platform_name  TEXT NOT NULL,
    PRIMARY KEY (performer_name, platform_name)
)`,
			},
			{
				Label: "create country_promotions",
				SQL: `CREATE TABLE country_promotions (
    performer_name TEXT NOT NULL,
    country_code   CHAR(2) NOT NULL,
    PRIMARY KEY (performer_name, country_code)
)`,
			},
			{
				Label: "create platform_countries",
				SQL: `CREATE TABLE platform_countries (
    platform_name TEXT NOT NULL,
    country_code  CHAR(2) NOT NULL,
    PRIMARY KEY (platform_name, country_code)
)`,
			},
		},
		Migration: []Statement{
			{
				Label: "migrate platform_promotions",
				SQL: `INSERT INTO platform_promotions (performer_name, platform_name)
SELECT DISTINCT performer_name, platform_name FROM legacy_promo_deals`,
			},
			{
				Label: "migrate country_promotions",
				SQL: `INSERT INTO country_promotions (performer_name, country_code)
SELECT DISTINCT performer_name, country_code FROM legacy_promo_deals`,
			},
			{
				Label: "migrate platform_countries",
				SQL: `INSERT INTO platform_countries (platform_name, country_code)
SELECT DISTINCT platform_name, country_code FROM legacy_promo_deals`,
			},
		},
		Checks: []Check{
			{
				Name: "pair_join_platforms_countries_is_lossy",
				SQL: `SELECT pp.performer_name, pp.platform_name, cp.country_code
FROM platform_promotions pp
JOIN country_promotions cp ON cp.performer_name = pp.performer_name
EXCEPT
SELECT performer_name, platform_name, country_code FROM legacy_promo_deals`,
				Expect: Expectation{Kind: ExpectRows, Rows: 1},
			},
			{
				Name: "pair_join_platforms_operations_is_lossy",
				SQL: `SELECT pp.performer_name, pp.platform_name, pc.country_code
FROM platform_promotions pp
JOIN platform_countries pc ON pc.platform_name = pp.platform_name
EXCEPT
SELECT performer_name, platform_name, country_code FROM legacy_promo_deals`,
				Expect: Expectation{Kind: ExpectRows, Rows: 1},
			},
			{
				Name: "pair_join_countries_operations_is_lossy",
				SQL: `SELECT cp.performer_name, pc.platform_name, cp.country_code
FROM country_promotions cp
JOIN platform_countries pc ON pc.country_code = cp.country_code
EXCEPT
SELECT performer_name, platform_name, country_code FROM legacy_promo_deals`,
				Expect: Expectation{Kind: ExpectRows, Rows: 1},
			},
			{
				Name: "three_way_join_no_missing_rows",
				SQL: `SELECT performer_name, platform_name, country_code FROM legacy_promo_deals
EXCEPT
SELECT pp.performer_name, pp.platform_name, cp.country_code
FROM platform_promotions pp
JOIN country_promotions cp ON cp.performer_name = pp.performer_name
JOIN platform_countries pc ON pc.platform_name = pp.platform_name AND pc.country_code = cp.country_code`,
				Expect: Expectation{Kind: ExpectEmpty},
			},
			{
				Name: "three_way_join_no_extra_rows",
				SQL: `SELECT pp.performer_name, pp.platform_name, cp.country_code
FROM platform_promotions pp
JOIN country_promotions cp ON cp.performer_name = pp.performer_name
JOIN platform_countries pc ON pc.platform_name = pp.platform_name AND pc.country_code = cp.country_code
EXCEPT
SELECT performer_name, platform_name, country_code FROM legacy_promo_deals`,
				Expect: Expectation{Kind: ExpectEmpty},
			},
		},
	}
}
