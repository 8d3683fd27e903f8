package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"melodybase/internal/models"
)

func TestForeignKeyCheckSQL(t *testing.T) {
	fk := models.ForeignKey{
		ConstraintName: "performers_country_id_fkey",
		ToTable:        "countries",
		Columns:        []models.ColumnRef{{FromColumn: "country_id", ToColumn: "id"}},
	}

	sql := foreignKeyCheckSQL("performers", fk)

	assert.Equal(t,
		`SELECT count(*) FROM "performers" c LEFT JOIN "countries" p ON p."id" = c."country_id" WHERE c."country_id" IS NOT NULL AND p."id" IS NULL`,
		sql)
}

func TestForeignKeyCheckSQLComposite(t *testing.T) {
	fk := models.ForeignKey{
		ConstraintName: "performances_performer_id_song_id_fkey",
		ToTable:        "performer_songs",
		Columns: []models.ColumnRef{
			{FromColumn: "performer_id", ToColumn: "performer_id"},
			{FromColumn: "song_id", ToColumn: "song_id"},
		},
	}

	sql := foreignKeyCheckSQL("performances", fk)

	assert.Contains(t, sql, `p."performer_id" = c."performer_id" AND p."song_id" = c."song_id"`,
		"both column pairs must join, aligned by position")
	assert.Contains(t, sql, `c."performer_id" IS NOT NULL AND c."song_id" IS NOT NULL`)
	assert.Contains(t, sql, `p."performer_id" IS NULL`)
}

func TestUniqueCheckSQL(t *testing.T) {
	uc := models.UniqueConstraint{
		ConstraintName: "albums_title_performer_id_key",
		Columns:        []string{"title", "performer_id"},
	}

	sql := uniqueCheckSQL("albums", uc)

	assert.Equal(t,
		`SELECT count(*) FROM (SELECT "title", "performer_id" FROM "albums" WHERE "title" IS NOT NULL AND "performer_id" IS NOT NULL GROUP BY "title", "performer_id" HAVING count(*) > 1) AS duplicates`,
		sql)
}

func TestSeedFloorCheckSQL(t *testing.T) {
	assert.Equal(t,
		`SELECT GREATEST(5 - count(*), 0) FROM "countries"`,
		seedFloorCheckSQL("countries", 5))
}

func TestBuildVerifyChecks(t *testing.T) {
	tables := []models.Table{
		{
			Name: "performers",
			ForeignKeys: []models.ForeignKey{
				{
					ConstraintName: "performers_country_id_fkey",
					ToTable:        "countries",
					Columns:        []models.ColumnRef{{FromColumn: "country_id", ToColumn: "id"}},
				},
			},
			UniqueConstraints: []models.UniqueConstraint{
				{ConstraintName: "performers_name_key", Columns: []string{"name"}},
			},
		},
		{Name: "countries"},
	}
	floors := map[string]int{"performers": 4, "countries": 5}

	checks := buildVerifyChecks(tables, floors)

	require.Len(t, checks, 4)

	names := make([]string, 0, len(checks))
	for _, check := range checks {
		names = append(names, check.Name)
		assert.NotEmpty(t, check.SQL)
	}
	assert.Equal(t, []string{
		"performers_country_id_fkey",
		"performers_name_key",
		"seed_floor_countries",
		"seed_floor_performers",
	}, names, "constraint checks first, then seed floors in name order")
}
