package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"melodybase/internal/models"
)

func diagramFixture() []models.Table {
	return []models.Table{
		{
			Name: "countries",
			Columns: []models.Column{
				{Name: "id", DataType: "uuid"},
				{Name: "name", DataType: "character varying(255)"},
				{Name: "code", DataType: "character(2)"},
			},
			PrimaryKeys: []string{"id"},
			UniqueConstraints: []models.UniqueConstraint{
				{ConstraintName: "countries_code_key", Columns: []string{"code"}},
			},
		},
		{
			Name: "performers",
			Columns: []models.Column{
				{Name: "id", DataType: "uuid"},
				{Name: "name", DataType: "character varying(255)"},
				{Name: "country_id", DataType: "uuid"},
				{Name: "created_at", DataType: "timestamp with time zone"},
			},
			PrimaryKeys: []string{"id"},
			ForeignKeys: []models.ForeignKey{
				{
					ConstraintName: "performers_country_id_fkey",
					ToTable:        "countries",
					Columns:        []models.ColumnRef{{FromColumn: "country_id", ToColumn: "id"}},
				},
			},
		},
		{
			Name: "songs",
			Columns: []models.Column{
				{Name: "id", DataType: "uuid"},
				{Name: "title", DataType: "character varying(255)"},
				{Name: "duration_seconds", DataType: "integer"},
			},
			PrimaryKeys: []string{"id"},
		},
		{
			Name: "performer_songs",
			Columns: []models.Column{
				{Name: "performer_id", DataType: "uuid"},
				{Name: "song_id", DataType: "uuid"},
			},
			PrimaryKeys: []string{"performer_id", "song_id"},
			ForeignKeys: []models.ForeignKey{
				{
					ConstraintName: "performer_songs_performer_id_fkey",
					ToTable:        "performers",
					Columns:        []models.ColumnRef{{FromColumn: "performer_id", ToColumn: "id"}},
				},
				{
					ConstraintName: "performer_songs_song_id_fkey",
					ToTable:        "songs",
					Columns:        []models.ColumnRef{{FromColumn: "song_id", ToColumn: "id"}},
				},
			},
		},
		{
			Name: "performances",
			Columns: []models.Column{
				{Name: "id", DataType: "uuid"},
				{Name: "performer_id", DataType: "uuid"},
				{Name: "song_id", DataType: "uuid"},
				{Name: "performed_on", DataType: "date"},
				{Name: "venue", DataType: "character varying(255)"},
				{Name: "city", DataType: "character varying(255)"},
			},
			PrimaryKeys: []string{"id"},
			ForeignKeys: []models.ForeignKey{
				{
					ConstraintName: "performances_performer_id_song_id_fkey",
					ToTable:        "performer_songs",
					Columns: []models.ColumnRef{
						{FromColumn: "performer_id", ToColumn: "performer_id"},
						{FromColumn: "song_id", ToColumn: "song_id"},
					},
				},
			},
			UniqueConstraints: []models.UniqueConstraint{
				{
					ConstraintName: "performances_performer_id_song_id_performed_on_key",
					Columns:        []string{"performer_id", "song_id", "performed_on"},
				},
			},
		},
	}
}

func TestDetectJunctionTables(t *testing.T) {
	junctions := detectJunctionTables(diagramFixture())

	assert.True(t, junctions["performer_songs"])
	assert.False(t, junctions["performances"], "surrogate-keyed table is not a junction")
	assert.False(t, junctions["performers"])
	assert.False(t, junctions["countries"])
}

func TestDetectJunctionTablesWithCompositeForeignKeys(t *testing.T) {
	// A pure association over a composite reference: both halves of the
	// composite foreign key sit inside the primary key.
	tables := []models.Table{
		{
			Name: "setlist_entries",
			Columns: []models.Column{
				{Name: "performer_id", DataType: "uuid"},
				{Name: "song_id", DataType: "uuid"},
				{Name: "tour_id", DataType: "uuid"},
			},
			PrimaryKeys: []string{"performer_id", "song_id", "tour_id"},
			ForeignKeys: []models.ForeignKey{
				{
					ToTable: "performer_songs",
					Columns: []models.ColumnRef{
						{FromColumn: "performer_id", ToColumn: "performer_id"},
						{FromColumn: "song_id", ToColumn: "song_id"},
					},
				},
				{
					ToTable: "tours",
					Columns: []models.ColumnRef{{FromColumn: "tour_id", ToColumn: "id"}},
				},
			},
		},
	}

	junctions := detectJunctionTables(tables)
	assert.True(t, junctions["setlist_entries"])
}

func TestBuildRelationships(t *testing.T) {
	relationships := buildRelationships(diagramFixture())

	assert.Contains(t, relationships, models.Relationship{
		FromTable: "countries",
		ToTable:   "performers",
		Type:      "||--o{",
	}, "referenced table sits on the one side")

	assert.Contains(t, relationships, models.Relationship{
		FromTable: "performers",
		ToTable:   "songs",
		Type:      "}o--o{",
	}, "junction collapses into many-to-many")

	assert.Contains(t, relationships, models.Relationship{
		FromTable: "performer_songs",
		ToTable:   "performances",
		Type:      "||--o{",
	})

	for _, rel := range relationships {
		assert.NotEqual(t, "performer_songs", rel.ToTable,
			"a junction's own foreign keys must not render as edges")
	}
}

func TestBuildRelationshipsOneToOne(t *testing.T) {
	tables := []models.Table{
		{
			Name:        "users",
			Columns:     []models.Column{{Name: "id", DataType: "uuid"}},
			PrimaryKeys: []string{"id"},
		},
		{
			Name: "user_settings",
			Columns: []models.Column{
				{Name: "id", DataType: "uuid"},
				{Name: "user_id", DataType: "uuid"},
			},
			PrimaryKeys: []string{"id"},
			ForeignKeys: []models.ForeignKey{
				{
					ToTable: "users",
					Columns: []models.ColumnRef{{FromColumn: "user_id", ToColumn: "id"}},
				},
			},
			UniqueConstraints: []models.UniqueConstraint{
				{ConstraintName: "user_settings_user_id_key", Columns: []string{"user_id"}},
			},
		},
	}

	relationships := buildRelationships(tables)

	assert.Equal(t, []models.Relationship{
		{FromTable: "users", ToTable: "user_settings", Type: "||--||"},
	}, relationships)
}

func TestGenerateMermaid(t *testing.T) {
	tables := diagramFixture()
	diagram := generateMermaid(tables, buildRelationships(tables))

	assert.Contains(t, diagram, "erDiagram")
	assert.Contains(t, diagram, "COUNTRIES ||--o{ PERFORMERS : \"\"")
	assert.Contains(t, diagram, "PERFORMERS }o--o{ SONGS : \"\"")
	assert.Contains(t, diagram, "PERFORMER_SONGS ||--o{ PERFORMANCES : \"\"")

	assert.Contains(t, diagram, "uuid id PK")
	assert.Contains(t, diagram, "uuid country_id FK")
	assert.Contains(t, diagram, "uuid performer_id PK FK", "junction columns carry both annotations")
	assert.Contains(t, diagram, "varchar name")
	assert.Contains(t, diagram, "timestamptz created_at")
	assert.Contains(t, diagram, "int duration_seconds")
}

func TestGenerateMermaidDeduplicatesEdges(t *testing.T) {
	rel := models.Relationship{FromTable: "countries", ToTable: "performers", Type: "||--o{"}
	diagram := generateMermaid(nil, []models.Relationship{rel, rel, rel})

	assert.Equal(t, 1, countOccurrences(diagram, "COUNTRIES ||--o{ PERFORMERS"))
}

func TestSimplifyDataType(t *testing.T) {
	cases := map[string]string{
		"integer":                     "int",
		"bigint":                      "bigint",
		"character varying(255)":      "varchar",
		"character(2)":                "char",
		"text":                        "text",
		"timestamp with time zone":    "timestamptz",
		"timestamp without time zone": "timestamp",
		"date":                        "date",
		"boolean":                     "boolean",
		"uuid":                        "uuid",
		"numeric(10,2)":               "numeric",
		"jsonb":                       "jsonb",
		"tsvector":                    "tsvector",
	}

	for input, want := range cases {
		assert.Equal(t, want, simplifyDataType(input), "input %q", input)
	}
}

func countOccurrences(s, sub string) int {
	count := 0
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			count++
		}
	}
	return count
}
