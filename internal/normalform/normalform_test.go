package normalform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClosure(t *testing.T) {
	t.Parallel()

	fds := []FD{
		{From: []string{"performer_name"}, To: []string{"country_name"}},
		{From: []string{"song_title"}, To: []string{"duration_seconds"}},
	}

	tests := []struct {
		name  string
		attrs []string
		want  []string
	}{
		{
			name:  "single attribute pulls its dependents",
			attrs: []string{"performer_name"},
			want:  []string{"country_name", "performer_name"},
		},
		{
			name:  "attribute with no dependents is its own closure",
			attrs: []string{"venue"},
			want:  []string{"venue"},
		},
		{
			name:  "two determinants combine",
			attrs: []string{"performer_name", "song_title"},
			want:  []string{"country_name", "duration_seconds", "performer_name", "song_title"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Closure(tt.attrs, fds))
		})
	}
}

func TestClosureChains(t *testing.T) {
	t.Parallel()

	// album -> format_code -> format_name must resolve transitively.
	fds := []FD{
		{From: []string{"album_title"}, To: []string{"format_code"}},
		{From: []string{"format_code"}, To: []string{"format_name", "format_medium"}},
	}
	got := Closure([]string{"album_title"}, fds)
	assert.Equal(t, []string{"album_title", "format_code", "format_medium", "format_name"}, got)
}

func TestCandidateKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rel  Relation
		fds  []FD
		want [][]string
	}{
		{
			name: "no dependencies means the whole heading is the key",
			rel: Relation{
				Name:       "legacy_promotions",
				Attributes: []string{"performer_name", "platform_name", "country_code"},
			},
			want: [][]string{{"performer_name", "platform_name", "country_code"}},
		},
		{
			name: "partial dependencies do not shrink the key",
			rel: Relation{
				Name:       "legacy_performances",
				Attributes: []string{"performer_name", "song_title", "performed_on", "venue", "city", "country_name", "duration_seconds"},
			},
			fds: []FD{
				{From: []string{"performer_name", "song_title", "performed_on"}, To: []string{"venue", "city"}},
				{From: []string{"performer_name"}, To: []string{"country_name"}},
				{From: []string{"song_title"}, To: []string{"duration_seconds"}},
			},
			want: [][]string{{"performer_name", "song_title", "performed_on"}},
		},
		{
			name: "overlapping keys are both found",
			rel: Relation{
				Name:       "legacy_recordings",
				Attributes: []string{"song_title", "engineer_name", "studio_name", "recorded_on"},
			},
			fds: []FD{
				{From: []string{"engineer_name"}, To: []string{"studio_name"}},
				{From: []string{"song_title", "studio_name", "recorded_on"}, To: []string{"engineer_name"}},
			},
			want: [][]string{
				{"song_title", "engineer_name", "recorded_on"},
				{"song_title", "studio_name", "recorded_on"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := CandidateKeys(tt.rel, tt.fds)
			require.Len(t, got, len(tt.want))
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestIsSuperkey(t *testing.T) {
	t.Parallel()

	rel := Relation{
		Name:       "legacy_albums",
		Attributes: []string{"album_title", "performer_name", "released_on", "format_code", "format_name", "format_medium"},
	}
	fds := []FD{
		{From: []string{"album_title", "performer_name"}, To: []string{"released_on", "format_code"}},
		{From: []string{"format_code"}, To: []string{"format_name", "format_medium"}},
	}

	assert.True(t, IsSuperkey(rel, []string{"album_title", "performer_name"}, fds))
	assert.True(t, IsSuperkey(rel, []string{"album_title", "performer_name", "venue"}, fds))
	assert.False(t, IsSuperkey(rel, []string{"album_title"}, fds))
	assert.False(t, IsSuperkey(rel, []string{"format_code"}, fds))
}

func TestFormString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "UNF", Unnormalized.String())
	assert.Equal(t, "1NF", FirstNF.String())
	assert.Equal(t, "BCNF", BoyceCoddNF.String())
	assert.Equal(t, "5NF", FifthNF.String())
}
