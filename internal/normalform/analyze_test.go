package normalform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func violationForms(violations []Violation) []Form {
	forms := make([]Form, 0, len(violations))
	for _, v := range violations {
		forms = append(forms, v.Form)
	}
	return forms
}

func TestAnalyzeRepeatingGroups(t *testing.T) {
	t.Parallel()

	rel := Relation{
		Name:       "legacy_performer_catalog",
		Attributes: []string{"performer_name", "country_name", "song_titles", "song_languages"},
		NonAtomic:  []string{"song_titles", "song_languages"},
	}
	deps := Dependencies{
		FDs: []FD{{From: []string{"performer_name"}, To: []string{"country_name"}}},
	}

	report := Analyze(rel, deps)
	assert.Equal(t, Unnormalized, report.HighestForm)
	assert.Contains(t, violationForms(report.Violations), FirstNF)
}

func TestAnalyzePartialDependency(t *testing.T) {
	t.Parallel()

	rel := Relation{
		Name:       "legacy_performances",
		Attributes: []string{"performer_name", "song_title", "performed_on", "venue", "city", "country_name", "duration_seconds"},
	}
	deps := Dependencies{
		FDs: []FD{
			{From: []string{"performer_name", "song_title", "performed_on"}, To: []string{"venue", "city"}},
			{From: []string{"performer_name"}, To: []string{"country_name"}},
			{From: []string{"song_title"}, To: []string{"duration_seconds"}},
		},
	}

	report := Analyze(rel, deps)
	assert.Equal(t, FirstNF, report.HighestForm)
	require.Len(t, report.Violations, 2)
	for _, v := range report.Violations {
		assert.Equal(t, SecondNF, v.Form)
	}
}

func TestAnalyzeTransitiveDependency(t *testing.T) {
	t.Parallel()

	rel := Relation{
		Name:       "legacy_albums",
		Attributes: []string{"album_title", "performer_name", "released_on", "format_code", "format_name", "format_medium"},
	}
	deps := Dependencies{
		FDs: []FD{
			{From: []string{"album_title", "performer_name"}, To: []string{"released_on", "format_code"}},
			{From: []string{"format_code"}, To: []string{"format_name", "format_medium"}},
		},
	}

	report := Analyze(rel, deps)
	assert.Equal(t, SecondNF, report.HighestForm)
	require.Len(t, report.Violations, 1)
	assert.Equal(t, ThirdNF, report.Violations[0].Form)
	assert.Contains(t, report.Violations[0].Reason, "transitive")
}

func TestAnalyzeBoyceCodd(t *testing.T) {
	t.Parallel()

	// engineer -> studio where studio is prime: 3NF holds, BCNF does not.
	rel := Relation{
		Name:       "legacy_recordings",
		Attributes: []string{"song_title", "engineer_name", "studio_name", "recorded_on"},
	}
	deps := Dependencies{
		FDs: []FD{
			{From: []string{"engineer_name"}, To: []string{"studio_name"}},
			{From: []string{"song_title", "studio_name", "recorded_on"}, To: []string{"engineer_name"}},
		},
	}

	report := Analyze(rel, deps)
	assert.Equal(t, ThirdNF, report.HighestForm)
	require.Len(t, report.Violations, 1)
	assert.Equal(t, BoyceCoddNF, report.Violations[0].Form)
	assert.ElementsMatch(t, []string{"engineer_name", "recorded_on", "song_title", "studio_name"}, report.Prime)
}

func TestAnalyzeMultivaluedDependencies(t *testing.T) {
	t.Parallel()

	rel := Relation{
		Name:       "legacy_promotions",
		Attributes: []string{"performer_name", "platform_name", "country_code"},
	}
	deps := Dependencies{
		MVDs: []MVD{
			{From: []string{"performer_name"}, To: []string{"platform_name"}},
			{From: []string{"performer_name"}, To: []string{"country_code"}},
		},
	}

	report := Analyze(rel, deps)
	assert.Equal(t, BoyceCoddNF, report.HighestForm)
	require.Len(t, report.Violations, 2)
	for _, v := range report.Violations {
		assert.Equal(t, FourthNF, v.Form)
	}
}

func TestAnalyzeJoinDependency(t *testing.T) {
	t.Parallel()

	rel := Relation{
		Name:       "legacy_promo_deals",
		Attributes: []string{"performer_name", "platform_name", "country_code"},
	}
	deps := Dependencies{
		Join: &JoinDependency{Components: [][]string{
			{"performer_name", "platform_name"},
			{"performer_name", "country_code"},
			{"platform_name", "country_code"},
		}},
	}

	report := Analyze(rel, deps)
	assert.Equal(t, FourthNF, report.HighestForm)
	require.Len(t, report.Violations, 1)
	assert.Equal(t, FifthNF, report.Violations[0].Form)
}

func TestAnalyzeTrivialJoinDependencyHolds(t *testing.T) {
	t.Parallel()

	rel := Relation{
		Name:       "platform_countries",
		Attributes: []string{"platform_name", "country_code"},
	}
	deps := Dependencies{
		Join: &JoinDependency{Components: [][]string{
			{"platform_name", "country_code"},
			{"platform_name"},
		}},
	}

	report := Analyze(rel, deps)
	assert.Equal(t, FifthNF, report.HighestForm)
	assert.Empty(t, report.Violations)
}

func TestAnalyzeNormalizedRelationsAreClean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rel  Relation
		deps Dependencies
	}{
		{
			name: "formats",
			rel:  Relation{Name: "formats", Attributes: []string{"format_code", "format_name", "format_medium"}},
			deps: Dependencies{FDs: []FD{
				{From: []string{"format_code"}, To: []string{"format_name", "format_medium"}},
			}},
		},
		{
			name: "sound_engineers",
			rel:  Relation{Name: "sound_engineers", Attributes: []string{"engineer_name", "studio_name"}},
			deps: Dependencies{FDs: []FD{
				{From: []string{"engineer_name"}, To: []string{"studio_name"}},
			}},
		},
		{
			name: "platform_promotions",
			rel:  Relation{Name: "platform_promotions", Attributes: []string{"performer_name", "platform_name"}},
			deps: Dependencies{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			report := Analyze(tt.rel, tt.deps)
			assert.Equal(t, FifthNF, report.HighestForm)
			assert.Empty(t, report.Violations)
		})
	}
}

func TestAnalyzeSuperkeyDeterminantIsNotAViolation(t *testing.T) {
	t.Parallel()

	rel := Relation{
		Name:       "performances",
		Attributes: []string{"performer_name", "song_title", "performed_on", "venue", "city"},
	}
	deps := Dependencies{
		FDs: []FD{
			{From: []string{"performer_name", "song_title", "performed_on"}, To: []string{"venue", "city"}},
		},
	}

	report := Analyze(rel, deps)
	assert.Equal(t, FifthNF, report.HighestForm)
	assert.Empty(t, report.Violations)
	assert.Equal(t, [][]string{{"performer_name", "song_title", "performed_on"}}, report.CandidateKeys)
}
