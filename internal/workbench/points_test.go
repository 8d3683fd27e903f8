package workbench

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"melodybase/internal/normalform"
)

func TestPointsOrderedByTargetForm(t *testing.T) {
	t.Parallel()

	points := Points()
	require.Len(t, points, 6)

	wantForms := []normalform.Form{
		normalform.FirstNF,
		normalform.SecondNF,
		normalform.ThirdNF,
		normalform.BoyceCoddNF,
		normalform.FourthNF,
		normalform.FifthNF,
	}
	for i, p := range points {
		assert.Equal(t, i+1, p.Number)
		assert.Equal(t, wantForms[i], p.TargetForm)
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.Summary)
	}
}

func TestPointByNumber(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 6; n++ {
		p, err := PointByNumber(n)
		require.NoError(t, err)
		assert.Equal(t, n, p.Number)
	}

	_, err := PointByNumber(0)
	assert.Error(t, err)
	_, err = PointByNumber(7)
	assert.Error(t, err)
}

// Every point must diagnose one form below its target: the denormalized
// table breaks exactly the form the point teaches, and the decomposition
// is what lifts it there.
func TestPointDiagnosisSitsOneFormBelowTarget(t *testing.T) {
	t.Parallel()

	wantHighest := map[int]normalform.Form{
		1: normalform.Unnormalized,
		2: normalform.FirstNF,
		3: normalform.SecondNF,
		4: normalform.ThirdNF,
		5: normalform.BoyceCoddNF,
		6: normalform.FourthNF,
	}
	wantTargetViolations := map[int]int{
		1: 2, // one per repeating-group column
		2: 2, // country and duration partial dependencies
		3: 1,
		4: 1,
		5: 2, // platforms and countries MVDs
		6: 1,
	}

	for _, p := range Points() {
		p := p
		t.Run(p.Relation.Name, func(t *testing.T) {
			t.Parallel()

			report := p.Diagnose()
			assert.Equal(t, wantHighest[p.Number], report.HighestForm)
			require.NotEmpty(t, report.Violations)

			atTarget := 0
			for _, v := range report.Violations {
				assert.Greaterf(t, v.Form, report.HighestForm,
					"violation %q reported at a form the relation satisfies", v.Dependency)
				if v.Form == p.TargetForm {
					atTarget++
				}
			}
			assert.Equal(t, wantTargetViolations[p.Number], atTarget)
		})
	}
}

func TestPointsCarryCompleteWorkedExamples(t *testing.T) {
	t.Parallel()

	for _, p := range Points() {
		p := p
		t.Run(p.Relation.Name, func(t *testing.T) {
			t.Parallel()

			assert.Contains(t, p.Denormalized.SQL, "CREATE TABLE "+p.Relation.Name)
			require.NotEmpty(t, p.SampleData)
			require.NotEmpty(t, p.Normalized)
			require.NotEmpty(t, p.Migration)
			require.GreaterOrEqual(t, len(p.Checks), 2)

			// Every normalized table gets at least one migration statement.
			assert.Equal(t, len(p.Normalized), len(p.Migration))

			seen := make(map[string]bool)
			for _, c := range p.Checks {
				assert.NotEmpty(t, c.Name)
				assert.Falsef(t, seen[c.Name], "duplicate check name %q", c.Name)
				seen[c.Name] = true

				switch c.Expect.Kind {
				case ExpectEmpty:
				case ExpectRows:
					assert.Positive(t, c.Expect.Rows)
				default:
					t.Errorf("check %q has unknown expectation kind %q", c.Name, c.Expect.Kind)
				}
			}
		})
	}
}

func TestBoyceCoddPointHasOverlappingKeys(t *testing.T) {
	t.Parallel()

	p, err := PointByNumber(4)
	require.NoError(t, err)

	report := p.Diagnose()
	require.Len(t, report.CandidateKeys, 2)
	assert.Contains(t, report.CandidateKeys, []string{"song_title", "engineer_name", "recorded_on"})
	assert.Contains(t, report.CandidateKeys, []string{"song_title", "studio_name", "recorded_on"})

	// Every attribute is prime, which is exactly why 3NF holds and BCNF is
	// the first form the determinant rule can catch.
	assert.ElementsMatch(t, p.Relation.Attributes, report.Prime)

	require.Len(t, report.Violations, 1)
	assert.Equal(t, normalform.BoyceCoddNF, report.Violations[0].Form)
	assert.Equal(t, "{engineer_name} -> {studio_name}", report.Violations[0].Dependency)
}

func TestFifthNormalFormPointPairwiseJoinsAreLossy(t *testing.T) {
	t.Parallel()

	p, err := PointByNumber(6)
	require.NoError(t, err)

	lossy := 0
	for _, c := range p.Checks {
		if strings.HasPrefix(c.Name, "pair_join_") {
			assert.Equal(t, ExpectRows, c.Expect.Kind)
			assert.Equal(t, 1, c.Expect.Rows)
			lossy++
		}
	}
	// All three binary projections must fail on their own; only the
	// three-way join is lossless.
	assert.Equal(t, 3, lossy)
}

func TestDefinitionRendersTargetForm(t *testing.T) {
	t.Parallel()

	wantNames := []string{"1NF", "2NF", "3NF", "BCNF", "4NF", "5NF"}
	for i, p := range Points() {
		def := p.Definition()
		assert.Equal(t, wantNames[i], def.TargetForm)
		assert.Equal(t, p.Number, def.Number)
		assert.Equal(t, def.Diagnosis.Relation, p.Relation.Name)
	}
}
