package workbench

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

func setupTestDB(t *testing.T) *sql.DB {
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

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.PingContext(ctx))
	return db
}

// Every worked example must pass every one of its own checks against a real
// Postgres. This is the proof that the decompositions and migrations do what
// the summaries claim.
func TestRunnerAllPointsPass(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db)

	for _, p := range Points() {
		p := p
		t.Run(p.Relation.Name, func(t *testing.T) {
			report, err := runner.Run(context.Background(), p)
			require.NoError(t, err)

			assert.Equal(t, p.Number, report.PointNumber)
			assert.Equal(t, p.TargetForm.String(), report.TargetForm)
			require.Len(t, report.Checks, len(p.Checks))
			for _, c := range report.Checks {
				assert.Empty(t, c.Error, "check %s errored", c.Name)
				assert.Truef(t, c.Passed, "check %s: got %d rows, expected %s", c.Name, c.Rows, c.Expected)
			}
			assert.True(t, report.Passed)
			assert.GreaterOrEqual(t, report.DurationMs, int64(0))
		})
	}
}

func TestRunnerDropsScratchSchema(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	report, err := NewRunner(db).Run(ctx, Points()[0])
	require.NoError(t, err)
	require.NotEmpty(t, report.Schema)

	var count int
	err = db.QueryRowContext(ctx,
		`SELECT count(*) FROM information_schema.schemata WHERE schema_name = $1`,
		report.Schema,
	).Scan(&count)
	require.NoError(t, err)
	assert.Zero(t, count, "scratch schema %s survived the run", report.Schema)
}

func TestRunnerReportsFailingCheck(t *testing.T) {
	db := setupTestDB(t)

	p, err := PointByNumber(3)
	require.NoError(t, err)
	p.Checks = append(p.Checks, Check{
		Name:   "deliberately_wrong_count",
		SQL:    "SELECT format_code FROM formats",
		Expect: Expectation{Kind: ExpectRows, Rows: 99},
	})

	report, err := NewRunner(db).Run(context.Background(), p)
	require.NoError(t, err)
	assert.False(t, report.Passed)

	last := report.Checks[len(report.Checks)-1]
	assert.Equal(t, "deliberately_wrong_count", last.Name)
	assert.False(t, last.Passed)
	assert.Equal(t, 3, last.Rows)
}

func TestRunnerSetupErrorAborts(t *testing.T) {
	db := setupTestDB(t)

	p, err := PointByNumber(5)
	require.NoError(t, err)
	p.Migration = append(p.Migration, Statement{
		Label: "broken statement",
		SQL:   "INSERT INTO does_not_exist VALUES (1)",
	})

	report, err := NewRunner(db).Run(context.Background(), p)
	assert.Nil(t, report)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken statement")
}
