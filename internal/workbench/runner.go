package workbench

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"melodybase/internal/normalform"
)

// Runner executes worked examples against Postgres. Every run gets a fresh
// scratch schema that is dropped afterwards, so runs are isolated from each
// other and from the live catalog.
type Runner struct {
	db *sql.DB
}

func NewRunner(db *sql.DB) *Runner {
	return &Runner{db: db}
}

// CheckResult is the outcome of one verification query.
type CheckResult struct {
	Name     string `json:"name"`
	SQL      string `json:"sql"`
	Expected string `json:"expected"`
	Rows     int    `json:"rows"`
	Passed   bool   `json:"passed"`
	Error    string `json:"error,omitempty"`
}

// Report is the outcome of running a point end to end.
type Report struct {
	PointNumber int               `json:"point_number"`
	TargetForm  string            `json:"target_form"`
	Title       string            `json:"title"`
	Schema      string            `json:"schema"`
	Diagnosis   normalform.Report `json:"diagnosis"`
	Checks      []CheckResult     `json:"checks"`
	Passed      bool              `json:"passed"`
	StartedAt   time.Time         `json:"started_at"`
	DurationMs  int64             `json:"duration_ms"`
}

// Run builds the point's denormalized table, loads the sample rows, applies
// the decomposition and migration, and evaluates every check. Setup failures
// abort the run; a failing or erroring check is recorded and the run
// continues, so the report always covers the full check list.
func (r *Runner) Run(ctx context.Context, p Point) (*Report, error) {
	schema := scratchSchemaName()
	started := time.Now().UTC()

	// Pin one connection so SET search_path holds for the whole run.
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("point %d: acquire connection: %w", p.Number, err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "CREATE SCHEMA "+pq.QuoteIdentifier(schema)); err != nil {
		return nil, fmt.Errorf("point %d: create schema %s: %w", p.Number, schema, err)
	}
	defer r.dropSchema(schema)

	// The scratch schema is the only one on the path. Table names shared
	// with the live catalog must resolve here, never in public.
	if _, err := conn.ExecContext(ctx, "SET search_path TO "+pq.QuoteIdentifier(schema)); err != nil {
		return nil, fmt.Errorf("point %d: set search_path: %w", p.Number, err)
	}

	log.Printf("workbench: running point %d (%s) in schema %s", p.Number, p.TargetForm, schema)

	steps := make([]Statement, 0, 1+len(p.SampleData)+len(p.Normalized)+len(p.Migration))
	steps = append(steps, p.Denormalized)
	steps = append(steps, p.SampleData...)
	steps = append(steps, p.Normalized...)
	steps = append(steps, p.Migration...)
	for _, st := range steps {
		if _, err := conn.ExecContext(ctx, st.SQL); err != nil {
			return nil, fmt.Errorf("point %d: %s: %w", p.Number, st.Label, err)
		}
	}

	report := &Report{
		PointNumber: p.Number,
		TargetForm:  p.TargetForm.String(),
		Title:       p.Title,
		Schema:      schema,
		Diagnosis:   p.Diagnose(),
		Passed:      true,
		StartedAt:   started,
	}

	for _, check := range p.Checks {
		result := CheckResult{
			Name:     check.Name,
			SQL:      check.SQL,
			Expected: check.Expect.Describe(),
		}

		var rows int
		if err := conn.QueryRowContext(ctx, countQuery(check.SQL)).Scan(&rows); err != nil {
			result.Error = err.Error()
		} else {
			result.Rows = rows
			result.Passed = check.Expect.Met(rows)
		}
		if !result.Passed {
			report.Passed = false
		}
		report.Checks = append(report.Checks, result)
	}

	report.DurationMs = time.Since(started).Milliseconds()
	return report, nil
}

// dropSchema cleans up with its own deadline so a cancelled request context
// cannot leak scratch schemas.
func (r *Runner) dropSchema(schema string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, "DROP SCHEMA IF EXISTS "+pq.QuoteIdentifier(schema)+" CASCADE"); err != nil {
		log.Printf("workbench: failed to drop schema %s: %v", schema, err)
	}
}

// countQuery wraps a check query so only its row count travels back.
func countQuery(checkSQL string) string {
	body := strings.TrimSuffix(strings.TrimSpace(checkSQL), ";")
	return fmt.Sprintf("SELECT count(*) FROM (\n%s\n) AS check_rows", body)
}

func scratchSchemaName() string {
	return "workbench_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
