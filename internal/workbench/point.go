// Package workbench holds the normalization worked examples. Each point
// starts from a deliberately denormalized table, diagnoses the normal form it
// breaks, decomposes it, migrates the rows, and proves the decomposition with
// SQL checks. Points run inside throwaway scratch schemas so they never touch
// the live catalog.
package workbench

import (
	"fmt"

	"melodybase/internal/normalform"
)

// ExpectKind says how a check's row count is judged.
type ExpectKind string

const (
	// ExpectEmpty passes when the check query returns zero rows.
	ExpectEmpty ExpectKind = "empty"
	// ExpectRows passes when the check query returns an exact row count.
	ExpectRows ExpectKind = "rows"
)

type Expectation struct {
	Kind ExpectKind `json:"kind"`
	Rows int        `json:"rows,omitempty"`
}

func (e Expectation) Describe() string {
	switch e.Kind {
	case ExpectEmpty:
		return "zero rows"
	case ExpectRows:
		return fmt.Sprintf("exactly %d rows", e.Rows)
	default:
		return fmt.Sprintf("unknown expectation %q", string(e.Kind))
	}
}

// Met reports whether a row count satisfies the expectation.
func (e Expectation) Met(rows int) bool {
	switch e.Kind {
	case ExpectEmpty:
		return rows == 0
	case ExpectRows:
		return rows == e.Rows
	default:
		return false
	}
}

// Statement is one labelled SQL statement of a worked example.
type Statement struct {
	Label string `json:"label"`
	SQL   string `json:"sql"`
}

// Check is a verification query with a declared expectation.
type Check struct {
	Name   string      `json:"name"`
	SQL    string      `json:"sql"`
	Expect Expectation `json:"expect"`
}

// Point is one self-contained worked example: the denormalized design, the
// declared dependencies, the normalized replacement, the row migration, and
// the checks that prove the decomposition is faithful.
type Point struct {
	Number       int
	TargetForm   normalform.Form
	Title        string
	Summary      string
	Relation     normalform.Relation
	Dependencies normalform.Dependencies
	Denormalized Statement
	SampleData   []Statement
	Normalized   []Statement
	Migration    []Statement
	Checks       []Check
}

// Diagnose runs the dependency analysis over the point's declared
// dependencies. The diagnosis is derived, never hard-coded, so the analysis
// engine and the worked examples cannot drift apart.
func (p Point) Diagnose() normalform.Report {
	return normalform.Analyze(p.Relation, p.Dependencies)
}

// Definition is the machine-readable view of a point served by the API.
type Definition struct {
	Number       int                     `json:"number"`
	TargetForm   string                  `json:"target_form"`
	Title        string                  `json:"title"`
	Summary      string                  `json:"summary"`
	Relation     normalform.Relation     `json:"relation"`
	Dependencies normalform.Dependencies `json:"dependencies"`
	Diagnosis    normalform.Report       `json:"diagnosis"`
	Denormalized Statement               `json:"denormalized"`
	SampleData   []Statement             `json:"sample_data"`
	Normalized   []Statement             `json:"normalized"`
	Migration    []Statement             `json:"migration"`
	Checks       []Check                 `json:"checks"`
}

func (p Point) Definition() Definition {
	return Definition{
		Number:       p.Number,
		TargetForm:   p.TargetForm.String(),
		Title:        p.Title,
		Summary:      p.Summary,
		Relation:     p.Relation,
		Dependencies: p.Dependencies,
		Diagnosis:    p.Diagnose(),
		Denormalized: p.Denormalized,
		SampleData:   p.SampleData,
		Normalized:   p.Normalized,
		Migration:    p.Migration,
		Checks:       p.Checks,
	}
}
