package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"melodybase/internal/models"
	"melodybase/internal/repositories"
	"melodybase/internal/workbench"
)

type WorkbenchService struct {
	runner  *workbench.Runner
	runRepo *repositories.WorkbenchRunRepository
}

func NewWorkbenchService(runner *workbench.Runner, runRepo *repositories.WorkbenchRunRepository) *WorkbenchService {
	return &WorkbenchService{
		runner:  runner,
		runRepo: runRepo,
	}
}

// Points lists every worked example with its diagnosis and full SQL.
func (s *WorkbenchService) Points() []workbench.Definition {
	points := workbench.Points()
	defs := make([]workbench.Definition, 0, len(points))
	for _, p := range points {
		defs = append(defs, p.Definition())
	}
	return defs
}

func (s *WorkbenchService) Point(number int) (workbench.Definition, error) {
	p, err := workbench.PointByNumber(number)
	if err != nil {
		return workbench.Definition{}, err
	}
	return p.Definition(), nil
}

// RunPoint executes a point in a scratch schema and records the outcome.
// History write failures are logged, not returned: the report is already in
// hand and a lost audit row should not fail the request.
func (s *WorkbenchService) RunPoint(ctx context.Context, number int) (*workbench.Report, error) {
	p, err := workbench.PointByNumber(number)
	if err != nil {
		return nil, err
	}

	report, err := s.runner.Run(ctx, p)
	if err != nil {
		return nil, err
	}

	failed := 0
	for _, check := range report.Checks {
		if !check.Passed {
			failed++
		}
	}

	encoded, err := json.Marshal(report)
	if err != nil {
		log.Printf("failed to encode workbench report for point %d: %v", number, err)
		return report, nil
	}

	run := &models.WorkbenchRun{
		PointNumber:  report.PointNumber,
		TargetForm:   report.TargetForm,
		Passed:       report.Passed,
		ChecksTotal:  len(report.Checks),
		ChecksFailed: failed,
		DurationMs:   report.DurationMs,
		ReportJSON:   string(encoded),
	}
	if err := s.runRepo.Create(run); err != nil {
		log.Printf("failed to record workbench run for point %d: %v", number, err)
	}

	return report, nil
}

// RunHistory lists stored runs, newest first. pointNumber 0 means all
// points.
func (s *WorkbenchService) RunHistory(pointNumber, limit int) ([]models.WorkbenchRun, error) {
	return s.runRepo.List(pointNumber, limit)
}

// RunDetail returns a stored run together with its decoded report. Both
// return values are nil when the run does not exist.
func (s *WorkbenchService) RunDetail(id uuid.UUID) (*models.WorkbenchRun, *workbench.Report, error) {
	run, err := s.runRepo.FindByID(id)
	if err != nil {
		return nil, nil, err
	}
	if run == nil {
		return nil, nil, nil
	}

	var report workbench.Report
	if err := json.Unmarshal([]byte(run.ReportJSON), &report); err != nil {
		return nil, nil, fmt.Errorf("failed to decode stored report: %w", err)
	}
	return run, &report, nil
}
