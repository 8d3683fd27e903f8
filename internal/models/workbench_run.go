package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkbenchRun maps to the workbench_runs table and records one execution of
// a normalization worked example. The full report is kept as JSON text so the
// API can replay old runs without re-executing them.
type WorkbenchRun struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PointNumber  int       `gorm:"not null;index" json:"point_number"`
	TargetForm   string    `gorm:"type:text;not null" json:"target_form"`
	Passed       bool      `gorm:"not null" json:"passed"`
	ChecksTotal  int       `gorm:"not null" json:"checks_total"`
	ChecksFailed int       `gorm:"not null" json:"checks_failed"`
	DurationMs   int64     `gorm:"not null" json:"duration_ms"`
	ReportJSON   string    `gorm:"type:text;not null" json:"-"`
	CreatedAt    time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
}

func (WorkbenchRun) TableName() string {
	return "workbench_runs"
}

func (r *WorkbenchRun) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
