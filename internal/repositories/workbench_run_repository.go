package repositories

import (
	"errors"

	"melodybase/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkbenchRunRepository struct {
	db *gorm.DB
}

func NewWorkbenchRunRepository(db *gorm.DB) *WorkbenchRunRepository {
	return &WorkbenchRunRepository{db: db}
}

func (r *WorkbenchRunRepository) Create(run *models.WorkbenchRun) error {
	return r.db.Create(run).Error
}

// List returns recent runs, newest first. Pass pointNumber 0 for all points.
func (r *WorkbenchRunRepository) List(pointNumber int, limit int) ([]models.WorkbenchRun, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	q := r.db.Order("created_at DESC").Limit(limit)
	if pointNumber > 0 {
		q = q.Where("point_number = ?", pointNumber)
	}

	var runs []models.WorkbenchRun
	if err := q.Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}

func (r *WorkbenchRunRepository) FindByID(id uuid.UUID) (*models.WorkbenchRun, error) {
	var run models.WorkbenchRun
	err := r.db.Where("id = ?", id).First(&run).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &run, nil
}
