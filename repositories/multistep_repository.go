package repositories

import (
	"github.com/formhub/formhub-go/db"
	"github.com/formhub/formhub-go/models"
)

type MultiStepRepo interface {
	CreateMultiStepSubmission(s *models.MultiStepSubmission) error
	ListMultiStepSubmissions(limit int) ([]models.MultiStepSubmission, error)
}

type DBMultiStepRepo struct{}

func (r *DBMultiStepRepo) CreateMultiStepSubmission(s *models.MultiStepSubmission) error {
	return db.DB.Create(s).Error
}

func (r *DBMultiStepRepo) ListMultiStepSubmissions(limit int) ([]models.MultiStepSubmission, error) {
	var list []models.MultiStepSubmission
	query := db.DB.Order("created_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
