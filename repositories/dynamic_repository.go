package repositories

import (
	"github.com/formhub/formhub-go/db"
	"github.com/formhub/formhub-go/models"
)

type DynamicRepo interface {
	CreateDynamicSubmission(s *models.DynamicSubmission) error
	ListDynamicSubmissions(limit int) ([]models.DynamicSubmission, error)
}

type DBDynamicRepo struct{}

func (r *DBDynamicRepo) CreateDynamicSubmission(s *models.DynamicSubmission) error {
	return db.DB.Create(s).Error
}

func (r *DBDynamicRepo) ListDynamicSubmissions(limit int) ([]models.DynamicSubmission, error) {
	var list []models.DynamicSubmission
	query := db.DB.Order("created_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
