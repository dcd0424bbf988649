package repositories

import (
	"github.com/formhub/formhub-go/db"
	"github.com/formhub/formhub-go/models"
)

type FileRepo interface {
	CreateFileSubmission(s *models.FileSubmission) error
	ListFileSubmissions(limit int) ([]models.FileSubmission, error)
}

type DBFileRepo struct{}

func (r *DBFileRepo) CreateFileSubmission(s *models.FileSubmission) error {
	return db.DB.Create(s).Error
}

func (r *DBFileRepo) ListFileSubmissions(limit int) ([]models.FileSubmission, error) {
	var list []models.FileSubmission
	query := db.DB.Order("created_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
