package repositories

import (
	"github.com/formhub/formhub-go/db"
	"github.com/formhub/formhub-go/models"
)

type ContactRepo interface {
	CreateContactSubmission(s *models.ContactSubmission) error
	ListContactSubmissions(limit int) ([]models.ContactSubmission, error)
}

type DBContactRepo struct{}

func (r *DBContactRepo) CreateContactSubmission(s *models.ContactSubmission) error {
	return db.DB.Create(s).Error
}

func (r *DBContactRepo) ListContactSubmissions(limit int) ([]models.ContactSubmission, error) {
	var list []models.ContactSubmission
	query := db.DB.Order("created_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
