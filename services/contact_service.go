package services

import (
	"github.com/formhub/formhub-go/dto"
	"github.com/formhub/formhub-go/models"
	"github.com/formhub/formhub-go/repositories"
	"github.com/formhub/formhub-go/validation"
)

type ContactService struct {
	repo     repositories.ContactRepo
	pipeline *Pipeline
}

func NewContactService(repos *repositories.Repos) *ContactService {
	return &ContactService{
		repo:     repos.Contact,
		pipeline: NewPipeline(noticeTTL()),
	}
}

func (s *ContactService) Submit(input dto.ContactFormDTO) (validation.Errors, error) {
	return s.pipeline.Run(
		func() validation.Errors { return validation.Struct(input) },
		func() error {
			sub := &models.ContactSubmission{
				Name:    input.Name,
				Email:   input.Email,
				Subject: input.Subject,
				Message: input.Message,
			}
			return s.repo.CreateContactSubmission(sub)
		},
		"Thank you! Your message has been sent.",
	)
}

func (s *ContactService) Recent(limit int) ([]models.ContactSubmission, error) {
	return s.repo.ListContactSubmissions(limit)
}
