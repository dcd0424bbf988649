package services

import (
	"encoding/json"

	"github.com/formhub/formhub-go/dto"
	"github.com/formhub/formhub-go/models"
	"github.com/formhub/formhub-go/repositories"
	"github.com/formhub/formhub-go/validation"
	"gorm.io/datatypes"
)

type MultiStepService struct {
	repo     repositories.MultiStepRepo
	pipeline *Pipeline
}

func NewMultiStepService(repos *repositories.Repos) *MultiStepService {
	return &MultiStepService{
		repo:     repos.MultiStep,
		pipeline: NewPipeline(noticeTTL()),
	}
}

// ValidateStep gates a wizard transition. Only the named step's fields are
// checked, so a later step may still hold invalid values while the user
// moves forward through the earlier ones. Nothing is persisted.
func (s *MultiStepService) ValidateStep(step validation.WizardStep, input dto.MultiStepFormDTO) validation.Errors {
	return validation.Step(step, input)
}

func (s *MultiStepService) Submit(input dto.MultiStepFormDTO) (validation.Errors, error) {
	return s.pipeline.Run(
		func() validation.Errors { return validation.AllSteps(input) },
		func() error {
			prefs, err := json.Marshal(input.Preferences)
			if err != nil {
				return err
			}
			sub := &models.MultiStepSubmission{
				FirstName:    input.FirstName,
				LastName:     input.LastName,
				Email:        input.Email,
				AddressLine1: input.AddressLine1,
				AddressLine2: optional(input.AddressLine2),
				City:         input.City,
				State:        input.State,
				PostalCode:   input.PostalCode,
				Country:      input.Country,
				Phone:        optional(input.Phone),
				Preferences:  datatypes.JSON(prefs),
			}
			return s.repo.CreateMultiStepSubmission(sub)
		},
		"Registration complete. Thank you!",
	)
}

func (s *MultiStepService) Recent(limit int) ([]models.MultiStepSubmission, error) {
	return s.repo.ListMultiStepSubmissions(limit)
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
