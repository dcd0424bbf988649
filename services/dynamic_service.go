package services

import (
	"encoding/json"

	"github.com/formhub/formhub-go/formdef"
	"github.com/formhub/formhub-go/models"
	"github.com/formhub/formhub-go/repositories"
	"github.com/formhub/formhub-go/validation"
	"gorm.io/datatypes"
)

type DynamicFormService struct {
	repo     repositories.DynamicRepo
	pipeline *Pipeline
}

func NewDynamicFormService(repos *repositories.Repos) *DynamicFormService {
	return &DynamicFormService{
		repo:     repos.Dynamic,
		pipeline: NewPipeline(noticeTTL()),
	}
}

// Submit normalizes, validates and persists a form definition as one opaque
// JSON document; it is never decomposed into columns.
func (s *DynamicFormService) Submit(def formdef.FormDefinition) (validation.Errors, error) {
	// Re-finalizing an already finalized definition is a no-op, so payloads
	// that skipped the builder still get options normalized.
	def = formdef.State{FormName: def.FormName, Fields: def.Fields}.Finalize()

	return s.pipeline.Run(
		func() validation.Errors { return validation.Definition(def) },
		func() error {
			doc, err := json.Marshal(def)
			if err != nil {
				return err
			}
			return s.repo.CreateDynamicSubmission(&models.DynamicSubmission{
				FormData: datatypes.JSON(doc),
			})
		},
		"Form '"+def.FormName+"' saved.",
	)
}

func (s *DynamicFormService) Recent(limit int) ([]models.DynamicSubmission, error) {
	return s.repo.ListDynamicSubmissions(limit)
}
