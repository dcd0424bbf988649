package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/formhub/formhub-go/config"
	"github.com/formhub/formhub-go/dto"
	"github.com/formhub/formhub-go/models"
	"github.com/formhub/formhub-go/repositories"
	"github.com/formhub/formhub-go/utils"
	"github.com/formhub/formhub-go/validation"
)

// ObjectStore is the content store the upload pipeline writes binaries to
// before the referencing row is inserted.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string, progress func(percent int)) error
}

type UploadService struct {
	repo        repositories.FileRepo
	store       ObjectStore
	constraints validation.FileConstraints
	pipeline    *Pipeline
}

func NewUploadService(repos *repositories.Repos, store ObjectStore) *UploadService {
	return &UploadService{
		repo:  repos.File,
		store: store,
		constraints: validation.FileConstraints{
			AllowedTypes: config.AllowedUploadTypes,
			MaxBytes:     config.MaxUploadBytes,
		},
		pipeline: NewPipeline(noticeTTL()),
	}
}

type UploadInput struct {
	Form        dto.FileUploadDTO
	FileName    string
	FileSize    int64
	ContentType string
	Body        io.Reader
	// Progress, when set, receives the transfer percentage (0-100) as the
	// binary is written. Informational only.
	Progress func(percent int)
}

func (s *UploadService) Submit(ctx context.Context, input UploadInput) (validation.Errors, error) {
	return s.pipeline.Run(
		func() validation.Errors {
			errs := validation.Struct(input.Form)
			errs.Merge(s.constraints.CheckFile(input.ContentType, input.FileSize))
			return errs
		},
		func() error {
			key := utils.StoredObjectName(input.FileName, time.Now())
			if err := s.store.Put(ctx, key, input.Body, input.FileSize, input.ContentType, input.Progress); err != nil {
				return fmt.Errorf("storing upload: %w", err)
			}
			// Known gap: if this insert fails the object written above is
			// orphaned in the bucket. No compensating delete is attempted.
			return s.repo.CreateFileSubmission(&models.FileSubmission{
				Name:     input.Form.Name,
				Email:    input.Form.Email,
				FileName: input.FileName,
				FilePath: key,
				FileSize: input.FileSize,
				FileType: input.ContentType,
			})
		},
		"Your file has been uploaded.",
	)
}

func (s *UploadService) Recent(limit int) ([]models.FileSubmission, error) {
	return s.repo.ListFileSubmissions(limit)
}
