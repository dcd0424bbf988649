package services

import (
	"time"

	"github.com/formhub/formhub-go/config"
	"github.com/formhub/formhub-go/formdef"
	"github.com/formhub/formhub-go/repositories"
)

type Services struct {
	Contact   *ContactService
	MultiStep *MultiStepService
	Dynamic   *DynamicFormService
	Upload    *UploadService
	Builder   *BuilderService
}

func New(repos *repositories.Repos, store ObjectStore) *Services {
	dynamic := NewDynamicFormService(repos)
	return &Services{
		Contact:   NewContactService(repos),
		MultiStep: NewMultiStepService(repos),
		Dynamic:   dynamic,
		Upload:    NewUploadService(repos, store),
		Builder:   NewBuilderService(dynamic, formdef.UUIDGenerator{}),
	}
}

func noticeTTL() time.Duration {
	return time.Duration(config.NoticeTTLSeconds) * time.Second
}
