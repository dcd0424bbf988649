package handlers

import "github.com/formhub/formhub-go/services"

type Handlers struct {
	Contact   *ContactHandler
	MultiStep *MultiStepHandler
	Dynamic   *DynamicHandler
	Upload    *UploadHandler
	Builder   *BuilderHandler
}

func New(svc *services.Services) *Handlers {
	return &Handlers{
		Contact:   NewContactHandler(svc.Contact),
		MultiStep: NewMultiStepHandler(svc.MultiStep),
		Dynamic:   NewDynamicHandler(svc.Dynamic),
		Upload:    NewUploadHandler(svc.Upload),
		Builder:   NewBuilderHandler(svc.Builder),
	}
}
