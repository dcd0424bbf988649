package services

import (
	"errors"
	"sync"

	"github.com/formhub/formhub-go/dto"
	"github.com/formhub/formhub-go/formdef"
	"github.com/formhub/formhub-go/validation"
)

var ErrFieldNotFound = errors.New("field not found")

// BuilderService owns the single in-memory editing session of the dynamic
// form builder. Operations go through an immutable formdef.State; the mutex
// only guards swapping the current snapshot.
type BuilderService struct {
	mu      sync.Mutex
	state   formdef.State
	gen     formdef.IDGenerator
	dynamic *DynamicFormService
}

func NewBuilderService(dynamic *DynamicFormService, gen formdef.IDGenerator) *BuilderService {
	return &BuilderService{
		state:   formdef.NewState(),
		gen:     gen,
		dynamic: dynamic,
	}
}

// Snapshot returns the current session state plus its non-blocking warnings.
func (s *BuilderService) Snapshot() (formdef.State, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.state.Warnings()
}

func (s *BuilderService) Rename(input dto.RenameFormDTO) (formdef.State, validation.Errors) {
	if errs := validation.Struct(input); errs.Any() {
		return s.current(), errs
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.Rename(input.FormName)
	return s.state, nil
}

// SaveField adds a new field or, when the payload carries the id of the
// current edit target, replaces it in place. Option labels are derived into
// label/value pairs here; values are never supplied by the client.
func (s *BuilderService) SaveField(input dto.SaveFieldDTO) (formdef.State, validation.Errors) {
	if errs := validation.Struct(input); errs.Any() {
		return s.current(), errs
	}
	if !formdef.ValidType(input.Type) {
		errs := validation.Errors{}
		errs.Add("type", "unknown field type '"+string(input.Type)+"'")
		return s.current(), errs
	}

	field := formdef.FieldDefinition{
		ID:       input.ID,
		Label:    input.Label,
		Type:     input.Type,
		Required: input.Required,
	}
	if formdef.RequiresOptions(input.Type) {
		field.Options = make([]formdef.FieldOption, 0, len(input.OptionLabels))
		for _, label := range input.OptionLabels {
			field.Options = append(field.Options, formdef.OptionFromLabel(label))
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	field = formdef.NewField(s.gen, field)
	s.state = s.state.AddOrUpdateField(field)
	return s.state, nil
}

func (s *BuilderService) StartEdit(id string) (formdef.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.state.Field(id); !ok {
		return s.state, ErrFieldNotFound
	}
	s.state = s.state.StartEdit(id)
	return s.state, nil
}

func (s *BuilderService) CancelEdit() formdef.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.CancelEdit()
	return s.state
}

func (s *BuilderService) RemoveField(id string) (formdef.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.state.Field(id); !ok {
		return s.state, ErrFieldNotFound
	}
	s.state = s.state.RemoveField(id)
	return s.state, nil
}

// Save finalizes the session and hands the snapshot to the dynamic form
// pipeline. On success the working state is cleared for the next form.
func (s *BuilderService) Save() (validation.Errors, error) {
	s.mu.Lock()
	def := s.state.Finalize()
	s.mu.Unlock()

	errs, err := s.dynamic.Submit(def)
	if err == nil && !errs.Any() {
		s.mu.Lock()
		s.state = formdef.NewState()
		s.mu.Unlock()
	}
	return errs, err
}

func (s *BuilderService) current() formdef.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
