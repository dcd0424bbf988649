package services_test

import (
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formhub/formhub-go/formdef"
	"github.com/formhub/formhub-go/models"
	"github.com/formhub/formhub-go/repositories"
	"github.com/formhub/formhub-go/repositories/mock_repositories"
	"github.com/formhub/formhub-go/services"
)

func setupDynamicMocks(t *testing.T) (*services.DynamicFormService, *mock_repositories.MockDynamicRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mock_repositories.NewMockDynamicRepo(ctrl)
	repos := &repositories.Repos{Dynamic: mockRepo}
	return services.NewDynamicFormService(repos), mockRepo
}

func TestDynamicSubmit_PersistsWholeDefinition(t *testing.T) {
	svc, mockRepo := setupDynamicMocks(t)

	var stored *models.DynamicSubmission
	mockRepo.EXPECT().CreateDynamicSubmission(gomock.Any()).DoAndReturn(
		func(s *models.DynamicSubmission) error {
			stored = s
			return nil
		})

	def := formdef.FormDefinition{
		FormName: "Survey",
		Fields: []formdef.FieldDefinition{
			{ID: "f1", Label: "Name", Type: formdef.FieldTypeText, Required: true},
		},
	}

	errs, err := svc.Submit(def)
	require.NoError(t, err)
	require.False(t, errs.Any())

	var doc formdef.FormDefinition
	require.NoError(t, json.Unmarshal(stored.FormData, &doc))
	assert.Equal(t, "Survey", doc.FormName)
	require.Len(t, doc.Fields, 1)
	assert.Equal(t, formdef.FieldTypeText, doc.Fields[0].Type)
	assert.True(t, doc.Fields[0].Required)
}

func TestDynamicSubmit_NormalizesChoiceOptions(t *testing.T) {
	svc, mockRepo := setupDynamicMocks(t)

	var stored *models.DynamicSubmission
	mockRepo.EXPECT().CreateDynamicSubmission(gomock.Any()).DoAndReturn(
		func(s *models.DynamicSubmission) error {
			stored = s
			return nil
		})

	def := formdef.FormDefinition{
		FormName: "Survey",
		Fields: []formdef.FieldDefinition{
			{ID: "f1", Label: "Pick", Type: formdef.FieldTypeSelect}, // options absent
		},
	}

	errs, err := svc.Submit(def)
	require.NoError(t, err)
	require.False(t, errs.Any())

	var raw map[string]any
	require.NoError(t, json.Unmarshal(stored.FormData, &raw))
	fields := raw["fields"].([]any)
	field := fields[0].(map[string]any)
	opts, ok := field["options"]
	assert.True(t, ok, "choice field must carry an options list after finalize")
	assert.Empty(t, opts)
}

func TestDynamicSubmit_InvalidDefinition(t *testing.T) {
	svc, _ := setupDynamicMocks(t)

	errs, err := svc.Submit(formdef.FormDefinition{FormName: ""})
	assert.NoError(t, err)
	assert.Contains(t, errs, "formName")
}
