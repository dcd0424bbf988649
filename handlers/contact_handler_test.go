package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formhub/formhub-go/handlers"
	"github.com/formhub/formhub-go/repositories"
	"github.com/formhub/formhub-go/repositories/mock_repositories"
	"github.com/formhub/formhub-go/services"
)

func setupContactRouter(t *testing.T) (*gin.Engine, *mock_repositories.MockContactRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mock_repositories.NewMockContactRepo(ctrl)
	svc := services.NewContactService(&repositories.Repos{Contact: mockRepo})
	h := handlers.NewContactHandler(svc)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/forms/contact", h.Submit)
	return r, mockRepo
}

func post(r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestContactEndpoint_Success(t *testing.T) {
	r, mockRepo := setupContactRouter(t)
	mockRepo.EXPECT().CreateContactSubmission(gomock.Any()).Return(nil)

	w := post(r, "/api/forms/contact", map[string]any{
		"name":    "Ada",
		"email":   "ada@example.com",
		"subject": "Hello",
		"message": "A long enough message.",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}

func TestContactEndpoint_ValidationErrors(t *testing.T) {
	r, _ := setupContactRouter(t)

	w := post(r, "/api/forms/contact", map[string]any{
		"name":    "Ada",
		"email":   "nope",
		"subject": "Hello",
		"message": "short",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool                `json:"success"`
		Errors  map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, []string{"email must be a valid email address"}, resp.Errors["email"])
	assert.Equal(t, []string{"message must be at least 10 characters"}, resp.Errors["message"])
}

func TestContactEndpoint_StorageFailure(t *testing.T) {
	r, mockRepo := setupContactRouter(t)
	mockRepo.EXPECT().CreateContactSubmission(gomock.Any()).Return(errors.New("pq: down"))

	w := post(r, "/api/forms/contact", map[string]any{
		"name":    "Ada",
		"email":   "ada@example.com",
		"subject": "Hello",
		"message": "A long enough message.",
	})

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Message)
	assert.NotContains(t, resp.Message, "pq:", "raw storage errors are not exposed")
}

func TestContactEndpoint_MalformedBody(t *testing.T) {
	r, _ := setupContactRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/forms/contact", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
