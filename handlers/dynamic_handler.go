package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formhub/formhub-go/formdef"
	"github.com/formhub/formhub-go/response"
	"github.com/formhub/formhub-go/services"
)

type DynamicHandler struct {
	service *services.DynamicFormService
}

func NewDynamicHandler(service *services.DynamicFormService) *DynamicHandler {
	return &DynamicHandler{service: service}
}

// POST /api/forms/dynamic
//
// Accepts a complete form definition, e.g. one built client-side rather
// than through the builder session.
func (h *DynamicHandler) Submit(c *gin.Context) {
	var def formdef.FormDefinition
	if err := c.ShouldBindJSON(&def); err != nil {
		badRequestBody(c)
		return
	}
	errs, err := h.service.Submit(def)
	respondSubmit(c, errs, err)
}

// GET /api/forms/dynamic/submissions
func (h *DynamicHandler) ListSubmissions(c *gin.Context) {
	list, err := h.service.Recent(listLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Failure("could not load submissions"))
		return
	}
	c.JSON(http.StatusOK, response.OK(list))
}
