package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/formhub/formhub-go/dto"
	"github.com/formhub/formhub-go/response"
	"github.com/formhub/formhub-go/services"
	"github.com/formhub/formhub-go/validation"
)

type MultiStepHandler struct {
	service *services.MultiStepService
}

func NewMultiStepHandler(service *services.MultiStepService) *MultiStepHandler {
	return &MultiStepHandler{service: service}
}

// POST /api/forms/multistep
func (h *MultiStepHandler) Submit(c *gin.Context) {
	var input dto.MultiStepFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestBody(c)
		return
	}
	errs, err := h.service.Submit(input)
	respondSubmit(c, errs, err)
}

// POST /api/forms/multistep/steps/:step/validate
//
// Gates a wizard transition: only the named step's fields are validated and
// nothing is persisted.
func (h *MultiStepHandler) ValidateStep(c *gin.Context) {
	step, err := strconv.Atoi(c.Param("step"))
	if err != nil || step < 1 || step > validation.StepCount {
		c.JSON(http.StatusBadRequest, response.Failure("invalid step"))
		return
	}

	var input dto.MultiStepFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestBody(c)
		return
	}

	if errs := h.service.ValidateStep(validation.WizardStep(step), input); errs.Any() {
		c.JSON(http.StatusBadRequest, response.Invalid(errs))
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}

// GET /api/forms/multistep/submissions
func (h *MultiStepHandler) ListSubmissions(c *gin.Context) {
	list, err := h.service.Recent(listLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Failure("could not load submissions"))
		return
	}
	c.JSON(http.StatusOK, response.OK(list))
}
