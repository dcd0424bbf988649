package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formhub/formhub-go/dto"
	"github.com/formhub/formhub-go/response"
	"github.com/formhub/formhub-go/services"
)

type ContactHandler struct {
	service *services.ContactService
}

func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// POST /api/forms/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var input dto.ContactFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestBody(c)
		return
	}
	errs, err := h.service.Submit(input)
	respondSubmit(c, errs, err)
}

// GET /api/forms/contact/submissions
func (h *ContactHandler) ListSubmissions(c *gin.Context) {
	list, err := h.service.Recent(listLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Failure("could not load submissions"))
		return
	}
	c.JSON(http.StatusOK, response.OK(list))
}
