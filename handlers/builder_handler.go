package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formhub/formhub-go/dto"
	"github.com/formhub/formhub-go/formdef"
	"github.com/formhub/formhub-go/response"
	"github.com/formhub/formhub-go/services"
)

type BuilderHandler struct {
	service *services.BuilderService
}

func NewBuilderHandler(service *services.BuilderService) *BuilderHandler {
	return &BuilderHandler{service: service}
}

type builderView struct {
	FormName  string                    `json:"formName"`
	Fields    []formdef.FieldDefinition `json:"fields"`
	EditingID string                    `json:"editingId,omitempty"`
	Warnings  []string                  `json:"warnings,omitempty"`
}

func viewOf(state formdef.State, warnings []string) builderView {
	fields := state.Fields
	if fields == nil {
		fields = []formdef.FieldDefinition{}
	}
	return builderView{
		FormName:  state.FormName,
		Fields:    fields,
		EditingID: state.EditingID,
		Warnings:  warnings,
	}
}

// GET /api/builder
func (h *BuilderHandler) Get(c *gin.Context) {
	state, warnings := h.service.Snapshot()
	c.JSON(http.StatusOK, response.OK(viewOf(state, warnings)))
}

// PUT /api/builder/name
func (h *BuilderHandler) Rename(c *gin.Context) {
	var input dto.RenameFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestBody(c)
		return
	}
	state, errs := h.service.Rename(input)
	if errs.Any() {
		c.JSON(http.StatusBadRequest, response.Invalid(errs))
		return
	}
	c.JSON(http.StatusOK, response.OK(viewOf(state, state.Warnings())))
}

// POST /api/builder/fields
func (h *BuilderHandler) SaveField(c *gin.Context) {
	var input dto.SaveFieldDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestBody(c)
		return
	}
	state, errs := h.service.SaveField(input)
	if errs.Any() {
		c.JSON(http.StatusBadRequest, response.Invalid(errs))
		return
	}
	c.JSON(http.StatusOK, response.OK(viewOf(state, state.Warnings())))
}

// POST /api/builder/fields/:id/edit
func (h *BuilderHandler) StartEdit(c *gin.Context) {
	state, err := h.service.StartEdit(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrFieldNotFound) {
			c.JSON(http.StatusNotFound, response.Failure("field not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Failure(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.OK(viewOf(state, state.Warnings())))
}

// POST /api/builder/edit/cancel
func (h *BuilderHandler) CancelEdit(c *gin.Context) {
	state := h.service.CancelEdit()
	c.JSON(http.StatusOK, response.OK(viewOf(state, state.Warnings())))
}

// DELETE /api/builder/fields/:id
func (h *BuilderHandler) RemoveField(c *gin.Context) {
	state, err := h.service.RemoveField(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrFieldNotFound) {
			c.JSON(http.StatusNotFound, response.Failure("field not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Failure(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.OK(viewOf(state, state.Warnings())))
}

// POST /api/builder/save
func (h *BuilderHandler) Save(c *gin.Context) {
	errs, err := h.service.Save()
	respondSubmit(c, errs, err)
}
