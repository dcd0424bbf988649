package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formhub/formhub-go/dto"
	"github.com/formhub/formhub-go/response"
	"github.com/formhub/formhub-go/services"
)

type UploadHandler struct {
	service *services.UploadService
}

func NewUploadHandler(service *services.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// POST /api/forms/upload (multipart/form-data with a "file" part)
func (h *UploadHandler) Submit(c *gin.Context) {
	var input dto.FileUploadDTO
	if err := c.ShouldBind(&input); err != nil {
		badRequestBody(c)
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Failure("missing file"))
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Failure("could not read the uploaded file"))
		return
	}
	defer file.Close()

	errs, err := h.service.Submit(c.Request.Context(), services.UploadInput{
		Form:        input,
		FileName:    header.Filename,
		FileSize:    header.Size,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
		Progress: func(percent int) {
			log.Printf("upload %s: %d%%", header.Filename, percent)
		},
	})
	respondSubmit(c, errs, err)
}

// GET /api/forms/upload/submissions
func (h *UploadHandler) ListSubmissions(c *gin.Context) {
	list, err := h.service.Recent(listLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Failure("could not load submissions"))
		return
	}
	c.JSON(http.StatusOK, response.OK(list))
}
