package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/formhub/formhub-go/response"
	"github.com/formhub/formhub-go/services"
	"github.com/formhub/formhub-go/validation"
)

// respondSubmit maps a pipeline outcome onto the wire contract shared by
// every form kind: 200 {success:true}, 400 field errors, 409 duplicate
// submit, 500 opaque message.
func respondSubmit(c *gin.Context, errs validation.Errors, err error) {
	if err != nil {
		if errors.Is(err, services.ErrSubmissionInFlight) {
			c.JSON(http.StatusConflict, response.Failure("a submission is already in progress"))
			return
		}
		log.Printf("submission failed: %v", err)
		c.JSON(http.StatusInternalServerError, response.Failure("could not save the submission, please try again"))
		return
	}
	if errs.Any() {
		c.JSON(http.StatusBadRequest, response.Invalid(errs))
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}

func badRequestBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, response.Failure("invalid request body"))
}

func listLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 0 {
		return 20
	}
	return limit
}
