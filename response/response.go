package response

import "github.com/formhub/formhub-go/validation"

type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// ValidationErrorResponse carries field-scoped messages; shown inline next
// to the offending inputs.
type ValidationErrorResponse struct {
	Success bool              `json:"success"`
	Errors  validation.Errors `json:"errors"`
}

// FailureResponse carries a single unstructured message for failures the
// user cannot correct field by field.
type FailureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func OK(data any) SuccessResponse {
	return SuccessResponse{Success: true, Data: data}
}

func Invalid(errs validation.Errors) ValidationErrorResponse {
	return ValidationErrorResponse{Success: false, Errors: errs}
}

func Failure(message string) FailureResponse {
	return FailureResponse{Success: false, Message: message}
}
