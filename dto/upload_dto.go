package dto

// FileUploadDTO carries the text fields of the multipart upload form. The
// file part itself is validated separately against the configured
// constraints.
type FileUploadDTO struct {
	Name  string `json:"name" form:"name" validate:"required,max=100"`
	Email string `json:"email" form:"email" validate:"required,email"`
}
