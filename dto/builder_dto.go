package dto

import "github.com/formhub/formhub-go/formdef"

type RenameFormDTO struct {
	FormName string `json:"formName" validate:"required,max=200"`
}

// SaveFieldDTO is the builder's add-or-update payload. ID is empty for a
// brand new field; options are given as labels and derived into
// label/value pairs server-side.
type SaveFieldDTO struct {
	ID           string            `json:"id"`
	Label        string            `json:"label" validate:"required,max=200"`
	Type         formdef.FieldType `json:"type" validate:"required"`
	Required     bool              `json:"required"`
	OptionLabels []string          `json:"optionLabels"`
}
