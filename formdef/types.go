package formdef

import "strings"

type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeEmail    FieldType = "email"
	FieldTypeNumber   FieldType = "number"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeRadio    FieldType = "radio"
	FieldTypeSelect   FieldType = "select"
)

var fieldTypes = map[FieldType]bool{
	FieldTypeText:     true,
	FieldTypeEmail:    true,
	FieldTypeNumber:   true,
	FieldTypeCheckbox: true,
	FieldTypeRadio:    true,
	FieldTypeSelect:   true,
}

// ValidType reports whether t is one of the supported field types.
func ValidType(t FieldType) bool {
	return fieldTypes[t]
}

// RequiresOptions reports whether fields of type t carry an options list.
func RequiresOptions(t FieldType) bool {
	return t == FieldTypeSelect || t == FieldTypeRadio || t == FieldTypeCheckbox
}

// FieldOption is one selectable choice of a select/radio/checkbox field.
// Value is always derived from Label, never edited on its own.
type FieldOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// OptionFromLabel derives the stored value from the display label:
// lower-cased, whitespace runs collapsed to a single underscore.
func OptionFromLabel(label string) FieldOption {
	value := strings.ToLower(strings.TrimSpace(label))
	value = strings.Join(strings.Fields(value), "_")
	return FieldOption{Label: label, Value: value}
}

type FieldDefinition struct {
	ID       string        `json:"id"`
	Label    string        `json:"label"`
	Type     FieldType     `json:"type"`
	Required bool          `json:"required"`
	Options  []FieldOption `json:"options"`
	Value    any           `json:"value,omitempty"`
}

// FormDefinition is the finalized snapshot handed to validation and
// persistence. Field order is presentation and submission order.
type FormDefinition struct {
	FormName string            `json:"formName"`
	Fields   []FieldDefinition `json:"fields"`
}
