package validation

import (
	"fmt"

	"github.com/formhub/formhub-go/formdef"
)

// Definition validates a finalized form definition before it is persisted.
// Duplicate labels are allowed; only ids must be unique. An empty options
// list on a choice field is allowed here (the builder surfaces it as a
// warning, not an error).
func Definition(def formdef.FormDefinition) Errors {
	errs := Errors{}
	if def.FormName == "" {
		errs.Add("formName", "formName is required")
	}
	seen := make(map[string]bool, len(def.Fields))
	for i, f := range def.Fields {
		key := func(part string) string { return fmt.Sprintf("fields[%d].%s", i, part) }
		if f.ID == "" {
			errs.Add(key("id"), "field id is required")
		} else if seen[f.ID] {
			errs.Add(key("id"), "field id '"+f.ID+"' is already used")
		}
		seen[f.ID] = true
		if f.Label == "" {
			errs.Add(key("label"), "label is required")
		}
		if !formdef.ValidType(f.Type) {
			errs.Add(key("type"), "unknown field type '"+string(f.Type)+"'")
		}
	}
	return errs
}
