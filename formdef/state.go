package formdef

// State is the in-progress form being built in an editing session. It is an
// immutable value: every operation returns a new State and leaves the
// receiver untouched, so callers hold the single source of truth and can
// discard an update by simply not keeping it.
type State struct {
	FormName  string
	Fields    []FieldDefinition
	EditingID string
}

func NewState() State {
	return State{}
}

func (s State) cloneFields() []FieldDefinition {
	fields := make([]FieldDefinition, len(s.Fields))
	copy(fields, s.Fields)
	return fields
}

// Rename sets the form name.
func (s State) Rename(name string) State {
	s.Fields = s.cloneFields()
	s.FormName = name
	return s
}

// NewField creates a field definition, assigning an id from gen when the
// partial carries none. No validation happens here; a malformed field is
// caught at submission time.
func NewField(gen IDGenerator, partial FieldDefinition) FieldDefinition {
	if partial.ID == "" {
		partial.ID = gen.NewID()
	}
	return partial
}

// AddOrUpdateField saves a field into the form. If the field is the current
// edit target it replaces the original in place, keeping its position;
// otherwise it is appended. Saving clears the edit pointer.
func (s State) AddOrUpdateField(field FieldDefinition) State {
	fields := s.cloneFields()
	if s.EditingID != "" && s.EditingID == field.ID {
		for i := range fields {
			if fields[i].ID == field.ID {
				fields[i] = field
				break
			}
		}
	} else {
		fields = append(fields, field)
	}
	s.Fields = fields
	s.EditingID = ""
	return s
}

// StartEdit marks the field with the given id as the edit target. Only one
// field may be edited at a time; picking another target silently drops the
// previous one without saving it. An unknown id leaves the state unchanged.
func (s State) StartEdit(id string) State {
	s.Fields = s.cloneFields()
	for _, f := range s.Fields {
		if f.ID == id {
			s.EditingID = id
			return s
		}
	}
	return s
}

// CancelEdit drops the edit pointer, discarding unsaved edits.
func (s State) CancelEdit() State {
	s.Fields = s.cloneFields()
	s.EditingID = ""
	return s
}

// Field returns the field with the given id, if present.
func (s State) Field(id string) (FieldDefinition, bool) {
	for _, f := range s.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return FieldDefinition{}, false
}

// RemoveField deletes the field with the given id. Removing the current edit
// target also clears the edit pointer.
func (s State) RemoveField(id string) State {
	fields := make([]FieldDefinition, 0, len(s.Fields))
	for _, f := range s.Fields {
		if f.ID != id {
			fields = append(fields, f)
		}
	}
	s.Fields = fields
	if s.EditingID == id {
		s.EditingID = ""
	}
	return s
}

// Finalize produces the submittable snapshot. Choice-typed fields with
// absent options get an empty list, so consumers never see nil options on a
// select/radio/checkbox field. Calling it twice yields identical output.
func (s State) Finalize() FormDefinition {
	fields := make([]FieldDefinition, len(s.Fields))
	for i, f := range s.Fields {
		if RequiresOptions(f.Type) && f.Options == nil {
			f.Options = []FieldOption{}
		}
		fields[i] = f
	}
	return FormDefinition{FormName: s.FormName, Fields: fields}
}

// Warnings lists non-blocking nudges for the editing UI, currently just
// choice fields with no options yet. These never fail validation.
func (s State) Warnings() []string {
	var warns []string
	for _, f := range s.Fields {
		if RequiresOptions(f.Type) && len(f.Options) == 0 {
			warns = append(warns, "field '"+f.Label+"' has no options yet")
		}
	}
	return warns
}
