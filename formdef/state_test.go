package formdef

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func textField(gen IDGenerator, label string) FieldDefinition {
	return NewField(gen, FieldDefinition{Label: label, Type: FieldTypeText})
}

func TestOptionFromLabel(t *testing.T) {
	opt := OptionFromLabel("First  Choice")
	assert.Equal(t, "First  Choice", opt.Label)
	assert.Equal(t, "first_choice", opt.Value)

	opt = OptionFromLabel("  Other ")
	assert.Equal(t, "other", opt.Value)
}

func TestRequiresOptions(t *testing.T) {
	assert.True(t, RequiresOptions(FieldTypeSelect))
	assert.True(t, RequiresOptions(FieldTypeRadio))
	assert.True(t, RequiresOptions(FieldTypeCheckbox))
	assert.False(t, RequiresOptions(FieldTypeText))
	assert.False(t, RequiresOptions(FieldTypeEmail))
	assert.False(t, RequiresOptions(FieldTypeNumber))
}

func TestNewFieldAssignsIDOnce(t *testing.T) {
	gen := &Sequence{}
	f := NewField(gen, FieldDefinition{Label: "Name", Type: FieldTypeText})
	assert.Equal(t, "field-1", f.ID)

	// a supplied id survives
	f2 := NewField(gen, FieldDefinition{ID: "custom", Label: "Age", Type: FieldTypeNumber})
	assert.Equal(t, "custom", f2.ID)
}

func TestAddOrUpdateFieldAppends(t *testing.T) {
	gen := &Sequence{}
	s := NewState()
	s = s.AddOrUpdateField(textField(gen, "Name"))
	s = s.AddOrUpdateField(textField(gen, "Email"))

	assert.Len(t, s.Fields, 2)
	assert.Equal(t, "Name", s.Fields[0].Label)
	assert.Equal(t, "Email", s.Fields[1].Label)
}

func TestAddOrUpdateFieldReplacesEditTargetInPlace(t *testing.T) {
	gen := &Sequence{}
	s := NewState()
	s = s.AddOrUpdateField(textField(gen, "Name"))
	s = s.AddOrUpdateField(textField(gen, "Email"))
	s = s.AddOrUpdateField(textField(gen, "Phone"))

	target := s.Fields[1]
	s = s.StartEdit(target.ID)

	edited := target
	edited.Label = "Work Email"
	edited.Type = FieldTypeEmail
	s = s.AddOrUpdateField(edited)

	assert.Len(t, s.Fields, 3)
	assert.Equal(t, "Work Email", s.Fields[1].Label)
	assert.Equal(t, target.ID, s.Fields[1].ID, "editing preserves identity")
	assert.Empty(t, s.EditingID, "saving clears the edit pointer")
}

func TestStartEditReplacesPriorTarget(t *testing.T) {
	gen := &Sequence{}
	s := NewState()
	s = s.AddOrUpdateField(textField(gen, "A"))
	s = s.AddOrUpdateField(textField(gen, "B"))

	s = s.StartEdit(s.Fields[0].ID)
	s = s.StartEdit(s.Fields[1].ID)
	assert.Equal(t, s.Fields[1].ID, s.EditingID)
}

func TestStartEditUnknownIDLeavesStateUnchanged(t *testing.T) {
	gen := &Sequence{}
	s := NewState().AddOrUpdateField(textField(gen, "A"))
	s = s.StartEdit("nope")
	assert.Empty(t, s.EditingID)
}

func TestEditThenCancelLeavesFieldsUntouched(t *testing.T) {
	gen := &Sequence{}
	s := NewState()
	s = s.AddOrUpdateField(textField(gen, "Name"))
	s = s.AddOrUpdateField(textField(gen, "Email"))
	before := s.Fields

	s = s.StartEdit(s.Fields[0].ID)
	s = s.CancelEdit()

	assert.Equal(t, before, s.Fields)
	assert.Empty(t, s.EditingID)
}

func TestRemoveFieldClearsEditPointer(t *testing.T) {
	gen := &Sequence{}
	s := NewState()
	s = s.AddOrUpdateField(textField(gen, "A"))
	s = s.AddOrUpdateField(textField(gen, "B"))

	id := s.Fields[0].ID
	s = s.StartEdit(id)
	s = s.RemoveField(id)

	assert.Len(t, s.Fields, 1)
	assert.Equal(t, "B", s.Fields[0].Label)
	assert.Empty(t, s.EditingID)
}

func TestOperationsDoNotMutateReceiver(t *testing.T) {
	gen := &Sequence{}
	s := NewState().AddOrUpdateField(textField(gen, "A"))

	_ = s.AddOrUpdateField(textField(gen, "B"))
	_ = s.RemoveField(s.Fields[0].ID)
	_ = s.Rename("changed")

	assert.Len(t, s.Fields, 1)
	assert.Equal(t, "A", s.Fields[0].Label)
	assert.Empty(t, s.FormName)
}

func TestDuplicateLabelsAllowed(t *testing.T) {
	gen := &Sequence{}
	s := NewState()
	s = s.AddOrUpdateField(textField(gen, "Name"))
	s = s.AddOrUpdateField(textField(gen, "Name"))

	assert.Len(t, s.Fields, 2)
	assert.NotEqual(t, s.Fields[0].ID, s.Fields[1].ID)
}

func TestFinalizeNormalizesMissingOptions(t *testing.T) {
	gen := &Sequence{}
	s := NewState().Rename("Survey")
	s = s.AddOrUpdateField(NewField(gen, FieldDefinition{Label: "Color", Type: FieldTypeSelect}))
	s = s.AddOrUpdateField(textField(gen, "Name"))

	def := s.Finalize()
	assert.Equal(t, "Survey", def.FormName)
	assert.NotNil(t, def.Fields[0].Options)
	assert.Empty(t, def.Fields[0].Options)
	assert.Nil(t, def.Fields[1].Options, "non-choice fields keep nil options")
}

func TestFinalizeIsIdempotent(t *testing.T) {
	gen := &Sequence{}
	s := NewState().Rename("Survey")
	s = s.AddOrUpdateField(NewField(gen, FieldDefinition{Label: "Pick", Type: FieldTypeRadio}))

	first := s.Finalize()
	second := s.Finalize()
	assert.Equal(t, first, second)
}

func TestWarningsForChoiceFieldsWithoutOptions(t *testing.T) {
	gen := &Sequence{}
	s := NewState()
	s = s.AddOrUpdateField(NewField(gen, FieldDefinition{Label: "Pick", Type: FieldTypeSelect}))
	s = s.AddOrUpdateField(textField(gen, "Name"))

	warns := s.Warnings()
	assert.Len(t, warns, 1)
	assert.Contains(t, warns[0], "Pick")
}
