package validation

import "github.com/formhub/formhub-go/dto"

// WizardStep identifies one section of the multi-step form.
type WizardStep int

const (
	StepPersonalInfo WizardStep = iota + 1
	StepAddress
	StepAdditionalInfo
)

const StepCount = 3

// Step validates only the named step's fields of the wizard payload, so a
// partially filled form can still pass the steps the user has reached.
func Step(step WizardStep, payload dto.MultiStepFormDTO) Errors {
	switch step {
	case StepPersonalInfo:
		return Struct(payload.PersonalInfoDTO)
	case StepAddress:
		return Struct(payload.AddressDTO)
	case StepAdditionalInfo:
		return Struct(payload.AdditionalInfoDTO)
	default:
		errs := Errors{}
		errs.Add("step", "unknown step")
		return errs
	}
}

// AllSteps validates the whole wizard payload, step by step, for the final
// submit.
func AllSteps(payload dto.MultiStepFormDTO) Errors {
	errs := Errors{}
	for step := StepPersonalInfo; step <= StepAdditionalInfo; step++ {
		errs.Merge(Step(step, payload))
	}
	return errs
}
